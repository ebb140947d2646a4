package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Roles válidos para User. El rol es inmutable después de la creación.
const (
	RoleCompanyAdmin = "COMPANY_ADMIN"
	RoleEmployee     = "EMPLOYEE"
)

// User representa un usuario del sistema (pertenece a una Company).
type User struct {
	ID                string
	CompanyID         string
	Email             string // único a nivel global
	PasswordHash      string // bcrypt hash, nunca plano en dominio después de persistir
	FirstName         string
	LastName          string
	Role              string // COMPANY_ADMIN, EMPLOYEE
	JobTitle          string
	Salary            *decimal.Decimal // nil = sin salario asignado
	PhoneNumber       string
	PersonalTaxID     string
	IDNumber          string
	Address           string
	Avatar            []byte
	AvatarContentType string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// FullName devuelve "FirstName LastName" para descripciones y notificaciones.
func (u *User) FullName() string {
	if u.FirstName == "" {
		return u.LastName
	}
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}
