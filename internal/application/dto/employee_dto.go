package dto

import "github.com/shopspring/decimal"

// CreateEmployeeRequest alta de empleado por un admin. El empleado recibe una
// contraseña por defecto que debe cambiar en su primer acceso.
type CreateEmployeeRequest struct {
	FirstName string           `json:"first_name"`
	LastName  string           `json:"last_name"`
	Email     string           `json:"email"`
	JobTitle  string           `json:"job_title"`
	Salary    *decimal.Decimal `json:"salary"`
}

// EmployeeResponse salida de un empleado (sin password). El avatar viaja en
// base64 dentro del JSON.
type EmployeeResponse struct {
	ID                string           `json:"id"`
	FirstName         string           `json:"first_name"`
	LastName          string           `json:"last_name"`
	Email             string           `json:"email"`
	Role              string           `json:"role"`
	JobTitle          string           `json:"job_title,omitempty"`
	Salary            *decimal.Decimal `json:"salary,omitempty"`
	CompanyName       string           `json:"company_name,omitempty"`
	PhoneNumber       string           `json:"phone_number,omitempty"`
	PersonalTaxID     string           `json:"personal_tax_id,omitempty"`
	IDNumber          string           `json:"id_number,omitempty"`
	Address           string           `json:"address,omitempty"`
	AvatarBase64      string           `json:"avatar_base64,omitempty"`
	AvatarContentType string           `json:"avatar_content_type,omitempty"`
}

// UpdateMeInput actualización parcial del perfil propio; punteros nil = no tocar.
type UpdateMeInput struct {
	PhoneNumber   *string
	PersonalTaxID *string
	IDNumber      *string
	Address       *string
	NewPassword   *string
	// Avatar nuevo; nil = conservar el actual.
	AvatarData        []byte
	AvatarContentType string
}
