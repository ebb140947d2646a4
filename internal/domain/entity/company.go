package entity

import "time"

// Company representa una organización/tenant del sistema. Toda entidad de negocio
// pertenece a exactamente una Company; el CompanyID se fija al crear y es inmutable.
type Company struct {
	ID              string
	Name            string
	Email           string // único a nivel global
	TaxID           string
	Phone           string
	Website         string
	Street          string
	City            string
	ZipCode         string
	Country         string
	LogoData        []byte // logo en DB, acotado por UPLOAD_MAX_BYTES
	LogoContentType string // ej. "image/png"
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
