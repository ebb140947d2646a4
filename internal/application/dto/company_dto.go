package dto

// CompanyProfileResponse perfil de la empresa. El logo viaja en base64 dentro
// del JSON de lectura; la subida es multipart con bytes crudos.
type CompanyProfileResponse struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	TaxID           string `json:"tax_id,omitempty"`
	Phone           string `json:"phone,omitempty"`
	Website         string `json:"website,omitempty"`
	Street          string `json:"street,omitempty"`
	City            string `json:"city,omitempty"`
	ZipCode         string `json:"zip_code,omitempty"`
	Country         string `json:"country,omitempty"`
	LogoBase64      string `json:"logo_base64,omitempty"`
	LogoContentType string `json:"logo_content_type,omitempty"`
}

// UpdateCompanyProfileInput campos de texto del formulario multipart de perfil.
// Los punteros distinguen "no enviado" de "vaciar el campo".
type UpdateCompanyProfileInput struct {
	Name    string
	TaxID   string
	Phone   string
	Website string
	Street  string
	City    string
	ZipCode string
	Country string
	// Logo nuevo; nil = conservar el actual.
	LogoData        []byte
	LogoContentType string
}
