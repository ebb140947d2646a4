package dto

// RegisterRequest entrada para registro: crea la Company y su primer usuario
// COMPANY_ADMIN en una sola operación.
type RegisterRequest struct {
	CompanyName string `json:"company_name"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse salida con token JWT, rol y nombre de la empresa.
type AuthResponse struct {
	Token       string `json:"token"`
	Role        string `json:"role"`
	CompanyName string `json:"company_name"`
}
