package dto

// RegisterCompanyRequest entrada del registro: crea la company y su primer admin en una transacción.
type RegisterCompanyRequest struct {
	CompanyName string `json:"company_name" validate:"required,min=1,max=200"`
	Name        string `json:"name" validate:"required,min=1,max=200"`
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=8"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// SessionResponse salida de register/login/canje de invitación: token JWT más
// el usuario y su company.
type SessionResponse struct {
	Token   string          `json:"token"`
	User    UserResponse    `json:"user"`
	Company CompanyResponse `json:"company"`
}
