package dto

// RegisterRequest requisição de cadastro
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8,max=64"`
}

// RegisterResponse resposta de cadastro
type RegisterResponse struct {
	Token   string    `json:"token"`
	User    *UserInfo `json:"user"`
	Message string    `json:"message"`
}

// LoginRequest requisição de login
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse resposta de login
type LoginResponse struct {
	Token string    `json:"token"`
	User  *UserInfo `json:"user"`
}

// VerifyEmailRequest verificação de email
type VerifyEmailRequest struct {
	Token string `json:"token" binding:"required"`
}

// ForgotPasswordRequest solicitação de redefinição de senha
type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// ResetPasswordRequest redefinição de senha com token
type ResetPasswordRequest struct {
	Token    string `json:"token" binding:"required"`
	Password string `json:"password" binding:"required,min=8,max=64"`
}

// UserInfo dados do usuário retornados ao frontend
type UserInfo struct {
	ID         int64  `json:"id"`
	Email      string `json:"email"`
	AnonimaxID string `json:"anonimax_id"`
	IsVerified bool   `json:"is_verified"`
	IsAdmin    bool   `json:"is_admin,omitempty"`
	CreatedAt  string `json:"created_at,omitempty"`
}
