package dto

// LoginRequest represents a credential login request. The account may be
// addressed by email or by username; exactly one of the two is required.
type LoginRequest struct {
	Email    string `json:"email,omitempty" validate:"omitempty,email,max=255" example:"admin@corporex.com"`
	Username string `json:"username,omitempty" validate:"omitempty,min=3,max=30" example:"admin_role"`
	Password string `json:"password" validate:"required,min=8,max=128" example:"secret-password"`
}

// LoginResponse represents a successful login result
type LoginResponse struct {
	Token     string   `json:"token"`
	TokenType string   `json:"token_type" example:"Bearer"`
	ExpiresIn int64    `json:"expires_in" example:"3600"`
	User      *UserDTO `json:"user"`
}

// UserDTO represents user information in API responses
type UserDTO struct {
	ID       uint   `json:"id"`
	UUID     string `json:"uuid"`
	Name     string `json:"name"`
	Surname  string `json:"surname"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Role     string `json:"role"`
}
