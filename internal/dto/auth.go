package dto

type RegisterRequestDTO struct {
	Name     string `json:"name" validate:"required,min=2,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type LoginRequestDTO struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserResponseDTO never carries the password field, even though the store
// persists it.
type UserResponseDTO struct {
	ID    string `json:"id" example:"1"`
	Name  string `json:"name" example:"Jane Smith"`
	Email string `json:"email" example:"jane@example.com"`
}
