package users_dto

import (
	"time"

	users_enums "builderspace-backend/internal/features/users/enums"

	"github.com/google/uuid"
)

type SignUpRequestDTO struct {
	Email      string `json:"email"      binding:"required,email"`
	Password   string `json:"password"   binding:"required,min=8"`
	Name       string `json:"name"       binding:"required,min=1,max=100"`
	University string `json:"university" binding:"max=200"`
}

type SignInRequestDTO struct {
	Email    string `json:"email"    binding:"required"`
	Password string `json:"password" binding:"required"`
}

type SignInResponseDTO struct {
	UserID uuid.UUID `json:"userId"`
	Token  string    `json:"token"`
}

type UserProfileResponseDTO struct {
	ID         uuid.UUID            `json:"id"`
	Email      string               `json:"email"`
	Name       string               `json:"name"`
	University string               `json:"university"`
	Bio        string               `json:"bio"`
	Role       users_enums.UserRole `json:"role"`
	IsActive   bool                 `json:"isActive"`
	CreatedAt  time.Time            `json:"createdAt"`
}

type UpdateUserInfoRequestDTO struct {
	Name       *string `json:"name"       binding:"omitempty,min=1,max=100"`
	University *string `json:"university" binding:"omitempty,max=200"`
	Bio        *string `json:"bio"        binding:"omitempty,max=1000"`
}
