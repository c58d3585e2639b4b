package users_models

import (
	"time"

	users_enums "builderspace-backend/internal/features/users/enums"

	"github.com/google/uuid"
)

type User struct {
	ID             uuid.UUID              `json:"id"         gorm:"column:id;primaryKey"`
	Email          string                 `json:"email"      gorm:"column:email;uniqueIndex"`
	Name           string                 `json:"name"       gorm:"column:name"`
	University     string                 `json:"university" gorm:"column:university"`
	Bio            string                 `json:"bio"        gorm:"column:bio"`
	HashedPassword *string                `json:"-"          gorm:"column:hashed_password"`
	Role           users_enums.UserRole   `json:"role"       gorm:"column:role"`
	Status         users_enums.UserStatus `json:"status"     gorm:"column:status"`
	CreatedAt      time.Time              `json:"createdAt"  gorm:"column:created_at"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) IsActiveUser() bool {
	return u.Status == users_enums.UserStatusActive
}
