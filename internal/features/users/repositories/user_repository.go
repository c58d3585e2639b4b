package users_repositories

import (
	"time"

	users_models "builderspace-backend/internal/features/users/models"
	"builderspace-backend/internal/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRepository struct{}

func (r *UserRepository) CreateUser(user *users_models.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}

	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}

	return storage.GetDb().Create(user).Error
}

func (r *UserRepository) GetUserByEmail(email string) (*users_models.User, error) {
	var user users_models.User

	if err := storage.GetDb().Where("email = ?", email).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}

		return nil, err
	}

	return &user, nil
}

func (r *UserRepository) GetUserByID(userID uuid.UUID) (*users_models.User, error) {
	var user users_models.User

	if err := storage.GetDb().Where("id = ?", userID).First(&user).Error; err != nil {
		return nil, err
	}

	return &user, nil
}

func (r *UserRepository) GetUsersByIDs(userIDs []uuid.UUID) ([]*users_models.User, error) {
	var users []*users_models.User

	if len(userIDs) == 0 {
		return users, nil
	}

	err := storage.GetDb().Where("id IN ?", userIDs).Find(&users).Error

	return users, err
}

func (r *UserRepository) UpdateUserInfo(
	userID uuid.UUID,
	name, university, bio *string,
) error {
	updates := make(map[string]any)

	if name != nil {
		updates["name"] = *name
	}
	if university != nil {
		updates["university"] = *university
	}
	if bio != nil {
		updates["bio"] = *bio
	}

	if len(updates) == 0 {
		return nil
	}

	return storage.GetDb().Model(&users_models.User{}).
		Where("id = ?", userID).
		Updates(updates).Error
}
