package users_testing

import (
	"fmt"
	"sync"

	users_dto "builderspace-backend/internal/features/users/dto"
	users_models "builderspace-backend/internal/features/users/models"
	users_services "builderspace-backend/internal/features/users/services"
	"builderspace-backend/internal/storage"

	"github.com/google/uuid"
)

var migrateOnce sync.Once

func MigrateUsers() {
	migrateOnce.Do(func() {
		if err := storage.Migrate(&users_models.User{}); err != nil {
			panic(fmt.Sprintf("failed to migrate users: %v", err))
		}
	})
}

type TestUser struct {
	User  *users_models.User
	Token string
}

// CreateTestUser registers a fresh user with a unique email and signs them in.
func CreateTestUser(name string) *TestUser {
	MigrateUsers()

	userService := users_services.GetUserService()
	email := fmt.Sprintf("%s-%s@test.builderspace.dev", name, uuid.New().String()[:8])

	err := userService.SignUp(&users_dto.SignUpRequestDTO{
		Email:    email,
		Password: "test-password-123",
		Name:     name,
	})
	if err != nil {
		panic(fmt.Sprintf("failed to sign up test user: %v", err))
	}

	signIn, err := userService.SignIn(&users_dto.SignInRequestDTO{
		Email:    email,
		Password: "test-password-123",
	})
	if err != nil {
		panic(fmt.Sprintf("failed to sign in test user: %v", err))
	}

	user, err := userService.GetUserByID(signIn.UserID)
	if err != nil {
		panic(fmt.Sprintf("failed to load test user: %v", err))
	}

	return &TestUser{User: user, Token: signIn.Token}
}
