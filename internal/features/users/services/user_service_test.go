package users_services

import (
	"encoding/json"
	"fmt"
	"testing"

	users_dto "builderspace-backend/internal/features/users/dto"
	users_models "builderspace-backend/internal/features/users/models"
	"builderspace-backend/internal/storage"
	"builderspace-backend/internal/util/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signUpTestUser(t *testing.T, name string) (string, string) {
	t.Helper()

	require.NoError(t, storage.Migrate(&users_models.User{}))

	email := fmt.Sprintf("%s-%s@test.builderspace.dev", name, uuid.New().String()[:8])
	password := "secret-password-42"

	require.NoError(t, GetUserService().SignUp(&users_dto.SignUpRequestDTO{
		Email:    email,
		Password: password,
		Name:     name,
	}))

	return email, password
}

func Test_SignUp_DuplicateEmail_IsConflict(t *testing.T) {
	email, password := signUpTestUser(t, "Dup")

	err := GetUserService().SignUp(&users_dto.SignUpRequestDTO{
		Email:    email,
		Password: password,
		Name:     "Dup",
	})

	assert.True(t, errs.IsKind(err, errs.KindConflict))
	assert.Contains(t, err.Error(), "user with this email already exists")
}

func Test_SignIn_ValidCredentials_ReturnsToken(t *testing.T) {
	email, password := signUpTestUser(t, "Bob")

	response, err := GetUserService().SignIn(&users_dto.SignInRequestDTO{
		Email:    email,
		Password: password,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, response.Token)
	assert.NotEqual(t, uuid.Nil, response.UserID)

	user, err := GetUserService().GetUserFromToken(response.Token)
	require.NoError(t, err)
	assert.Equal(t, email, user.Email)
}

func Test_SignIn_WrongPassword_IsUnauthorized(t *testing.T) {
	email, _ := signUpTestUser(t, "Carol")

	_, err := GetUserService().SignIn(&users_dto.SignInRequestDTO{
		Email:    email,
		Password: "not-the-password",
	})

	assert.True(t, errs.IsKind(err, errs.KindUnauthorized))
	assert.Contains(t, err.Error(), "invalid email or password")
}

func Test_SignIn_UnknownEmail_IsUnauthorized(t *testing.T) {
	require.NoError(t, storage.Migrate(&users_models.User{}))

	_, err := GetUserService().SignIn(&users_dto.SignInRequestDTO{
		Email:    "nobody@test.builderspace.dev",
		Password: "whatever",
	})

	assert.True(t, errs.IsKind(err, errs.KindUnauthorized))
}

func Test_GetUserFromToken_Garbage_IsUnauthorized(t *testing.T) {
	_, err := GetUserService().GetUserFromToken("not-a-jwt")

	assert.True(t, errs.IsKind(err, errs.KindUnauthorized))
}

func Test_ProfileJSON_NeverExposesPasswordHash(t *testing.T) {
	email, password := signUpTestUser(t, "Dave")

	response, err := GetUserService().SignIn(&users_dto.SignInRequestDTO{
		Email:    email,
		Password: password,
	})
	require.NoError(t, err)

	user, err := GetUserService().GetUserByID(response.UserID)
	require.NoError(t, err)
	require.NotNil(t, user.HashedPassword)

	encoded, err := json.Marshal(user)
	require.NoError(t, err)
	assert.NotContains(t, string(encoded), *user.HashedPassword)

	profile := GetUserService().GetCurrentUserProfile(user)
	assert.Equal(t, email, profile.Email)
}
