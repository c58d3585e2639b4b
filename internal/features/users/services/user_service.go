package users_services

import (
	"fmt"
	"time"

	"builderspace-backend/internal/config"
	users_dto "builderspace-backend/internal/features/users/dto"
	users_enums "builderspace-backend/internal/features/users/enums"
	users_interfaces "builderspace-backend/internal/features/users/interfaces"
	users_models "builderspace-backend/internal/features/users/models"
	users_repositories "builderspace-backend/internal/features/users/repositories"
	"builderspace-backend/internal/util/errs"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type UserService struct {
	userRepository *users_repositories.UserRepository
	auditLogWriter users_interfaces.AuditLogWriter
}

func (s *UserService) SetAuditLogWriter(writer users_interfaces.AuditLogWriter) {
	s.auditLogWriter = writer
}

func (s *UserService) SignUp(request *users_dto.SignUpRequestDTO) error {
	existingUser, err := s.userRepository.GetUserByEmail(request.Email)
	if err != nil {
		return fmt.Errorf("failed to check existing user: %w", err)
	}

	if existingUser != nil {
		return errs.Conflict("user with this email already exists")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(request.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	hashedPasswordStr := string(hashedPassword)

	user := &users_models.User{
		ID:             uuid.New(),
		Email:          request.Email,
		Name:           request.Name,
		University:     request.University,
		HashedPassword: &hashedPasswordStr,
		Role:           users_enums.UserRoleMember,
		Status:         users_enums.UserStatusActive,
		CreatedAt:      time.Now().UTC(),
	}

	if err := s.userRepository.CreateUser(user); err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	if s.auditLogWriter != nil {
		s.auditLogWriter.WriteAuditLog(
			fmt.Sprintf("User registered with email: %s", user.Email),
			&user.ID,
			nil,
		)
	}

	return nil
}

func (s *UserService) SignIn(
	request *users_dto.SignInRequestDTO,
) (*users_dto.SignInResponseDTO, error) {
	user, err := s.userRepository.GetUserByEmail(request.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if user == nil || user.HashedPassword == nil {
		return nil, errs.Unauthorized("invalid email or password")
	}

	if !user.IsActiveUser() {
		return nil, errs.Unauthorized("user account is deactivated")
	}

	if err := bcrypt.CompareHashAndPassword(
		[]byte(*user.HashedPassword),
		[]byte(request.Password),
	); err != nil {
		return nil, errs.Unauthorized("invalid email or password")
	}

	return s.GenerateAccessToken(user)
}

func (s *UserService) GenerateAccessToken(
	user *users_models.User,
) (*users_dto.SignInResponseDTO, error) {
	expiration := time.Now().UTC().Add(time.Hour * 24 * 30)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  user.ID.String(),
		"exp":  expiration.Unix(),
		"iat":  time.Now().UTC().Unix(),
		"role": string(user.Role),
	})

	tokenString, err := token.SignedString([]byte(config.GetEnv().JwtSecret))
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &users_dto.SignInResponseDTO{
		UserID: user.ID,
		Token:  tokenString,
	}, nil
}

func (s *UserService) GetUserFromToken(token string) (*users_models.User, error) {
	parsedToken, err := jwt.Parse(token, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(config.GetEnv().JwtSecret), nil
	})

	if err != nil {
		return nil, errs.Wrap(errs.KindUnauthorized, "invalid token", err)
	}

	claims, ok := parsedToken.Claims.(jwt.MapClaims)
	if !ok || !parsedToken.Valid {
		return nil, errs.Unauthorized("invalid token")
	}

	userIDStr, ok := claims["sub"].(string)
	if !ok {
		return nil, errs.Unauthorized("invalid token claims")
	}

	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return nil, errs.Unauthorized("invalid token claims")
	}

	user, err := s.userRepository.GetUserByID(userID)
	if err != nil {
		return nil, errs.Wrap(errs.KindUnauthorized, "user not found", err)
	}

	if !user.IsActiveUser() {
		return nil, errs.Unauthorized("user account is deactivated")
	}

	return user, nil
}

func (s *UserService) GetUserByID(userID uuid.UUID) (*users_models.User, error) {
	return s.userRepository.GetUserByID(userID)
}

func (s *UserService) GetUserByEmail(email string) (*users_models.User, error) {
	return s.userRepository.GetUserByEmail(email)
}

func (s *UserService) GetUsersByIDs(userIDs []uuid.UUID) ([]*users_models.User, error) {
	return s.userRepository.GetUsersByIDs(userIDs)
}

func (s *UserService) GetCurrentUserProfile(
	user *users_models.User,
) *users_dto.UserProfileResponseDTO {
	return &users_dto.UserProfileResponseDTO{
		ID:         user.ID,
		Email:      user.Email,
		Name:       user.Name,
		University: user.University,
		Bio:        user.Bio,
		Role:       user.Role,
		IsActive:   user.IsActiveUser(),
		CreatedAt:  user.CreatedAt,
	}
}

func (s *UserService) UpdateUserInfo(
	userID uuid.UUID,
	request *users_dto.UpdateUserInfoRequestDTO,
) error {
	if err := s.userRepository.UpdateUserInfo(
		userID,
		request.Name,
		request.University,
		request.Bio,
	); err != nil {
		return fmt.Errorf("failed to update user info: %w", err)
	}

	if s.auditLogWriter != nil {
		s.auditLogWriter.WriteAuditLog("User info updated", &userID, nil)
	}

	return nil
}
