package usecase

import (
	"fmt"

	"campushub/pkg/apperrors"
	"campushub/pkg/jwt"
	"campushub/pkg/logger"
	"campushub/services/auth/internal/entity"
	"campushub/services/auth/internal/repo/persistent"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmailTaken         = fmt.Errorf("%w: user with this email already exists", apperrors.ErrValidation)
	ErrUsernameTaken      = fmt.Errorf("%w: username already taken", apperrors.ErrValidation)
	ErrInvalidCredentials = fmt.Errorf("%w: invalid credentials", apperrors.ErrValidation)
	ErrUserNotFound       = fmt.Errorf("%w: user not found", apperrors.ErrNotFound)
)

// New accounts start with this trading balance.
var startingCash = decimal.RequireFromString("10000.00")

type AuthUseCase interface {
	Register(email, username, password string) (*entity.User, string, error)
	Login(email, password string) (*entity.User, string, error)
	GetUser(userID string) (*entity.User, error)
}

type authUseCase struct {
	userRepo   persistent.UserRepository
	jwtService *jwt.Service
	logger     *logger.Logger
}

func NewAuthUseCase(userRepo persistent.UserRepository, jwtService *jwt.Service, logger *logger.Logger) AuthUseCase {
	return &authUseCase{
		userRepo:   userRepo,
		jwtService: jwtService,
		logger:     logger,
	}
}

func (uc *authUseCase) Register(email, username, password string) (*entity.User, string, error) {
	if email == "" || username == "" || password == "" {
		return nil, "", fmt.Errorf("%w: email, username and password are required", apperrors.ErrValidation)
	}

	if _, err := uc.userRepo.GetByEmail(email); err == nil {
		return nil, "", ErrEmailTaken
	}

	if _, err := uc.userRepo.GetByUsername(username); err == nil {
		return nil, "", ErrUsernameTaken
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		uc.logger.Error("Failed to hash password: %v", err)
		return nil, "", fmt.Errorf("%w: failed to process registration", apperrors.ErrInternal)
	}

	user := &entity.User{
		Email:    email,
		Username: username,
		Password: string(hashedPassword),
		Role:     entity.RoleMember,
		Cash:     startingCash,
		IsActive: true,
	}

	if err := uc.userRepo.Create(user); err != nil {
		uc.logger.Error("Failed to create user: %v", err)
		return nil, "", fmt.Errorf("%w: failed to create user", apperrors.ErrInternal)
	}

	token, err := uc.jwtService.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		uc.logger.Error("Failed to generate token: %v", err)
		return nil, "", fmt.Errorf("%w: failed to generate token", apperrors.ErrInternal)
	}

	user.Password = ""
	return user, token, nil
}

func (uc *authUseCase) Login(email, password string) (*entity.User, string, error) {
	user, err := uc.userRepo.GetByEmail(email)
	if err != nil {
		return nil, "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, "", fmt.Errorf("%w: account is deactivated", apperrors.ErrForbidden)
	}

	token, err := uc.jwtService.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		uc.logger.Error("Failed to generate token: %v", err)
		return nil, "", fmt.Errorf("%w: failed to generate token", apperrors.ErrInternal)
	}

	user.Password = ""
	return user, token, nil
}

func (uc *authUseCase) GetUser(userID string) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, ErrUserNotFound
	}
	user.Password = ""
	return user, nil
}
