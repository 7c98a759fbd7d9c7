// Package auth contains authentication-related use cases.
package auth

import (
	"context"
	"fmt"
	"regexp"

	"github.com/gestao/backend/internal/application/adapter"
	"github.com/gestao/backend/internal/domain/entity"
	domainerror "github.com/gestao/backend/internal/domain/error"
)

// emailRegex is compiled once at package level for performance.
var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// RegisterUserInput represents the input for user registration.
type RegisterUserInput struct {
	Email string
	Name  string
	// Password is accepted for interface compatibility but never stored;
	// the system keeps no credentials.
	Password string
	Role     entity.UserRole
}

// RegisterUserOutput represents the output of user registration.
type RegisterUserOutput struct {
	AccessToken string
	User        *entity.User
}

// RegisterUserUseCase handles user registration logic.
type RegisterUserUseCase struct {
	userRepo     adapter.UserRepository
	sessionStore adapter.SessionStore
	tokenService adapter.TokenService
}

// NewRegisterUserUseCase creates a new RegisterUserUseCase instance.
func NewRegisterUserUseCase(
	userRepo adapter.UserRepository,
	sessionStore adapter.SessionStore,
	tokenService adapter.TokenService,
) *RegisterUserUseCase {
	return &RegisterUserUseCase{
		userRepo:     userRepo,
		sessionStore: sessionStore,
		tokenService: tokenService,
	}
}

// Execute performs the user registration. The duplicate-email check lives
// here, inside the operation, so no caller can skip it.
func (uc *RegisterUserUseCase) Execute(ctx context.Context, input RegisterUserInput) (*RegisterUserOutput, error) {
	if !emailRegex.MatchString(input.Email) {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidEmail,
			"invalid email format",
			domainerror.ErrInvalidEmail,
		)
	}

	if input.Role != entity.RoleAdmin {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidRole,
			"role must be 'admin'",
			domainerror.ErrInvalidRole,
		)
	}

	exists, err := uc.userRepo.ExistsByEmail(ctx, input.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email existence: %w", err)
	}
	if exists {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeEmailExists,
			"email already exists",
			domainerror.ErrEmailAlreadyExists,
		)
	}

	user := entity.NewUser(input.Email, input.Name, input.Role)

	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	// Registration logs the new user in immediately.
	if err := uc.sessionStore.Set(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to set session marker: %w", err)
	}

	token, err := uc.tokenService.GenerateAccessToken(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	return &RegisterUserOutput{
		AccessToken: token,
		User:        user,
	}, nil
}
