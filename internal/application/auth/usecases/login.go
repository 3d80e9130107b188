package usecases

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"chamados/internal/domain/user"
	"chamados/internal/shared/authorization"
	"chamados/internal/shared/errors"
	"chamados/internal/shared/logger"
)

// PasswordVerifier checks a plaintext password against a stored hash.
type PasswordVerifier interface {
	Verify(password, hash string) error
}

// TokenIssuer signs an access token for a verified identity.
type TokenIssuer interface {
	Generate(userID uint, sessionID string, role authorization.UserRole) (string, error)
}

type LoginCommand struct {
	Email    string
	Password string
}

type LoginResult struct {
	Token string       `json:"token"`
	User  LoginUserDTO `json:"user"`
}

type LoginUserDTO struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type LoginUseCase struct {
	userRepo user.UserRepository
	hasher   PasswordVerifier
	tokens   TokenIssuer
	logger   logger.Interface
}

func NewLoginUseCase(
	userRepo user.UserRepository,
	hasher PasswordVerifier,
	tokens TokenIssuer,
	logger logger.Interface,
) *LoginUseCase {
	return &LoginUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
		logger:   logger,
	}
}

func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error) {
	email := strings.ToLower(strings.TrimSpace(cmd.Email))

	if email == "" || cmd.Password == "" {
		return nil, errors.NewValidationError("email and password are required")
	}

	uc.logger.Infow("executing login use case", "email", email)

	u, err := uc.userRepo.FindByEmail(ctx, email)
	if err != nil {
		// Unknown account and wrong password are indistinguishable to
		// the caller.
		uc.logger.Warnw("login failed, user not found", "email", email)
		return nil, errors.NewUnauthorizedError("invalid credentials")
	}

	if err := uc.hasher.Verify(cmd.Password, u.PasswordHash()); err != nil {
		uc.logger.Warnw("login failed, password mismatch", "user_id", u.ID())
		return nil, errors.NewUnauthorizedError("invalid credentials")
	}

	actor := u.Actor()
	sessionID := uuid.NewString()
	token, err := uc.tokens.Generate(actor.ID, sessionID, actor.Role)
	if err != nil {
		uc.logger.Errorw("failed to issue token", "user_id", u.ID(), "error", err)
		return nil, err
	}

	uc.logger.Infow("login succeeded", "user_id", u.ID(), "role", u.Role(), "session_id", sessionID)

	return &LoginResult{
		Token: token,
		User: LoginUserDTO{
			ID:    u.ID(),
			Name:  u.Name(),
			Email: u.Email(),
			Role:  u.Role().String(),
		},
	}, nil
}
