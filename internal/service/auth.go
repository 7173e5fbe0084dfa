package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/agrilink/market-service/internal/entities"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type AuthRepo interface {
	CreateUser(ctx context.Context, user entities.User) (entities.User, error)
	GetUserByEmail(ctx context.Context, email string) (entities.User, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (entities.User, error)
}

// TokenIssuer mints signed access tokens for authenticated users.
type TokenIssuer interface {
	Issue(userID uuid.UUID, role string) (string, error)
}

type authService struct {
	logger *slog.Logger
	repo   AuthRepo
	tokens TokenIssuer
}

func NewAuthService(logger *slog.Logger, repo AuthRepo, tokens TokenIssuer) *authService {
	return &authService{
		logger: logger.With(slog.String("service", "auth")),
		repo:   repo,
		tokens: tokens,
	}
}

// Register creates an account and returns it with a fresh access token.
// Only consumer and farmer accounts are self-registrable.
func (s *authService) Register(ctx context.Context, email, password, fullName string, role entities.Role) (entities.User, string, error) {
	if role != entities.RoleConsumer && role != entities.RoleFarmer {
		return entities.User{}, "", entities.ErrForbidden
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return entities.User{}, "", fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := s.repo.CreateUser(ctx, entities.User{
		Email:        email,
		PasswordHash: string(hash),
		FullName:     fullName,
		Role:         role,
		IsActive:     true,
	})
	if err != nil {
		return entities.User{}, "", err
	}

	token, err := s.tokens.Issue(user.ID, string(user.Role))
	if err != nil {
		return entities.User{}, "", fmt.Errorf("failed to issue token: %w", err)
	}

	s.logger.Info("user registered",
		slog.String("user_id", user.ID.String()),
		slog.String("role", string(user.Role)),
	)
	return user, token, nil
}

// Login exchanges valid credentials for an access token. Unknown emails and
// wrong passwords are indistinguishable to the caller.
func (s *authService) Login(ctx context.Context, email, password string) (entities.User, string, error) {
	user, err := s.repo.GetUserByEmail(ctx, email)
	if errors.Is(err, entities.ErrUserNotFound) {
		return entities.User{}, "", entities.ErrInvalidCredentials
	}
	if err != nil {
		return entities.User{}, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return entities.User{}, "", entities.ErrInvalidCredentials
	}
	if !user.IsActive {
		return entities.User{}, "", entities.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID, string(user.Role))
	if err != nil {
		return entities.User{}, "", fmt.Errorf("failed to issue token: %w", err)
	}
	return user, token, nil
}
