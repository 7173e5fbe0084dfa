package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/agrilink/market-service/internal/entities"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"
)

const uniqueViolation = "23505"

var userColumns = []string{
	"id", "email", "password_hash", "full_name", "role",
	"is_active", "created_at", "updated_at",
}

func (r *postgresRepo) CreateUser(ctx context.Context, u entities.User) (entities.User, error) {
	query, args := r.qb.Insert("users").
		Columns("email", "password_hash", "full_name", "role", "is_active").
		Values(u.Email, u.PasswordHash, u.FullName, string(u.Role), u.IsActive).
		Suffix("RETURNING " + strings.Join(userColumns, ", ")).
		MustSql()

	var user User
	err := r.getContext(ctx, &user, query, args...)
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
		return entities.User{}, entities.ErrEmailTaken
	}
	if err != nil {
		return entities.User{}, fmt.Errorf("failed to create user: %w", err)
	}
	return UserToEntity(user), nil
}

func (r *postgresRepo) GetUserByEmail(ctx context.Context, email string) (entities.User, error) {
	query, args := r.qb.Select(userColumns...).
		From("users").
		Where(sq.Eq{"email": email}).
		MustSql()

	var user User
	err := r.getContext(ctx, &user, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.User{}, entities.ErrUserNotFound
	}
	if err != nil {
		return entities.User{}, fmt.Errorf("failed to get user: %w", err)
	}
	return UserToEntity(user), nil
}

func (r *postgresRepo) GetUserByID(ctx context.Context, id uuid.UUID) (entities.User, error) {
	query, args := r.qb.Select(userColumns...).
		From("users").
		Where(sq.Eq{"id": id}).
		MustSql()

	var user User
	err := r.getContext(ctx, &user, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.User{}, entities.ErrUserNotFound
	}
	if err != nil {
		return entities.User{}, fmt.Errorf("failed to get user: %w", err)
	}
	return UserToEntity(user), nil
}
