package repository

import (
	"context"

	"stayhub/internal/domain/user"
	"stayhub/internal/infra"
	sqlc "stayhub/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UserWriteQueries interface {
	CreateUser(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateUserParams) (sqlc.CreateUserRow, error)
	UpdateUserLastLogin(ctx context.Context, db sqlc.DBTX, id uuid.UUID) error
	UpdateUserPasswordHash(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateUserPasswordHashParams) error
}

type UserRepository struct {
	queries UserWriteQueries
}

func NewUserRepository(queries UserWriteQueries) *UserRepository {
	return &UserRepository{
		queries: queries,
	}
}

func (r *UserRepository) Create(ctx context.Context, tx sqlc.DBTX, u *user.User) error {
	params := sqlc.CreateUserParams{
		ID:           u.ID(),
		FirstName:    u.FirstName().Value(),
		LastName:     u.LastName().Value(),
		Email:        u.Email().Value(),
		PasswordHash: u.PasswordHash(),
		Role:         u.Role().String(),
	}

	if _, err := r.queries.CreateUser(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to create user", err)
	}
	return nil
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID) error {
	err := r.queries.UpdateUserLastLogin(ctx, tx, userID)
	if err != nil {
		return infra.WrapRepoErr("failed to update user last login", err)
	}
	return nil
}

func (r *UserRepository) UpdatePasswordHash(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID, hash string) error {
	err := r.queries.UpdateUserPasswordHash(ctx, tx, sqlc.UpdateUserPasswordHashParams{ID: userID, PasswordHash: hash})
	if err != nil {
		return infra.WrapRepoErr("failed to update user password hash", err)
	}
	return nil
}
