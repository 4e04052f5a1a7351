package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/MFrackowiak/mf-simple-calendar/core/database"
	"github.com/MFrackowiak/mf-simple-calendar/core/logger"
	"github.com/MFrackowiak/mf-simple-calendar/modules/user/entity"

	"github.com/google/uuid"
)

type UserRepository struct {
	db database.IDatabase
}

// UserRepositoryInterface defines the user store contract. Lookups return
// (nil, nil) when the record is absent.
type UserRepositoryInterface interface {
	CreateUser(ctx context.Context, user *entity.User) (uuid.UUID, error)
	GetUserByName(ctx context.Context, username string) (*entity.User, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	GetUsersLike(ctx context.Context, pattern string) ([]entity.User, error)
}

func NewUserRepository(db database.IDatabase) UserRepositoryInterface {
	return &UserRepository{db: db}
}

func (r *UserRepository) CreateUser(ctx context.Context, user *entity.User) (uuid.UUID, error) {
	query := `
		INSERT INTO users (username, password, own_timezone)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	var id uuid.UUID
	row := r.db.QueryRowContext(ctx, query, user.Username, user.Password, user.OwnTimezone)
	if err := row.Scan(&id); err != nil {
		logger.Error("UserRepository:CreateUser:Error:", err)
		return uuid.Nil, err
	}
	return id, nil
}

func (r *UserRepository) GetUserByName(ctx context.Context, username string) (*entity.User, error) {
	query := `SELECT id, username, password, own_timezone FROM users WHERE username = $1`

	var user entity.User
	err := r.db.GetContext(ctx, &user, query, username)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		logger.Error("UserRepository:GetUserByName:Error:", err)
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) GetUserByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	query := `SELECT id, username, password, own_timezone FROM users WHERE id = $1`

	var user entity.User
	err := r.db.GetContext(ctx, &user, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		logger.Error("UserRepository:GetUserByID:Error:", err)
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) GetUsersLike(ctx context.Context, pattern string) ([]entity.User, error) {
	query := `SELECT id, username, password, own_timezone FROM users WHERE username ILIKE $1 ORDER BY username`

	var users []entity.User
	err := r.db.SelectContext(ctx, &users, query, "%"+pattern+"%")
	if err != nil {
		logger.Error("UserRepository:GetUsersLike:Error:", err)
		return nil, err
	}
	return users, nil
}
