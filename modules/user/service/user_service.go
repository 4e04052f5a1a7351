package service

import (
	"context"
	"strings"
	"time"

	"github.com/MFrackowiak/mf-simple-calendar/core/cache"
	"github.com/MFrackowiak/mf-simple-calendar/core/constants"
	"github.com/MFrackowiak/mf-simple-calendar/core/database"
	"github.com/MFrackowiak/mf-simple-calendar/core/errors"
	"github.com/MFrackowiak/mf-simple-calendar/core/logger"
	"github.com/MFrackowiak/mf-simple-calendar/core/timeutil"
	"github.com/MFrackowiak/mf-simple-calendar/core/utils"
	"github.com/MFrackowiak/mf-simple-calendar/modules/user/dto"
	"github.com/MFrackowiak/mf-simple-calendar/modules/user/entity"
	"github.com/MFrackowiak/mf-simple-calendar/modules/user/repository"
)

// UserService handles registration, authentication and user search.
type UserService struct {
	repo  repository.UserRepositoryInterface
	cache cache.Cache
}

type UserServiceInterface interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, *errors.AppError)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, *errors.AppError)
	Logout(ctx context.Context, token string, claims *utils.TokenClaims) *errors.AppError
	SearchUsers(ctx context.Context, pattern string) (*dto.UsersLikeResponse, *errors.AppError)
}

func NewUserService(repo repository.UserRepositoryInterface, c cache.Cache) UserServiceInterface {
	return &UserService{repo: repo, cache: c}
}

// Register creates a new account. Usernames are unique; the home timezone is
// fixed at registration.
func (s *UserService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, *errors.AppError) {
	username := strings.TrimSpace(req.Username)
	password := strings.TrimSpace(req.Password)

	if len(username) < constants.NameMinLength || len(username) > constants.NameMaxLength {
		return nil, errors.NewAppError(errors.ErrValidation, "Username should have between 4 and 30 characters.", nil)
	}
	if len(password) < constants.PasswordMinLength || len(password) > constants.PasswordMaxLength {
		return nil, errors.NewAppError(errors.ErrValidation, "Password should have between 8 and 30 characters.", nil)
	}
	if err := timeutil.ValidateOffset(req.Timezone); err != nil {
		return nil, errors.NewAppError(errors.ErrValidation, "Timezone should be between -11 and +14, 0 is UTC.", nil)
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrStore, "Database error. Contact administrator.", err)
	}

	id, err := s.repo.CreateUser(ctx, &entity.User{
		Username:    username,
		Password:    hash,
		OwnTimezone: req.Timezone,
	})
	if err != nil {
		if database.IsUniqueViolation(err) {
			return nil, errors.NewAppError(errors.ErrValidation, "Username already taken.", err)
		}
		return nil, errors.NewAppError(errors.ErrStore, "Database error. Contact administrator.", err)
	}

	logger.Info("UserService:Register:Created", "user_id", id, "username", username)
	return &dto.RegisterResponse{UserID: id}, nil
}

// Login verifies the credential and issues a signed token carrying the user's
// id and home timezone.
func (s *UserService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, *errors.AppError) {
	username := strings.TrimSpace(req.Username)
	password := strings.TrimSpace(req.Password)

	user, err := s.repo.GetUserByName(ctx, username)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrStore, "Database error. Contact administrator.", err)
	}
	if user == nil || !utils.ComparePassword(user.Password, password) {
		return nil, errors.NewAppError(errors.ErrValidation, "Wrong username or password.", nil)
	}

	token, err := utils.GenerateToken(user.ID, user.Username, user.OwnTimezone)
	if err != nil {
		logger.Error("UserService:Login:GenerateToken:Error:", err)
		return nil, errors.NewAppError(errors.ErrStore, "Database error. Contact administrator.", err)
	}

	return &dto.LoginResponse{
		Token:    token,
		UserID:   user.ID,
		Username: user.Username,
		Timezone: user.OwnTimezone,
	}, nil
}

// Logout blacklists the token until its natural expiry.
func (s *UserService) Logout(ctx context.Context, token string, claims *utils.TokenClaims) *errors.AppError {
	if s.cache == nil {
		return nil
	}

	ttl := time.Duration(constants.TokenExpiryHours) * time.Hour
	if claims != nil && claims.ExpiresAt != nil {
		ttl = time.Until(claims.ExpiresAt.Time)
	}

	if err := s.cache.AddToTokenBlacklist(ctx, token, ttl); err != nil {
		logger.Error("UserService:Logout:Blacklist:Error:", err)
		return errors.NewAppError(errors.ErrStore, "Database error. Contact administrator.", err)
	}
	return nil
}

// SearchUsers returns users whose name contains the pattern, for the
// share/invite pickers.
func (s *UserService) SearchUsers(ctx context.Context, pattern string) (*dto.UsersLikeResponse, *errors.AppError) {
	users, err := s.repo.GetUsersLike(ctx, strings.TrimSpace(pattern))
	if err != nil {
		return nil, errors.NewAppError(errors.ErrStore, "Database error. Contact administrator.", err)
	}

	results := make([]dto.UserSearchResult, 0, len(users))
	for _, u := range users {
		results = append(results, dto.UserSearchResult{UserID: u.ID, Username: u.Username})
	}
	return &dto.UsersLikeResponse{UsersLike: results}, nil
}
