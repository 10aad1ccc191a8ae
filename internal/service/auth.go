package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/Skotchmaster/furniture_store/internal/models"
	"github.com/Skotchmaster/furniture_store/internal/mykafka"
	"github.com/Skotchmaster/furniture_store/internal/repo"
	pkg_hash "github.com/Skotchmaster/furniture_store/pkg/hash"
	"github.com/Skotchmaster/furniture_store/pkg/logging"
	"github.com/Skotchmaster/furniture_store/pkg/tokens"
)

const DefaultTokenTTL = 24 * time.Hour

type AuthService struct {
	Repo      *repo.GormRepo
	JWTSecret []byte
	TokenTTL  time.Duration
	Events    EventPublisher
}

type AuthResult struct {
	User      *models.User
	Token     string
	ExpiresAt time.Time
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *AuthService) Register(ctx context.Context, name, email, password string) (*AuthResult, error) {
	l := logging.FromContext(ctx).With("svc", "auth.register")

	name = strings.TrimSpace(name)
	email = normalizeEmail(email)
	if name == "" || email == "" || password == "" {
		return nil, fmt.Errorf("%w: name, email and password required", ErrValidation)
	}
	if len(password) > MaxPasswordBytes {
		return nil, ErrPasswordTooLong
	}

	pwHash, err := pkg_hash.HashPassword(password)
	if err != nil {
		l.Error("register_error", "status", 500, "reason", "cannot hash the password", "error", err)
		return nil, err
	}

	user := &models.User{Name: name, Email: email, PasswordHash: pwHash}
	if err := s.Repo.CreateUser(ctx, user); err != nil {
		if errors.Is(err, repo.ErrEmailTaken) {
			l.Warn("register_error", "status", 400, "reason", "email already registered")
			return nil, fmt.Errorf("%w: email already registered", ErrConflict)
		}
		l.Error("register_error", "status", 500, "reason", "cannot create user", "error", err)
		return nil, err
	}

	res, err := s.issue(user)
	if err != nil {
		l.Error("register_error", "status", 500, "reason", "cannot issue token", "error", err)
		return nil, err
	}

	publish(ctx, s.Events, strconv.FormatUint(uint64(user.ID), 10), mykafka.NewEvent(mykafka.EventUserRegistered, map[string]any{
		"userId": user.ID,
		"email":  user.Email,
	}))
	l.Info("register_successful", "user_id", user.ID)
	return res, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	email = normalizeEmail(email)
	l := logging.FromContext(ctx).With("svc", "auth.login", "email", email)

	if email == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	user, err := s.Repo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			l.Warn("login_failed", "status", 401, "reason", "unknown email")
			return nil, ErrInvalidCredentials
		}
		l.Error("login_failed", "status", 500, "error", err)
		return nil, err
	}
	if !pkg_hash.CheckPassword(user.PasswordHash, password) {
		l.Warn("login_failed", "status", 401, "reason", "wrong password")
		return nil, ErrInvalidCredentials
	}

	res, err := s.issue(user)
	if err != nil {
		l.Error("login_failed", "status", 500, "reason", "cannot issue token", "error", err)
		return nil, err
	}
	return res, nil
}

func (s *AuthService) UserByID(ctx context.Context, id uint) (*models.User, error) {
	user, err := s.Repo.GetUserByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: user %d", ErrNotFound, id)
	}
	return user, err
}

func (s *AuthService) DeleteUser(ctx context.Context, id uint) error {
	err := s.Repo.DeleteUser(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: user %d", ErrNotFound, id)
	}
	return err
}

func (s *AuthService) issue(user *models.User) (*AuthResult, error) {
	ttl := s.TokenTTL
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	token, exp, err := tokens.NewAccessToken(user.ID, s.JWTSecret, ttl)
	if err != nil {
		return nil, err
	}
	return &AuthResult{User: user, Token: token, ExpiresAt: exp}, nil
}
