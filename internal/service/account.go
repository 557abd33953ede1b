package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/vaughan-dsouza/bistro/internal/apperr"
	"github.com/vaughan-dsouza/bistro/internal/auth"
	"github.com/vaughan-dsouza/bistro/internal/models"
)

type UserStore interface {
	Create(ctx context.Context, name, email, passwordHash string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
}

type TokenService interface {
	Issue(userID int64) (string, error)
	Verify(token string) (int64, error)
}

// AuthResult is the body of a successful signup or login.
type AuthResult struct {
	Token string            `json:"token"`
	User  models.PublicUser `json:"user"`
}

type AccountService struct {
	users      UserStore
	tokens     TokenService
	bcryptCost int
	log        *slog.Logger
}

func NewAccountService(users UserStore, tokens TokenService, bcryptCost int, log *slog.Logger) *AccountService {
	return &AccountService{users: users, tokens: tokens, bcryptCost: bcryptCost, log: log}
}

func (s *AccountService) Signup(ctx context.Context, name, email, password string) (*AuthResult, error) {
	name, email = strings.TrimSpace(name), strings.TrimSpace(email)
	switch {
	case name == "":
		return nil, apperr.Missing("name")
	case email == "":
		return nil, apperr.Missing("email")
	case password == "":
		return nil, apperr.Missing("password")
	}

	exists, err := s.users.EmailExists(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperr.ErrEmailTaken
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user, err := s.users.Create(ctx, name, email, hash)
	if errors.Is(err, apperr.ErrConflict) {
		// lost a race with a concurrent signup for the same email
		return nil, apperr.ErrEmailTaken
	}
	if err != nil {
		return nil, err
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	s.log.InfoContext(ctx, "user registered", "user_id", user.ID)
	return &AuthResult{Token: token, User: user.Public()}, nil
}

// Login never tells the caller whether the email or the password was wrong.
func (s *AccountService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, apperr.ErrInvalidCredentials
	}

	user, err := s.users.GetByEmail(ctx, email)
	if errors.Is(err, apperr.ErrNotFound) {
		return nil, apperr.ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("lookup user: %w", err)
	}

	if !auth.CheckPassword(password, user.Password) {
		return nil, apperr.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	s.log.InfoContext(ctx, "user logged in", "user_id", user.ID)
	return &AuthResult{Token: token, User: user.Public()}, nil
}

// Authenticate resolves a bearer token to a user id.
func (s *AccountService) Authenticate(token string) (int64, error) {
	return s.tokens.Verify(strings.TrimSpace(token))
}
