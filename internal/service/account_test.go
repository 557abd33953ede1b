package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/vaughan-dsouza/bistro/internal/apperr"
	"github.com/vaughan-dsouza/bistro/internal/auth"
	"github.com/vaughan-dsouza/bistro/internal/logger"
	"github.com/vaughan-dsouza/bistro/internal/models"
)

func newAccountService(users UserStore) (*AccountService, *auth.Tokens) {
	tokens := auth.NewTokens("test-secret", time.Hour)
	return NewAccountService(users, tokens, bcrypt.MinCost, logger.Discard()), tokens
}

func TestSignupThenLogin(t *testing.T) {
	users := new(MockUserStore)
	svc, tokens := newAccountService(users)
	ctx := context.Background()

	var storedHash string
	users.On("EmailExists", ctx, "ada@example.com").Return(false, nil).Once()
	users.On("Create", ctx, "Ada", "ada@example.com", mock.AnythingOfType("string")).
		Run(func(args mock.Arguments) { storedHash = args.String(3) }).
		Return(&models.User{ID: 7, Name: "Ada", Email: "ada@example.com"}, nil).Once()

	signup, err := svc.Signup(ctx, " Ada ", "ada@example.com", "pa55word")
	require.NoError(t, err)
	assert.Equal(t, models.PublicUser{ID: 7, Name: "Ada", Email: "ada@example.com"}, signup.User)
	assert.NotEqual(t, "pa55word", storedHash)

	id, err := tokens.Verify(signup.Token)
	require.NoError(t, err)
	assert.Equal(t, int64(7), id)

	users.On("GetByEmail", ctx, "ada@example.com").
		Return(&models.User{ID: 7, Name: "Ada", Email: "ada@example.com", Password: storedHash}, nil).Once()

	login, err := svc.Login(ctx, "ada@example.com", "pa55word")
	require.NoError(t, err)
	assert.Equal(t, int64(7), login.User.ID)

	id, err = svc.Authenticate(login.Token)
	require.NoError(t, err)
	assert.Equal(t, int64(7), id)

	users.AssertExpectations(t)
}

func TestSignupDuplicateEmail(t *testing.T) {
	users := new(MockUserStore)
	svc, _ := newAccountService(users)
	ctx := context.Background()

	users.On("EmailExists", ctx, "ada@example.com").Return(true, nil).Once()

	_, err := svc.Signup(ctx, "Ada", "ada@example.com", "pa55word")
	assert.ErrorIs(t, err, apperr.ErrEmailTaken)
	users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestSignupRaceOnUniqueConstraint(t *testing.T) {
	users := new(MockUserStore)
	svc, _ := newAccountService(users)
	ctx := context.Background()

	users.On("EmailExists", ctx, "ada@example.com").Return(false, nil).Once()
	users.On("Create", ctx, "Ada", "ada@example.com", mock.Anything).
		Return(nil, fmt.Errorf("create user: %w", &apperr.PersistenceError{Op: "get", Err: apperr.ErrConflict})).Once()

	_, err := svc.Signup(ctx, "Ada", "ada@example.com", "pa55word")
	assert.ErrorIs(t, err, apperr.ErrEmailTaken)
}

func TestSignupValidation(t *testing.T) {
	svc, _ := newAccountService(new(MockUserStore))

	cases := []struct{ name, email, password, field string }{
		{"", "a@b.c", "pw", "name"},
		{"Ada", "  ", "pw", "email"},
		{"Ada", "a@b.c", "", "password"},
	}
	for _, tc := range cases {
		_, err := svc.Signup(context.Background(), tc.name, tc.email, tc.password)
		var ve *apperr.ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, tc.field, ve.Field)
	}
}

func TestLoginFailures(t *testing.T) {
	users := new(MockUserStore)
	svc, _ := newAccountService(users)
	ctx := context.Background()

	hash, err := auth.HashPassword("right", bcrypt.MinCost)
	require.NoError(t, err)

	users.On("GetByEmail", ctx, "ghost@example.com").Return(nil, apperr.ErrNotFound)
	users.On("GetByEmail", ctx, "ada@example.com").Return(&models.User{ID: 1, Password: hash}, nil)
	users.On("GetByEmail", ctx, "down@example.com").Return(nil, &apperr.PersistenceError{Op: "get", Err: errors.New("timeout")})

	_, err = svc.Login(ctx, "ghost@example.com", "right")
	assert.ErrorIs(t, err, apperr.ErrInvalidCredentials)

	_, err = svc.Login(ctx, "ada@example.com", "wrong")
	assert.ErrorIs(t, err, apperr.ErrInvalidCredentials)

	_, err = svc.Login(ctx, "", "right")
	assert.ErrorIs(t, err, apperr.ErrInvalidCredentials)

	_, err = svc.Login(ctx, "down@example.com", "right")
	var pe *apperr.PersistenceError
	assert.ErrorAs(t, err, &pe)
}

func TestAuthenticateRejectsGarbage(t *testing.T) {
	svc, _ := newAccountService(new(MockUserStore))
	_, err := svc.Authenticate("garbage")
	assert.ErrorIs(t, err, apperr.ErrInvalidToken)
}
