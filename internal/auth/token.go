package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/vaughan-dsouza/bistro/internal/apperr"
)

// Claims carries the user id both as the standard subject and as userId, which is
// what browser clients of the old API read.
type Claims struct {
	UserID int64 `json:"userId"`
	jwt.RegisteredClaims
}

// Tokens issues and verifies HS256 session tokens. It holds no state besides the key.
type Tokens struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokens(secret string, ttl time.Duration) *Tokens {
	return &Tokens{secret: []byte(secret), ttl: ttl, now: time.Now}
}

func (t *Tokens) Issue(userID int64) (string, error) {
	if len(t.secret) == 0 {
		return "", errors.New("secret not configured")
	}

	now := t.now()
	claims := Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   strconv.FormatInt(userID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify returns the user id asserted by token. Every failure wraps apperr.ErrInvalidToken.
func (t *Tokens) Verify(token string) (int64, error) {
	if token == "" {
		return 0, apperr.ErrInvalidToken
	}

	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(t.now),
	)

	var claims Claims
	_, err := parser.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return t.secret, nil
	})
	if err != nil {
		return 0, fmt.Errorf("%w: %v", apperr.ErrInvalidToken, err)
	}

	id, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil || id <= 0 || id != claims.UserID {
		return 0, fmt.Errorf("%w: bad subject", apperr.ErrInvalidToken)
	}
	return id, nil
}
