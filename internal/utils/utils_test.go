package utils

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vaughan-dsouza/bistro/internal/apperr"
)

func TestErrorHidesDetailsUnlessDebug(t *testing.T) {
	err := &apperr.PersistenceError{Op: "select", Err: errors.New("relation \"menu_items\" does not exist")}

	rr := httptest.NewRecorder()
	Error(rr, err, false)
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.JSONEq(t, `{"error":"Internal server error"}`, rr.Body.String())

	rr = httptest.NewRecorder()
	Error(rr, err, true)
	assert.Contains(t, rr.Body.String(), `does not exist`)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
}

func TestDecodeJSON(t *testing.T) {
	var v struct {
		Email string `json:"email"`
	}

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"email":"a@b.c","extra":1}`))
	require.NoError(t, DecodeJSON(rr, req, &v))
	assert.Equal(t, "a@b.c", v.Email)

	rr = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"email":`))
	assert.ErrorIs(t, DecodeJSON(rr, req, &v), apperr.ErrInvalidJSON)
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/", nil)
	assert.Error(t, DecodeJSON(rr, req, &v))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestUserIDContext(t *testing.T) {
	_, ok := UserID(context.Background())
	assert.False(t, ok)

	id, ok := UserID(WithUserID(context.Background(), 9))
	assert.True(t, ok)
	assert.Equal(t, int64(9), id)
}
