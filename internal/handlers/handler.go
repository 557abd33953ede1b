package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/vaughan-dsouza/bistro/internal/apperr"
	"github.com/vaughan-dsouza/bistro/internal/db"
	"github.com/vaughan-dsouza/bistro/internal/models"
	"github.com/vaughan-dsouza/bistro/internal/service"
	"github.com/vaughan-dsouza/bistro/internal/utils"
)

type Accounts interface {
	Signup(ctx context.Context, name, email, password string) (*service.AuthResult, error)
	Login(ctx context.Context, email, password string) (*service.AuthResult, error)
	Authenticate(token string) (int64, error)
}

type Catalog interface {
	List(ctx context.Context) ([]models.MenuItem, error)
	Create(ctx context.Context, in service.CreateMenuItemInput) (*models.MenuItem, error)
}

type Reservations interface {
	Create(ctx context.Context, in service.CreateReservationInput, ownerID *int64) (*models.Reservation, error)
	ListForUser(ctx context.Context, userID int64) ([]models.Reservation, error)
}

type Database interface {
	Ping(ctx context.Context) error
	DescribeTables(ctx context.Context, names ...string) (map[string]db.TableInfo, error)
}

type Handler struct {
	Auth         *AuthHandler
	Menu         *MenuHandler
	Reservations *ReservationHandler
	System       *SystemHandler
}

func NewHandler(accounts Accounts, catalog Catalog, reservations Reservations, database Database, log *slog.Logger, debug bool) *Handler {
	b := base{log: log, debug: debug}
	return &Handler{
		Auth:         &AuthHandler{base: b, svc: accounts},
		Menu:         &MenuHandler{base: b, svc: catalog},
		Reservations: &ReservationHandler{base: b, svc: reservations},
		System:       &SystemHandler{base: b, db: database},
	}
}

type base struct {
	log   *slog.Logger
	debug bool
}

// fail is the error boundary for every handler: 5xx are logged, the client only
// sees the public message (plus details in debug mode).
func (b base) fail(w http.ResponseWriter, r *http.Request, err error) {
	if apperr.HTTPStatus(err) >= http.StatusInternalServerError {
		b.log.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "error", err)
	}
	utils.Error(w, err, b.debug)
}
