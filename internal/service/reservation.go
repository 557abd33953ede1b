package service

import (
	"context"
	"encoding/json"
	"log/slog"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/vaughan-dsouza/bistro/internal/apperr"
	"github.com/vaughan-dsouza/bistro/internal/models"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

type ReservationStore interface {
	Create(ctx context.Context, res models.Reservation) (*models.Reservation, error)
	ListByUser(ctx context.Context, userID int64) ([]models.Reservation, error)
}

// CreateReservationInput accepts party_size as a number or a numeric string, since
// HTML forms serialize every field as text.
type CreateReservationInput struct {
	CustomerName string      `json:"customer_name"`
	Email        string      `json:"email"`
	Date         string      `json:"date"`
	Time         string      `json:"time"`
	PartySize    json.Number `json:"party_size"`
}

type ReservationService struct {
	store ReservationStore
	log   *slog.Logger
}

func NewReservationService(store ReservationStore, log *slog.Logger) *ReservationService {
	return &ReservationService{store: store, log: log}
}

// Create books a table. There is no capacity, double-booking or past-date check.
func (s *ReservationService) Create(ctx context.Context, in CreateReservationInput, ownerID *int64) (*models.Reservation, error) {
	res, err := in.validate()
	if err != nil {
		return nil, err
	}
	res.UserID = ownerID

	created, err := s.store.Create(ctx, res)
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "reservation created",
		"reservation_id", created.ID, "date", created.Date, "time", created.Time, "party_size", created.PartySize)
	return created, nil
}

// ListForUser returns the user's reservations ordered by date then time.
func (s *ReservationService) ListForUser(ctx context.Context, userID int64) ([]models.Reservation, error) {
	list, err := s.store.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if list == nil {
		list = []models.Reservation{}
	}
	return list, nil
}

func (in CreateReservationInput) validate() (models.Reservation, error) {
	res := models.Reservation{
		CustomerName: strings.TrimSpace(in.CustomerName),
		Email:        strings.TrimSpace(in.Email),
		Date:         strings.TrimSpace(in.Date),
		Time:         strings.TrimSpace(in.Time),
	}

	switch {
	case res.CustomerName == "":
		return res, apperr.Missing("customer_name")
	case res.Email == "":
		return res, apperr.Missing("email")
	case res.Date == "":
		return res, apperr.Missing("date")
	case res.Time == "":
		return res, apperr.Missing("time")
	case in.PartySize == "":
		return res, apperr.Missing("party_size")
	}

	// Exact widths only: the stored value must read back as the submitted text.
	if _, err := time.Parse(dateLayout, res.Date); err != nil || len(res.Date) != len(dateLayout) {
		return res, apperr.Invalid("date", "must be YYYY-MM-DD")
	}
	if _, err := time.Parse(timeLayout, res.Time); err != nil || len(res.Time) != len(timeLayout) {
		return res, apperr.Invalid("time", "must be HH:MM")
	}

	size, err := strconv.Atoi(strings.TrimSpace(in.PartySize.String()))
	if err != nil || size <= 0 {
		return res, apperr.Invalid("party_size", "must be a positive integer")
	}
	if size > math.MaxInt32 {
		return res, apperr.Invalid("party_size", "is too large")
	}
	res.PartySize = size
	return res, nil
}
