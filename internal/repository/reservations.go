package repository

import (
	"context"
	"fmt"

	"github.com/vaughan-dsouza/bistro/internal/models"
)

const reservationColumns = `
	r.id, r.customer_name, r.email,
	to_char(r.date, 'YYYY-MM-DD') AS date,
	to_char(r.time, 'HH24:MI') AS time,
	r.party_size, r.user_id, r.created_at`

type ReservationRepository struct {
	q Querier
}

func NewReservationRepository(q Querier) *ReservationRepository {
	return &ReservationRepository{q: q}
}

func (r *ReservationRepository) Create(ctx context.Context, res models.Reservation) (*models.Reservation, error) {
	err := r.q.Get(ctx, &res, `
		INSERT INTO reservations AS r (customer_name, email, date, time, party_size, user_id)
		VALUES ($1, $2, $3::date, $4::time, $5, $6)
		RETURNING `+reservationColumns,
		res.CustomerName, res.Email, res.Date, res.Time, res.PartySize, res.UserID)
	if err != nil {
		return nil, fmt.Errorf("create reservation: %w", err)
	}
	return &res, nil
}

// ListByUser returns the user's reservations, earliest first.
func (r *ReservationRepository) ListByUser(ctx context.Context, userID int64) ([]models.Reservation, error) {
	list := []models.Reservation{}
	err := r.q.Select(ctx, &list, `
		SELECT `+reservationColumns+`
		FROM reservations r
		WHERE r.user_id = $1
		ORDER BY r.date, r.time
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("list reservations: %w", err)
	}
	return list, nil
}
