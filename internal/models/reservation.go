package models

import "time"

// Reservation keeps Date ("2006-01-02") and Time ("15:04") in their submitted text
// form; the SQL layer formats them back the same way.
type Reservation struct {
	ID           int64     `db:"id" json:"id"`
	CustomerName string    `db:"customer_name" json:"customer_name"`
	Email        string    `db:"email" json:"email"`
	Date         string    `db:"date" json:"date"`
	Time         string    `db:"time" json:"time"`
	PartySize    int       `db:"party_size" json:"party_size"`
	UserID       *int64    `db:"user_id" json:"user_id"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}
