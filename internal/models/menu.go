package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type MenuItem struct {
	ID          int64     `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Description string    `db:"description" json:"description"`
	Price       Price     `db:"price" json:"price"`
	Category    string    `db:"category" json:"category"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

// Price is a currency amount. It is encoded as a two-decimal string ("12.50"),
// the same text Postgres returns for DECIMAL(10,2).
type Price struct {
	decimal.Decimal
}

func NewPrice(d decimal.Decimal) Price {
	return Price{d.Round(2)}
}

func (p Price) MarshalJSON() ([]byte, error) {
	return []byte(`"` + p.StringFixed(2) + `"`), nil
}
