package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExchangeRate is one persisted rate observation from the exchange_rates table.
// Records are immutable once created; there is no update or delete path.
// Note: all price fields use a precise decimal type (github.com/shopspring/decimal)
// so values round-trip the NUMERIC columns without float drift.
type ExchangeRate struct {
	ID        int64               `json:"id" db:"id"`
	Type      string              `json:"type" db:"type"`
	Buy       decimal.NullDecimal `json:"buy" db:"buy"`
	Sell      decimal.NullDecimal `json:"sell" db:"sell"`
	Rate      decimal.NullDecimal `json:"rate" db:"rate"`
	Diff      decimal.NullDecimal `json:"diff" db:"diff"`
	CreatedAt time.Time           `json:"createdAt" db:"created_at"`
}

// NewExchangeRate is the insert payload for a rate record. ID and CreatedAt
// are assigned by the store. A manual record may carry only a Type, with every
// price field null.
type NewExchangeRate struct {
	Type string
	Buy  decimal.NullDecimal
	Sell decimal.NullDecimal
	Rate decimal.NullDecimal
	Diff decimal.NullDecimal
}
