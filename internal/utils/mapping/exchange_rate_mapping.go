package mapping

import (
	"github.com/shopspring/decimal"
	"github.com/wallbit/exchange-rates-api/internal/core/domain"
)

var two = decimal.NewFromInt(2)

// ToNewExchangeRate converts one upstream quote to an insert payload. Rate and
// diff are always recomputed here from the decoded buy/sell prices in exact
// decimal arithmetic; upstream-supplied aggregates are never trusted.
func ToNewExchangeRate(u domain.UpstreamRate) domain.NewExchangeRate {
	return domain.NewExchangeRate{
		Type: u.House,
		Buy:  decimal.NewNullDecimal(u.Buy),
		Sell: decimal.NewNullDecimal(u.Sell),
		Rate: decimal.NewNullDecimal(u.Buy.Add(u.Sell).Div(two)),
		Diff: decimal.NewNullDecimal(u.Sell.Sub(u.Buy)),
	}
}
