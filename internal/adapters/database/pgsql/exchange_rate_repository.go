package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/wallbit/exchange-rates-api/internal/apperrors"
	"github.com/wallbit/exchange-rates-api/internal/core/domain"
	portsrepo "github.com/wallbit/exchange-rates-api/internal/core/ports/repositories"
)

// PgxExchangeRateRepository implements the repositories.ExchangeRateRepository
// interface using pgxpool.
type PgxExchangeRateRepository struct {
	db *pgxpool.Pool
}

var _ portsrepo.ExchangeRateRepository = (*PgxExchangeRateRepository)(nil)

// NewExchangeRateRepository creates a new PgxExchangeRateRepository.
func NewExchangeRateRepository(db *pgxpool.Pool) *PgxExchangeRateRepository {
	return &PgxExchangeRateRepository{db: db}
}

// SaveExchangeRate inserts a new rate record and returns the store-assigned
// id. Decimal parameters bind through their driver valuers, so NUMERIC values
// round-trip exactly.
func (r *PgxExchangeRateRepository) SaveExchangeRate(ctx context.Context, rate domain.NewExchangeRate) (int64, error) {
	query := `
		INSERT INTO exchange_rates (type, buy, sell, rate, diff)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	var id int64
	err := r.db.QueryRow(ctx, query, rate.Type, rate.Buy, rate.Sell, rate.Rate, rate.Diff).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("error inserting exchange rate: %w", err)
	}
	return id, nil
}

// ListExchangeRates returns up to limit records, newest id first. Rows decode
// by column name so a schema reorder cannot silently shift fields.
func (r *PgxExchangeRateRepository) ListExchangeRates(ctx context.Context, limit int) ([]domain.ExchangeRate, error) {
	query := `
		SELECT id, type, buy, sell, rate, diff, created_at
		FROM exchange_rates
		ORDER BY id DESC
		LIMIT $1
	`
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("error listing exchange rates: %w", err)
	}
	rates, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.ExchangeRate])
	if err != nil {
		return nil, fmt.Errorf("error scanning exchange rates: %w", err)
	}
	return rates, nil
}

// FindExchangeRateByID retrieves a single record from the database.
func (r *PgxExchangeRateRepository) FindExchangeRateByID(ctx context.Context, id int64) (*domain.ExchangeRate, error) {
	query := `
		SELECT id, type, buy, sell, rate, diff, created_at
		FROM exchange_rates
		WHERE id = $1
	`
	rows, err := r.db.Query(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("error finding exchange rate: %w", err)
	}
	rate, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[domain.ExchangeRate])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("error finding exchange rate: %w", err)
	}
	return &rate, nil
}

// Ping reports whether the backing store is reachable.
func (r *PgxExchangeRateRepository) Ping(ctx context.Context) error {
	return r.db.Ping(ctx)
}
