package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/coopfletes/backoffice/internal/domain"
)

// CompanyRepository implements usecase.CompanyRepository. The configuration
// lives in a single row; Update upserts it.
type CompanyRepository struct {
	pool *pgxpool.Pool
}

// NewCompanyRepository creates a new CompanyRepository.
func NewCompanyRepository(pool *pgxpool.Pool) *CompanyRepository {
	return &CompanyRepository{pool: pool}
}

// Get returns the company configuration.
func (r *CompanyRepository) Get(ctx context.Context) (domain.CompanyInfo, error) {
	var (
		info      domain.CompanyInfo
		costPerKg pgtype.Numeric
		bcvRate   pgtype.Numeric
		updatedAt pgtype.Timestamptz
	)

	err := r.pool.QueryRow(ctx, `
		SELECT name, rif, address, phone, cost_per_kg, bcv_rate, updated_at
		FROM company_info WHERE id = 1
	`).Scan(&info.Name, &info.RIF, &info.Address, &info.Phone, &costPerKg, &bcvRate, &updatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Fresh installs run before configuration; billing on an
			// unconfigured tariff yields zero freight, not an error.
			return domain.CompanyInfo{}, nil
		}
		return domain.CompanyInfo{}, err
	}

	info.CostPerKg = numericToDecimal(costPerKg)
	info.BCVRate = numericToDecimal(bcvRate)
	info.UpdatedAt = updatedAt.Time

	return info, nil
}

// Update upserts the company configuration row.
func (r *CompanyRepository) Update(ctx context.Context, info domain.CompanyInfo) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO company_info (id, name, rif, address, phone, cost_per_kg, bcv_rate, updated_at)
		VALUES (1, $1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			rif = EXCLUDED.rif,
			address = EXCLUDED.address,
			phone = EXCLUDED.phone,
			cost_per_kg = EXCLUDED.cost_per_kg,
			bcv_rate = EXCLUDED.bcv_rate,
			updated_at = EXCLUDED.updated_at
	`,
		info.Name,
		info.RIF,
		info.Address,
		info.Phone,
		decimalToNumeric(info.CostPerKg),
		decimalToNumeric(info.BCVRate),
		timeToPgTimestamptz(info.UpdatedAt),
	)

	return err
}

// PaymentMethodRepository implements usecase.PaymentMethodRepository.
type PaymentMethodRepository struct {
	pool *pgxpool.Pool
}

// NewPaymentMethodRepository creates a new PaymentMethodRepository.
func NewPaymentMethodRepository(pool *pgxpool.Pool) *PaymentMethodRepository {
	return &PaymentMethodRepository{pool: pool}
}

// List returns the configured payment methods.
func (r *PaymentMethodRepository) List(ctx context.Context) ([]*domain.PaymentMethod, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, name FROM payment_methods ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var methods []*domain.PaymentMethod
	for rows.Next() {
		var pm domain.PaymentMethod
		if err := rows.Scan(&pm.ID, &pm.Name); err != nil {
			return nil, err
		}
		methods = append(methods, &pm)
	}
	return methods, rows.Err()
}
