package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/coopfletes/backoffice/internal/domain"
)

// CuentaRepository implements usecase.CuentaRepository.
type CuentaRepository struct {
	pool *pgxpool.Pool
}

// NewCuentaRepository creates a new CuentaRepository.
func NewCuentaRepository(pool *pgxpool.Pool) *CuentaRepository {
	return &CuentaRepository{pool: pool}
}

// Create inserts a new chart-of-accounts entry.
func (r *CuentaRepository) Create(ctx context.Context, cuenta *domain.CuentaContable) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO cuentas_contables (id, codigo, nombre, tipo, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`,
		cuenta.ID,
		cuenta.Codigo,
		cuenta.Nombre,
		string(cuenta.Tipo),
		timeToPgTimestamptz(cuenta.CreatedAt),
		timeToPgTimestamptz(cuenta.UpdatedAt),
	)

	return err
}

// GetByID retrieves a chart-of-accounts entry by ID.
func (r *CuentaRepository) GetByID(ctx context.Context, id string) (*domain.CuentaContable, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, codigo, nombre, tipo, created_at, updated_at
		FROM cuentas_contables WHERE id = $1
	`, id)

	cuenta, err := scanCuenta(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCuentaNotFound
		}
		return nil, err
	}
	return cuenta, nil
}

// Update replaces a chart-of-accounts row.
func (r *CuentaRepository) Update(ctx context.Context, cuenta *domain.CuentaContable) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE cuentas_contables SET codigo = $2, nombre = $3, tipo = $4, updated_at = $5
		WHERE id = $1
	`,
		cuenta.ID,
		cuenta.Codigo,
		cuenta.Nombre,
		string(cuenta.Tipo),
		timeToPgTimestamptz(cuenta.UpdatedAt),
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrCuentaNotFound
	}
	return nil
}

// Delete removes a chart-of-accounts entry.
func (r *CuentaRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM cuentas_contables WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrCuentaNotFound
	}
	return nil
}

// List returns the full chart of accounts ordered by code.
func (r *CuentaRepository) List(ctx context.Context) ([]*domain.CuentaContable, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, codigo, nombre, tipo, created_at, updated_at
		FROM cuentas_contables
		ORDER BY codigo
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cuentas []*domain.CuentaContable
	for rows.Next() {
		c, err := scanCuenta(rows)
		if err != nil {
			return nil, err
		}
		cuentas = append(cuentas, c)
	}
	return cuentas, rows.Err()
}

func scanCuenta(row rowScanner) (*domain.CuentaContable, error) {
	var (
		c         domain.CuentaContable
		tipo      string
		createdAt pgtype.Timestamptz
		updatedAt pgtype.Timestamptz
	)

	if err := row.Scan(&c.ID, &c.Codigo, &c.Nombre, &tipo, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	c.Tipo = domain.CuentaType(tipo)
	c.CreatedAt = createdAt.Time
	c.UpdatedAt = updatedAt.Time

	return &c, nil
}
