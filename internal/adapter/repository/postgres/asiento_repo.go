package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/coopfletes/backoffice/internal/domain"
)

// AsientoRepository implements usecase.AsientoRepository. Entry lines are
// stored as one JSONB array; they are only ever read back whole.
type AsientoRepository struct {
	pool *pgxpool.Pool
}

// NewAsientoRepository creates a new AsientoRepository.
func NewAsientoRepository(pool *pgxpool.Pool) *AsientoRepository {
	return &AsientoRepository{pool: pool}
}

// Create inserts a new manual journal entry.
func (r *AsientoRepository) Create(ctx context.Context, asiento *domain.AsientoManual) error {
	entries, err := json.Marshal(asiento.Entries)
	if err != nil {
		return err
	}

	_, err = r.pool.Exec(ctx, `
		INSERT INTO asientos_manuales (id, fecha, descripcion, entries, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`,
		asiento.ID,
		timeToPgTimestamptz(asiento.Fecha),
		asiento.Descripcion,
		entries,
		timeToPgTimestamptz(asiento.CreatedAt),
	)

	return err
}

// GetByID retrieves a manual journal entry by ID.
func (r *AsientoRepository) GetByID(ctx context.Context, id string) (*domain.AsientoManual, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, fecha, descripcion, entries, created_at
		FROM asientos_manuales WHERE id = $1
	`, id)

	asiento, err := scanAsiento(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrAsientoNotFound
		}
		return nil, err
	}
	return asiento, nil
}

// Delete removes a manual journal entry.
func (r *AsientoRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM asientos_manuales WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrAsientoNotFound
	}
	return nil
}

// ListByDateRange lists manual journal entries in the date range.
func (r *AsientoRepository) ListByDateRange(ctx context.Context, start, end *time.Time) ([]*domain.AsientoManual, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, fecha, descripcion, entries, created_at
		FROM asientos_manuales
		WHERE ($1::timestamptz IS NULL OR fecha >= $1)
		  AND ($2::timestamptz IS NULL OR fecha <= $2)
		ORDER BY fecha
	`, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var asientos []*domain.AsientoManual
	for rows.Next() {
		a, err := scanAsiento(rows)
		if err != nil {
			return nil, err
		}
		asientos = append(asientos, a)
	}
	return asientos, rows.Err()
}

func scanAsiento(row rowScanner) (*domain.AsientoManual, error) {
	var (
		a         domain.AsientoManual
		entries   []byte
		fecha     pgtype.Timestamptz
		createdAt pgtype.Timestamptz
	)

	if err := row.Scan(&a.ID, &fecha, &a.Descripcion, &entries, &createdAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(entries, &a.Entries); err != nil {
		return nil, err
	}
	a.Fecha = fecha.Time
	a.CreatedAt = createdAt.Time

	return &a, nil
}
