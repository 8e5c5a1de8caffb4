package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/coopfletes/backoffice/internal/domain"
	"github.com/coopfletes/backoffice/internal/usecase"
)

// RemesaRepository implements usecase.RemesaRepository. Creation and deletion
// only happen inside dispatch transactions.
type RemesaRepository struct {
	pool *pgxpool.Pool
}

// NewRemesaRepository creates a new RemesaRepository.
func NewRemesaRepository(pool *pgxpool.Pool) *RemesaRepository {
	return &RemesaRepository{pool: pool}
}

// CreateTx inserts a new remesa inside a transaction.
func (r *RemesaRepository) CreateTx(ctx context.Context, tx usecase.Transaction, remesa *domain.Remesa) error {
	_, err := tx.(*Tx).PgxTx().Exec(ctx, `
		INSERT INTO remesas (id, remesa_number, vehicle_id, asociado_id, invoice_ids, date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`,
		remesa.ID,
		remesa.RemesaNumber,
		remesa.VehicleID,
		remesa.AsociadoID,
		remesa.InvoiceIDs,
		timeToPgTimestamptz(remesa.Date),
		timeToPgTimestamptz(remesa.CreatedAt),
	)

	return err
}

// GetByID retrieves a remesa by ID.
func (r *RemesaRepository) GetByID(ctx context.Context, id string) (*domain.Remesa, error) {
	remesa, err := scanRemesa(r.pool.QueryRow(ctx, `
		SELECT id, remesa_number, vehicle_id, asociado_id, invoice_ids, date, created_at
		FROM remesas WHERE id = $1
	`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRemesaNotFound
		}
		return nil, err
	}
	return remesa, nil
}

// DeleteTx removes a remesa inside a transaction.
func (r *RemesaRepository) DeleteTx(ctx context.Context, tx usecase.Transaction, id string) error {
	tag, err := tx.(*Tx).PgxTx().Exec(ctx, `DELETE FROM remesas WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrRemesaNotFound
	}
	return nil
}

// List lists remesas with pagination, newest first.
func (r *RemesaRepository) List(ctx context.Context, limit, offset int) ([]*domain.Remesa, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, remesa_number, vehicle_id, asociado_id, invoice_ids, date, created_at
		FROM remesas
		ORDER BY date DESC, id DESC
		LIMIT $1 OFFSET $2
	`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var remesas []*domain.Remesa
	for rows.Next() {
		remesa, err := scanRemesa(rows)
		if err != nil {
			return nil, err
		}
		remesas = append(remesas, remesa)
	}
	return remesas, rows.Err()
}

// NextRemesaNumber pulls the next value off the remesa number sequence.
func (r *RemesaRepository) NextRemesaNumber(ctx context.Context) (string, error) {
	var n int64
	if err := r.pool.QueryRow(ctx, `SELECT nextval('remesa_number_seq')`).Scan(&n); err != nil {
		return "", err
	}
	return fmt.Sprintf("R-%05d", n), nil
}

func scanRemesa(row rowScanner) (*domain.Remesa, error) {
	var (
		remesa    domain.Remesa
		date      pgtype.Timestamptz
		createdAt pgtype.Timestamptz
	)

	err := row.Scan(
		&remesa.ID,
		&remesa.RemesaNumber,
		&remesa.VehicleID,
		&remesa.AsociadoID,
		&remesa.InvoiceIDs,
		&date,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}
	remesa.Date = date.Time
	remesa.CreatedAt = createdAt.Time

	return &remesa, nil
}
