package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/coopfletes/backoffice/internal/domain"
)

// AsociadoRepository implements usecase.AsociadoRepository.
type AsociadoRepository struct {
	pool *pgxpool.Pool
}

// NewAsociadoRepository creates a new AsociadoRepository.
func NewAsociadoRepository(pool *pgxpool.Pool) *AsociadoRepository {
	return &AsociadoRepository{pool: pool}
}

const asociadoColumns = `id, codigo, nombre, cedula, phone, address, created_at, updated_at`

// Create inserts a new asociado.
func (r *AsociadoRepository) Create(ctx context.Context, asociado *domain.Asociado) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO asociados (`+asociadoColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`,
		asociado.ID,
		asociado.Codigo,
		asociado.Nombre,
		asociado.Cedula,
		asociado.Phone,
		asociado.Address,
		timeToPgTimestamptz(asociado.CreatedAt),
		timeToPgTimestamptz(asociado.UpdatedAt),
	)

	return err
}

// GetByID retrieves an asociado by ID.
func (r *AsociadoRepository) GetByID(ctx context.Context, id string) (*domain.Asociado, error) {
	a, err := scanAsociado(r.pool.QueryRow(ctx, `
		SELECT `+asociadoColumns+` FROM asociados WHERE id = $1
	`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrAsociadoNotFound
		}
		return nil, err
	}
	return a, nil
}

// Update replaces an asociado row.
func (r *AsociadoRepository) Update(ctx context.Context, asociado *domain.Asociado) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE asociados SET codigo = $2, nombre = $3, cedula = $4, phone = $5,
			address = $6, updated_at = $7
		WHERE id = $1
	`,
		asociado.ID,
		asociado.Codigo,
		asociado.Nombre,
		asociado.Cedula,
		asociado.Phone,
		asociado.Address,
		timeToPgTimestamptz(asociado.UpdatedAt),
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrAsociadoNotFound
	}
	return nil
}

// Delete removes an asociado.
func (r *AsociadoRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM asociados WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrAsociadoNotFound
	}
	return nil
}

// List lists asociados ordered by name.
func (r *AsociadoRepository) List(ctx context.Context, limit, offset int) ([]*domain.Asociado, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+asociadoColumns+` FROM asociados ORDER BY nombre LIMIT $1 OFFSET $2
	`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var asociados []*domain.Asociado
	for rows.Next() {
		a, err := scanAsociado(rows)
		if err != nil {
			return nil, err
		}
		asociados = append(asociados, a)
	}
	return asociados, rows.Err()
}

func scanAsociado(row rowScanner) (*domain.Asociado, error) {
	var (
		a         domain.Asociado
		createdAt pgtype.Timestamptz
		updatedAt pgtype.Timestamptz
	)

	if err := row.Scan(&a.ID, &a.Codigo, &a.Nombre, &a.Cedula, &a.Phone, &a.Address, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	a.CreatedAt = createdAt.Time
	a.UpdatedAt = updatedAt.Time

	return &a, nil
}

// PagoAsociadoRepository implements usecase.PagoAsociadoRepository.
type PagoAsociadoRepository struct {
	pool *pgxpool.Pool
}

// NewPagoAsociadoRepository creates a new PagoAsociadoRepository.
func NewPagoAsociadoRepository(pool *pgxpool.Pool) *PagoAsociadoRepository {
	return &PagoAsociadoRepository{pool: pool}
}

const pagoAsociadoColumns = `id, asociado_id, concepto, cuotas, monto_bs, monto_usd,
	fecha_vencimiento, status, created_at, updated_at`

// Create inserts a new member charge.
func (r *PagoAsociadoRepository) Create(ctx context.Context, pago *domain.PagoAsociado) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO pagos_asociados (`+pagoAsociadoColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`,
		pago.ID,
		pago.AsociadoID,
		pago.Concepto,
		pago.Cuotas,
		decimalToNumeric(pago.MontoBs),
		decimalToNumeric(pago.MontoUsd),
		timeToPgTimestamptz(pago.FechaVencimiento),
		string(pago.Status),
		timeToPgTimestamptz(pago.CreatedAt),
		timeToPgTimestamptz(pago.UpdatedAt),
	)

	return err
}

// GetByID retrieves a member charge by ID.
func (r *PagoAsociadoRepository) GetByID(ctx context.Context, id string) (*domain.PagoAsociado, error) {
	p, err := scanPagoAsociado(r.pool.QueryRow(ctx, `
		SELECT `+pagoAsociadoColumns+` FROM pagos_asociados WHERE id = $1
	`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrPagoAsociadoNotFound
		}
		return nil, err
	}
	return p, nil
}

// Update replaces a member charge row.
func (r *PagoAsociadoRepository) Update(ctx context.Context, pago *domain.PagoAsociado) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE pagos_asociados SET concepto = $2, cuotas = $3, monto_bs = $4,
			monto_usd = $5, fecha_vencimiento = $6, status = $7, updated_at = $8
		WHERE id = $1
	`,
		pago.ID,
		pago.Concepto,
		pago.Cuotas,
		decimalToNumeric(pago.MontoBs),
		decimalToNumeric(pago.MontoUsd),
		timeToPgTimestamptz(pago.FechaVencimiento),
		string(pago.Status),
		timeToPgTimestamptz(pago.UpdatedAt),
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrPagoAsociadoNotFound
	}
	return nil
}

// Delete removes a member charge.
func (r *PagoAsociadoRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM pagos_asociados WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrPagoAsociadoNotFound
	}
	return nil
}

// ListByAsociado lists a member's charges, newest due date first.
func (r *PagoAsociadoRepository) ListByAsociado(ctx context.Context, asociadoID string) ([]*domain.PagoAsociado, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+pagoAsociadoColumns+` FROM pagos_asociados
		WHERE asociado_id = $1 ORDER BY fecha_vencimiento DESC
	`, asociadoID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var pagos []*domain.PagoAsociado
	for rows.Next() {
		p, err := scanPagoAsociado(rows)
		if err != nil {
			return nil, err
		}
		pagos = append(pagos, p)
	}
	return pagos, rows.Err()
}

func scanPagoAsociado(row rowScanner) (*domain.PagoAsociado, error) {
	var (
		p                domain.PagoAsociado
		montoBs          pgtype.Numeric
		montoUsd         pgtype.Numeric
		fechaVencimiento pgtype.Timestamptz
		status           string
		createdAt        pgtype.Timestamptz
		updatedAt        pgtype.Timestamptz
	)

	if err := row.Scan(&p.ID, &p.AsociadoID, &p.Concepto, &p.Cuotas, &montoBs, &montoUsd,
		&fechaVencimiento, &status, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	p.MontoBs = numericToDecimal(montoBs)
	p.MontoUsd = numericToDecimal(montoUsd)
	p.FechaVencimiento = fechaVencimiento.Time
	p.Status = domain.PagoAsociadoStatus(status)
	p.CreatedAt = createdAt.Time
	p.UpdatedAt = updatedAt.Time

	return &p, nil
}
