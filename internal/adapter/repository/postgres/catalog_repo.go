package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/coopfletes/backoffice/internal/domain"
	"github.com/coopfletes/backoffice/internal/usecase"
)

// ClientRepository implements usecase.ClientRepository.
type ClientRepository struct {
	pool *pgxpool.Pool
}

// NewClientRepository creates a new ClientRepository.
func NewClientRepository(pool *pgxpool.Pool) *ClientRepository {
	return &ClientRepository{pool: pool}
}

// Create inserts a new client.
func (r *ClientRepository) Create(ctx context.Context, client *domain.Client) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO clients (id, name, id_number, phone, address, type, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`,
		client.ID,
		client.Name,
		client.IDNumber,
		client.Phone,
		client.Address,
		client.Type,
		timeToPgTimestamptz(client.CreatedAt),
		timeToPgTimestamptz(client.UpdatedAt),
	)

	return err
}

// GetByID retrieves a client by ID.
func (r *ClientRepository) GetByID(ctx context.Context, id string) (*domain.Client, error) {
	var (
		c         domain.Client
		createdAt pgtype.Timestamptz
		updatedAt pgtype.Timestamptz
	)

	err := r.pool.QueryRow(ctx, `
		SELECT id, name, id_number, phone, address, type, created_at, updated_at
		FROM clients WHERE id = $1
	`, id).Scan(&c.ID, &c.Name, &c.IDNumber, &c.Phone, &c.Address, &c.Type, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrClientNotFound
		}
		return nil, err
	}
	c.CreatedAt = createdAt.Time
	c.UpdatedAt = updatedAt.Time

	return &c, nil
}

// Update replaces a client row.
func (r *ClientRepository) Update(ctx context.Context, client *domain.Client) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE clients SET name = $2, id_number = $3, phone = $4, address = $5,
			type = $6, updated_at = $7
		WHERE id = $1
	`,
		client.ID,
		client.Name,
		client.IDNumber,
		client.Phone,
		client.Address,
		client.Type,
		timeToPgTimestamptz(client.UpdatedAt),
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrClientNotFound
	}
	return nil
}

// Delete removes a client.
func (r *ClientRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM clients WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrClientNotFound
	}
	return nil
}

// List lists clients ordered by name.
func (r *ClientRepository) List(ctx context.Context, limit, offset int) ([]*domain.Client, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, id_number, phone, address, type, created_at, updated_at
		FROM clients ORDER BY name LIMIT $1 OFFSET $2
	`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var clients []*domain.Client
	for rows.Next() {
		var (
			c         domain.Client
			createdAt pgtype.Timestamptz
			updatedAt pgtype.Timestamptz
		)
		if err := rows.Scan(&c.ID, &c.Name, &c.IDNumber, &c.Phone, &c.Address, &c.Type, &createdAt, &updatedAt); err != nil {
			return nil, err
		}
		c.CreatedAt = createdAt.Time
		c.UpdatedAt = updatedAt.Time
		clients = append(clients, &c)
	}
	return clients, rows.Err()
}

// SupplierRepository implements usecase.SupplierRepository.
type SupplierRepository struct {
	pool *pgxpool.Pool
}

// NewSupplierRepository creates a new SupplierRepository.
func NewSupplierRepository(pool *pgxpool.Pool) *SupplierRepository {
	return &SupplierRepository{pool: pool}
}

// Create inserts a new supplier.
func (r *SupplierRepository) Create(ctx context.Context, supplier *domain.Supplier) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO suppliers (id, name, rif, phone, address, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`,
		supplier.ID,
		supplier.Name,
		supplier.RIF,
		supplier.Phone,
		supplier.Address,
		timeToPgTimestamptz(supplier.CreatedAt),
		timeToPgTimestamptz(supplier.UpdatedAt),
	)

	return err
}

// GetByID retrieves a supplier by ID.
func (r *SupplierRepository) GetByID(ctx context.Context, id string) (*domain.Supplier, error) {
	var (
		s         domain.Supplier
		createdAt pgtype.Timestamptz
		updatedAt pgtype.Timestamptz
	)

	err := r.pool.QueryRow(ctx, `
		SELECT id, name, rif, phone, address, created_at, updated_at
		FROM suppliers WHERE id = $1
	`, id).Scan(&s.ID, &s.Name, &s.RIF, &s.Phone, &s.Address, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrSupplierNotFound
		}
		return nil, err
	}
	s.CreatedAt = createdAt.Time
	s.UpdatedAt = updatedAt.Time

	return &s, nil
}

// Update replaces a supplier row.
func (r *SupplierRepository) Update(ctx context.Context, supplier *domain.Supplier) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE suppliers SET name = $2, rif = $3, phone = $4, address = $5, updated_at = $6
		WHERE id = $1
	`,
		supplier.ID,
		supplier.Name,
		supplier.RIF,
		supplier.Phone,
		supplier.Address,
		timeToPgTimestamptz(supplier.UpdatedAt),
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrSupplierNotFound
	}
	return nil
}

// Delete removes a supplier.
func (r *SupplierRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM suppliers WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrSupplierNotFound
	}
	return nil
}

// List lists suppliers ordered by name.
func (r *SupplierRepository) List(ctx context.Context, limit, offset int) ([]*domain.Supplier, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, rif, phone, address, created_at, updated_at
		FROM suppliers ORDER BY name LIMIT $1 OFFSET $2
	`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var suppliers []*domain.Supplier
	for rows.Next() {
		var (
			s         domain.Supplier
			createdAt pgtype.Timestamptz
			updatedAt pgtype.Timestamptz
		)
		if err := rows.Scan(&s.ID, &s.Name, &s.RIF, &s.Phone, &s.Address, &createdAt, &updatedAt); err != nil {
			return nil, err
		}
		s.CreatedAt = createdAt.Time
		s.UpdatedAt = updatedAt.Time
		suppliers = append(suppliers, &s)
	}
	return suppliers, rows.Err()
}

// VehicleRepository implements usecase.VehicleRepository.
type VehicleRepository struct {
	pool *pgxpool.Pool
}

// NewVehicleRepository creates a new VehicleRepository.
func NewVehicleRepository(pool *pgxpool.Pool) *VehicleRepository {
	return &VehicleRepository{pool: pool}
}

// Create inserts a new vehicle.
func (r *VehicleRepository) Create(ctx context.Context, vehicle *domain.Vehicle) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO vehicles (id, placa, modelo, capacity, asociado_id, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`,
		vehicle.ID,
		vehicle.Placa,
		vehicle.Modelo,
		vehicle.Capacity,
		vehicle.AsociadoID,
		string(vehicle.Status),
		timeToPgTimestamptz(vehicle.CreatedAt),
		timeToPgTimestamptz(vehicle.UpdatedAt),
	)

	return err
}

// GetByID retrieves a vehicle by ID.
func (r *VehicleRepository) GetByID(ctx context.Context, id string) (*domain.Vehicle, error) {
	v, err := scanVehicle(r.pool.QueryRow(ctx, `
		SELECT id, placa, modelo, capacity, asociado_id, status, created_at, updated_at
		FROM vehicles WHERE id = $1
	`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrVehicleNotFound
		}
		return nil, err
	}
	return v, nil
}

// Update replaces a vehicle row.
func (r *VehicleRepository) Update(ctx context.Context, vehicle *domain.Vehicle) error {
	return r.updateVehicle(ctx, r.pool, vehicle)
}

// UpdateTx replaces a vehicle row inside a transaction.
func (r *VehicleRepository) UpdateTx(ctx context.Context, tx usecase.Transaction, vehicle *domain.Vehicle) error {
	return r.updateVehicle(ctx, tx.(*Tx).PgxTx(), vehicle)
}

func (r *VehicleRepository) updateVehicle(ctx context.Context, db execer, vehicle *domain.Vehicle) error {
	tag, err := db.Exec(ctx, `
		UPDATE vehicles SET placa = $2, modelo = $3, capacity = $4, asociado_id = $5,
			status = $6, updated_at = $7
		WHERE id = $1
	`,
		vehicle.ID,
		vehicle.Placa,
		vehicle.Modelo,
		vehicle.Capacity,
		vehicle.AsociadoID,
		string(vehicle.Status),
		timeToPgTimestamptz(vehicle.UpdatedAt),
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrVehicleNotFound
	}
	return nil
}

// List returns the vehicle fleet ordered by plate.
func (r *VehicleRepository) List(ctx context.Context) ([]*domain.Vehicle, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, placa, modelo, capacity, asociado_id, status, created_at, updated_at
		FROM vehicles ORDER BY placa
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var vehicles []*domain.Vehicle
	for rows.Next() {
		v, err := scanVehicle(rows)
		if err != nil {
			return nil, err
		}
		vehicles = append(vehicles, v)
	}
	return vehicles, rows.Err()
}

// OfficeRepository implements usecase.OfficeRepository. Offices are seeded
// by migration; the API only reads them.
type OfficeRepository struct {
	pool *pgxpool.Pool
}

// NewOfficeRepository creates a new OfficeRepository.
func NewOfficeRepository(pool *pgxpool.Pool) *OfficeRepository {
	return &OfficeRepository{pool: pool}
}

// GetByID retrieves a branch office by ID.
func (r *OfficeRepository) GetByID(ctx context.Context, id string) (*domain.Office, error) {
	var o domain.Office
	err := r.pool.QueryRow(ctx, `
		SELECT id, code, name, city FROM offices WHERE id = $1
	`, id).Scan(&o.ID, &o.Code, &o.Name, &o.City)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrOfficeNotFound
		}
		return nil, err
	}
	return &o, nil
}

// List returns the branch offices ordered by name.
func (r *OfficeRepository) List(ctx context.Context) ([]*domain.Office, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, code, name, city FROM offices ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var offices []*domain.Office
	for rows.Next() {
		var o domain.Office
		if err := rows.Scan(&o.ID, &o.Code, &o.Name, &o.City); err != nil {
			return nil, err
		}
		offices = append(offices, &o)
	}
	return offices, rows.Err()
}

func scanVehicle(row rowScanner) (*domain.Vehicle, error) {
	var (
		v         domain.Vehicle
		status    string
		createdAt pgtype.Timestamptz
		updatedAt pgtype.Timestamptz
	)

	if err := row.Scan(&v.ID, &v.Placa, &v.Modelo, &v.Capacity, &v.AsociadoID, &status, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	v.Status = domain.VehicleStatus(status)
	v.CreatedAt = createdAt.Time
	v.UpdatedAt = updatedAt.Time

	return &v, nil
}
