package mocks

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/coopfletes/backoffice/internal/domain"
	"github.com/coopfletes/backoffice/internal/usecase"
)

// MockInvoiceRepository is a mock implementation of InvoiceRepository.
type MockInvoiceRepository struct {
	mu       sync.RWMutex
	invoices map[string]*domain.Invoice
	seq      int

	CreateFunc            func(ctx context.Context, invoice *domain.Invoice) error
	GetByIDFunc           func(ctx context.Context, id string) (*domain.Invoice, error)
	UpdateFunc            func(ctx context.Context, invoice *domain.Invoice) error
	UpdateTxFunc          func(ctx context.Context, tx usecase.Transaction, invoice *domain.Invoice) error
	ListFunc              func(ctx context.Context, limit, offset int) ([]*domain.Invoice, error)
	ListByDateRangeFunc   func(ctx context.Context, start, end *time.Time) ([]*domain.Invoice, error)
	ListByVehicleFunc     func(ctx context.Context, vehicleID string) ([]*domain.Invoice, error)
	NextInvoiceNumberFunc func(ctx context.Context) (string, error)
}

func NewMockInvoiceRepository() *MockInvoiceRepository {
	return &MockInvoiceRepository{
		invoices: make(map[string]*domain.Invoice),
	}
}

func (m *MockInvoiceRepository) Create(ctx context.Context, invoice *domain.Invoice) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, invoice)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.invoices[invoice.ID] = invoice
	return nil
}

func (m *MockInvoiceRepository) GetByID(ctx context.Context, id string) (*domain.Invoice, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if inv, ok := m.invoices[id]; ok {
		return inv, nil
	}
	return nil, domain.ErrInvoiceNotFound
}

func (m *MockInvoiceRepository) Update(ctx context.Context, invoice *domain.Invoice) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, invoice)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.invoices[invoice.ID]; !ok {
		return domain.ErrInvoiceNotFound
	}
	m.invoices[invoice.ID] = invoice
	return nil
}

func (m *MockInvoiceRepository) UpdateTx(ctx context.Context, tx usecase.Transaction, invoice *domain.Invoice) error {
	if m.UpdateTxFunc != nil {
		return m.UpdateTxFunc(ctx, tx, invoice)
	}
	return m.Update(ctx, invoice)
}

func (m *MockInvoiceRepository) List(ctx context.Context, limit, offset int) ([]*domain.Invoice, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, limit, offset)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var invoices []*domain.Invoice
	for _, inv := range m.invoices {
		invoices = append(invoices, inv)
	}
	return invoices, nil
}

func (m *MockInvoiceRepository) ListByDateRange(ctx context.Context, start, end *time.Time) ([]*domain.Invoice, error) {
	if m.ListByDateRangeFunc != nil {
		return m.ListByDateRangeFunc(ctx, start, end)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var invoices []*domain.Invoice
	for _, inv := range m.invoices {
		if start != nil && inv.Date.Before(*start) {
			continue
		}
		if end != nil && inv.Date.After(*end) {
			continue
		}
		invoices = append(invoices, inv)
	}
	return invoices, nil
}

func (m *MockInvoiceRepository) ListByVehicle(ctx context.Context, vehicleID string) ([]*domain.Invoice, error) {
	if m.ListByVehicleFunc != nil {
		return m.ListByVehicleFunc(ctx, vehicleID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var invoices []*domain.Invoice
	for _, inv := range m.invoices {
		if inv.VehicleID == vehicleID {
			invoices = append(invoices, inv)
		}
	}
	return invoices, nil
}

func (m *MockInvoiceRepository) NextInvoiceNumber(ctx context.Context) (string, error) {
	if m.NextInvoiceNumberFunc != nil {
		return m.NextInvoiceNumberFunc(ctx)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seq++
	return fmt.Sprintf("%05d", m.seq), nil
}

// MockExpenseRepository is a mock implementation of ExpenseRepository.
type MockExpenseRepository struct {
	mu       sync.RWMutex
	expenses map[string]*domain.Expense

	CreateFunc          func(ctx context.Context, expense *domain.Expense) error
	GetByIDFunc         func(ctx context.Context, id string) (*domain.Expense, error)
	UpdateFunc          func(ctx context.Context, expense *domain.Expense) error
	DeleteFunc          func(ctx context.Context, id string) error
	ListFunc            func(ctx context.Context, limit, offset int) ([]*domain.Expense, error)
	ListByDateRangeFunc func(ctx context.Context, start, end *time.Time) ([]*domain.Expense, error)
}

func NewMockExpenseRepository() *MockExpenseRepository {
	return &MockExpenseRepository{
		expenses: make(map[string]*domain.Expense),
	}
}

func (m *MockExpenseRepository) Create(ctx context.Context, expense *domain.Expense) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, expense)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.expenses[expense.ID] = expense
	return nil
}

func (m *MockExpenseRepository) GetByID(ctx context.Context, id string) (*domain.Expense, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if exp, ok := m.expenses[id]; ok {
		return exp, nil
	}
	return nil, domain.ErrExpenseNotFound
}

func (m *MockExpenseRepository) Update(ctx context.Context, expense *domain.Expense) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, expense)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.expenses[expense.ID]; !ok {
		return domain.ErrExpenseNotFound
	}
	m.expenses[expense.ID] = expense
	return nil
}

func (m *MockExpenseRepository) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.expenses[id]; !ok {
		return domain.ErrExpenseNotFound
	}
	delete(m.expenses, id)
	return nil
}

func (m *MockExpenseRepository) List(ctx context.Context, limit, offset int) ([]*domain.Expense, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, limit, offset)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var expenses []*domain.Expense
	for _, exp := range m.expenses {
		expenses = append(expenses, exp)
	}
	return expenses, nil
}

func (m *MockExpenseRepository) ListByDateRange(ctx context.Context, start, end *time.Time) ([]*domain.Expense, error) {
	if m.ListByDateRangeFunc != nil {
		return m.ListByDateRangeFunc(ctx, start, end)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var expenses []*domain.Expense
	for _, exp := range m.expenses {
		if start != nil && exp.Date.Before(*start) {
			continue
		}
		if end != nil && exp.Date.After(*end) {
			continue
		}
		expenses = append(expenses, exp)
	}
	return expenses, nil
}

// MockAsientoRepository is a mock implementation of AsientoRepository.
type MockAsientoRepository struct {
	mu       sync.RWMutex
	asientos map[string]*domain.AsientoManual

	CreateFunc          func(ctx context.Context, asiento *domain.AsientoManual) error
	GetByIDFunc         func(ctx context.Context, id string) (*domain.AsientoManual, error)
	DeleteFunc          func(ctx context.Context, id string) error
	ListByDateRangeFunc func(ctx context.Context, start, end *time.Time) ([]*domain.AsientoManual, error)
}

func NewMockAsientoRepository() *MockAsientoRepository {
	return &MockAsientoRepository{
		asientos: make(map[string]*domain.AsientoManual),
	}
}

func (m *MockAsientoRepository) Create(ctx context.Context, asiento *domain.AsientoManual) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, asiento)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.asientos[asiento.ID] = asiento
	return nil
}

func (m *MockAsientoRepository) GetByID(ctx context.Context, id string) (*domain.AsientoManual, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if a, ok := m.asientos[id]; ok {
		return a, nil
	}
	return nil, domain.ErrAsientoNotFound
}

func (m *MockAsientoRepository) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.asientos[id]; !ok {
		return domain.ErrAsientoNotFound
	}
	delete(m.asientos, id)
	return nil
}

func (m *MockAsientoRepository) ListByDateRange(ctx context.Context, start, end *time.Time) ([]*domain.AsientoManual, error) {
	if m.ListByDateRangeFunc != nil {
		return m.ListByDateRangeFunc(ctx, start, end)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var asientos []*domain.AsientoManual
	for _, a := range m.asientos {
		if start != nil && a.Fecha.Before(*start) {
			continue
		}
		if end != nil && a.Fecha.After(*end) {
			continue
		}
		asientos = append(asientos, a)
	}
	return asientos, nil
}

// MockCuentaRepository is a mock implementation of CuentaRepository.
type MockCuentaRepository struct {
	mu      sync.RWMutex
	cuentas map[string]*domain.CuentaContable

	CreateFunc  func(ctx context.Context, cuenta *domain.CuentaContable) error
	GetByIDFunc func(ctx context.Context, id string) (*domain.CuentaContable, error)
	UpdateFunc  func(ctx context.Context, cuenta *domain.CuentaContable) error
	DeleteFunc  func(ctx context.Context, id string) error
	ListFunc    func(ctx context.Context) ([]*domain.CuentaContable, error)
}

func NewMockCuentaRepository() *MockCuentaRepository {
	return &MockCuentaRepository{
		cuentas: make(map[string]*domain.CuentaContable),
	}
}

func (m *MockCuentaRepository) Create(ctx context.Context, cuenta *domain.CuentaContable) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, cuenta)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cuentas[cuenta.ID] = cuenta
	return nil
}

func (m *MockCuentaRepository) GetByID(ctx context.Context, id string) (*domain.CuentaContable, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if c, ok := m.cuentas[id]; ok {
		return c, nil
	}
	return nil, domain.ErrCuentaNotFound
}

func (m *MockCuentaRepository) Update(ctx context.Context, cuenta *domain.CuentaContable) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, cuenta)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.cuentas[cuenta.ID]; !ok {
		return domain.ErrCuentaNotFound
	}
	m.cuentas[cuenta.ID] = cuenta
	return nil
}

func (m *MockCuentaRepository) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.cuentas[id]; !ok {
		return domain.ErrCuentaNotFound
	}
	delete(m.cuentas, id)
	return nil
}

func (m *MockCuentaRepository) List(ctx context.Context) ([]*domain.CuentaContable, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var cuentas []*domain.CuentaContable
	for _, c := range m.cuentas {
		cuentas = append(cuentas, c)
	}
	return cuentas, nil
}

// MockClientRepository is a mock implementation of ClientRepository.
type MockClientRepository struct {
	mu      sync.RWMutex
	clients map[string]*domain.Client

	CreateFunc  func(ctx context.Context, client *domain.Client) error
	GetByIDFunc func(ctx context.Context, id string) (*domain.Client, error)
	UpdateFunc  func(ctx context.Context, client *domain.Client) error
	DeleteFunc  func(ctx context.Context, id string) error
	ListFunc    func(ctx context.Context, limit, offset int) ([]*domain.Client, error)
}

func NewMockClientRepository() *MockClientRepository {
	return &MockClientRepository{
		clients: make(map[string]*domain.Client),
	}
}

func (m *MockClientRepository) Create(ctx context.Context, client *domain.Client) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, client)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.clients[client.ID] = client
	return nil
}

func (m *MockClientRepository) GetByID(ctx context.Context, id string) (*domain.Client, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if c, ok := m.clients[id]; ok {
		return c, nil
	}
	return nil, domain.ErrClientNotFound
}

func (m *MockClientRepository) Update(ctx context.Context, client *domain.Client) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, client)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.clients[client.ID]; !ok {
		return domain.ErrClientNotFound
	}
	m.clients[client.ID] = client
	return nil
}

func (m *MockClientRepository) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.clients[id]; !ok {
		return domain.ErrClientNotFound
	}
	delete(m.clients, id)
	return nil
}

func (m *MockClientRepository) List(ctx context.Context, limit, offset int) ([]*domain.Client, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, limit, offset)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var clients []*domain.Client
	for _, c := range m.clients {
		clients = append(clients, c)
	}
	return clients, nil
}

// MockSupplierRepository is a mock implementation of SupplierRepository.
type MockSupplierRepository struct {
	mu        sync.RWMutex
	suppliers map[string]*domain.Supplier

	CreateFunc  func(ctx context.Context, supplier *domain.Supplier) error
	GetByIDFunc func(ctx context.Context, id string) (*domain.Supplier, error)
	UpdateFunc  func(ctx context.Context, supplier *domain.Supplier) error
	DeleteFunc  func(ctx context.Context, id string) error
	ListFunc    func(ctx context.Context, limit, offset int) ([]*domain.Supplier, error)
}

func NewMockSupplierRepository() *MockSupplierRepository {
	return &MockSupplierRepository{
		suppliers: make(map[string]*domain.Supplier),
	}
}

func (m *MockSupplierRepository) Create(ctx context.Context, supplier *domain.Supplier) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, supplier)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.suppliers[supplier.ID] = supplier
	return nil
}

func (m *MockSupplierRepository) GetByID(ctx context.Context, id string) (*domain.Supplier, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if s, ok := m.suppliers[id]; ok {
		return s, nil
	}
	return nil, domain.ErrSupplierNotFound
}

func (m *MockSupplierRepository) Update(ctx context.Context, supplier *domain.Supplier) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, supplier)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.suppliers[supplier.ID]; !ok {
		return domain.ErrSupplierNotFound
	}
	m.suppliers[supplier.ID] = supplier
	return nil
}

func (m *MockSupplierRepository) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.suppliers[id]; !ok {
		return domain.ErrSupplierNotFound
	}
	delete(m.suppliers, id)
	return nil
}

func (m *MockSupplierRepository) List(ctx context.Context, limit, offset int) ([]*domain.Supplier, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, limit, offset)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var suppliers []*domain.Supplier
	for _, s := range m.suppliers {
		suppliers = append(suppliers, s)
	}
	return suppliers, nil
}

// MockVehicleRepository is a mock implementation of VehicleRepository.
type MockVehicleRepository struct {
	mu       sync.RWMutex
	vehicles map[string]*domain.Vehicle

	CreateFunc   func(ctx context.Context, vehicle *domain.Vehicle) error
	GetByIDFunc  func(ctx context.Context, id string) (*domain.Vehicle, error)
	UpdateFunc   func(ctx context.Context, vehicle *domain.Vehicle) error
	UpdateTxFunc func(ctx context.Context, tx usecase.Transaction, vehicle *domain.Vehicle) error
	ListFunc     func(ctx context.Context) ([]*domain.Vehicle, error)
}

func NewMockVehicleRepository() *MockVehicleRepository {
	return &MockVehicleRepository{
		vehicles: make(map[string]*domain.Vehicle),
	}
}

func (m *MockVehicleRepository) Create(ctx context.Context, vehicle *domain.Vehicle) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, vehicle)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.vehicles[vehicle.ID] = vehicle
	return nil
}

func (m *MockVehicleRepository) GetByID(ctx context.Context, id string) (*domain.Vehicle, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if v, ok := m.vehicles[id]; ok {
		return v, nil
	}
	return nil, domain.ErrVehicleNotFound
}

func (m *MockVehicleRepository) Update(ctx context.Context, vehicle *domain.Vehicle) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, vehicle)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.vehicles[vehicle.ID]; !ok {
		return domain.ErrVehicleNotFound
	}
	m.vehicles[vehicle.ID] = vehicle
	return nil
}

func (m *MockVehicleRepository) UpdateTx(ctx context.Context, tx usecase.Transaction, vehicle *domain.Vehicle) error {
	if m.UpdateTxFunc != nil {
		return m.UpdateTxFunc(ctx, tx, vehicle)
	}
	return m.Update(ctx, vehicle)
}

func (m *MockVehicleRepository) List(ctx context.Context) ([]*domain.Vehicle, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var vehicles []*domain.Vehicle
	for _, v := range m.vehicles {
		vehicles = append(vehicles, v)
	}
	return vehicles, nil
}

// MockRemesaRepository is a mock implementation of RemesaRepository.
type MockRemesaRepository struct {
	mu      sync.RWMutex
	remesas map[string]*domain.Remesa
	seq     int

	CreateTxFunc         func(ctx context.Context, tx usecase.Transaction, remesa *domain.Remesa) error
	GetByIDFunc          func(ctx context.Context, id string) (*domain.Remesa, error)
	DeleteTxFunc         func(ctx context.Context, tx usecase.Transaction, id string) error
	ListFunc             func(ctx context.Context, limit, offset int) ([]*domain.Remesa, error)
	NextRemesaNumberFunc func(ctx context.Context) (string, error)
}

func NewMockRemesaRepository() *MockRemesaRepository {
	return &MockRemesaRepository{
		remesas: make(map[string]*domain.Remesa),
	}
}

func (m *MockRemesaRepository) CreateTx(ctx context.Context, tx usecase.Transaction, remesa *domain.Remesa) error {
	if m.CreateTxFunc != nil {
		return m.CreateTxFunc(ctx, tx, remesa)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.remesas[remesa.ID] = remesa
	return nil
}

func (m *MockRemesaRepository) GetByID(ctx context.Context, id string) (*domain.Remesa, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if r, ok := m.remesas[id]; ok {
		return r, nil
	}
	return nil, domain.ErrRemesaNotFound
}

func (m *MockRemesaRepository) DeleteTx(ctx context.Context, tx usecase.Transaction, id string) error {
	if m.DeleteTxFunc != nil {
		return m.DeleteTxFunc(ctx, tx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.remesas[id]; !ok {
		return domain.ErrRemesaNotFound
	}
	delete(m.remesas, id)
	return nil
}

func (m *MockRemesaRepository) List(ctx context.Context, limit, offset int) ([]*domain.Remesa, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, limit, offset)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var remesas []*domain.Remesa
	for _, r := range m.remesas {
		remesas = append(remesas, r)
	}
	return remesas, nil
}

func (m *MockRemesaRepository) NextRemesaNumber(ctx context.Context) (string, error) {
	if m.NextRemesaNumberFunc != nil {
		return m.NextRemesaNumberFunc(ctx)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seq++
	return fmt.Sprintf("R-%05d", m.seq), nil
}

// MockCompanyRepository is a mock implementation of CompanyRepository.
type MockCompanyRepository struct {
	mu   sync.RWMutex
	info domain.CompanyInfo

	GetFunc    func(ctx context.Context) (domain.CompanyInfo, error)
	UpdateFunc func(ctx context.Context, info domain.CompanyInfo) error
}

func NewMockCompanyRepository(info domain.CompanyInfo) *MockCompanyRepository {
	return &MockCompanyRepository{info: info}
}

func (m *MockCompanyRepository) Get(ctx context.Context) (domain.CompanyInfo, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.info, nil
}

func (m *MockCompanyRepository) Update(ctx context.Context, info domain.CompanyInfo) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, info)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.info = info
	return nil
}

// MockPaymentMethodRepository is a mock implementation of PaymentMethodRepository.
type MockPaymentMethodRepository struct {
	Methods []*domain.PaymentMethod

	ListFunc func(ctx context.Context) ([]*domain.PaymentMethod, error)
}

func NewMockPaymentMethodRepository(methods ...*domain.PaymentMethod) *MockPaymentMethodRepository {
	return &MockPaymentMethodRepository{Methods: methods}
}

func (m *MockPaymentMethodRepository) List(ctx context.Context) ([]*domain.PaymentMethod, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return m.Methods, nil
}

// MockAuditRepository is a mock implementation of AuditRepository.
type MockAuditRepository struct {
	mu   sync.RWMutex
	Logs []*domain.AuditLog

	CreateFunc func(ctx context.Context, log *domain.AuditLog) error
	ListFunc   func(ctx context.Context, filter domain.AuditFilter) ([]*domain.AuditLog, error)
}

func NewMockAuditRepository() *MockAuditRepository {
	return &MockAuditRepository{}
}

func (m *MockAuditRepository) Create(ctx context.Context, log *domain.AuditLog) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, log)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Logs = append(m.Logs, log)
	return nil
}

func (m *MockAuditRepository) List(ctx context.Context, filter domain.AuditFilter) ([]*domain.AuditLog, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.Logs, nil
}

// MockTransactionManager is a mock implementation of TransactionManager.
type MockTransactionManager struct {
	BeginFunc func(ctx context.Context) (usecase.Transaction, error)
}

func NewMockTransactionManager() *MockTransactionManager {
	return &MockTransactionManager{}
}

func (m *MockTransactionManager) Begin(ctx context.Context) (usecase.Transaction, error) {
	if m.BeginFunc != nil {
		return m.BeginFunc(ctx)
	}
	return &MockTransaction{}, nil
}

// MockTransaction is a mock implementation of Transaction.
type MockTransaction struct {
	CommitFunc   func(ctx context.Context) error
	RollbackFunc func(ctx context.Context) error
}

func (m *MockTransaction) Commit(ctx context.Context) error {
	if m.CommitFunc != nil {
		return m.CommitFunc(ctx)
	}
	return nil
}

func (m *MockTransaction) Rollback(ctx context.Context) error {
	if m.RollbackFunc != nil {
		return m.RollbackFunc(ctx)
	}
	return nil
}

// MockIDGenerator is a mock implementation of IDGenerator.
type MockIDGenerator struct {
	GenerateFunc func() string
	counter      int
	mu           sync.Mutex
}

func NewMockIDGenerator() *MockIDGenerator {
	return &MockIDGenerator{}
}

func (m *MockIDGenerator) Generate() string {
	if m.GenerateFunc != nil {
		return m.GenerateFunc()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counter++
	return fmt.Sprintf("mock-id-%d", m.counter)
}

// MockCache is a mock implementation of Cache.
type MockCache struct {
	mu   sync.RWMutex
	data map[string]string

	GetFunc    func(ctx context.Context, key string) (string, error)
	SetFunc    func(ctx context.Context, key, value string, ttl time.Duration) error
	DeleteFunc func(ctx context.Context, key string) error
}

func NewMockCache() *MockCache {
	return &MockCache{
		data: make(map[string]string),
	}
}

func (m *MockCache) Get(ctx context.Context, key string) (string, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, key)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.data[key], nil
}

func (m *MockCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	if m.SetFunc != nil {
		return m.SetFunc(ctx, key, value, ttl)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

func (m *MockCache) Delete(ctx context.Context, key string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, key)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

// MockIdempotencyStore is a mock implementation of IdempotencyStore.
type MockIdempotencyStore struct {
	mu   sync.RWMutex
	data map[string][]byte

	CheckAndSetFunc func(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error)
	UpdateFunc      func(ctx context.Context, key string, response []byte, ttl time.Duration) error
}

func NewMockIdempotencyStore() *MockIdempotencyStore {
	return &MockIdempotencyStore{
		data: make(map[string][]byte),
	}
}

func (m *MockIdempotencyStore) CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error) {
	if m.CheckAndSetFunc != nil {
		return m.CheckAndSetFunc(ctx, key, response, ttl)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if existing, ok := m.data[key]; ok {
		return true, existing, nil
	}
	if response != nil {
		m.data[key] = response
	} else {
		m.data[key] = []byte("processing")
	}
	return false, nil, nil
}

func (m *MockIdempotencyStore) Update(ctx context.Context, key string, response []byte, ttl time.Duration) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, key, response, ttl)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = response
	return nil
}

// MockOfficeRepository is a mock implementation of OfficeRepository.
type MockOfficeRepository struct {
	mu      sync.RWMutex
	offices map[string]*domain.Office

	GetByIDFunc func(ctx context.Context, id string) (*domain.Office, error)
	ListFunc    func(ctx context.Context) ([]*domain.Office, error)
}

func NewMockOfficeRepository(offices ...*domain.Office) *MockOfficeRepository {
	m := &MockOfficeRepository{
		offices: make(map[string]*domain.Office),
	}
	for _, o := range offices {
		m.offices[o.ID] = o
	}
	return m
}

func (m *MockOfficeRepository) GetByID(ctx context.Context, id string) (*domain.Office, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if o, ok := m.offices[id]; ok {
		return o, nil
	}
	return nil, domain.ErrOfficeNotFound
}

func (m *MockOfficeRepository) List(ctx context.Context) ([]*domain.Office, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var offices []*domain.Office
	for _, o := range m.offices {
		offices = append(offices, o)
	}
	return offices, nil
}

// MockAsociadoRepository is a mock implementation of AsociadoRepository.
type MockAsociadoRepository struct {
	mu        sync.RWMutex
	asociados map[string]*domain.Asociado

	CreateFunc  func(ctx context.Context, asociado *domain.Asociado) error
	GetByIDFunc func(ctx context.Context, id string) (*domain.Asociado, error)
	UpdateFunc  func(ctx context.Context, asociado *domain.Asociado) error
	DeleteFunc  func(ctx context.Context, id string) error
	ListFunc    func(ctx context.Context, limit, offset int) ([]*domain.Asociado, error)
}

func NewMockAsociadoRepository() *MockAsociadoRepository {
	return &MockAsociadoRepository{
		asociados: make(map[string]*domain.Asociado),
	}
}

func (m *MockAsociadoRepository) Create(ctx context.Context, asociado *domain.Asociado) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, asociado)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.asociados[asociado.ID] = asociado
	return nil
}

func (m *MockAsociadoRepository) GetByID(ctx context.Context, id string) (*domain.Asociado, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if a, ok := m.asociados[id]; ok {
		return a, nil
	}
	return nil, domain.ErrAsociadoNotFound
}

func (m *MockAsociadoRepository) Update(ctx context.Context, asociado *domain.Asociado) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, asociado)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.asociados[asociado.ID]; !ok {
		return domain.ErrAsociadoNotFound
	}
	m.asociados[asociado.ID] = asociado
	return nil
}

func (m *MockAsociadoRepository) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.asociados[id]; !ok {
		return domain.ErrAsociadoNotFound
	}
	delete(m.asociados, id)
	return nil
}

func (m *MockAsociadoRepository) List(ctx context.Context, limit, offset int) ([]*domain.Asociado, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, limit, offset)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var asociados []*domain.Asociado
	for _, a := range m.asociados {
		asociados = append(asociados, a)
	}
	return asociados, nil
}

// MockPagoAsociadoRepository is a mock implementation of PagoAsociadoRepository.
type MockPagoAsociadoRepository struct {
	mu    sync.RWMutex
	pagos map[string]*domain.PagoAsociado

	CreateFunc         func(ctx context.Context, pago *domain.PagoAsociado) error
	GetByIDFunc        func(ctx context.Context, id string) (*domain.PagoAsociado, error)
	UpdateFunc         func(ctx context.Context, pago *domain.PagoAsociado) error
	DeleteFunc         func(ctx context.Context, id string) error
	ListByAsociadoFunc func(ctx context.Context, asociadoID string) ([]*domain.PagoAsociado, error)
}

func NewMockPagoAsociadoRepository() *MockPagoAsociadoRepository {
	return &MockPagoAsociadoRepository{
		pagos: make(map[string]*domain.PagoAsociado),
	}
}

func (m *MockPagoAsociadoRepository) Create(ctx context.Context, pago *domain.PagoAsociado) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, pago)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pagos[pago.ID] = pago
	return nil
}

func (m *MockPagoAsociadoRepository) GetByID(ctx context.Context, id string) (*domain.PagoAsociado, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if p, ok := m.pagos[id]; ok {
		return p, nil
	}
	return nil, domain.ErrPagoAsociadoNotFound
}

func (m *MockPagoAsociadoRepository) Update(ctx context.Context, pago *domain.PagoAsociado) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, pago)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.pagos[pago.ID]; !ok {
		return domain.ErrPagoAsociadoNotFound
	}
	m.pagos[pago.ID] = pago
	return nil
}

func (m *MockPagoAsociadoRepository) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.pagos[id]; !ok {
		return domain.ErrPagoAsociadoNotFound
	}
	delete(m.pagos, id)
	return nil
}

func (m *MockPagoAsociadoRepository) ListByAsociado(ctx context.Context, asociadoID string) ([]*domain.PagoAsociado, error) {
	if m.ListByAsociadoFunc != nil {
		return m.ListByAsociadoFunc(ctx, asociadoID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var pagos []*domain.PagoAsociado
	for _, p := range m.pagos {
		if p.AsociadoID == asociadoID {
			pagos = append(pagos, p)
		}
	}
	return pagos, nil
}
