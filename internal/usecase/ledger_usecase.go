package usecase

import (
	"context"

	"github.com/coopfletes/backoffice/internal/domain"
	"github.com/coopfletes/backoffice/internal/ledger"
)

// LedgerUseCase assembles one consistent snapshot of the accounting sources
// and runs the pure projections over it. Nothing here writes; the books are
// always derived fresh from invoices, expenses, and manual entries.
type LedgerUseCase struct {
	invoiceRepo InvoiceRepository
	expenseRepo ExpenseRepository
	asientoRepo AsientoRepository
	cuentaRepo  CuentaRepository
	pmRepo      PaymentMethodRepository
	companyUC   *CompanyUseCase
}

// NewLedgerUseCase creates a new LedgerUseCase.
func NewLedgerUseCase(
	invoiceRepo InvoiceRepository,
	expenseRepo ExpenseRepository,
	asientoRepo AsientoRepository,
	cuentaRepo CuentaRepository,
	pmRepo PaymentMethodRepository,
	companyUC *CompanyUseCase,
) *LedgerUseCase {
	return &LedgerUseCase{
		invoiceRepo: invoiceRepo,
		expenseRepo: expenseRepo,
		asientoRepo: asientoRepo,
		cuentaRepo:  cuentaRepo,
		pmRepo:      pmRepo,
		companyUC:   companyUC,
	}
}

// Snapshot loads every collection the projector reads, filtered to the
// requested range.
func (uc *LedgerUseCase) Snapshot(ctx context.Context, f ledger.Filter) (ledger.Snapshot, error) {
	invoices, err := uc.invoiceRepo.ListByDateRange(ctx, f.Start, f.End)
	if err != nil {
		return ledger.Snapshot{}, err
	}
	expenses, err := uc.expenseRepo.ListByDateRange(ctx, f.Start, f.End)
	if err != nil {
		return ledger.Snapshot{}, err
	}
	asientos, err := uc.asientoRepo.ListByDateRange(ctx, f.Start, f.End)
	if err != nil {
		return ledger.Snapshot{}, err
	}
	cuentas, err := uc.cuentaRepo.List(ctx)
	if err != nil {
		return ledger.Snapshot{}, err
	}
	methods, err := uc.pmRepo.List(ctx)
	if err != nil {
		return ledger.Snapshot{}, err
	}
	company, err := uc.companyUC.Get(ctx)
	if err != nil {
		return ledger.Snapshot{}, err
	}

	return ledger.Snapshot{
		Transactions:   ledger.Transactions(invoices, expenses, f),
		Asientos:       ledger.FilterAsientos(asientos, f),
		Cuentas:        cuentas,
		PaymentMethods: methods,
		Company:        company,
	}, nil
}

// Transactions returns the unified income/expense rows for the range.
func (uc *LedgerUseCase) Transactions(ctx context.Context, f ledger.Filter) ([]ledger.Transaction, error) {
	s, err := uc.Snapshot(ctx, f)
	if err != nil {
		return nil, err
	}
	return s.Transactions, nil
}

// Journal returns the Libro Diario for the range, date ascending.
func (uc *LedgerUseCase) Journal(ctx context.Context, f ledger.Filter) ([]ledger.Asiento, error) {
	s, err := uc.Snapshot(ctx, f)
	if err != nil {
		return nil, err
	}
	return ledger.BuildJournal(s), nil
}

// GeneralLedger returns the Libro Mayor: per-account movement histories with
// running balances, for every account touched in the range.
func (uc *LedgerUseCase) GeneralLedger(ctx context.Context, f ledger.Filter) ([]ledger.AccountLedger, error) {
	s, err := uc.Snapshot(ctx, f)
	if err != nil {
		return nil, err
	}
	return ledger.GeneralLedger(ledger.BuildJournal(s)), nil
}

// AuxiliaryLedger returns the Libro Auxiliar for one account. The boolean is
// false when the account saw no movement in the range.
func (uc *LedgerUseCase) AuxiliaryLedger(ctx context.Context, f ledger.Filter, accountKey string) (ledger.AccountLedger, bool, error) {
	s, err := uc.Snapshot(ctx, f)
	if err != nil {
		return ledger.AccountLedger{}, false, err
	}
	l, ok := ledger.AuxiliaryLedger(ledger.BuildJournal(s), accountKey)
	return l, ok, nil
}

// Accounts returns every account referenced by the range's journal, for the
// account selector in the auxiliary book view.
func (uc *LedgerUseCase) Accounts(ctx context.Context, f ledger.Filter) ([]ledger.AccountRef, error) {
	s, err := uc.Snapshot(ctx, f)
	if err != nil {
		return nil, err
	}
	return ledger.Accounts(ledger.BuildJournal(s)), nil
}

// InvoiceFinancials recomputes an invoice's charge breakdown with the current
// company configuration, as the journal projector does.
func (uc *LedgerUseCase) InvoiceFinancials(ctx context.Context, invoiceID string) (domain.Financials, error) {
	invoice, err := uc.invoiceRepo.GetByID(ctx, invoiceID)
	if err != nil {
		return domain.ZeroFinancials(), err
	}
	company, err := uc.companyUC.Get(ctx)
	if err != nil {
		return domain.ZeroFinancials(), err
	}
	return domain.CalculateFinancials(&invoice.Guide, company), nil
}
