package usecase

import (
	"context"
	"time"

	"github.com/coopfletes/backoffice/internal/domain"
	"github.com/coopfletes/backoffice/internal/infrastructure/metrics"
)

// ExpenseUseCase handles operational expense business logic.
type ExpenseUseCase struct {
	expenseRepo ExpenseRepository
	auditRepo   AuditRepository
	idGen       IDGenerator
}

// NewExpenseUseCase creates a new ExpenseUseCase.
func NewExpenseUseCase(expenseRepo ExpenseRepository, auditRepo AuditRepository, idGen IDGenerator) *ExpenseUseCase {
	return &ExpenseUseCase{
		expenseRepo: expenseRepo,
		auditRepo:   auditRepo,
		idGen:       idGen,
	}
}

// CreateExpenseInput represents input for registering an expense.
type CreateExpenseInput struct {
	Expense domain.Expense
	UserID  string
}

// CreateExpense registers a purchase or operational expense.
func (uc *ExpenseUseCase) CreateExpense(ctx context.Context, input CreateExpenseInput) (*domain.Expense, error) {
	expense := input.Expense
	if err := expense.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	expense.ID = uc.idGen.Generate()
	if expense.Status == "" {
		expense.Status = domain.ExpenseStatusPendiente
	}
	if expense.Date.IsZero() {
		expense.Date = now
	}
	expense.CreatedAt = now
	expense.UpdatedAt = now

	if err := uc.expenseRepo.Create(ctx, &expense); err != nil {
		return nil, err
	}

	metrics.ExpensesRecorded.Inc()
	uc.audit(ctx, input.UserID, domain.AuditActionExpenseCreate, expense.ID,
		"Registró gasto de "+expense.SupplierName)

	return &expense, nil
}

// UpdateExpenseInput carries the edited expense record.
type UpdateExpenseInput struct {
	Expense domain.Expense
	UserID  string
}

// UpdateExpense replaces a stored expense record.
func (uc *ExpenseUseCase) UpdateExpense(ctx context.Context, input UpdateExpenseInput) (*domain.Expense, error) {
	if err := input.Expense.Validate(); err != nil {
		return nil, err
	}

	existing, err := uc.expenseRepo.GetByID(ctx, input.Expense.ID)
	if err != nil {
		return nil, err
	}

	updated := input.Expense
	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = time.Now().UTC()

	if err := uc.expenseRepo.Update(ctx, &updated); err != nil {
		return nil, err
	}

	uc.audit(ctx, input.UserID, domain.AuditActionExpenseUpdate, updated.ID,
		"Actualizó gasto de "+updated.SupplierName)

	return &updated, nil
}

// MarkPaid settles a pending expense.
func (uc *ExpenseUseCase) MarkPaid(ctx context.Context, id, userID string) (*domain.Expense, error) {
	expense, err := uc.expenseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	expense.Status = domain.ExpenseStatusPagado
	expense.UpdatedAt = time.Now().UTC()

	if err := uc.expenseRepo.Update(ctx, expense); err != nil {
		return nil, err
	}

	uc.audit(ctx, userID, domain.AuditActionExpenseUpdate, expense.ID,
		"Marcó como pagado el gasto de "+expense.SupplierName)

	return expense, nil
}

// DeleteExpense removes an expense record.
func (uc *ExpenseUseCase) DeleteExpense(ctx context.Context, id, userID string) error {
	expense, err := uc.expenseRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := uc.expenseRepo.Delete(ctx, id); err != nil {
		return err
	}

	uc.audit(ctx, userID, domain.AuditActionExpenseDelete, id,
		"Eliminó gasto de "+expense.SupplierName)

	return nil
}

// GetExpense retrieves an expense by ID.
func (uc *ExpenseUseCase) GetExpense(ctx context.Context, id string) (*domain.Expense, error) {
	return uc.expenseRepo.GetByID(ctx, id)
}

// ListExpensesInput represents input for listing expenses.
type ListExpensesInput struct {
	Limit  int
	Offset int
}

// ListExpenses lists expenses with pagination.
func (uc *ExpenseUseCase) ListExpenses(ctx context.Context, input ListExpensesInput) ([]*domain.Expense, error) {
	if input.Limit <= 0 {
		input.Limit = DefaultPageSize
	}
	if input.Limit > MaxPageSize {
		input.Limit = MaxPageSize
	}
	return uc.expenseRepo.List(ctx, input.Limit, input.Offset)
}

func (uc *ExpenseUseCase) audit(ctx context.Context, userID string, action domain.AuditAction, resourceID, details string) {
	if uc.auditRepo == nil {
		return
	}
	_ = uc.auditRepo.Create(ctx, &domain.AuditLog{
		ID:           uc.idGen.Generate(),
		UserID:       userID,
		Action:       string(action),
		ResourceType: "expense",
		ResourceID:   resourceID,
		Details:      details,
		Status:       string(domain.AuditStatusSuccess),
		CreatedAt:    time.Now().UTC(),
	})
}
