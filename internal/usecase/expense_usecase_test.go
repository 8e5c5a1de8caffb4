package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/coopfletes/backoffice/internal/domain"
	"github.com/coopfletes/backoffice/internal/usecase"
	"github.com/coopfletes/backoffice/internal/usecase/mocks"
)

func newExpenseUseCase() (*usecase.ExpenseUseCase, *mocks.MockExpenseRepository, *mocks.MockAuditRepository) {
	repo := mocks.NewMockExpenseRepository()
	auditRepo := mocks.NewMockAuditRepository()
	uc := usecase.NewExpenseUseCase(repo, auditRepo, mocks.NewMockIDGenerator())
	return uc, repo, auditRepo
}

func TestExpenseUseCase_CreateExpense(t *testing.T) {
	uc, _, auditRepo := newExpenseUseCase()

	expense, err := uc.CreateExpense(context.Background(), usecase.CreateExpenseInput{
		Expense: domain.Expense{
			Description:  "Gasoil flota",
			Category:     "Combustible",
			Amount:       decimal.NewFromInt(100),
			SupplierName: "Estación Central",
		},
		UserID: "operator-1",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if expense.ID == "" {
		t.Fatalf("expected generated ID")
	}
	if expense.Status != domain.ExpenseStatusPendiente {
		t.Fatalf("expected default status Pendiente, got %s", expense.Status)
	}
	if expense.Date.IsZero() {
		t.Fatalf("expected default date to be set")
	}

	if len(auditRepo.Logs) != 1 {
		t.Fatalf("expected one audit log, got %d", len(auditRepo.Logs))
	}
	if auditRepo.Logs[0].UserID != "operator-1" {
		t.Fatalf("expected audit actor operator-1, got %s", auditRepo.Logs[0].UserID)
	}
}

func TestExpenseUseCase_CreateExpense_RejectsNonPositiveAmount(t *testing.T) {
	uc, _, _ := newExpenseUseCase()

	_, err := uc.CreateExpense(context.Background(), usecase.CreateExpenseInput{
		Expense: domain.Expense{Description: "Sin monto"},
	})
	if !errors.Is(err, domain.ErrInvalidAmount) {
		t.Fatalf("expected ErrInvalidAmount, got %v", err)
	}
}

func TestExpenseUseCase_UpdateExpense_PreservesCreatedAt(t *testing.T) {
	uc, repo, _ := newExpenseUseCase()

	created, err := uc.CreateExpense(context.Background(), usecase.CreateExpenseInput{
		Expense: domain.Expense{
			Description: "Repuestos",
			Category:    "Mantenimiento",
			Amount:      decimal.NewFromInt(50),
		},
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	edited := *created
	edited.Amount = decimal.NewFromInt(75)
	updated, err := uc.UpdateExpense(context.Background(), usecase.UpdateExpenseInput{Expense: edited})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}

	if !updated.CreatedAt.Equal(created.CreatedAt) {
		t.Fatalf("expected CreatedAt preserved")
	}
	stored, err := repo.GetByID(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if !stored.Amount.Equal(decimal.NewFromInt(75)) {
		t.Fatalf("expected stored amount 75, got %s", stored.Amount)
	}
}

func TestExpenseUseCase_MarkPaid(t *testing.T) {
	uc, _, _ := newExpenseUseCase()

	created, err := uc.CreateExpense(context.Background(), usecase.CreateExpenseInput{
		Expense: domain.Expense{
			Description: "Peaje",
			Category:    "Viáticos",
			Amount:      decimal.NewFromInt(10),
			Date:        time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		},
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	paid, err := uc.MarkPaid(context.Background(), created.ID, "operator-2")
	if err != nil {
		t.Fatalf("mark paid failed: %v", err)
	}
	if paid.Status != domain.ExpenseStatusPagado {
		t.Fatalf("expected status Pagado, got %s", paid.Status)
	}
}

func TestExpenseUseCase_DeleteExpense_NotFound(t *testing.T) {
	uc, _, _ := newExpenseUseCase()

	err := uc.DeleteExpense(context.Background(), "missing", "operator-1")
	if !errors.Is(err, domain.ErrExpenseNotFound) {
		t.Fatalf("expected ErrExpenseNotFound, got %v", err)
	}
}
