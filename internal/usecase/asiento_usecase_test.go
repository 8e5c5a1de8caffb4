package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/coopfletes/backoffice/internal/domain"
	"github.com/coopfletes/backoffice/internal/usecase"
	"github.com/coopfletes/backoffice/internal/usecase/mocks"
)

func seedCuentas(t *testing.T, repo *mocks.MockCuentaRepository, ids ...string) {
	t.Helper()
	for _, id := range ids {
		err := repo.Create(context.Background(), &domain.CuentaContable{
			ID:     id,
			Codigo: "1." + id,
			Nombre: "Cuenta " + id,
			Tipo:   domain.CuentaTypeActivo,
		})
		if err != nil {
			t.Fatalf("seed cuenta %s: %v", id, err)
		}
	}
}

func TestAsientoUseCase_CreateAsiento(t *testing.T) {
	tests := []struct {
		name        string
		asiento     domain.AsientoManual
		cuentas     []string
		expectError error
	}{
		{
			name: "balanced entry accepted",
			asiento: domain.AsientoManual{
				Fecha:       time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
				Descripcion: "Saldo inicial",
				Entries: []domain.AsientoManualEntry{
					{CuentaID: "c1", Debe: decimal.NewFromInt(500)},
					{CuentaID: "c2", Haber: decimal.NewFromInt(500)},
				},
			},
			cuentas: []string{"c1", "c2"},
		},
		{
			name: "unbalanced entry rejected",
			asiento: domain.AsientoManual{
				Descripcion: "Descuadrado",
				Entries: []domain.AsientoManualEntry{
					{CuentaID: "c1", Debe: decimal.NewFromInt(500)},
					{CuentaID: "c2", Haber: decimal.NewFromInt(499)},
				},
			},
			cuentas:     []string{"c1", "c2"},
			expectError: domain.ErrAsientoUnbalanced,
		},
		{
			name: "single line rejected",
			asiento: domain.AsientoManual{
				Entries: []domain.AsientoManualEntry{
					{CuentaID: "c1", Debe: decimal.NewFromInt(500)},
				},
			},
			cuentas:     []string{"c1"},
			expectError: domain.ErrAsientoTooFewLines,
		},
		{
			name: "unknown account rejected",
			asiento: domain.AsientoManual{
				Entries: []domain.AsientoManualEntry{
					{CuentaID: "c1", Debe: decimal.NewFromInt(500)},
					{CuentaID: "ghost", Haber: decimal.NewFromInt(500)},
				},
			},
			cuentas:     []string{"c1"},
			expectError: domain.ErrCuentaNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			asientoRepo := mocks.NewMockAsientoRepository()
			cuentaRepo := mocks.NewMockCuentaRepository()
			seedCuentas(t, cuentaRepo, tt.cuentas...)

			uc := usecase.NewAsientoUseCase(asientoRepo, cuentaRepo, mocks.NewMockAuditRepository(), mocks.NewMockIDGenerator())
			created, err := uc.CreateAsiento(context.Background(), usecase.CreateAsientoInput{Asiento: tt.asiento})

			if tt.expectError != nil {
				if err != tt.expectError {
					t.Fatalf("expected %v, got %v", tt.expectError, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if created.ID == "" {
				t.Error("expected an assigned ID")
			}
		})
	}
}

func TestAsientoUseCase_DeleteAsiento(t *testing.T) {
	asientoRepo := mocks.NewMockAsientoRepository()
	cuentaRepo := mocks.NewMockCuentaRepository()
	seedCuentas(t, cuentaRepo, "c1", "c2")

	uc := usecase.NewAsientoUseCase(asientoRepo, cuentaRepo, nil, mocks.NewMockIDGenerator())
	created, err := uc.CreateAsiento(context.Background(), usecase.CreateAsientoInput{
		Asiento: domain.AsientoManual{
			Descripcion: "Ajuste",
			Entries: []domain.AsientoManualEntry{
				{CuentaID: "c1", Debe: decimal.NewFromInt(100)},
				{CuentaID: "c2", Haber: decimal.NewFromInt(100)},
			},
		},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := uc.DeleteAsiento(context.Background(), created.ID, "user-1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := uc.DeleteAsiento(context.Background(), created.ID, "user-1"); err != domain.ErrAsientoNotFound {
		t.Fatalf("expected ErrAsientoNotFound, got %v", err)
	}
}
