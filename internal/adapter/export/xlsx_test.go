package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/coopfletes/backoffice/internal/domain"
	"github.com/coopfletes/backoffice/internal/ledger"
)

func testCompany() domain.CompanyInfo {
	return domain.CompanyInfo{Name: "Cooperativa de Fletes del Centro", RIF: "J-12345678-9"}
}

func cell(t *testing.T, f *excelize.File, sheet, ref string) string {
	t.Helper()
	v, err := f.GetCellValue(sheet, ref)
	if err != nil {
		t.Fatalf("failed to read %s!%s: %v", sheet, ref, err)
	}
	return v
}

func TestWriteJournal(t *testing.T) {
	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	asientos := []ledger.Asiento{
		{
			ID:          "inv-1",
			Date:        date,
			Description: "Factura 00001",
			Lines: []ledger.Line{
				{AccountKey: "pm:pm-1", AccountName: "Efectivo Bs", Debit: decimal.RequireFromString("20.6"), Credit: decimal.Zero},
				{AccountKey: "ing:flete", AccountName: ledger.AccountFleteRevenue, Debit: decimal.Zero, Credit: decimal.RequireFromString("10")},
			},
		},
	}

	var buf bytes.Buffer
	if err := WriteJournal(&buf, testCompany(), asientos); err != nil {
		t.Fatalf("WriteJournal failed: %v", err)
	}

	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("failed to reopen workbook: %v", err)
	}
	defer f.Close()

	const sheet = "Libro Diario"
	if got := cell(t, f, sheet, "A1"); got != "Cooperativa de Fletes del Centro" {
		t.Fatalf("expected company name in A1, got %q", got)
	}
	if got := cell(t, f, sheet, "A6"); got != "Fecha" {
		t.Fatalf("expected header row at 6, got %q", got)
	}
	if got := cell(t, f, sheet, "A7"); got != "10/03/2025" {
		t.Fatalf("expected entry date in A7, got %q", got)
	}
	if got := cell(t, f, sheet, "C8"); got != "Efectivo Bs" {
		t.Fatalf("expected first line account in C8, got %q", got)
	}
	if got := cell(t, f, sheet, "D8"); got != "20.60" {
		t.Fatalf("expected debit 20.60 in D8, got %q", got)
	}
	if got := cell(t, f, sheet, "E9"); got != "10.00" {
		t.Fatalf("expected credit 10.00 in E9, got %q", got)
	}
}

func TestWriteAccountLedger_Totals(t *testing.T) {
	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	l := ledger.AccountLedger{
		AccountKey:  "pm:pm-1",
		AccountName: "Efectivo Bs",
		Movements: []ledger.Movement{
			{Date: date, Description: "Factura 00001", Debit: decimal.RequireFromString("20.6"), Credit: decimal.Zero, Balance: decimal.RequireFromString("20.6")},
			{Date: date, Description: "Gasto combustible", Debit: decimal.Zero, Credit: decimal.RequireFromString("5"), Balance: decimal.RequireFromString("15.6")},
		},
		TotalDebit:   decimal.RequireFromString("20.6"),
		TotalCredit:  decimal.RequireFromString("5"),
		FinalBalance: decimal.RequireFromString("15.6"),
	}

	var buf bytes.Buffer
	if err := WriteAccountLedger(&buf, testCompany(), l); err != nil {
		t.Fatalf("WriteAccountLedger failed: %v", err)
	}

	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("failed to reopen workbook: %v", err)
	}
	defer f.Close()

	const sheet = "Libro Auxiliar"
	// Header block ends at row 5, account name at 6, column headers at 7,
	// movements at 8 and 9, totals at 10.
	if got := cell(t, f, sheet, "A6"); got != "Efectivo Bs" {
		t.Fatalf("expected account name at A6, got %q", got)
	}
	if got := cell(t, f, sheet, "E9"); got != "15.60" {
		t.Fatalf("expected running balance 15.60 at E9, got %q", got)
	}
	if got := cell(t, f, sheet, "B10"); got != "Totales" {
		t.Fatalf("expected totals row at B10, got %q", got)
	}
	if got := cell(t, f, sheet, "E10"); got != "15.60" {
		t.Fatalf("expected final balance 15.60 at E10, got %q", got)
	}
}
