// Package export renders ledger projections as xlsx workbooks for the
// accountant's offline review. Row order mirrors the on-screen books.
package export

import (
	"io"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/coopfletes/backoffice/internal/domain"
	"github.com/coopfletes/backoffice/internal/ledger"
)

const dateLayout = "02/01/2006"

func amount(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// writeHeader writes the company heading shared by every book.
func writeHeader(f *excelize.File, sheet, title string, company domain.CompanyInfo) int {
	f.SetCellValue(sheet, "A1", company.Name)
	f.SetCellValue(sheet, "A2", company.RIF)
	f.SetCellValue(sheet, "A3", title)
	f.SetCellValue(sheet, "A4", "Generado: "+time.Now().Format(dateLayout))
	return 6
}

// WriteJournal writes the Libro Diario: one block per journal entry, lines in
// synthesis order so debits precede credits.
func WriteJournal(w io.Writer, company domain.CompanyInfo, asientos []ledger.Asiento) error {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Libro Diario"
	f.SetSheetName("Sheet1", sheet)

	row := writeHeader(f, sheet, "Libro Diario", company)
	setRow(f, sheet, row, "Fecha", "Descripción", "Cuenta", "Debe", "Haber")
	row++

	for _, a := range asientos {
		setRow(f, sheet, row, a.Date.Format(dateLayout), a.Description, "", "", "")
		row++
		for _, l := range a.Lines {
			setRow(f, sheet, row, "", "", l.AccountName, amount(l.Debit), amount(l.Credit))
			row++
		}
	}

	return f.Write(w)
}

// WriteGeneralLedger writes the Libro Mayor: one block per account with its
// movements and totals.
func WriteGeneralLedger(w io.Writer, company domain.CompanyInfo, ledgers []ledger.AccountLedger) error {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Libro Mayor"
	f.SetSheetName("Sheet1", sheet)

	row := writeHeader(f, sheet, "Libro Mayor", company)
	for _, l := range ledgers {
		row = writeAccountBlock(f, sheet, row, l)
	}

	return f.Write(w)
}

// WriteAccountLedger writes the Libro Auxiliar for one account.
func WriteAccountLedger(w io.Writer, company domain.CompanyInfo, l ledger.AccountLedger) error {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Libro Auxiliar"
	f.SetSheetName("Sheet1", sheet)

	row := writeHeader(f, sheet, "Libro Auxiliar: "+l.AccountName, company)
	writeAccountBlock(f, sheet, row, l)

	return f.Write(w)
}

func writeAccountBlock(f *excelize.File, sheet string, row int, l ledger.AccountLedger) int {
	setRow(f, sheet, row, l.AccountName)
	row++
	setRow(f, sheet, row, "Fecha", "Descripción", "Debe", "Haber", "Saldo")
	row++

	for _, m := range l.Movements {
		setRow(f, sheet, row, m.Date.Format(dateLayout), m.Description,
			amount(m.Debit), amount(m.Credit), amount(m.Balance))
		row++
	}

	setRow(f, sheet, row, "", "Totales", amount(l.TotalDebit), amount(l.TotalCredit), amount(l.FinalBalance))
	return row + 2
}

func setRow(f *excelize.File, sheet string, row int, values ...string) {
	for i, v := range values {
		cell, _ := excelize.CoordinatesToCellName(i+1, row)
		f.SetCellValue(sheet, cell, v)
	}
}
