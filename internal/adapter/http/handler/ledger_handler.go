package handler

import (
	"context"
	"net/http"

	"github.com/coopfletes/backoffice/internal/adapter/export"
	"github.com/coopfletes/backoffice/internal/adapter/http/dto"
	"github.com/coopfletes/backoffice/internal/ledger"
)

// LedgerService defines the projections needed by LedgerHandler.
type LedgerService interface {
	Transactions(ctx context.Context, f ledger.Filter) ([]ledger.Transaction, error)
	Journal(ctx context.Context, f ledger.Filter) ([]ledger.Asiento, error)
	GeneralLedger(ctx context.Context, f ledger.Filter) ([]ledger.AccountLedger, error)
	AuxiliaryLedger(ctx context.Context, f ledger.Filter, accountKey string) (ledger.AccountLedger, bool, error)
	Accounts(ctx context.Context, f ledger.Filter) ([]ledger.AccountRef, error)
}

// LedgerHandler serves the accounting book projections and their xlsx
// exports.
type LedgerHandler struct {
	ledgerUC  LedgerService
	companyUC CompanyReader
}

// NewLedgerHandler creates a new LedgerHandler.
func NewLedgerHandler(ledgerUC LedgerService, companyUC CompanyReader) *LedgerHandler {
	return &LedgerHandler{ledgerUC: ledgerUC, companyUC: companyUC}
}

// Transactions returns the unified income/expense rows.
func (h *LedgerHandler) Transactions(w http.ResponseWriter, r *http.Request) {
	transactions, err := h.ledgerUC.Transactions(r.Context(), ledgerFilter(r))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to project transactions", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.TransactionsFromLedger(transactions))
}

// Journal returns the Libro Diario.
func (h *LedgerHandler) Journal(w http.ResponseWriter, r *http.Request) {
	asientos, err := h.ledgerUC.Journal(r.Context(), ledgerFilter(r))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to project journal", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.JournalFromLedger(asientos))
}

// GeneralLedger returns the Libro Mayor.
func (h *LedgerHandler) GeneralLedger(w http.ResponseWriter, r *http.Request) {
	ledgers, err := h.ledgerUC.GeneralLedger(r.Context(), ledgerFilter(r))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to project general ledger", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.AccountLedgersFromLedger(ledgers))
}

// AuxiliaryLedger returns the Libro Auxiliar for one account.
func (h *LedgerHandler) AuxiliaryLedger(w http.ResponseWriter, r *http.Request) {
	accountKey := r.URL.Query().Get("account")
	if accountKey == "" {
		writeError(w, http.StatusBadRequest, "missing account query parameter", "")
		return
	}

	l, ok, err := h.ledgerUC.AuxiliaryLedger(r.Context(), ledgerFilter(r), accountKey)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to project auxiliary ledger", err.Error())
		return
	}
	if !ok {
		writeError(w, http.StatusNotFound, "account has no movements in the period", "")
		return
	}

	writeJSON(w, http.StatusOK, dto.AccountLedgerFromLedger(l))
}

// Accounts lists the accounts touched by the journal in the period.
func (h *LedgerHandler) Accounts(w http.ResponseWriter, r *http.Request) {
	refs, err := h.ledgerUC.Accounts(r.Context(), ledgerFilter(r))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list ledger accounts", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.AccountRefsFromLedger(refs))
}

// ExportJournal streams the Libro Diario as an xlsx workbook.
func (h *LedgerHandler) ExportJournal(w http.ResponseWriter, r *http.Request) {
	asientos, err := h.ledgerUC.Journal(r.Context(), ledgerFilter(r))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to project journal", err.Error())
		return
	}

	company, err := h.companyUC.Get(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load company configuration", err.Error())
		return
	}

	writeXlsxHeaders(w, "libro_diario.xlsx")
	if err := export.WriteJournal(w, company, asientos); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to write workbook", err.Error())
	}
}

// ExportGeneralLedger streams the Libro Mayor as an xlsx workbook.
func (h *LedgerHandler) ExportGeneralLedger(w http.ResponseWriter, r *http.Request) {
	ledgers, err := h.ledgerUC.GeneralLedger(r.Context(), ledgerFilter(r))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to project general ledger", err.Error())
		return
	}

	company, err := h.companyUC.Get(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load company configuration", err.Error())
		return
	}

	writeXlsxHeaders(w, "libro_mayor.xlsx")
	if err := export.WriteGeneralLedger(w, company, ledgers); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to write workbook", err.Error())
	}
}

// ExportAuxiliaryLedger streams one account's Libro Auxiliar as an xlsx
// workbook.
func (h *LedgerHandler) ExportAuxiliaryLedger(w http.ResponseWriter, r *http.Request) {
	accountKey := r.URL.Query().Get("account")
	if accountKey == "" {
		writeError(w, http.StatusBadRequest, "missing account query parameter", "")
		return
	}

	l, ok, err := h.ledgerUC.AuxiliaryLedger(r.Context(), ledgerFilter(r), accountKey)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to project auxiliary ledger", err.Error())
		return
	}
	if !ok {
		writeError(w, http.StatusNotFound, "account has no movements in the period", "")
		return
	}

	company, err := h.companyUC.Get(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load company configuration", err.Error())
		return
	}

	writeXlsxHeaders(w, "libro_auxiliar.xlsx")
	if err := export.WriteAccountLedger(w, company, l); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to write workbook", err.Error())
	}
}

func writeXlsxHeaders(w http.ResponseWriter, filename string) {
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
}
