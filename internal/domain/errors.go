package domain

import "errors"

var (
	// Guide errors
	ErrEmptyMerchandise = errors.New("guide must contain at least one merchandise item")
	ErrInvalidItem      = errors.New("merchandise item needs a positive weight or positive dimensions")

	// Invoice errors
	ErrInvoiceNotFound = errors.New("invoice not found")
	ErrInvoiceVoided   = errors.New("invoice is voided")

	// Expense errors
	ErrExpenseNotFound = errors.New("expense not found")
	ErrInvalidAmount   = errors.New("amount must be positive")

	// Manual journal entry errors
	ErrAsientoNotFound      = errors.New("journal entry not found")
	ErrAsientoUnbalanced    = errors.New("journal entry debits do not equal credits")
	ErrAsientoTooFewLines   = errors.New("journal entry must have at least two lines")
	ErrAsientoMissingCuenta = errors.New("every journal entry line needs an account")

	// Chart of accounts errors
	ErrCuentaNotFound = errors.New("account not found in chart of accounts")

	// Catalog errors
	ErrClientNotFound    = errors.New("client not found")
	ErrSupplierNotFound  = errors.New("supplier not found")
	ErrVehicleNotFound   = errors.New("vehicle not found")
	ErrOfficeNotFound    = errors.New("office not found")
	ErrRemesaNotFound    = errors.New("dispatch note not found")
	ErrVehicleNotIdle    = errors.New("vehicle is not available for dispatch")
	ErrNothingToDispatch = errors.New("vehicle has no invoices assigned")

	// Asociado errors
	ErrAsociadoNotFound     = errors.New("asociado not found")
	ErrPagoAsociadoNotFound = errors.New("member charge not found")
)
