package domain

import (
	"encoding/json"
	"time"
)

// AuditLog records who did what to which record, mirroring the back-office
// action trail shown under Auditoría.
type AuditLog struct {
	ID           string
	UserID       string // Who performed the action
	Action       string // What action (invoice.create, vehicle.dispatch, etc.)
	ResourceType string // Type of resource (invoice, expense, asiento, remesa)
	ResourceID   string // ID of the resource
	Details      string // Human-readable summary shown in the audit view
	RequestID    string // Request ID for tracing
	BeforeState  JSON   // State before the action
	AfterState   JSON   // State after the action
	Status       string // success, failure, error
	ErrorMessage string // If status=error, the error message
	CreatedAt    time.Time
}

// JSON is a type alias for JSON data
type JSON map[string]any

// AuditAction represents different types of auditable actions
type AuditAction string

const (
	// Invoice actions
	AuditActionInvoiceCreate AuditAction = "invoice.create"
	AuditActionInvoiceUpdate AuditAction = "invoice.update"
	AuditActionInvoiceStatus AuditAction = "invoice.status"
	AuditActionInvoiceVoid   AuditAction = "invoice.void"

	// Expense actions
	AuditActionExpenseCreate AuditAction = "expense.create"
	AuditActionExpenseUpdate AuditAction = "expense.update"
	AuditActionExpenseDelete AuditAction = "expense.delete"

	// Manual journal entry actions
	AuditActionAsientoCreate AuditAction = "asiento.create"
	AuditActionAsientoDelete AuditAction = "asiento.delete"

	// Dispatch actions
	AuditActionVehicleDispatch AuditAction = "vehicle.dispatch"
	AuditActionTripFinalize    AuditAction = "vehicle.finalize_trip"
	AuditActionRemesaDelete    AuditAction = "remesa.delete"

	// Member charge actions
	AuditActionPagoAsociadoCreate AuditAction = "pago_asociado.create"
	AuditActionPagoAsociadoPay    AuditAction = "pago_asociado.pay"
	AuditActionPagoAsociadoDelete AuditAction = "pago_asociado.delete"
)

// AuditStatus represents the status of an audited action
type AuditStatus string

const (
	AuditStatusSuccess AuditStatus = "success"
	AuditStatusFailure AuditStatus = "failure"
	AuditStatusError   AuditStatus = "error"
)

// MarshalState converts a domain object to JSON for audit logging
func MarshalState(v any) JSON {
	if v == nil {
		return nil
	}

	data, err := json.Marshal(v)
	if err != nil {
		return JSON{"error": "failed to marshal state"}
	}

	var result JSON
	if err := json.Unmarshal(data, &result); err != nil {
		return JSON{"error": "failed to unmarshal state"}
	}

	return result
}

// AuditFilter defines filters for querying audit logs
type AuditFilter struct {
	UserID       string
	Action       string
	ResourceType string
	ResourceID   string
	StartDate    *time.Time
	EndDate      *time.Time
	Limit        int
	Offset       int
}
