package entities

import (
	"encoding/json"
	"time"
)

// ActivityAction tags the kind of mutation recorded in the audit trail.
type ActivityAction string

const (
	ActionCustomerCreated         ActivityAction = "CUSTOMER_CREATED"
	ActionCustomerStatusChanged   ActivityAction = "CUSTOMER_STATUS_CHANGED"
	ActionProjectStatusChanged    ActivityAction = "PROJECT_STATUS_CHANGED"
	ActionProjectSyncFailed       ActivityAction = "PROJECT_SYNC_FAILED"
	ActionEstimateCreated         ActivityAction = "ESTIMATE_CREATED"
	ActionEstimateVersionCreated  ActivityAction = "ESTIMATE_VERSION_CREATED"
	ActionEstimateStatusChanged   ActivityAction = "ESTIMATE_STATUS_CHANGED"
	ActionEstimateAmountUpdated   ActivityAction = "ESTIMATE_AMOUNT_UPDATED"
	ActionMaterialsReceiptCreated ActivityAction = "MATERIALS_RECEIPT_CREATED"
)

// ModuleType identifies which module an audit entry belongs to.
type ModuleType string

const (
	ModuleCustomer  ModuleType = "CUSTOMER"
	ModuleProject   ModuleType = "PROJECT"
	ModuleEstimate  ModuleType = "ESTIMATE"
	ModuleMaterials ModuleType = "MATERIALS"
)

// ActivityLogEntry is one append-only row of the audit trail.
//
// LogID is derived from the wall clock (LOG-<millis>); it orders entries by
// creation time but is not a uniqueness-bearing key — the log is forensic.
// Status/PreviousStatus are only set for status-change actions.
type ActivityLogEntry struct {
	LogID          string          `json:"log_id"`
	Timestamp      time.Time       `json:"timestamp"`
	Action         ActivityAction  `json:"action"`
	UserEmail      string          `json:"user_email"`
	ModuleType     ModuleType      `json:"module_type"`
	ReferenceID    string          `json:"reference_id"`
	Details        json.RawMessage `json:"details"`
	Status         string          `json:"status"`
	PreviousStatus string          `json:"previous_status"`
}
