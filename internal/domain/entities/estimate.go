package entities

import (
	"encoding/json"
	"time"
)

// EstimateStatus represents the lifecycle of an estimate.
//
// Domain notes:
//   - REJECTED estimates can go back to DRAFT for rework.
//   - CANCELLED and CLOSED are terminal.
type EstimateStatus string

const (
	EstimateStatusDraft     EstimateStatus = "DRAFT"
	EstimateStatusPending   EstimateStatus = "PENDING"
	EstimateStatusApproved  EstimateStatus = "APPROVED"
	EstimateStatusRejected  EstimateStatus = "REJECTED"
	EstimateStatusCompleted EstimateStatus = "COMPLETED"
	EstimateStatusCancelled EstimateStatus = "CANCELLED"
	EstimateStatusClosed    EstimateStatus = "CLOSED"
)

// Estimate is one version of a project estimate persisted in DynamoDB.
//
// Storage model:
//   - PK: estimate_id (format EST-<projectId>-N, N a per-project sequence)
//
// Versioning: an edit creates a new row linked through PreviousVersionID
// with VersionNumber incremented; the superseded row is kept for history
// and its IsActive flag is cleared. At most one version per lineage is
// active at a time.
type Estimate struct {
	EstimateID            string          `json:"estimate_id"`
	ProjectID             string          `json:"project_id"`
	CustomerID            string          `json:"customer_id"`
	EstimatedAmount       float64         `json:"estimated_amount"`
	ContingencyAmount     float64         `json:"contingency_amount"`
	ScopeItems            json.RawMessage `json:"scope_items"`
	Status                EstimateStatus  `json:"status"`
	IsActive              bool            `json:"is_active"`
	PreviousVersionID     string          `json:"previous_version_id"`
	VersionNumber         int             `json:"version_number"`
	ApprovedDate          time.Time       `json:"approved_date"`
	ApprovedBy            string          `json:"approved_by"`
	CurrentApprovedAmount float64         `json:"current_approved_amount"`
	DateCreated           time.Time       `json:"date_created"`
	CreatedBy             string          `json:"created_by"`
}
