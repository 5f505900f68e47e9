package entities

import "time"

// ProjectStatus represents the lifecycle of a construction project.
//
// CANCELLED and CLOSED are terminal: no transition leaves them.
type ProjectStatus string

const (
	ProjectStatusPending    ProjectStatus = "PENDING"
	ProjectStatusApproved   ProjectStatus = "APPROVED"
	ProjectStatusInProgress ProjectStatus = "IN_PROGRESS"
	ProjectStatusCompleted  ProjectStatus = "COMPLETED"
	ProjectStatusCancelled  ProjectStatus = "CANCELLED"
	ProjectStatusClosed     ProjectStatus = "CLOSED"
)

// Project is a construction project persisted in DynamoDB.
//
// Storage model:
//   - PK: project_id (format PROJ-YYYYMM-NNN, allocated per year-month)
//
// CustomerID is a plain reference; the store does not enforce it.
type Project struct {
	ProjectID      string        `json:"project_id"`
	CustomerID     string        `json:"customer_id"`
	ProjectName    string        `json:"project_name"`
	Status         ProjectStatus `json:"status"`
	JobID          string        `json:"job_id"`
	CreatedOn      time.Time     `json:"created_on"`
	CreatedBy      string        `json:"created_by"`
	LastModified   time.Time     `json:"last_modified"`
	LastModifiedBy string        `json:"last_modified_by"`
}

// ModuleVisibility reports which field modules are open for a project.
// It is derived from the project status on every query, never stored.
type ModuleVisibility struct {
	TimeLogging       bool `json:"time_logging"`
	MaterialsReceipts bool `json:"materials_receipts"`
	SubInvoices       bool `json:"sub_invoices"`
}
