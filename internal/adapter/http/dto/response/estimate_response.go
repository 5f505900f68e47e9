package response

import (
	"encoding/json"
	"time"

	"construction_backoffice/internal/domain/entities"
	"construction_backoffice/internal/usecase"
)

type EstimateResponse struct {
	EstimateID            string          `json:"estimate_id"`
	ProjectID             string          `json:"project_id"`
	CustomerID            string          `json:"customer_id"`
	EstimatedAmount       float64         `json:"estimated_amount"`
	ContingencyAmount     float64         `json:"contingency_amount"`
	ScopeItems            json.RawMessage `json:"scope_items,omitempty"`
	Status                string          `json:"status"`
	IsActive              bool            `json:"is_active"`
	PreviousVersionID     string          `json:"previous_version_id,omitempty"`
	VersionNumber         int             `json:"version_number"`
	ApprovedDate          *time.Time      `json:"approved_date,omitempty"`
	ApprovedBy            string          `json:"approved_by,omitempty"`
	CurrentApprovedAmount float64         `json:"current_approved_amount"`
	DateCreated           time.Time       `json:"date_created"`
	CreatedBy             string          `json:"created_by"`
}

func FromEstimate(e entities.Estimate) EstimateResponse {
	resp := EstimateResponse{
		EstimateID:            e.EstimateID,
		ProjectID:             e.ProjectID,
		CustomerID:            e.CustomerID,
		EstimatedAmount:       e.EstimatedAmount,
		ContingencyAmount:     e.ContingencyAmount,
		ScopeItems:            e.ScopeItems,
		Status:                string(e.Status),
		IsActive:              e.IsActive,
		PreviousVersionID:     e.PreviousVersionID,
		VersionNumber:         e.VersionNumber,
		ApprovedBy:            e.ApprovedBy,
		CurrentApprovedAmount: e.CurrentApprovedAmount,
		DateCreated:           e.DateCreated,
		CreatedBy:             e.CreatedBy,
	}
	if !e.ApprovedDate.IsZero() {
		t := e.ApprovedDate
		resp.ApprovedDate = &t
	}
	return resp
}

func FromEstimates(estimates []entities.Estimate) []EstimateResponse {
	out := make([]EstimateResponse, 0, len(estimates))
	for _, e := range estimates {
		out = append(out, FromEstimate(e))
	}
	return out
}

// CascadeResponse is the project half of an approval result. Applied is
// false when the project did not follow; Error then says why.
type CascadeResponse struct {
	Applied               bool             `json:"applied"`
	Project               *ProjectResponse `json:"project,omitempty"`
	PreviousProjectStatus string           `json:"previous_project_status,omitempty"`
	Error                 string           `json:"error,omitempty"`
}

type ApproveEstimateResponse struct {
	Estimate               EstimateResponse `json:"estimate"`
	PreviousEstimateStatus string           `json:"previous_estimate_status"`
	ProjectSync            CascadeResponse  `json:"project_sync"`
}

func FromApproveResult(r usecase.ApproveResult) ApproveEstimateResponse {
	resp := ApproveEstimateResponse{
		Estimate:               FromEstimate(r.Estimate),
		PreviousEstimateStatus: string(r.PreviousEstimateStatus),
		ProjectSync: CascadeResponse{
			Applied:               r.CascadeApplied,
			PreviousProjectStatus: string(r.PreviousProjectStatus),
		},
	}
	if r.CascadeApplied {
		p := FromProject(r.Project)
		resp.ProjectSync.Project = &p
	}
	if r.CascadeError != nil {
		resp.ProjectSync.Error = r.CascadeError.Error()
	}
	return resp
}
