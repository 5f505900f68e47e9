package response

import (
	"time"

	"construction_backoffice/internal/domain/entities"
)

type ProjectResponse struct {
	ProjectID      string    `json:"project_id"`
	CustomerID     string    `json:"customer_id"`
	ProjectName    string    `json:"project_name"`
	Status         string    `json:"status"`
	JobID          string    `json:"job_id"`
	CreatedOn      time.Time `json:"created_on"`
	CreatedBy      string    `json:"created_by"`
	LastModified   time.Time `json:"last_modified"`
	LastModifiedBy string    `json:"last_modified_by"`
}

func FromProject(p entities.Project) ProjectResponse {
	return ProjectResponse{
		ProjectID:      p.ProjectID,
		CustomerID:     p.CustomerID,
		ProjectName:    p.ProjectName,
		Status:         string(p.Status),
		JobID:          p.JobID,
		CreatedOn:      p.CreatedOn,
		CreatedBy:      p.CreatedBy,
		LastModified:   p.LastModified,
		LastModifiedBy: p.LastModifiedBy,
	}
}

func FromProjects(projects []entities.Project) []ProjectResponse {
	out := make([]ProjectResponse, 0, len(projects))
	for _, p := range projects {
		out = append(out, FromProject(p))
	}
	return out
}

type ModuleVisibilityResponse struct {
	ProjectID         string `json:"project_id"`
	TimeLogging       bool   `json:"time_logging"`
	MaterialsReceipts bool   `json:"materials_receipts"`
	SubInvoices       bool   `json:"sub_invoices"`
}

func FromModuleVisibility(projectID string, v entities.ModuleVisibility) ModuleVisibilityResponse {
	return ModuleVisibilityResponse{
		ProjectID:         projectID,
		TimeLogging:       v.TimeLogging,
		MaterialsReceipts: v.MaterialsReceipts,
		SubInvoices:       v.SubInvoices,
	}
}
