package request

import "construction_backoffice/internal/usecase"

type CreateProjectRequest struct {
	CustomerID  string `json:"customer_id" binding:"required"`
	ProjectName string `json:"project_name" binding:"required"`
	JobID       string `json:"job_id"`
}

func (r CreateProjectRequest) ToInput() usecase.CreateProjectInput {
	return usecase.CreateProjectInput{
		CustomerID:  r.CustomerID,
		ProjectName: r.ProjectName,
		JobID:       r.JobID,
	}
}
