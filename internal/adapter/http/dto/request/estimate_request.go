package request

import (
	"encoding/json"

	"construction_backoffice/internal/usecase"
)

type CreateEstimateRequest struct {
	ProjectID         string          `json:"project_id" binding:"required"`
	CustomerID        string          `json:"customer_id"`
	EstimatedAmount   float64         `json:"estimated_amount"`
	ContingencyAmount float64         `json:"contingency_amount"`
	ScopeItems        json.RawMessage `json:"scope_items"`
}

func (r CreateEstimateRequest) ToInput() usecase.CreateEstimateInput {
	return usecase.CreateEstimateInput{
		ProjectID:         r.ProjectID,
		CustomerID:        r.CustomerID,
		EstimatedAmount:   r.EstimatedAmount,
		ContingencyAmount: r.ContingencyAmount,
		ScopeItems:        r.ScopeItems,
	}
}

// ReviseEstimateRequest carries the replacement content for a new estimate
// version. ProjectID is inherited from the superseded version.
type ReviseEstimateRequest struct {
	CustomerID        string          `json:"customer_id"`
	EstimatedAmount   float64         `json:"estimated_amount"`
	ContingencyAmount float64         `json:"contingency_amount"`
	ScopeItems        json.RawMessage `json:"scope_items"`
}

func (r ReviseEstimateRequest) ToInput() usecase.CreateEstimateInput {
	return usecase.CreateEstimateInput{
		CustomerID:        r.CustomerID,
		EstimatedAmount:   r.EstimatedAmount,
		ContingencyAmount: r.ContingencyAmount,
		ScopeItems:        r.ScopeItems,
	}
}

type UpdateAmountRequest struct {
	Amount float64 `json:"amount" binding:"required"`
}
