package interfaces

import (
	"context"
	"time"

	"construction_backoffice/internal/domain/entities"
)

// IEstimateRepository abstracts DynamoDB persistence for Estimate.
//
// The back-office must be able to:
//   - append an estimate version row (conditional on the id not existing)
//   - scan ids for a project to allocate the next per-project sequence
//   - update single cells: status, amounts, the is_active flag
//   - stamp approval metadata when an estimate is approved
type IEstimateRepository interface {
	Create(ctx context.Context, e entities.Estimate) (entities.Estimate, error)
	GetByID(ctx context.Context, id string) (entities.Estimate, error)
	ListByProjectID(ctx context.Context, projectID string) ([]entities.Estimate, error)
	ListIDsByProjectID(ctx context.Context, projectID string) ([]string, error)
	UpdateStatus(ctx context.Context, id string, status entities.EstimateStatus) (entities.Estimate, error)
	UpdateAmount(ctx context.Context, id string, amount float64) (entities.Estimate, error)
	SetActive(ctx context.Context, id string, active bool) error
	RecordApproval(ctx context.Context, id, approvedBy string, approvedAt time.Time, amount float64) error
}
