package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"construction_backoffice/internal/domain/entities"
	"construction_backoffice/internal/domain/identifier"
	"construction_backoffice/internal/domain/workflow"
	"construction_backoffice/internal/usecase/interfaces"
)

var (
	ErrEstimateNotFound      = errors.New("estimate not found")
	ErrInvalidEstimateID     = errors.New("invalid estimate id")
	ErrInvalidEstimateVal    = errors.New("invalid estimate amount")
	ErrEstimateHasNoPrevious = errors.New("estimate has no previous version")
)

// IEstimateUseCase exposes estimate operations.
//
// Estimates are versioned rows: Revise appends a new row linked through
// PreviousVersionID and clears the superseded row's active flag, it never
// overwrites. ApproveWithSync is the cross-entity cascade: the estimate
// transition commits first, then the linked project is pushed to APPROVED;
// a cascade failure is reported next to the primary success, not rolled
// back.
type IEstimateUseCase interface {
	CreateDraft(ctx context.Context, input CreateEstimateInput, actingUser string) (entities.Estimate, error)
	Revise(ctx context.Context, previousEstimateID string, input CreateEstimateInput, actingUser string) (entities.Estimate, error)
	UpdateStatus(ctx context.Context, estimateID, newStatus, actingUser string) (EstimateStatusChange, error)
	ApproveWithSync(ctx context.Context, estimateID, actingUser string) (ApproveResult, error)
	UpdateAmount(ctx context.Context, estimateID string, amount float64, actingUser string) (entities.Estimate, error)
	GetByID(ctx context.Context, estimateID string) (entities.Estimate, error)
	ListByProjectID(ctx context.Context, projectID string) ([]entities.Estimate, error)
	PreviousVersion(ctx context.Context, estimateID string) (entities.Estimate, error)
}

type CreateEstimateInput struct {
	ProjectID         string
	CustomerID        string
	EstimatedAmount   float64
	ContingencyAmount float64
	ScopeItems        json.RawMessage
}

type EstimateStatusChange struct {
	Estimate       entities.Estimate
	PreviousStatus entities.EstimateStatus
}

// ApproveResult reports both halves of the approval cascade. Estimate is
// always the committed primary change; CascadeApplied/CascadeError tell
// the caller whether the linked project followed. When CascadeError is set
// the two entities are intentionally left as they are.
type ApproveResult struct {
	Estimate               entities.Estimate
	PreviousEstimateStatus entities.EstimateStatus
	Project                entities.Project
	PreviousProjectStatus  entities.ProjectStatus
	CascadeApplied         bool
	CascadeError           error
}

type EstimateUseCase struct {
	repo        interfaces.IEstimateRepository
	projectRepo interfaces.IProjectRepository
	activity    interfaces.IActivityLogRepository
	locks       *identifier.ScopeLocks
	now         func() time.Time
}

var _ IEstimateUseCase = (*EstimateUseCase)(nil)

func NewEstimateUseCase(repo interfaces.IEstimateRepository, projectRepo interfaces.IProjectRepository, activity interfaces.IActivityLogRepository, locks *identifier.ScopeLocks) *EstimateUseCase {
	return &EstimateUseCase{repo: repo, projectRepo: projectRepo, activity: activity, locks: locks, now: time.Now}
}

func (u *EstimateUseCase) CreateDraft(ctx context.Context, input CreateEstimateInput, actingUser string) (entities.Estimate, error) {
	actingUser = strings.TrimSpace(actingUser)
	if actingUser == "" {
		return entities.Estimate{}, ErrMissingActingUser
	}
	projectID := strings.TrimSpace(input.ProjectID)
	if projectID == "" {
		return entities.Estimate{}, ErrInvalidProjectID
	}
	if input.EstimatedAmount <= 0 {
		return entities.Estimate{}, ErrInvalidEstimateVal
	}
	input.ProjectID = projectID

	created, err := u.appendVersion(ctx, input, actingUser, 1, "")
	if err != nil {
		return entities.Estimate{}, err
	}

	if err := recordActivity(ctx, u.activity, u.now().UTC(),
		entities.ActionEstimateCreated, entities.ModuleEstimate,
		created.EstimateID, actingUser,
		map[string]any{
			"projectId":       created.ProjectID,
			"estimatedAmount": created.EstimatedAmount,
			"versionNumber":   created.VersionNumber,
		}, string(created.Status), ""); err != nil {
		return entities.Estimate{}, err
	}
	return created, nil
}

// Revise appends a new estimate version for the same project and clears
// the superseded row's active flag. The old row is preserved; if clearing
// its flag fails the new version still stands and the audit entry records
// the stale flag.
func (u *EstimateUseCase) Revise(ctx context.Context, previousEstimateID string, input CreateEstimateInput, actingUser string) (entities.Estimate, error) {
	actingUser = strings.TrimSpace(actingUser)
	if actingUser == "" {
		return entities.Estimate{}, ErrMissingActingUser
	}
	previousEstimateID = strings.TrimSpace(previousEstimateID)
	if previousEstimateID == "" {
		return entities.Estimate{}, ErrInvalidEstimateID
	}
	if input.EstimatedAmount <= 0 {
		return entities.Estimate{}, ErrInvalidEstimateVal
	}

	prev, err := u.repo.GetByID(ctx, previousEstimateID)
	if err != nil {
		return entities.Estimate{}, err
	}
	if prev.EstimateID == "" {
		return entities.Estimate{}, ErrEstimateNotFound
	}

	input.ProjectID = prev.ProjectID
	if input.CustomerID == "" {
		input.CustomerID = prev.CustomerID
	}
	created, err := u.appendVersion(ctx, input, actingUser, prev.VersionNumber+1, prev.EstimateID)
	if err != nil {
		return entities.Estimate{}, err
	}

	staleActiveFlag := false
	if err := u.repo.SetActive(ctx, prev.EstimateID, false); err != nil {
		// The new version stands; the lineage temporarily carries two
		// active rows until reconciled.
		log.Printf("[estimate][usecase] failed clearing active flag on %s: %v", prev.EstimateID, err)
		staleActiveFlag = true
	}

	if err := recordActivity(ctx, u.activity, u.now().UTC(),
		entities.ActionEstimateVersionCreated, entities.ModuleEstimate,
		created.EstimateID, actingUser,
		map[string]any{
			"projectId":         created.ProjectID,
			"previousVersionId": prev.EstimateID,
			"versionNumber":     created.VersionNumber,
			"staleActiveFlag":   staleActiveFlag,
		}, string(created.Status), ""); err != nil {
		return entities.Estimate{}, err
	}
	return created, nil
}

func (u *EstimateUseCase) appendVersion(ctx context.Context, input CreateEstimateInput, actingUser string, version int, previousVersionID string) (entities.Estimate, error) {
	scope := "estimates/" + input.ProjectID

	for attempt := 1; attempt <= maxAllocationAttempts; attempt++ {
		unlock := u.locks.Lock(scope)
		created, err := func() (entities.Estimate, error) {
			defer unlock()
			ids, err := u.repo.ListIDsByProjectID(ctx, input.ProjectID)
			if err != nil {
				return entities.Estimate{}, err
			}
			now := u.now().UTC()
			e := entities.Estimate{
				EstimateID:        identifier.NextEstimateID(ids, input.ProjectID),
				ProjectID:         input.ProjectID,
				CustomerID:        input.CustomerID,
				EstimatedAmount:   input.EstimatedAmount,
				ContingencyAmount: input.ContingencyAmount,
				ScopeItems:        input.ScopeItems,
				Status:            entities.EstimateStatusDraft,
				IsActive:          true,
				PreviousVersionID: previousVersionID,
				VersionNumber:     version,
				DateCreated:       now,
				CreatedBy:         actingUser,
			}
			return u.repo.Create(ctx, e)
		}()
		if errors.Is(err, interfaces.ErrDuplicateID) {
			log.Printf("[estimate][usecase] id collision on attempt %d project_id=%s, rescanning", attempt, input.ProjectID)
			continue
		}
		if err != nil {
			return entities.Estimate{}, err
		}
		return created, nil
	}
	return entities.Estimate{}, ErrAllocationExhausted
}

func (u *EstimateUseCase) UpdateStatus(ctx context.Context, estimateID, newStatus, actingUser string) (EstimateStatusChange, error) {
	estimateID = strings.TrimSpace(estimateID)
	if estimateID == "" {
		return EstimateStatusChange{}, ErrInvalidEstimateID
	}
	actingUser = strings.TrimSpace(actingUser)
	if actingUser == "" {
		return EstimateStatusChange{}, ErrMissingActingUser
	}
	if !workflow.KnownStatus(workflow.KindEstimate, newStatus) {
		return EstimateStatusChange{}, ErrUnknownStatus
	}

	e, err := u.repo.GetByID(ctx, estimateID)
	if err != nil {
		return EstimateStatusChange{}, err
	}
	if e.EstimateID == "" {
		return EstimateStatusChange{}, ErrEstimateNotFound
	}

	oldStatus := e.Status
	if err := workflow.ValidateTransition(workflow.KindEstimate, estimateID, string(oldStatus), newStatus); err != nil {
		return EstimateStatusChange{}, err
	}

	updated, err := u.repo.UpdateStatus(ctx, estimateID, entities.EstimateStatus(newStatus))
	if err != nil {
		return EstimateStatusChange{}, err
	}
	if updated.EstimateID == "" {
		return EstimateStatusChange{}, ErrEstimateNotFound
	}

	if entities.EstimateStatus(newStatus) == entities.EstimateStatusApproved {
		approvedAt := u.now().UTC()
		if err := u.repo.RecordApproval(ctx, estimateID, actingUser, approvedAt, updated.EstimatedAmount); err != nil {
			return EstimateStatusChange{}, err
		}
		updated.ApprovedBy = actingUser
		updated.ApprovedDate = approvedAt
		updated.CurrentApprovedAmount = updated.EstimatedAmount
	}

	if err := recordActivity(ctx, u.activity, u.now().UTC(),
		entities.ActionEstimateStatusChanged, entities.ModuleEstimate,
		estimateID, actingUser,
		map[string]any{"oldStatus": string(oldStatus), "newStatus": newStatus},
		newStatus, string(oldStatus)); err != nil {
		return EstimateStatusChange{}, err
	}
	return EstimateStatusChange{Estimate: updated, PreviousStatus: oldStatus}, nil
}

// ApproveWithSync approves the estimate and cascades the linked project to
// APPROVED. The store cannot give us a multi-row transaction, so this is a
// saga: step one commits before step two is attempted, and a step-two
// failure is recorded as a PROJECT_SYNC_FAILED audit entry and returned in
// ApproveResult.CascadeError alongside the committed estimate.
func (u *EstimateUseCase) ApproveWithSync(ctx context.Context, estimateID, actingUser string) (ApproveResult, error) {
	change, err := u.UpdateStatus(ctx, estimateID, string(entities.EstimateStatusApproved), actingUser)
	if err != nil {
		return ApproveResult{}, err
	}

	result := ApproveResult{
		Estimate:               change.Estimate,
		PreviousEstimateStatus: change.PreviousStatus,
	}

	projectID := change.Estimate.ProjectID
	if projectID == "" {
		result.CascadeError = fmt.Errorf("estimate %s has no linked project", estimateID)
		u.recordSyncFailure(ctx, estimateID, projectID, actingUser, result.CascadeError)
		return result, nil
	}

	p, err := u.projectRepo.GetByID(ctx, projectID)
	if err != nil {
		result.CascadeError = err
		u.recordSyncFailure(ctx, estimateID, projectID, actingUser, err)
		return result, nil
	}
	if p.ProjectID == "" {
		result.CascadeError = ErrProjectNotFound
		u.recordSyncFailure(ctx, estimateID, projectID, actingUser, ErrProjectNotFound)
		return result, nil
	}

	result.PreviousProjectStatus = p.Status
	if err := workflow.ValidateTransition(workflow.KindProject, projectID, string(p.Status), string(entities.ProjectStatusApproved)); err != nil {
		result.CascadeError = err
		u.recordSyncFailure(ctx, estimateID, projectID, actingUser, err)
		return result, nil
	}

	updated, err := u.projectRepo.UpdateStatus(ctx, projectID, entities.ProjectStatusApproved, actingUser)
	if err != nil {
		result.CascadeError = err
		u.recordSyncFailure(ctx, estimateID, projectID, actingUser, err)
		return result, nil
	}

	if err := recordActivity(ctx, u.activity, u.now().UTC(),
		entities.ActionProjectStatusChanged, entities.ModuleProject,
		projectID, actingUser,
		map[string]any{
			"oldStatus":       string(result.PreviousProjectStatus),
			"newStatus":       string(entities.ProjectStatusApproved),
			"relatedEstimate": estimateID,
		},
		string(entities.ProjectStatusApproved), string(result.PreviousProjectStatus)); err != nil {
		result.CascadeError = err
		return result, nil
	}

	result.Project = updated
	result.CascadeApplied = true
	return result, nil
}

// recordSyncFailure is the saga's compensating event: the estimate stays
// approved, the mismatch is made visible in the audit trail.
func (u *EstimateUseCase) recordSyncFailure(ctx context.Context, estimateID, projectID, actingUser string, cause error) {
	if err := recordActivity(ctx, u.activity, u.now().UTC(),
		entities.ActionProjectSyncFailed, entities.ModuleProject,
		projectID, actingUser,
		map[string]any{
			"relatedEstimate": estimateID,
			"reason":          cause.Error(),
		}, "", ""); err != nil {
		log.Printf("[estimate][usecase] failed recording sync failure estimate_id=%s project_id=%s err=%v", estimateID, projectID, err)
	}
}

func (u *EstimateUseCase) UpdateAmount(ctx context.Context, estimateID string, amount float64, actingUser string) (entities.Estimate, error) {
	estimateID = strings.TrimSpace(estimateID)
	if estimateID == "" {
		return entities.Estimate{}, ErrInvalidEstimateID
	}
	actingUser = strings.TrimSpace(actingUser)
	if actingUser == "" {
		return entities.Estimate{}, ErrMissingActingUser
	}
	if amount <= 0 {
		return entities.Estimate{}, ErrInvalidEstimateVal
	}

	updated, err := u.repo.UpdateAmount(ctx, estimateID, amount)
	if err != nil {
		return entities.Estimate{}, err
	}
	if updated.EstimateID == "" {
		return entities.Estimate{}, ErrEstimateNotFound
	}

	if err := recordActivity(ctx, u.activity, u.now().UTC(),
		entities.ActionEstimateAmountUpdated, entities.ModuleEstimate,
		estimateID, actingUser,
		map[string]any{"amount": amount}, "", ""); err != nil {
		return entities.Estimate{}, err
	}
	return updated, nil
}

func (u *EstimateUseCase) GetByID(ctx context.Context, estimateID string) (entities.Estimate, error) {
	estimateID = strings.TrimSpace(estimateID)
	if estimateID == "" {
		return entities.Estimate{}, ErrInvalidEstimateID
	}
	e, err := u.repo.GetByID(ctx, estimateID)
	if err != nil {
		return entities.Estimate{}, err
	}
	if e.EstimateID == "" {
		return entities.Estimate{}, ErrEstimateNotFound
	}
	return e, nil
}

func (u *EstimateUseCase) ListByProjectID(ctx context.Context, projectID string) ([]entities.Estimate, error) {
	projectID = strings.TrimSpace(projectID)
	if projectID == "" {
		return nil, ErrInvalidProjectID
	}
	return u.repo.ListByProjectID(ctx, projectID)
}

// PreviousVersion returns the row an estimate superseded, used to seed a
// rework form from the prior version's amounts and scope items.
func (u *EstimateUseCase) PreviousVersion(ctx context.Context, estimateID string) (entities.Estimate, error) {
	e, err := u.GetByID(ctx, estimateID)
	if err != nil {
		return entities.Estimate{}, err
	}
	if e.PreviousVersionID == "" {
		return entities.Estimate{}, ErrEstimateHasNoPrevious
	}
	prev, err := u.repo.GetByID(ctx, e.PreviousVersionID)
	if err != nil {
		return entities.Estimate{}, err
	}
	if prev.EstimateID == "" {
		return entities.Estimate{}, ErrEstimateNotFound
	}
	return prev, nil
}
