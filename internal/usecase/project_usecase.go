package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"construction_backoffice/internal/domain/entities"
	"construction_backoffice/internal/domain/identifier"
	"construction_backoffice/internal/domain/workflow"
	"construction_backoffice/internal/usecase/interfaces"
)

var (
	ErrProjectNotFound    = errors.New("project not found")
	ErrInvalidProjectID   = errors.New("invalid project id")
	ErrInvalidProjectName = errors.New("invalid project name")
)

// IProjectUseCase exposes project record operations.
//
// Project ids are allocated per year-month (PROJ-YYYYMM-NNN); a new month
// restarts the sequence at 001. Module visibility is a derived read over
// the project's current status, recomputed per query.
type IProjectUseCase interface {
	Create(ctx context.Context, input CreateProjectInput, actingUser string) (entities.Project, error)
	UpdateStatus(ctx context.Context, projectID, newStatus, actingUser string) (ProjectStatusChange, error)
	GetByID(ctx context.Context, projectID string) (entities.Project, error)
	ListActive(ctx context.Context) ([]entities.Project, error)
	ModuleVisibility(ctx context.Context, projectID string) (entities.ModuleVisibility, error)
}

type CreateProjectInput struct {
	CustomerID  string
	ProjectName string
	JobID       string
}

type ProjectStatusChange struct {
	Project        entities.Project
	PreviousStatus entities.ProjectStatus
}

type ProjectUseCase struct {
	repo     interfaces.IProjectRepository
	activity interfaces.IActivityLogRepository
	locks    *identifier.ScopeLocks
	now      func() time.Time
}

var _ IProjectUseCase = (*ProjectUseCase)(nil)

func NewProjectUseCase(repo interfaces.IProjectRepository, activity interfaces.IActivityLogRepository, locks *identifier.ScopeLocks) *ProjectUseCase {
	return &ProjectUseCase{repo: repo, activity: activity, locks: locks, now: time.Now}
}

func (u *ProjectUseCase) Create(ctx context.Context, input CreateProjectInput, actingUser string) (entities.Project, error) {
	actingUser = strings.TrimSpace(actingUser)
	if actingUser == "" {
		return entities.Project{}, ErrMissingActingUser
	}
	if strings.TrimSpace(input.ProjectName) == "" {
		return entities.Project{}, ErrInvalidProjectName
	}
	// CustomerID is carried as-is; the store does not enforce the link and
	// validity is the caller's responsibility.

	now := u.now().UTC()
	scope := "projects/" + identifier.ProjectScope(now)

	for attempt := 1; attempt <= maxAllocationAttempts; attempt++ {
		unlock := u.locks.Lock(scope)
		created, err := func() (entities.Project, error) {
			defer unlock()
			ids, err := u.repo.ListIDs(ctx)
			if err != nil {
				return entities.Project{}, err
			}
			p := entities.Project{
				ProjectID:      identifier.NextProjectID(ids, now),
				CustomerID:     strings.TrimSpace(input.CustomerID),
				ProjectName:    strings.TrimSpace(input.ProjectName),
				Status:         entities.ProjectStatusPending,
				JobID:          input.JobID,
				CreatedOn:      now,
				CreatedBy:      actingUser,
				LastModified:   now,
				LastModifiedBy: actingUser,
			}
			return u.repo.Create(ctx, p)
		}()
		if errors.Is(err, interfaces.ErrDuplicateID) {
			log.Printf("[project][usecase] id collision on attempt %d, rescanning", attempt)
			continue
		}
		if err != nil {
			return entities.Project{}, err
		}
		return created, nil
	}
	return entities.Project{}, ErrAllocationExhausted
}

func (u *ProjectUseCase) UpdateStatus(ctx context.Context, projectID, newStatus, actingUser string) (ProjectStatusChange, error) {
	projectID = strings.TrimSpace(projectID)
	if projectID == "" {
		return ProjectStatusChange{}, ErrInvalidProjectID
	}
	actingUser = strings.TrimSpace(actingUser)
	if actingUser == "" {
		return ProjectStatusChange{}, ErrMissingActingUser
	}
	if !workflow.KnownStatus(workflow.KindProject, newStatus) {
		return ProjectStatusChange{}, ErrUnknownStatus
	}

	p, err := u.repo.GetByID(ctx, projectID)
	if err != nil {
		return ProjectStatusChange{}, err
	}
	if p.ProjectID == "" {
		return ProjectStatusChange{}, ErrProjectNotFound
	}

	oldStatus := p.Status
	if err := workflow.ValidateTransition(workflow.KindProject, projectID, string(oldStatus), newStatus); err != nil {
		return ProjectStatusChange{}, err
	}

	updated, err := u.repo.UpdateStatus(ctx, projectID, entities.ProjectStatus(newStatus), actingUser)
	if err != nil {
		return ProjectStatusChange{}, err
	}
	if updated.ProjectID == "" {
		return ProjectStatusChange{}, ErrProjectNotFound
	}

	if err := recordActivity(ctx, u.activity, u.now().UTC(),
		entities.ActionProjectStatusChanged, entities.ModuleProject,
		projectID, actingUser,
		map[string]any{"oldStatus": string(oldStatus), "newStatus": newStatus},
		newStatus, string(oldStatus)); err != nil {
		return ProjectStatusChange{}, err
	}
	return ProjectStatusChange{Project: updated, PreviousStatus: oldStatus}, nil
}

func (u *ProjectUseCase) GetByID(ctx context.Context, projectID string) (entities.Project, error) {
	projectID = strings.TrimSpace(projectID)
	if projectID == "" {
		return entities.Project{}, ErrInvalidProjectID
	}
	p, err := u.repo.GetByID(ctx, projectID)
	if err != nil {
		return entities.Project{}, err
	}
	if p.ProjectID == "" {
		return entities.Project{}, ErrProjectNotFound
	}
	return p, nil
}

// ListActive returns projects whose field modules are open.
func (u *ProjectUseCase) ListActive(ctx context.Context) ([]entities.Project, error) {
	all, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	active := make([]entities.Project, 0, len(all))
	for _, p := range all {
		if workflow.ModulesEnabled(p.Status) {
			active = append(active, p)
		}
	}
	return active, nil
}

func (u *ProjectUseCase) ModuleVisibility(ctx context.Context, projectID string) (entities.ModuleVisibility, error) {
	p, err := u.GetByID(ctx, projectID)
	if err != nil {
		return entities.ModuleVisibility{}, err
	}
	enabled := workflow.ModulesEnabled(p.Status)
	return entities.ModuleVisibility{
		TimeLogging:       enabled,
		MaterialsReceipts: enabled,
		SubInvoices:       enabled,
	}, nil
}
