package usecase

import (
	"context"
	"errors"
	"testing"

	"construction_backoffice/internal/domain/entities"
	"construction_backoffice/internal/domain/identifier"
	"construction_backoffice/internal/domain/workflow"
	mock_interfaces "construction_backoffice/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestProjectUseCase_Create(t *testing.T) {
	t.Run("missing name", func(t *testing.T) {
		uc := NewProjectUseCase(nil, nil, identifier.NewScopeLocks())
		_, err := uc.Create(context.Background(), CreateProjectInput{CustomerID: "2025-001"}, "pm@example.com")
		if !errors.Is(err, ErrInvalidProjectName) {
			t.Fatalf("expected ErrInvalidProjectName, got %v", err)
		}
	})

	t.Run("allocates month scoped id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProjectRepository(ctrl)
		uc := NewProjectUseCase(repo, nil, identifier.NewScopeLocks())
		uc.now = fixedClock

		repo.EXPECT().ListIDs(gomock.Any()).Return([]string{"PROJ-202503-004", "PROJ-202502-099"}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Project{})).DoAndReturn(
			func(_ context.Context, p entities.Project) (entities.Project, error) {
				if p.ProjectID != "PROJ-202503-005" {
					t.Fatalf("unexpected id: %s", p.ProjectID)
				}
				if p.Status != entities.ProjectStatusPending {
					t.Fatalf("new projects must start PENDING, got %s", p.Status)
				}
				if p.LastModifiedBy != "pm@example.com" {
					t.Fatalf("unexpected modifier: %s", p.LastModifiedBy)
				}
				return p, nil
			},
		)

		created, err := uc.Create(context.Background(), CreateProjectInput{
			CustomerID:  "2025-001",
			ProjectName: "Riverside Remodel",
			JobID:       "J-1044",
		}, "pm@example.com")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.JobID != "J-1044" {
			t.Fatalf("job id dropped: %+v", created)
		}
	})
}

func TestProjectUseCase_UpdateStatus(t *testing.T) {
	t.Run("invalid transition", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProjectRepository(ctrl)
		uc := NewProjectUseCase(repo, nil, identifier.NewScopeLocks())

		repo.EXPECT().GetByID(gomock.Any(), "PROJ-202503-001").
			Return(entities.Project{ProjectID: "PROJ-202503-001", Status: entities.ProjectStatusPending}, nil)

		_, err := uc.UpdateStatus(context.Background(), "PROJ-202503-001", "COMPLETED", "pm@example.com")
		var tErr *workflow.InvalidTransitionError
		if !errors.As(err, &tErr) {
			t.Fatalf("expected InvalidTransitionError, got %v", err)
		}
	})

	t.Run("closed is terminal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProjectRepository(ctrl)
		uc := NewProjectUseCase(repo, nil, identifier.NewScopeLocks())

		repo.EXPECT().GetByID(gomock.Any(), "PROJ-202503-001").
			Return(entities.Project{ProjectID: "PROJ-202503-001", Status: entities.ProjectStatusClosed}, nil)

		var tErr *workflow.InvalidTransitionError
		if _, err := uc.UpdateStatus(context.Background(), "PROJ-202503-001", "PENDING", "pm@example.com"); !errors.As(err, &tErr) {
			t.Fatalf("expected InvalidTransitionError, got %v", err)
		}
	})

	t.Run("approved moves to in progress and audits", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProjectRepository(ctrl)
		activity := mock_interfaces.NewMockIActivityLogRepository(ctrl)
		uc := NewProjectUseCase(repo, activity, identifier.NewScopeLocks())
		uc.now = fixedClock

		repo.EXPECT().GetByID(gomock.Any(), "PROJ-202503-001").
			Return(entities.Project{ProjectID: "PROJ-202503-001", Status: entities.ProjectStatusApproved}, nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), "PROJ-202503-001", entities.ProjectStatusInProgress, "pm@example.com").
			Return(entities.Project{ProjectID: "PROJ-202503-001", Status: entities.ProjectStatusInProgress}, nil)
		activity.EXPECT().Record(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e entities.ActivityLogEntry) (entities.ActivityLogEntry, error) {
				if e.Action != entities.ActionProjectStatusChanged || e.PreviousStatus != "APPROVED" {
					t.Fatalf("unexpected audit entry: %+v", e)
				}
				return e, nil
			},
		)

		change, err := uc.UpdateStatus(context.Background(), "PROJ-202503-001", "IN_PROGRESS", "pm@example.com")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if change.PreviousStatus != entities.ProjectStatusApproved {
			t.Fatalf("unexpected previous status: %s", change.PreviousStatus)
		}
	})
}

func TestProjectUseCase_ListActive(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIProjectRepository(ctrl)
	uc := NewProjectUseCase(repo, nil, identifier.NewScopeLocks())

	repo.EXPECT().List(gomock.Any()).Return([]entities.Project{
		{ProjectID: "PROJ-202503-001", Status: entities.ProjectStatusPending},
		{ProjectID: "PROJ-202503-002", Status: entities.ProjectStatusApproved},
		{ProjectID: "PROJ-202503-003", Status: entities.ProjectStatusInProgress},
		{ProjectID: "PROJ-202503-004", Status: entities.ProjectStatusCancelled},
	}, nil)

	active, err := uc.ListActive(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(active) != 2 {
		t.Fatalf("expected 2 active projects, got %d", len(active))
	}
	if active[0].ProjectID != "PROJ-202503-002" || active[1].ProjectID != "PROJ-202503-003" {
		t.Fatalf("unexpected projects: %+v", active)
	}
}

func TestProjectUseCase_ModuleVisibility(t *testing.T) {
	cases := []struct {
		status entities.ProjectStatus
		open   bool
	}{
		{entities.ProjectStatusPending, false},
		{entities.ProjectStatusApproved, true},
		{entities.ProjectStatusInProgress, true},
		{entities.ProjectStatusCompleted, false},
	}

	for _, tc := range cases {
		t.Run(string(tc.status), func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := mock_interfaces.NewMockIProjectRepository(ctrl)
			uc := NewProjectUseCase(repo, nil, identifier.NewScopeLocks())

			repo.EXPECT().GetByID(gomock.Any(), "PROJ-202503-001").
				Return(entities.Project{ProjectID: "PROJ-202503-001", Status: tc.status}, nil)

			v, err := uc.ModuleVisibility(context.Background(), "PROJ-202503-001")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if v.TimeLogging != tc.open || v.MaterialsReceipts != tc.open || v.SubInvoices != tc.open {
				t.Fatalf("status %s: expected all modules %v, got %+v", tc.status, tc.open, v)
			}
		})
	}
}
