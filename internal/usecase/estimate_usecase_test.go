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

func newEstimateUC(t *testing.T, ctrl *gomock.Controller) (*EstimateUseCase, *mock_interfaces.MockIEstimateRepository, *mock_interfaces.MockIProjectRepository, *mock_interfaces.MockIActivityLogRepository) {
	t.Helper()
	repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
	projectRepo := mock_interfaces.NewMockIProjectRepository(ctrl)
	activity := mock_interfaces.NewMockIActivityLogRepository(ctrl)
	uc := NewEstimateUseCase(repo, projectRepo, activity, identifier.NewScopeLocks())
	uc.now = fixedClock
	return uc, repo, projectRepo, activity
}

func TestEstimateUseCase_CreateDraft(t *testing.T) {
	t.Run("invalid amount", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _, _, _ := newEstimateUC(t, ctrl)

		_, err := uc.CreateDraft(context.Background(), CreateEstimateInput{ProjectID: "PROJ-202503-001"}, "pm@example.com")
		if !errors.Is(err, ErrInvalidEstimateVal) {
			t.Fatalf("expected ErrInvalidEstimateVal, got %v", err)
		}
	})

	t.Run("first version per project", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, _, activity := newEstimateUC(t, ctrl)

		repo.EXPECT().ListIDsByProjectID(gomock.Any(), "PROJ-202503-001").Return(nil, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Estimate{})).DoAndReturn(
			func(_ context.Context, e entities.Estimate) (entities.Estimate, error) {
				if e.EstimateID != "EST-PROJ-202503-001-1" {
					t.Fatalf("unexpected id: %s", e.EstimateID)
				}
				if e.Status != entities.EstimateStatusDraft || !e.IsActive || e.VersionNumber != 1 {
					t.Fatalf("unexpected version fields: %+v", e)
				}
				if e.PreviousVersionID != "" {
					t.Fatalf("first version must not link a predecessor")
				}
				return e, nil
			},
		)
		activity.EXPECT().Record(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e entities.ActivityLogEntry) (entities.ActivityLogEntry, error) {
				if e.Action != entities.ActionEstimateCreated {
					t.Fatalf("unexpected action: %s", e.Action)
				}
				return e, nil
			},
		)

		created, err := uc.CreateDraft(context.Background(), CreateEstimateInput{
			ProjectID:       "PROJ-202503-001",
			CustomerID:      "2025-001",
			EstimatedAmount: 48000,
		}, "pm@example.com")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.EstimatedAmount != 48000 {
			t.Fatalf("amount dropped: %+v", created)
		}
	})
}

func TestEstimateUseCase_Revise(t *testing.T) {
	t.Run("previous not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, _, _ := newEstimateUC(t, ctrl)

		repo.EXPECT().GetByID(gomock.Any(), "EST-PROJ-202503-001-9").Return(entities.Estimate{}, nil)

		_, err := uc.Revise(context.Background(), "EST-PROJ-202503-001-9", CreateEstimateInput{EstimatedAmount: 100}, "pm@example.com")
		if !errors.Is(err, ErrEstimateNotFound) {
			t.Fatalf("expected ErrEstimateNotFound, got %v", err)
		}
	})

	t.Run("appends new version and clears old active flag", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, _, activity := newEstimateUC(t, ctrl)

		prev := entities.Estimate{
			EstimateID:    "EST-PROJ-202503-001-1",
			ProjectID:     "PROJ-202503-001",
			CustomerID:    "2025-001",
			VersionNumber: 1,
			IsActive:      true,
		}
		repo.EXPECT().GetByID(gomock.Any(), "EST-PROJ-202503-001-1").Return(prev, nil)
		repo.EXPECT().ListIDsByProjectID(gomock.Any(), "PROJ-202503-001").
			Return([]string{"EST-PROJ-202503-001-1"}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e entities.Estimate) (entities.Estimate, error) {
				if e.EstimateID != "EST-PROJ-202503-001-2" {
					t.Fatalf("unexpected id: %s", e.EstimateID)
				}
				if e.VersionNumber != 2 || e.PreviousVersionID != "EST-PROJ-202503-001-1" || !e.IsActive {
					t.Fatalf("unexpected version fields: %+v", e)
				}
				if e.CustomerID != "2025-001" {
					t.Fatalf("customer must carry over from previous version")
				}
				return e, nil
			},
		)
		repo.EXPECT().SetActive(gomock.Any(), "EST-PROJ-202503-001-1", false).Return(nil)
		activity.EXPECT().Record(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e entities.ActivityLogEntry) (entities.ActivityLogEntry, error) {
				if e.Action != entities.ActionEstimateVersionCreated {
					t.Fatalf("unexpected action: %s", e.Action)
				}
				return e, nil
			},
		)

		revised, err := uc.Revise(context.Background(), "EST-PROJ-202503-001-1",
			CreateEstimateInput{EstimatedAmount: 52000}, "pm@example.com")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if revised.VersionNumber != 2 {
			t.Fatalf("unexpected version: %+v", revised)
		}
	})

	t.Run("new version stands when flag clear fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, _, activity := newEstimateUC(t, ctrl)

		prev := entities.Estimate{
			EstimateID:    "EST-PROJ-202503-001-1",
			ProjectID:     "PROJ-202503-001",
			VersionNumber: 1,
		}
		repo.EXPECT().GetByID(gomock.Any(), "EST-PROJ-202503-001-1").Return(prev, nil)
		repo.EXPECT().ListIDsByProjectID(gomock.Any(), "PROJ-202503-001").
			Return([]string{"EST-PROJ-202503-001-1"}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e entities.Estimate) (entities.Estimate, error) { return e, nil },
		)
		repo.EXPECT().SetActive(gomock.Any(), "EST-PROJ-202503-001-1", false).Return(errors.New("update failed"))
		activity.EXPECT().Record(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e entities.ActivityLogEntry) (entities.ActivityLogEntry, error) { return e, nil },
		)

		if _, err := uc.Revise(context.Background(), "EST-PROJ-202503-001-1",
			CreateEstimateInput{EstimatedAmount: 52000}, "pm@example.com"); err != nil {
			t.Fatalf("revise must tolerate a stale active flag, got %v", err)
		}
	})
}

func TestEstimateUseCase_UpdateStatus(t *testing.T) {
	t.Run("draft cannot jump to approved", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, _, _ := newEstimateUC(t, ctrl)

		repo.EXPECT().GetByID(gomock.Any(), "EST-P1-1").
			Return(entities.Estimate{EstimateID: "EST-P1-1", Status: entities.EstimateStatusDraft}, nil)

		_, err := uc.UpdateStatus(context.Background(), "EST-P1-1", "APPROVED", "pm@example.com")
		var tErr *workflow.InvalidTransitionError
		if !errors.As(err, &tErr) {
			t.Fatalf("expected InvalidTransitionError, got %v", err)
		}
	})

	t.Run("rejected returns to draft for rework", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, _, activity := newEstimateUC(t, ctrl)

		repo.EXPECT().GetByID(gomock.Any(), "EST-P1-1").
			Return(entities.Estimate{EstimateID: "EST-P1-1", Status: entities.EstimateStatusRejected}, nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), "EST-P1-1", entities.EstimateStatusDraft).
			Return(entities.Estimate{EstimateID: "EST-P1-1", Status: entities.EstimateStatusDraft}, nil)
		activity.EXPECT().Record(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e entities.ActivityLogEntry) (entities.ActivityLogEntry, error) { return e, nil },
		)

		if _, err := uc.UpdateStatus(context.Background(), "EST-P1-1", "DRAFT", "pm@example.com"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("approval stamps approver and amount", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, _, activity := newEstimateUC(t, ctrl)

		repo.EXPECT().GetByID(gomock.Any(), "EST-P1-1").
			Return(entities.Estimate{EstimateID: "EST-P1-1", Status: entities.EstimateStatusPending, EstimatedAmount: 48000}, nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), "EST-P1-1", entities.EstimateStatusApproved).
			Return(entities.Estimate{EstimateID: "EST-P1-1", Status: entities.EstimateStatusApproved, EstimatedAmount: 48000}, nil)
		repo.EXPECT().RecordApproval(gomock.Any(), "EST-P1-1", "pm@example.com", fixedNow, 48000.0).Return(nil)
		activity.EXPECT().Record(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e entities.ActivityLogEntry) (entities.ActivityLogEntry, error) { return e, nil },
		)

		change, err := uc.UpdateStatus(context.Background(), "EST-P1-1", "APPROVED", "pm@example.com")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if change.Estimate.ApprovedBy != "pm@example.com" || change.Estimate.CurrentApprovedAmount != 48000 {
			t.Fatalf("approval metadata missing: %+v", change.Estimate)
		}
	})
}

func TestEstimateUseCase_ApproveWithSync(t *testing.T) {
	pendingEstimate := entities.Estimate{
		EstimateID:      "EST-PROJ-202503-001-1",
		ProjectID:       "PROJ-202503-001",
		Status:          entities.EstimateStatusPending,
		EstimatedAmount: 48000,
	}

	expectApprovedEstimate := func(repo *mock_interfaces.MockIEstimateRepository) {
		repo.EXPECT().GetByID(gomock.Any(), "EST-PROJ-202503-001-1").Return(pendingEstimate, nil)
		approved := pendingEstimate
		approved.Status = entities.EstimateStatusApproved
		repo.EXPECT().UpdateStatus(gomock.Any(), "EST-PROJ-202503-001-1", entities.EstimateStatusApproved).Return(approved, nil)
		repo.EXPECT().RecordApproval(gomock.Any(), "EST-PROJ-202503-001-1", "pm@example.com", fixedNow, 48000.0).Return(nil)
	}

	t.Run("cascade applied", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, projectRepo, activity := newEstimateUC(t, ctrl)

		expectApprovedEstimate(repo)
		projectRepo.EXPECT().GetByID(gomock.Any(), "PROJ-202503-001").
			Return(entities.Project{ProjectID: "PROJ-202503-001", Status: entities.ProjectStatusPending}, nil)
		projectRepo.EXPECT().UpdateStatus(gomock.Any(), "PROJ-202503-001", entities.ProjectStatusApproved, "pm@example.com").
			Return(entities.Project{ProjectID: "PROJ-202503-001", Status: entities.ProjectStatusApproved}, nil)

		// Two audit entries: estimate status change, then project status change.
		gomock.InOrder(
			activity.EXPECT().Record(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, e entities.ActivityLogEntry) (entities.ActivityLogEntry, error) {
					if e.Action != entities.ActionEstimateStatusChanged {
						t.Fatalf("expected estimate audit first, got %s", e.Action)
					}
					return e, nil
				},
			),
			activity.EXPECT().Record(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, e entities.ActivityLogEntry) (entities.ActivityLogEntry, error) {
					if e.Action != entities.ActionProjectStatusChanged {
						t.Fatalf("expected project audit second, got %s", e.Action)
					}
					if e.ReferenceID != "PROJ-202503-001" {
						t.Fatalf("unexpected reference: %s", e.ReferenceID)
					}
					return e, nil
				},
			),
		)

		result, err := uc.ApproveWithSync(context.Background(), "EST-PROJ-202503-001-1", "pm@example.com")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !result.CascadeApplied || result.CascadeError != nil {
			t.Fatalf("expected applied cascade: %+v", result)
		}
		if result.Project.Status != entities.ProjectStatusApproved {
			t.Fatalf("project not approved: %+v", result.Project)
		}
		if result.PreviousProjectStatus != entities.ProjectStatusPending {
			t.Fatalf("unexpected previous project status: %s", result.PreviousProjectStatus)
		}
	})

	t.Run("estimate rejection stops the saga", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, _, _ := newEstimateUC(t, ctrl)

		repo.EXPECT().GetByID(gomock.Any(), "EST-PROJ-202503-001-1").
			Return(entities.Estimate{EstimateID: "EST-PROJ-202503-001-1", ProjectID: "PROJ-202503-001", Status: entities.EstimateStatusDraft}, nil)
		// No project access: step one never committed.

		_, err := uc.ApproveWithSync(context.Background(), "EST-PROJ-202503-001-1", "pm@example.com")
		var tErr *workflow.InvalidTransitionError
		if !errors.As(err, &tErr) {
			t.Fatalf("expected InvalidTransitionError, got %v", err)
		}
	})

	t.Run("project in terminal state leaves estimate approved", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, projectRepo, activity := newEstimateUC(t, ctrl)

		expectApprovedEstimate(repo)
		projectRepo.EXPECT().GetByID(gomock.Any(), "PROJ-202503-001").
			Return(entities.Project{ProjectID: "PROJ-202503-001", Status: entities.ProjectStatusCancelled}, nil)

		gomock.InOrder(
			activity.EXPECT().Record(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, e entities.ActivityLogEntry) (entities.ActivityLogEntry, error) { return e, nil },
			),
			activity.EXPECT().Record(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, e entities.ActivityLogEntry) (entities.ActivityLogEntry, error) {
					if e.Action != entities.ActionProjectSyncFailed {
						t.Fatalf("expected sync failure audit, got %s", e.Action)
					}
					return e, nil
				},
			),
		)

		result, err := uc.ApproveWithSync(context.Background(), "EST-PROJ-202503-001-1", "pm@example.com")
		if err != nil {
			t.Fatalf("cascade failure must not fail the call, got %v", err)
		}
		if result.CascadeApplied {
			t.Fatal("cascade must not apply on a terminal project")
		}
		if result.CascadeError == nil {
			t.Fatal("expected cascade error")
		}
		if result.Estimate.Status != entities.EstimateStatusApproved {
			t.Fatalf("estimate approval must stand: %+v", result.Estimate)
		}
	})

	t.Run("project store failure recorded, no rollback", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, projectRepo, activity := newEstimateUC(t, ctrl)

		expectApprovedEstimate(repo)
		projectRepo.EXPECT().GetByID(gomock.Any(), "PROJ-202503-001").
			Return(entities.Project{ProjectID: "PROJ-202503-001", Status: entities.ProjectStatusPending}, nil)
		projectRepo.EXPECT().UpdateStatus(gomock.Any(), "PROJ-202503-001", entities.ProjectStatusApproved, "pm@example.com").
			Return(entities.Project{}, errors.New("store down"))

		gomock.InOrder(
			activity.EXPECT().Record(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, e entities.ActivityLogEntry) (entities.ActivityLogEntry, error) { return e, nil },
			),
			activity.EXPECT().Record(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, e entities.ActivityLogEntry) (entities.ActivityLogEntry, error) {
					if e.Action != entities.ActionProjectSyncFailed {
						t.Fatalf("expected sync failure audit, got %s", e.Action)
					}
					return e, nil
				},
			),
		)

		result, err := uc.ApproveWithSync(context.Background(), "EST-PROJ-202503-001-1", "pm@example.com")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.CascadeApplied || result.CascadeError == nil {
			t.Fatalf("expected failed cascade: %+v", result)
		}
	})
}

func TestEstimateUseCase_UpdateAmount(t *testing.T) {
	t.Run("non positive amount", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _, _, _ := newEstimateUC(t, ctrl)

		_, err := uc.UpdateAmount(context.Background(), "EST-P1-1", 0, "pm@example.com")
		if !errors.Is(err, ErrInvalidEstimateVal) {
			t.Fatalf("expected ErrInvalidEstimateVal, got %v", err)
		}
	})

	t.Run("updates and audits", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, _, activity := newEstimateUC(t, ctrl)

		repo.EXPECT().UpdateAmount(gomock.Any(), "EST-P1-1", 51000.0).
			Return(entities.Estimate{EstimateID: "EST-P1-1", EstimatedAmount: 51000}, nil)
		activity.EXPECT().Record(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e entities.ActivityLogEntry) (entities.ActivityLogEntry, error) {
				if e.Action != entities.ActionEstimateAmountUpdated {
					t.Fatalf("unexpected action: %s", e.Action)
				}
				return e, nil
			},
		)

		updated, err := uc.UpdateAmount(context.Background(), "EST-P1-1", 51000, "pm@example.com")
		if err != nil || updated.EstimatedAmount != 51000 {
			t.Fatalf("unexpected result: %+v err=%v", updated, err)
		}
	})
}

func TestEstimateUseCase_PreviousVersion(t *testing.T) {
	t.Run("no previous", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, _, _ := newEstimateUC(t, ctrl)

		repo.EXPECT().GetByID(gomock.Any(), "EST-P1-1").
			Return(entities.Estimate{EstimateID: "EST-P1-1", VersionNumber: 1}, nil)

		_, err := uc.PreviousVersion(context.Background(), "EST-P1-1")
		if !errors.Is(err, ErrEstimateHasNoPrevious) {
			t.Fatalf("expected ErrEstimateHasNoPrevious, got %v", err)
		}
	})

	t.Run("returns superseded row", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, _, _ := newEstimateUC(t, ctrl)

		repo.EXPECT().GetByID(gomock.Any(), "EST-P1-2").
			Return(entities.Estimate{EstimateID: "EST-P1-2", PreviousVersionID: "EST-P1-1", VersionNumber: 2}, nil)
		repo.EXPECT().GetByID(gomock.Any(), "EST-P1-1").
			Return(entities.Estimate{EstimateID: "EST-P1-1", VersionNumber: 1}, nil)

		prev, err := uc.PreviousVersion(context.Background(), "EST-P1-2")
		if err != nil || prev.EstimateID != "EST-P1-1" {
			t.Fatalf("unexpected result: %+v err=%v", prev, err)
		}
	})
}
