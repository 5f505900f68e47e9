package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"construction_backoffice/internal/domain/entities"
	"construction_backoffice/internal/domain/identifier"
	"construction_backoffice/internal/domain/workflow"
	"construction_backoffice/internal/usecase/interfaces"
	mock_interfaces "construction_backoffice/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2025, time.March, 14, 10, 30, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

func TestCustomerUseCase_Create(t *testing.T) {
	t.Run("missing acting user", func(t *testing.T) {
		uc := NewCustomerUseCase(nil, nil, identifier.NewScopeLocks())
		_, err := uc.Create(context.Background(), CreateCustomerInput{Name: "Acme"}, "   ")
		if !errors.Is(err, ErrMissingActingUser) {
			t.Fatalf("expected ErrMissingActingUser, got %v", err)
		}
	})

	t.Run("missing name", func(t *testing.T) {
		uc := NewCustomerUseCase(nil, nil, identifier.NewScopeLocks())
		_, err := uc.Create(context.Background(), CreateCustomerInput{}, "pm@example.com")
		if !errors.Is(err, ErrInvalidCustomerName) {
			t.Fatalf("expected ErrInvalidCustomerName, got %v", err)
		}
	})

	t.Run("allocates year scoped id and audits", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICustomerRepository(ctrl)
		activity := mock_interfaces.NewMockIActivityLogRepository(ctrl)
		uc := NewCustomerUseCase(repo, activity, identifier.NewScopeLocks())
		uc.now = fixedClock

		repo.EXPECT().ListIDs(gomock.Any()).Return([]string{"2025-001", "2024-120"}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Customer{})).DoAndReturn(
			func(_ context.Context, c entities.Customer) (entities.Customer, error) {
				if c.CustomerID != "2025-002" {
					t.Fatalf("unexpected id: %s", c.CustomerID)
				}
				if c.Status != entities.CustomerStatusPending {
					t.Fatalf("new customers must start PENDING, got %s", c.Status)
				}
				if c.CreatedBy != "pm@example.com" || c.CreatedOn.IsZero() {
					t.Fatalf("unexpected audit stamps: %+v", c)
				}
				return c, nil
			},
		)
		activity.EXPECT().Record(gomock.Any(), gomock.AssignableToTypeOf(entities.ActivityLogEntry{})).DoAndReturn(
			func(_ context.Context, e entities.ActivityLogEntry) (entities.ActivityLogEntry, error) {
				if e.Action != entities.ActionCustomerCreated || e.ReferenceID != "2025-002" {
					t.Fatalf("unexpected audit entry: %+v", e)
				}
				return e, nil
			},
		)

		created, err := uc.Create(context.Background(), CreateCustomerInput{Name: " Acme Builders "}, "pm@example.com")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.Name != "Acme Builders" {
			t.Fatalf("expected trimmed name, got %q", created.Name)
		}
	})

	t.Run("retries allocation on duplicate id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICustomerRepository(ctrl)
		activity := mock_interfaces.NewMockIActivityLogRepository(ctrl)
		uc := NewCustomerUseCase(repo, activity, identifier.NewScopeLocks())
		uc.now = fixedClock

		// First attempt loses the conditional append; the rescan sees the
		// winner's row and computes the next id.
		repo.EXPECT().ListIDs(gomock.Any()).Return([]string{"2025-001"}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Customer{}, interfaces.ErrDuplicateID)
		repo.EXPECT().ListIDs(gomock.Any()).Return([]string{"2025-001", "2025-002"}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, c entities.Customer) (entities.Customer, error) {
				if c.CustomerID != "2025-003" {
					t.Fatalf("expected rescan to yield 2025-003, got %s", c.CustomerID)
				}
				return c, nil
			},
		)
		activity.EXPECT().Record(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e entities.ActivityLogEntry) (entities.ActivityLogEntry, error) { return e, nil },
		)

		if _, err := uc.Create(context.Background(), CreateCustomerInput{Name: "Acme"}, "pm@example.com"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("allocation exhausted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICustomerRepository(ctrl)
		uc := NewCustomerUseCase(repo, nil, identifier.NewScopeLocks())
		uc.now = fixedClock

		repo.EXPECT().ListIDs(gomock.Any()).Return([]string{}, nil).Times(3)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Customer{}, interfaces.ErrDuplicateID).Times(3)

		_, err := uc.Create(context.Background(), CreateCustomerInput{Name: "Acme"}, "pm@example.com")
		if !errors.Is(err, ErrAllocationExhausted) {
			t.Fatalf("expected ErrAllocationExhausted, got %v", err)
		}
	})

	t.Run("audit failure surfaces", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICustomerRepository(ctrl)
		activity := mock_interfaces.NewMockIActivityLogRepository(ctrl)
		uc := NewCustomerUseCase(repo, activity, identifier.NewScopeLocks())
		uc.now = fixedClock

		repo.EXPECT().ListIDs(gomock.Any()).Return(nil, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, c entities.Customer) (entities.Customer, error) { return c, nil },
		)
		activity.EXPECT().Record(gomock.Any(), gomock.Any()).Return(entities.ActivityLogEntry{}, errors.New("audit down"))

		_, err := uc.Create(context.Background(), CreateCustomerInput{Name: "Acme"}, "pm@example.com")
		if err == nil || err.Error() != "audit down" {
			t.Fatalf("expected audit error, got %v", err)
		}
	})
}

func TestCustomerUseCase_UpdateStatus(t *testing.T) {
	t.Run("unknown status", func(t *testing.T) {
		uc := NewCustomerUseCase(nil, nil, identifier.NewScopeLocks())
		_, err := uc.UpdateStatus(context.Background(), "2025-001", "SHIPPED", "pm@example.com")
		if !errors.Is(err, ErrUnknownStatus) {
			t.Fatalf("expected ErrUnknownStatus, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICustomerRepository(ctrl)
		uc := NewCustomerUseCase(repo, nil, identifier.NewScopeLocks())

		repo.EXPECT().GetByID(gomock.Any(), "2025-009").Return(entities.Customer{}, nil)

		_, err := uc.UpdateStatus(context.Background(), "2025-009", "ACTIVE", "pm@example.com")
		if !errors.Is(err, ErrCustomerNotFound) {
			t.Fatalf("expected ErrCustomerNotFound, got %v", err)
		}
	})

	t.Run("invalid transition leaves row untouched", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICustomerRepository(ctrl)
		uc := NewCustomerUseCase(repo, nil, identifier.NewScopeLocks())

		repo.EXPECT().GetByID(gomock.Any(), "2025-001").
			Return(entities.Customer{CustomerID: "2025-001", Status: entities.CustomerStatusPending}, nil)
		// No UpdateStatus, no audit: the rejection happens before any write.

		_, err := uc.UpdateStatus(context.Background(), "2025-001", "ARCHIVED", "pm@example.com")
		var tErr *workflow.InvalidTransitionError
		if !errors.As(err, &tErr) {
			t.Fatalf("expected InvalidTransitionError, got %v", err)
		}
		if tErr.From != "PENDING" || tErr.To != "ARCHIVED" {
			t.Fatalf("unexpected error fields: %+v", tErr)
		}
	})

	t.Run("applied transition audited with both statuses", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICustomerRepository(ctrl)
		activity := mock_interfaces.NewMockIActivityLogRepository(ctrl)
		uc := NewCustomerUseCase(repo, activity, identifier.NewScopeLocks())
		uc.now = fixedClock

		repo.EXPECT().GetByID(gomock.Any(), "2025-001").
			Return(entities.Customer{CustomerID: "2025-001", Status: entities.CustomerStatusPending}, nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), "2025-001", entities.CustomerStatusActive).
			Return(entities.Customer{CustomerID: "2025-001", Status: entities.CustomerStatusActive}, nil)
		activity.EXPECT().Record(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e entities.ActivityLogEntry) (entities.ActivityLogEntry, error) {
				if e.Action != entities.ActionCustomerStatusChanged {
					t.Fatalf("unexpected action: %s", e.Action)
				}
				if e.Status != "ACTIVE" || e.PreviousStatus != "PENDING" {
					t.Fatalf("unexpected statuses: %+v", e)
				}
				return e, nil
			},
		)

		change, err := uc.UpdateStatus(context.Background(), "2025-001", "ACTIVE", "pm@example.com")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if change.PreviousStatus != entities.CustomerStatusPending {
			t.Fatalf("expected previous status PENDING, got %s", change.PreviousStatus)
		}
	})

	t.Run("archived customer reactivates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICustomerRepository(ctrl)
		activity := mock_interfaces.NewMockIActivityLogRepository(ctrl)
		uc := NewCustomerUseCase(repo, activity, identifier.NewScopeLocks())
		uc.now = fixedClock

		repo.EXPECT().GetByID(gomock.Any(), "2025-001").
			Return(entities.Customer{CustomerID: "2025-001", Status: entities.CustomerStatusArchived}, nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), "2025-001", entities.CustomerStatusActive).
			Return(entities.Customer{CustomerID: "2025-001", Status: entities.CustomerStatusActive}, nil)
		activity.EXPECT().Record(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e entities.ActivityLogEntry) (entities.ActivityLogEntry, error) { return e, nil },
		)

		if _, err := uc.UpdateStatus(context.Background(), "2025-001", "ACTIVE", "pm@example.com"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestCustomerUseCase_GetByID(t *testing.T) {
	t.Run("blank id", func(t *testing.T) {
		uc := NewCustomerUseCase(nil, nil, identifier.NewScopeLocks())
		_, err := uc.GetByID(context.Background(), "  ")
		if !errors.Is(err, ErrInvalidCustomerID) {
			t.Fatalf("expected ErrInvalidCustomerID, got %v", err)
		}
	})

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICustomerRepository(ctrl)
		uc := NewCustomerUseCase(repo, nil, identifier.NewScopeLocks())

		repo.EXPECT().GetByID(gomock.Any(), "2025-001").
			Return(entities.Customer{CustomerID: "2025-001", Name: "Acme"}, nil)

		c, err := uc.GetByID(context.Background(), "2025-001")
		if err != nil || c.Name != "Acme" {
			t.Fatalf("unexpected result: %+v err=%v", c, err)
		}
	})
}
