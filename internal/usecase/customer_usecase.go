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
	ErrCustomerNotFound    = errors.New("customer not found")
	ErrInvalidCustomerID   = errors.New("invalid customer id")
	ErrInvalidCustomerName = errors.New("invalid customer name")
)

// ICustomerUseCase exposes customer record operations.
//
// Creation allocates a year-scoped YYYY-NNN id; the first customer of a
// year is NNN=001 regardless of prior years. Status changes go through the
// customer transition table and are audited.
type ICustomerUseCase interface {
	Create(ctx context.Context, input CreateCustomerInput, actingUser string) (entities.Customer, error)
	UpdateStatus(ctx context.Context, customerID, newStatus, actingUser string) (CustomerStatusChange, error)
	GetByID(ctx context.Context, customerID string) (entities.Customer, error)
	List(ctx context.Context) ([]entities.Customer, error)
}

type CreateCustomerInput struct {
	Name         string
	Address      string
	City         string
	State        string
	Zip          string
	ContactEmail string
	Phone        string
}

// CustomerStatusChange reports an applied transition with the status it
// replaced.
type CustomerStatusChange struct {
	Customer       entities.Customer
	PreviousStatus entities.CustomerStatus
}

type CustomerUseCase struct {
	repo     interfaces.ICustomerRepository
	activity interfaces.IActivityLogRepository
	locks    *identifier.ScopeLocks
	now      func() time.Time
}

var _ ICustomerUseCase = (*CustomerUseCase)(nil)

func NewCustomerUseCase(repo interfaces.ICustomerRepository, activity interfaces.IActivityLogRepository, locks *identifier.ScopeLocks) *CustomerUseCase {
	return &CustomerUseCase{repo: repo, activity: activity, locks: locks, now: time.Now}
}

func (u *CustomerUseCase) Create(ctx context.Context, input CreateCustomerInput, actingUser string) (entities.Customer, error) {
	actingUser = strings.TrimSpace(actingUser)
	if actingUser == "" {
		return entities.Customer{}, ErrMissingActingUser
	}
	if strings.TrimSpace(input.Name) == "" {
		return entities.Customer{}, ErrInvalidCustomerName
	}

	now := u.now().UTC()
	created, err := u.createWithAllocatedID(ctx, input, actingUser, now)
	if err != nil {
		return entities.Customer{}, err
	}

	if err := recordActivity(ctx, u.activity, u.now().UTC(),
		entities.ActionCustomerCreated, entities.ModuleCustomer,
		created.CustomerID, actingUser,
		map[string]any{
			"name":  created.Name,
			"email": created.ContactEmail,
			"city":  created.City,
			"state": created.State,
		}, "", ""); err != nil {
		return entities.Customer{}, err
	}
	return created, nil
}

// createWithAllocatedID runs the allocate-scan-append critical section.
// The scope lock serializes local allocations for the year bucket; the
// repository's conditional append rejects a cross-process duplicate, in
// which case the id is recomputed from a fresh scan.
func (u *CustomerUseCase) createWithAllocatedID(ctx context.Context, input CreateCustomerInput, actingUser string, now time.Time) (entities.Customer, error) {
	scope := "customers/" + identifier.CustomerScope(now)

	for attempt := 1; attempt <= maxAllocationAttempts; attempt++ {
		unlock := u.locks.Lock(scope)
		created, err := func() (entities.Customer, error) {
			defer unlock()
			ids, err := u.repo.ListIDs(ctx)
			if err != nil {
				return entities.Customer{}, err
			}
			c := entities.Customer{
				CustomerID:   identifier.NextCustomerID(ids, now),
				Name:         strings.TrimSpace(input.Name),
				Address:      input.Address,
				City:         input.City,
				State:        input.State,
				Zip:          input.Zip,
				ContactEmail: input.ContactEmail,
				Phone:        input.Phone,
				Status:       entities.CustomerStatusPending,
				CreatedOn:    now,
				CreatedBy:    actingUser,
			}
			return u.repo.Create(ctx, c)
		}()
		if errors.Is(err, interfaces.ErrDuplicateID) {
			log.Printf("[customer][usecase] id collision on attempt %d, rescanning", attempt)
			continue
		}
		if err != nil {
			return entities.Customer{}, err
		}
		return created, nil
	}
	return entities.Customer{}, ErrAllocationExhausted
}

func (u *CustomerUseCase) UpdateStatus(ctx context.Context, customerID, newStatus, actingUser string) (CustomerStatusChange, error) {
	customerID = strings.TrimSpace(customerID)
	if customerID == "" {
		return CustomerStatusChange{}, ErrInvalidCustomerID
	}
	actingUser = strings.TrimSpace(actingUser)
	if actingUser == "" {
		return CustomerStatusChange{}, ErrMissingActingUser
	}
	if !workflow.KnownStatus(workflow.KindCustomer, newStatus) {
		return CustomerStatusChange{}, ErrUnknownStatus
	}

	c, err := u.repo.GetByID(ctx, customerID)
	if err != nil {
		return CustomerStatusChange{}, err
	}
	if c.CustomerID == "" {
		return CustomerStatusChange{}, ErrCustomerNotFound
	}

	oldStatus := c.Status
	if err := workflow.ValidateTransition(workflow.KindCustomer, customerID, string(oldStatus), newStatus); err != nil {
		return CustomerStatusChange{}, err
	}

	updated, err := u.repo.UpdateStatus(ctx, customerID, entities.CustomerStatus(newStatus))
	if err != nil {
		return CustomerStatusChange{}, err
	}
	if updated.CustomerID == "" {
		return CustomerStatusChange{}, ErrCustomerNotFound
	}

	if err := recordActivity(ctx, u.activity, u.now().UTC(),
		entities.ActionCustomerStatusChanged, entities.ModuleCustomer,
		customerID, actingUser,
		map[string]any{"oldStatus": string(oldStatus), "newStatus": newStatus},
		newStatus, string(oldStatus)); err != nil {
		return CustomerStatusChange{}, err
	}
	return CustomerStatusChange{Customer: updated, PreviousStatus: oldStatus}, nil
}

func (u *CustomerUseCase) GetByID(ctx context.Context, customerID string) (entities.Customer, error) {
	customerID = strings.TrimSpace(customerID)
	if customerID == "" {
		return entities.Customer{}, ErrInvalidCustomerID
	}
	c, err := u.repo.GetByID(ctx, customerID)
	if err != nil {
		return entities.Customer{}, err
	}
	if c.CustomerID == "" {
		return entities.Customer{}, ErrCustomerNotFound
	}
	return c, nil
}

func (u *CustomerUseCase) List(ctx context.Context) ([]entities.Customer, error) {
	return u.repo.List(ctx)
}
