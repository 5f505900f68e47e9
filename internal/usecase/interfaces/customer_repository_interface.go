package interfaces

import (
	"context"

	"construction_backoffice/internal/domain/entities"
)

// ICustomerRepository abstracts DynamoDB persistence for Customer.
//
// The back-office must be able to:
//   - append a customer row with a freshly allocated id (conditional on
//     the id not existing; see ErrDuplicateID)
//   - scan all customer ids for identifier allocation
//   - update a customer's status cell in place
type ICustomerRepository interface {
	Create(ctx context.Context, c entities.Customer) (entities.Customer, error)
	GetByID(ctx context.Context, id string) (entities.Customer, error)
	List(ctx context.Context) ([]entities.Customer, error)
	ListIDs(ctx context.Context) ([]string, error)
	UpdateStatus(ctx context.Context, id string, status entities.CustomerStatus) (entities.Customer, error)
}
