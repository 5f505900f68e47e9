package interfaces

import (
	"context"

	"construction_backoffice/internal/domain/entities"
)

// IVendorRepository abstracts DynamoDB persistence for Vendor.
type IVendorRepository interface {
	Create(ctx context.Context, v entities.Vendor) (entities.Vendor, error)
	List(ctx context.Context) ([]entities.Vendor, error)
	ListIDs(ctx context.Context) ([]string, error)
}

// ISubcontractorRepository abstracts DynamoDB persistence for Subcontractor.
type ISubcontractorRepository interface {
	Create(ctx context.Context, s entities.Subcontractor) (entities.Subcontractor, error)
	List(ctx context.Context) ([]entities.Subcontractor, error)
	ListIDs(ctx context.Context) ([]string, error)
}
