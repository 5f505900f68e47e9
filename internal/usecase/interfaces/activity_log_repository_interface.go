package interfaces

import (
	"context"

	"construction_backoffice/internal/domain/entities"
)

// IActivityLogRepository abstracts the append-only audit trail.
//
// Record must only be called after the mutation it describes has been
// persisted; a rejected change is never logged. Entries are never updated
// or deleted.
type IActivityLogRepository interface {
	Record(ctx context.Context, e entities.ActivityLogEntry) (entities.ActivityLogEntry, error)
	ListByReferenceID(ctx context.Context, referenceID string) ([]entities.ActivityLogEntry, error)
}
