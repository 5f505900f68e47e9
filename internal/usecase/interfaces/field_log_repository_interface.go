package interfaces

import (
	"context"

	"construction_backoffice/internal/domain/entities"
)

// Field records are append-only; no updates, no status.

type ITimeLogRepository interface {
	Create(ctx context.Context, t entities.TimeLog) (entities.TimeLog, error)
}

type IMaterialsReceiptRepository interface {
	Create(ctx context.Context, r entities.MaterialsReceipt) (entities.MaterialsReceipt, error)
}

type ISubInvoiceRepository interface {
	Create(ctx context.Context, i entities.SubInvoice) (entities.SubInvoice, error)
}
