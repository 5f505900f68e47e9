package usecase

import (
	"context"
	"errors"
	"strings"

	"construction_backoffice/internal/domain/entities"
	"construction_backoffice/internal/usecase/interfaces"
)

var ErrInvalidReferenceID = errors.New("invalid reference id")

// IActivityUseCase exposes read access to the audit trail.
type IActivityUseCase interface {
	ListByReferenceID(ctx context.Context, referenceID string) ([]entities.ActivityLogEntry, error)
}

type ActivityUseCase struct {
	repo interfaces.IActivityLogRepository
}

var _ IActivityUseCase = (*ActivityUseCase)(nil)

func NewActivityUseCase(repo interfaces.IActivityLogRepository) *ActivityUseCase {
	return &ActivityUseCase{repo: repo}
}

func (u *ActivityUseCase) ListByReferenceID(ctx context.Context, referenceID string) ([]entities.ActivityLogEntry, error) {
	referenceID = strings.TrimSpace(referenceID)
	if referenceID == "" {
		return nil, ErrInvalidReferenceID
	}
	return u.repo.ListByReferenceID(ctx, referenceID)
}
