package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"construction_backoffice/internal/domain/entities"
	"construction_backoffice/internal/domain/identifier"
	"construction_backoffice/internal/usecase/interfaces"
)

// maxAllocationAttempts bounds the allocate-scan-append retry loop. The
// in-process scope lock already serializes local callers; retries only
// fire when an independent process won the conditional append.
const maxAllocationAttempts = 3

var (
	ErrMissingActingUser   = errors.New("missing acting user")
	ErrUnknownStatus       = errors.New("unknown status")
	ErrAllocationExhausted = errors.New("identifier allocation retries exhausted")
)

// recordActivity appends one audit row. It must run only after the change
// it describes has been persisted, never before.
func recordActivity(
	ctx context.Context,
	repo interfaces.IActivityLogRepository,
	now time.Time,
	action entities.ActivityAction,
	module entities.ModuleType,
	referenceID, userEmail string,
	details map[string]any,
	status, previousStatus string,
) error {
	payload, err := json.Marshal(details)
	if err != nil {
		return err
	}
	entry := entities.ActivityLogEntry{
		LogID:          identifier.TimestampID("LOG-", now),
		Timestamp:      now,
		Action:         action,
		UserEmail:      userEmail,
		ModuleType:     module,
		ReferenceID:    referenceID,
		Details:        payload,
		Status:         status,
		PreviousStatus: previousStatus,
	}
	if _, err := repo.Record(ctx, entry); err != nil {
		log.Printf("[audit][usecase] record failed action=%s reference_id=%s err=%v", action, referenceID, err)
		return err
	}
	return nil
}
