package response

import (
	"encoding/json"
	"time"

	"construction_backoffice/internal/domain/entities"
)

type ActivityLogEntryResponse struct {
	LogID          string          `json:"log_id"`
	Timestamp      time.Time       `json:"timestamp"`
	Action         string          `json:"action"`
	UserEmail      string          `json:"user_email"`
	ModuleType     string          `json:"module_type"`
	ReferenceID    string          `json:"reference_id"`
	Details        json.RawMessage `json:"details,omitempty"`
	Status         string          `json:"status,omitempty"`
	PreviousStatus string          `json:"previous_status,omitempty"`
}

func FromActivityLogEntry(e entities.ActivityLogEntry) ActivityLogEntryResponse {
	return ActivityLogEntryResponse{
		LogID:          e.LogID,
		Timestamp:      e.Timestamp,
		Action:         string(e.Action),
		UserEmail:      e.UserEmail,
		ModuleType:     string(e.ModuleType),
		ReferenceID:    e.ReferenceID,
		Details:        e.Details,
		Status:         e.Status,
		PreviousStatus: e.PreviousStatus,
	}
}

func FromActivityLogEntries(entries []entities.ActivityLogEntry) []ActivityLogEntryResponse {
	out := make([]ActivityLogEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, FromActivityLogEntry(e))
	}
	return out
}
