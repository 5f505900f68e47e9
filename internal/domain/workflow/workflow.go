// Package workflow holds the fixed status transition tables for the
// back-office entities and decides whether a requested transition is legal.
// It is pure: no store access, no clock, loaded once at process start.
package workflow

import (
	"fmt"

	"construction_backoffice/internal/domain/entities"
)

// EntityKind selects which transition table applies.
type EntityKind string

const (
	KindProject  EntityKind = "PROJECT"
	KindEstimate EntityKind = "ESTIMATE"
	KindCustomer EntityKind = "CUSTOMER"
)

// transitions maps each entity kind to its adjacency table: for every
// status, the set of statuses it may move to. A status absent from the
// successor list is rejected; an empty successor list marks a terminal
// status. No table permits a self-transition.
var transitions = map[EntityKind]map[string][]string{
	KindProject: {
		string(entities.ProjectStatusPending):    {string(entities.ProjectStatusApproved), string(entities.ProjectStatusCancelled)},
		string(entities.ProjectStatusApproved):   {string(entities.ProjectStatusInProgress), string(entities.ProjectStatusCancelled)},
		string(entities.ProjectStatusInProgress): {string(entities.ProjectStatusCompleted), string(entities.ProjectStatusCancelled)},
		string(entities.ProjectStatusCompleted):  {string(entities.ProjectStatusClosed)},
		string(entities.ProjectStatusCancelled):  {},
		string(entities.ProjectStatusClosed):     {},
	},
	KindEstimate: {
		string(entities.EstimateStatusDraft):     {string(entities.EstimateStatusPending), string(entities.EstimateStatusCancelled)},
		string(entities.EstimateStatusPending):   {string(entities.EstimateStatusApproved), string(entities.EstimateStatusRejected), string(entities.EstimateStatusCancelled)},
		string(entities.EstimateStatusApproved):  {string(entities.EstimateStatusCompleted), string(entities.EstimateStatusCancelled)},
		string(entities.EstimateStatusRejected):  {string(entities.EstimateStatusDraft), string(entities.EstimateStatusCancelled)},
		string(entities.EstimateStatusCompleted): {string(entities.EstimateStatusClosed)},
		string(entities.EstimateStatusCancelled): {},
		string(entities.EstimateStatusClosed):    {},
	},
	KindCustomer: {
		string(entities.CustomerStatusPending):  {string(entities.CustomerStatusActive), string(entities.CustomerStatusInactive)},
		string(entities.CustomerStatusActive):   {string(entities.CustomerStatusInactive), string(entities.CustomerStatusArchived)},
		string(entities.CustomerStatusInactive): {string(entities.CustomerStatusActive), string(entities.CustomerStatusArchived)},
		string(entities.CustomerStatusArchived): {string(entities.CustomerStatusActive)},
	},
}

// InvalidTransitionError reports a rejected status change with enough
// context for the caller to act on it.
type InvalidTransitionError struct {
	Kind     EntityKind
	EntityID string
	From     string
	To       string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid %s transition for %s: %s -> %s", e.Kind, e.EntityID, e.From, e.To)
}

// KnownStatus reports whether s appears in the kind's transition table.
func KnownStatus(kind EntityKind, s string) bool {
	_, ok := transitions[kind][s]
	return ok
}

// IsLegal reports whether from -> to is an edge in the kind's table.
func IsLegal(kind EntityKind, from, to string) bool {
	for _, next := range transitions[kind][from] {
		if next == to {
			return true
		}
	}
	return false
}

// Terminal reports whether s has no outgoing edges.
func Terminal(kind EntityKind, s string) bool {
	succ, ok := transitions[kind][s]
	return ok && len(succ) == 0
}

// ValidateTransition returns an *InvalidTransitionError if from -> to is
// not in the kind's table. Initial creation statuses are valid by
// construction and never pass through here.
func ValidateTransition(kind EntityKind, entityID, from, to string) error {
	if !IsLegal(kind, from, to) {
		return &InvalidTransitionError{Kind: kind, EntityID: entityID, From: from, To: to}
	}
	return nil
}

// ModulesEnabled reports whether the field modules (time logging, materials
// receipts, sub-invoices) are open for a project in the given status.
// Recomputed on every query, never cached.
func ModulesEnabled(status entities.ProjectStatus) bool {
	return status == entities.ProjectStatusApproved || status == entities.ProjectStatusInProgress
}
