package workflow

import (
	"errors"
	"testing"

	"construction_backoffice/internal/domain/entities"
)

func TestIsLegal_FullTables(t *testing.T) {
	legal := map[EntityKind]map[string][]string{
		KindProject: {
			"PENDING":     {"APPROVED", "CANCELLED"},
			"APPROVED":    {"IN_PROGRESS", "CANCELLED"},
			"IN_PROGRESS": {"COMPLETED", "CANCELLED"},
			"COMPLETED":   {"CLOSED"},
			"CANCELLED":   {},
			"CLOSED":      {},
		},
		KindEstimate: {
			"DRAFT":     {"PENDING", "CANCELLED"},
			"PENDING":   {"APPROVED", "REJECTED", "CANCELLED"},
			"APPROVED":  {"COMPLETED", "CANCELLED"},
			"REJECTED":  {"DRAFT", "CANCELLED"},
			"COMPLETED": {"CLOSED"},
			"CANCELLED": {},
			"CLOSED":    {},
		},
		KindCustomer: {
			"PENDING":  {"ACTIVE", "INACTIVE"},
			"ACTIVE":   {"INACTIVE", "ARCHIVED"},
			"INACTIVE": {"ACTIVE", "ARCHIVED"},
			"ARCHIVED": {"ACTIVE"},
		},
	}

	for kind, table := range legal {
		statuses := make([]string, 0, len(table))
		for s := range table {
			statuses = append(statuses, s)
		}
		for from, allowed := range table {
			allowedSet := map[string]bool{}
			for _, to := range allowed {
				allowedSet[to] = true
			}
			// Every pair, including self-transitions, must match the table.
			for _, to := range statuses {
				got := IsLegal(kind, from, to)
				if got != allowedSet[to] {
					t.Errorf("%s: %s -> %s legal=%v, want %v", kind, from, to, got, allowedSet[to])
				}
			}
		}
	}
}

func TestValidateTransition(t *testing.T) {
	t.Run("legal", func(t *testing.T) {
		if err := ValidateTransition(KindProject, "PROJ-202501-001", "PENDING", "APPROVED"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("illegal carries context", func(t *testing.T) {
		err := ValidateTransition(KindEstimate, "EST-PROJ-202501-001-1", "DRAFT", "APPROVED")
		var tErr *InvalidTransitionError
		if !errors.As(err, &tErr) {
			t.Fatalf("expected InvalidTransitionError, got %v", err)
		}
		if tErr.Kind != KindEstimate || tErr.From != "DRAFT" || tErr.To != "APPROVED" {
			t.Fatalf("unexpected error fields: %+v", tErr)
		}
	})

	t.Run("self transition rejected", func(t *testing.T) {
		if err := ValidateTransition(KindCustomer, "2025-001", "ACTIVE", "ACTIVE"); err == nil {
			t.Fatal("expected error")
		}
	})

	t.Run("terminal has no exit", func(t *testing.T) {
		if err := ValidateTransition(KindProject, "PROJ-202501-001", "CLOSED", "PENDING"); err == nil {
			t.Fatal("expected error")
		}
	})

	t.Run("unknown status rejected", func(t *testing.T) {
		if err := ValidateTransition(KindProject, "PROJ-202501-001", "PENDING", "SHIPPED"); err == nil {
			t.Fatal("expected error")
		}
	})
}

func TestKnownStatus(t *testing.T) {
	if !KnownStatus(KindCustomer, "ARCHIVED") {
		t.Fatal("ARCHIVED should be known for customers")
	}
	if KnownStatus(KindCustomer, "CLOSED") {
		t.Fatal("CLOSED is not a customer status")
	}
	if KnownStatus(KindProject, "DRAFT") {
		t.Fatal("DRAFT is not a project status")
	}
}

func TestTerminal(t *testing.T) {
	for _, s := range []string{"CANCELLED", "CLOSED"} {
		if !Terminal(KindProject, s) {
			t.Errorf("project %s should be terminal", s)
		}
		if !Terminal(KindEstimate, s) {
			t.Errorf("estimate %s should be terminal", s)
		}
	}
	if Terminal(KindCustomer, "ARCHIVED") {
		t.Fatal("ARCHIVED is reactivatable, not terminal")
	}
	if Terminal(KindProject, "UNKNOWN") {
		t.Fatal("unknown status can not be terminal")
	}
}

func TestModulesEnabled(t *testing.T) {
	enabled := map[entities.ProjectStatus]bool{
		entities.ProjectStatusPending:    false,
		entities.ProjectStatusApproved:   true,
		entities.ProjectStatusInProgress: true,
		entities.ProjectStatusCompleted:  false,
		entities.ProjectStatusCancelled:  false,
		entities.ProjectStatusClosed:     false,
	}
	for status, want := range enabled {
		if got := ModulesEnabled(status); got != want {
			t.Errorf("ModulesEnabled(%s)=%v, want %v", status, got, want)
		}
	}
}
