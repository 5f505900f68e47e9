// Package identifier computes the next human-readable identifier for each
// entity type from the identifiers already in the store. Sequences are
// scoped: per calendar year for customers, per year-month for projects,
// per parent project for estimates, global for vendors and subcontractors.
// A new scope restarts its sequence at 1.
//
// The computation itself is read-then-increment with no store lock, so the
// caller is responsible for making allocate-then-append a critical section
// (see ScopeLocks) and for detecting append collisions across processes.
package identifier

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	customerIDPattern = regexp.MustCompile(`^(\d{4})-(\d{3})$`)
	projectIDPattern  = regexp.MustCompile(`^PROJ-(\d{6})-(\d{3})$`)
	vendorIDPattern   = regexp.MustCompile(`^VEND-(\d{3})$`)
	subIDPattern      = regexp.MustCompile(`^Sub-(\d+)$`)
)

// CustomerScope returns the year bucket for customer ids, e.g. "2025".
func CustomerScope(now time.Time) string {
	return now.UTC().Format("2006")
}

// ProjectScope returns the year-month bucket for project ids, e.g. "202501".
func ProjectScope(now time.Time) string {
	return now.UTC().Format("200601")
}

// NextCustomerID returns the next YYYY-NNN id for the current year.
// Identifiers that do not match the canonical pattern are skipped; legacy
// and hand-edited rows must not break allocation.
func NextCustomerID(existing []string, now time.Time) string {
	year := CustomerScope(now)
	max := 0
	for _, id := range existing {
		m := customerIDPattern.FindStringSubmatch(id)
		if m == nil || m[1] != year {
			continue
		}
		if n, err := strconv.Atoi(m[2]); err == nil && n > max {
			max = n
		}
	}
	return fmt.Sprintf("%s-%03d", year, max+1)
}

// NextProjectID returns the next PROJ-YYYYMM-NNN id for the current month.
func NextProjectID(existing []string, now time.Time) string {
	yearMonth := ProjectScope(now)
	max := 0
	for _, id := range existing {
		m := projectIDPattern.FindStringSubmatch(id)
		if m == nil || m[1] != yearMonth {
			continue
		}
		if n, err := strconv.Atoi(m[2]); err == nil && n > max {
			max = n
		}
	}
	return fmt.Sprintf("PROJ-%s-%03d", yearMonth, max+1)
}

// NextEstimateID returns the next EST-<projectId>-N id for the project.
// The suffix is an unpadded per-project sequence starting at 1.
func NextEstimateID(existing []string, projectID string) string {
	prefix := "EST-" + projectID + "-"
	max := 0
	for _, id := range existing {
		if !strings.HasPrefix(id, prefix) {
			continue
		}
		if n, err := strconv.Atoi(id[len(prefix):]); err == nil && n > max {
			max = n
		}
	}
	return fmt.Sprintf("%s%d", prefix, max+1)
}

// NextVendorID returns the next VEND-NNN id. Vendor ids are global.
func NextVendorID(existing []string) string {
	max := 0
	for _, id := range existing {
		m := vendorIDPattern.FindStringSubmatch(id)
		if m == nil {
			continue
		}
		if n, err := strconv.Atoi(m[1]); err == nil && n > max {
			max = n
		}
	}
	return fmt.Sprintf("VEND-%03d", max+1)
}

// NextSubcontractorID returns the next Sub-NNN id. Sub ids are global.
func NextSubcontractorID(existing []string) string {
	max := 0
	for _, id := range existing {
		m := subIDPattern.FindStringSubmatch(id)
		if m == nil {
			continue
		}
		if n, err := strconv.Atoi(m[1]); err == nil && n > max {
			max = n
		}
	}
	return fmt.Sprintf("Sub-%03d", max+1)
}

// TimestampID returns prefix + the current unix milliseconds, the shape
// used for field-record and audit ids (TL..., MATREC-..., LOG-...).
func TimestampID(prefix string, now time.Time) string {
	return fmt.Sprintf("%s%d", prefix, now.UnixMilli())
}
