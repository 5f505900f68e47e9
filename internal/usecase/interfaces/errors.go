package interfaces

import "errors"

// ErrDuplicateID is returned by repository Create methods when the
// conditional append loses: another writer already stored a row with the
// same id. Allocation code retries on it with a fresh scan.
var ErrDuplicateID = errors.New("duplicate id")
