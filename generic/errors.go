/*
errors.go - Centralized error types shared across the dataset packages

PURPOSE:
  All sentinel errors in one place for consistency and discoverability.
  Domain packages wrap these with additional context.

ERROR CATEGORIES:
  1. Catalog errors - Lookups with names absent from the org structure
  2. Generation errors - Bad input or a dataset that breaks an invariant
     (ErrConstraint when storage itself rejects a row)
  3. Intake errors - Report request validation and queue availability

USAGE:
  if errors.Is(err, generic.ErrIntegrity) {
      var ie *workforce.IntegrityError
      errors.As(err, &ie)
  }

SEE ALSO:
  - workforce/validate.go: IntegrityError wraps ErrIntegrity
  - catalog/catalog.go: Panics with ErrUnknownDivision / ErrUnknownDepartment
  - api/handlers.go: Maps queue errors to HTTP status codes
*/
package generic

import (
	"errors"
	"fmt"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrUnknownDivision is returned (or panicked with) when a division name is
	// not part of the catalog.
	ErrUnknownDivision = errors.New("unknown division")

	// ErrUnknownDepartment is returned when a department name does not belong
	// to the given division.
	ErrUnknownDepartment = errors.New("unknown department")

	// ErrInvalidCount is returned for an employee count outside 1..synth.MaxEmployees.
	ErrInvalidCount = errors.New("employee count out of range")

	// ErrIntegrity is returned when a dataset violates a cross-table invariant.
	ErrIntegrity = errors.New("dataset integrity violation")

	// ErrUnknownReportType is returned for report types outside the closed set.
	ErrUnknownReportType = errors.New("unknown report type")

	// ErrQueueUnavailable is returned when no queue backend was reachable at startup.
	ErrQueueUnavailable = errors.New("queue backend unavailable")

	// ErrQueueEmpty is returned by a blocking dequeue that timed out.
	ErrQueueEmpty = errors.New("queue empty")

	// ErrConstraint is returned when storage rejects a row (unique, check or
	// foreign key constraint).
	ErrConstraint = errors.New("storage constraint violated")

	// ErrGenerationInProgress is returned when a second generation run is
	// attempted while one is still writing.
	ErrGenerationInProgress = errors.New("dataset generation already in progress")
)

// =============================================================================
// STRUCTURED ERRORS - Carry additional context
// =============================================================================

// LookupError names the catalog key that failed to resolve.
type LookupError struct {
	Kind string // "division" or "department"
	Name string
	err  error
}

// NewLookupError builds a LookupError that unwraps to the matching sentinel.
func NewLookupError(kind, name string) *LookupError {
	err := ErrUnknownDivision
	if kind == "department" {
		err = ErrUnknownDepartment
	}
	return &LookupError{Kind: kind, Name: name, err: err}
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("%v: %q", e.err, e.Name)
}

func (e *LookupError) Unwrap() error {
	return e.err
}

// =============================================================================
// ERROR HELPERS
// =============================================================================

// IsClientError returns true if the error is due to invalid caller input.
func IsClientError(err error) bool {
	return errors.Is(err, ErrInvalidCount) ||
		errors.Is(err, ErrUnknownReportType) ||
		errors.Is(err, ErrUnknownDivision) ||
		errors.Is(err, ErrUnknownDepartment)
}
