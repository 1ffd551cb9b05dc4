package structs

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrNotFound is returned when an action references an id that is absent from
// the catalog. The store rejects the action without mutating anything.
var ErrNotFound = errors.New("event not found")

// ErrSubmitInFlight is returned when a submit starts while another one is
// still running. The wizard allows a single submission at a time.
var ErrSubmitInFlight = errors.New("submission already in progress")

// InvalidSettingError reports an unrecognized (group, key) pair.
type InvalidSettingError struct {
	Group string
	Key   string
}

func (e *InvalidSettingError) Error() string {
	return fmt.Sprintf("invalid setting %s.%s", e.Group, e.Key)
}

// ValidationErrors maps field names to user-facing messages. All failing
// fields of a wizard step are reported at once, not just the first.
type ValidationErrors map[string]string

func (v ValidationErrors) Error() string {
	fields := make([]string, 0, len(v))
	for f := range v {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return "validation failed: " + strings.Join(fields, ", ")
}

// CollaboratorError wraps a failure from an external collaborator (publish,
// share, calendar sync). It is always recoverable: the caller returns to its
// prior interactive state.
type CollaboratorError struct {
	Op  string
	Err error
}

func (e *CollaboratorError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *CollaboratorError) Unwrap() error { return e.Err }
