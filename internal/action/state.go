package action

import (
	"github.com/avelikov/finboard/internal/validation"
)

// State is returned to the form when a mutation fails: per-field violation
// messages plus one summary message. Each call produces a fresh State; the
// previous one is discarded, never merged.
type State struct {
	Errors  validation.FieldErrors `json:"errors,omitempty"`
	Message string                 `json:"message,omitempty"`
}

// Result is the terminal outcome of a mutation. Exactly one of the fields
// is set on create/update; delete succeeds with neither (the caller stays
// on the listing view).
type Result struct {
	Redirect string
	State    *State
}

func redirectTo(route string) Result {
	return Result{Redirect: route}
}

func failWith(s State) Result {
	return Result{State: &s}
}
