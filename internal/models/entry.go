package models

import (
	"errors"
	"fmt"
	"strings"
)

// Entry is one named application record
type Entry struct {
	Name string `json:"name" yaml:"name"`
	Path string `json:"path" yaml:"path"`
}

// Outcome classifies the result of a store operation
type Outcome int

const (
	Success Outcome = iota
	NotFound
	StoreError
)

func (o Outcome) String() string {
	switch o {
	case Success:
		return "success"
	case NotFound:
		return "not_found"
	case StoreError:
		return "store_error"
	default:
		return "unknown"
	}
}

// ErrNotFound is returned by lookups that match no entry
var ErrNotFound = errors.New("entry not found")

// OutcomeOf maps an operation error onto its outcome
func OutcomeOf(err error) Outcome {
	switch {
	case err == nil:
		return Success
	case errors.Is(err, ErrNotFound):
		return NotFound
	default:
		return StoreError
	}
}

// MatchMode selects which rows a name-keyed mutation touches
type MatchMode string

const (
	MatchAll   MatchMode = "all"
	MatchFirst MatchMode = "first"
)

// ParseMatchMode accepts "all" or "first", case-insensitive
func ParseMatchMode(s string) (MatchMode, error) {
	switch MatchMode(strings.ToLower(strings.TrimSpace(s))) {
	case MatchAll:
		return MatchAll, nil
	case MatchFirst:
		return MatchFirst, nil
	default:
		return "", fmt.Errorf("unknown match mode %q", s)
	}
}

// ErrorPolicy decides how swallowed store errors surface in the form
type ErrorPolicy string

const (
	// PolicySilent logs store errors and otherwise behaves as if the call succeeded
	PolicySilent ErrorPolicy = "silent"
	// PolicyStatus additionally reports store errors on the status line
	PolicyStatus ErrorPolicy = "status"
)

func ParseErrorPolicy(s string) (ErrorPolicy, error) {
	switch ErrorPolicy(strings.ToLower(strings.TrimSpace(s))) {
	case PolicySilent:
		return PolicySilent, nil
	case PolicyStatus:
		return PolicyStatus, nil
	default:
		return "", fmt.Errorf("unknown error policy %q", s)
	}
}
