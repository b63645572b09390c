package validation

import (
	"fmt"

	language "github.com/opgraph/opgraph/internal/language"
)

// Kind classifies a validation error semantically, independent of wording.
type Kind string

const (
	KindUnknownField              Kind = "UNKNOWN_FIELD"
	KindUnknownType               Kind = "UNKNOWN_TYPE"
	KindSubfieldsRequired         Kind = "SUBFIELDS_REQUIRED"
	KindNoSubfieldsAllowed        Kind = "NO_SUBFIELDS_ALLOWED"
	KindEmptySelection            Kind = "EMPTY_SELECTION"
	KindUnknownFragment           Kind = "UNKNOWN_FRAGMENT"
	KindFragmentTypeMismatch      Kind = "FRAGMENT_TYPE_MISMATCH"
	KindCyclicFragmentReference   Kind = "CYCLIC_FRAGMENT_REFERENCE"
	KindUnknownUnionBranch        Kind = "UNKNOWN_UNION_BRANCH"
	KindMissingRootType           Kind = "MISSING_ROOT_TYPE"
	KindMultipleSubscriptionRoots Kind = "MULTIPLE_SUBSCRIPTION_ROOTS"
	KindDirectiveError            Kind = "DIRECTIVE_ERROR"
	KindArgumentError             Kind = "ARGUMENT_ERROR"
	KindMergeConflict             Kind = "MERGE_CONFLICT"
)

// Error is a positioned validation error.
type Error struct {
	Kind    Kind   `json:"kind"`
	Message string `json:"message"`
	File    string `json:"file,omitempty"`
	Line    int    `json:"line,omitempty"`
	Column  int    `json:"column,omitempty"`
}

func (e *Error) Error() string {
	if e.File != "" {
		return fmt.Sprintf("%s:%d:%d: %s", e.File, e.Line, e.Column, e.Message)
	}
	if e.Line > 0 {
		return fmt.Sprintf("%d:%d: %s", e.Line, e.Column, e.Message)
	}
	return e.Message
}

// ErrorList accumulates errors across independently validated selections.
type ErrorList []*Error

func (l ErrorList) Error() string {
	msg := "validation failed:\n"
	for _, e := range l {
		msg += "- " + e.Error() + "\n"
	}
	return msg
}

// asErrors converts the list for consumers holding plain error values.
func (l ErrorList) asErrors() []error {
	if len(l) == 0 {
		return nil
	}
	out := make([]error, len(l))
	for i, e := range l {
		out[i] = e
	}
	return out
}

func errorAt(kind Kind, message string, pos *language.Position) *Error {
	e := &Error{Kind: kind, Message: message}
	if pos != nil {
		if pos.Src != nil {
			e.File = pos.Src.Name
		}
		e.Line = pos.Line
		e.Column = pos.Column
	}
	return e
}
