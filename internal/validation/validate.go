// Package validation implements the static validation pass that turns raw
// parsed operations into fully resolved selection trees. It resolves field
// references against the schema, expands fragment spreads and inline
// fragments in place, merges same-key selections, dispatches union-typed
// selections into member-tagged branches and enforces the subscription
// single-root rule.
//
// Validation is a pure recursive descent over the immutable schema and the
// raw document. A Validator holds no per-call state and may be shared across
// goroutines; each call builds fresh output trees. Errors accumulate across
// sibling selections but abort the branch that produced them, and no partial
// operation is returned on failure.
package validation

import (
	"context"
	"time"

	eventbus "github.com/opgraph/opgraph/internal/eventbus"
	events "github.com/opgraph/opgraph/internal/events"
	language "github.com/opgraph/opgraph/internal/language"
	query "github.com/opgraph/opgraph/internal/query"
	schema "github.com/opgraph/opgraph/internal/schema"
)

// typenameField is the synthetic introspection field available on every
// object type without a declaration.
const typenameField = "__typename"

// Validator validates operations against a schema.
type Validator struct {
	schema *schema.Schema
	args   ArgumentValidator
	gate   InclusionPolicy
}

type Option func(*Validator)

// WithArgumentValidator replaces the default argument validation.
func WithArgumentValidator(av ArgumentValidator) Option {
	return func(v *Validator) { v.args = av }
}

// WithInclusionPolicy replaces the default @skip/@include gate.
func WithInclusionPolicy(p InclusionPolicy) Option {
	return func(v *Validator) { v.gate = p }
}

func New(s *schema.Schema, opts ...Option) *Validator {
	v := &Validator{
		schema: s,
		args:   defaultArgumentValidator{},
		gate:   defaultInclusionPolicy{},
	}
	for _, f := range opts {
		f(v)
	}
	return v
}

// ValidateOperation validates a single operation from doc. On failure the
// returned error is an ErrorList holding every accumulated error; no partial
// operation is returned.
func (v *Validator) ValidateOperation(ctx context.Context, doc *language.QueryDocument, op *language.OperationDefinition) (*query.Operation, error) {
	start := time.Now()
	eventbus.Publish(ctx, events.ValidateStart{
		OperationName: op.Name,
		OperationType: string(op.Operation),
	})

	st := &state{
		schema:    v.schema,
		doc:       doc,
		args:      v.args,
		gate:      v.gate,
		expanding: make(map[string]bool),
	}
	validated, errs := st.validateOperation(op)

	eventbus.Publish(ctx, events.ValidateFinish{
		OperationName: op.Name,
		OperationType: string(op.Operation),
		Errors:        errs.asErrors(),
		Duration:      time.Since(start),
	})
	if len(errs) > 0 {
		return nil, errs
	}
	return validated, nil
}

// ValidateDocument validates every operation in doc. Errors from different
// operations accumulate; on any failure no operations are returned.
func (v *Validator) ValidateDocument(ctx context.Context, doc *language.QueryDocument) ([]*query.Operation, error) {
	var out []*query.Operation
	var errs ErrorList
	for _, op := range doc.Operations {
		validated, err := v.ValidateOperation(ctx, doc, op)
		if err != nil {
			errs = append(errs, err.(ErrorList)...)
			continue
		}
		out = append(out, validated)
	}
	if len(errs) > 0 {
		return nil, errs
	}
	return out, nil
}

// state is the per-call validation context. expanding tracks the fragment
// names on the active expansion path so cycles fail instead of recursing; a
// name is popped when its expansion returns, keeping sibling spreads of the
// same fragment legal.
type state struct {
	schema    *schema.Schema
	doc       *language.QueryDocument
	args      ArgumentValidator
	gate      InclusionPolicy
	expanding map[string]bool
}
