package validation

import (
	language "github.com/opgraph/opgraph/internal/language"
	query "github.com/opgraph/opgraph/internal/query"
	schema "github.com/opgraph/opgraph/internal/schema"
)

// validateOperation validates one top-level operation: resolve the root type
// for the operation kind, validate operation directives at the operation's
// location, validate the selection set against the root, and enforce
// subscription's single-root rule. Operation arguments stay empty; variable
// coercion is not a validation concern.
func (st *state) validateOperation(op *language.OperationDefinition) (*query.Operation, ErrorList) {
	var root *schema.TypeDefinition
	var kind schema.OperationKind
	var rootName, location string

	switch op.Operation {
	case language.Mutation:
		root, kind = st.schema.Mutation, schema.OperationMutation
		rootName, location = "Mutation", schema.LocationMutation
	case language.Subscription:
		root, kind = st.schema.Subscription, schema.OperationSubscription
		rootName, location = "Subscription", schema.LocationSubscription
	default:
		root, kind = st.schema.Query, schema.OperationQuery
		rootName, location = "Query", schema.LocationQuery
	}
	if root == nil {
		return nil, ErrorList{errMissingRootType(rootName, op.Position)}
	}

	dirs, errs := st.validateDirectives(location, op.Directives)
	sels, selErrs := st.validateSelectionSet(root, op.SelectionSet, op.Position)
	errs = append(errs, selErrs...)

	if len(errs) == 0 && kind == schema.OperationSubscription {
		var roots []*query.Field
		for _, f := range sels {
			if f.Name != typenameField {
				roots = append(roots, f)
			}
		}
		if len(roots) > 1 {
			// one error per selection beyond the first, at each selection
			for _, f := range roots[1:] {
				errs = append(errs, errMultipleSubscriptionRoots(op.Name, f.Position))
			}
		}
	}
	if len(errs) > 0 {
		return nil, errs
	}

	return &query.Operation{
		Name:       op.Name,
		Kind:       kind,
		Arguments:  query.Arguments{},
		Directives: dirs,
		Selections: sels,
	}, nil
}
