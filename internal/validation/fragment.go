package validation

import (
	language "github.com/opgraph/opgraph/internal/language"
	query "github.com/opgraph/opgraph/internal/query"
	schema "github.com/opgraph/opgraph/internal/schema"
)

// validateSpread resolves a named fragment spread against the current object
// type: the fragment must exist, must not already be expanding on this path,
// and its target type must apply to the current type. The fragment body is
// validated in the current type context, so its fields land in the enclosing
// selection set.
func (st *state) validateSpread(objectType *schema.TypeDefinition, s *language.FragmentSpread) (query.SelectionSet, ErrorList) {
	dirs, errs := st.validateDirectives(schema.LocationFragmentSpread, s.Directives)
	if len(errs) > 0 {
		return nil, errs
	}

	frag := st.doc.Fragments.ForName(s.Name)
	if frag == nil {
		return nil, ErrorList{errUnknownFragment(s.Name, s.Position)}
	}
	if st.expanding[s.Name] {
		return nil, ErrorList{errCyclicFragment(s.Name, s.Position)}
	}
	if !fragmentApplies(frag.TypeCondition, objectType) {
		return nil, ErrorList{errFragmentTypeMismatch(frag.TypeCondition, objectType.Name, s.Position)}
	}
	fragDirs, errs := st.validateDirectives(schema.LocationFragmentDef, frag.Directives)
	if len(errs) > 0 {
		return nil, errs
	}

	st.expanding[s.Name] = true
	sels, errs := st.validateSelectionSet(objectType, frag.SelectionSet, s.Position)
	delete(st.expanding, s.Name)
	if len(errs) > 0 {
		return nil, errs
	}

	if !st.gate.ShouldInclude(dirs) || !st.gate.ShouldInclude(fragDirs) {
		return nil, nil
	}
	return sels, nil
}

// validateInlineFragment validates an anonymous fragment in place. An omitted
// type condition means the enclosing type.
func (st *state) validateInlineFragment(objectType *schema.TypeDefinition, s *language.InlineFragment) (query.SelectionSet, ErrorList) {
	dirs, errs := st.validateDirectives(schema.LocationInlineFragment, s.Directives)
	if len(errs) > 0 {
		return nil, errs
	}
	if !fragmentApplies(s.TypeCondition, objectType) {
		return nil, ErrorList{errFragmentTypeMismatch(s.TypeCondition, objectType.Name, s.Position)}
	}

	sels, errs := st.validateSelectionSet(objectType, s.SelectionSet, s.Position)
	if len(errs) > 0 {
		return nil, errs
	}
	if !st.gate.ShouldInclude(dirs) {
		return nil, nil
	}
	return sels, nil
}

// fragmentApplies reports whether a fragment's target type is compatible with
// the constraint type: equal, or a member of it when the constraint is a
// union. An empty condition inherits the constraint.
func fragmentApplies(typeCondition string, constraint *schema.TypeDefinition) bool {
	if typeCondition == "" || typeCondition == constraint.Name {
		return true
	}
	if constraint.Kind == schema.TypeKindUnion {
		return constraint.HasMember(typeCondition)
	}
	return false
}
