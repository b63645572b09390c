package validation

import (
	language "github.com/opgraph/opgraph/internal/language"
	query "github.com/opgraph/opgraph/internal/query"
	schema "github.com/opgraph/opgraph/internal/schema"
)

// validateUnionSelection dispatches a union-typed field's selection. The
// selection must consist entirely of type-guard branches: inline fragments
// on a member type, or spreads of fragments targeting one. A fragment whose
// condition equals the union itself, or an inline fragment with no
// condition, stays in union scope; its body is validated as union content
// and its branches fold into the enclosing result. Each branch body is
// validated against its member's object type, duplicate branches on one
// member merge, and the result records the union's guard field plus the
// tagged branches. Branches are validated independently so errors
// accumulate.
func (st *state) validateUnionSelection(union *schema.TypeDefinition, set language.SelectionSet, pos *language.Position) (*query.UnionContent, ErrorList) {
	var errs ErrorList
	out := &query.UnionContent{GuardField: union.TypeGuardField}

	addBranch := func(member string, sels query.SelectionSet) *Error {
		if b := out.BranchFor(member); b != nil {
			merged, err := mergeSelectionSets(b.Selections, sels)
			if err != nil {
				return err
			}
			b.Selections = merged
			return nil
		}
		out.Branches = append(out.Branches, &query.UnionBranch{TypeName: member, Selections: sels})
		return nil
	}

	for _, sel := range set {
		switch s := sel.(type) {
		case *language.Field:
			errs = append(errs, errFieldOnUnion(s.Name, union.Name, s.Position))

		case *language.InlineFragment:
			dirs, branchErrs := st.validateDirectives(schema.LocationInlineFragment, s.Directives)
			if len(branchErrs) > 0 {
				errs = append(errs, branchErrs...)
				continue
			}
			if s.TypeCondition == "" || s.TypeCondition == union.Name {
				nested, branchErrs := st.validateUnionSelection(union, s.SelectionSet, s.Position)
				if len(branchErrs) > 0 {
					errs = append(errs, branchErrs...)
					continue
				}
				if !st.gate.ShouldInclude(dirs) {
					continue
				}
				for _, b := range nested.Branches {
					if err := addBranch(b.TypeName, b.Selections); err != nil {
						errs = append(errs, err)
					}
				}
				continue
			}
			if !union.HasMember(s.TypeCondition) {
				errs = append(errs, errUnknownUnionBranch(s.TypeCondition, union.Name, s.Position))
				continue
			}
			member := st.schema.LookupDataType(s.TypeCondition)
			if member == nil {
				errs = append(errs, errUnknownType(s.TypeCondition, s.Position))
				continue
			}
			sels, branchErrs := st.validateSelectionSet(member, s.SelectionSet, s.Position)
			if len(branchErrs) > 0 {
				errs = append(errs, branchErrs...)
				continue
			}
			if !st.gate.ShouldInclude(dirs) {
				continue
			}
			if err := addBranch(s.TypeCondition, sels); err != nil {
				errs = append(errs, err)
			}

		case *language.FragmentSpread:
			dirs, branchErrs := st.validateDirectives(schema.LocationFragmentSpread, s.Directives)
			if len(branchErrs) > 0 {
				errs = append(errs, branchErrs...)
				continue
			}
			frag := st.doc.Fragments.ForName(s.Name)
			if frag == nil {
				errs = append(errs, errUnknownFragment(s.Name, s.Position))
				continue
			}
			if st.expanding[s.Name] {
				errs = append(errs, errCyclicFragment(s.Name, s.Position))
				continue
			}
			if frag.TypeCondition == union.Name {
				fragDirs, branchErrs := st.validateDirectives(schema.LocationFragmentDef, frag.Directives)
				if len(branchErrs) > 0 {
					errs = append(errs, branchErrs...)
					continue
				}
				st.expanding[s.Name] = true
				nested, branchErrs := st.validateUnionSelection(union, frag.SelectionSet, s.Position)
				delete(st.expanding, s.Name)
				if len(branchErrs) > 0 {
					errs = append(errs, branchErrs...)
					continue
				}
				if !st.gate.ShouldInclude(dirs) || !st.gate.ShouldInclude(fragDirs) {
					continue
				}
				for _, b := range nested.Branches {
					if err := addBranch(b.TypeName, b.Selections); err != nil {
						errs = append(errs, err)
					}
				}
				continue
			}
			if !union.HasMember(frag.TypeCondition) {
				errs = append(errs, errFragmentTypeMismatch(frag.TypeCondition, union.Name, s.Position))
				continue
			}
			member := st.schema.LookupDataType(frag.TypeCondition)
			if member == nil {
				errs = append(errs, errUnknownType(frag.TypeCondition, s.Position))
				continue
			}
			fragDirs, branchErrs := st.validateDirectives(schema.LocationFragmentDef, frag.Directives)
			if len(branchErrs) > 0 {
				errs = append(errs, branchErrs...)
				continue
			}
			st.expanding[s.Name] = true
			sels, branchErrs := st.validateSelectionSet(member, frag.SelectionSet, s.Position)
			delete(st.expanding, s.Name)
			if len(branchErrs) > 0 {
				errs = append(errs, branchErrs...)
				continue
			}
			if !st.gate.ShouldInclude(dirs) || !st.gate.ShouldInclude(fragDirs) {
				continue
			}
			if err := addBranch(frag.TypeCondition, sels); err != nil {
				errs = append(errs, err)
			}
		}
	}

	if len(errs) > 0 {
		return nil, errs
	}
	if len(out.Branches) == 0 {
		return nil, ErrorList{errNoUnionBranch(union.Name, pos)}
	}
	return out, nil
}
