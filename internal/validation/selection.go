package validation

import (
	language "github.com/opgraph/opgraph/internal/language"
	query "github.com/opgraph/opgraph/internal/query"
	schema "github.com/opgraph/opgraph/internal/schema"
)

// validateSelectionSet validates a raw selection set against the current
// object type. Every raw selection is validated independently so errors
// accumulate across siblings; each surviving selection yields a singleton
// set, and the singletons are merged by response key into one normalized
// tree. A directive gate may suppress a selection entirely; at least one
// selection must survive.
func (st *state) validateSelectionSet(objectType *schema.TypeDefinition, set language.SelectionSet, pos *language.Position) (query.SelectionSet, ErrorList) {
	var errs ErrorList
	var parts []query.SelectionSet

	for _, sel := range set {
		var part query.SelectionSet
		var selErrs ErrorList
		switch s := sel.(type) {
		case *language.Field:
			part, selErrs = st.validateField(objectType, s)
		case *language.FragmentSpread:
			part, selErrs = st.validateSpread(objectType, s)
		case *language.InlineFragment:
			part, selErrs = st.validateInlineFragment(objectType, s)
		}
		if len(selErrs) > 0 {
			errs = append(errs, selErrs...)
			continue
		}
		if len(part) > 0 {
			parts = append(parts, part)
		}
	}
	if len(errs) > 0 {
		return nil, errs
	}
	if len(parts) == 0 {
		return nil, ErrorList{errEmptySelection(pos)}
	}

	merged := parts[0]
	for _, part := range parts[1:] {
		var mergeErr *Error
		merged, mergeErr = mergeSelectionSets(merged, part)
		if mergeErr != nil {
			return nil, ErrorList{mergeErr}
		}
	}
	return merged, nil
}

// validateField resolves one raw field selection. "__typename" resolves as a
// synthetic non-null String leaf on every object type without a schema
// lookup. For declared fields the arguments are validated, the return type
// resolved, and leaf/non-leaf consistency enforced before recursing into
// object or union content.
func (st *state) validateField(objectType *schema.TypeDefinition, f *language.Field) (query.SelectionSet, ErrorList) {
	dirs, errs := st.validateDirectives(schema.LocationField, f.Directives)
	if len(errs) > 0 {
		return nil, errs
	}

	out := &query.Field{
		ResponseKey: language.ResponseKey(f),
		Name:        f.Name,
		Directives:  dirs,
		Position:    f.Position,
	}

	if f.Name == typenameField {
		for _, arg := range f.Arguments {
			errs = append(errs, errUnknownArgument(arg.Name, `field "__typename"`, arg.Position))
		}
		if len(f.SelectionSet) > 0 {
			errs = append(errs, errNoSubfieldsAllowed(typenameField, "String!", f.Position))
		}
		if len(errs) > 0 {
			return nil, errs
		}
		out.Type = schema.NonNullNamedType("String")
		out.Arguments = query.Arguments{}
		out.Content = query.Content{Kind: query.ContentLeaf}
		if !st.gate.ShouldInclude(dirs) {
			return nil, nil
		}
		return query.SelectionSet{out}, nil
	}

	fieldDef := objectType.FieldByName(f.Name)
	if fieldDef == nil {
		return nil, ErrorList{errUnknownField(f.Name, objectType.Name, f.Position)}
	}
	args, argErrs := st.args.ValidateFieldArguments(fieldDef, f.Arguments, f.Position)
	if len(argErrs) > 0 {
		return nil, argErrs
	}
	out.Type = fieldDef.Type
	out.Arguments = args

	typeDef := st.schema.LookupDataType(fieldDef.Type.Name)
	if typeDef == nil {
		return nil, ErrorList{errUnknownType(fieldDef.Type.Name, f.Position)}
	}

	if len(f.SelectionSet) == 0 {
		if !typeDef.IsLeaf() {
			return nil, ErrorList{errSubfieldsRequired(f.Name, fieldDef.Type.String(), f.Position)}
		}
		out.Content = query.Content{Kind: query.ContentLeaf}
	} else {
		if typeDef.IsLeaf() {
			return nil, ErrorList{errNoSubfieldsAllowed(f.Name, fieldDef.Type.String(), f.Position)}
		}
		switch typeDef.Kind {
		case schema.TypeKindUnion:
			union, unionErrs := st.validateUnionSelection(typeDef, f.SelectionSet, f.Position)
			if len(unionErrs) > 0 {
				return nil, unionErrs
			}
			out.Content = query.Content{Kind: query.ContentUnion, Union: union}
		default:
			sels, selErrs := st.validateSelectionSet(typeDef, f.SelectionSet, f.Position)
			if len(selErrs) > 0 {
				return nil, selErrs
			}
			out.Content = query.Content{Kind: query.ContentSelections, Selections: sels}
		}
	}

	if !st.gate.ShouldInclude(dirs) {
		return nil, nil
	}
	return query.SelectionSet{out}, nil
}
