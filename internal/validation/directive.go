package validation

import (
	"fmt"

	language "github.com/opgraph/opgraph/internal/language"
	query "github.com/opgraph/opgraph/internal/query"
)

// InclusionPolicy decides whether a selection carrying the given validated
// directives is kept in the result. Directives are validated either way; the
// policy only controls inclusion.
type InclusionPolicy interface {
	ShouldInclude(directives query.DirectiveList) bool
}

// defaultInclusionPolicy implements @skip/@include over literal `if:`
// arguments. A variable condition cannot be decided statically, so the
// selection is kept.
type defaultInclusionPolicy struct{}

func (defaultInclusionPolicy) ShouldInclude(directives query.DirectiveList) bool {
	if skip := directives.ForName("skip"); skip != nil {
		if cond, ok := skip.Arguments["if"].(bool); ok && cond {
			return false
		}
	}
	if include := directives.ForName("include"); include != nil {
		if cond, ok := include.Arguments["if"].(bool); ok && !cond {
			return false
		}
	}
	return true
}

// validateDirectives checks each raw directive against its definition: the
// directive must exist, be allowed at location, not repeat unless declared
// repeatable, and carry valid arguments.
func (st *state) validateDirectives(location string, raw language.DirectiveList) (query.DirectiveList, ErrorList) {
	var errs ErrorList
	var out query.DirectiveList

	seen := make(map[string]bool, len(raw))
	for _, d := range raw {
		def := st.schema.Directives[d.Name]
		if def == nil {
			errs = append(errs, errUnknownDirective(d.Name, d.Position))
			continue
		}
		if !def.AllowsLocation(location) {
			errs = append(errs, errDirectiveLocation(d.Name, location, d.Position))
			continue
		}
		if seen[d.Name] && !def.IsRepeatable {
			errs = append(errs, errRepeatedDirective(d.Name, d.Position))
			continue
		}
		seen[d.Name] = true

		args, argErrs := validateArguments(def.Arguments, fmt.Sprintf("directive @%s", d.Name), d.Arguments, d.Position)
		if len(argErrs) > 0 {
			errs = append(errs, argErrs...)
			continue
		}
		out = append(out, &query.Directive{Name: d.Name, Arguments: args})
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return out, nil
}
