package validation

import (
	"fmt"

	language "github.com/opgraph/opgraph/internal/language"
	query "github.com/opgraph/opgraph/internal/query"
	schema "github.com/opgraph/opgraph/internal/schema"
)

// ArgumentValidator checks a field's raw arguments against its argument
// definitions and produces their validated form. Value coercion against
// input types lives behind this interface; the validator core only consumes
// the result.
type ArgumentValidator interface {
	ValidateFieldArguments(field *schema.Field, args language.ArgumentList, pos *language.Position) (query.Arguments, ErrorList)
}

// defaultArgumentValidator rejects unknown and missing required arguments and
// converts literals. It performs no deep coercion of custom scalar values.
type defaultArgumentValidator struct{}

func (defaultArgumentValidator) ValidateFieldArguments(field *schema.Field, args language.ArgumentList, pos *language.Position) (query.Arguments, ErrorList) {
	return validateArguments(field.Arguments, fmt.Sprintf("field %q", field.Name), args, pos)
}

// validateArguments is shared by field and directive argument validation.
func validateArguments(defs []*schema.InputValue, owner string, args language.ArgumentList, pos *language.Position) (query.Arguments, ErrorList) {
	var errs ErrorList
	out := make(query.Arguments, len(args))

	for _, arg := range args {
		var def *schema.InputValue
		for _, d := range defs {
			if d.Name == arg.Name {
				def = d
				break
			}
		}
		if def == nil {
			errs = append(errs, errUnknownArgument(arg.Name, owner, arg.Position))
			continue
		}
		out[arg.Name] = valueFromAST(arg.Value)
	}

	for _, def := range defs {
		if _, ok := out[def.Name]; ok {
			if def.Type.Wrapper.NonNull {
				if arg := args.ForName(def.Name); arg != nil && isNullLiteral(arg.Value) {
					errs = append(errs, errMissingArgument(def.Name, owner, arg.Position))
				}
			}
			continue
		}
		if def.DefaultValue != nil {
			out[def.Name] = def.DefaultValue
			continue
		}
		if def.Type.Wrapper.NonNull {
			errs = append(errs, errMissingArgument(def.Name, owner, pos))
		}
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return out, nil
}
