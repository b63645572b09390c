package validation

import (
	"strconv"

	language "github.com/opgraph/opgraph/internal/language"
	query "github.com/opgraph/opgraph/internal/query"
)

// valueFromAST converts a raw literal into its validated representation.
// Variable references stay symbolic: static validation has no variable
// values, coercion happens later in the pipeline.
func valueFromAST(value *language.Value) any {
	if value == nil {
		return nil
	}
	switch value.Kind {
	case language.Variable:
		return query.Variable{Name: value.Raw}
	case language.IntValue:
		iv, _ := strconv.ParseInt(value.Raw, 10, 64)
		return iv
	case language.FloatValue:
		fv, _ := strconv.ParseFloat(value.Raw, 64)
		return fv
	case language.StringValue, language.BlockValue:
		return value.Raw
	case language.BooleanValue:
		return value.Raw == "true"
	case language.NullValue:
		return nil
	case language.EnumValue:
		return query.EnumLiteral(value.Raw)
	case language.ListValue:
		out := make([]any, len(value.Children))
		for i, c := range value.Children {
			out[i] = valueFromAST(c.Value)
		}
		return out
	case language.ObjectValue:
		m := make(map[string]any, len(value.Children))
		for _, f := range value.Children {
			m[f.Name] = valueFromAST(f.Value)
		}
		return m
	default:
		return nil
	}
}

// isNullLiteral reports whether a raw value is the literal null, which does
// not satisfy a required argument.
func isNullLiteral(value *language.Value) bool {
	return value != nil && value.Kind == language.NullValue
}
