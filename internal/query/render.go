package query

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	schema "github.com/opgraph/opgraph/internal/schema"
)

// Render produces query-language text from a validated operation. Union
// branches come out as type-guard fragments, so rendering then re-validating
// yields a structurally equal operation.
// Deterministic ordering: argument names sorted lexicographically.
func Render(op *Operation) string {
	if op == nil {
		return ""
	}
	var b strings.Builder

	switch op.Kind {
	case schema.OperationMutation:
		b.WriteString("mutation")
	case schema.OperationSubscription:
		b.WriteString("subscription")
	default:
		b.WriteString("query")
	}
	if op.Name != "" {
		b.WriteByte(' ')
		b.WriteString(op.Name)
	}
	renderDirectives(&b, op.Directives)
	b.WriteByte(' ')
	renderSelectionSet(&b, op.Selections, 0)
	b.WriteByte('\n')
	return b.String()
}

func renderSelectionSet(b *strings.Builder, set SelectionSet, depth int) {
	b.WriteString("{\n")
	for _, f := range set {
		indent(b, depth+1)
		renderField(b, f, depth+1)
		b.WriteByte('\n')
	}
	indent(b, depth)
	b.WriteByte('}')
}

func renderField(b *strings.Builder, f *Field, depth int) {
	if f.ResponseKey != f.Name {
		b.WriteString(f.ResponseKey)
		b.WriteString(": ")
	}
	b.WriteString(f.Name)
	renderArguments(b, f.Arguments)
	renderDirectives(b, f.Directives)

	switch f.Content.Kind {
	case ContentSelections:
		b.WriteByte(' ')
		renderSelectionSet(b, f.Content.Selections, depth)
	case ContentUnion:
		b.WriteString(" {\n")
		for _, branch := range f.Content.Union.Branches {
			indent(b, depth+1)
			b.WriteString("... on ")
			b.WriteString(branch.TypeName)
			b.WriteByte(' ')
			renderSelectionSet(b, branch.Selections, depth+1)
			b.WriteByte('\n')
		}
		indent(b, depth)
		b.WriteByte('}')
	}
}

func renderArguments(b *strings.Builder, args Arguments) {
	if len(args) == 0 {
		return
	}
	names := make([]string, 0, len(args))
	for name := range args {
		names = append(names, name)
	}
	sort.Strings(names)

	b.WriteByte('(')
	for i, name := range names {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(name)
		b.WriteString(": ")
		renderValue(b, args[name])
	}
	b.WriteByte(')')
}

func renderDirectives(b *strings.Builder, dirs DirectiveList) {
	for _, d := range dirs {
		b.WriteString(" @")
		b.WriteString(d.Name)
		renderArguments(b, d.Arguments)
	}
}

func renderValue(b *strings.Builder, v any) {
	switch val := v.(type) {
	case nil:
		b.WriteString("null")
	case Variable:
		b.WriteByte('$')
		b.WriteString(val.Name)
	case string:
		b.WriteString(strconv.Quote(val))
	case bool:
		b.WriteString(strconv.FormatBool(val))
	case int64:
		b.WriteString(strconv.FormatInt(val, 10))
	case float64:
		b.WriteString(strconv.FormatFloat(val, 'g', -1, 64))
	case EnumLiteral:
		b.WriteString(string(val))
	case []any:
		b.WriteByte('[')
		for i, item := range val {
			if i > 0 {
				b.WriteString(", ")
			}
			renderValue(b, item)
		}
		b.WriteByte(']')
	case map[string]any:
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		b.WriteByte('{')
		for i, k := range keys {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(k)
			b.WriteString(": ")
			renderValue(b, val[k])
		}
		b.WriteByte('}')
	default:
		fmt.Fprintf(b, "%v", val)
	}
}

func indent(b *strings.Builder, depth int) {
	for i := 0; i < depth; i++ {
		b.WriteString("  ")
	}
}
