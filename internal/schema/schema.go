package schema

// Schema is an immutable index of type definitions with the operation root
// types addressed separately from the general type map.
type Schema struct {
	Query        *TypeDefinition
	Mutation     *TypeDefinition
	Subscription *TypeDefinition
	Types        map[string]*TypeDefinition // named types excluding the roots
	Directives   map[string]*Directive
}

// LookupDataType resolves a type name to its definition. The roots are
// checked before the general map so that an operation root is found even
// though it has been removed from Types. Parameterized type names resolve
// through their base name.
func (s *Schema) LookupDataType(name string) *TypeDefinition {
	name = baseTypeName(name)
	if s.Query != nil && s.Query.Name == name {
		return s.Query
	}
	if s.Mutation != nil && s.Mutation.Name == name {
		return s.Mutation
	}
	if s.Subscription != nil && s.Subscription.Name == name {
		return s.Subscription
	}
	return s.Types[name]
}

// baseTypeName strips a parameter suffix from a type name, e.g. "Page<User>"
// and "Page(User)" both resolve through "Page".
func baseTypeName(name string) string {
	for i := 0; i < len(name); i++ {
		if name[i] == '<' || name[i] == '(' {
			return name[:i]
		}
	}
	return name
}

// TypeKind tags the content of a TypeDefinition.
type TypeKind string

const (
	TypeKindScalar TypeKind = "SCALAR"
	TypeKindData   TypeKind = "DATA"
	TypeKindObject TypeKind = "OBJECT"
	TypeKindUnion  TypeKind = "UNION"
)

// OperationKind tags an object type that serves as an operation root.
type OperationKind string

const (
	OperationQuery        OperationKind = "QUERY"
	OperationMutation     OperationKind = "MUTATION"
	OperationSubscription OperationKind = "SUBSCRIPTION"
)

// TypeDefinition is a named type tagged by kind.
type TypeDefinition struct {
	Name        string
	Kind        TypeKind
	Description string

	// For OBJECT and DATA
	Fields []*Field

	// For OBJECT: set when the type is an operation root
	Operation OperationKind

	// For UNION
	Members        []string // non-empty list of member object type names
	TypeGuardField string   // synthetic field the query branches on
}

// IsLeaf reports whether the type requires no subfield selection. Scalars and
// data types are value types; objects and unions are resolver types.
func (t *TypeDefinition) IsLeaf() bool {
	return t.Kind == TypeKindScalar || t.Kind == TypeKindData
}

// FieldByName returns the declared field with the given name, or nil.
func (t *TypeDefinition) FieldByName(name string) *Field {
	for _, f := range t.Fields {
		if f.Name == name {
			return f
		}
	}
	return nil
}

// HasMember reports whether name is one of a union's member types.
func (t *TypeDefinition) HasMember(name string) bool {
	for _, m := range t.Members {
		if m == name {
			return true
		}
	}
	return false
}

// Field is a field declared on an object or data type.
type Field struct {
	Name        string
	Description string
	Type        *TypeRef
	Arguments   []*InputValue
}

// ArgumentByName returns the declared argument with the given name, or nil.
func (f *Field) ArgumentByName(name string) *InputValue {
	for _, a := range f.Arguments {
		if a.Name == name {
			return a
		}
	}
	return nil
}

// InputValue is an argument definition on a field or directive.
type InputValue struct {
	Name         string
	Description  string
	Type         *TypeRef
	DefaultValue any
}

// Directive is a directive definition.
type Directive struct {
	Name         string
	Description  string
	Locations    []string
	Arguments    []*InputValue
	IsRepeatable bool
}

// ArgumentByName returns the declared directive argument, or nil.
func (d *Directive) ArgumentByName(name string) *InputValue {
	for _, a := range d.Arguments {
		if a.Name == name {
			return a
		}
	}
	return nil
}

// AllowsLocation reports whether the directive may appear at location.
func (d *Directive) AllowsLocation(location string) bool {
	for _, l := range d.Locations {
		if l == location {
			return true
		}
	}
	return false
}

// Directive locations used by operation validation.
const (
	LocationQuery          = "QUERY"
	LocationMutation       = "MUTATION"
	LocationSubscription   = "SUBSCRIPTION"
	LocationField          = "FIELD"
	LocationFragmentDef    = "FRAGMENT_DEFINITION"
	LocationFragmentSpread = "FRAGMENT_SPREAD"
	LocationInlineFragment = "INLINE_FRAGMENT"
)
