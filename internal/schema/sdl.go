package schema

import (
	"fmt"

	language "github.com/opgraph/opgraph/internal/language"
)

// FromSDL parses SDL and builds the Schema through Build, so the root type
// rules apply to SDL input as well. Built-in scalars and the @include/@skip
// directives are always available.
//
// Kind mapping: `scalar` declarations become scalar types, `enum` becomes a
// data (value) type, `type` becomes an object type and `union` becomes a
// union branching on the "__typename" guard field. Input object declarations
// only participate in argument typing and are indexed as data types.
func FromSDL(name, sdl string) (*Schema, error) {
	doc, err := language.ParseSchema(name, sdl)
	if err != nil {
		return nil, err
	}

	types := []*TypeDefinition{stringType, intType, floatType, booleanType, idType}
	directives := []*Directive{includeDirective, skipDirective}

	for _, def := range doc.Definitions {
		t, err := buildDefinition(def)
		if err != nil {
			return nil, err
		}
		types = append(types, t)
	}
	for _, dd := range doc.Directives {
		directives = append(directives, buildDirective(dd))
	}
	return Build(types, directives)
}

func buildDefinition(def *language.Definition) (*TypeDefinition, error) {
	switch def.Kind {
	case language.Scalar:
		return &TypeDefinition{Name: def.Name, Kind: TypeKindScalar, Description: def.Description}, nil
	case language.Enum:
		return &TypeDefinition{Name: def.Name, Kind: TypeKindData, Description: def.Description}, nil
	case language.InputObject:
		return &TypeDefinition{Name: def.Name, Kind: TypeKindData, Description: def.Description}, nil
	case language.Object:
		t := &TypeDefinition{Name: def.Name, Kind: TypeKindObject, Description: def.Description}
		for _, fd := range def.Fields {
			t.Fields = append(t.Fields, buildField(fd))
		}
		return t, nil
	case language.Union:
		if len(def.Types) == 0 {
			return nil, fmt.Errorf("union type %q must have at least one member", def.Name)
		}
		return &TypeDefinition{
			Name:           def.Name,
			Kind:           TypeKindUnion,
			Description:    def.Description,
			Members:        def.Types,
			TypeGuardField: "__typename",
		}, nil
	default:
		return nil, fmt.Errorf("unsupported definition kind %s for type %q", def.Kind, def.Name)
	}
}

func buildField(fd *language.FieldDefinition) *Field {
	f := &Field{
		Name:        fd.Name,
		Description: fd.Description,
		Type:        TypeRefFromAST(fd.Type),
	}
	for _, ad := range fd.Arguments {
		iv := &InputValue{
			Name:        ad.Name,
			Description: ad.Description,
			Type:        TypeRefFromAST(ad.Type),
		}
		if ad.DefaultValue != nil {
			iv.DefaultValue, _ = ad.DefaultValue.Value(nil)
		}
		f.Arguments = append(f.Arguments, iv)
	}
	return f
}

func buildDirective(dd *language.DirectiveDefinition) *Directive {
	d := &Directive{
		Name:         dd.Name,
		Description:  dd.Description,
		IsRepeatable: dd.IsRepeatable,
	}
	for _, loc := range dd.Locations {
		d.Locations = append(d.Locations, string(loc))
	}
	for _, ad := range dd.Arguments {
		iv := &InputValue{
			Name:        ad.Name,
			Description: ad.Description,
			Type:        TypeRefFromAST(ad.Type),
		}
		if ad.DefaultValue != nil {
			iv.DefaultValue, _ = ad.DefaultValue.Value(nil)
		}
		d.Arguments = append(d.Arguments, iv)
	}
	return d
}

// TypeRefFromAST converts a parsed type expression, preserving the declared
// wrapping exactly.
func TypeRefFromAST(t *language.Type) *TypeRef {
	return &TypeRef{Name: namedTypeOf(t), Wrapper: wrapperFromAST(t)}
}

func namedTypeOf(t *language.Type) string {
	for t.NamedType == "" {
		t = t.Elem
	}
	return t.NamedType
}

func wrapperFromAST(t *language.Type) *TypeWrapper {
	if t.NamedType != "" {
		return Base(t.NonNull)
	}
	return List(wrapperFromAST(t.Elem), t.NonNull)
}
