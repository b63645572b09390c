// Package query holds the validated form of an operation: a fully typed
// selection tree with fragment spreads expanded, same-key selections merged
// and union selections dispatched into member-tagged branches. Values of
// these types are immutable once validation returns them.
package query

import (
	language "github.com/opgraph/opgraph/internal/language"
	schema "github.com/opgraph/opgraph/internal/schema"
)

// Operation is a validated top-level operation ready for execution.
type Operation struct {
	Name       string // empty for anonymous operations
	Kind       schema.OperationKind
	Arguments  Arguments
	Directives DirectiveList
	Selections SelectionSet
}

// SelectionSet is a non-empty ordered set of fields with unique response keys.
type SelectionSet []*Field

// ForKey returns the field with the given response key, or nil.
func (s SelectionSet) ForKey(key string) *Field {
	for _, f := range s {
		if f.ResponseKey == key {
			return f
		}
	}
	return nil
}

// Field is a validated selection. Spreads and inline fragments never survive
// validation; every selection is a resolved field.
type Field struct {
	ResponseKey string
	Name        string
	Type        *schema.TypeRef
	Arguments   Arguments
	Directives  DirectiveList
	Content     Content

	// Position of the selection in the source document, kept for
	// diagnostics. Not part of the field's identity.
	Position *language.Position
}

// ContentKind tags a field's content.
type ContentKind string

const (
	ContentLeaf       ContentKind = "LEAF"
	ContentSelections ContentKind = "SELECTIONS"
	ContentUnion      ContentKind = "UNION"
)

// Content is a field's subtree: nothing for leaf fields, a nested selection
// set for object fields, or tagged branches for union fields.
type Content struct {
	Kind       ContentKind
	Selections SelectionSet  // for SELECTIONS
	Union      *UnionContent // for UNION
}

// UnionContent records the union's guard field and one validated branch per
// selected member type.
type UnionContent struct {
	GuardField string
	Branches   []*UnionBranch
}

// BranchFor returns the branch tagged with the given member type, or nil.
func (u *UnionContent) BranchFor(typeName string) *UnionBranch {
	for _, b := range u.Branches {
		if b.TypeName == typeName {
			return b
		}
	}
	return nil
}

// UnionBranch is one member's selection within a union-typed field.
type UnionBranch struct {
	TypeName   string
	Selections SelectionSet
}

// Arguments maps argument names to validated values. Literal values are plain
// Go values; variable references stay symbolic since static validation has no
// variable values.
type Arguments map[string]any

// Variable is a symbolic reference to an operation variable.
type Variable struct {
	Name string
}

// EnumLiteral is an enum value literal. It is kept distinct from string so
// that rendering does not quote it.
type EnumLiteral string

// DirectiveList is the validated directives of a selection or operation.
type DirectiveList []*Directive

// ForName returns the first directive with the given name, or nil.
func (l DirectiveList) ForName(name string) *Directive {
	for _, d := range l {
		if d.Name == name {
			return d
		}
	}
	return nil
}

// Directive is a validated directive use.
type Directive struct {
	Name      string
	Arguments Arguments
}
