package schema

import "strings"

// TypeRef is a reference to a named type together with its list/non-null
// wrapping as declared.
type TypeRef struct {
	Name    string
	Wrapper *TypeWrapper
}

// WrapperKind distinguishes the two wrapper shapes.
type WrapperKind string

const (
	WrapperKindBase WrapperKind = "BASE"
	WrapperKindList WrapperKind = "LIST"
)

// TypeWrapper mirrors the declared type syntax exactly: a base name with its
// own non-null marker, or a list of an inner wrapper with its own marker.
// [T!] and [T]! are distinct values.
type TypeWrapper struct {
	Kind    WrapperKind
	NonNull bool
	OfType  *TypeWrapper // for LIST
}

func Base(nonNull bool) *TypeWrapper {
	return &TypeWrapper{Kind: WrapperKindBase, NonNull: nonNull}
}

func List(inner *TypeWrapper, nonNull bool) *TypeWrapper {
	return &TypeWrapper{Kind: WrapperKindList, NonNull: nonNull, OfType: inner}
}

func NamedType(name string) *TypeRef {
	return &TypeRef{Name: name, Wrapper: Base(false)}
}

func NonNullNamedType(name string) *TypeRef {
	return &TypeRef{Name: name, Wrapper: Base(true)}
}

// IsSubtypeOf reports whether s may be used where t is expected. The base
// names must match; non-null is stronger, so a non-null wrapper is a subtype
// of its nullable counterpart but not the reverse. Lists are covariant in
// their inner wrapper.
func (s *TypeRef) IsSubtypeOf(t *TypeRef) bool {
	if s.Name != t.Name {
		return false
	}
	return s.Wrapper.IsSubtypeOf(t.Wrapper)
}

// IsSubtypeOf implements the wrapper part of the subtyping relation.
func (w *TypeWrapper) IsSubtypeOf(v *TypeWrapper) bool {
	if w.Kind != v.Kind {
		return false
	}
	if !w.NonNull && v.NonNull {
		return false
	}
	if w.Kind == WrapperKindList {
		return w.OfType.IsSubtypeOf(v.OfType)
	}
	return true
}

// String renders the reference in declaration syntax, e.g. "[User!]!".
func (t *TypeRef) String() string {
	var b strings.Builder
	writeWrapper(&b, t.Name, t.Wrapper)
	return b.String()
}

func writeWrapper(b *strings.Builder, name string, w *TypeWrapper) {
	if w == nil {
		b.WriteString(name)
		return
	}
	if w.Kind == WrapperKindList {
		b.WriteByte('[')
		writeWrapper(b, name, w.OfType)
		b.WriteByte(']')
	} else {
		b.WriteString(name)
	}
	if w.NonNull {
		b.WriteByte('!')
	}
}
