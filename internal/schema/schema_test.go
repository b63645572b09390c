package schema

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildRootTypes(t *testing.T) {
	objectType := func(name string) *TypeDefinition {
		return &TypeDefinition{Name: name, Kind: TypeKindObject, Fields: []*Field{
			{Name: "ok", Type: NonNullNamedType("Boolean")},
		}}
	}

	t.Run("query root is required", func(t *testing.T) {
		_, err := Build([]*TypeDefinition{objectType("User")}, nil)
		require.EqualError(t, err, "Query root type must be provided")
	})

	t.Run("roots are extracted from the general map", func(t *testing.T) {
		s, err := Build([]*TypeDefinition{
			objectType("Query"),
			objectType("Mutation"),
			objectType("User"),
		}, nil)
		require.NoError(t, err)
		require.NotNil(t, s.Query)
		require.NotNil(t, s.Mutation)
		require.Nil(t, s.Subscription)
		require.NotContains(t, s.Types, "Query")
		require.NotContains(t, s.Types, "Mutation")
		require.Contains(t, s.Types, "User")
		require.Equal(t, OperationQuery, s.Query.Operation)
		require.Equal(t, OperationMutation, s.Mutation.Operation)
	})

	t.Run("non-object root is rejected", func(t *testing.T) {
		_, err := Build([]*TypeDefinition{
			objectType("Query"),
			{Name: "Mutation", Kind: TypeKindScalar},
		}, nil)
		require.EqualError(t, err, `"Mutation" root type must be Object type if provided`)
	})

	t.Run("conflicting operation tag is rejected", func(t *testing.T) {
		bad := objectType("Mutation")
		bad.Operation = OperationSubscription
		_, err := Build([]*TypeDefinition{objectType("Query"), bad}, nil)
		require.Error(t, err)
	})

	t.Run("duplicate type names are rejected", func(t *testing.T) {
		_, err := Build([]*TypeDefinition{
			objectType("Query"),
			objectType("User"),
			objectType("User"),
		}, nil)
		require.EqualError(t, err, `duplicate type name "User"`)
	})
}

func TestLookupDataType(t *testing.T) {
	s, err := Build([]*TypeDefinition{
		{Name: "Query", Kind: TypeKindObject, Fields: []*Field{{Name: "a", Type: NamedType("String")}}},
		{Name: "Subscription", Kind: TypeKindObject, Fields: []*Field{{Name: "a", Type: NamedType("String")}}},
		{Name: "Page", Kind: TypeKindObject, Fields: []*Field{{Name: "total", Type: NonNullNamedType("Int")}}},
	}, nil)
	require.NoError(t, err)

	t.Run("roots resolve before the general map", func(t *testing.T) {
		require.Same(t, s.Query, s.LookupDataType("Query"))
		require.Same(t, s.Subscription, s.LookupDataType("Subscription"))
		require.Nil(t, s.LookupDataType("Mutation"))
	})

	t.Run("general map", func(t *testing.T) {
		require.NotNil(t, s.LookupDataType("Page"))
		require.Nil(t, s.LookupDataType("Missing"))
	})

	t.Run("parameterized names unwrap to their base", func(t *testing.T) {
		require.NotNil(t, s.LookupDataType("Page<User>"))
		require.NotNil(t, s.LookupDataType("Page(User)"))
	})
}

func TestIsSubtypeOf(t *testing.T) {
	cases := []struct {
		name string
		s, t *TypeRef
		want bool
	}{
		{
			name: "non-null base is subtype of nullable base",
			s:    &TypeRef{Name: "T", Wrapper: Base(true)},
			t:    &TypeRef{Name: "T", Wrapper: Base(false)},
			want: true,
		},
		{
			name: "nullable base is not subtype of non-null base",
			s:    &TypeRef{Name: "T", Wrapper: Base(false)},
			t:    &TypeRef{Name: "T", Wrapper: Base(true)},
			want: false,
		},
		{
			name: "list of non-null is subtype of list of nullable",
			s:    &TypeRef{Name: "T", Wrapper: List(Base(true), true)},
			t:    &TypeRef{Name: "T", Wrapper: List(Base(false), true)},
			want: true,
		},
		{
			name: "nullable list is not subtype of non-null list",
			s:    &TypeRef{Name: "T", Wrapper: List(Base(true), false)},
			t:    &TypeRef{Name: "T", Wrapper: List(Base(true), true)},
			want: false,
		},
		{
			name: "list is not subtype of base",
			s:    &TypeRef{Name: "T", Wrapper: List(Base(false), false)},
			t:    &TypeRef{Name: "T", Wrapper: Base(false)},
			want: false,
		},
		{
			name: "different base names never relate",
			s:    &TypeRef{Name: "S", Wrapper: Base(true)},
			t:    &TypeRef{Name: "T", Wrapper: Base(false)},
			want: false,
		},
		{
			name: "reflexive",
			s:    &TypeRef{Name: "T", Wrapper: List(Base(true), false)},
			t:    &TypeRef{Name: "T", Wrapper: List(Base(true), false)},
			want: true,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, tc.s.IsSubtypeOf(tc.t))
		})
	}
}

func TestTypeRefString(t *testing.T) {
	require.Equal(t, "User", (&TypeRef{Name: "User", Wrapper: Base(false)}).String())
	require.Equal(t, "User!", (&TypeRef{Name: "User", Wrapper: Base(true)}).String())
	require.Equal(t, "[User!]", (&TypeRef{Name: "User", Wrapper: List(Base(true), false)}).String())
	require.Equal(t, "[User]!", (&TypeRef{Name: "User", Wrapper: List(Base(false), true)}).String())
	require.Equal(t, "[[User!]]!", (&TypeRef{Name: "User", Wrapper: List(List(Base(true), false), true)}).String())
}

func TestFromSDL(t *testing.T) {
	s, err := FromSDL("test.graphql", `
		type Query {
			user(id: ID!): User
			pets: [Pet!]!
		}
		type User {
			id: ID!
			name: String!
			role: Role!
		}
		enum Role { ADMIN MEMBER }
		type Dog { name: String! }
		type Cat { name: String! }
		union Pet = Dog | Cat
	`)
	require.NoError(t, err)

	t.Run("kinds", func(t *testing.T) {
		require.Equal(t, TypeKindObject, s.Query.Kind)
		require.Equal(t, TypeKindObject, s.LookupDataType("User").Kind)
		require.Equal(t, TypeKindData, s.LookupDataType("Role").Kind)
		require.Equal(t, TypeKindScalar, s.LookupDataType("String").Kind)
		require.Equal(t, TypeKindUnion, s.LookupDataType("Pet").Kind)
	})

	t.Run("union members and guard field", func(t *testing.T) {
		pet := s.LookupDataType("Pet")
		require.Equal(t, []string{"Dog", "Cat"}, pet.Members)
		require.Equal(t, "__typename", pet.TypeGuardField)
	})

	t.Run("field types preserve wrapping", func(t *testing.T) {
		pets := s.Query.FieldByName("pets")
		require.NotNil(t, pets)
		require.Equal(t, "[Pet!]!", pets.Type.String())

		user := s.Query.FieldByName("user")
		require.NotNil(t, user)
		require.Equal(t, "User", user.Type.String())
		require.Equal(t, "ID!", user.ArgumentByName("id").Type.String())
	})

	t.Run("builtin directives", func(t *testing.T) {
		require.Contains(t, s.Directives, "skip")
		require.Contains(t, s.Directives, "include")
	})
}
