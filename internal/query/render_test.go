package query_test

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	language "github.com/opgraph/opgraph/internal/language"
	query "github.com/opgraph/opgraph/internal/query"
	schema "github.com/opgraph/opgraph/internal/schema"
	validation "github.com/opgraph/opgraph/internal/validation"
	"github.com/stretchr/testify/require"
)

const testSDL = `
type Query {
	user(id: ID!): User
	users(first: Int = 10): [User!]!
	version: String!
}

type User {
	id: ID!
	name: String!
	role: Role!
	friends: [User!]
	pet: Pet
}

enum Role { ADMIN MEMBER }

type Dog { name: String! barks: Boolean! }
type Cat { name: String! lives: Int! }

union Pet = Dog | Cat
`

func validate(t *testing.T, src string) *query.Operation {
	t.Helper()
	s, err := schema.FromSDL("test.graphql", testSDL)
	require.NoError(t, err)
	doc, err := language.ParseQuery(src)
	require.NoError(t, err)
	op, err := validation.New(s).ValidateOperation(context.Background(), doc, doc.Operations[0])
	require.NoError(t, err)
	return op
}

// Validated trees survive a render/parse/validate round trip structurally
// unchanged. Source positions differ between parses and are excluded.
func TestRenderRoundTrip(t *testing.T) {
	cases := []struct {
		name string
		src  string
	}{
		{"leaf fields", `{ version __typename }`},
		{"aliases and arguments", `query Q { me: user(id: "1") { id name } }`},
		{"defaulted arguments", `{ users { id } }`},
		{"nested objects", `{ user(id: "1") { friends { id friends { name } } } }`},
		{"union branches", `{
			user(id: "1") {
				pet {
					... on Dog { name barks }
					... on Cat { lives }
				}
			}
		}`},
		{"fragments expand away", `
			{ user(id: "1") { ...names } }
			fragment names on User { name role }
		`},
		{"variable directive survives", `query ($v: Boolean!) { user(id: "1") @include(if: $v) { id } }`},
		{"merged duplicate keys", `{ user(id: "1") { id } user(id: "1") { name } }`},
	}

	ignorePositions := cmpopts.IgnoreFields(query.Field{}, "Position")

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			first := validate(t, tc.src)
			rendered := query.Render(first)
			second := validate(t, rendered)
			if diff := cmp.Diff(first, second, ignorePositions); diff != "" {
				t.Fatalf("round trip mismatch (-first +second):\n%s\nrendered:\n%s", diff, rendered)
			}
		})
	}
}

func TestRenderShape(t *testing.T) {
	t.Run("alias and argument syntax", func(t *testing.T) {
		op := validate(t, `{ me: user(id: "1") { id } }`)
		require.Equal(t, "query {\n  me: user(id: \"1\") {\n    id\n  }\n}\n", query.Render(op))
	})

	t.Run("operation name and kind", func(t *testing.T) {
		op := validate(t, `query Q { version }`)
		require.Equal(t, "query Q {\n  version\n}\n", query.Render(op))
	})

	t.Run("union branches render as type guards", func(t *testing.T) {
		op := validate(t, `{ user(id: "1") { pet { ... on Dog { name } } } }`)
		require.Contains(t, query.Render(op), "... on Dog {")
	})
}
