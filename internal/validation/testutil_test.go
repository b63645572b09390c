package validation

import (
	"context"
	"testing"

	language "github.com/opgraph/opgraph/internal/language"
	query "github.com/opgraph/opgraph/internal/query"
	schema "github.com/opgraph/opgraph/internal/schema"
	"github.com/stretchr/testify/require"
)

const testSDL = `
type Query {
	user(id: ID!): User
	users(first: Int = 10): [User!]!
	node(id: ID!): Node
	version: String!
}

type Mutation {
	createUser(name: String!): User!
}

type Subscription {
	userUpdated: User!
	messagePosted: Message!
}

type User {
	id: ID!
	name: String!
	email: String
	role: Role!
	friends: [User!]
	pet: Pet
}

type Message {
	id: ID!
	body: String!
	author: User!
}

enum Role {
	ADMIN
	MEMBER
}

type Dog {
	name: String!
	barks: Boolean!
}

type Cat {
	name: String!
	lives: Int!
}

union Pet = Dog | Cat

union Node = User | Message
`

func buildTestSchema(t *testing.T) *schema.Schema {
	t.Helper()
	s, err := schema.FromSDL("test.graphql", testSDL)
	require.NoError(t, err)
	return s
}

func mustParseQuery(t *testing.T, src string) *language.QueryDocument {
	t.Helper()
	doc, err := language.ParseQuery(src)
	require.NoError(t, err)
	return doc
}

// validateQuery validates the first operation of src against the test schema.
func validateQuery(t *testing.T, src string) (*query.Operation, error) {
	t.Helper()
	doc := mustParseQuery(t, src)
	v := New(buildTestSchema(t))
	return v.ValidateOperation(context.Background(), doc, doc.Operations[0])
}

// requireErrorKinds asserts err is an ErrorList carrying exactly the given
// kinds in order.
func requireErrorKinds(t *testing.T, err error, kinds ...Kind) ErrorList {
	t.Helper()
	require.Error(t, err)
	list, ok := err.(ErrorList)
	require.True(t, ok, "expected ErrorList, got %T: %v", err, err)
	got := make([]Kind, len(list))
	for i, e := range list {
		got[i] = e.Kind
	}
	require.Equal(t, kinds, got, "error list: %v", err)
	return list
}
