package validation

import (
	"testing"

	query "github.com/opgraph/opgraph/internal/query"
	"github.com/stretchr/testify/require"
)

func TestUnionDispatch(t *testing.T) {
	t.Run("one tagged branch per selected member", func(t *testing.T) {
		op, err := validateQuery(t, `{
			user(id: "1") {
				pet {
					... on Dog { name barks }
					... on Cat { name lives }
				}
			}
		}`)
		require.NoError(t, err)

		pet := op.Selections.ForKey("user").Content.Selections.ForKey("pet")
		require.Equal(t, query.ContentUnion, pet.Content.Kind)
		union := pet.Content.Union
		require.Equal(t, "__typename", union.GuardField)
		require.Len(t, union.Branches, 2)

		dog := union.BranchFor("Dog")
		require.NotNil(t, dog)
		require.NotNil(t, dog.Selections.ForKey("barks"))
		cat := union.BranchFor("Cat")
		require.NotNil(t, cat)
		require.NotNil(t, cat.Selections.ForKey("lives"))
	})

	t.Run("branch bodies validate against the member type", func(t *testing.T) {
		_, err := validateQuery(t, `{
			user(id: "1") { pet { ... on Dog { lives } } }
		}`)
		list := requireErrorKinds(t, err, KindUnknownField)
		require.Contains(t, list[0].Message, `cannot query field "lives" on type "Dog"`)
	})

	t.Run("branch naming a non-member", func(t *testing.T) {
		_, err := validateQuery(t, `{
			user(id: "1") { pet { ... on Message { body } } }
		}`)
		list := requireErrorKinds(t, err, KindUnknownUnionBranch)
		require.Contains(t, list[0].Message, `type "Message" is not a member of union "Pet"`)
	})

	t.Run("plain field on a union", func(t *testing.T) {
		_, err := validateQuery(t, `{
			user(id: "1") { pet { name } }
		}`)
		requireErrorKinds(t, err, KindUnknownField)
	})

	t.Run("empty branch set", func(t *testing.T) {
		_, err := validateQuery(t, `{
			user(id: "1") { pet { ... on Dog @skip(if: true) { name } } }
		}`)
		list := requireErrorKinds(t, err, KindUnknownUnionBranch)
		require.Contains(t, list[0].Message, `no type guard branch was found for union "Pet"`)
	})

	t.Run("duplicate branches on one member merge", func(t *testing.T) {
		op, err := validateQuery(t, `{
			user(id: "1") {
				pet {
					... on Dog { name }
					... on Dog { barks }
				}
			}
		}`)
		require.NoError(t, err)
		union := op.Selections.ForKey("user").Content.Selections.ForKey("pet").Content.Union
		require.Len(t, union.Branches, 1)
		require.Len(t, union.BranchFor("Dog").Selections, 2)
	})

	t.Run("fragment spread targeting a member", func(t *testing.T) {
		op, err := validateQuery(t, `
			{ node(id: "1") { ...userNode ... on Message { body } } }
			fragment userNode on User { id name }
		`)
		require.NoError(t, err)
		union := op.Selections.ForKey("node").Content.Union
		require.Len(t, union.Branches, 2)
		require.NotNil(t, union.BranchFor("User").Selections.ForKey("name"))
		require.NotNil(t, union.BranchFor("Message").Selections.ForKey("body"))
	})

	t.Run("fragment on the union itself", func(t *testing.T) {
		op, err := validateQuery(t, `
			{ node(id: "1") { ...onNode } }
			fragment onNode on Node {
				... on User { id }
				... on Message { body }
			}
		`)
		require.NoError(t, err)
		union := op.Selections.ForKey("node").Content.Union
		require.Len(t, union.Branches, 2)
		require.NotNil(t, union.BranchFor("User").Selections.ForKey("id"))
		require.NotNil(t, union.BranchFor("Message").Selections.ForKey("body"))
	})

	t.Run("inline fragment without a condition stays in union scope", func(t *testing.T) {
		op, err := validateQuery(t, `{
			node(id: "1") {
				... { ... on User { id } }
				... on User { name }
			}
		}`)
		require.NoError(t, err)
		union := op.Selections.ForKey("node").Content.Union
		require.Len(t, union.Branches, 1)
		user := union.BranchFor("User")
		require.NotNil(t, user.Selections.ForKey("id"))
		require.NotNil(t, user.Selections.ForKey("name"))
	})

	t.Run("self-referential fragment on the union", func(t *testing.T) {
		_, err := validateQuery(t, `
			{ node(id: "1") { ...loop } }
			fragment loop on Node { ...loop }
		`)
		requireErrorKinds(t, err, KindCyclicFragmentReference)
	})

	t.Run("fragment spread targeting a non-member", func(t *testing.T) {
		_, err := validateQuery(t, `
			{ node(id: "1") { ...pet } }
			fragment pet on Dog { name }
		`)
		requireErrorKinds(t, err, KindFragmentTypeMismatch)
	})

	t.Run("branch errors accumulate", func(t *testing.T) {
		_, err := validateQuery(t, `{
			user(id: "1") {
				pet {
					... on Dog { nope }
					... on Message { body }
				}
			}
		}`)
		requireErrorKinds(t, err, KindUnknownField, KindUnknownUnionBranch)
	})

	t.Run("subfields are required on a union field", func(t *testing.T) {
		_, err := validateQuery(t, `{ user(id: "1") { pet } }`)
		requireErrorKinds(t, err, KindSubfieldsRequired)
	})
}
