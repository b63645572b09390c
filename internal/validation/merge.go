package validation

import (
	"reflect"

	query "github.com/opgraph/opgraph/internal/query"
)

// mergeSelectionSets merges src into dst by response key, keeping dst's
// order and appending keys that only src has. Neither input is mutated.
// Selections sharing a key merge recursively; a leaf/non-leaf kind mismatch
// is a merge conflict.
func mergeSelectionSets(dst, src query.SelectionSet) (query.SelectionSet, *Error) {
	out := make(query.SelectionSet, len(dst), len(dst)+len(src))
	copy(out, dst)

	for _, f := range src {
		i := indexOfKey(out, f.ResponseKey)
		if i < 0 {
			out = append(out, f)
			continue
		}
		merged, err := mergeFields(out[i], f)
		if err != nil {
			return nil, err
		}
		out[i] = merged
	}
	return out, nil
}

func indexOfKey(set query.SelectionSet, key string) int {
	for i, f := range set {
		if f.ResponseKey == key {
			return i
		}
	}
	return -1
}

// mergeFields merges two validated selections with the same response key.
// They must select the same field with the same arguments and agree on
// content kind; subtree content merges recursively.
func mergeFields(a, b *query.Field) (*query.Field, *Error) {
	if a.Name != b.Name {
		return nil, errMergeConflict(a.ResponseKey, "\""+a.Name+"\" and \""+b.Name+"\" are different fields", b.Position)
	}
	if !reflect.DeepEqual(a.Arguments, b.Arguments) {
		return nil, errMergeConflict(a.ResponseKey, "they have differing arguments", b.Position)
	}
	if a.Type != nil && b.Type != nil && !b.Type.IsSubtypeOf(a.Type) && !a.Type.IsSubtypeOf(b.Type) {
		return nil, errMergeConflict(a.ResponseKey, "return types "+a.Type.String()+" and "+b.Type.String()+" are incompatible", b.Position)
	}
	if a.Content.Kind != b.Content.Kind {
		return nil, errMergeConflict(a.ResponseKey, "cannot merge leaf and non-leaf selections", b.Position)
	}

	switch a.Content.Kind {
	case query.ContentLeaf:
		return a, nil

	case query.ContentSelections:
		sels, err := mergeSelectionSets(a.Content.Selections, b.Content.Selections)
		if err != nil {
			return nil, err
		}
		merged := *a
		merged.Content = query.Content{Kind: query.ContentSelections, Selections: sels}
		return &merged, nil

	default:
		union, err := mergeUnionContent(a.Content.Union, b.Content.Union)
		if err != nil {
			return nil, err
		}
		merged := *a
		merged.Content = query.Content{Kind: query.ContentUnion, Union: union}
		return &merged, nil
	}
}

func mergeUnionContent(a, b *query.UnionContent) (*query.UnionContent, *Error) {
	out := &query.UnionContent{GuardField: a.GuardField}
	out.Branches = append(out.Branches, a.Branches...)

	for _, branch := range b.Branches {
		existing := out.BranchFor(branch.TypeName)
		if existing == nil {
			out.Branches = append(out.Branches, branch)
			continue
		}
		sels, err := mergeSelectionSets(existing.Selections, branch.Selections)
		if err != nil {
			return nil, err
		}
		// replace rather than mutate the shared branch
		for i, e := range out.Branches {
			if e.TypeName == branch.TypeName {
				out.Branches[i] = &query.UnionBranch{TypeName: branch.TypeName, Selections: sels}
			}
		}
	}
	return out, nil
}
