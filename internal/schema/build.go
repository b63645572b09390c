package schema

import "fmt"

// Build indexes a list of type definitions into a Schema. Type names must be
// unique. The types named Query, Mutation and Subscription are extracted as
// operation roots and removed from the general map; each must be an object
// type, and Query must be present. A root definition carrying an explicit
// operation tag for a different operation is rejected.
func Build(types []*TypeDefinition, directives []*Directive) (*Schema, error) {
	byName := make(map[string]*TypeDefinition, len(types))
	for _, t := range types {
		if _, ok := byName[t.Name]; ok {
			return nil, fmt.Errorf("duplicate type name %q", t.Name)
		}
		byName[t.Name] = t
	}

	s := &Schema{
		Types:      byName,
		Directives: make(map[string]*Directive, len(directives)),
	}
	for _, d := range directives {
		s.Directives[d.Name] = d
	}

	var err error
	if s.Query, err = extractRoot(byName, "Query", OperationQuery); err != nil {
		return nil, err
	}
	if s.Query == nil {
		return nil, fmt.Errorf("Query root type must be provided")
	}
	if s.Mutation, err = extractRoot(byName, "Mutation", OperationMutation); err != nil {
		return nil, err
	}
	if s.Subscription, err = extractRoot(byName, "Subscription", OperationSubscription); err != nil {
		return nil, err
	}
	return s, nil
}

// extractRoot removes the named root from the general map and checks its
// shape. A missing root is not an error here; Build decides which roots are
// required.
func extractRoot(byName map[string]*TypeDefinition, name string, op OperationKind) (*TypeDefinition, error) {
	t, ok := byName[name]
	if !ok {
		return nil, nil
	}
	if t.Kind != TypeKindObject {
		return nil, fmt.Errorf("%q root type must be Object type if provided", name)
	}
	if t.Operation != "" && t.Operation != op {
		return nil, fmt.Errorf("%q root type is tagged for %s operations", name, t.Operation)
	}
	t.Operation = op
	delete(byName, name)
	return t, nil
}
