package validation

import (
	"fmt"

	language "github.com/opgraph/opgraph/internal/language"
)

// Reusable error constructors. Keep messages stable: callers match on them in
// tests and tooling.

func errUnknownField(fieldName, typeName string, pos *language.Position) *Error {
	return errorAt(KindUnknownField,
		fmt.Sprintf("cannot query field %q on type %q", fieldName, typeName),
		pos,
	)
}

func errUnknownType(typeName string, pos *language.Position) *Error {
	return errorAt(KindUnknownType,
		fmt.Sprintf("type %q not found in schema", typeName),
		pos,
	)
}

func errSubfieldsRequired(fieldName, typeName string, pos *language.Position) *Error {
	return errorAt(KindSubfieldsRequired,
		fmt.Sprintf("field %q of type %q must have a subfields selection", fieldName, typeName),
		pos,
	)
}

func errNoSubfieldsAllowed(fieldName, typeName string, pos *language.Position) *Error {
	return errorAt(KindNoSubfieldsAllowed,
		fmt.Sprintf("field %q of type %q has no subfields", fieldName, typeName),
		pos,
	)
}

func errEmptySelection(pos *language.Position) *Error {
	return errorAt(KindEmptySelection,
		"no selection statement was found in the current scope",
		pos,
	)
}

func errUnknownFragment(name string, pos *language.Position) *Error {
	return errorAt(KindUnknownFragment,
		fmt.Sprintf("Unknown Fragment %q", name),
		pos,
	)
}

func errFragmentTypeMismatch(fragmentType, typeName string, pos *language.Position) *Error {
	return errorAt(KindFragmentTypeMismatch,
		fmt.Sprintf("fragment cannot be spread here: fragment on %q does not apply to type %q", fragmentType, typeName),
		pos,
	)
}

func errCyclicFragment(name string, pos *language.Position) *Error {
	return errorAt(KindCyclicFragmentReference,
		fmt.Sprintf("cyclic fragment reference: %q", name),
		pos,
	)
}

func errUnknownUnionBranch(typeName, unionName string, pos *language.Position) *Error {
	return errorAt(KindUnknownUnionBranch,
		fmt.Sprintf("type %q is not a member of union %q", typeName, unionName),
		pos,
	)
}

func errNoUnionBranch(unionName string, pos *language.Position) *Error {
	return errorAt(KindUnknownUnionBranch,
		fmt.Sprintf("no type guard branch was found for union %q", unionName),
		pos,
	)
}

func errFieldOnUnion(fieldName, unionName string, pos *language.Position) *Error {
	return errorAt(KindUnknownField,
		fmt.Sprintf("cannot query field %q on union type %q: branch on a member type instead", fieldName, unionName),
		pos,
	)
}

func errMissingRootType(kind string, pos *language.Position) *Error {
	return errorAt(KindMissingRootType,
		fmt.Sprintf("%s root type must be provided", kind),
		pos,
	)
}

func errMultipleSubscriptionRoots(operationName string, pos *language.Position) *Error {
	if operationName == "" {
		operationName = "Anonymous"
	}
	return errorAt(KindMultipleSubscriptionRoots,
		fmt.Sprintf("Subscription %q must select only one top level field", operationName),
		pos,
	)
}

func errUnknownDirective(name string, pos *language.Position) *Error {
	return errorAt(KindDirectiveError,
		fmt.Sprintf("Unknown directive @%s", name),
		pos,
	)
}

func errDirectiveLocation(name, location string, pos *language.Position) *Error {
	return errorAt(KindDirectiveError,
		fmt.Sprintf("directive @%s is not allowed on %s", name, location),
		pos,
	)
}

func errRepeatedDirective(name string, pos *language.Position) *Error {
	return errorAt(KindDirectiveError,
		fmt.Sprintf("directive @%s is not repeatable", name),
		pos,
	)
}

func errUnknownArgument(argName, owner string, pos *language.Position) *Error {
	return errorAt(KindArgumentError,
		fmt.Sprintf("unknown argument %q on %s", argName, owner),
		pos,
	)
}

func errMissingArgument(argName, owner string, pos *language.Position) *Error {
	return errorAt(KindArgumentError,
		fmt.Sprintf("argument %q of required type is not provided on %s", argName, owner),
		pos,
	)
}

func errMergeConflict(responseKey, detail string, pos *language.Position) *Error {
	return errorAt(KindMergeConflict,
		fmt.Sprintf("selections for key %q cannot be merged: %s", responseKey, detail),
		pos,
	)
}
