package diag

import "strconv"

// Detail provides key-value context for diagnostic issues.
//
// Details are used to add structured information to issues that can be
// programmatically inspected by tools. Use the standard detail key constants
// to ensure consistent key naming across the codebase.
type Detail struct {
	Key   string
	Value string
}

// Standard detail keys for consistent diagnostic metadata.
//
// Use these constants to avoid stringly-typed drift and enable programmatic
// inspection of diagnostic details. Custom detail keys are permitted for
// domain-specific diagnostics; use lower_snake_case for custom keys.
const (
	// DetailKeyExpected is the expected type or shape.
	DetailKeyExpected = "expected"

	// DetailKeyGot is the actual type or shape found.
	DetailKeyGot = "got"

	// DetailKeyTypeName is the type name involved in the diagnostic.
	DetailKeyTypeName = "type"

	// DetailKeyDesignator is the designator (identifier or operator symbol)
	// involved in a scope/overload diagnostic.
	DetailKeyDesignator = "designator"

	// DetailKeySignature is the rendered signature key used for overload
	// disambiguation (E_SIGNATURE_REQUIRED, E_NO_SUCH_SIGNATURE).
	DetailKeySignature = "signature"

	// DetailKeyCandidateCount is the number of overload candidates considered
	// (E_NO_MATCH, E_AMBIGUOUS).
	DetailKeyCandidateCount = "candidate_count"

	// DetailKeyElementName is a record element or array index name involved
	// in the diagnostic.
	DetailKeyElementName = "element"

	// DetailKeyFormal is the generic formal name (E_GENERIC_MAP_ACTUAL,
	// E_GENERIC_FORMAL_NOT_FOUND).
	DetailKeyFormal = "formal"

	// DetailKeyActual is the generic actual's resolved-name class or
	// rendered form (E_GENERIC_MAP_ACTUAL).
	DetailKeyActual = "actual"

	// DetailKeyUnit is a physical-type unit name (E_SECONDARY_UNIT_BASE).
	DetailKeyUnit = "unit"

	// DetailKeyReason is the failure reason discriminant, used where a code
	// covers more than one underlying cause.
	DetailKeyReason = "reason"

	// DetailKeyExpectedLength and DetailKeyGotLength are the target array
	// subtype's locked length and a bit-string literal's actual length
	// (E_BITSTRING_LENGTH).
	DetailKeyExpectedLength = "expected_length"
	DetailKeyGotLength      = "got_length"

	// DetailKeyContext is contextual information (e.g., "process", "function").
	DetailKeyContext = "context"

	// DetailKeyRegion identifies the region kind in which a lookup or
	// declaration failed (e.g., "package", "process", "record").
	DetailKeyRegion = "region"
)

// ExpectedGot creates a pair of details for type mismatch diagnostics.
//
// This is the standard pattern for reporting "expected X, got Y" errors.
func ExpectedGot(expected, got string) []Detail {
	return []Detail{
		{Key: DetailKeyExpected, Value: expected},
		{Key: DetailKeyGot, Value: got},
	}
}

// TypeDesignator creates detail entries for type+designator diagnostics.
//
// Use for diagnostics involving a specific designator on a type, such as a
// record element lookup.
func TypeDesignator(typeName, designator string) []Detail {
	return []Detail{
		{Key: DetailKeyTypeName, Value: typeName},
		{Key: DetailKeyDesignator, Value: designator},
	}
}

// TypeElement creates detail entries for unknown record element diagnostics.
//
// Use for diagnostics like E_NO_SUCH_ELEMENT.
func TypeElement(typeName, elementName string) []Detail {
	return []Detail{
		{Key: DetailKeyTypeName, Value: typeName},
		{Key: DetailKeyElementName, Value: elementName},
	}
}

// GenericMapActual creates detail entries for E_GENERIC_MAP_ACTUAL.
//
// formal is the generic formal's designator; actual is a short rendering of
// the resolved-name class or designator bound to it.
func GenericMapActual(formal, actual string) []Detail {
	return []Detail{
		{Key: DetailKeyFormal, Value: formal},
		{Key: DetailKeyActual, Value: actual},
	}
}

// BitstringLength creates detail entries for E_BITSTRING_LENGTH.
func BitstringLength(expectedLength, gotLength int) []Detail {
	return []Detail{
		{Key: DetailKeyExpectedLength, Value: strconv.Itoa(expectedLength)},
		{Key: DetailKeyGotLength, Value: strconv.Itoa(gotLength)},
	}
}
