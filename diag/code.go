package diag

// CodeCategory represents the semantic domain of an error code.
//
// Categories represent the semantic domain of an error, not necessarily the
// component that emits it. Most codes are emitted exclusively by their
// category's component, but a handful are cross-cutting.
type CodeCategory uint8

const (
	// CategorySentinel is for sentinel codes like E_LIMIT_REACHED and E_INTERNAL.
	CategorySentinel CodeCategory = iota

	// CategoryArena is for entity-arena invariant violations (component A).
	CategoryArena

	// CategoryScope is for scope/region errors: duplicate declarations,
	// unresolved lookups (component B).
	CategoryScope

	// CategoryType is for type-model errors: shape mismatches on subtype
	// constraints, illegal base-type relations (component C).
	CategoryType

	// CategoryDeclare is for declarative-analysis errors: incomplete types,
	// illegal aliasing, protected-type bodies (component D).
	CategoryDeclare

	// CategoryExpr is for expression-typing errors: overload resolution,
	// type mismatches, aggregate shape errors (component E).
	CategoryExpr

	// CategorySequential is for sequential-statement errors: illegal
	// return/wait/exit in the wrong statement root (component F).
	CategorySequential

	// CategoryInstantiate is for generic package instantiation errors
	// (component G).
	CategoryInstantiate
)

// String returns a human-readable label for the category.
func (c CodeCategory) String() string {
	switch c {
	case CategorySentinel:
		return "sentinel"
	case CategoryArena:
		return "arena"
	case CategoryScope:
		return "scope"
	case CategoryType:
		return "type"
	case CategoryDeclare:
		return "declare"
	case CategoryExpr:
		return "expr"
	case CategorySequential:
		return "sequential"
	case CategoryInstantiate:
		return "instantiate"
	default:
		return "unknown"
	}
}

// Code is a stable programmatic identifier for an Issue.
//
// Error codes are stable identifiers that tools can match on, even when
// message text changes. The Code type uses unexported fields to enforce
// a closed set of valid codes — only codes defined in this package are valid.
//
// Code.String() values are globally unique across all categories. The
// CodeCategory is informational metadata for filtering and grouping.
type Code struct {
	value string
	cat   CodeCategory
}

// String returns the code's string representation (e.g., "E_DUPLICATE_DECL").
func (c Code) String() string {
	return c.value
}

// Category returns the programmatic category for this code.
func (c Code) Category() CodeCategory {
	return c.cat
}

// IsZero reports whether the code is unset.
func (c Code) IsZero() bool {
	return c.value == ""
}

// code is the unexported constructor — callers cannot create arbitrary codes.
func code(value string, cat CodeCategory) Code {
	return Code{value: value, cat: cat}
}

// Sentinel codes.
var (
	// E_LIMIT_REACHED is a sentinel code for explicit limit notification.
	// It does not automatically trigger Result.LimitReached(); use
	// Collector.LimitReached() to check limit status.
	E_LIMIT_REACHED = code("E_LIMIT_REACHED", CategorySentinel)

	// E_INTERNAL indicates an unexpected invariant failure (internal bug
	// indicator, e.g. an AST reference slot written twice).
	E_INTERNAL = code("E_INTERNAL", CategorySentinel)
)

// Arena codes.
var (
	// E_INCOMPLETE_NO_FULL_TYPE indicates a Type::Incomplete with no matching
	// full type declaration in the same declarative part.
	E_INCOMPLETE_NO_FULL_TYPE = code("E_INCOMPLETE_NO_FULL_TYPE", CategoryArena)

	// E_PROTECTED_BODY_DUPLICATE indicates a protected type body has already
	// been analyzed for this protected type.
	E_PROTECTED_BODY_DUPLICATE = code("E_PROTECTED_BODY_DUPLICATE", CategoryArena)

	// E_PROTECTED_BODY_MISSING indicates a protected type never received a
	// matching body within the design unit.
	E_PROTECTED_BODY_MISSING = code("E_PROTECTED_BODY_MISSING", CategoryArena)
)

// Scope/region codes.
var (
	// E_DUPLICATE_DECL indicates a non-overloadable designator is declared
	// twice in the same region, or an overloadable designator collides on
	// an identical signature key.
	E_DUPLICATE_DECL = code("E_DUPLICATE_DECL", CategoryScope)

	// E_NOT_DECLARED indicates a name could not be resolved in any enclosing
	// region.
	E_NOT_DECLARED = code("E_NOT_DECLARED", CategoryScope)

	// E_SIGNATURE_REQUIRED indicates an alias of an overloaded name omitted
	// the required disambiguating signature.
	E_SIGNATURE_REQUIRED = code("E_SIGNATURE_REQUIRED", CategoryScope)

	// E_NO_SUCH_SIGNATURE indicates no overloaded entity matches the
	// requested signature key.
	E_NO_SUCH_SIGNATURE = code("E_NO_SUCH_SIGNATURE", CategoryScope)
)

// Type-model codes.
var (
	// E_TYPE_MISMATCH indicates an expression's type does not match a
	// required target type.
	E_TYPE_MISMATCH = code("E_TYPE_MISMATCH", CategoryType)

	// E_CONSTRAINT_SHAPE indicates a subtype constraint's shape does not
	// match its base type's shape (wrong index count, non-scalar range, ...).
	E_CONSTRAINT_SHAPE = code("E_CONSTRAINT_SHAPE", CategoryType)

	// E_INDEX_COUNT indicates too few or too many index constraints for an
	// array subtype.
	E_INDEX_COUNT = code("E_INDEX_COUNT", CategoryType)

	// E_NO_SUCH_ELEMENT indicates a record element name does not exist in
	// the record's element region.
	E_NO_SUCH_ELEMENT = code("E_NO_SUCH_ELEMENT", CategoryType)

	// E_SECONDARY_UNIT_BASE indicates a physical type's secondary unit does
	// not share the primary unit's base type, or its multiplier overflows.
	E_SECONDARY_UNIT_BASE = code("E_SECONDARY_UNIT_BASE", CategoryType)

	// E_INTEGER_LITERAL_OVERFLOW indicates a universal-integer literal's
	// value does not fit the sized integer type it is being narrowed to.
	E_INTEGER_LITERAL_OVERFLOW = code("E_INTEGER_LITERAL_OVERFLOW", CategoryType)
)

// Declarative-analysis codes.
var (
	// E_ILLEGAL_ALIAS indicates an attempt to alias a Library, Design, or
	// Expression resolved-name class.
	E_ILLEGAL_ALIAS = code("E_ILLEGAL_ALIAS", CategoryDeclare)

	// E_FINAL_ALIAS_UNSUPPORTED is the placeholder diagnostic for attempts
	// to alias a ResolvedName of class Final (unimplemented per spec §9).
	E_FINAL_ALIAS_UNSUPPORTED = code("E_FINAL_ALIAS_UNSUPPORTED", CategoryDeclare)

	// E_GENERIC_MAP_ACTUAL indicates an invalid actual in a generic map
	// association (wrong resolved-name class for the formal's kind).
	E_GENERIC_MAP_ACTUAL = code("E_GENERIC_MAP_ACTUAL", CategoryDeclare)

	// E_GENERIC_FORMAL_NOT_FOUND indicates a named generic-map association
	// names a formal that does not exist on the uninstantiated package.
	E_GENERIC_FORMAL_NOT_FOUND = code("E_GENERIC_FORMAL_NOT_FOUND", CategoryDeclare)

	// E_BITSTRING_LENGTH indicates a bit-string literal's length does not
	// match the locked length of its target array subtype.
	E_BITSTRING_LENGTH = code("E_BITSTRING_LENGTH", CategoryDeclare)
)

// Expression-typer codes.
var (
	// E_NO_MATCH indicates overload resolution found no candidate for a
	// designator (operator, subprogram, or literal).
	E_NO_MATCH = code("E_NO_MATCH", CategoryExpr)

	// E_AMBIGUOUS indicates overload resolution could not narrow a
	// designator to a single candidate.
	E_AMBIGUOUS = code("E_AMBIGUOUS", CategoryExpr)

	// E_NOT_BOOLEAN indicates a condition expression is neither boolean nor
	// an unambiguous type with a defined "??" implicit operator.
	E_NOT_BOOLEAN = code("E_NOT_BOOLEAN", CategoryExpr)

	// E_NOT_INTEGER indicates an expression required to classify as any
	// integer type does not.
	E_NOT_INTEGER = code("E_NOT_INTEGER", CategoryExpr)

	// E_AGGREGATE_SHAPE indicates an aggregate's choices do not match its
	// target type's shape (record vs array, wrong element kind).
	E_AGGREGATE_SHAPE = code("E_AGGREGATE_SHAPE", CategoryExpr)
)

// Sequential-analysis codes.
var (
	// E_ILLEGAL_RETURN indicates a return statement outside of a Function
	// root, or a valued return inside a Procedure root.
	E_ILLEGAL_RETURN = code("E_ILLEGAL_RETURN", CategorySequential)

	// E_ILLEGAL_WAIT indicates a wait statement used where the sequential
	// root forbids it.
	E_ILLEGAL_WAIT = code("E_ILLEGAL_WAIT", CategorySequential)

	// E_ILLEGAL_EXIT indicates an exit/next statement outside of a loop.
	E_ILLEGAL_EXIT = code("E_ILLEGAL_EXIT", CategorySequential)
)

// Package-instantiation codes.
var (
	// E_INSTANTIATE_FAILED indicates generic package instantiation failed;
	// attached with a related location at the uninstantiated declaration.
	E_INSTANTIATE_FAILED = code("E_INSTANTIATE_FAILED", CategoryInstantiate)

	// E_NOT_A_TYPE indicates map_type_ent's sanity check failed: the actual
	// bound to a type generic did not resolve to a type entity.
	E_NOT_A_TYPE = code("E_NOT_A_TYPE", CategoryInstantiate)
)

// allCodes contains all defined codes for AllCodes() and uniqueness verification.
var allCodes = []Code{
	// Sentinel
	E_LIMIT_REACHED,
	E_INTERNAL,
	// Arena
	E_INCOMPLETE_NO_FULL_TYPE,
	E_PROTECTED_BODY_DUPLICATE,
	E_PROTECTED_BODY_MISSING,
	// Scope
	E_DUPLICATE_DECL,
	E_NOT_DECLARED,
	E_SIGNATURE_REQUIRED,
	E_NO_SUCH_SIGNATURE,
	// Type
	E_TYPE_MISMATCH,
	E_CONSTRAINT_SHAPE,
	E_INDEX_COUNT,
	E_NO_SUCH_ELEMENT,
	E_SECONDARY_UNIT_BASE,
	E_INTEGER_LITERAL_OVERFLOW,
	// Declare
	E_ILLEGAL_ALIAS,
	E_FINAL_ALIAS_UNSUPPORTED,
	E_GENERIC_MAP_ACTUAL,
	E_GENERIC_FORMAL_NOT_FOUND,
	E_BITSTRING_LENGTH,
	// Expr
	E_NO_MATCH,
	E_AMBIGUOUS,
	E_NOT_BOOLEAN,
	E_NOT_INTEGER,
	E_AGGREGATE_SHAPE,
	// Sequential
	E_ILLEGAL_RETURN,
	E_ILLEGAL_WAIT,
	E_ILLEGAL_EXIT,
	// Instantiate
	E_INSTANTIATE_FAILED,
	E_NOT_A_TYPE,
}

// AllCodes returns all defined codes.
//
// This function is useful for tooling and testing. The returned slice is a
// copy; modifications do not affect the original.
func AllCodes() []Code {
	result := make([]Code, len(allCodes))
	copy(result, allCodes)
	return result
}

// CodesByCategory returns codes in the given category.
//
// The returned slice is a new allocation; modifications do not affect
// internal state.
func CodesByCategory(cat CodeCategory) []Code {
	var result []Code
	for _, c := range allCodes {
		if c.cat == cat {
			result = append(result, c)
		}
	}
	return result
}
