package sem

import "vhdlsem/location"

// Type is the sealed interface implemented by each Type variant (§3).
type Type interface {
	isType()
}

// UniversalClass distinguishes the two universal numeric types.
type UniversalClass int

const (
	UniversalInteger UniversalClass = iota
	UniversalReal
)

// IntegerType is a discrete numeric type with an integer range.
type IntegerType struct {
	Range Range
}

func (*IntegerType) isType() {}

// RealType is a floating numeric type with a real range.
type RealType struct {
	Range Range
}

func (*RealType) isType() {}

// PhysicalType is a numeric type whose values carry a unit; Primary is the
// base unit, Secondary are the named multiples (e.g. ns, us, ms for time).
type PhysicalType struct {
	Range     Range
	Primary   Ent
	Secondary []Ent
}

func (*PhysicalType) isType() {}

// UniversalType is the abstract numeric type of an integer/real literal,
// implicitly convertible to any concrete type of the matching class.
type UniversalType struct {
	Class UniversalClass
}

func (*UniversalType) isType() {}

// EnumType is an ordered enumeration of literal designators; each literal
// is also represented as a nullary Overloaded entity among the type's
// implicit children.
type EnumType struct {
	Literals []Designator
}

func (*EnumType) isType() {}

// ArrayIndex is one dimension of an array type: an optional base-type
// entity (nil for an unconstrained index subtype given only as a type
// mark with range <>).
type ArrayIndex struct {
	BaseType Ent // may be the zero Ent if unconstrained
}

// ArrayType is a (possibly multi-dimensional) array type.
type ArrayType struct {
	Indexes []ArrayIndex
	Elem    Ent
}

func (*ArrayType) isType() {}

// RecordType is an ordered, named region of element entities.
type RecordType struct {
	Elements *Region
}

func (*RecordType) isType() {}

// AccessType is a pointer-like type designating values of Designated.
type AccessType struct {
	Designated Subtype
}

func (*AccessType) isType() {}

// FileType is a file type parameterized by its element type.
type FileType struct {
	Elem Ent
}

func (*FileType) isType() {}

// SubtypeType restricts a base type with a constraint (§3: pair of
// type-mark and resolved constraints).
type SubtypeType struct {
	Of         Ent
	Constraint Constraint
}

func (*SubtypeType) isType() {}

// AliasType is a type-class alias: the aliased designator denotes the
// same type entity under a new name.
type AliasType struct {
	Of Ent
}

func (*AliasType) isType() {}

// ProtectedType is a protected type: a set of subprograms with mutually
// exclusive access to shared state, declared separately from its body.
//
// Region and BodyPos/HasBody are the two documented post-publish mutations
// (§3 invariant 1, §5): Region is set exactly once after the member region
// closes; HasBody/BodyPos are set exactly once when the matching body is
// analyzed. Both fields live directly on this (pointer-shaped) Type value,
// so mutating them in place is observed by every Ent sharing this type.
type ProtectedType struct {
	Region  *Region
	HasBody bool
	BodyPos location.Span
}

func (*ProtectedType) isType() {}

// IncompleteType is a forward declaration of a type whose full definition
// appears later in the same declarative part (§4.D invariant 4).
type IncompleteType struct{}

func (*IncompleteType) isType() {}

// InterfaceType marks a generic type formal inside an uninstantiated
// package; it has no structure of its own until instantiation substitutes
// an actual type for it.
type InterfaceType struct{}

func (*InterfaceType) isType() {}

// --- Classification predicates (§4.C) ---

// IsScalar reports whether e's base type is integer, real, physical,
// universal, or an enumeration.
func IsScalar(e Ent) bool {
	switch baseTypeOf(e).(type) {
	case *IntegerType, *RealType, *PhysicalType, *UniversalType, *EnumType:
		return true
	default:
		return false
	}
}

// IsAnyInteger reports whether e's base type is Integer or universal-integer.
func IsAnyInteger(e Ent) bool {
	switch t := baseTypeOf(e).(type) {
	case *IntegerType:
		return true
	case *UniversalType:
		return t.Class == UniversalInteger
	default:
		return false
	}
}

// IsAnyReal reports whether e's base type is Real or universal-real.
func IsAnyReal(e Ent) bool {
	switch t := baseTypeOf(e).(type) {
	case *RealType:
		return true
	case *UniversalType:
		return t.Class == UniversalReal
	default:
		return false
	}
}

// IsComposite reports whether e's base type is an array or record.
func IsComposite(e Ent) bool {
	switch baseTypeOf(e).(type) {
	case *ArrayType, *RecordType:
		return true
	default:
		return false
	}
}

// IsAccess reports whether e's base type is an access type.
func IsAccess(e Ent) bool {
	_, ok := baseTypeOf(e).(*AccessType)
	return ok
}

// IsCompatibleWithStringLiteral reports whether e's base type can receive a
// string or bit-string literal: a one-dimensional array of an enumeration
// element type (the VHDL rule behind character/bit-string literals).
func IsCompatibleWithStringLiteral(e Ent) bool {
	arr, ok := baseTypeOf(e).(*ArrayType)
	if !ok || len(arr.Indexes) != 1 {
		return false
	}
	_, ok = baseTypeOf(arr.Elem).(*EnumType)
	return ok
}

// IsUniversalOf reports whether e is the universal type whose class
// contains other's classification (integer literals satisfy integer
// targets, real literals satisfy real targets).
func IsUniversalOf(e, other Ent) bool {
	u, ok := baseTypeOf(e).(*UniversalType)
	if !ok {
		return false
	}
	switch u.Class {
	case UniversalInteger:
		return IsAnyInteger(other)
	case UniversalReal:
		return IsAnyReal(other)
	default:
		return false
	}
}

// baseTypeOf extracts the Type payload of e's base-type entity, or nil if e
// does not carry a TypeKind.
func baseTypeOf(e Ent) Type {
	base := e.BaseType()
	if base.IsZero() {
		return nil
	}
	tk, ok := base.Kind().(TypeKind)
	if !ok {
		return nil
	}
	return tk.Type
}

// TypeEqual reports whether two type entities are equal by base-type
// identity (§4.C, §3 invariant 5 for signatures).
func TypeEqual(a, b Ent) bool {
	return a.BaseType().ID() == b.BaseType().ID()
}
