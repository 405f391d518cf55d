package ast

import "vhdlsem/sem"

// TypeDef is the sealed interface implemented by each type-definition
// shape a TypeDecl may carry (§4.D step 3, one branch per sem.Type
// variant).
type TypeDef interface {
	isTypeDef()
}

// EnumTypeDef lists the ordered literal designators of an enumeration.
type EnumTypeDef struct {
	Literals []sem.Designator
}

func (*EnumTypeDef) isTypeDef() {}

// NumericTypeDef constrains a scalar integer or real range; the
// declarative analyzer classifies the range's low bound to pick which of
// the two this is, falling back to Real when the bound cannot be typed
// (§4.D "Numeric").
type NumericTypeDef struct {
	Range RangeExpr
	Real  bool // false => Integer, true => Real
}

func (*NumericTypeDef) isTypeDef() {}

// PhysicalUnit names one secondary unit and its multiplier expression
// relative to the type's primary unit.
type PhysicalUnit struct {
	Name       sem.Designator
	Multiplier Expr // nil for the primary unit itself
	OfUnit     sem.Designator
}

// PhysicalTypeDef constrains a range like NumericTypeDef, plus declares a
// primary unit name and zero or more secondary units.
type PhysicalTypeDef struct {
	Range   RangeExpr
	Primary sem.Designator
	Units   []PhysicalUnit
}

func (*PhysicalTypeDef) isTypeDef() {}

// ArrayIndexDef is one dimension of an array type definition: either an
// unconstrained index given as "type_mark range <>", or a constrained
// index given as an explicit discrete range.
type ArrayIndexDef struct {
	IndexTypeMark *Name // set when unconstrained
	Range         *DiscreteRange
}

// ArrayTypeDef is a (possibly multi-dimensional) array type definition.
type ArrayTypeDef struct {
	Indexes []ArrayIndexDef
	Elem    SubtypeIndication
}

func (*ArrayTypeDef) isTypeDef() {}

// RecordElementDecl is one element declaration inside a record type
// definition.
type RecordElementDecl struct {
	Names      []sem.Designator
	Refs       []sem.EntityRef
	Indication SubtypeIndication
}

// RecordTypeDef is an ordered list of element declarations.
type RecordTypeDef struct {
	Elements []RecordElementDecl
}

func (*RecordTypeDef) isTypeDef() {}

// AccessTypeDef designates values of the given subtype via a pointer-like
// reference.
type AccessTypeDef struct {
	Designated SubtypeIndication
}

func (*AccessTypeDef) isTypeDef() {}

// FileTypeDef is parameterized by its element type.
type FileTypeDef struct {
	Elem Name
}

func (*FileTypeDef) isTypeDef() {}

// ProtectedTypeDef declares the subprogram members of a protected type;
// only subprogram declarations are legal members (§4.D "Protected").
type ProtectedTypeDef struct {
	Members []*SubprogramDecl
}

func (*ProtectedTypeDef) isTypeDef() {}

// ProtectedBodyDef is the body of a previously-declared protected type,
// looked up by simple name (§4.D "Protected body").
type ProtectedBodyDef struct {
	Of           sem.Designator
	Declarations []Decl
}

func (*ProtectedBodyDef) isTypeDef() {}

// AliasTypeDef marks a type declared as an alias of another type; used
// only where the grammar writes a type definition as a bare type mark
// (distinct from AliasDecl, which aliases a name at the declaration level).
type AliasTypeDef struct {
	Of Name
}

func (*AliasTypeDef) isTypeDef() {}
