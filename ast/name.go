package ast

import (
	"vhdlsem/location"
	"vhdlsem/sem"
)

// Name is a (possibly compound) reference to a declared entity: a simple
// identifier, optionally followed by selected, indexed, slice, or
// function-call suffixes. The core resolves only the base identifier
// through the external name resolver (§6); suffixes beyond that are left
// to the component that asked for the name (e.g. the package instantiator
// resolves a type-generic actual's base name and does not apply a
// trailing constraint suffix).
type Name struct {
	Pos       location.Span
	Base      sem.Designator
	Ref       sem.EntityRef // resolved entity for Base, written once
	Suffixes  []NameSuffix
}

// NameSuffix is one compound-name suffix: selected ".x", indexed "(i)",
// slice "(a to b)", or a parenthesized association list that is ambiguous
// between an indexed name and a function/type-conversion call until the
// base is resolved.
type NameSuffix struct {
	Kind       SuffixKind
	Selected   sem.Designator // SuffixSelected
	Associations []Association // SuffixCall
}

// SuffixKind distinguishes a Name's trailing suffix shapes.
type SuffixKind int

const (
	SuffixSelected SuffixKind = iota
	SuffixCall
)

// Association is one element of a parenthesized association list: a
// generic map, port map, aggregate, or call argument list. Formal is nil
// for a positional association.
type Association struct {
	Formal *Name
	Actual Expr
}

// DiscreteRange is either a subtype indication or an explicit range,
// wherever the grammar admits both (array index constraints, for-loop
// ranges, case choices).
type DiscreteRange struct {
	Subtype *SubtypeIndication
	Range   *RangeExpr
}

// RangeExpr is an explicit "a to b" / "a downto b" range.
type RangeExpr struct {
	Pos        location.Span
	Low, High  Expr
	Descending bool
}

// SubtypeIndication is a type mark plus an optional constraint, as written
// in source (object declarations, subtype declarations, interface
// formals, array element types, ...).
type SubtypeIndication struct {
	Pos        location.Span
	TypeMark   Name
	Constraint *ConstraintAST
}

// ConstraintAST is the unresolved form of a subtype constraint: either a
// scalar range, a list of index ranges, or a record element constraint
// list. sem.ValidateConstraintShape checks the resolved shape once the
// declarative analyzer has classified it.
type ConstraintAST struct {
	Range   *RangeExpr
	Indexes []DiscreteRange
	Elements []RecordElementConstraint
}

// RecordElementConstraint names one constrained record element.
type RecordElementConstraint struct {
	Element sem.Designator
	Nested  *ConstraintAST
}
