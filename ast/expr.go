package ast

import (
	"vhdlsem/location"
	"vhdlsem/sem"
)

// Expr is the sealed interface implemented by each expression node shape.
// The expression typer (exprtype) switches on the concrete type; it never
// needs a virtual Type() method since typing is bidirectional and
// context-dependent (§4.E), not a property of the node alone.
type Expr interface {
	isExpr()
	Span() location.Span
}

// IntegerLiteral is a decimal or based integer literal.
type IntegerLiteral struct {
	Pos  location.Span
	Text string
}

func (e *IntegerLiteral) isExpr()                  {}
func (e *IntegerLiteral) Span() location.Span      { return e.Pos }

// RealLiteral is a decimal or based real literal.
type RealLiteral struct {
	Pos  location.Span
	Text string
}

func (e *RealLiteral) isExpr()             {}
func (e *RealLiteral) Span() location.Span { return e.Pos }

// PhysicalLiteral is a numeric literal followed by a unit name, e.g. "10 ns".
type PhysicalLiteral struct {
	Pos       location.Span
	Magnitude string
	Unit      Name
}

func (e *PhysicalLiteral) isExpr()             {}
func (e *PhysicalLiteral) Span() location.Span { return e.Pos }

// StringLiteral is a quoted string literal.
type StringLiteral struct {
	Pos   location.Span
	Value string
}

func (e *StringLiteral) isExpr()             {}
func (e *StringLiteral) Span() location.Span { return e.Pos }

// BitStringLiteral is a based (b/o/x) bit-string literal; Length is the
// number of element positions the literal expands to. The expression typer
// does not compare Length against the target's array constraint.
type BitStringLiteral struct {
	Pos    location.Span
	Base   byte // 'b', 'o', or 'x'
	Digits string
	Length int
}

func (e *BitStringLiteral) isExpr()             {}
func (e *BitStringLiteral) Span() location.Span { return e.Pos }

// CharacterLiteral is a single-quoted character literal, e.g. '0'.
type CharacterLiteral struct {
	Pos  location.Span
	Char string
	Ref  sem.EntityRef // resolved enum-literal entity, written once
}

func (e *CharacterLiteral) isExpr()             {}
func (e *CharacterLiteral) Span() location.Span { return e.Pos }

// NullLiteral is the access-type "null" literal.
type NullLiteral struct {
	Pos location.Span
}

func (e *NullLiteral) isExpr()             {}
func (e *NullLiteral) Span() location.Span { return e.Pos }

// NameExpr wraps a Name used in expression position (an object reference,
// a nullary overloaded reference, or the start of an indexed/call name
// whose shape is only disambiguated once the base is resolved).
type NameExpr struct {
	Pos  location.Span
	Name Name
}

func (e *NameExpr) isExpr()             {}
func (e *NameExpr) Span() location.Span { return e.Pos }

// OperatorCall is a unary or binary operator application. Op is the
// operator symbol designator ("+", "and", "abs", ...); Ref is written once
// the overload-resolution pipeline (§4.E) picks a single candidate.
type OperatorCall struct {
	Pos      location.Span
	Op       sem.Designator
	Operands []Expr
	Ref      sem.EntityRef
}

func (e *OperatorCall) isExpr()             {}
func (e *OperatorCall) Span() location.Span { return e.Pos }

// QualifiedExpr is `type_mark'(operand)`.
type QualifiedExpr struct {
	Pos      location.Span
	TypeMark Name
	Operand  Expr
}

func (e *QualifiedExpr) isExpr()             {}
func (e *QualifiedExpr) Span() location.Span { return e.Pos }

// AggregateChoice is one element of an aggregate: a positional value, a
// named association (simple-name or discrete-range choice), or "others".
type AggregateChoice struct {
	Element sem.Designator // set for a named record-element association
	Range   *DiscreteRange // set for a named/indexed array-element association
	Others  bool
	Value   Expr
}

// Aggregate is a parenthesized aggregate; classification as record-shaped,
// array-shaped, or unknown-target happens in the expression typer, not here.
type Aggregate struct {
	Pos     location.Span
	Choices []AggregateChoice
}

func (e *Aggregate) isExpr()             {}
func (e *Aggregate) Span() location.Span { return e.Pos }
