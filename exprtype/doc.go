// Package exprtype implements the expression typer (component E): two
// companion passes, forward typing (no known target) and backward typing
// (a known target subtype), sharing one recursive classifier so operator
// disambiguation can compute an operand's forward type before a target is
// available and then re-type it against a chosen formal once one is.
//
// Analyzer satisfies ast.ExprTyper; the declarative and sequential
// analyzers call it for every expression and subtype indication bound.
package exprtype
