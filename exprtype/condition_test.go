package exprtype

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vhdlsem/ast"
	"vhdlsem/sem"
)

func TestBooleanExpr_Boolean(t *testing.T) {
	f := newFixture()
	f.define("rst", sem.ObjectKind{Subtype: sem.Subtype{TypeMark: f.predef.Boolean()}})
	c := f.collector()

	res := f.a.BooleanExpr(f.scope, nameExpr("rst"), c)

	require.True(t, res.IsOk())
	assert.True(t, sem.TypeEqual(res.Value(), f.predef.Boolean()))
}

func TestBooleanExpr_NonBooleanWithoutConditionOperator(t *testing.T) {
	f := newFixture()
	f.define("width", sem.ObjectKind{Subtype: sem.Subtype{TypeMark: f.integer}})
	c := f.collector()

	res := f.a.BooleanExpr(f.scope, nameExpr("width"), c)

	assert.False(t, res.IsOk())
}

func TestBooleanExpr_ConditionOperatorType(t *testing.T) {
	f := newFixture()
	f.define("sig", sem.ObjectKind{Subtype: sem.Subtype{TypeMark: f.integer}})
	boolRet := f.predef.Boolean()
	sig := sem.Signature{
		Params: []sem.Ent{f.arena.Explicit(sem.NewSimpleDesignator("x", false), sem.ObjectKind{Subtype: sem.Subtype{TypeMark: f.integer}}, testPos())},
		Return: boolRet,
		HasRet: true,
	}
	cond := f.arena.Implicit(f.integer, sem.NewOperatorDesignator("??"), sem.OverloadedKind{What: sem.OverloadSubprogram, Signature: sig}, testPos())
	f.scope.Add(cond)
	c := f.collector()

	res := f.a.BooleanExpr(f.scope, nameExpr("sig"), c)

	require.True(t, res.IsOk())
	assert.True(t, sem.TypeEqual(res.Value(), f.integer), "want the integer-typed condition value")
}

func TestIntegerExpr_IntegerType(t *testing.T) {
	f := newFixture()
	c := f.collector()

	res := f.a.IntegerExpr(f.scope, &ast.IntegerLiteral{Pos: testPos(), Text: "1"}, c)

	require.True(t, res.IsOk())
	assert.True(t, sem.IsAnyInteger(res.Value()))
}

func TestIntegerExpr_NonInteger(t *testing.T) {
	f := newFixture()
	f.define("en", sem.ObjectKind{Subtype: sem.Subtype{TypeMark: f.predef.Boolean()}})
	c := f.collector()

	res := f.a.IntegerExpr(f.scope, nameExpr("en"), c)

	assert.False(t, res.IsOk())
}
