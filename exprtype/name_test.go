package exprtype

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vhdlsem/sem"
)

func TestClassifyName_Object(t *testing.T) {
	f := newFixture()
	sig := f.define("clk", sem.ObjectKind{Subtype: sem.Subtype{TypeMark: f.predef.Boolean()}})
	c := f.collector()

	e := nameExpr("clk")
	res := f.a.TypeUnknown(f.scope, e, c)

	require.True(t, res.IsOk())
	assert.True(t, sem.TypeEqual(res.Value(), f.predef.Boolean()))
	id, written := e.Name.Ref.Get()
	assert.True(t, written, "expected Name.Ref to be written to the resolved object")
	assert.Equal(t, sig.ID(), id)
}

func TestClassifyName_NotDeclared(t *testing.T) {
	f := newFixture()
	c := f.collector()

	res := f.a.TypeUnknown(f.scope, nameExpr("nonesuch"), c)

	assert.False(t, res.IsOk())
	assert.True(t, c.HasErrors())
}

func TestClassifyName_TypeMark_IsNotAValue(t *testing.T) {
	f := newFixture()
	c := f.collector()

	res := f.a.TypeUnknown(f.scope, nameExpr("integer"), c)

	assert.False(t, res.IsOk())
}

func TestClassifyName_OverloadedNiladic_Unambiguous(t *testing.T) {
	f := newFixture()
	enumT := f.defineEnum("state_t", sem.NewSimpleDesignator("idle", false), sem.NewSimpleDesignator("busy", false))
	c := f.collector()

	e := nameExpr("idle")
	res := f.a.TypeUnknown(f.scope, e, c)

	require.True(t, res.IsOk())
	assert.True(t, sem.TypeEqual(res.Value(), enumT))
	_, written := e.Name.Ref.Get()
	assert.True(t, written, "expected Name.Ref to be written for the unambiguous enum literal")
}

func TestClassifyName_OverloadedNiladic_AmbiguousAcrossTypes(t *testing.T) {
	f := newFixture()
	f.defineEnum("a_t", sem.NewSimpleDesignator("ready", false))
	f.defineEnum("b_t", sem.NewSimpleDesignator("ready", false))
	c := f.collector()

	res := f.a.TypeUnknown(f.scope, nameExpr("ready"), c)

	assert.False(t, res.IsOk())
	assert.True(t, c.HasErrors())
}

func TestClassifyName_OverloadedNiladic_NarrowedByTarget(t *testing.T) {
	f := newFixture()
	aT := f.defineEnum("a_t", sem.NewSimpleDesignator("ready", false))
	f.defineEnum("b_t", sem.NewSimpleDesignator("ready", false))
	c := f.collector()

	e := nameExpr("ready")
	res := f.a.TypeAgainst(f.scope, e, sem.Subtype{TypeMark: aT}, c)

	require.True(t, res.IsOk())
	assert.True(t, sem.TypeEqual(res.Value(), aT))
	_, written := e.Name.Ref.Get()
	assert.True(t, written, "expected Name.Ref to be written once the target narrowed the candidate")
}

func TestClassifyName_DeferredConstant(t *testing.T) {
	f := newFixture()
	f.define("width", sem.DeferredConstantKind{Subtype: sem.Subtype{TypeMark: f.integer}})
	c := f.collector()

	res := f.a.TypeUnknown(f.scope, nameExpr("width"), c)

	require.True(t, res.IsOk())
	assert.True(t, sem.TypeEqual(res.Value(), f.integer))
}
