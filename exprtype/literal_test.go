package exprtype

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vhdlsem/ast"
	"vhdlsem/diag"
	"vhdlsem/sem"
)

func TestTypeUnknown_IntegerLiteral(t *testing.T) {
	f := newFixture()
	c := f.collector()
	lit := &ast.IntegerLiteral{Pos: testPos(), Text: "42"}

	res := f.a.TypeUnknown(f.scope, lit, c)

	require.True(t, res.IsOk())
	assert.True(t, sem.TypeEqual(res.Value(), f.predef.UniversalInteger()))
	assert.False(t, c.Result().HasErrors())
}

func TestTypeUnknown_RealLiteral(t *testing.T) {
	f := newFixture()
	c := f.collector()
	lit := &ast.RealLiteral{Pos: testPos(), Text: "3.14"}

	res := f.a.TypeUnknown(f.scope, lit, c)

	require.True(t, res.IsOk())
	assert.True(t, sem.TypeEqual(res.Value(), f.predef.UniversalReal()))
}

func TestTypeAgainst_IntegerLiteral_CastsToConcreteInteger(t *testing.T) {
	f := newFixture()
	c := f.collector()
	lit := &ast.IntegerLiteral{Pos: testPos(), Text: "7"}

	res := f.a.TypeAgainst(f.scope, lit, sem.Subtype{TypeMark: f.integer}, c)

	require.True(t, res.IsOk())
	assert.True(t, sem.TypeEqual(res.Value(), f.integer))
}

func TestTypeAgainst_IntegerLiteral_RejectsBoolean(t *testing.T) {
	f := newFixture()
	c := f.collector()
	lit := &ast.IntegerLiteral{Pos: testPos(), Text: "7"}

	res := f.a.TypeAgainst(f.scope, lit, sem.Subtype{TypeMark: f.predef.Boolean()}, c)

	assert.False(t, res.IsOk())
	assert.True(t, c.Result().HasErrors())
}

func TestTypeAgainst_IntegerLiteral_OverflowsTargetRange(t *testing.T) {
	f := newFixture()
	c := f.collector()
	lit := &ast.IntegerLiteral{Pos: testPos(), Text: "99999999999"}

	res := f.a.TypeAgainst(f.scope, lit, sem.Subtype{TypeMark: f.integer}, c)

	require.True(t, res.IsOk(), "overflow is a diagnostic, not a typing failure")
	var found bool
	for issue := range c.Result().Errors() {
		if issue.Code() == diag.E_INTEGER_LITERAL_OVERFLOW {
			found = true
		}
	}
	assert.True(t, found)
}

func TestTypeUnknown_StringLiteral_IsAmbiguousWithoutTarget(t *testing.T) {
	f := newFixture()
	c := f.collector()
	lit := &ast.StringLiteral{Pos: testPos(), Value: "hello"}

	res := f.a.TypeUnknown(f.scope, lit, c)

	require.True(t, res.IsOk())
	assert.True(t, res.Value().IsZero(), "a string literal has no single concrete type until a target narrows it")
}

func TestTypeAgainst_StringLiteral_MatchesStringArray(t *testing.T) {
	f := newFixture()
	c := f.collector()
	lit := &ast.StringLiteral{Pos: testPos(), Value: "hello"}

	res := f.a.TypeAgainst(f.scope, lit, sem.Subtype{TypeMark: f.predef.String()}, c)

	require.True(t, res.IsOk())
	assert.True(t, sem.TypeEqual(res.Value(), f.predef.String()))
}

func TestTypeAgainst_StringLiteral_RejectsInteger(t *testing.T) {
	f := newFixture()
	c := f.collector()
	lit := &ast.StringLiteral{Pos: testPos(), Value: "hello"}

	res := f.a.TypeAgainst(f.scope, lit, sem.Subtype{TypeMark: f.integer}, c)

	assert.False(t, res.IsOk())
}

func TestTypeAgainst_NullLiteral_RequiresAccessType(t *testing.T) {
	f := newFixture()
	c := f.collector()
	lit := &ast.NullLiteral{Pos: testPos()}

	res := f.a.TypeAgainst(f.scope, lit, sem.Subtype{TypeMark: f.integer}, c)
	assert.False(t, res.IsOk())

	access := f.defineType("line", sem.TypeKind{Type: &sem.AccessType{Designated: sem.Subtype{TypeMark: f.predef.String()}}})
	c2 := f.collector()
	res2 := f.a.TypeAgainst(f.scope, lit, sem.Subtype{TypeMark: access}, c2)
	assert.True(t, res2.IsOk())
}

func TestClassifyPhysicalLiteral(t *testing.T) {
	f := newFixture()
	c := f.collector()
	lit := &ast.PhysicalLiteral{Pos: testPos(), Magnitude: "10", Unit: name("ns")}

	res := f.a.TypeUnknown(f.scope, lit, c)

	require.True(t, res.IsOk())
	assert.True(t, sem.TypeEqual(res.Value(), f.predef.Time()))
	id, written := lit.Unit.Ref.Get()
	assert.True(t, written)
	assert.False(t, id.IsZero())
}

func TestClassifyPhysicalLiteral_UnknownUnit(t *testing.T) {
	f := newFixture()
	c := f.collector()
	lit := &ast.PhysicalLiteral{Pos: testPos(), Magnitude: "10", Unit: name("furlongs")}

	res := f.a.TypeUnknown(f.scope, lit, c)

	assert.False(t, res.IsOk())
	assert.True(t, c.Result().HasErrors())
}

func TestClassifyCharacterLiteral(t *testing.T) {
	f := newFixture()
	charT := f.defineEnum("my_char", sem.NewCharacterDesignator("'a'"), sem.NewCharacterDesignator("'b'"))
	c := f.collector()
	lit := &ast.CharacterLiteral{Pos: testPos(), Char: "'a'"}

	res := f.a.TypeUnknown(f.scope, lit, c)

	require.True(t, res.IsOk())
	assert.True(t, sem.TypeEqual(res.Value(), charT))
	_, written := lit.Ref.Get()
	assert.True(t, written)
}

func TestClassifyCharacterLiteral_Undeclared(t *testing.T) {
	f := newFixture()
	c := f.collector()
	lit := &ast.CharacterLiteral{Pos: testPos(), Char: "'z'"}

	res := f.a.TypeUnknown(f.scope, lit, c)

	assert.False(t, res.IsOk())
}
