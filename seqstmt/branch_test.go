package seqstmt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vhdlsem/ast"
	"vhdlsem/diag"
	"vhdlsem/sem"
)

func TestIf_ConditionsTypedAsBoolean_RecursesIntoBranches(t *testing.T) {
	f := newFixture()
	c := f.collector()
	f.define("cond", sem.ObjectKind{Class: sem.ClassConstant, Subtype: sem.Subtype{TypeMark: f.boolean}})

	root := ast.SequentialRoot{Kind: ast.SequentialProcess}
	stmt := &ast.IfStmt{
		Pos: testPos(),
		Branches: []ast.IfBranch{
			{Condition: nameExpr("cond"), Body: []ast.Stmt{&ast.NullStmt{Pos: testPos()}}},
			{Body: []ast.Stmt{&ast.ExitStmt{Pos: testPos()}}}, // trailing else, no condition
		},
	}
	res := f.a.AnalyzeSequentialPart(f.scope, root, []ast.Stmt{
		&ast.LoopStmt{Pos: testPos(), Kind: ast.LoopPlain, Body: []ast.Stmt{stmt}},
	}, c)

	require.True(t, res.IsOk())
	assert.False(t, c.HasErrors())
}

func TestCase_ChoiceAgainstScrutineeType_UndeclaredChoice_Diagnoses(t *testing.T) {
	f := newFixture()
	c := f.collector()
	f.define("sel", sem.ObjectKind{Class: sem.ClassConstant, Subtype: sem.Subtype{TypeMark: f.integer}})

	root := ast.SequentialRoot{Kind: ast.SequentialProcess}
	stmt := &ast.CaseStmt{
		Pos:       testPos(),
		Scrutinee: nameExpr("sel"),
		Alternatives: []ast.CaseAlternative{
			{
				Choices: []ast.AggregateChoice{{Value: &ast.NameExpr{Pos: testPos(), Name: name("nope")}}},
				Body:    []ast.Stmt{&ast.NullStmt{Pos: testPos()}},
			},
			{
				Choices: []ast.AggregateChoice{{Others: true}},
				Body:    []ast.Stmt{&ast.NullStmt{Pos: testPos()}},
			},
		},
	}
	res := f.a.AnalyzeSequentialPart(f.scope, root, []ast.Stmt{stmt}, c)

	require.True(t, res.IsOk())
	assert.True(t, findCode(c, diag.E_NOT_DECLARED))
}

func TestWhileLoop_ConditionTyped(t *testing.T) {
	f := newFixture()
	c := f.collector()
	f.define("cond", sem.ObjectKind{Class: sem.ClassConstant, Subtype: sem.Subtype{TypeMark: f.boolean}})

	root := ast.SequentialRoot{Kind: ast.SequentialProcess}
	stmt := &ast.LoopStmt{
		Pos:       testPos(),
		Kind:      ast.LoopWhile,
		Condition: nameExpr("cond"),
		Body:      []ast.Stmt{&ast.NullStmt{Pos: testPos()}},
	}
	res := f.a.AnalyzeSequentialPart(f.scope, root, []ast.Stmt{stmt}, c)

	require.True(t, res.IsOk())
	assert.False(t, c.HasErrors())
}

func TestForLoop_NamedSubtype_ParameterTyped(t *testing.T) {
	f := newFixture()
	c := f.collector()

	root := ast.SequentialRoot{Kind: ast.SequentialProcess}
	stmt := &ast.LoopStmt{
		Pos:      testPos(),
		Kind:     ast.LoopFor,
		ForParam: sem.NewSimpleDesignator("i", false),
		ForRange: &ast.DiscreteRange{Subtype: &ast.SubtypeIndication{Pos: testPos(), TypeMark: name("integer")}},
		Body:     []ast.Stmt{&ast.NullStmt{Pos: testPos()}},
	}
	res := f.a.AnalyzeSequentialPart(f.scope, root, []ast.Stmt{stmt}, c)

	require.True(t, res.IsOk())
	assert.False(t, c.HasErrors())
	id, ok := stmt.ForRef.Get()
	require.True(t, ok)
	assert.NotEqual(t, sem.EntityID{}, id)
}

func TestForLoop_ExplicitRange_LowBoundTypesHigh(t *testing.T) {
	f := newFixture()
	c := f.collector()

	root := ast.SequentialRoot{Kind: ast.SequentialProcess}
	stmt := &ast.LoopStmt{
		Pos:      testPos(),
		Kind:     ast.LoopFor,
		ForParam: sem.NewSimpleDesignator("i", false),
		ForRange: &ast.DiscreteRange{Range: &ast.RangeExpr{Pos: testPos(), Low: nameExpr("lo"), High: nameExpr("hi")}},
		Body:     []ast.Stmt{&ast.NullStmt{Pos: testPos()}},
	}
	f.define("lo", sem.ObjectKind{Class: sem.ClassConstant, Subtype: sem.Subtype{TypeMark: f.integer}})
	f.define("hi", sem.ObjectKind{Class: sem.ClassConstant, Subtype: sem.Subtype{TypeMark: f.integer}})

	res := f.a.AnalyzeSequentialPart(f.scope, root, []ast.Stmt{stmt}, c)

	require.True(t, res.IsOk())
	assert.False(t, c.HasErrors())
}
