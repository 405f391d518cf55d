package seqstmt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vhdlsem/ast"
	"vhdlsem/diag"
	"vhdlsem/sem"
)

func TestWait_Process_SensitivityAndCondition_Resolved(t *testing.T) {
	f := newFixture()
	c := f.collector()
	f.define("clk", sem.ObjectKind{Class: sem.ClassSignal, Subtype: sem.Subtype{TypeMark: f.boolean}})

	sensitivity := name("clk")
	root := ast.SequentialRoot{Kind: ast.SequentialProcess}
	stmt := &ast.WaitStmt{
		Pos:         testPos(),
		Sensitivity: []ast.Name{sensitivity},
		Condition:   nameExpr("clk"),
	}
	res := f.a.AnalyzeSequentialPart(f.scope, root, []ast.Stmt{stmt}, c)

	require.True(t, res.IsOk())
	assert.False(t, c.HasErrors())
	named, ok := f.scope.Lookup(sem.NewSimpleDesignator("clk", false))
	require.True(t, ok)
	id, ok := stmt.Sensitivity[0].Ref.Get()
	require.True(t, ok)
	assert.Equal(t, named.Single().ID(), id)
}

func TestWait_UndeclaredSensitivityName_Diagnoses(t *testing.T) {
	f := newFixture()
	c := f.collector()

	root := ast.SequentialRoot{Kind: ast.SequentialProcess}
	stmt := &ast.WaitStmt{Pos: testPos(), Sensitivity: []ast.Name{name("nope")}}
	res := f.a.AnalyzeSequentialPart(f.scope, root, []ast.Stmt{stmt}, c)

	require.True(t, res.IsOk())
	assert.True(t, findCode(c, diag.E_NOT_DECLARED))
}

func TestWait_InsideFunction_Diagnoses(t *testing.T) {
	f := newFixture()
	c := f.collector()

	root := ast.SequentialRoot{Kind: ast.SequentialFunction, ReturnType: f.integer}
	res := f.a.AnalyzeSequentialPart(f.scope, root, []ast.Stmt{
		&ast.WaitStmt{Pos: testPos()},
	}, c)

	require.True(t, res.IsOk())
	assert.True(t, findCode(c, diag.E_ILLEGAL_WAIT))
}

func TestAssert_ConditionBoolean_MessageString_SeverityLevel(t *testing.T) {
	f := newFixture()
	c := f.collector()
	f.define("cond", sem.ObjectKind{Class: sem.ClassConstant, Subtype: sem.Subtype{TypeMark: f.boolean}})

	root := ast.SequentialRoot{Kind: ast.SequentialProcess}
	res := f.a.AnalyzeSequentialPart(f.scope, root, []ast.Stmt{
		&ast.AssertStmt{Pos: testPos(), Condition: nameExpr("cond")},
	}, c)

	require.True(t, res.IsOk())
	assert.False(t, c.HasErrors())
}

func TestReport_NoSeverity_OK(t *testing.T) {
	f := newFixture()
	c := f.collector()

	root := ast.SequentialRoot{Kind: ast.SequentialProcess}
	res := f.a.AnalyzeSequentialPart(f.scope, root, []ast.Stmt{
		&ast.ReportStmt{Pos: testPos()},
	}, c)

	require.True(t, res.IsOk())
	assert.False(t, c.HasErrors())
}
