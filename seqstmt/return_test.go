package seqstmt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vhdlsem/ast"
	"vhdlsem/diag"
	"vhdlsem/sem"
)

func findCode(c *diag.Collector, code diag.Code) bool {
	for issue := range c.Result().Errors() {
		if issue.Code() == code {
			return true
		}
	}
	return false
}

func TestReturn_Function_WithValue_TypesAgainstReturnType(t *testing.T) {
	f := newFixture()
	c := f.collector()
	f.define("x", sem.ObjectKind{Class: sem.ClassConstant, Subtype: sem.Subtype{TypeMark: f.integer}})

	root := ast.SequentialRoot{Kind: ast.SequentialFunction, ReturnType: f.integer}
	res := f.a.AnalyzeSequentialPart(f.scope, root, []ast.Stmt{
		&ast.ReturnStmt{Pos: testPos(), Value: nameExpr("x")},
	}, c)

	require.True(t, res.IsOk())
	assert.False(t, c.HasErrors())
}

func TestReturn_Function_NoValue_Diagnoses(t *testing.T) {
	f := newFixture()
	c := f.collector()

	root := ast.SequentialRoot{Kind: ast.SequentialFunction, ReturnType: f.integer}
	res := f.a.AnalyzeSequentialPart(f.scope, root, []ast.Stmt{
		&ast.ReturnStmt{Pos: testPos()},
	}, c)

	require.True(t, res.IsOk())
	assert.True(t, findCode(c, diag.E_ILLEGAL_RETURN))
}

func TestReturn_Procedure_WithValue_Diagnoses(t *testing.T) {
	f := newFixture()
	c := f.collector()

	root := ast.SequentialRoot{Kind: ast.SequentialProcedure}
	res := f.a.AnalyzeSequentialPart(f.scope, root, []ast.Stmt{
		&ast.ReturnStmt{Pos: testPos(), Value: nameExpr("x")},
	}, c)

	require.True(t, res.IsOk())
	assert.True(t, findCode(c, diag.E_ILLEGAL_RETURN))
}

func TestReturn_Procedure_NoValue_OK(t *testing.T) {
	f := newFixture()
	c := f.collector()

	root := ast.SequentialRoot{Kind: ast.SequentialProcedure}
	res := f.a.AnalyzeSequentialPart(f.scope, root, []ast.Stmt{
		&ast.ReturnStmt{Pos: testPos()},
	}, c)

	require.True(t, res.IsOk())
	assert.False(t, c.HasErrors())
}

func TestReturn_Process_Diagnoses(t *testing.T) {
	f := newFixture()
	c := f.collector()

	root := ast.SequentialRoot{Kind: ast.SequentialProcess}
	res := f.a.AnalyzeSequentialPart(f.scope, root, []ast.Stmt{
		&ast.ReturnStmt{Pos: testPos()},
	}, c)

	require.True(t, res.IsOk())
	assert.True(t, findCode(c, diag.E_ILLEGAL_RETURN))
}
