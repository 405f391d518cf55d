package ast

import (
	"vhdlsem/diag"
	"vhdlsem/sem"
)

// SequentialRootKind distinguishes the contexts a sequential statement
// list may run under (§4.F): a concurrent process (no enclosing
// subprogram), a function body, or a procedure body.
type SequentialRootKind int

const (
	SequentialProcess SequentialRootKind = iota
	SequentialFunction
	SequentialProcedure
)

// SequentialRoot is the context analyze_sequential_part runs under: which
// kind of subprogram, if any, encloses the statement list, and, for a
// function, its return type (needed to type-check a valued return).
type SequentialRoot struct {
	Kind       SequentialRootKind
	ReturnType sem.Ent // set only when Kind == SequentialFunction
}

// ExprTyper types an expression against a known target subtype, or in
// unknown-target mode when no target is available (§4.E, §6 "Expression
// typer"). Hosted here, not in declare or seqstmt, because both of those
// packages call it and neither should import the other just to share the
// interface — the same reasoning sem.NameResolver documents, one tier up
// since this interface is parameterized over an AST expression node.
type ExprTyper interface {
	TypeAgainst(scope *sem.Scope, expr Expr, target sem.Subtype, c *diag.Collector) sem.AnalysisResult[sem.Ent]
	TypeUnknown(scope *sem.Scope, expr Expr, c *diag.Collector) sem.AnalysisResult[sem.Ent]

	// BooleanExpr types expr as a condition (§4.E "boolean_expr"): it must
	// be boolean, or an unambiguous type for which an implicit "??" operator
	// is defined. The sequential analyzer calls this for wait conditions,
	// if/elsif conditions, exit/next conditions, and while-loop conditions.
	BooleanExpr(scope *sem.Scope, expr Expr, c *diag.Collector) sem.AnalysisResult[sem.Ent]

	// IntegerExpr types expr and requires it to classify as any integer
	// type (§4.E "integer_expr"). The sequential analyzer does not call it:
	// a wait statement's timeout is typed against the platform time type
	// via TypeAgainst. IntegerExpr is for contexts that merely require
	// "some integer", not a specific one.
	IntegerExpr(scope *sem.Scope, expr Expr, c *diag.Collector) sem.AnalysisResult[sem.Ent]
}

// SequentialAnalyzer analyzes a sequential statement list under a given
// root context (§4.F, §6 "Sequential analyzer"). declare calls this once
// per subprogram body; nothing else in the core does.
type SequentialAnalyzer interface {
	AnalyzeSequentialPart(scope *sem.Scope, root SequentialRoot, stmts []Stmt, c *diag.Collector) sem.FatalResult
}

// PackageInstantiator instantiates a generic package (§4.G, §6 "Package
// instantiator"), returning the captured region of the resulting instance.
type PackageInstantiator interface {
	Instantiate(scope *sem.Scope, inst *PackageInstantiation, c *diag.Collector) sem.AnalysisResult[*sem.Region]
}
