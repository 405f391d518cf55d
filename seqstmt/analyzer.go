package seqstmt

import (
	"context"
	"log/slog"

	"vhdlsem/ast"
	"vhdlsem/diag"
	"vhdlsem/internal/trace"
	"vhdlsem/location"
	"vhdlsem/sem"
)

// Dependencies bundles every external collaborator the sequential
// analyzer calls out to (§6), mirroring declare.Dependencies's bundling
// convention for the same reason: one value built per design-unit
// analysis and threaded through every recursive call.
type Dependencies struct {
	Arena          *sem.Arena
	Names          sem.NameResolver
	Exprs          ast.ExprTyper
	ProcedureCalls sem.ProcedureCallResolver
	Targets        sem.TargetWaveformResolver
	Predefined     sem.PredefinedTypeProvider

	// Logger receives low-volume phase traces of each statement-list entry;
	// nil (the zero value) disables tracing entirely.
	Logger *slog.Logger
}

// Analyzer implements ast.SequentialAnalyzer.
type Analyzer struct {
	Deps Dependencies
}

// loopFrame is one entry of the enclosing-loop stack threaded through
// statement-list recursion, used to validate a labeled exit/next and to
// accept an unlabeled one (§4.F "Exit / Next").
type loopFrame struct {
	label    sem.Designator
	hasLabel bool
	id       sem.EntityID
}

// AnalyzeSequentialPart walks stmts in order under root, dispatching each
// statement by its concrete ast.Stmt type (§4.F).
func (a Analyzer) AnalyzeSequentialPart(scope *sem.Scope, root ast.SequentialRoot, stmts []ast.Stmt, c *diag.Collector) sem.FatalResult {
	op := trace.Begin(context.Background(), a.Deps.Logger, "vhdlsem.seqstmt.analyze_sequential_part",
		slog.Int("stmt_count", len(stmts)))
	res := a.analyzeStmts(scope, root, nil, stmts, c)
	if !res.IsOk() {
		err := res.Error()
		op.End(*err)
	} else {
		op.End(nil)
	}
	return res
}

func (a Analyzer) analyzeStmts(scope *sem.Scope, root ast.SequentialRoot, loops []loopFrame, stmts []ast.Stmt, c *diag.Collector) sem.FatalResult {
	for _, stmt := range stmts {
		if res := a.analyzeStmt(scope, root, loops, stmt, c); !res.IsOk() {
			return res
		}
	}
	return sem.FatalOk()
}

func (a Analyzer) analyzeStmt(scope *sem.Scope, root ast.SequentialRoot, loops []loopFrame, stmt ast.Stmt, c *diag.Collector) sem.FatalResult {
	switch s := stmt.(type) {
	case *ast.ReturnStmt:
		a.analyzeReturn(scope, root, s, c)
	case *ast.WaitStmt:
		a.analyzeWait(scope, root, s, c)
	case *ast.AssertStmt:
		a.analyzeAssert(scope, s, c)
	case *ast.ReportStmt:
		a.analyzeReport(scope, s, c)
	case *ast.ExitStmt:
		a.analyzeExit(scope, loops, s, c)
	case *ast.NextStmt:
		a.analyzeNext(scope, loops, s, c)
	case *ast.IfStmt:
		return a.analyzeIf(scope, root, loops, s, c)
	case *ast.CaseStmt:
		return a.analyzeCase(scope, root, loops, s, c)
	case *ast.LoopStmt:
		return a.analyzeLoop(scope, root, loops, s, c)
	case *ast.ProcedureCallStmt:
		a.analyzeProcedureCall(scope, s, c)
	case *ast.AssignStmt:
		a.analyzeAssign(scope, s, c)
	case *ast.NullStmt:
		// no-op, §4.F "Null".
	default:
		return sem.FatalErr("seqstmt: unrecognized statement node")
	}
	return sem.FatalOk()
}

// analyzeReturn types a valued return against root's return type for a
// function, and rejects a return in a non-function root or a valued
// return in a procedure (§4.F "Return").
func (a Analyzer) analyzeReturn(scope *sem.Scope, root ast.SequentialRoot, s *ast.ReturnStmt, c *diag.Collector) {
	switch root.Kind {
	case ast.SequentialFunction:
		if s.Value == nil {
			c.Collect(diag.NewIssue(diag.Error, diag.E_ILLEGAL_RETURN,
				"a function's return statement requires a value").
				WithSpan(s.Pos).
				WithDetail(diag.DetailKeyContext, "function").Build())
			return
		}
		a.Deps.Exprs.TypeAgainst(scope, s.Value, sem.Subtype{TypeMark: root.ReturnType}, c)
	case ast.SequentialProcedure:
		if s.Value != nil {
			c.Collect(diag.NewIssue(diag.Error, diag.E_ILLEGAL_RETURN,
				"a procedure's return statement takes no value").
				WithSpan(s.Pos).
				WithDetail(diag.DetailKeyContext, "procedure").Build())
			return
		}
	default:
		c.Collect(diag.NewIssue(diag.Error, diag.E_ILLEGAL_RETURN,
			"a return statement is only legal inside a function or procedure body").
			WithSpan(s.Pos).
			WithDetail(diag.DetailKeyContext, "process").Build())
	}
}

// analyzeWait resolves the sensitivity list, types the condition as
// boolean, and types the timeout against the platform time type (§4.F
// "Wait"). A wait statement inside a function body is illegal, since a
// function must return a value without suspending.
func (a Analyzer) analyzeWait(scope *sem.Scope, root ast.SequentialRoot, s *ast.WaitStmt, c *diag.Collector) {
	if root.Kind == ast.SequentialFunction {
		c.Collect(diag.NewIssue(diag.Error, diag.E_ILLEGAL_WAIT,
			"a wait statement is not legal inside a function body").
			WithSpan(s.Pos).
			WithDetail(diag.DetailKeyContext, "function").Build())
		return
	}
	for i := range s.Sensitivity {
		name := &s.Sensitivity[i]
		res := a.Deps.Names.ResolveName(scope, name.Base)
		if !res.IsOk() {
			c.Collect(diag.NewIssue(diag.Error, diag.E_NOT_DECLARED,
				`"`+name.Base.Text()+`" is not declared`).
				WithSpan(name.Pos).
				WithDetail(diag.DetailKeyDesignator, name.Base.Text()).Build())
			continue
		}
		if resolved := res.Value(); resolved.Class == sem.ResolvedObject {
			name.Ref.Set(resolved.Single.ID())
		}
	}
	if s.Condition != nil {
		a.Deps.Exprs.BooleanExpr(scope, s.Condition, c)
	}
	if s.Timeout != nil {
		a.Deps.Exprs.TypeAgainst(scope, s.Timeout, sem.Subtype{TypeMark: a.Deps.Predefined.Time()}, c)
	}
}

// analyzeAssert types the condition as boolean, the report message
// against string, and the severity against severity_level (§4.F "Assert
// / Report").
func (a Analyzer) analyzeAssert(scope *sem.Scope, s *ast.AssertStmt, c *diag.Collector) {
	a.Deps.Exprs.BooleanExpr(scope, s.Condition, c)
	a.typeReportSeverity(scope, s.Report, s.Severity, c)
}

func (a Analyzer) analyzeReport(scope *sem.Scope, s *ast.ReportStmt, c *diag.Collector) {
	a.typeReportSeverity(scope, s.Report, s.Severity, c)
}

func (a Analyzer) typeReportSeverity(scope *sem.Scope, report, severity ast.Expr, c *diag.Collector) {
	if report != nil {
		a.Deps.Exprs.TypeAgainst(scope, report, sem.Subtype{TypeMark: a.Deps.Predefined.String()}, c)
	}
	if severity != nil {
		a.Deps.Exprs.TypeAgainst(scope, severity, sem.Subtype{TypeMark: a.Deps.Predefined.SeverityLevel()}, c)
	}
}

// analyzeExit and analyzeNext both type an optional condition as boolean
// and require an enclosing loop, matching a named loop against the
// active loop stack by designator when one is given (§4.F "Exit / Next").
func (a Analyzer) analyzeExit(scope *sem.Scope, loops []loopFrame, s *ast.ExitStmt, c *diag.Collector) {
	a.checkLoopContext(loops, s.Label, &s.Loop, s.Pos, c)
	if s.Condition != nil {
		a.Deps.Exprs.BooleanExpr(scope, s.Condition, c)
	}
}

func (a Analyzer) analyzeNext(scope *sem.Scope, loops []loopFrame, s *ast.NextStmt, c *diag.Collector) {
	a.checkLoopContext(loops, s.Label, &s.Loop, s.Pos, c)
	if s.Condition != nil {
		a.Deps.Exprs.BooleanExpr(scope, s.Condition, c)
	}
}

// checkLoopContext requires at least one enclosing loop; when label names
// one, it must match some entry on the active stack (innermost wins on a
// shadowed label, matching declaration-order visibility elsewhere in this
// module), and the matching frame's entity id is written into loopRef.
func (a Analyzer) checkLoopContext(loops []loopFrame, label sem.Designator, loopRef *sem.EntityRef, pos location.Span, c *diag.Collector) {
	if len(loops) == 0 {
		c.Collect(diag.NewIssue(diag.Error, diag.E_ILLEGAL_EXIT,
			"exit/next is only legal inside a loop").
			WithSpan(pos).Build())
		return
	}
	if label.Text() == "" {
		return
	}
	for i := len(loops) - 1; i >= 0; i-- {
		if loops[i].hasLabel && loops[i].label.Equal(label) {
			loopRef.Set(loops[i].id)
			return
		}
	}
	c.Collect(diag.NewIssue(diag.Error, diag.E_ILLEGAL_EXIT,
		`"`+label.Text()+`" does not name an enclosing loop`).
		WithSpan(pos).
		WithDetail(diag.DetailKeyDesignator, label.Text()).Build())
}
