package exprtype

import (
	"context"
	"log/slog"
	"strconv"

	"fortio.org/safecast"

	"vhdlsem/ast"
	"vhdlsem/diag"
	"vhdlsem/internal/trace"
	"vhdlsem/sem"
)

// Analyzer is the reference expression typer. It satisfies ast.ExprTyper
// and is stateless beyond its collaborators, so one value can be shared
// across every design-unit analysis in a process.
type Analyzer struct {
	Names      sem.NameResolver
	Predefined sem.PredefinedTypeProvider

	// Logger receives low-volume phase traces of each typing entry point;
	// nil (the zero value) disables tracing entirely.
	Logger *slog.Logger
}

// endTrace closes op, reporting res's error (if any) without passing a
// zero-value EvalError as a non-nil error on the success path.
func endTrace(op *trace.Op, res sem.AnalysisResult[sem.Ent]) {
	if !res.IsOk() {
		op.End(res.Error())
	} else {
		op.End(nil)
	}
}

// TypeUnknown types expr with no target in scope (§4.E "expr_type").
func (a Analyzer) TypeUnknown(scope *sem.Scope, expr ast.Expr, c *diag.Collector) sem.AnalysisResult[sem.Ent] {
	op := trace.Begin(context.Background(), a.Logger, "vhdlsem.exprtype.type_unknown")
	res := a.typeUnknown(scope, expr, c)
	endTrace(op, res)
	return res
}

func (a Analyzer) typeUnknown(scope *sem.Scope, expr ast.Expr, c *diag.Collector) sem.AnalysisResult[sem.Ent] {
	et := a.classify(scope, expr, nil, c)
	switch et.kind {
	case kindUnambiguous:
		return sem.Ok(et.typ)
	case kindAmbiguous:
		if len(et.candidates) == 0 {
			// Already diagnosed (unresolved name, no matching operator, ...).
			return sem.Err[sem.Ent](sem.EvalError{Kind: sem.EvalUnknown, Reason: "unresolved expression"})
		}
		c.Collect(diag.NewIssue(diag.Error, diag.E_AMBIGUOUS,
			"expression is ambiguous without a target type").
			WithSpan(expr.Span()).
			WithDetail(diag.DetailKeyCandidateCount, strconv.Itoa(len(et.candidates))).Build())
		return sem.Err[sem.Ent](sem.EvalError{Kind: sem.EvalUnknown, Reason: "ambiguous expression"})
	default:
		// String/Null/Aggregate: a legitimate forward-typing outcome with no
		// single concrete type; classification predicates on the zero Ent
		// all report false, which is the correct "don't know yet" answer.
		return sem.Ok(sem.Ent{})
	}
}

// TypeAgainst types expr against a known target subtype (§4.E "expr_with_ttyp").
func (a Analyzer) TypeAgainst(scope *sem.Scope, expr ast.Expr, target sem.Subtype, c *diag.Collector) sem.AnalysisResult[sem.Ent] {
	op := trace.Begin(context.Background(), a.Logger, "vhdlsem.exprtype.type_against",
		slog.String("target", target.TypeMark.Designator().Text()))
	res := a.typeAgainst(scope, expr, target, c)
	endTrace(op, res)
	return res
}

func (a Analyzer) typeAgainst(scope *sem.Scope, expr ast.Expr, target sem.Subtype, c *diag.Collector) sem.AnalysisResult[sem.Ent] {
	et := a.classify(scope, expr, &target, c)
	switch et.kind {
	case kindUnambiguous:
		if !typesCompatible(et.typ, target.TypeMark, true) {
			c.Collect(diag.NewIssue(diag.Error, diag.E_TYPE_MISMATCH,
				"expression's type does not match the required target type").
				WithSpan(expr.Span()).
				WithDetail(diag.DetailKeyExpected, target.TypeMark.Designator().Text()).
				WithDetail(diag.DetailKeyGot, et.typ.Designator().Text()).Build())
			return sem.Err[sem.Ent](sem.EvalError{Kind: sem.EvalUnknown, Reason: "type mismatch"})
		}
		if lit, ok := expr.(*ast.IntegerLiteral); ok && et.typ.Equal(a.Predefined.UniversalInteger()) && sem.IsAnyInteger(target.TypeMark) {
			checkIntegerLiteralRange(lit, target, c)
		}
		return sem.Ok(target.TypeMark)
	case kindAmbiguous:
		if len(et.candidates) == 0 {
			return sem.Err[sem.Ent](sem.EvalError{Kind: sem.EvalUnknown, Reason: "unresolved expression"})
		}
		c.Collect(diag.NewIssue(diag.Error, diag.E_AMBIGUOUS,
			"expression is ambiguous against its target type").
			WithSpan(expr.Span()).
			WithDetail(diag.DetailKeyExpected, target.TypeMark.Designator().Text()).
			WithDetail(diag.DetailKeyCandidateCount, strconv.Itoa(len(et.candidates))).Build())
		return sem.Err[sem.Ent](sem.EvalError{Kind: sem.EvalUnknown, Reason: "ambiguous expression"})
	case kindString:
		if !sem.IsCompatibleWithStringLiteral(target.TypeMark) {
			c.Collect(diag.NewIssue(diag.Error, diag.E_TYPE_MISMATCH,
				"string literal is not compatible with the target type").
				WithSpan(expr.Span()).
				WithDetail(diag.DetailKeyExpected, target.TypeMark.Designator().Text()).Build())
			return sem.Err[sem.Ent](sem.EvalError{Kind: sem.EvalUnknown, Reason: "type mismatch"})
		}
		if bs, ok := expr.(*ast.BitStringLiteral); ok {
			checkBitStringLength(bs, target, c)
		}
		return sem.Ok(target.TypeMark)
	case kindNull:
		if !sem.IsAccess(target.TypeMark) {
			c.Collect(diag.NewIssue(diag.Error, diag.E_TYPE_MISMATCH,
				`"null" is only compatible with an access type`).
				WithSpan(expr.Span()).
				WithDetail(diag.DetailKeyExpected, target.TypeMark.Designator().Text()).Build())
			return sem.Err[sem.Ent](sem.EvalError{Kind: sem.EvalUnknown, Reason: "type mismatch"})
		}
		return sem.Ok(target.TypeMark)
	case kindAggregate:
		return a.typeAggregate(scope, expr.(*ast.Aggregate), target, c)
	default:
		return sem.Ok(sem.Ent{})
	}
}

// BooleanExpr types expr as a condition (§4.E "boolean_expr"): boolean, or
// an unambiguous type with a defined implicit "??" operator.
func (a Analyzer) BooleanExpr(scope *sem.Scope, expr ast.Expr, c *diag.Collector) sem.AnalysisResult[sem.Ent] {
	boolean := a.Predefined.Boolean()
	et := a.classify(scope, expr, nil, c)
	switch et.kind {
	case kindUnambiguous:
		if sem.TypeEqual(et.typ, boolean) {
			return sem.Ok(et.typ)
		}
		if hasConditionOperator(scope, et.typ) {
			return sem.Ok(et.typ)
		}
	case kindAmbiguous:
		var narrowed []sem.Ent
		for _, cand := range et.candidates {
			t := candidateReturnType(cand)
			if sem.TypeEqual(t, boolean) || hasConditionOperator(scope, t) {
				narrowed = append(narrowed, cand)
			}
		}
		if len(narrowed) == 1 {
			return sem.Ok(candidateReturnType(narrowed[0]))
		}
	}
	c.Collect(diag.NewIssue(diag.Error, diag.E_NOT_BOOLEAN,
		"condition is neither boolean nor an unambiguous type with a defined condition operator").
		WithSpan(expr.Span()).Build())
	return sem.Err[sem.Ent](sem.EvalError{Kind: sem.EvalUnknown, Reason: "not boolean"})
}

// IntegerExpr types expr and requires an integer-classified result (§4.E
// "integer_expr"): any integer type or universal-integer, with no specific
// target type required.
func (a Analyzer) IntegerExpr(scope *sem.Scope, expr ast.Expr, c *diag.Collector) sem.AnalysisResult[sem.Ent] {
	et := a.classify(scope, expr, nil, c)
	if et.kind == kindUnambiguous && sem.IsAnyInteger(et.typ) {
		return sem.Ok(et.typ)
	}
	if et.kind == kindAmbiguous {
		var narrowed []sem.Ent
		for _, cand := range et.candidates {
			if sem.IsAnyInteger(candidateReturnType(cand)) {
				narrowed = append(narrowed, cand)
			}
		}
		if len(narrowed) == 1 {
			return sem.Ok(candidateReturnType(narrowed[0]))
		}
	}
	c.Collect(diag.NewIssue(diag.Error, diag.E_NOT_INTEGER,
		"expression does not classify as an integer type").
		WithSpan(expr.Span()).Build())
	return sem.Err[sem.Ent](sem.EvalError{Kind: sem.EvalUnknown, Reason: "not integer"})
}

// hasConditionOperator reports whether t has an implicit nullary-formal
// "??" operator reachable in scope — the VHDL-2008 condition operator a
// host's ImplicitFactory may choose to synthesize for a scalar type, not
// one §4.C's own synthesis list produces for every type.
func hasConditionOperator(scope *sem.Scope, t sem.Ent) bool {
	ne, ok := scope.Lookup(sem.NewOperatorDesignator("??"))
	if !ok {
		return false
	}
	for _, cand := range ne.Candidates() {
		ok, _ := cand.Kind().(sem.OverloadedKind)
		if ok.Signature.Arity() == 1 && sem.TypeEqual(ok.Signature.ParamType(0), t) {
			return true
		}
	}
	return false
}

// checkIntegerLiteralRange diagnoses a universal-integer literal being
// narrowed to a sized integer target whose value does not fit the 32-bit
// width this analyzer uses for integer types, mirroring declare's
// equivalent physical-type-multiplier check with the same library.
func checkIntegerLiteralRange(lit *ast.IntegerLiteral, target sem.Subtype, c *diag.Collector) {
	v, err := strconv.ParseInt(lit.Text, 10, 64)
	if err != nil {
		return // malformed literal text; lexer/parser's concern, not ours
	}
	if _, err := safecast.Conv[int32](v); err != nil {
		c.Collect(diag.NewIssue(diag.Error, diag.E_INTEGER_LITERAL_OVERFLOW,
			"integer literal does not fit the target type's range").
			WithSpan(lit.Pos).
			WithDetail(diag.DetailKeyExpected, target.TypeMark.Designator().Text()).
			WithDetail(diag.DetailKeyGot, lit.Text).Build())
	}
}
