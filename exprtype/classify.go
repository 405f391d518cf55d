package exprtype

import (
	"vhdlsem/ast"
	"vhdlsem/diag"
	"vhdlsem/location"
	"vhdlsem/sem"
)

// exprKind is the shape forward typing classifies an expression into
// (§4.E "ExpressionType").
type exprKind int

const (
	kindUnambiguous exprKind = iota
	kindAmbiguous
	kindString
	kindNull
	kindAggregate
)

// expressionType is the internal forward/backward-typing result. candidates
// holds the *entities* under consideration when kind == kindAmbiguous (an
// operator, enum literal, or niladic subprogram), not just their return
// types, so a later narrowing step can still write the winning Ref.
type expressionType struct {
	kind       exprKind
	typ        sem.Ent
	candidates []sem.Ent
}

func unambiguous(t sem.Ent) expressionType { return expressionType{kind: kindUnambiguous, typ: t} }
func ambiguous(cands []sem.Ent) expressionType {
	return expressionType{kind: kindAmbiguous, candidates: cands}
}
func failed() expressionType             { return expressionType{kind: kindAmbiguous} }
func stringExpr() expressionType         { return expressionType{kind: kindString} }
func nullExpr() expressionType           { return expressionType{kind: kindNull} }
func aggregateExpr() expressionType      { return expressionType{kind: kindAggregate} }

// candidateReturnType extracts an OverloadedKind candidate's return type;
// every candidate passed around as an expressionType.candidates member is
// one (an operator, enum literal, or niladic subprogram).
func candidateReturnType(e sem.Ent) sem.Ent {
	ok, _ := e.Kind().(sem.OverloadedKind)
	return ok.Signature.Return
}

// typesCompatible reports whether a's type can serve where formal is
// required, optionally allowing the implicit universal cast (§4.E
// "Implicit universal cast rule"): a universal-integer/-real operand
// satisfies any integer/real formal, and vice versa.
func typesCompatible(a, formal sem.Ent, castEnabled bool) bool {
	if sem.TypeEqual(a, formal) {
		return true
	}
	if !castEnabled {
		return false
	}
	return sem.IsUniversalOf(a, formal) || sem.IsUniversalOf(formal, a)
}

// classify implements both companion passes from one recursive function:
// target == nil is forward typing (expr_type); target != nil is backward
// typing (expr_with_ttyp). Resolved AST reference slots (Name.Ref,
// CharacterLiteral.Ref, OperatorCall.Ref, ...) are written here, the
// moment a single candidate is settled, never deferred to the caller.
func (a Analyzer) classify(scope *sem.Scope, expr ast.Expr, target *sem.Subtype, c *diag.Collector) expressionType {
	switch e := expr.(type) {
	case *ast.IntegerLiteral:
		return unambiguous(a.Predefined.UniversalInteger())

	case *ast.RealLiteral:
		return unambiguous(a.Predefined.UniversalReal())

	case *ast.StringLiteral:
		return stringExpr()

	case *ast.BitStringLiteral:
		return stringExpr()

	case *ast.NullLiteral:
		return nullExpr()

	case *ast.PhysicalLiteral:
		return a.classifyPhysicalLiteral(scope, e, c)

	case *ast.CharacterLiteral:
		return a.classifyDesignator(scope, sem.NewCharacterDesignator(e.Char), e.Span(), target, c,
			func(id sem.EntityID) { e.Ref.Set(id) })

	case *ast.NameExpr:
		return a.classifyName(scope, e, target, c)

	case *ast.OperatorCall:
		return a.classifyOperatorCall(scope, e, target, c)

	case *ast.QualifiedExpr:
		return a.classifyQualified(scope, e, c)

	case *ast.Aggregate:
		return aggregateExpr()

	default:
		c.Collect(diag.NewIssue(diag.Error, diag.E_NO_MATCH,
			"unrecognized expression shape").WithSpan(expr.Span()).Build())
		return failed()
	}
}

func (a Analyzer) classifyPhysicalLiteral(scope *sem.Scope, lit *ast.PhysicalLiteral, c *diag.Collector) expressionType {
	res := a.Names.ResolveName(scope, lit.Unit.Base)
	if !res.IsOk() {
		c.Collect(diag.NewIssue(diag.Error, diag.E_NOT_DECLARED,
			`"`+lit.Unit.Base.Text()+`" is not a declared physical unit`).
			WithSpan(lit.Unit.Pos).
			WithDetail(diag.DetailKeyDesignator, lit.Unit.Base.Text()).Build())
		return failed()
	}
	pk, ok := res.Value().Single.Kind().(sem.PhysicalLiteralKind)
	if !ok {
		c.Collect(diag.NewIssue(diag.Error, diag.E_TYPE_MISMATCH,
			`"`+lit.Unit.Base.Text()+`" does not denote a physical unit`).
			WithSpan(lit.Unit.Pos).
			WithDetail(diag.DetailKeyDesignator, lit.Unit.Base.Text()).Build())
		return failed()
	}
	lit.Unit.Ref.Set(res.Value().Single.ID())
	return unambiguous(pk.Type)
}

// classifyDesignator resolves an overloadable designator (a character
// literal or a bare nullary name) to its niladic candidates' return types,
// narrowing by target when one is given and writing setRef once a single
// candidate is settled (§4.E "Character literal" rule).
func (a Analyzer) classifyDesignator(scope *sem.Scope, d sem.Designator, span location.Span, target *sem.Subtype, c *diag.Collector, setRef func(sem.EntityID)) expressionType {
	res := a.Names.ResolveName(scope, d)
	if !res.IsOk() || res.Value().Class != sem.ResolvedOverloaded {
		c.Collect(diag.NewIssue(diag.Error, diag.E_NO_MATCH,
			`"`+d.Text()+`" does not denote a value`).
			WithSpan(span).
			WithDetail(diag.DetailKeyDesignator, d.Text()).Build())
		return failed()
	}
	var nullary []sem.Ent
	for _, cand := range res.Value().Overloaded {
		ok, _ := cand.Kind().(sem.OverloadedKind)
		if ok.Signature.Arity() == 0 && ok.Signature.HasRet {
			nullary = append(nullary, cand)
		}
	}
	if len(nullary) == 0 {
		c.Collect(diag.NewIssue(diag.Error, diag.E_NO_MATCH,
			`no nullary candidate for "`+d.Text()+`"`).
			WithSpan(span).
			WithDetail(diag.DetailKeyDesignator, d.Text()).Build())
		return failed()
	}
	if target != nil {
		var narrowed []sem.Ent
		for _, cand := range nullary {
			if typesCompatible(candidateReturnType(cand), target.TypeMark, true) {
				narrowed = append(narrowed, cand)
			}
		}
		nullary = narrowed
	}
	if len(nullary) == 1 {
		setRef(nullary[0].ID())
		return unambiguous(candidateReturnType(nullary[0]))
	}
	if len(nullary) == 0 {
		c.Collect(diag.NewIssue(diag.Error, diag.E_TYPE_MISMATCH,
			`no candidate for "`+d.Text()+`" matches the target type`).
			WithSpan(span).
			WithDetail(diag.DetailKeyDesignator, d.Text()).Build())
		return failed()
	}
	return ambiguous(nullary)
}

// objectTypeOf extracts the declared type mark of a ResolvedObject-class
// entity, mirroring declare's objectTypeMark: Ent.BaseType() assumes its
// receiver is itself type-bearing, which an object entity is not.
func objectTypeOf(ent sem.Ent) sem.Ent {
	switch k := ent.Kind().(type) {
	case sem.ObjectKind:
		return k.Subtype.TypeMark
	case sem.DeferredConstantKind:
		return k.Subtype.TypeMark
	case sem.FileKind:
		return k.Subtype.TypeMark
	case sem.ObjectAliasKind:
		return k.TypeMark
	case sem.InterfaceFileKind:
		return k.Type
	case sem.ElementDeclarationKind:
		return k.Subtype.TypeMark
	case sem.LoopParameterKind:
		return k.Type
	case sem.PhysicalLiteralKind:
		return k.Type
	default:
		return ent
	}
}

func (a Analyzer) classifyName(scope *sem.Scope, e *ast.NameExpr, target *sem.Subtype, c *diag.Collector) expressionType {
	res := a.Names.ResolveName(scope, e.Name.Base)
	if !res.IsOk() {
		c.Collect(diag.NewIssue(diag.Error, diag.E_NOT_DECLARED,
			`"`+e.Name.Base.Text()+`" is not declared`).
			WithSpan(e.Name.Pos).
			WithDetail(diag.DetailKeyDesignator, e.Name.Base.Text()).Build())
		return failed()
	}
	resolved := res.Value()
	switch resolved.Class {
	case sem.ResolvedObject:
		e.Name.Ref.Set(resolved.Single.ID())
		return unambiguous(objectTypeOf(resolved.Single))
	case sem.ResolvedOverloaded:
		return a.classifyDesignator(scope, e.Name.Base, e.Name.Pos, target, c,
			func(id sem.EntityID) { e.Name.Ref.Set(id) })
	default:
		c.Collect(diag.NewIssue(diag.Error, diag.E_TYPE_MISMATCH,
			`"`+e.Name.Base.Text()+`" does not denote a value`).
			WithSpan(e.Name.Pos).
			WithDetail(diag.DetailKeyDesignator, e.Name.Base.Text()).Build())
		return failed()
	}
}

func (a Analyzer) classifyQualified(scope *sem.Scope, e *ast.QualifiedExpr, c *diag.Collector) expressionType {
	res := a.Names.ResolveName(scope, e.TypeMark.Base)
	if !res.IsOk() || res.Value().Class != sem.ResolvedType {
		c.Collect(diag.NewIssue(diag.Error, diag.E_TYPE_MISMATCH,
			`"`+e.TypeMark.Base.Text()+`" does not denote a type`).
			WithSpan(e.TypeMark.Pos).
			WithDetail(diag.DetailKeyDesignator, e.TypeMark.Base.Text()).Build())
		return failed()
	}
	t := res.Value().Single
	e.TypeMark.Ref.Set(t.ID())
	a.TypeAgainst(scope, e.Operand, sem.Subtype{TypeMark: t}, c)
	return unambiguous(t)
}
