package seqstmt

import (
	"vhdlsem/ast"
	"vhdlsem/diag"
	"vhdlsem/sem"
)

// analyzeIf types every branch's condition as boolean (the trailing else
// branch has a nil Condition and is skipped) and recurses into each
// branch's body under the same root and loop stack (§4.F "If / Elsif /
// Else").
func (a Analyzer) analyzeIf(scope *sem.Scope, root ast.SequentialRoot, loops []loopFrame, s *ast.IfStmt, c *diag.Collector) sem.FatalResult {
	for _, branch := range s.Branches {
		if branch.Condition != nil {
			a.Deps.Exprs.BooleanExpr(scope, branch.Condition, c)
		}
		if res := a.analyzeStmts(scope, root, loops, branch.Body, c); !res.IsOk() {
			return res
		}
	}
	return sem.FatalOk()
}

// analyzeCase forces the scrutinee to an unambiguous type, checks each
// alternative's choices against it, and recurses into each alternative's
// body (§4.F "Case").
func (a Analyzer) analyzeCase(scope *sem.Scope, root ast.SequentialRoot, loops []loopFrame, s *ast.CaseStmt, c *diag.Collector) sem.FatalResult {
	res := a.Deps.Exprs.TypeUnknown(scope, s.Scrutinee, c)
	var scrutineeType sem.Ent
	if res.IsOk() {
		scrutineeType = res.Value()
	}

	for _, alt := range s.Alternatives {
		if !scrutineeType.IsZero() {
			for _, choice := range alt.Choices {
				a.checkCaseChoice(scope, choice, scrutineeType, c)
			}
		}
		if res := a.analyzeStmts(scope, root, loops, alt.Body, c); !res.IsOk() {
			return res
		}
	}
	return sem.FatalOk()
}

func (a Analyzer) checkCaseChoice(scope *sem.Scope, choice ast.AggregateChoice, scrutineeType sem.Ent, c *diag.Collector) {
	if choice.Others {
		return
	}
	if choice.Range != nil {
		a.typeDiscreteRangeAgainst(scope, choice.Range, scrutineeType, c)
		return
	}
	a.Deps.Exprs.TypeAgainst(scope, choice.Value, sem.Subtype{TypeMark: scrutineeType}, c)
}

// analyzeLoop dispatches on the loop's shape, pushing a loopFrame onto the
// stack (by label, if one was written) before recursing into the body
// (§4.F "Loop").
func (a Analyzer) analyzeLoop(scope *sem.Scope, root ast.SequentialRoot, loops []loopFrame, s *ast.LoopStmt, c *diag.Collector) sem.FatalResult {
	frame := loopFrame{}
	if s.Label.Text() != "" {
		ent := a.Deps.Arena.Define(&s.LabelRef, s.Label, sem.LabelKind{}, s.Pos)
		scope.Add(ent)
		frame = loopFrame{label: s.Label, hasLabel: true, id: ent.ID()}
	}
	nested := append(append([]loopFrame{}, loops...), frame)

	switch s.Kind {
	case ast.LoopWhile:
		if s.Condition != nil {
			a.Deps.Exprs.BooleanExpr(scope, s.Condition, c)
		}
		return a.analyzeStmts(scope, root, nested, s.Body, c)
	case ast.LoopFor:
		scope.Nested(sem.RegionOrdinary)
		paramType := a.rangeType(scope, s.ForRange, c)
		ent := a.Deps.Arena.Define(&s.ForRef, s.ForParam, sem.LoopParameterKind{Type: paramType}, s.Pos)
		scope.Add(ent)
		res := a.analyzeStmts(scope, root, nested, s.Body, c)
		scope.Close(c)
		return res
	default: // ast.LoopPlain
		return a.analyzeStmts(scope, root, nested, s.Body, c)
	}
}

// rangeType resolves dr to the entity type a for-loop's parameter should
// take: the named subtype's type mark, or the type of the range's lower
// bound when the range is written out explicitly (§4.F "Loop": "For-loop
// introduces a fresh nested scope with a LoopParameter bound to the
// discrete range's type").
func (a Analyzer) rangeType(scope *sem.Scope, dr *ast.DiscreteRange, c *diag.Collector) sem.Ent {
	if dr == nil {
		return sem.Ent{}
	}
	if dr.Subtype != nil {
		res := a.Deps.Names.ResolveName(scope, dr.Subtype.TypeMark.Base)
		if !res.IsOk() {
			c.Collect(diag.NewIssue(diag.Error, diag.E_NOT_DECLARED,
				`"`+dr.Subtype.TypeMark.Base.Text()+`" is not declared`).
				WithSpan(dr.Subtype.TypeMark.Pos).
				WithDetail(diag.DetailKeyDesignator, dr.Subtype.TypeMark.Base.Text()).Build())
			return sem.Ent{}
		}
		resolved := res.Value()
		if resolved.Class != sem.ResolvedType {
			c.Collect(diag.NewIssue(diag.Error, diag.E_TYPE_MISMATCH,
				`"`+dr.Subtype.TypeMark.Base.Text()+`" does not denote a type`).
				WithSpan(dr.Subtype.TypeMark.Pos).
				WithDetail(diag.DetailKeyDesignator, dr.Subtype.TypeMark.Base.Text()).Build())
			return sem.Ent{}
		}
		dr.Subtype.TypeMark.Ref.Set(resolved.Single.ID())
		return resolved.Single
	}
	if dr.Range != nil {
		res := a.Deps.Exprs.TypeUnknown(scope, dr.Range.Low, c)
		if !res.IsOk() {
			return sem.Ent{}
		}
		lowType := res.Value()
		if !lowType.IsZero() {
			a.Deps.Exprs.TypeAgainst(scope, dr.Range.High, sem.Subtype{TypeMark: lowType}, c)
		}
		return lowType
	}
	return sem.Ent{}
}

// typeDiscreteRangeAgainst checks a case alternative's range choice
// against the scrutinee's type: a subtype indication's type mark must
// equal it; an explicit range's bounds are typed against it directly.
func (a Analyzer) typeDiscreteRangeAgainst(scope *sem.Scope, dr *ast.DiscreteRange, target sem.Ent, c *diag.Collector) {
	if dr.Subtype != nil {
		res := a.Deps.Names.ResolveName(scope, dr.Subtype.TypeMark.Base)
		if !res.IsOk() || res.Value().Class != sem.ResolvedType {
			return
		}
		resolved := res.Value().Single
		dr.Subtype.TypeMark.Ref.Set(resolved.ID())
		if !sem.TypeEqual(resolved, target) {
			c.Collect(diag.NewIssue(diag.Error, diag.E_TYPE_MISMATCH,
				"case choice's type does not match the scrutinee's type").
				WithSpan(dr.Subtype.TypeMark.Pos).
				WithDetail(diag.DetailKeyExpected, target.Designator().Text()).
				WithDetail(diag.DetailKeyGot, resolved.Designator().Text()).Build())
		}
		return
	}
	if dr.Range != nil {
		a.Deps.Exprs.TypeAgainst(scope, dr.Range.Low, sem.Subtype{TypeMark: target}, c)
		a.Deps.Exprs.TypeAgainst(scope, dr.Range.High, sem.Subtype{TypeMark: target}, c)
	}
}
