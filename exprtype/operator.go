package exprtype

import (
	"strconv"

	"vhdlsem/ast"
	"vhdlsem/diag"
	"vhdlsem/sem"
)

// classifyOperatorCall implements §4.E's operator-resolution and
// disambiguation pipeline. Candidates are narrowed stage by stage; the
// pipeline stops the moment one remains.
func (a Analyzer) classifyOperatorCall(scope *sem.Scope, e *ast.OperatorCall, target *sem.Subtype, c *diag.Collector) expressionType {
	res := a.Names.ResolveName(scope, e.Op)
	if !res.IsOk() || res.Value().Class != sem.ResolvedOverloaded {
		c.Collect(diag.NewIssue(diag.Error, diag.E_NO_MATCH,
			`no operator "`+e.Op.Text()+`" is declared`).
			WithSpan(e.Pos).
			WithDetail(diag.DetailKeyDesignator, e.Op.Text()).Build())
		return failed()
	}

	arity := len(e.Operands)
	var candidates []sem.Ent
	for _, cand := range res.Value().Overloaded {
		ok, _ := cand.Kind().(sem.OverloadedKind)
		if ok.Signature.Arity() == arity && ok.Signature.HasRet {
			candidates = append(candidates, cand)
		}
	}
	if len(candidates) == 0 {
		c.Collect(diag.NewIssue(diag.Error, diag.E_NO_MATCH,
			`no overload of "`+e.Op.Text()+`" accepts `+arityWord(arity)+` operand(s)`).
			WithSpan(e.Pos).
			WithDetail(diag.DetailKeyDesignator, e.Op.Text()).Build())
		return failed()
	}

	// Step 1: compute each operand's forward ExpressionType.
	operandTypes := make([]expressionType, arity)
	for i, operand := range e.Operands {
		operandTypes[i] = a.classify(scope, operand, nil, c)
	}

	allButOne := candidates
	narrow := func(cands []sem.Ent, castEnabled bool) []sem.Ent {
		return filterCandidates(cands, func(cand sem.Ent) bool {
			sig := mustOverloaded(cand).Signature
			for i, ot := range operandTypes {
				if !possible(ot, sig.ParamType(i), castEnabled) {
					return false
				}
			}
			return true
		})
	}

	// Step 2: retain candidates whose formals are possible, cast enabled.
	allButOne = narrow(allButOne, true)

	// Step 3: if a target is given, retain candidates whose return can
	// serve it, cast enabled.
	if target != nil {
		allButOne = filterCandidates(allButOne, func(cand sem.Ent) bool {
			return typesCompatible(mustOverloaded(cand).Signature.Return, target.TypeMark, true)
		})
	}

	// Step 4: if multiple remain and share one return base type, re-run
	// step 2 with cast disabled.
	if len(allButOne) > 1 && sameReturnBaseType(allButOne) {
		allButOne = narrow(allButOne, false)
	}

	// Step 5: if still multiple, re-run step 3 with cast disabled when a
	// target is given; otherwise drop universal returns shadowed by a
	// concrete counterpart among the survivors.
	if len(allButOne) > 1 {
		if target != nil {
			allButOne = filterCandidates(allButOne, func(cand sem.Ent) bool {
				return typesCompatible(mustOverloaded(cand).Signature.Return, target.TypeMark, false)
			})
		} else {
			allButOne = preferNonUniversalReturn(allButOne)
		}
	}

	// Step 6: if none survived, but exactly one candidate is viable with
	// casts disabled from the start, restore it.
	if len(allButOne) == 0 {
		strict := narrow(candidates, false)
		if len(strict) == 1 {
			allButOne = strict
		}
	}

	switch len(allButOne) {
	case 0:
		c.Collect(diag.NewIssue(diag.Error, diag.E_NO_MATCH,
			`no overload of "`+e.Op.Text()+`" matches its operands`).
			WithSpan(e.Pos).
			WithDetail(diag.DetailKeyDesignator, e.Op.Text()).Build())
		return failed()
	case 1:
		chosen := allButOne[0]
		sig := mustOverloaded(chosen).Signature
		e.Ref.Set(chosen.ID())
		for i, operand := range e.Operands {
			a.TypeAgainst(scope, operand, sem.Subtype{TypeMark: sig.ParamType(i)}, c)
		}
		return unambiguous(sig.Return)
	default:
		c.Collect(diag.NewIssue(diag.Error, diag.E_AMBIGUOUS,
			`ambiguous overload of "`+e.Op.Text()+`"`).
			WithSpan(e.Pos).
			WithDetail(diag.DetailKeyDesignator, e.Op.Text()).
			WithDetail(diag.DetailKeyCandidateCount, strconv.Itoa(len(allButOne))).Build())
		return ambiguous(allButOne)
	}
}

func mustOverloaded(e sem.Ent) sem.OverloadedKind {
	ok, _ := e.Kind().(sem.OverloadedKind)
	return ok
}

func filterCandidates(cands []sem.Ent, keep func(sem.Ent) bool) []sem.Ent {
	var out []sem.Ent
	for _, cand := range cands {
		if keep(cand) {
			out = append(out, cand)
		}
	}
	return out
}

// possible reports whether a formal's type can accept ot, per the step-2
// "is this formal possible for this operand" check of the disambiguation
// pipeline.
func possible(ot expressionType, formal sem.Ent, castEnabled bool) bool {
	switch ot.kind {
	case kindUnambiguous:
		return typesCompatible(ot.typ, formal, castEnabled)
	case kindAmbiguous:
		for _, cand := range ot.candidates {
			if typesCompatible(candidateReturnType(cand), formal, castEnabled) {
				return true
			}
		}
		return false
	case kindString:
		return sem.IsCompatibleWithStringLiteral(formal)
	case kindNull:
		return sem.IsAccess(formal)
	case kindAggregate:
		return sem.IsComposite(formal)
	default:
		return false
	}
}

func sameReturnBaseType(cands []sem.Ent) bool {
	if len(cands) == 0 {
		return false
	}
	first := mustOverloaded(cands[0]).Signature.Return.BaseType().ID()
	for _, cand := range cands[1:] {
		if mustOverloaded(cand).Signature.Return.BaseType().ID() != first {
			return false
		}
	}
	return true
}

// preferNonUniversalReturn drops a universal-returning candidate when a
// concrete integer/real counterpart of the matching class is also among
// the survivors (§4.E step 5's tie-break when no target type is given).
func preferNonUniversalReturn(cands []sem.Ent) []sem.Ent {
	var out []sem.Ent
	for _, cand := range cands {
		ret := mustOverloaded(cand).Signature.Return
		class, isUniversal := universalClassOf(ret)
		if isUniversal && hasConcreteCounterpart(cands, class) {
			continue
		}
		out = append(out, cand)
	}
	return out
}

// universalClassOf reports whether e's base type is itself UniversalType,
// and if so which class.
func universalClassOf(e sem.Ent) (sem.UniversalClass, bool) {
	tk, ok := e.BaseType().Kind().(sem.TypeKind)
	if !ok {
		return 0, false
	}
	u, ok := tk.Type.(*sem.UniversalType)
	if !ok {
		return 0, false
	}
	return u.Class, true
}

func hasConcreteCounterpart(cands []sem.Ent, class sem.UniversalClass) bool {
	for _, cand := range cands {
		ret := mustOverloaded(cand).Signature.Return
		if _, isUniversal := universalClassOf(ret); isUniversal {
			continue
		}
		if class == sem.UniversalInteger && sem.IsAnyInteger(ret) {
			return true
		}
		if class == sem.UniversalReal && sem.IsAnyReal(ret) {
			return true
		}
	}
	return false
}

func arityWord(n int) string {
	switch n {
	case 0:
		return "zero"
	case 1:
		return "one"
	default:
		return "two"
	}
}
