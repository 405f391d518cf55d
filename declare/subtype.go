package declare

import (
	"vhdlsem/ast"
	"vhdlsem/diag"
	"vhdlsem/sem"
)

// resolveTypeMark resolves name as a type-denoting name, writing the
// resolution into name.Ref and diagnosing both an unknown name and a name
// that resolves to something other than a type.
func resolveTypeMark(scope *sem.Scope, name *ast.Name, deps Dependencies, c *diag.Collector) (sem.Ent, bool) {
	res := deps.Names.ResolveName(scope, name.Base)
	if !res.IsOk() {
		c.Collect(diag.NewIssue(diag.Error, diag.E_NOT_DECLARED,
			`"`+name.Base.Text()+`" is not declared`).
			WithSpan(name.Pos).
			WithDetail(diag.DetailKeyDesignator, name.Base.Text()).Build())
		return sem.Ent{}, false
	}
	resolved := res.Value()
	if resolved.Class != sem.ResolvedType {
		c.Collect(diag.NewIssue(diag.Error, diag.E_TYPE_MISMATCH,
			`"`+name.Base.Text()+`" does not denote a type`).
			WithSpan(name.Pos).
			WithDetail(diag.DetailKeyDesignator, name.Base.Text()).Build())
		return sem.Ent{}, false
	}
	name.Ref.Set(resolved.Single.ID())
	return resolved.Single, true
}

// resolveConstraintShape converts the unresolved constraint AST into a
// sem.Constraint and validates its shape against typeMark's base type
// (§4.D: "Subtype constraints are validated against the base type's
// shape"). It does not resolve the constraint's own contents (ranges and
// element subtypes are the expression typer's concern); only the shape is
// checked here.
func resolveConstraintShape(typeMark sem.Ent, constraint *ast.ConstraintAST, c *diag.Collector) sem.Constraint {
	resolved := toConstraint(constraint)
	if !sem.ValidateConstraintShape(typeMark, resolved) {
		c.Collect(diag.NewIssue(diag.Error, diag.E_CONSTRAINT_SHAPE,
			`constraint shape is not compatible with its base type`).
			WithDetail(diag.DetailKeyTypeName, typeMark.Designator().Text()).Build())
	}
	return resolved
}

func toConstraint(constraint *ast.ConstraintAST) sem.Constraint {
	if constraint == nil {
		return sem.Constraint{Kind: sem.ConstraintNone}
	}
	switch {
	case constraint.Range != nil:
		return sem.Constraint{Kind: sem.ConstraintRange}
	case len(constraint.Indexes) > 0:
		return sem.Constraint{Kind: sem.ConstraintIndex, IndexCount: len(constraint.Indexes)}
	case len(constraint.Elements) > 0:
		elems := make([]sem.Designator, len(constraint.Elements))
		for i, e := range constraint.Elements {
			elems[i] = e.Element
		}
		return sem.Constraint{Kind: sem.ConstraintRecordElement, Elements: elems}
	default:
		return sem.Constraint{Kind: sem.ConstraintNone}
	}
}

// resolveSubtypeIndication resolves a full subtype indication: the type
// mark, then its constraint shape.
func resolveSubtypeIndication(scope *sem.Scope, ind *ast.SubtypeIndication, deps Dependencies, c *diag.Collector) (sem.Subtype, bool) {
	typeMark, ok := resolveTypeMark(scope, &ind.TypeMark, deps, c)
	if !ok {
		return sem.Subtype{}, false
	}
	constraint := resolveConstraintShape(typeMark, ind.Constraint, c)
	return sem.Subtype{TypeMark: typeMark, Constraint: constraint}, true
}
