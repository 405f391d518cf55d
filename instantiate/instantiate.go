package instantiate

import (
	"context"
	"log/slog"

	"vhdlsem/ast"
	"vhdlsem/diag"
	"vhdlsem/internal/trace"
	"vhdlsem/location"
	"vhdlsem/sem"
)

// Dependencies bundles the external collaborators the instantiator calls
// out to, mirroring declare.Dependencies's bundling convention: one value
// built per design-unit analysis and threaded through recursive calls.
type Dependencies struct {
	Arena *sem.Arena
	Names sem.NameResolver

	// Logger receives low-volume phase traces of each instantiation; nil
	// (the zero value) disables tracing entirely.
	Logger *slog.Logger
}

// Analyzer implements ast.PackageInstantiator.
type Analyzer struct {
	Deps Dependencies
}

// substitution maps an uninstantiated entity id to the entity that should
// stand in for it in the instance: either a generic formal's bound actual,
// or (once computed) a package-internal entity's own instance-of copy.
// Seeded with the former before the deep copy begins; populated with the
// latter as copyEnt visits each member.
type substitution map[sem.EntityID]sem.Ent

// Instantiate resolves inst.Uninst, builds the generic-map substitution,
// and deep-copies the uninstantiated package's ordinary region under it
// (§4.G). The returned region is the instance's DesignKind payload; the
// caller (declare.analyzePackageInstantiation) wraps it in the
// DesignPackageInstance entity.
func (a Analyzer) Instantiate(scope *sem.Scope, inst *ast.PackageInstantiation, c *diag.Collector) sem.AnalysisResult[*sem.Region] {
	op := trace.Begin(context.Background(), a.Deps.Logger, "vhdlsem.instantiate.instantiate",
		slog.String("name", inst.Name.Text()))
	res := a.instantiate(scope, inst, c)
	if !res.IsOk() {
		op.End(res.Error())
	} else {
		op.End(nil)
	}
	return res
}

func (a Analyzer) instantiate(scope *sem.Scope, inst *ast.PackageInstantiation, c *diag.Collector) sem.AnalysisResult[*sem.Region] {
	uninst, ok := a.resolveUninst(scope, inst, c)
	if !ok {
		return sem.Err[*sem.Region](sem.EvalError{Kind: sem.EvalUnknown, Reason: "uninstantiated package did not resolve"})
	}

	sub := make(substitution)
	a.buildGenericMap(scope, inst, uninst, sub, c)

	region := copyRegionOf(a.Deps.Arena, sub, c, uninst.Region)
	return sem.Ok(region)
}

// resolveUninst resolves inst.Uninst to an uninstantiated package's
// DesignKind, diagnosing E_INSTANTIATE_FAILED on any mismatch.
func (a Analyzer) resolveUninst(scope *sem.Scope, inst *ast.PackageInstantiation, c *diag.Collector) (sem.DesignKind, bool) {
	res := a.Deps.Names.ResolveName(scope, inst.Uninst.Base)
	if !res.IsOk() || res.Value().Class != sem.ResolvedDesign {
		c.Collect(diag.NewIssue(diag.Error, diag.E_INSTANTIATE_FAILED,
			`"`+inst.Uninst.Base.Text()+`" does not name an uninstantiated package`).
			WithSpan(inst.Pos).
			WithDetail(diag.DetailKeyDesignator, inst.Uninst.Base.Text()).Build())
		return sem.DesignKind{}, false
	}
	ent := res.Value().Single
	inst.Uninst.Ref.Set(ent.ID())
	dk, ok := ent.Kind().(sem.DesignKind)
	if !ok || dk.Unit != sem.DesignPackage {
		c.Collect(diag.NewIssue(diag.Error, diag.E_INSTANTIATE_FAILED,
			`"`+inst.Uninst.Base.Text()+`" is not an uninstantiated package`).
			WithSpan(inst.Pos).
			WithDetail(diag.DetailKeyDesignator, inst.Uninst.Base.Text()).
			WithRelated(relatedDecl(ent)).Build())
		return sem.DesignKind{}, false
	}
	return dk, true
}

// buildGenericMap walks inst.GenericMap in order, matching each
// association (named or positional) against uninst.Generics and recording
// the resulting binding into sub (§4.G "package_generic_map"). A formal
// left unmatched by any association, or bound to an open actual, is simply
// absent from sub — map_type_ent's pass-through handles both the same way.
func (a Analyzer) buildGenericMap(scope *sem.Scope, inst *ast.PackageInstantiation, uninst sem.DesignKind, sub substitution, c *diag.Collector) {
	if uninst.Generics == nil {
		return
	}
	formals := uninst.Generics.Designators()
	positional := 0

	for i := range inst.GenericMap {
		assoc := &inst.GenericMap[i]

		var formal sem.Ent
		switch {
		case assoc.Formal != nil:
			ne, ok := uninst.Generics.Lookup(assoc.Formal.Base)
			if !ok {
				c.Collect(diag.NewIssue(diag.Error, diag.E_GENERIC_FORMAL_NOT_FOUND,
					`"`+assoc.Formal.Base.Text()+`" does not name a generic of this package`).
					WithSpan(assoc.Formal.Pos).
					WithDetail(diag.DetailKeyFormal, assoc.Formal.Base.Text()).Build())
				continue
			}
			formal = ne.Single()
			assoc.Formal.Ref.Set(formal.ID())
		case positional < len(formals):
			ne, _ := uninst.Generics.Lookup(formals[positional])
			formal = ne.Single()
			positional++
		default:
			c.Collect(diag.NewIssue(diag.Error, diag.E_GENERIC_MAP_ACTUAL,
				"too many positional generic-map associations").
				WithSpan(inst.Pos).Build())
			continue
		}

		if assoc.Actual == nil {
			// Open actual: accepted, no binding (§4.G).
			continue
		}

		a.bindGenericActual(scope, formal, assoc, sub, c)
	}
}

// bindGenericActual matches assoc.Actual against formal's generic kind and
// records the binding into sub, or diagnoses E_GENERIC_MAP_ACTUAL when the
// actual's resolved-name class does not fit the formal's kind (§4.G).
func (a Analyzer) bindGenericActual(scope *sem.Scope, formal sem.Ent, assoc *ast.Association, sub substitution, c *diag.Collector) {
	switch fk := formal.Kind().(type) {
	case sem.TypeKind:
		actualEnt, ok := a.resolveTypeActual(scope, assoc.Actual)
		if !ok {
			c.Collect(a.genericMapActualIssue(formal, assoc.Actual, "a type"))
			return
		}
		if _, isType := actualEnt.Kind().(sem.TypeKind); !isType {
			c.Collect(diag.NewIssue(diag.Error, diag.E_NOT_A_TYPE,
				`actual bound to type generic "`+formal.Designator().Text()+`" is not a type`).
				WithSpan(assoc.Actual.Span()).
				WithDetail(diag.DetailKeyFormal, formal.Designator().Text()).Build())
			return
		}
		sub[formal.ID()] = actualEnt

	case sem.ObjectKind:
		// Constant generic: no substitution table entry — Constraint and
		// Subtype carry no entity reference a copy would need to rewrite
		// (§4.G, see DESIGN.md). The actual is not type-checked against the
		// formal's type mark.
		_ = fk

	case sem.OverloadedKind:
		if fk.What != sem.OverloadInterfaceSubprogram {
			c.Collect(a.genericMapActualIssue(formal, assoc.Actual, "a subprogram"))
			return
		}
		actualEnt, ok := a.resolveSubprogramActual(scope, assoc.Actual)
		if !ok {
			c.Collect(a.genericMapActualIssue(formal, assoc.Actual, "a subprogram"))
			return
		}
		sub[formal.ID()] = actualEnt

	case sem.DesignKind:
		actualEnt, ok := a.resolveDesignActual(scope, assoc.Actual)
		if !ok {
			c.Collect(a.genericMapActualIssue(formal, assoc.Actual, "a package"))
			return
		}
		sub[formal.ID()] = actualEnt

	default:
		c.Collect(a.genericMapActualIssue(formal, assoc.Actual, "a recognized generic kind"))
	}
}

func (a Analyzer) genericMapActualIssue(formal sem.Ent, actual ast.Expr, want string) diag.Issue {
	return diag.NewIssue(diag.Error, diag.E_GENERIC_MAP_ACTUAL,
		`actual bound to generic "`+formal.Designator().Text()+`" does not resolve to `+want).
		WithSpan(actual.Span()).
		WithDetail(diag.DetailKeyFormal, formal.Designator().Text()).Build()
}

// resolveTypeActual accepts a name, with or without a trailing slice/
// call-or-indexed constraint suffix (§4.G): only the base identifier is
// resolved against scope, matching ast.Name's own documented division of
// labor between the core (base name) and its caller (suffix semantics).
func (a Analyzer) resolveTypeActual(scope *sem.Scope, actual ast.Expr) (sem.Ent, bool) {
	ne, ok := actual.(*ast.NameExpr)
	if !ok {
		return sem.Ent{}, false
	}
	res := a.Deps.Names.ResolveName(scope, ne.Name.Base)
	if !res.IsOk() || res.Value().Class != sem.ResolvedType {
		return sem.Ent{}, false
	}
	ent := res.Value().Single
	ne.Name.Ref.Set(ent.ID())
	return ent, true
}

// resolveSubprogramActual accepts a name resolved against scope, or a
// string literal naming a well-known operator (§4.G). Operator-symbol
// resolution for the well-known-operator case is delegated to the same
// name resolver, keyed by an operator designator built from the literal's
// text, since §6's NameResolver already knows how to look up an operator
// symbol among a region's overloads.
func (a Analyzer) resolveSubprogramActual(scope *sem.Scope, actual ast.Expr) (sem.Ent, bool) {
	switch e := actual.(type) {
	case *ast.NameExpr:
		res := a.Deps.Names.ResolveName(scope, e.Name.Base)
		if !res.IsOk() {
			return sem.Ent{}, false
		}
		v := res.Value()
		if v.Class == sem.ResolvedOverloaded {
			if len(v.Overloaded) != 1 {
				return sem.Ent{}, false
			}
			e.Name.Ref.Set(v.Overloaded[0].ID())
			return v.Overloaded[0], true
		}
		if v.Single.IsZero() {
			return sem.Ent{}, false
		}
		e.Name.Ref.Set(v.Single.ID())
		return v.Single, true
	case *ast.StringLiteral:
		res := a.Deps.Names.ResolveName(scope, sem.NewOperatorDesignator(e.Value))
		if !res.IsOk() {
			return sem.Ent{}, false
		}
		v := res.Value()
		if v.Class == sem.ResolvedOverloaded && len(v.Overloaded) == 1 {
			return v.Overloaded[0], true
		}
		if !v.Single.IsZero() {
			return v.Single, true
		}
		return sem.Ent{}, false
	default:
		return sem.Ent{}, false
	}
}

// resolveDesignActual accepts a name resolved against scope to a design
// unit (§4.G): a package instance, or another generic package formal
// passed through unbound.
func (a Analyzer) resolveDesignActual(scope *sem.Scope, actual ast.Expr) (sem.Ent, bool) {
	ne, ok := actual.(*ast.NameExpr)
	if !ok {
		return sem.Ent{}, false
	}
	res := a.Deps.Names.ResolveName(scope, ne.Name.Base)
	if !res.IsOk() || res.Value().Class != sem.ResolvedDesign {
		return sem.Ent{}, false
	}
	ent := res.Value().Single
	ne.Name.Ref.Set(ent.ID())
	return ent, true
}

func relatedDecl(ent sem.Ent) location.RelatedInfo {
	return location.RelatedInfo{Span: ent.Pos(), Message: location.MsgPreviousDefinition}
}
