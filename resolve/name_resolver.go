package resolve

import "vhdlsem/sem"

// DefaultNameResolver is a minimal sem.NameResolver: it only consults the
// given scope's lexical chain and use-clause visibility, classifying the
// result from the matched entity's kind. It has no notion of separate
// compilation, libraries, or design units — a host compiler resolving
// names across design units supplies its own NameResolver that defers to
// this one only for the same-unit case.
type DefaultNameResolver struct{}

// ResolveName implements sem.NameResolver.
func (DefaultNameResolver) ResolveName(scope *sem.Scope, designator sem.Designator) sem.AnalysisResult[sem.ResolvedName] {
	ne, ok := scope.Lookup(designator)
	if !ok {
		return sem.Err[sem.ResolvedName](sem.EvalError{
			Kind:   sem.EvalUnknown,
			Reason: "no declaration of " + designator.Text(),
		})
	}
	if ne.IsOverloaded() {
		return sem.Ok(sem.ResolvedName{Class: sem.ResolvedOverloaded, Overloaded: ne.Candidates()})
	}
	ent := ne.Single()
	return sem.Ok(sem.ResolvedName{Class: classify(ent), Single: ent})
}

func classify(ent sem.Ent) sem.ResolvedNameClass {
	switch ent.Kind().(type) {
	case sem.TypeKind:
		return sem.ResolvedType
	case sem.LibraryKind:
		return sem.ResolvedLibrary
	case sem.DesignKind:
		return sem.ResolvedDesign
	case sem.OverloadedKind:
		return sem.ResolvedOverloaded
	case sem.ObjectKind, sem.DeferredConstantKind, sem.FileKind, sem.ObjectAliasKind,
		sem.InterfaceFileKind, sem.ElementDeclarationKind, sem.LoopParameterKind, sem.PhysicalLiteralKind:
		return sem.ResolvedObject
	default:
		return sem.ResolvedExpression
	}
}
