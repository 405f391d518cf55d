package declare

import (
	"vhdlsem/ast"
	"vhdlsem/diag"
	"vhdlsem/sem"
)

// analyzeAliasDecl resolves the aliased name and defines the matching kind
// of alias entity (§4.D "Alias"): an object name becomes an ObjectAlias,
// a type becomes a Type::Alias, an overloaded name becomes an
// Overloaded::Alias keyed by a required signature. Library, design, and
// plain-expression names are not aliasable. After the alias entity is
// defined, every implicit of the aliased entity is re-added as an
// overloaded alias in the current scope, so an alias of a type also makes
// that type's predefined operators reachable under the new name.
func analyzeAliasDecl(scope *sem.Scope, d *ast.AliasDecl, deps Dependencies, c *diag.Collector) sem.FatalResult {
	res := deps.Names.ResolveName(scope, d.Target.Base)
	if !res.IsOk() {
		c.Collect(diag.NewIssue(diag.Error, diag.E_NOT_DECLARED,
			`"`+d.Target.Base.Text()+`" is not declared`).
			WithSpan(d.Target.Pos).
			WithDetail(diag.DetailKeyDesignator, d.Target.Base.Text()).Build())
		return sem.FatalOk()
	}
	resolved := res.Value()

	var ent, base sem.Ent
	switch resolved.Class {
	case sem.ResolvedObject:
		base = resolved.Single
		ent = deps.Arena.Define(&d.Ref, d.Name,
			sem.ObjectAliasKind{Base: base, TypeMark: objectTypeMark(base)}, d.Pos)

	case sem.ResolvedType:
		base = resolved.Single
		ent = deps.Arena.Define(&d.Ref, d.Name, sem.TypeKind{Type: &sem.AliasType{Of: base}}, d.Pos)

	case sem.ResolvedOverloaded:
		if d.Signature == nil {
			c.Collect(diag.NewIssue(diag.Error, diag.E_SIGNATURE_REQUIRED,
				`alias of overloaded "`+d.Target.Base.Text()+`" requires a signature`).
				WithSpan(d.Pos).Build())
			return sem.FatalOk()
		}
		key := resolveSignatureAST(scope, d.Signature, deps, c).Key()
		found := false
		for _, cand := range resolved.Overloaded {
			ok, _ := cand.Kind().(sem.OverloadedKind)
			if ok.Signature.Key().Equal(key) {
				base = cand
				found = true
				break
			}
		}
		if !found {
			c.Collect(diag.NewIssue(diag.Error, diag.E_NO_SUCH_SIGNATURE,
				`no overload of "`+d.Target.Base.Text()+`" matches the given signature`).
				WithSpan(d.Pos).
				WithDetail(diag.DetailKeySignature, key.String()).Build())
			return sem.FatalOk()
		}
		baseKind, _ := base.Kind().(sem.OverloadedKind)
		ent = deps.Arena.Define(&d.Ref, d.Name,
			sem.OverloadedKind{What: sem.OverloadAlias, Signature: baseKind.Signature, AliasOf: base}, d.Pos)

	case sem.ResolvedFinal:
		// §9 open question: aliasing a "Final" resolved-name class (a
		// host-extended resolution outcome the core does not itself model)
		// is not implemented; surfaced as a placeholder diagnostic rather
		// than guessed at. deps.FinalAliasPlaceholder controls whether that
		// placeholder is a hard error or just a warning.
		severity := diag.Error
		if deps.FinalAliasPlaceholder {
			severity = diag.Warning
		}
		c.Collect(diag.NewIssue(severity, diag.E_FINAL_ALIAS_UNSUPPORTED,
			`aliasing "`+d.Target.Base.Text()+`" is not supported`).
			WithSpan(d.Target.Pos).
			WithDetail(diag.DetailKeyDesignator, d.Target.Base.Text()).Build())
		return sem.FatalOk()

	default:
		c.Collect(diag.NewIssue(diag.Error, diag.E_ILLEGAL_ALIAS,
			`"`+d.Target.Base.Text()+`" cannot be aliased`).
			WithSpan(d.Target.Pos).
			WithDetail(diag.DetailKeyDesignator, d.Target.Base.Text()).Build())
		return sem.FatalOk()
	}

	scope.Add(ent)
	for _, implicit := range base.Implicits() {
		ik, _ := implicit.Kind().(sem.OverloadedKind)
		alias := deps.Arena.Implicit(ent, implicit.Designator(),
			sem.OverloadedKind{What: sem.OverloadAlias, Signature: ik.Signature, AliasOf: implicit}, d.Pos)
		scope.Add(alias)
	}
	return sem.FatalOk()
}

// objectTypeMark extracts the declared type mark of a ResolvedObject-class
// entity, regardless of which of the several EntityKind variants that
// classification covers it was declared with (mirrors the sem-internal
// paramBaseType helper signature.go uses for the same purpose, since that
// one is unexported).
func objectTypeMark(ent sem.Ent) sem.Ent {
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
