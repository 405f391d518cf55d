package declare

import (
	"vhdlsem/ast"
	"vhdlsem/diag"
	"vhdlsem/sem"
)

// analyzeObjectDecl defines one Object or DeferredConstant entity per name
// sharing the declaration's subtype indication and initializer (§4.D
// "Object"). A deferred constant (class constant, no initializer) is only
// legal in a package declarative region, but declare does not reject it
// elsewhere — a host compiler distinguishes the region kind via
// scope.Current().Kind() before calling in, if it cares to diagnose that
// separately.
func analyzeObjectDecl(scope *sem.Scope, d *ast.ObjectDecl, deps Dependencies, c *diag.Collector) sem.FatalResult {
	indication, ok := resolveSubtypeIndication(scope, &d.Indication, deps, c)
	if !ok {
		return sem.FatalOk()
	}

	if d.Init != nil {
		typeAgainst(scope, d.Init, indication, deps, c)
	} else if d.Class == sem.ClassConstant {
		for i, name := range d.Names {
			ent := deps.Arena.Define(&d.Refs[i], name, sem.DeferredConstantKind{Subtype: indication}, d.Pos)
			scope.Add(ent)
		}
		return sem.FatalOk()
	}

	kind := sem.ObjectKind{Class: d.Class, Subtype: indication, HasDefault: d.Init != nil}
	for i, name := range d.Names {
		ent := deps.Arena.Define(&d.Refs[i], name, kind, d.Pos)
		scope.Add(ent)
	}
	return sem.FatalOk()
}

// typeAgainst types expr against target's subtype when an ExprTyper is
// available, discarding the result: declare only needs the side effect of
// resolving names/refs inside the initializer, plus whatever diagnostics
// the typer emits. Declarative-part analysis does not itself gate on the
// initializer's type, since that is purely an expression-typing concern.
func typeAgainst(scope *sem.Scope, expr ast.Expr, target sem.Subtype, deps Dependencies, c *diag.Collector) {
	if deps.Exprs == nil {
		return
	}
	deps.Exprs.TypeAgainst(scope, expr, target, c)
}

func typeUnknown(scope *sem.Scope, expr ast.Expr, deps Dependencies, c *diag.Collector) {
	if deps.Exprs == nil {
		return
	}
	deps.Exprs.TypeUnknown(scope, expr, c)
}

// analyzeFileDecl defines a File entity, typing open_info/file_name in
// unknown-target mode when the grammar supplied them (§4.D "File").
func analyzeFileDecl(scope *sem.Scope, d *ast.FileDecl, deps Dependencies, c *diag.Collector) sem.FatalResult {
	indication, ok := resolveSubtypeIndication(scope, &d.Indication, deps, c)
	if !ok {
		return sem.FatalOk()
	}
	if d.OpenInfo != nil {
		typeUnknown(scope, d.OpenInfo, deps, c)
	}
	if d.FileName != nil {
		typeUnknown(scope, d.FileName, deps, c)
	}
	ent := deps.Arena.Define(&d.Ref, d.Name, sem.FileKind{Subtype: indication}, d.Pos)
	scope.Add(ent)
	return sem.FatalOk()
}

// analyzeComponentDecl opens a nested scope for the component's generic
// and port interface lists, analyzes each, then captures the closed
// region as the component's kind payload (§4.D "Component").
func analyzeComponentDecl(scope *sem.Scope, d *ast.ComponentDecl, deps Dependencies, c *diag.Collector) sem.FatalResult {
	region := scope.Nested(sem.RegionOrdinary)
	if res := analyzeInterfaceList(scope, d.Generics, deps, c); !res.IsOk() {
		return res
	}
	if res := analyzeInterfaceList(scope, d.Ports, deps, c); !res.IsOk() {
		return res
	}
	scope.Close(c)

	ent := deps.Arena.Define(&d.Ref, d.Name, sem.ComponentKind{Region: region}, d.Pos)
	scope.Add(ent)
	return sem.FatalOk()
}

// analyzeInterfaceList defines one entity per formal in an interface list
// (a component's generics/ports, or a subprogram's parameters). Object-
// shaped formals become ObjectKind entities; file-class formals become
// InterfaceFileKind; the non-object generic formal kinds (type,
// subprogram, package) are handled by the package instantiator's own
// generic-map logic and are only given a placeholder InterfaceType/
// OverloadedKind/DesignKind entity here so ordinary name lookup works
// inside the enclosing declarative part.
func analyzeInterfaceList(scope *sem.Scope, formals []ast.InterfaceDecl, deps Dependencies, c *diag.Collector) sem.FatalResult {
	for i := range formals {
		f := &formals[i]
		if f.Generic != nil {
			if res := analyzeGenericFormal(scope, f, deps, c); !res.IsOk() {
				return res
			}
			continue
		}

		indication, ok := resolveSubtypeIndication(scope, &f.Indication, deps, c)
		if !ok {
			continue
		}
		if f.Default != nil {
			typeAgainst(scope, f.Default, indication, deps, c)
		}

		kind := sem.ObjectKind{Class: f.Class, Mode: f.Mode, Subtype: indication, HasDefault: f.Default != nil}
		for j, name := range f.Names {
			ent := deps.Arena.Define(&f.Refs[j], name, kind, f.Pos)
			scope.Add(ent)
		}
	}
	return sem.FatalOk()
}

// analyzeGenericFormal defines a placeholder entity for a type, subprogram,
// or package generic formal so it is visible by name within the rest of
// the declarative part; the package instantiator substitutes the actual
// bound to it during instantiation (§4.G).
func analyzeGenericFormal(scope *sem.Scope, f *ast.InterfaceDecl, deps Dependencies, c *diag.Collector) sem.FatalResult {
	if len(f.Names) == 0 {
		return sem.FatalOk()
	}
	name := f.Names[0]
	switch f.Generic.Kind {
	case ast.GenericType:
		ent := deps.Arena.Define(&f.Refs[0], name, sem.TypeKind{Type: &sem.InterfaceType{}}, f.Pos)
		scope.Add(ent)
	case ast.GenericSubprogram:
		sig := resolveSignatureAST(scope, f.Generic.Signature, deps, c)
		ent := deps.Arena.Define(&f.Refs[0], name,
			sem.OverloadedKind{What: sem.OverloadInterfaceSubprogram, Signature: sig}, f.Pos)
		scope.Add(ent)
	case ast.GenericPackage:
		ent := deps.Arena.Define(&f.Refs[0], name, sem.DesignKind{Unit: sem.DesignPackageInstance}, f.Pos)
		scope.Add(ent)
	}
	return sem.FatalOk()
}

// analyzeAttributeDecl defines an Attribute entity carrying its value type.
func analyzeAttributeDecl(scope *sem.Scope, d *ast.AttributeDecl, deps Dependencies, c *diag.Collector) sem.FatalResult {
	typeMark, ok := resolveTypeMark(scope, &d.TypeMark, deps, c)
	if !ok {
		return sem.FatalOk()
	}
	ent := deps.Arena.Define(&d.Ref, d.Name, sem.AttributeKind{Type: typeMark}, d.Pos)
	scope.Add(ent)
	return sem.FatalOk()
}

// analyzeAttributeSpec resolves the named attribute and target, reporting
// E_SIGNATURE_REQUIRED when the target is overloaded and no entity class
// is given (no signature is read), then types the value
// expression against the attribute's declared type (§4.D "Attribute
// specification").
func analyzeAttributeSpec(scope *sem.Scope, d *ast.AttributeSpec, deps Dependencies, c *diag.Collector) sem.FatalResult {
	attrRes := deps.Names.ResolveName(scope, d.Attribute.Base)
	if !attrRes.IsOk() || attrRes.Value().Single.IsZero() {
		c.Collect(diag.NewIssue(diag.Error, diag.E_NOT_DECLARED,
			`"`+d.Attribute.Base.Text()+`" is not a declared attribute`).
			WithSpan(d.Attribute.Pos).
			WithDetail(diag.DetailKeyDesignator, d.Attribute.Base.Text()).Build())
		return sem.FatalOk()
	}
	attr := attrRes.Value().Single
	d.Attribute.Ref.Set(attr.ID())

	ak, ok := attr.Kind().(sem.AttributeKind)
	if !ok {
		return sem.FatalOk()
	}

	if !d.TargetAll && !d.TargetOther {
		targetRes := deps.Names.ResolveName(scope, d.Target.Base)
		if targetRes.IsOk() {
			if targetRes.Value().Class == sem.ResolvedOverloaded && d.Class == ast.EntityClassUnspecified {
				c.Collect(diag.NewIssue(diag.Error, diag.E_SIGNATURE_REQUIRED,
					`attribute specification for overloaded "`+d.Target.Base.Text()+`" requires a signature`).
					WithSpan(d.Target.Pos).Build())
			} else if !targetRes.Value().Single.IsZero() {
				d.Target.Ref.Set(targetRes.Value().Single.ID())
			}
		}
	}

	typeAgainst(scope, d.Value, sem.Subtype{TypeMark: ak.Type}, deps, c)
	return sem.FatalOk()
}
