package declare

import (
	"strconv"

	"fortio.org/safecast"

	"vhdlsem/ast"
	"vhdlsem/diag"
	"vhdlsem/location"
	"vhdlsem/sem"
)

// analyzeTypeDecl dispatches a full type declaration to its per-variant
// analyzer (§4.D step 3). Incomplete declarations were already handled by
// incompleteTypePass; nothing remains to do for them here. When the
// declarative part's incomplete-type pass recorded a matching forward
// declaration for this symbol, overwriteID is non-nil and every variant
// upgrades that entity in place via DefineWithOptID instead of allocating
// a fresh one.
func analyzeTypeDecl(scope *sem.Scope, d *ast.TypeDecl, incomplete map[string]pending, deps Dependencies, c *diag.Collector) sem.FatalResult {
	if d.Def == nil {
		return sem.FatalOk()
	}

	var overwriteID *sem.EntityID
	if p, ok := incomplete[d.Name.Key()]; ok {
		id := p.ent
		overwriteID = &id
	}

	switch def := d.Def.(type) {
	case *ast.EnumTypeDef:
		return defineEnumType(scope, d, def, overwriteID, deps, c)
	case *ast.NumericTypeDef:
		return defineNumericType(scope, d, def, overwriteID, deps, c)
	case *ast.PhysicalTypeDef:
		return definePhysicalType(scope, d, def, overwriteID, deps, c)
	case *ast.RecordTypeDef:
		return defineRecordType(scope, d, def, overwriteID, deps, c)
	case *ast.ArrayTypeDef:
		return defineArrayType(scope, d, def, overwriteID, deps, c)
	case *ast.AccessTypeDef:
		return defineAccessType(scope, d, def, overwriteID, deps, c)
	case *ast.FileTypeDef:
		return defineFileType(scope, d, def, overwriteID, deps, c)
	case *ast.ProtectedTypeDef:
		return defineProtectedType(scope, d, def, overwriteID, deps, c)
	case *ast.ProtectedBodyDef:
		return defineProtectedBody(scope, d, def, deps, c)
	case *ast.AliasTypeDef:
		return defineAliasType(scope, d, def, overwriteID, deps, c)
	default:
		return sem.FatalErr("declare: unrecognized type definition node")
	}
}

// publishType defines ent's type entity (upgrading overwriteID in place
// when set), inserts it into scope unless it was an upgrade (the
// incomplete-type pass already inserted that id), and synthesizes and
// inserts its implicit operations.
func publishType(scope *sem.Scope, d *ast.TypeDecl, overwriteID *sem.EntityID, t sem.Type, deps Dependencies, c *diag.Collector) sem.Ent {
	ent := deps.Arena.DefineWithOptID(overwriteID, &d.Ref, d.Name, sem.TypeKind{Type: t}, d.Pos)
	if overwriteID == nil {
		scope.Add(ent)
	}
	for _, imp := range sem.SynthesizeImplicits(deps.Arena, deps.Implicits, ent) {
		scope.Add(imp)
	}
	return ent
}

// defineEnumType builds a nullary overloaded entity per literal, returning
// the enum type, in addition to the comparison/ordering operators
// publishType's SynthesizeImplicits call attaches (§4.D "Enumeration").
func defineEnumType(scope *sem.Scope, d *ast.TypeDecl, def *ast.EnumTypeDef, overwriteID *sem.EntityID, deps Dependencies, c *diag.Collector) sem.FatalResult {
	ent := publishType(scope, d, overwriteID, &sem.EnumType{Literals: def.Literals}, deps, c)
	for _, lit := range def.Literals {
		sig := sem.Signature{Return: ent, HasRet: true}
		litEnt := deps.Arena.Implicit(ent, lit, sem.OverloadedKind{What: sem.OverloadEnumLiteral, Signature: sig}, d.Pos)
		scope.Add(litEnt)
	}
	return sem.FatalOk()
}

// defineNumericType classifies the type's range against universal-integer
// or universal-real by typing its low bound in unknown-target mode, then
// creates the matching Integer or Real type (§4.D "Numeric").
func defineNumericType(scope *sem.Scope, d *ast.TypeDecl, def *ast.NumericTypeDef, overwriteID *sem.EntityID, deps Dependencies, c *diag.Collector) sem.FatalResult {
	isReal := def.Real
	if deps.Exprs != nil {
		if res := deps.Exprs.TypeUnknown(scope, def.Range.Low, c); res.IsOk() {
			isReal = sem.IsAnyReal(res.Value())
		}
	}
	rng := sem.Range{Ascending: !def.Range.Descending, Universal: sem.UniversalInteger}
	var t sem.Type
	if isReal {
		rng.Universal = sem.UniversalReal
		t = &sem.RealType{Range: rng}
	} else {
		t = &sem.IntegerType{Range: rng}
	}
	publishType(scope, d, overwriteID, t, deps, c)
	return sem.FatalOk()
}

// definePhysicalType attaches the primary unit and each named secondary
// unit as an implicit PhysicalLiteral entity, diagnosing a secondary unit
// whose multiplier is relative to a name that is not the primary unit or
// an earlier secondary unit of this same type (§4.D "Physical").
func definePhysicalType(scope *sem.Scope, d *ast.TypeDecl, def *ast.PhysicalTypeDef, overwriteID *sem.EntityID, deps Dependencies, c *diag.Collector) sem.FatalResult {
	rng := sem.Range{Ascending: !def.Range.Descending, Universal: sem.UniversalInteger}
	t := &sem.PhysicalType{Range: rng}
	ent := deps.Arena.DefineWithOptID(overwriteID, &d.Ref, d.Name, sem.TypeKind{Type: t}, d.Pos)
	if overwriteID == nil {
		scope.Add(ent)
	}

	t.Primary = deps.Arena.Implicit(ent, def.Primary, sem.PhysicalLiteralKind{Type: ent}, d.Pos)
	scope.Add(t.Primary)

	known := map[string]bool{def.Primary.Key(): true}
	for _, unit := range def.Units {
		if !known[unit.OfUnit.Key()] {
			c.Collect(diag.NewIssue(diag.Error, diag.E_SECONDARY_UNIT_BASE,
				`secondary unit "`+unit.Name.Text()+`" is not relative to a unit of this physical type`).
				WithSpan(d.Pos).
				WithDetail(diag.DetailKeyUnit, unit.Name.Text()).Build())
		}
		if unit.Multiplier != nil {
			typeUnknown(scope, unit.Multiplier, deps, c)
			checkSecondaryUnitMultiplier(unit, d.Pos, c)
		}
		lit := deps.Arena.Implicit(ent, unit.Name, sem.PhysicalLiteralKind{Type: ent}, d.Pos)
		t.Secondary = append(t.Secondary, lit)
		scope.Add(lit)
		known[unit.Name.Key()] = true
	}

	for _, imp := range sem.SynthesizeImplicits(deps.Arena, deps.Implicits, ent) {
		scope.Add(imp)
	}
	return sem.FatalOk()
}

// checkSecondaryUnitMultiplier diagnoses a secondary unit whose multiplier,
// when it is a plain integer literal, overflows the 32-bit width this
// analyzer uses for physical-type multipliers. Non-literal multipliers
// (named constants, expressions) are left to the expression typer and are
// not range-checked here. Uses fortio.org/safecast rather than a raw
// strconv.ParseInt(..., 32) so the overflow check shares the same
// conversion primitive the expression typer uses for integer narrowing.
func checkSecondaryUnitMultiplier(unit ast.PhysicalUnit, pos location.Span, c *diag.Collector) {
	lit, ok := unit.Multiplier.(*ast.IntegerLiteral)
	if !ok {
		return
	}
	v, err := strconv.ParseInt(lit.Text, 10, 64)
	if err != nil {
		return // malformed literal text; lexer/parser's concern, not ours
	}
	if _, err := safecast.Conv[int32](v); err != nil {
		c.Collect(diag.NewIssue(diag.Error, diag.E_SECONDARY_UNIT_BASE,
			`secondary unit "`+unit.Name.Text()+`" multiplier overflows the physical type's underlying range`).
			WithSpan(pos).
			WithDetail(diag.DetailKeyUnit, unit.Name.Text()).Build())
	}
}

// defineRecordType opens an element region, defines one ElementDeclaration
// entity per named element, and stores the closed region inside the type
// (§4.D "Record").
func defineRecordType(scope *sem.Scope, d *ast.TypeDecl, def *ast.RecordTypeDef, overwriteID *sem.EntityID, deps Dependencies, c *diag.Collector) sem.FatalResult {
	region := sem.NewRegion(sem.RegionOrdinary)
	for i := range def.Elements {
		elem := &def.Elements[i]
		indication, ok := resolveSubtypeIndication(scope, &elem.Indication, deps, c)
		if !ok {
			continue
		}
		for j, name := range elem.Names {
			ent := deps.Arena.Define(&elem.Refs[j], name, sem.ElementDeclarationKind{Subtype: indication}, elem.Indication.Pos)
			region.Add(ent, false)
		}
	}
	region.Close(c)
	publishType(scope, d, overwriteID, &sem.RecordType{Elements: region}, deps, c)
	return sem.FatalOk()
}

// defineArrayType resolves each index's base type (either the type mark of
// an unconstrained "type_mark range <>" index, or the subtype of a
// constrained discrete-range index) and the element subtype (§4.D "Array").
func defineArrayType(scope *sem.Scope, d *ast.TypeDecl, def *ast.ArrayTypeDef, overwriteID *sem.EntityID, deps Dependencies, c *diag.Collector) sem.FatalResult {
	indexes := make([]sem.ArrayIndex, len(def.Indexes))
	for i := range def.Indexes {
		idx := &def.Indexes[i]
		switch {
		case idx.IndexTypeMark != nil:
			if bt, ok := resolveTypeMark(scope, idx.IndexTypeMark, deps, c); ok {
				indexes[i] = sem.ArrayIndex{BaseType: bt}
			}
		case idx.Range != nil && idx.Range.Subtype != nil:
			if bt, ok := resolveSubtypeIndication(scope, idx.Range.Subtype, deps, c); ok {
				indexes[i] = sem.ArrayIndex{BaseType: bt.TypeMark}
			}
		case idx.Range != nil && idx.Range.Range != nil:
			typeUnknown(scope, idx.Range.Range.Low, deps, c)
			typeUnknown(scope, idx.Range.Range.High, deps, c)
		}
	}

	elem, ok := resolveSubtypeIndication(scope, &def.Elem, deps, c)
	if !ok {
		return sem.FatalOk()
	}
	publishType(scope, d, overwriteID, &sem.ArrayType{Indexes: indexes, Elem: elem.TypeMark}, deps, c)
	return sem.FatalOk()
}

// defineAccessType resolves the designated subtype (§4.D "Access").
func defineAccessType(scope *sem.Scope, d *ast.TypeDecl, def *ast.AccessTypeDef, overwriteID *sem.EntityID, deps Dependencies, c *diag.Collector) sem.FatalResult {
	designated, ok := resolveSubtypeIndication(scope, &def.Designated, deps, c)
	if !ok {
		return sem.FatalOk()
	}
	publishType(scope, d, overwriteID, &sem.AccessType{Designated: designated}, deps, c)
	return sem.FatalOk()
}

// defineFileType resolves the element type mark; publishType's
// SynthesizeImplicits call then synthesizes the file-handling subprograms
// parameterized by it (§4.D "File").
func defineFileType(scope *sem.Scope, d *ast.TypeDecl, def *ast.FileTypeDef, overwriteID *sem.EntityID, deps Dependencies, c *diag.Collector) sem.FatalResult {
	elem, ok := resolveTypeMark(scope, &def.Elem, deps, c)
	if !ok {
		return sem.FatalOk()
	}
	publishType(scope, d, overwriteID, &sem.FileType{Elem: elem}, deps, c)
	return sem.FatalOk()
}

// defineProtectedType defines the type with an empty region, analyzes its
// subprogram-declaration members in a nested region, then swaps that
// closed region into the type's Region field — the one documented
// post-publish mutation besides the body position (§4.D "Protected",
// §3 invariant 1).
func defineProtectedType(scope *sem.Scope, d *ast.TypeDecl, def *ast.ProtectedTypeDef, overwriteID *sem.EntityID, deps Dependencies, c *diag.Collector) sem.FatalResult {
	t := &sem.ProtectedType{}
	ent := deps.Arena.DefineWithOptID(overwriteID, &d.Ref, d.Name, sem.TypeKind{Type: t}, d.Pos)
	if overwriteID == nil {
		scope.Add(ent)
	}

	scope.Nested(sem.RegionOrdinary)
	for _, member := range def.Members {
		if res := analyzeSubprogramDecl(scope, member, deps, c); !res.IsOk() {
			return res
		}
	}
	members := scope.Current()
	scope.Close(c)
	t.Region = members
	return sem.FatalOk()
}

// defineProtectedBody looks up the named protected type, diagnoses a
// missing type, a non-protected type, or a second body, then analyzes the
// body's own declarative part in a scope where the type's member region is
// visible, and finally records the body's position (§4.D "Protected
// body").
func defineProtectedBody(scope *sem.Scope, d *ast.TypeDecl, def *ast.ProtectedBodyDef, deps Dependencies, c *diag.Collector) sem.FatalResult {
	res := deps.Names.ResolveName(scope, def.Of)
	if !res.IsOk() || res.Value().Class != sem.ResolvedType {
		c.Collect(diag.NewIssue(diag.Error, diag.E_NOT_DECLARED,
			`"`+def.Of.Text()+`" is not a declared protected type`).
			WithSpan(d.Pos).
			WithDetail(diag.DetailKeyDesignator, def.Of.Text()).Build())
		return sem.FatalOk()
	}
	typeEnt := res.Value().Single
	tk, _ := typeEnt.Kind().(sem.TypeKind)
	pt, ok := tk.Type.(*sem.ProtectedType)
	if !ok {
		c.Collect(diag.NewIssue(diag.Error, diag.E_TYPE_MISMATCH,
			`"`+def.Of.Text()+`" is not a protected type`).
			WithSpan(d.Pos).Build())
		return sem.FatalOk()
	}
	if pt.HasBody {
		c.Collect(diag.NewIssue(diag.Error, diag.E_PROTECTED_BODY_DUPLICATE,
			`protected type "`+def.Of.Text()+`" already has a body`).
			WithSpan(d.Pos).Build())
		return sem.FatalOk()
	}

	scope.Nested(sem.RegionOrdinary)
	scope.Use(pt.Region)
	if res := AnalyzeDeclarativePart(scope, def.Declarations, deps, c); !res.IsOk() {
		scope.Close(c)
		return res
	}
	scope.Close(c)

	pt.HasBody = true
	pt.BodyPos = d.Pos
	return sem.FatalOk()
}

// defineAliasType resolves a type definition written as a bare type mark
// (distinct from AliasDecl, which aliases a declaration-level name).
func defineAliasType(scope *sem.Scope, d *ast.TypeDecl, def *ast.AliasTypeDef, overwriteID *sem.EntityID, deps Dependencies, c *diag.Collector) sem.FatalResult {
	of, ok := resolveTypeMark(scope, &def.Of, deps, c)
	if !ok {
		return sem.FatalOk()
	}
	publishType(scope, d, overwriteID, &sem.AliasType{Of: of}, deps, c)
	return sem.FatalOk()
}

// analyzeSubtypeDecl resolves the full subtype indication and defines a
// Subtype entity pairing the base type mark with its constraint.
func analyzeSubtypeDecl(scope *sem.Scope, d *ast.SubtypeDecl, deps Dependencies, c *diag.Collector) sem.FatalResult {
	indication, ok := resolveSubtypeIndication(scope, &d.Indication, deps, c)
	if !ok {
		return sem.FatalOk()
	}
	ent := deps.Arena.Define(&d.Ref, d.Name,
		sem.TypeKind{Type: &sem.SubtypeType{Of: indication.TypeMark, Constraint: indication.Constraint}}, d.Pos)
	scope.Add(ent)
	return sem.FatalOk()
}

// analyzePackageInstantiation delegates to the package instantiator and,
// on success, defines a Design(PackageInstance) entity capturing the
// instance's region (§4.D "Package instantiation", §4.G).
func analyzePackageInstantiation(scope *sem.Scope, d *ast.PackageInstantiation, deps Dependencies, c *diag.Collector) sem.FatalResult {
	if deps.Instantiator == nil {
		return sem.FatalErr("declare: no package instantiator configured")
	}
	res := deps.Instantiator.Instantiate(scope, d, c)
	if !res.IsOk() {
		return sem.FatalOk()
	}
	ent := deps.Arena.Define(&d.Ref, d.Name, sem.DesignKind{Unit: sem.DesignPackageInstance, Region: res.Value()}, d.Pos)
	scope.Add(ent)
	return sem.FatalOk()
}
