package declare

import (
	"vhdlsem/ast"
	"vhdlsem/diag"
	"vhdlsem/sem"
)

// defineParams resolves a subprogram's formal parameter list, defining one
// ObjectKind entity per name in the scope's current (already nested)
// region and returning the defined entities in order, for use as a
// Signature's Params.
func defineParams(scope *sem.Scope, params []ast.InterfaceDecl, deps Dependencies, c *diag.Collector) []sem.Ent {
	var ents []sem.Ent
	for i := range params {
		f := &params[i]
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
			ents = append(ents, ent)
		}
	}
	return ents
}

// resolveSignatureAST resolves the unresolved parameter/return shape an
// alias or generic-subprogram formal writes (distinct from a subprogram
// declaration's own parameter list, which defines real formal entities —
// a signature written for disambiguation only needs anonymous per-
// parameter type-mark carriers).
func resolveSignatureAST(scope *sem.Scope, sigAST *ast.SignatureAST, deps Dependencies, c *diag.Collector) sem.Signature {
	if sigAST == nil {
		return sem.Signature{}
	}
	var sig sem.Signature
	for i := range sigAST.Params {
		indication, ok := resolveSubtypeIndication(scope, &sigAST.Params[i], deps, c)
		if !ok {
			continue
		}
		param := deps.Arena.Implicit(indication.TypeMark, sem.Designator{}, sem.ObjectKind{Class: sem.ClassConstant, Subtype: indication}, sigAST.Params[i].Pos)
		sig.Params = append(sig.Params, param)
	}
	if sigAST.Return != nil {
		indication, ok := resolveSubtypeIndication(scope, sigAST.Return, deps, c)
		if ok {
			sig.Return = deps.Arena.Implicit(indication.TypeMark, sem.Designator{}, sem.ObjectKind{Class: sem.ClassConstant, Subtype: indication}, sigAST.Return.Pos)
			sig.HasRet = true
		}
	}
	return sig
}

// analyzeSubprogramDecl handles both a bare subprogram declaration and a
// subprogram body (§4.D "Subprogram body"/"Subprogram declaration"): open
// a nested scope, analyze the parameter list into a Signature, define the
// overloaded entity in the enclosing region, then — only when Body is set
// — recurse into the body's own declarative part and statement list
// before closing the nested scope.
func analyzeSubprogramDecl(scope *sem.Scope, d *ast.SubprogramDecl, deps Dependencies, c *diag.Collector) sem.FatalResult {
	outer := scope.Current()
	scope.Nested(sem.RegionOrdinary)

	params := defineParams(scope, d.Params, deps, c)
	sig := sem.Signature{Params: params}

	var returnType sem.Ent
	if d.Kind == ast.SubprogramFunction && d.ReturnType != nil {
		if rt, ok := resolveTypeMark(scope, d.ReturnType, deps, c); ok {
			returnType = rt
			sig.Return = rt
			sig.HasRet = true
		}
	}

	ent := deps.Arena.Define(&d.Ref, d.Name, sem.OverloadedKind{What: sem.OverloadSubprogram, Signature: sig}, d.Pos)
	outer.Add(ent, false)

	if d.Body != nil {
		if res := AnalyzeDeclarativePart(scope, d.Body.Declarations, deps, c); !res.IsOk() {
			return res
		}
		root := ast.SequentialRoot{Kind: ast.SequentialProcedure}
		if d.Kind == ast.SubprogramFunction {
			root = ast.SequentialRoot{Kind: ast.SequentialFunction, ReturnType: returnType}
		}
		if deps.Sequential != nil {
			if res := deps.Sequential.AnalyzeSequentialPart(scope, root, d.Body.Statements, c); !res.IsOk() {
				scope.Close(c)
				return res
			}
		}
	}

	scope.Close(c)
	return sem.FatalOk()
}
