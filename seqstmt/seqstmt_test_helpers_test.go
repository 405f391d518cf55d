package seqstmt

import (
	"vhdlsem/ast"
	"vhdlsem/diag"
	"vhdlsem/exprtype"
	"vhdlsem/location"
	"vhdlsem/resolve"
	"vhdlsem/sem"
)

func testPos() location.Span {
	return location.Point(location.MustNewSourceID("seqstmt_test"), 1, 1)
}

func name(text string) ast.Name {
	return ast.Name{Pos: testPos(), Base: sem.NewSimpleDesignator(text, false)}
}

func nameExpr(text string) *ast.NameExpr {
	return &ast.NameExpr{Pos: testPos(), Name: name(text)}
}

// fakeProcedureCalls is a sem.ProcedureCallResolver returning a fixed
// result per call, enough to exercise analyzeProcedureCall's own wiring
// without a real overload resolver.
type fakeProcedureCalls struct {
	ent sem.Ent
	err bool
}

func (f fakeProcedureCalls) ResolveProcedureCall(scope *sem.Scope, target sem.Designator, argc int, c *diag.Collector) sem.AnalysisResult[sem.Ent] {
	if f.err {
		return sem.Err[sem.Ent](sem.EvalError{Kind: sem.EvalUnknown, Reason: "no matching procedure"})
	}
	return sem.Ok(f.ent)
}

// fakeTargets is a sem.TargetWaveformResolver returning a fixed subtype,
// enough to exercise analyzeAssign's own wiring without a real target
// resolver.
type fakeTargets struct {
	subtype sem.Subtype
	err     bool
}

func (f fakeTargets) ResolveTarget(scope *sem.Scope, target sem.Designator, isSignal bool, c *diag.Collector) sem.AnalysisResult[sem.Subtype] {
	if f.err {
		return sem.Err[sem.Subtype](sem.EvalError{Kind: sem.EvalUnknown, Reason: "no such target"})
	}
	return sem.Ok(f.subtype)
}

// testFixture wires a real resolve.DefaultPredefinedTypes and
// exprtype.Analyzer alongside small fakes for the two host-owned
// collaborators (procedure-call and target/waveform resolution) that have
// no reference implementation in this module yet.
type testFixture struct {
	arena   *sem.Arena
	scope   *sem.Scope
	predef  *resolve.DefaultPredefinedTypes
	deps    Dependencies
	a       Analyzer
	integer sem.Ent
	boolean sem.Ent
}

func newFixture() *testFixture {
	arena := sem.NewArena()
	predef := resolve.NewDefaultPredefinedTypes(arena, testPos())
	scope := sem.NewScope(sem.RegionOrdinary)

	f := &testFixture{arena: arena, scope: scope, predef: predef}
	f.publish(predef.Boolean())
	f.publish(predef.String())
	f.publish(predef.Time())
	f.publish(predef.SeverityLevel())
	f.boolean = predef.Boolean()
	f.integer = f.defineType("integer", sem.TypeKind{Type: &sem.IntegerType{}})

	exprs := exprtype.Analyzer{Names: resolve.DefaultNameResolver{}, Predefined: predef}
	f.deps = Dependencies{
		Arena:          arena,
		Names:          resolve.DefaultNameResolver{},
		Exprs:          exprs,
		ProcedureCalls: fakeProcedureCalls{},
		Targets:        fakeTargets{subtype: sem.Subtype{TypeMark: f.integer}},
		Predefined:     predef,
	}
	f.a = Analyzer{Deps: f.deps}
	return f
}

func (f *testFixture) publish(ent sem.Ent) {
	f.scope.Add(ent)
	for _, implicit := range ent.Implicits() {
		f.scope.Add(implicit)
	}
}

func (f *testFixture) defineType(text string, kind sem.EntityKind) sem.Ent {
	ent := f.arena.Explicit(sem.NewSimpleDesignator(text, false), kind, testPos())
	f.scope.Add(ent)
	for _, implicit := range sem.SynthesizeImplicits(f.arena, f.predef.Factory(), ent) {
		f.scope.Add(implicit)
	}
	return ent
}

func (f *testFixture) define(text string, kind sem.EntityKind) sem.Ent {
	ent := f.arena.Explicit(sem.NewSimpleDesignator(text, false), kind, testPos())
	f.scope.Add(ent)
	return ent
}

func (f *testFixture) collector() *diag.Collector {
	return diag.NewCollectorUnlimited()
}

func boolExpr(text string) ast.Expr {
	return nameExpr(text)
}
