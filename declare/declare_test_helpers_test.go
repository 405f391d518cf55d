package declare

import (
	"vhdlsem/ast"
	"vhdlsem/diag"
	"vhdlsem/location"
	"vhdlsem/resolve"
	"vhdlsem/sem"
)

func testPos() location.Span {
	return location.Point(location.MustNewSourceID("declare_test"), 1, 1)
}

func name(text string) ast.Name {
	return ast.Name{Pos: testPos(), Base: sem.NewSimpleDesignator(text, false)}
}

func subtypeIndication(text string) ast.SubtypeIndication {
	return ast.SubtypeIndication{Pos: testPos(), TypeMark: name(text)}
}

// fakeUseClauses is a no-op sem.UseClauseHandler; none of these tests
// exercise use-clause visibility.
type fakeUseClauses struct{}

func (fakeUseClauses) ResolveUseClause(scope *sem.Scope, names []sem.Designator, c *diag.Collector) sem.FatalResult {
	return sem.FatalOk()
}

// fakeExprs is an ast.ExprTyper that only resolves a bare NameExpr through
// the same scope, enough to exercise declare's "type the initializer" call
// sites without a real expression typer.
type fakeExprs struct{}

func (fakeExprs) TypeAgainst(scope *sem.Scope, expr ast.Expr, target sem.Subtype, c *diag.Collector) sem.AnalysisResult[sem.Ent] {
	return fakeExprs{}.TypeUnknown(scope, expr, c)
}

func (fakeExprs) TypeUnknown(scope *sem.Scope, expr ast.Expr, c *diag.Collector) sem.AnalysisResult[sem.Ent] {
	if n, ok := expr.(*ast.NameExpr); ok {
		if ne, ok := scope.Lookup(n.Name.Base); ok && !ne.IsOverloaded() {
			return sem.Ok(ne.Single())
		}
	}
	return sem.Ok(sem.Ent{})
}

func (f fakeExprs) BooleanExpr(scope *sem.Scope, expr ast.Expr, c *diag.Collector) sem.AnalysisResult[sem.Ent] {
	return f.TypeUnknown(scope, expr, c)
}

func (f fakeExprs) IntegerExpr(scope *sem.Scope, expr ast.Expr, c *diag.Collector) sem.AnalysisResult[sem.Ent] {
	return f.TypeUnknown(scope, expr, c)
}

// fakeSequential is an ast.SequentialAnalyzer that always succeeds; these
// tests exercise declarative-part wiring, not sequential-statement rules.
type fakeSequential struct{}

func (fakeSequential) AnalyzeSequentialPart(scope *sem.Scope, root ast.SequentialRoot, stmts []ast.Stmt, c *diag.Collector) sem.FatalResult {
	return sem.FatalOk()
}

// fakeInstantiator is an ast.PackageInstantiator returning a fixed, empty
// region, enough to exercise analyzePackageInstantiation's own wiring.
type fakeInstantiator struct {
	region *sem.Region
	err    bool
}

func (f fakeInstantiator) Instantiate(scope *sem.Scope, inst *ast.PackageInstantiation, c *diag.Collector) sem.AnalysisResult[*sem.Region] {
	if f.err {
		return sem.Err[*sem.Region](sem.EvalError{Kind: sem.EvalUnknown, Reason: "instantiation failed"})
	}
	region := f.region
	if region == nil {
		region = sem.NewRegion(sem.RegionOrdinary)
		region.Close(diag.NewCollectorUnlimited())
	}
	return sem.Ok(region)
}

// testFixture bundles a fresh arena/scope/predefined-types set and a
// Dependencies value wired to the Default* reference implementations from
// resolve plus the fakes above, mirroring how a host assembles the real
// collaborators.
type testFixture struct {
	arena  *sem.Arena
	scope  *sem.Scope
	predef *resolve.DefaultPredefinedTypes
	deps   Dependencies
}

func newFixture() *testFixture {
	arena := sem.NewArena()
	predef := resolve.NewDefaultPredefinedTypes(arena, testPos())
	scope := sem.NewScope(sem.RegionOrdinary)

	deps := Dependencies{
		Arena:        arena,
		Names:        resolve.DefaultNameResolver{},
		UseClauses:   fakeUseClauses{},
		Exprs:        fakeExprs{},
		Sequential:   fakeSequential{},
		Instantiator: fakeInstantiator{},
		Implicits:    predef.Factory(),
	}

	f := &testFixture{arena: arena, scope: scope, predef: predef, deps: deps}
	integer := f.define("integer", sem.TypeKind{Type: &sem.IntegerType{}})
	for _, implicit := range sem.SynthesizeImplicits(arena, deps.Implicits, integer) {
		scope.Add(implicit)
	}
	return f
}

// define adds a builtin-style entity directly to the root scope, bypassing
// AnalyzeDeclarativePart — used to seed names a test's declarative part
// refers to (a type mark, an aliasable object) without re-testing
// declaration analysis for them.
func (f *testFixture) define(text string, kind sem.EntityKind) sem.Ent {
	ent := f.arena.Explicit(sem.NewSimpleDesignator(text, false), kind, testPos())
	f.scope.Add(ent)
	return ent
}

func (f *testFixture) collector() *diag.Collector {
	return diag.NewCollectorUnlimited()
}
