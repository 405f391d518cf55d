package instantiate

import (
	"vhdlsem/ast"
	"vhdlsem/diag"
	"vhdlsem/location"
	"vhdlsem/resolve"
	"vhdlsem/sem"
)

func testPos() location.Span {
	return location.Point(location.MustNewSourceID("instantiate_test"), 1, 1)
}

func name(text string) ast.Name {
	return ast.Name{Pos: testPos(), Base: sem.NewSimpleDesignator(text, false)}
}

// testFixture bundles a fresh arena/scope/predefined-types set and an
// Analyzer wired to the Default* reference implementations from resolve,
// mirroring declare's own testFixture convention.
type testFixture struct {
	arena  *sem.Arena
	scope  *sem.Scope
	predef *resolve.DefaultPredefinedTypes
	an     Analyzer
}

func newFixture() *testFixture {
	arena := sem.NewArena()
	predef := resolve.NewDefaultPredefinedTypes(arena, testPos())
	scope := sem.NewScope(sem.RegionOrdinary)

	an := Analyzer{Deps: Dependencies{
		Arena: arena,
		Names: resolve.DefaultNameResolver{},
	}}

	f := &testFixture{arena: arena, scope: scope, predef: predef, an: an}
	integer := f.define("integer", sem.TypeKind{Type: &sem.IntegerType{}})
	for _, implicit := range sem.SynthesizeImplicits(arena, predef.Factory(), integer) {
		scope.Add(implicit)
	}
	return f
}

// define adds a builtin-style entity directly to the root scope, bypassing
// the declarative analyzer.
func (f *testFixture) define(text string, kind sem.EntityKind) sem.Ent {
	ent := f.arena.Explicit(sem.NewSimpleDesignator(text, false), kind, testPos())
	f.scope.Add(ent)
	return ent
}

func (f *testFixture) collector() *diag.Collector {
	return diag.NewCollectorUnlimited()
}

// definePackage builds an uninstantiated DesignPackage entity directly:
// generics (an ordinary region of the given kinds, nil when there are
// none) plus an ordinary region of members, both closed.
func (f *testFixture) definePackage(text string, generics map[string]sem.EntityKind, members map[string]sem.EntityKind) sem.Ent {
	var genericsRegion *sem.Region
	if len(generics) > 0 {
		genericsRegion = sem.NewRegion(sem.RegionOrdinary)
		for n, k := range generics {
			ent := f.arena.Explicit(sem.NewSimpleDesignator(n, false), k, testPos())
			genericsRegion.Add(ent, false)
		}
		genericsRegion.Close(f.collector())
	}

	membersRegion := sem.NewRegion(sem.RegionOrdinary)
	for n, k := range members {
		ent := f.arena.Explicit(sem.NewSimpleDesignator(n, false), k, testPos())
		membersRegion.Add(ent, false)
	}
	membersRegion.Close(f.collector())

	pkg := f.arena.Explicit(sem.NewSimpleDesignator(text, false), sem.DesignKind{
		Unit:     sem.DesignPackage,
		Generics: genericsRegion,
		Region:   membersRegion,
	}, testPos())
	f.scope.Add(pkg)
	return pkg
}

func namedActual(text string) *ast.NameExpr {
	return &ast.NameExpr{Pos: testPos(), Name: name(text)}
}
