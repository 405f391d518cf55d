package exprtype

import (
	"vhdlsem/ast"
	"vhdlsem/diag"
	"vhdlsem/location"
	"vhdlsem/resolve"
	"vhdlsem/sem"
)

func testPos() location.Span {
	return location.Point(location.MustNewSourceID("exprtype_test"), 1, 1)
}

func name(text string) ast.Name {
	return ast.Name{Pos: testPos(), Base: sem.NewSimpleDesignator(text, false)}
}

func nameExpr(text string) *ast.NameExpr {
	return &ast.NameExpr{Pos: testPos(), Name: name(text)}
}

// testFixture wires a real resolve.DefaultPredefinedTypes and
// resolve.DefaultNameResolver to an Analyzer, mirroring how declare's own
// fixture assembles its collaborators — exprtype has no fakes of its own to
// stand in for because it sits at the bottom of the dependency chain.
type testFixture struct {
	arena   *sem.Arena
	scope   *sem.Scope
	predef  *resolve.DefaultPredefinedTypes
	a       Analyzer
	integer sem.Ent
}

func newFixture() *testFixture {
	arena := sem.NewArena()
	predef := resolve.NewDefaultPredefinedTypes(arena, testPos())
	scope := sem.NewScope(sem.RegionOrdinary)

	f := &testFixture{
		arena:  arena,
		scope:  scope,
		predef: predef,
		a:      Analyzer{Names: resolve.DefaultNameResolver{}, Predefined: predef},
	}
	f.publish(predef.Boolean())
	f.publish(predef.String())
	f.publish(predef.Time())
	f.publish(predef.SeverityLevel())
	f.integer = f.defineType("integer", sem.TypeKind{Type: &sem.IntegerType{}})
	return f
}

// publish makes an already-built predefined type (and its implicits, which
// NewDefaultPredefinedTypes already synthesized into the arena) visible by
// name in the fixture's scope.
func (f *testFixture) publish(ent sem.Ent) {
	f.scope.Add(ent)
	for _, implicit := range ent.Implicits() {
		f.scope.Add(implicit)
	}
}

// defineType declares a fresh type and synthesizes+publishes its implicits,
// the same two-step publication real type declarations go through in
// declare/types.go.
func (f *testFixture) defineType(text string, kind sem.EntityKind) sem.Ent {
	ent := f.arena.Explicit(sem.NewSimpleDesignator(text, false), kind, testPos())
	f.scope.Add(ent)
	for _, implicit := range sem.SynthesizeImplicits(f.arena, f.predef.Factory(), ent) {
		f.scope.Add(implicit)
	}
	return ent
}

// define adds a plain object entity under text, for tests that need a named
// value (a signal, a constant) rather than a type.
func (f *testFixture) define(text string, kind sem.EntityKind) sem.Ent {
	ent := f.arena.Explicit(sem.NewSimpleDesignator(text, false), kind, testPos())
	f.scope.Add(ent)
	return ent
}

// defineEnum declares an enumeration type with a nullary overloaded entity
// per literal, mirroring declare/types.go's defineEnumType — the fixture's
// own predefined "character"/"boolean" types are built without any actual
// literal entities (resolve's defaults only need the type shapes), so a
// test exercising character-literal or enum-name resolution builds one here.
func (f *testFixture) defineEnum(text string, literals ...sem.Designator) sem.Ent {
	ent := f.defineType(text, sem.TypeKind{Type: &sem.EnumType{Literals: literals}})
	for _, lit := range literals {
		sig := sem.Signature{Return: ent, HasRet: true}
		litEnt := f.arena.Implicit(ent, lit, sem.OverloadedKind{What: sem.OverloadEnumLiteral, Signature: sig}, testPos())
		f.scope.Add(litEnt)
	}
	return ent
}

func (f *testFixture) collector() *diag.Collector {
	return diag.NewCollectorUnlimited()
}
