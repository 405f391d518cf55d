package sem

import (
	"testing"

	"vhdlsem/diag"
	"vhdlsem/location"
)

func testPos() location.Span {
	return location.Point(location.MustNewSourceID("test://unit/counter.vhd"), 1, 1)
}

func TestRegion_Add_SimpleDuplicate(t *testing.T) {
	arena := NewArena()
	r := NewRegion(RegionOrdinary)

	sig := arena.Explicit(NewSimpleDesignator("clk", false), ObjectKind{Class: ClassSignal}, testPos())
	r.Add(sig, false)

	dup := arena.Explicit(NewSimpleDesignator("clk", false), ObjectKind{Class: ClassSignal}, testPos())
	r.Add(dup, false)

	c := diag.NewCollector(0)
	r.Close(c)

	if c.OK() {
		t.Error("expected a duplicate-declaration diagnostic")
	}
	if c.Result().Len() != 1 {
		t.Errorf("Len() = %d; want 1", c.Result().Len())
	}
}

func TestRegion_Add_OverloadMerge(t *testing.T) {
	arena := NewArena()
	r := NewRegion(RegionOrdinary)

	intParam := arena.Explicit(NewSimpleDesignator("x", false), ObjectKind{Class: ClassConstant,
		Subtype: Subtype{TypeMark: arena.Explicit(NewSimpleDesignator("integer", false), TypeKind{Type: &IntegerType{}}, testPos())}}, testPos())
	strParam := arena.Explicit(NewSimpleDesignator("x", false), ObjectKind{Class: ClassConstant,
		Subtype: Subtype{TypeMark: arena.Explicit(NewSimpleDesignator("string", false), TypeKind{Type: &ArrayType{}}, testPos())}}, testPos())

	fn1 := arena.Explicit(NewSimpleDesignator("f", false), OverloadedKind{
		What:      OverloadSubprogram,
		Signature: Signature{Params: []Ent{intParam}},
	}, testPos())
	fn2 := arena.Explicit(NewSimpleDesignator("f", false), OverloadedKind{
		What:      OverloadSubprogram,
		Signature: Signature{Params: []Ent{strParam}},
	}, testPos())

	r.Add(fn1, false)
	r.Add(fn2, false)

	c := diag.NewCollector(0)
	r.Close(c)

	if !c.OK() {
		t.Fatalf("distinct signatures should not collide: %v", c.Result())
	}

	ne, ok := r.Lookup(NewSimpleDesignator("f", false))
	if !ok {
		t.Fatal("expected f to be found")
	}
	if !ne.IsOverloaded() || len(ne.Candidates()) != 2 {
		t.Errorf("expected an overload set of 2, got %+v", ne.Candidates())
	}
}

func TestRegion_Add_OverloadExactSignatureDuplicate(t *testing.T) {
	arena := NewArena()
	r := NewRegion(RegionOrdinary)

	intParam := arena.Explicit(NewSimpleDesignator("x", false), ObjectKind{Class: ClassConstant,
		Subtype: Subtype{TypeMark: arena.Explicit(NewSimpleDesignator("integer", false), TypeKind{Type: &IntegerType{}}, testPos())}}, testPos())

	fn1 := arena.Explicit(NewSimpleDesignator("f", false), OverloadedKind{
		What:      OverloadSubprogram,
		Signature: Signature{Params: []Ent{intParam}},
	}, testPos())
	fn2 := arena.Explicit(NewSimpleDesignator("f", false), OverloadedKind{
		What:      OverloadSubprogram,
		Signature: Signature{Params: []Ent{intParam}},
	}, testPos())

	r.Add(fn1, false)
	r.Add(fn2, false)

	c := diag.NewCollector(0)
	r.Close(c)

	if c.OK() {
		t.Error("exact signature duplicates should be rejected")
	}
}

func TestRegion_Add_SilenceDuplicatesForInstantiation(t *testing.T) {
	arena := NewArena()
	r := NewRegion(RegionOrdinary)

	sig := arena.Explicit(NewSimpleDesignator("clk", false), ObjectKind{Class: ClassSignal}, testPos())
	r.Add(sig, true)
	dup := arena.Explicit(NewSimpleDesignator("clk", false), ObjectKind{Class: ClassSignal}, testPos())
	r.Add(dup, true)

	c := diag.NewCollector(0)
	r.Close(c)

	if !c.OK() {
		t.Error("silenceDuplicates should discard the duplicate diagnostic")
	}
}

func TestScope_LookupChain(t *testing.T) {
	arena := NewArena()
	s := NewScope(RegionOrdinary)

	outer := arena.Explicit(NewSimpleDesignator("a", false), ObjectKind{Class: ClassSignal}, testPos())
	s.Add(outer)

	s.Nested(RegionOrdinary)
	inner := arena.Explicit(NewSimpleDesignator("b", false), ObjectKind{Class: ClassSignal}, testPos())
	s.Add(inner)

	if _, ok := s.Lookup(NewSimpleDesignator("a", false)); !ok {
		t.Error("outer declaration should be visible from nested scope")
	}
	if _, ok := s.Lookup(NewSimpleDesignator("b", false)); !ok {
		t.Error("inner declaration should be visible in its own scope")
	}

	c := diag.NewCollector(0)
	s.Close(c)

	if _, ok := s.LookupImmediate(NewSimpleDesignator("b", false)); ok {
		t.Error("inner declaration should not be visible after its region closed")
	}
}

func TestScope_Use_MakesRegionVisible(t *testing.T) {
	arena := NewArena()
	imported := NewRegion(RegionPackageDeclarative)
	ent := arena.Explicit(NewSimpleDesignator("pi", false), ObjectKind{Class: ClassConstant}, testPos())
	imported.Add(ent, false)

	s := NewScope(RegionOrdinary)
	if _, ok := s.Lookup(NewSimpleDesignator("pi", false)); ok {
		t.Fatal("should not be visible before Use")
	}
	s.Use(imported)
	if _, ok := s.Lookup(NewSimpleDesignator("pi", false)); !ok {
		t.Error("should be visible after Use")
	}
}

func TestRegion_Add_PanicsAfterClose(t *testing.T) {
	arena := NewArena()
	r := NewRegion(RegionOrdinary)
	c := diag.NewCollector(0)
	r.Close(c)

	defer func() {
		if recover() == nil {
			t.Error("Add after Close should panic")
		}
	}()
	r.Add(arena.Explicit(NewSimpleDesignator("x", false), ObjectKind{}, testPos()), false)
}
