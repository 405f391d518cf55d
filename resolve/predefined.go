package resolve

import (
	"vhdlsem/location"
	"vhdlsem/sem"
)

// DefaultPredefinedTypes builds the handful of platform types
// sem.PredefinedTypeProvider exposes, once, in a caller-supplied arena.
// It is a minimal stand-in for a host compiler's own standard-library
// loader: boolean is a two-literal enum, string an unconstrained array of
// character, time a physical type with the usual second-based units, and
// severity_level a four-literal enum — enough shape for the expression
// typer and sequential analyzer to exercise every rule that references
// them, without pretending to be a conformant `std.standard`.
type DefaultPredefinedTypes struct {
	universalInt  sem.Ent
	universalReal sem.Ent
	boolean       sem.Ent
	str           sem.Ent
	time          sem.Ent
	severity      sem.Ent
}

// NewDefaultPredefinedTypes defines every predefined type in arena at pos
// (typically a synthetic "builtin" source span), synthesizing each type's
// implicit operators with a DefaultImplicits bound to the very value being
// built — boolean must exist before its own comparison operators (and
// every other type's) can be synthesized, so the factory is wired to the
// not-yet-fully-populated *DefaultPredefinedTypes up front rather than
// passed in from outside.
func NewDefaultPredefinedTypes(arena *sem.Arena, pos location.Span) *DefaultPredefinedTypes {
	p := &DefaultPredefinedTypes{}
	factory := DefaultImplicits{Predefined: p}

	p.universalInt = arena.Explicit(sem.NewSimpleDesignator("universal_integer", false),
		sem.TypeKind{Type: &sem.UniversalType{Class: sem.UniversalInteger}}, pos)
	p.universalReal = arena.Explicit(sem.NewSimpleDesignator("universal_real", false),
		sem.TypeKind{Type: &sem.UniversalType{Class: sem.UniversalReal}}, pos)

	p.boolean = arena.Explicit(sem.NewSimpleDesignator("boolean", false), sem.TypeKind{Type: &sem.EnumType{
		Literals: []sem.Designator{sem.NewSimpleDesignator("false", false), sem.NewSimpleDesignator("true", false)},
	}}, pos)
	sem.SynthesizeImplicits(arena, factory, p.boolean)

	character := arena.Explicit(sem.NewSimpleDesignator("character", false),
		sem.TypeKind{Type: &sem.EnumType{}}, pos)
	sem.SynthesizeImplicits(arena, factory, character)

	p.str = arena.Explicit(sem.NewSimpleDesignator("string", false), sem.TypeKind{Type: &sem.ArrayType{
		Indexes: []sem.ArrayIndex{{}},
		Elem:    character,
	}}, pos)
	sem.SynthesizeImplicits(arena, factory, p.str)

	integer := arena.Explicit(sem.NewSimpleDesignator("integer", false), sem.TypeKind{Type: &sem.IntegerType{}}, pos)
	sem.SynthesizeImplicits(arena, factory, integer)

	timeType := &sem.PhysicalType{}
	p.time = arena.Explicit(sem.NewSimpleDesignator("time", false), sem.TypeKind{Type: timeType}, pos)
	timeType.Primary = arena.Implicit(p.time, sem.NewSimpleDesignator("fs", false), sem.PhysicalLiteralKind{Type: p.time}, pos)
	for _, unit := range []string{"ps", "ns", "us", "ms", "sec", "min", "hr"} {
		timeType.Secondary = append(timeType.Secondary,
			arena.Implicit(p.time, sem.NewSimpleDesignator(unit, false), sem.PhysicalLiteralKind{Type: p.time}, pos))
	}
	sem.SynthesizeImplicits(arena, factory, p.time)

	p.severity = arena.Explicit(sem.NewSimpleDesignator("severity_level", false), sem.TypeKind{Type: &sem.EnumType{
		Literals: []sem.Designator{
			sem.NewSimpleDesignator("note", false),
			sem.NewSimpleDesignator("warning", false),
			sem.NewSimpleDesignator("error", false),
			sem.NewSimpleDesignator("failure", false),
		},
	}}, pos)
	sem.SynthesizeImplicits(arena, factory, p.severity)

	return p
}

// Factory returns an ImplicitFactory bound to this provider, suitable for
// synthesizing implicits on further, user-declared types after bootstrap.
func (p *DefaultPredefinedTypes) Factory() sem.ImplicitFactory {
	return DefaultImplicits{Predefined: p}
}

func (p *DefaultPredefinedTypes) UniversalInteger() sem.Ent { return p.universalInt }
func (p *DefaultPredefinedTypes) UniversalReal() sem.Ent    { return p.universalReal }
func (p *DefaultPredefinedTypes) Boolean() sem.Ent          { return p.boolean }
func (p *DefaultPredefinedTypes) String() sem.Ent           { return p.str }
func (p *DefaultPredefinedTypes) Time() sem.Ent             { return p.time }
func (p *DefaultPredefinedTypes) SeverityLevel() sem.Ent    { return p.severity }
