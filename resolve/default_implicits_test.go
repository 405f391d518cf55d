package resolve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vhdlsem/location"
	"vhdlsem/sem"
)

func builtinPos() location.Span {
	return location.Point(location.MustNewSourceID("builtin:predefined"), 1, 1)
}

func TestDefaultPredefinedTypes_Boolean_HasComparisonImplicits(t *testing.T) {
	arena := sem.NewArena()
	predef := NewDefaultPredefinedTypes(arena, builtinPos())

	implicits := predef.Boolean().Implicits()
	require.NotEmpty(t, implicits)

	var foundEq bool
	for _, child := range implicits {
		ok, isOverloaded := child.Kind().(sem.OverloadedKind)
		require.True(t, isOverloaded)
		if child.Designator().Text() == "=" {
			foundEq = true
			assert.Equal(t, 2, ok.Signature.Arity())
		}
	}
	assert.True(t, foundEq, "boolean should synthesize an \"=\" implicit")
}

func TestDefaultImplicits_ArrayImplicits_IncludesConcatenation(t *testing.T) {
	arena := sem.NewArena()
	predef := NewDefaultPredefinedTypes(arena, builtinPos())
	factory := predef.Factory()

	elem := arena.Explicit(sem.NewSimpleDesignator("bit", false), sem.TypeKind{Type: &sem.EnumType{
		Literals: []sem.Designator{sem.NewCharacterDesignator("0"), sem.NewCharacterDesignator("1")},
	}}, builtinPos())
	arr := arena.Explicit(sem.NewSimpleDesignator("bit_vector", false), sem.TypeKind{Type: &sem.ArrayType{
		Indexes: []sem.ArrayIndex{{}},
		Elem:    elem,
	}}, builtinPos())

	implicits := factory.ArrayImplicits(arena, arr)

	var hasConcat bool
	for _, child := range implicits {
		if child.Designator().Text() == "&" {
			hasConcat = true
		}
	}
	assert.True(t, hasConcat, "array implicits should include \"&\"")
}

func TestDefaultPredefinedTypes_Time_HasPrimaryAndSecondaryUnits(t *testing.T) {
	arena := sem.NewArena()
	predef := NewDefaultPredefinedTypes(arena, builtinPos())

	tk, ok := predef.Time().Kind().(sem.TypeKind)
	require.True(t, ok)
	phys, ok := tk.Type.(*sem.PhysicalType)
	require.True(t, ok)

	assert.Equal(t, "fs", phys.Primary.Designator().Text())
	assert.Len(t, phys.Secondary, 7)
}
