package resolve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vhdlsem/sem"
)

func TestDefaultNameResolver_ResolvesType(t *testing.T) {
	arena := sem.NewArena()
	scope := sem.NewScope(sem.RegionOrdinary)
	integer := arena.Explicit(sem.NewSimpleDesignator("integer", false), sem.TypeKind{Type: &sem.IntegerType{}}, builtinPos())
	scope.Add(integer)

	r := DefaultNameResolver{}
	result := r.ResolveName(scope, sem.NewSimpleDesignator("INTEGER", false))
	require.True(t, result.IsOk())
	assert.Equal(t, sem.ResolvedType, result.Value().Class)
	assert.True(t, result.Value().Single.Equal(integer))
}

func TestDefaultNameResolver_UnknownName(t *testing.T) {
	scope := sem.NewScope(sem.RegionOrdinary)
	r := DefaultNameResolver{}
	result := r.ResolveName(scope, sem.NewSimpleDesignator("nope", false))
	require.False(t, result.IsOk())
	assert.Equal(t, sem.EvalUnknown, result.Error().Kind)
}

func TestDefaultNameResolver_Overloaded(t *testing.T) {
	arena := sem.NewArena()
	scope := sem.NewScope(sem.RegionOrdinary)
	integer := arena.Explicit(sem.NewSimpleDesignator("integer", false), sem.TypeKind{Type: &sem.IntegerType{}}, builtinPos())
	param := arena.Explicit(sem.NewSimpleDesignator("x", false), sem.ObjectKind{Subtype: sem.Subtype{TypeMark: integer}}, builtinPos())
	fn := arena.Explicit(sem.NewSimpleDesignator("f", false), sem.OverloadedKind{
		What: sem.OverloadSubprogram, Signature: sem.Signature{Params: []sem.Ent{param}},
	}, builtinPos())
	scope.Add(fn)

	r := DefaultNameResolver{}
	result := r.ResolveName(scope, sem.NewSimpleDesignator("f", false))
	require.True(t, result.IsOk())
	assert.Equal(t, sem.ResolvedOverloaded, result.Value().Class)
	assert.Len(t, result.Value().Overloaded, 1)
}
