package sem

import (
	"vhdlsem/diag"
)

// Scope is a stack of [Region] frames representing lexical nesting.
// Lookup walks the chain innermost-first; [Scope.LookupImmediate]
// consults only the innermost frame (§4.B).
type Scope struct {
	frames []*Region
	// uses holds regions made visible by use clauses (external collaborator
	// territory, §6): consulted after the lexical chain is exhausted.
	uses []*Region
}

// NewScope creates a scope with a single root region already open.
func NewScope(rootKind RegionKind) *Scope {
	return &Scope{frames: []*Region{NewRegion(rootKind)}}
}

// Nested pushes a fresh region onto the scope and returns it.
func (s *Scope) Nested(kind RegionKind) *Region {
	r := NewRegion(kind)
	s.frames = append(s.frames, r)
	return r
}

// Current returns the innermost open region.
func (s *Scope) Current() *Region {
	return s.frames[len(s.frames)-1]
}

// Close flushes the innermost region's pending diagnostics and pops it.
// Panics if called on a scope with only the root region remaining, since
// the root is closed by the caller that created the Scope, not by Close.
func (s *Scope) Close(c *diag.Collector) {
	if len(s.frames) <= 1 {
		panic("sem: cannot Close the root region via Scope.Close")
	}
	top := s.frames[len(s.frames)-1]
	top.Close(c)
	s.frames = s.frames[:len(s.frames)-1]
}

// CloseRoot flushes and closes the root region; call once analysis of the
// outermost declarative part is complete.
func (s *Scope) CloseRoot(c *diag.Collector) {
	s.frames[0].Close(c)
}

// Add inserts ent into the innermost region.
func (s *Scope) Add(ent Ent) {
	s.Current().Add(ent, false)
}

// Lookup searches from innermost outward for d, then through regions
// brought into visibility by use clauses, returning the first match.
func (s *Scope) Lookup(d Designator) (NamedEntities, bool) {
	for i := len(s.frames) - 1; i >= 0; i-- {
		if ne, ok := s.frames[i].Lookup(d); ok {
			return ne, true
		}
	}
	for i := len(s.uses) - 1; i >= 0; i-- {
		if ne, ok := s.uses[i].Lookup(d); ok {
			return ne, true
		}
	}
	return NamedEntities{}, false
}

// Use makes r's declarations visible to subsequent lookups, implementing
// the effect of a use clause (the clause's own resolution is an external
// collaborator, §6 UseClauseHandler).
func (s *Scope) Use(r *Region) {
	s.uses = append(s.uses, r)
}

// LookupImmediate consults only the innermost region.
func (s *Scope) LookupImmediate(d Designator) (NamedEntities, bool) {
	return s.Current().Lookup(d)
}

// Depth returns the number of open frames, root included.
func (s *Scope) Depth() int {
	return len(s.frames)
}
