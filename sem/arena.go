package sem

import "vhdlsem/location"

// Arena owns every semantic entity produced while analyzing a design unit.
// It never relocates entities once allocated, so an [Ent] handed out
// remains valid for the arena's whole lifetime (§5: per-analysis lifecycle,
// init at the start of a design-unit pass, teardown when its diagnostics
// are consumed).
type Arena struct {
	entities []Ent
}

// NewArena creates an empty arena.
func NewArena() *Arena {
	return &Arena{}
}

// Explicit allocates a new top-level entity with a fresh id.
func (a *Arena) Explicit(d Designator, kind EntityKind, pos location.Span) Ent {
	e := Ent{id: newEntityID(), storage: &storage{designator: d, kind: kind, pos: pos}}
	a.entities = append(a.entities, e)
	return e
}

// Implicit allocates a new entity and links it as an implicit child of
// parent (§3 invariant 2: implicit lists are append-only until frozen).
func (a *Arena) Implicit(parent Ent, d Designator, kind EntityKind, pos location.Span) Ent {
	e := a.Explicit(d, kind, pos)
	storage := e.storage
	storage.related = Related{Kind: RelatedImplicitOf, Of: parent.id}
	parent.addImplicit(e)
	return e
}

// Define allocates a new entity for a fresh declaration and writes its id
// into the AST's identifier reference slot.
func (a *Arena) Define(slot *EntityRef, d Designator, kind EntityKind, pos location.Span) Ent {
	e := a.Explicit(d, kind, pos)
	slot.set(e.id)
	return e
}

// DefineWithOptID behaves like Define, but when overwriteID identifies an
// already-allocated entity (the incomplete-type upgrade path, §4.D step 1),
// the existing id is reused in place rather than allocating a new one: the
// entity's storage is replaced with a new kind/designator/pos under the
// same id, so every existing [Ent] holding that id observes the upgrade.
func (a *Arena) DefineWithOptID(overwriteID *EntityID, slot *EntityRef, d Designator, kind EntityKind, pos location.Span) Ent {
	if overwriteID == nil {
		return a.Define(slot, d, kind, pos)
	}
	for i, e := range a.entities {
		if e.id == *overwriteID {
			e.storage.designator = d
			e.storage.kind = kind
			e.storage.pos = pos
			slot.set(e.id)
			return a.entities[i]
		}
	}
	panic("sem: DefineWithOptID: overwrite id not found in arena")
}

// AddImplicit publishes child as an implicit of parent without allocating
// a new entity (used when a collaborator has already built the child,
// e.g. a package-instance copy produced by the instantiator).
func (a *Arena) AddImplicit(parent Ent, child Ent) {
	child.storage.related = Related{Kind: RelatedImplicitOf, Of: parent.id}
	parent.addImplicit(child)
}

// DefineInstance allocates a new entity as an instance-of copy of of,
// carrying of's designator and the given position but no kind yet (§4.G:
// "allocates a new entity with related = instance-of(uninst_ent)"). The
// id is assigned immediately so a deep-copy recursion can hand it out to
// children before the entity's own kind is known — an enum type's literal
// signatures return the type itself, a physical type's units carry the
// type back as their Type field. Call FinalizeInstance once the kind has
// been computed.
func (a *Arena) DefineInstance(of Ent, pos location.Span) Ent {
	e := Ent{id: newEntityID(), storage: &storage{
		designator: of.storage.designator,
		pos:        pos,
		related:    Related{Kind: RelatedInstanceOf, Of: of.id},
	}}
	a.entities = append(a.entities, e)
	return e
}

// FinalizeInstance sets e's kind once its deep-copied children and
// substituted references are known. Panics if called twice for the same
// entity, mirroring the construct-then-publish discipline DefineWithOptID
// already enforces for the incomplete-type upgrade path.
func (a *Arena) FinalizeInstance(e Ent, kind EntityKind) {
	if e.storage.kind != nil {
		panic("sem: FinalizeInstance: entity already finalized")
	}
	e.storage.kind = kind
}

// Len returns the number of entities the arena has allocated.
func (a *Arena) Len() int {
	return len(a.entities)
}

// EntityRef is an AST identifier reference slot: a write-once cell an
// entity id is recorded into once its declaration has been analyzed (§3
// invariant 3). The ast package embeds EntityRef wherever the grammar has
// a name that the core must resolve and remember.
type EntityRef struct {
	id      EntityID
	written bool
}

func (r *EntityRef) set(id EntityID) {
	if r.written {
		panic("sem: EntityRef written twice")
	}
	r.id = id
	r.written = true
}

// Get returns the resolved entity id and whether it has been set.
func (r *EntityRef) Get() (EntityID, bool) {
	return r.id, r.written
}

// Set records id into the slot, exactly once. Define and DefineWithOptID
// use this internally when the id belongs to a freshly allocated entity;
// Set itself is exported for collaborators that resolve a reference to an
// entity that already exists (a type mark, an alias target, a use of an
// already-declared name) rather than defining a new one.
func (r *EntityRef) Set(id EntityID) {
	r.set(id)
}
