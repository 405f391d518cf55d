package sem

import (
	"vhdlsem/diag"
	"vhdlsem/location"
)

// RegionKind distinguishes a package declarative region (where deferred
// constants are visible to the body) from an ordinary region.
type RegionKind int

const (
	RegionOrdinary RegionKind = iota
	RegionPackageDeclarative
)

// NamedEntities is what a designator maps to inside a [Region]: either a
// single entity, or a set of entities distinguished by [SignatureKey] for
// overloadable designators (subprograms, enum literals, subprogram
// aliases). Modeled as a tagged variant rather than "maybe a slice" so
// lookup and add logic can switch on shape instead of checking length.
type NamedEntities struct {
	single      Ent
	overloaded  []Ent
	isOverload  bool
}

// IsOverloaded reports whether this binding is an overload set. A binding
// of an overloadable entity is an overload set even with one candidate.
func (n NamedEntities) IsOverloaded() bool {
	return n.isOverload
}

// Single returns the bound entity when not overloaded.
func (n NamedEntities) Single() Ent {
	return n.single
}

// Candidates returns a defensive copy of the overload set (or a
// single-element slice when not overloaded), in insertion order.
func (n NamedEntities) Candidates() []Ent {
	if !n.isOverload {
		if n.single.IsZero() {
			return nil
		}
		return []Ent{n.single}
	}
	out := make([]Ent, len(n.overloaded))
	copy(out, n.overloaded)
	return out
}

func isOverloadable(e Ent) bool {
	ok, ok2 := e.Kind().(OverloadedKind)
	return ok2 && (ok.What == OverloadSubprogram || ok.What == OverloadEnumLiteral || ok.What == OverloadAlias || ok.What == OverloadInterfaceSubprogram || ok.What == OverloadDecl)
}

// Region stores {designator -> NamedEntities}, preserving insertion order
// for reproducible diagnostics (§3, §4.B).
type Region struct {
	kind    RegionKind
	order   []Designator
	byKey   map[string]NamedEntities
	closed  bool
	// pending holds duplicate-declaration diagnostics queued during
	// construction and flushed on Close, mirroring the teacher's pattern of
	// deferring diagnostic emission to a single finalize point.
	pending []diag.Issue
}

// NewRegion creates an empty, open region of the given kind.
func NewRegion(kind RegionKind) *Region {
	return &Region{kind: kind, byKey: make(map[string]NamedEntities)}
}

// Kind reports whether this is a package declarative region.
func (r *Region) Kind() RegionKind {
	return r.kind
}

// Add inserts ent under its designator, applying §4.B's merge rules:
//   - absent designator: insert.
//   - present, both overloadable: merge into the overload set, rejecting
//     exact signature duplicates.
//   - present, not mergeable: duplicate declaration.
//
// Diagnostics produced here are queued, not returned, except when
// silenceDuplicates is requested by instantiation (§4.G), in which case
// the diagnostic is discarded instead of queued.
func (r *Region) Add(ent Ent, silenceDuplicates bool) {
	if r.closed {
		panic("sem: cannot Add to a closed Region")
	}
	key := ent.Designator().Key()
	existing, present := r.byKey[key]
	if !present {
		r.byKey[key] = singleOrOverload(ent)
		r.order = append(r.order, ent.Designator())
		return
	}

	if isOverloadable(ent) && (existing.isOverload || isOverloadable(existing.single)) {
		merged, dupKey := mergeOverload(existing, ent)
		r.byKey[key] = merged
		if dupKey != "" && !silenceDuplicates {
			r.queueDuplicate(ent, existing)
		}
		return
	}

	if !silenceDuplicates {
		r.queueDuplicate(ent, existing)
	}
}

func singleOrOverload(ent Ent) NamedEntities {
	if isOverloadable(ent) {
		return NamedEntities{isOverload: true, overloaded: []Ent{ent}}
	}
	return NamedEntities{single: ent}
}

func mergeOverload(existing NamedEntities, ent Ent) (merged NamedEntities, dupSigKey string) {
	candidates := existing.Candidates()
	newSig := entSignatureKey(ent)
	for _, c := range candidates {
		if entSignatureKey(c).Equal(newSig) {
			return existing, newSig.String()
		}
	}
	candidates = append(candidates, ent)
	return NamedEntities{isOverload: true, overloaded: candidates}, ""
}

func entSignatureKey(e Ent) SignatureKey {
	ok, _ := e.Kind().(OverloadedKind)
	return ok.Signature.Key()
}

func (r *Region) queueDuplicate(newEnt Ent, existing NamedEntities) {
	prior := existing.single
	if existing.isOverload && len(existing.overloaded) > 0 {
		prior = existing.overloaded[len(existing.overloaded)-1]
	}
	issue := diag.NewIssue(diag.Error, diag.E_DUPLICATE_DECL,
		`"`+newEnt.Designator().Text()+`" already declared`).
		WithSpan(newEnt.Pos()).
		WithDetail(diag.DetailKeyDesignator, newEnt.Designator().Text())
	if !prior.IsZero() {
		issue = issue.WithRelated(relatedPrior(prior))
	}
	r.pending = append(r.pending, issue.Build())
}

// Lookup consults only this region (no chain walk); use [Scope.Lookup] for
// the full lexical search.
func (r *Region) Lookup(d Designator) (NamedEntities, bool) {
	ne, ok := r.byKey[d.Key()]
	return ne, ok
}

// Designators returns the region's designators in insertion order.
func (r *Region) Designators() []Designator {
	out := make([]Designator, len(r.order))
	copy(out, r.order)
	return out
}

// Close freezes the region and flushes any queued duplicate-declaration
// diagnostics into c.
func (r *Region) Close(c *diag.Collector) {
	if r.closed {
		return
	}
	r.closed = true
	for _, issue := range r.pending {
		c.Collect(issue)
	}
	r.pending = nil
}

// IsClosed reports whether Close has been called.
func (r *Region) IsClosed() bool {
	return r.closed
}

func relatedPrior(prior Ent) location.RelatedInfo {
	return location.RelatedInfo{
		Span:    prior.Pos(),
		Message: location.MsgPreviousDefinition,
	}
}
