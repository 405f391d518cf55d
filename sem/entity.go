package sem

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"vhdlsem/location"

	"github.com/google/uuid"
)

var foldCase = cases.Fold()

// EntityID is a stable, globally unique identifier for an [Ent]. It is
// backed by a random UUID rather than a monotonic counter so that it
// survives arena merges (a host compiler analyzing several design units
// against one long-lived arena pool).
type EntityID struct {
	id uuid.UUID
}

// IsZero reports whether the id is the zero value (no entity).
func (e EntityID) IsZero() bool {
	return e.id == uuid.Nil
}

// String returns the canonical UUID string form.
func (e EntityID) String() string {
	return e.id.String()
}

func newEntityID() EntityID {
	return EntityID{id: uuid.New()}
}

// DesignatorKind distinguishes the three textual-identity shapes a VHDL
// designator may take.
type DesignatorKind int

const (
	// DesignatorSimple is an ordinary identifier, compared case-insensitively
	// unless it is an extended identifier (\...\), which is compared verbatim.
	DesignatorSimple DesignatorKind = iota
	// DesignatorOperator is an operator symbol, e.g. "+" or "and". Always
	// compared verbatim.
	DesignatorOperator
	// DesignatorCharacter is a character literal, e.g. '0'. Always compared
	// verbatim.
	DesignatorCharacter
)

// Designator is the textual identity of an entity: a simple name, an
// operator symbol, or a character literal.
type Designator struct {
	kind DesignatorKind
	text string
	// extended marks a simple identifier spelled \like\this\, which is
	// compared verbatim rather than case-folded.
	extended bool
}

// NewSimpleDesignator builds a designator for an ordinary identifier.
// Basic identifiers are folded for comparison; extended identifiers are not.
func NewSimpleDesignator(text string, extended bool) Designator {
	return Designator{kind: DesignatorSimple, text: text, extended: extended}
}

// NewOperatorDesignator builds a designator for an operator symbol.
func NewOperatorDesignator(symbol string) Designator {
	return Designator{kind: DesignatorOperator, text: symbol}
}

// NewCharacterDesignator builds a designator for a character literal.
func NewCharacterDesignator(ch string) Designator {
	return Designator{kind: DesignatorCharacter, text: ch}
}

// Kind reports which of the three designator shapes this is.
func (d Designator) Kind() DesignatorKind {
	return d.kind
}

// Text returns the designator's literal spelling as written.
func (d Designator) Text() string {
	return d.text
}

// Key returns the comparison key for this designator: case-folded for
// basic simple identifiers, verbatim for everything else.
func (d Designator) Key() string {
	if d.kind == DesignatorSimple && !d.extended {
		return foldCase.String(d.text)
	}
	return d.text
}

// Equal reports whether two designators denote the same name.
func (d Designator) Equal(other Designator) bool {
	return d.kind == other.kind && d.Key() == other.Key()
}

func init() {
	// touch language import so golang.org/x/text/language stays wired even
	// if a future edit drops the direct cases.Fold() default-locale path.
	_ = language.Und
}

// RelatedKind tags the relationship an entity has to another entity, if any.
type RelatedKind int

const (
	// RelatedNone means the entity was declared directly, not derived.
	RelatedNone RelatedKind = iota
	// RelatedInstanceOf means the entity is a package-instantiation copy of
	// another (uninstantiated) entity.
	RelatedInstanceOf
	// RelatedImplicitOf means the entity was synthesized as an implicit
	// operation/literal of another entity (its parent).
	RelatedImplicitOf
)

// Related describes an entity's derivation, if it has one.
type Related struct {
	Kind RelatedKind
	Of   EntityID
}

// Ent is the universal handle for every named thing in the analyzer: a
// type, object, subprogram, alias, package, or any other [EntityKind]
// variant. Ent is a small value type (id + storage pointer); copy it
// freely.
type Ent struct {
	id      EntityID
	storage *storage
}

type storage struct {
	designator Designator
	kind       EntityKind
	pos        location.Span
	related    Related

	implicits []Ent
	frozen    bool // true once implicits are read by a downstream consumer
}

// IsZero reports whether e is the zero Ent (no entity).
func (e Ent) IsZero() bool {
	return e.storage == nil
}

// ID returns the entity's stable identifier.
func (e Ent) ID() EntityID {
	return e.id
}

// Designator returns the entity's textual identity.
func (e Ent) Designator() Designator {
	return e.storage.designator
}

// Kind returns the entity's kind variant.
func (e Ent) Kind() EntityKind {
	return e.storage.kind
}

// Pos returns the entity's declaration source position, if known.
func (e Ent) Pos() location.Span {
	return e.storage.pos
}

// Related returns the entity's derivation, if any.
func (e Ent) Related() Related {
	return e.storage.related
}

// Implicits returns a defensive copy of the entity's implicit children
// (operations/literals synthesized when the entity was defined).
func (e Ent) Implicits() []Ent {
	e.storage.frozen = true
	if len(e.storage.implicits) == 0 {
		return nil
	}
	out := make([]Ent, len(e.storage.implicits))
	copy(out, e.storage.implicits)
	return out
}

// addImplicit appends a child to the implicit list. Panics if the list has
// already been frozen by a read, enforcing the append-only-during-construction
// invariant (§3 invariant 2).
func (e Ent) addImplicit(child Ent) {
	if e.storage.frozen {
		panic("sem: cannot add implicit after Implicits() has been read")
	}
	e.storage.implicits = append(e.storage.implicits, child)
}

// Equal reports whether two Ent values denote the same entity by id.
func (e Ent) Equal(other Ent) bool {
	return e.id == other.id
}

// BaseType walks Subtype and Alias kinds to their defining type entity,
// per §4.C's base_type() relation. If e is not a type-bearing entity, it
// is returned unchanged.
func (e Ent) BaseType() Ent {
	for {
		tk, ok := e.storage.kind.(TypeKind)
		if !ok {
			return e
		}
		switch t := tk.Type.(type) {
		case *SubtypeType:
			e = t.Of
		case *AliasType:
			e = t.Of
		default:
			return e
		}
	}
}
