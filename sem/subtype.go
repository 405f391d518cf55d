package sem

// Range is a scalar range bound, analyzed against universal-integer or
// universal-real depending on context; the bounds themselves are opaque to
// sem (they are typed AST expressions resolved by exprtype) — sem only
// records whether the range was classified as ascending or descending and
// which universal class it was checked against, which is all the type
// model itself needs.
type Range struct {
	Ascending bool
	Universal UniversalClass
}

// ConstraintKind distinguishes the shapes a subtype constraint can take.
type ConstraintKind int

const (
	// ConstraintNone means no constraint was given; the subtype is simply
	// an alias of its type mark.
	ConstraintNone ConstraintKind = iota
	ConstraintRange
	ConstraintIndex
	ConstraintRecordElement
)

// Constraint is a resolved subtype constraint, validated against the base
// type's shape (§4.D): array constraints check index count and index-type
// compatibility, scalar ranges require a scalar base, record element
// constraints require the element to exist in the record's element region.
type Constraint struct {
	Kind ConstraintKind

	// IndexCount is populated for ConstraintIndex: the number of index
	// constraints supplied, compared against the array type's index count.
	IndexCount int

	// Elements is populated for ConstraintRecordElement: the designators
	// named, each checked against the record's element region.
	Elements []Designator
}

// Subtype pairs a type mark with its resolved constraint (§3).
type Subtype struct {
	TypeMark   Ent
	Constraint Constraint
}

// IsConstrained reports whether a constraint was actually supplied.
func (s Subtype) IsConstrained() bool {
	return s.Constraint.Kind != ConstraintNone
}

// ValidateConstraintShape reports whether the constraint's kind is
// compatible with the type mark's base-type shape, per §4.D's subtype
// validation rules. It does not resolve the constraint's contents — only
// whether this kind of constraint can apply to this kind of base type.
func ValidateConstraintShape(typeMark Ent, c Constraint) bool {
	switch c.Kind {
	case ConstraintNone:
		return true
	case ConstraintRange:
		return IsScalar(typeMark)
	case ConstraintIndex:
		arr, ok := baseTypeOf(typeMark).(*ArrayType)
		return ok && len(arr.Indexes) == c.IndexCount
	case ConstraintRecordElement:
		rec, ok := baseTypeOf(typeMark).(*RecordType)
		if !ok {
			return false
		}
		for _, d := range c.Elements {
			if _, found := rec.Elements.Lookup(d); !found {
				return false
			}
		}
		return true
	default:
		return false
	}
}
