package sem

import "strings"

// Signature is the formal parameter list (ordered, typed interface
// entities) plus an optional return type that identifies an overload.
type Signature struct {
	Params []Ent // each an ObjectKind/InterfaceFileKind-style formal
	Return Ent   // zero Ent for procedures
	HasRet bool
}

// SignatureKey is the identity of an overload: parameter base-type ids and
// an optional return base-type id (§3 invariant 5 — equality participates
// only via base-type identity, never the formal's own entity id).
type SignatureKey struct {
	params []EntityID
	ret    EntityID
	hasRet bool
}

// Key computes the SignatureKey for a Signature.
func (s Signature) Key() SignatureKey {
	params := make([]EntityID, len(s.Params))
	for i, p := range s.Params {
		params[i] = paramBaseType(p).BaseType().ID()
	}
	k := SignatureKey{params: params, hasRet: s.HasRet}
	if s.HasRet {
		k.ret = s.Return.BaseType().ID()
	}
	return k
}

// paramBaseType extracts the type mark of a formal parameter entity,
// regardless of which EntityKind variant it was declared with.
func paramBaseType(p Ent) Ent {
	switch k := p.Kind().(type) {
	case ObjectKind:
		return k.Subtype.TypeMark
	case InterfaceFileKind:
		return k.Type
	default:
		return p
	}
}

// Equal reports whether two signature keys identify the same overload.
func (k SignatureKey) Equal(other SignatureKey) bool {
	if k.hasRet != other.hasRet {
		return false
	}
	if k.hasRet && k.ret != other.ret {
		return false
	}
	if len(k.params) != len(other.params) {
		return false
	}
	for i := range k.params {
		if k.params[i] != other.params[i] {
			return false
		}
	}
	return true
}

// String renders a stable, human-readable rendering of the key for
// diagnostics and as a map key where a comparable string is more
// convenient than the struct itself.
func (k SignatureKey) String() string {
	var b strings.Builder
	b.WriteByte('(')
	for i, p := range k.params {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(p.String())
	}
	b.WriteByte(')')
	if k.hasRet {
		b.WriteString("->")
		b.WriteString(k.ret.String())
	}
	return b.String()
}

// Arity returns the number of formal parameters.
func (s Signature) Arity() int {
	return len(s.Params)
}

// ParamType returns the declared type mark of the i'th formal, regardless
// of which EntityKind variant that formal was declared with (an operator's
// formals are ObjectKind; a file-class interface formal is
// InterfaceFileKind). Exported for the expression typer's disambiguation
// pipeline, which needs a formal's type mark without access to sem's
// unexported paramBaseType.
func (s Signature) ParamType(i int) Ent {
	return paramBaseType(s.Params[i])
}
