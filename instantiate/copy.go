package instantiate

import (
	"vhdlsem/diag"
	"vhdlsem/sem"
)

// mapTypeEnt substitutes t through sub: a generic formal resolves to its
// bound actual, a package-internal entity already visited by copyEnt
// resolves to its instance-of copy, and anything else (a predefined or
// otherwise external entity, e.g. INTEGER) passes through unchanged
// (§4.G "map_type_ent").
func mapTypeEnt(sub substitution, t sem.Ent) sem.Ent {
	if t.IsZero() {
		return t
	}
	if v, ok := sub[t.ID()]; ok {
		return v
	}
	return t
}

// copyEnt returns orig's instance-of copy under sub, building one (and
// memoizing it in sub) on first visit. The copy's id is allocated and
// registered before orig's implicit children or kind are examined, so a
// self-referential shape (a physical type and its unit literals, an enum
// type and its literal operators) resolves the back-reference to the
// parent through sub instead of needing special-case ordering.
func copyEnt(arena *sem.Arena, sub substitution, c *diag.Collector, orig sem.Ent) sem.Ent {
	if orig.IsZero() {
		return orig
	}
	if v, ok := sub[orig.ID()]; ok {
		return v
	}

	inst := arena.DefineInstance(orig, orig.Pos())
	sub[orig.ID()] = inst

	children := orig.Implicits()
	childCopies := make([]sem.Ent, len(children))
	for i, child := range children {
		childCopies[i] = copyEnt(arena, sub, c, child)
	}

	kind := mapKind(arena, sub, c, orig.Kind())
	arena.FinalizeInstance(inst, kind)

	for _, child := range childCopies {
		arena.AddImplicit(inst, child)
	}

	return inst
}

// copyRegionOf deep-copies every member of orig into a freshly closed
// region under sub, silencing duplicate-definition diagnostics the way
// §4.G requires ("diagnostics generated by add during instantiation are
// discarded") since a duplicate here can only be a consequence of a
// uninstantiated-side region that already closed cleanly.
func copyRegionOf(arena *sem.Arena, sub substitution, c *diag.Collector, orig *sem.Region) *sem.Region {
	if orig == nil {
		return nil
	}
	newRegion := sem.NewRegion(orig.Kind())
	for _, d := range orig.Designators() {
		ne, _ := orig.Lookup(d)
		for _, cand := range ne.Candidates() {
			newRegion.Add(copyEnt(arena, sub, c, cand), true)
		}
	}
	newRegion.Close(c)
	return newRegion
}

// mapKind rewrites every Ent/Region reference embedded in k through sub.
// Kinds with no such reference (LabelKind, LibraryKind) pass through
// unchanged.
func mapKind(arena *sem.Arena, sub substitution, c *diag.Collector, k sem.EntityKind) sem.EntityKind {
	switch v := k.(type) {
	case sem.TypeKind:
		return sem.TypeKind{Type: mapType(arena, sub, c, v.Type)}

	case sem.ObjectKind:
		return sem.ObjectKind{
			Class:      v.Class,
			Mode:       v.Mode,
			Subtype:    mapSubtype(sub, v.Subtype),
			HasDefault: v.HasDefault,
		}

	case sem.DeferredConstantKind:
		return sem.DeferredConstantKind{Subtype: mapSubtype(sub, v.Subtype)}

	case sem.FileKind:
		return sem.FileKind{Subtype: mapSubtype(sub, v.Subtype)}

	case sem.ComponentKind:
		return sem.ComponentKind{Region: copyRegionOf(arena, sub, c, v.Region)}

	case sem.AttributeKind:
		return sem.AttributeKind{Type: mapTypeEnt(sub, v.Type)}

	case sem.LabelKind:
		return v

	case sem.LibraryKind:
		return v

	case sem.DesignKind:
		return sem.DesignKind{
			Unit:     v.Unit,
			Generics: copyRegionOf(arena, sub, c, v.Generics),
			Region:   copyRegionOf(arena, sub, c, v.Region),
		}

	case sem.OverloadedKind:
		out := sem.OverloadedKind{
			What:      v.What,
			Signature: mapSignature(arena, sub, c, v.Signature),
		}
		if v.What == sem.OverloadAlias {
			out.AliasOf = mapTypeEnt(sub, v.AliasOf)
		}
		return out

	case sem.ObjectAliasKind:
		return sem.ObjectAliasKind{
			Base:     mapTypeEnt(sub, v.Base),
			TypeMark: mapTypeEnt(sub, v.TypeMark),
		}

	case sem.InterfaceFileKind:
		return sem.InterfaceFileKind{Type: mapTypeEnt(sub, v.Type)}

	case sem.ElementDeclarationKind:
		return sem.ElementDeclarationKind{Subtype: mapSubtype(sub, v.Subtype)}

	case sem.LoopParameterKind:
		return sem.LoopParameterKind{Type: mapTypeEnt(sub, v.Type)}

	case sem.PhysicalLiteralKind:
		return sem.PhysicalLiteralKind{Type: mapTypeEnt(sub, v.Type)}

	default:
		return k
	}
}

// mapType rewrites every Ent/Region reference embedded in t through sub.
func mapType(arena *sem.Arena, sub substitution, c *diag.Collector, t sem.Type) sem.Type {
	switch v := t.(type) {
	case *sem.IntegerType:
		return &sem.IntegerType{Range: v.Range}

	case *sem.RealType:
		return &sem.RealType{Range: v.Range}

	case *sem.PhysicalType:
		secondary := make([]sem.Ent, len(v.Secondary))
		for i, u := range v.Secondary {
			secondary[i] = mapTypeEnt(sub, u)
		}
		return &sem.PhysicalType{
			Range:     v.Range,
			Primary:   mapTypeEnt(sub, v.Primary),
			Secondary: secondary,
		}

	case *sem.UniversalType:
		return &sem.UniversalType{Class: v.Class}

	case *sem.EnumType:
		literals := make([]sem.Designator, len(v.Literals))
		copy(literals, v.Literals)
		return &sem.EnumType{Literals: literals}

	case *sem.ArrayType:
		indexes := make([]sem.ArrayIndex, len(v.Indexes))
		for i, idx := range v.Indexes {
			indexes[i] = sem.ArrayIndex{BaseType: mapTypeEnt(sub, idx.BaseType)}
		}
		return &sem.ArrayType{Indexes: indexes, Elem: mapTypeEnt(sub, v.Elem)}

	case *sem.RecordType:
		return &sem.RecordType{Elements: copyRegionOf(arena, sub, c, v.Elements)}

	case *sem.AccessType:
		return &sem.AccessType{Designated: mapSubtype(sub, v.Designated)}

	case *sem.FileType:
		return &sem.FileType{Elem: mapTypeEnt(sub, v.Elem)}

	case *sem.SubtypeType:
		return &sem.SubtypeType{
			Of:         mapTypeEnt(sub, v.Of),
			Constraint: mapConstraint(v.Constraint),
		}

	case *sem.AliasType:
		return &sem.AliasType{Of: mapTypeEnt(sub, v.Of)}

	case *sem.ProtectedType:
		// A protected type instance gets a fresh, empty body-position slot
		// (§4.G): HasBody/BodyPos are never carried over from the original.
		return &sem.ProtectedType{Region: copyRegionOf(arena, sub, c, v.Region)}

	case *sem.IncompleteType:
		return &sem.IncompleteType{}

	case *sem.InterfaceType:
		return &sem.InterfaceType{}

	default:
		return t
	}
}

func mapSubtype(sub substitution, s sem.Subtype) sem.Subtype {
	return sem.Subtype{
		TypeMark:   mapTypeEnt(sub, s.TypeMark),
		Constraint: mapConstraint(s.Constraint),
	}
}

func mapConstraint(con sem.Constraint) sem.Constraint {
	elements := make([]sem.Designator, len(con.Elements))
	copy(elements, con.Elements)
	return sem.Constraint{
		Kind:       con.Kind,
		IndexCount: con.IndexCount,
		Elements:   elements,
	}
}

func mapSignature(arena *sem.Arena, sub substitution, c *diag.Collector, sig sem.Signature) sem.Signature {
	params := make([]sem.Ent, len(sig.Params))
	for i, p := range sig.Params {
		params[i] = mapSignatureEnt(arena, sub, c, p)
	}
	out := sem.Signature{Params: params, HasRet: sig.HasRet}
	if sig.HasRet {
		out.Return = mapSignatureEnt(arena, sub, c, sig.Return)
	}
	return out
}

// mapSignatureEnt maps one Params/Return entry of a Signature, handling
// the three shapes a signature entity can take (§4.G, grounded in
// declare/subprogram.go's defineParams vs. resolveSignatureAST):
//
//   - a real declared formal parameter (Related().Kind == RelatedNone):
//     deep-copied in full, so a nested generic-type reference in its
//     subtype is substituted onto a new entity.
//   - an anonymous signature-only carrier implicit of an external type
//     mark (Related().Kind == RelatedImplicitOf, kind ObjectKind): left
//     alone unless its type mark actually changed, in which case a fresh
//     carrier is synthesized off the substituted mark — never mutating or
//     re-parenting the original external entity's implicit list.
//   - a raw type entity used directly as a function's return type (kind
//     is not ObjectKind): substituted by reference only, no copy.
func mapSignatureEnt(arena *sem.Arena, sub substitution, c *diag.Collector, e sem.Ent) sem.Ent {
	if e.IsZero() {
		return e
	}

	if e.Related().Kind == sem.RelatedImplicitOf {
		ok, isObj := e.Kind().(sem.ObjectKind)
		if !isObj {
			return mapTypeEnt(sub, e)
		}
		newMark := mapTypeEnt(sub, ok.Subtype.TypeMark)
		if newMark.Equal(ok.Subtype.TypeMark) {
			return e
		}
		return arena.Implicit(newMark, sem.Designator{}, sem.ObjectKind{
			Class:   ok.Class,
			Mode:    ok.Mode,
			Subtype: sem.Subtype{TypeMark: newMark, Constraint: ok.Subtype.Constraint},
		}, e.Pos())
	}

	if _, isObj := e.Kind().(sem.ObjectKind); isObj {
		return copyEnt(arena, sub, c, e)
	}

	return mapTypeEnt(sub, e)
}
