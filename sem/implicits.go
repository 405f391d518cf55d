package sem

// ImplicitFactory builds the concrete signature/body of an implicit
// operation for a newly-declared type. Deciding *which* implicits a type
// needs is core (SynthesizeImplicits, below); deciding the operations'
// actual signatures is delegated to this external collaborator (§6:
// Implicit-operation factories), because that requires knowledge of the
// predefined operator set a host compiler wants to expose — the core only
// knows the type *shape* that triggers each family.
//
// Each method returns the implicit entities to attach to the type, already
// allocated in arena (via arena.Implicit) and ready for insertion into the
// enclosing scope.
type ImplicitFactory interface {
	EnumImplicits(arena *Arena, enumType Ent) []Ent
	RecordImplicits(arena *Arena, recordType Ent) []Ent
	AccessImplicits(arena *Arena, accessType Ent) []Ent
	ArrayImplicits(arena *Arena, arrayType Ent) []Ent
	PhysicalImplicits(arena *Arena, physType Ent) []Ent
	NumericImplicits(arena *Arena, numType Ent) []Ent
	FileImplicits(arena *Arena, fileType Ent) []Ent
}

// SynthesizeImplicits decides which family of implicit operations a newly
// defined type needs (§4.C) and asks factory to build them, attaching each
// as an implicit child of typeEnt. It returns the synthesized entities so
// the caller (the declarative analyzer) can also insert them into the
// enclosing scope — implicits become visible together with their type
// (§5 ordering guarantee).
func SynthesizeImplicits(arena *Arena, factory ImplicitFactory, typeEnt Ent) []Ent {
	tk, ok := typeEnt.Kind().(TypeKind)
	if !ok {
		return nil
	}
	switch tk.Type.(type) {
	case *EnumType:
		return factory.EnumImplicits(arena, typeEnt)
	case *RecordType:
		return factory.RecordImplicits(arena, typeEnt)
	case *AccessType:
		return factory.AccessImplicits(arena, typeEnt)
	case *ArrayType:
		return factory.ArrayImplicits(arena, typeEnt)
	case *PhysicalType:
		return factory.PhysicalImplicits(arena, typeEnt)
	case *IntegerType, *RealType:
		return factory.NumericImplicits(arena, typeEnt)
	case *FileType:
		return factory.FileImplicits(arena, typeEnt)
	default:
		// Subtype, Alias, Protected, Incomplete, Interface, Universal: no
		// implicits of their own — a Subtype/Alias shares its base type's
		// implicits via lookup through BaseType, not by re-synthesis.
		return nil
	}
}
