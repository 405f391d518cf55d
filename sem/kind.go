package sem

// EntityKind is the sealed interface implemented by each variant of
// AnyEntKind (§3). Go has no native sum type, so each variant is a small
// struct carrying its own payload and a private marker method; a type
// switch on the dynamic type recovers the variant, mirroring the teacher's
// pattern of a tagged interface for NamedEntities.
type EntityKind interface {
	isEntityKind()
}

// ObjectClass distinguishes the four object classes.
type ObjectClass int

const (
	ClassConstant ObjectClass = iota
	ClassSignal
	ClassVariable
	ClassSharedVariable
)

// Mode distinguishes interface-object direction.
type Mode int

const (
	ModeNone Mode = iota
	ModeIn
	ModeOut
	ModeInOut
	ModeBuffer
	ModeLinkage
)

// TypeKind wraps a fully-formed type in the entity-kind sum.
type TypeKind struct {
	Type Type
}

func (TypeKind) isEntityKind() {}

// ObjectKind is a signal/variable/constant/shared-variable declaration.
type ObjectKind struct {
	Class      ObjectClass
	Mode       Mode
	Subtype    Subtype
	HasDefault bool
}

func (ObjectKind) isEntityKind() {}

// DeferredConstantKind is a constant interface declaration with no
// initializer in a package declarative region (the value is supplied in
// the package body).
type DeferredConstantKind struct {
	Subtype Subtype
}

func (DeferredConstantKind) isEntityKind() {}

// FileKind is a file declaration.
type FileKind struct {
	Subtype Subtype
}

func (FileKind) isEntityKind() {}

// ComponentKind is a component declaration capturing its generic/port region.
type ComponentKind struct {
	Region *Region
}

func (ComponentKind) isEntityKind() {}

// AttributeKind is an attribute declaration.
type AttributeKind struct {
	Type Ent
}

func (AttributeKind) isEntityKind() {}

// LabelKind is a statement label.
type LabelKind struct{}

func (LabelKind) isEntityKind() {}

// LibraryKind is a library clause target.
type LibraryKind struct{}

func (LibraryKind) isEntityKind() {}

// DesignUnitKind enumerates the library-unit kinds a Design entity may name.
type DesignUnitKind int

const (
	DesignEntity DesignUnitKind = iota
	DesignArchitecture
	DesignConfiguration
	DesignPackage
	DesignPackageBody
	DesignContext
	DesignPackageInstance
)

// DesignKind is a reference to a design (library) unit, optionally carrying
// the captured region of a package declaration or instance.
type DesignKind struct {
	Unit DesignUnitKind
	// Generics is the package's own generic-clause region (closed,
	// RegionOrdinary), built the same way a component's combined
	// generic/port region is (§4.D "Component"): non-nil only for an
	// uninstantiated DesignPackage that declares one or more generics.
	// An instance never has its own Generics — every formal was bound (or
	// left open) at instantiation time (§4.G).
	Generics *Region
	// Region is the unit's ordinary declarative-part members. Non-nil for
	// DesignPackage (the uninstantiated members the instantiator deep-copies
	// from) and DesignPackageInstance (the copy the instantiator produced).
	Region *Region
}

func (DesignKind) isEntityKind() {}

// OverloadableKind enumerates what an Overloaded entity actually is.
type OverloadableKind int

const (
	OverloadSubprogram OverloadableKind = iota
	OverloadDecl
	OverloadAlias
	OverloadEnumLiteral
	OverloadInterfaceSubprogram
)

// OverloadedKind is an entity participating in overload resolution: a
// subprogram, subprogram declaration, subprogram alias, enumeration
// literal, or interface subprogram.
type OverloadedKind struct {
	What      OverloadableKind
	Signature Signature
	// AliasOf is set only when What == OverloadAlias.
	AliasOf Ent
}

func (OverloadedKind) isEntityKind() {}

// ObjectAliasKind aliases an existing object, preserving its base entity
// and the type mark used at the alias declaration.
type ObjectAliasKind struct {
	Base     Ent
	TypeMark Ent
}

func (ObjectAliasKind) isEntityKind() {}

// InterfaceFileKind is a file-class interface object.
type InterfaceFileKind struct {
	Type Ent
}

func (InterfaceFileKind) isEntityKind() {}

// ElementDeclarationKind is a record element declaration.
type ElementDeclarationKind struct {
	Subtype Subtype
}

func (ElementDeclarationKind) isEntityKind() {}

// LoopParameterKind is the implicit loop variable introduced by a for-loop.
type LoopParameterKind struct {
	Type Ent
}

func (LoopParameterKind) isEntityKind() {}

// PhysicalLiteralKind is a primary or secondary unit of a physical type.
type PhysicalLiteralKind struct {
	Type Ent
}

func (PhysicalLiteralKind) isEntityKind() {}

// ResolvedNameClass enumerates what an external name-resolver may report a
// name as (§6 external collaborator: Name resolver).
type ResolvedNameClass int

const (
	ResolvedObject ResolvedNameClass = iota
	ResolvedLibrary
	ResolvedDesign
	ResolvedExpression
	ResolvedType
	ResolvedOverloaded
	// ResolvedFinal covers resolved-name classes the core does not itself
	// model further (see DESIGN.md: aliasing of Final names is a documented
	// open question, surfaced as a placeholder diagnostic rather than guessed).
	ResolvedFinal
)
