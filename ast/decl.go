package ast

import (
	"vhdlsem/location"
	"vhdlsem/sem"
)

// Decl is the sealed interface implemented by every declaration-shaped
// node the declarative analyzer (declare) dispatches on (§4.D step 2).
type Decl interface {
	isDecl()
	Span() location.Span
}

// TypeDecl is a full or incomplete type declaration. Def is nil for an
// incomplete type declaration ("type t;").
type TypeDecl struct {
	Pos  location.Span
	Name sem.Designator
	Ref  sem.EntityRef
	Def  TypeDef // nil => incomplete
}

func (d *TypeDecl) isDecl()             {}
func (d *TypeDecl) Span() location.Span { return d.Pos }

// SubtypeDecl declares a named subtype of an existing type.
type SubtypeDecl struct {
	Pos        location.Span
	Name       sem.Designator
	Ref        sem.EntityRef
	Indication SubtypeIndication
}

func (d *SubtypeDecl) isDecl()             {}
func (d *SubtypeDecl) Span() location.Span { return d.Pos }

// ObjectDecl declares one or more signals/variables/constants sharing a
// subtype indication and initializer.
type ObjectDecl struct {
	Pos        location.Span
	Class      sem.ObjectClass
	Names      []sem.Designator
	Refs       []sem.EntityRef
	Indication SubtypeIndication
	Init       Expr // nil if no initializer
}

func (d *ObjectDecl) isDecl()             {}
func (d *ObjectDecl) Span() location.Span { return d.Pos }

// FileDecl declares a file object.
type FileDecl struct {
	Pos        location.Span
	Name       sem.Designator
	Ref        sem.EntityRef
	Indication SubtypeIndication
	OpenInfo   Expr // nil if omitted
	FileName   Expr // nil if omitted
}

func (d *FileDecl) isDecl()             {}
func (d *FileDecl) Span() location.Span { return d.Pos }

// AliasDecl aliases an existing name under a new designator, optionally
// qualified by a signature for an overloaded target (§4.D Alias).
type AliasDecl struct {
	Pos       location.Span
	Name      sem.Designator
	Ref       sem.EntityRef
	Target    Name
	Signature *SignatureAST // non-nil only when the alias names a signature
}

func (d *AliasDecl) isDecl()             {}
func (d *AliasDecl) Span() location.Span { return d.Pos }

// ComponentDecl declares a component with its own generic and port
// interface lists.
type ComponentDecl struct {
	Pos      location.Span
	Name     sem.Designator
	Ref      sem.EntityRef
	Generics []InterfaceDecl
	Ports    []InterfaceDecl
}

func (d *ComponentDecl) isDecl()             {}
func (d *ComponentDecl) Span() location.Span { return d.Pos }

// AttributeDecl declares a new attribute with its value type.
type AttributeDecl struct {
	Pos      location.Span
	Name     sem.Designator
	Ref      sem.EntityRef
	TypeMark Name
}

func (d *AttributeDecl) isDecl()             {}
func (d *AttributeDecl) Span() location.Span { return d.Pos }

// EntityClass enumerates the named entity classes an attribute
// specification may target (§9 open question: class is parsed, not yet
// enforced by the analyzer).
type EntityClass int

const (
	EntityClassUnspecified EntityClass = iota
	EntityClassEntity
	EntityClassSignal
	EntityClassVariable
	EntityClassConstant
	EntityClassType
	EntityClassSubtype
	EntityClassProcedure
	EntityClassFunction
	EntityClassComponent
	EntityClassLabel
)

// AttributeSpec attaches a value to an attribute for a named target
// entity (or "all"/"others" of a given class).
type AttributeSpec struct {
	Pos         location.Span
	Attribute   Name
	Target      Name
	Class       EntityClass
	TargetAll   bool
	TargetOther bool
	Value       Expr
}

func (d *AttributeSpec) isDecl()             {}
func (d *AttributeSpec) Span() location.Span { return d.Pos }

// SignatureAST is the unresolved parameter/return shape written after an
// alias target or a subprogram specification, before resolution produces
// a sem.Signature.
type SignatureAST struct {
	Params []SubtypeIndication
	Return *SubtypeIndication // nil for a procedure signature
}

// SubprogramKind distinguishes a function from a procedure.
type SubprogramKind int

const (
	SubprogramProcedure SubprogramKind = iota
	SubprogramFunction
)

// SubprogramDecl is a subprogram declaration or, when Body is non-nil, a
// subprogram body (§4.D: "Subprogram body" / "Subprogram declaration").
type SubprogramDecl struct {
	Pos        location.Span
	Kind       SubprogramKind
	Name       sem.Designator
	Ref        sem.EntityRef
	Params     []InterfaceDecl
	ReturnType *Name // set only for SubprogramFunction

	// Body is non-nil for a subprogram body; nil for a bare declaration.
	Body *SubprogramBody
}

func (d *SubprogramDecl) isDecl()             {}
func (d *SubprogramDecl) Span() location.Span { return d.Pos }

// SubprogramBody is the declarative part and statement list of a
// subprogram body, analyzed in the same nested scope that holds the
// subprogram's parameters.
type SubprogramBody struct {
	Declarations []Decl
	Statements   []Stmt
}

// UseClause names one or more selected names to bring into visibility;
// resolution is delegated to the external use-clause handler (§6).
type UseClause struct {
	Pos   location.Span
	Names []Name
}

func (d *UseClause) isDecl()             {}
func (d *UseClause) Span() location.Span { return d.Pos }

// PackageInstantiation names an uninstantiated package and a generic map
// association list (§4.G); delegated to the package instantiator.
type PackageInstantiation struct {
	Pos         location.Span
	Name        sem.Designator
	Ref         sem.EntityRef
	Uninst      Name
	GenericMap  []Association
}

func (d *PackageInstantiation) isDecl()             {}
func (d *PackageInstantiation) Span() location.Span { return d.Pos }

// ConfigurationDecl is a configuration declaration; its semantics are a
// no-op per §1 Non-goals: the declarative analyzer skips it without
// examining its declarative part.
type ConfigurationDecl struct {
	Pos          location.Span
	Name         sem.Designator
	Declarations []Decl
}

func (d *ConfigurationDecl) isDecl()             {}
func (d *ConfigurationDecl) Span() location.Span { return d.Pos }

// InterfaceDecl is one formal in a generic or port interface list, or one
// formal parameter of a subprogram.
type InterfaceDecl struct {
	Pos        location.Span
	Class      sem.ObjectClass
	Names      []sem.Designator
	Refs       []sem.EntityRef
	Mode       sem.Mode
	Indication SubtypeIndication
	Default    Expr // nil if no default expression

	// File and subprogram/package/type generic interface elements do not
	// fit the object shape above; Generic carries their kind when set.
	Generic *GenericFormal
}

// GenericFormalKind distinguishes the non-object generic formal shapes
// (§4.G: type, subprogram, and package generics).
type GenericFormalKind int

const (
	GenericType GenericFormalKind = iota
	GenericSubprogram
	GenericPackage
)

// GenericFormal describes a type/subprogram/package generic formal.
type GenericFormal struct {
	Kind      GenericFormalKind
	Signature *SignatureAST // set when Kind == GenericSubprogram
	Uninst    *Name         // set when Kind == GenericPackage
}
