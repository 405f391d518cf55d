package resolve

import "vhdlsem/sem"

// DefaultImplicits is the reference sem.ImplicitFactory: it builds the
// predefined operator set §4.C requires for each type shape. A host
// compiler with its own operator catalog (e.g. one that also synthesizes
// matching-bit comparisons) supplies its own sem.ImplicitFactory instead.
type DefaultImplicits struct {
	Predefined PredefinedTypes

	// VHDL2008, when set, additionally synthesizes the VHDL-2008 condition
	// operator ("??", LRM 9.2.9) for enumeration types, so an
	// enumeration-typed expression can appear directly where a condition
	// is expected (an if/while/exit/wait-until condition, §4.F) without a
	// separate comparison against an explicit boolean literal. A VHDL-93
	// host leaves this unset, matching that standard's lack of the
	// operator.
	VHDL2008 bool
}

// PredefinedTypes is the minimal surface DefaultImplicits needs from a
// PredefinedTypeProvider: just boolean, since every comparison operator
// this factory synthesizes returns it.
type PredefinedTypes interface {
	Boolean() sem.Ent
}

// binaryOp synthesizes an implicit operator taking two formals of
// typeEnt's subtype and returning ret, attached as an implicit child of
// typeEnt.
func binaryOp(arena *sem.Arena, typeEnt sem.Ent, op string, ret sem.Ent) sem.Ent {
	pos := typeEnt.Pos()
	lhs := arena.Explicit(sem.NewSimpleDesignator("l", false), sem.ObjectKind{
		Class: sem.ClassConstant, Subtype: sem.Subtype{TypeMark: typeEnt},
	}, pos)
	rhs := arena.Explicit(sem.NewSimpleDesignator("r", false), sem.ObjectKind{
		Class: sem.ClassConstant, Subtype: sem.Subtype{TypeMark: typeEnt},
	}, pos)
	sig := sem.Signature{Params: []sem.Ent{lhs, rhs}, Return: ret, HasRet: true}
	return arena.Implicit(typeEnt, sem.NewOperatorDesignator(op), sem.OverloadedKind{
		What: sem.OverloadSubprogram, Signature: sig,
	}, pos)
}

// unaryOp synthesizes an implicit operator taking one formal of typeEnt's
// subtype and returning ret.
func unaryOp(arena *sem.Arena, typeEnt sem.Ent, op string, ret sem.Ent) sem.Ent {
	pos := typeEnt.Pos()
	operand := arena.Explicit(sem.NewSimpleDesignator("x", false), sem.ObjectKind{
		Class: sem.ClassConstant, Subtype: sem.Subtype{TypeMark: typeEnt},
	}, pos)
	sig := sem.Signature{Params: []sem.Ent{operand}, Return: ret, HasRet: true}
	return arena.Implicit(typeEnt, sem.NewOperatorDesignator(op), sem.OverloadedKind{
		What: sem.OverloadSubprogram, Signature: sig,
	}, pos)
}

func (d DefaultImplicits) comparisonOps(arena *sem.Arena, typeEnt sem.Ent, ops []string) []sem.Ent {
	boolean := d.Predefined.Boolean()
	out := make([]sem.Ent, 0, len(ops))
	for _, op := range ops {
		out = append(out, binaryOp(arena, typeEnt, op, boolean))
	}
	return out
}

// EnumImplicits synthesizes the comparison and ordering operators for an
// enumeration (or any scalar built from sem.EnumType): "=", "/=", "<",
// "<=", ">", ">=", plus the VHDL-2008 condition operator "??" when
// d.VHDL2008 is set.
func (d DefaultImplicits) EnumImplicits(arena *sem.Arena, enumType sem.Ent) []sem.Ent {
	out := d.comparisonOps(arena, enumType, []string{"=", "/=", "<", "<=", ">", ">="})
	if d.VHDL2008 {
		out = append(out, unaryOp(arena, enumType, "??", d.Predefined.Boolean()))
	}
	return out
}

// RecordImplicits synthesizes equality/inequality for a record type.
func (d DefaultImplicits) RecordImplicits(arena *sem.Arena, recordType sem.Ent) []sem.Ent {
	return d.comparisonOps(arena, recordType, []string{"=", "/="})
}

// AccessImplicits synthesizes equality/inequality for an access type.
func (d DefaultImplicits) AccessImplicits(arena *sem.Arena, accessType sem.Ent) []sem.Ent {
	return d.comparisonOps(arena, accessType, []string{"=", "/="})
}

// ArrayImplicits synthesizes concatenation, the comparison set, and the
// shift/rotate family for a one-dimensional array of a scalar element.
func (d DefaultImplicits) ArrayImplicits(arena *sem.Arena, arrayType sem.Ent) []sem.Ent {
	out := d.comparisonOps(arena, arrayType, []string{"=", "/=", "<", "<=", ">", ">="})
	out = append(out, binaryOp(arena, arrayType, "&", arrayType))
	for _, op := range []string{"sll", "srl", "sla", "sra", "rol", "ror"} {
		out = append(out, binaryOp(arena, arrayType, op, arrayType))
	}
	return out
}

// PhysicalImplicits synthesizes the arithmetic operator set for a
// physical type: "+", "-", "*", "/", "mod", "rem", "abs", plus the
// comparison set.
func (d DefaultImplicits) PhysicalImplicits(arena *sem.Arena, physType sem.Ent) []sem.Ent {
	return d.numericOps(arena, physType)
}

// NumericImplicits synthesizes the arithmetic operator set for an Integer
// or Real type.
func (d DefaultImplicits) NumericImplicits(arena *sem.Arena, numType sem.Ent) []sem.Ent {
	return d.numericOps(arena, numType)
}

func (d DefaultImplicits) numericOps(arena *sem.Arena, typeEnt sem.Ent) []sem.Ent {
	out := d.comparisonOps(arena, typeEnt, []string{"=", "/=", "<", "<=", ">", ">="})
	for _, op := range []string{"+", "-", "*", "/", "mod", "rem"} {
		out = append(out, binaryOp(arena, typeEnt, op, typeEnt))
	}
	out = append(out, unaryOp(arena, typeEnt, "abs", typeEnt))
	return out
}

// FileImplicits synthesizes the file-handling subprograms (file_open,
// file_close, read, write, endfile) (§4.C "on file, the file-handling
// subprograms"). file_open, file_close, read and write carry no signature;
// endfile takes the file type and returns boolean. None of them refers to
// the file's element type.
func (d DefaultImplicits) FileImplicits(arena *sem.Arena, fileType sem.Ent) []sem.Ent {
	pos := fileType.Pos()
	boolean := d.Predefined.Boolean()
	out := make([]sem.Ent, 0, 5)
	for _, name := range []string{"file_open", "file_close", "read", "write"} {
		out = append(out, arena.Implicit(fileType, sem.NewSimpleDesignator(name, false), sem.OverloadedKind{
			What: sem.OverloadSubprogram,
		}, pos))
	}
	out = append(out, unaryOp(arena, fileType, "endfile", boolean))
	return out
}
