package snapshot

import (
	"crypto/sha256"

	"vhdlsem/diag"
	"vhdlsem/sem"
)

// recordSchemaVersion is bumped whenever Record's shape changes in a way
// that would make an old cached payload unsafe to decode as a new one.
const recordSchemaVersion uint16 = 1

// Digest identifies the source (and relevant dependency state) a Record was
// computed from, the same role project.Digest plays for vovakirdan-surge's
// disk cache.
type Digest [sha256.Size]byte

// Sum computes the Digest of src, the key a caller looks a Record up by
// before deciding whether to re-run analysis.
func Sum(src []byte) Digest {
	return Digest(sha256.Sum256(src))
}

// EntitySummary is a compact, serializable description of one entity
// produced by analyzing a design unit: its designator and a stable tag
// naming which EntityKind variant it holds. It intentionally drops
// everything else an Ent carries (EntityID, storage pointer, Related,
// Pos) since none of that is meaningful across a process restart.
type EntitySummary struct {
	Designator string
	Kind       string
}

// SummarizeEntity reduces e to its EntitySummary.
func SummarizeEntity(e sem.Ent) EntitySummary {
	return EntitySummary{Designator: e.Designator().Text(), Kind: kindTag(e.Kind())}
}

// kindTag names e's EntityKind variant, mirroring the closed switch
// instantiate/copy.go's mapKind uses to dispatch on the same sealed
// interface.
func kindTag(k sem.EntityKind) string {
	switch k.(type) {
	case sem.TypeKind:
		return "type"
	case sem.ObjectKind:
		return "object"
	case sem.DeferredConstantKind:
		return "deferred_constant"
	case sem.FileKind:
		return "file"
	case sem.ComponentKind:
		return "component"
	case sem.AttributeKind:
		return "attribute"
	case sem.LabelKind:
		return "label"
	case sem.LibraryKind:
		return "library"
	case sem.DesignKind:
		return "design"
	case sem.OverloadedKind:
		return "overloaded"
	case sem.ObjectAliasKind:
		return "object_alias"
	case sem.InterfaceFileKind:
		return "interface_file"
	case sem.ElementDeclarationKind:
		return "element_declaration"
	case sem.LoopParameterKind:
		return "loop_parameter"
	case sem.PhysicalLiteralKind:
		return "physical_literal"
	default:
		return "unknown"
	}
}

// DiagnosticCounts mirrors diag.SeverityCounts in a form msgpack can encode
// without reaching into the diag package's unexported Result fields.
type DiagnosticCounts struct {
	Fatal    int
	Errors   int
	Warnings int
	Info     int
	Hints    int
}

func summarizeCounts(c diag.SeverityCounts) DiagnosticCounts {
	return DiagnosticCounts{Fatal: c.Fatal, Errors: c.Errors, Warnings: c.Warnings, Info: c.Info, Hints: c.Hints}
}

// Record is the unit of data the Cache stores per design unit: enough to
// tell a caller what analyzing that unit's source last produced, without
// needing to re-run the analyzer to find out.
type Record struct {
	Schema      uint16
	UnitName    string
	Entities    []EntitySummary
	Diagnostics DiagnosticCounts
}

// NewRecord builds a Record from a design unit's top-level entities and the
// diag.Result its analysis produced.
func NewRecord(unitName string, entities []sem.Ent, result diag.Result) Record {
	summaries := make([]EntitySummary, len(entities))
	for i, e := range entities {
		summaries[i] = SummarizeEntity(e)
	}
	return Record{
		Schema:      recordSchemaVersion,
		UnitName:    unitName,
		Entities:    summaries,
		Diagnostics: summarizeCounts(result.SeverityCounts()),
	}
}
