package location

// PositionRegistry provides byte-offset-to-position conversion.
//
// This interface is the bridge between format adapters (JSON, CSV) and source
// content registries that perform the actual conversion. It enables adapters
// to obtain accurate Position values from byte offsets captured during parsing.
//
// The primary implementation lives with the front end that parses design
// units into the AST the analyzer consumes; this package only defines the
// interface so diagnostics never depend on a concrete parser.
//
// Design rationale:
//
//  1. Foundation tier placement: PositionRegistry is defined in location
//     (foundation tier) because the interface operates on location.Position and
//     location.SourceID — natural cohesion with the location package.
//
//  2. Decouples diagnostics from parsing: callers can use any PositionRegistry
//     implementation, not just a particular front end's. This enables testing
//     with mock registries and supports alternative implementations.
//
//  3. Enables analyzer-core independence: the analyzer core can be exercised
//     in contexts where no concrete source-text registry is available.
type PositionRegistry interface {
	// PositionAt converts a byte offset to a Position for the given source.
	//
	// Returns a zero Position (check via IsZero()) if:
	//   - The source is not registered
	//   - The byte offset is out of range
	//   - The byte offset is negative
	//
	// The returned Position has:
	//   - Line: 1-based line number
	//   - Column: 1-based rune offset from line start
	//   - Byte: The input byteOffset (echoed back for convenience)
	PositionAt(source SourceID, byteOffset int) Position
}

// RuneOffsetConverter provides rune-to-byte offset conversion.
//
// Parser front ends commonly report rune-based positions (character
// indices), while the analyzer core uses byte offsets for consistency with
// Go strings and UTF-8 handling. This interface enables conversion between
// the two coordinate systems.
type RuneOffsetConverter interface {
	// RuneToByteOffset converts a rune offset to a byte offset for the given source.
	//
	// Returns (byteOffset, true) on success.
	// Returns (0, false) if:
	//   - The source is not registered
	//   - The rune offset is out of range
	//   - The rune offset is negative
	RuneToByteOffset(source SourceID, runeOffset int) (byteOffset int, ok bool)
}
