// Package seqstmt implements the sequential analyzer (§4.F): type-checks
// the statement list inside a subprogram body or process, dispatching
// each statement to its own analysis and delegating the parts the core
// does not own — procedure call targets, signal/variable assignment
// targets and waveforms — to external collaborators.
package seqstmt
