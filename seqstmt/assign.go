package seqstmt

import (
	"vhdlsem/ast"
	"vhdlsem/diag"
	"vhdlsem/sem"
)

// analyzeProcedureCall delegates target resolution and argument-count
// checking to the procedure-call resolver, writing its result into the
// target name's ref slot on success (§4.F "Procedure call").
func (a Analyzer) analyzeProcedureCall(scope *sem.Scope, s *ast.ProcedureCallStmt, c *diag.Collector) {
	res := a.Deps.ProcedureCalls.ResolveProcedureCall(scope, s.Target.Base, len(s.Associations), c)
	if res.IsOk() {
		s.Target.Ref.Set(res.Value().ID())
	}
}

// analyzeAssign delegates target resolution to the target-and-waveform
// resolver, then types every waveform/value expression against the
// resolved subtype (§4.F "Signal/variable assignment and force/release").
// A release carries no waveform to type.
func (a Analyzer) analyzeAssign(scope *sem.Scope, s *ast.AssignStmt, c *diag.Collector) {
	res := a.Deps.Targets.ResolveTarget(scope, s.Target.Base, s.Class == ast.AssignSignal, c)
	if !res.IsOk() {
		return
	}
	target := res.Value()
	for _, expr := range s.Waveform {
		a.Deps.Exprs.TypeAgainst(scope, expr, target, c)
	}
}
