// Package declare implements the declarative analyzer (§4.D): walking an
// ordered declarative part, defining an entity for each declaration, and
// wiring each new entity into the enclosing scope.
//
// AnalyzeDeclarativePart runs two passes. The first handles the
// incomplete/full type forward-reference rule in isolation, since it needs
// to see the whole declarative part before committing to a diagnosis. The
// second dispatches every declaration — types included, now upgraded in
// place rather than freshly defined — to a per-kind analyzer.
//
// declare depends on five external collaborators it never implements
// itself: [vhdlsem/sem.NameResolver], [vhdlsem/sem.UseClauseHandler],
// [vhdlsem/ast.ExprTyper], [vhdlsem/ast.SequentialAnalyzer], and
// [vhdlsem/ast.PackageInstantiator]. A caller assembles a [Dependencies]
// value from its own collaborator implementations (or the reference ones
// in [vhdlsem/resolve]) and passes it to every call.
package declare
