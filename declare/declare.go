package declare

import (
	"context"
	"log/slog"

	"vhdlsem/ast"
	"vhdlsem/diag"
	"vhdlsem/internal/trace"
	"vhdlsem/sem"
)

// Dependencies bundles every external collaborator the declarative
// analyzer calls out to (§6). A caller builds one value per design-unit
// analysis and threads it through every AnalyzeDeclarativePart call,
// including the recursive ones a subprogram body's own declarative part
// triggers.
type Dependencies struct {
	Arena        *sem.Arena
	Names        sem.NameResolver
	UseClauses   sem.UseClauseHandler
	Exprs        ast.ExprTyper
	Sequential   ast.SequentialAnalyzer
	Instantiator ast.PackageInstantiator
	Implicits    sem.ImplicitFactory

	// FinalAliasPlaceholder downgrades E_FINAL_ALIAS_UNSUPPORTED (§9 open
	// question: aliasing a host-extended "Final" resolved-name class is
	// not implemented) from an Error to a Warning, letting a host that
	// would rather keep processing the rest of a design unit opt into
	// treating it as a placeholder instead of a hard failure. The zero
	// value (false) keeps the original hard-error behavior.
	FinalAliasPlaceholder bool

	// Logger receives low-volume phase traces of each declarative-part
	// entry; nil (the zero value) disables tracing entirely.
	Logger *slog.Logger
}

// pending is the per-symbol bookkeeping the incomplete-type pass keeps
// while scanning a declarative part (§4.D step 1).
type pending struct {
	ent sem.EntityID
	pos int // index of the incomplete declaration within decls
}

// AnalyzeDeclarativePart walks decls in order, defining an entity for each
// declaration and inserting it into scope's innermost region. It does not
// close scope's region itself — the caller closes it once the
// corresponding lexical construct (entity, architecture, package,
// subprogram body, ...) is fully analyzed, so that later declarative parts
// sharing the same region (e.g. a package declaration and its body) can
// still see it open.
func AnalyzeDeclarativePart(scope *sem.Scope, decls []ast.Decl, deps Dependencies, c *diag.Collector) sem.FatalResult {
	op := trace.Begin(context.Background(), deps.Logger, "vhdlsem.declare.analyze_declarative_part",
		slog.Int("decl_count", len(decls)))

	incomplete := incompleteTypePass(scope, decls, deps, c)

	for _, decl := range decls {
		if res := analyzeDecl(scope, decl, incomplete, deps, c); !res.IsOk() {
			err := res.Error()
			op.End(*err)
			return res
		}
	}
	op.End(nil)
	return sem.FatalOk()
}

// incompleteTypePass implements §4.D step 1: on an incomplete type, search
// the remaining declarations for the matching full type declaration (by
// simple name) to pick the entity's recorded declaration position, then
// allocate and insert a placeholder Type::Incomplete entity. Full type
// declarations whose symbol was seen here are looked up again during
// dispatch and upgraded in place via DefineWithOptID.
func incompleteTypePass(scope *sem.Scope, decls []ast.Decl, deps Dependencies, c *diag.Collector) map[string]pending {
	seen := make(map[string]pending)
	for i, decl := range decls {
		td, ok := decl.(*ast.TypeDecl)
		if !ok || td.Def != nil {
			continue
		}
		key := td.Name.Key()
		if _, dup := seen[key]; dup {
			c.Collect(diag.NewIssue(diag.Error, diag.E_DUPLICATE_DECL,
				`"`+td.Name.Text()+`" already declared`).
				WithSpan(td.Pos).
				WithDetail(diag.DetailKeyDesignator, td.Name.Text()).Build())
			continue
		}

		pos := td.Pos
		found := false
		for _, later := range decls[i+1:] {
			full, ok := later.(*ast.TypeDecl)
			if !ok || full.Def == nil || !full.Name.Equal(td.Name) {
				continue
			}
			pos = full.Pos
			found = true
			break
		}
		if !found {
			c.Collect(diag.NewIssue(diag.Error, diag.E_INCOMPLETE_NO_FULL_TYPE,
				`no full type declaration of incomplete type "`+td.Name.Text()+`"`).
				WithSpan(td.Pos).
				WithDetail(diag.DetailKeyDesignator, td.Name.Text()).Build())
		}

		ent := deps.Arena.Define(&td.Ref, td.Name, sem.TypeKind{Type: &sem.IncompleteType{}}, pos)
		scope.Add(ent)
		seen[key] = pending{ent: ent.ID(), pos: i}
	}
	return seen
}

// analyzeDecl dispatches one non-incomplete-type-pass declaration to its
// per-kind analyzer (§4.D step 2).
func analyzeDecl(scope *sem.Scope, decl ast.Decl, incomplete map[string]pending, deps Dependencies, c *diag.Collector) sem.FatalResult {
	switch d := decl.(type) {
	case *ast.TypeDecl:
		return analyzeTypeDecl(scope, d, incomplete, deps, c)
	case *ast.SubtypeDecl:
		return analyzeSubtypeDecl(scope, d, deps, c)
	case *ast.ObjectDecl:
		return analyzeObjectDecl(scope, d, deps, c)
	case *ast.FileDecl:
		return analyzeFileDecl(scope, d, deps, c)
	case *ast.AliasDecl:
		return analyzeAliasDecl(scope, d, deps, c)
	case *ast.ComponentDecl:
		return analyzeComponentDecl(scope, d, deps, c)
	case *ast.AttributeDecl:
		return analyzeAttributeDecl(scope, d, deps, c)
	case *ast.AttributeSpec:
		return analyzeAttributeSpec(scope, d, deps, c)
	case *ast.SubprogramDecl:
		return analyzeSubprogramDecl(scope, d, deps, c)
	case *ast.UseClause:
		names := make([]sem.Designator, len(d.Names))
		for i, n := range d.Names {
			names[i] = n.Base
		}
		return deps.UseClauses.ResolveUseClause(scope, names, c)
	case *ast.PackageInstantiation:
		return analyzePackageInstantiation(scope, d, deps, c)
	case *ast.ConfigurationDecl:
		return sem.FatalOk()
	default:
		return sem.FatalErr("declare: unrecognized declaration node")
	}
}
