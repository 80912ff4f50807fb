// Package pkg provides the core libraries for Pedigraph pedigree visualization.
//
// # Overview
//
// Pedigraph turns GEDCOM genealogy files into pedigree graphs with computed
// layout positions. The pkg directory is organized into a few focused areas:
//
//  1. [gedcom] - GEDCOM 5.5 parsing (lines, records, individuals, families)
//  2. [pedigree] - Graph construction, generation assignment, layered layout
//  3. [pipeline] - Orchestration (parse and layout stages with caching)
//  4. [cache] - Content-addressed result caching (file, Redis, null)
//  5. [errors] - Domain error codes and input validation
//  6. [observability] - Pluggable pipeline, cache, and server hooks
//  7. [buildinfo] - Version information injected at build time
//
// # Architecture
//
// The typical data flow through Pedigraph:
//
//	GEDCOM source
//	         |
//	    [gedcom] package (parse lines into records and individuals)
//	         |
//	    [pedigree] package (build graph, assign generations)
//	         |
//	    [pedigree] layout (position nodes in layered rows)
//	         |
//	    JSON/DOT output
//
// # Quick Start
//
// Parse a GEDCOM file and compute a layout:
//
//	import (
//	    "context"
//	    "os"
//
//	    "github.com/pedigraph/pedigraph/pkg/pipeline"
//	)
//
//	source, _ := os.ReadFile("family.ged")
//	runner := pipeline.NewRunner(nil, nil, nil)
//	result, _ := runner.Execute(context.Background(), pipeline.Options{Source: string(source)})
//	for _, node := range result.Graph.Nodes {
//	    fmt.Printf("%s at (%.0f, %.0f)\n", node.Name, node.X, node.Y)
//	}
//
// # Main Packages
//
// [gedcom] - Tolerant line-based GEDCOM parser. Builds a record tree from
// level-numbered lines, then projects individuals and families with their
// events, names, and cross-references.
//
// [pedigree] - Pedigree graph built from parsed individuals and families.
// Assigns generations by breadth-first traversal from root ancestors and
// computes a layered layout with barycenter refinement and spouse adjacency.
// Supports JSON round-tripping and DOT export.
//
// [pipeline] - Two-stage pipeline (parse, layout) used by the CLI and the
// HTTP API. Both stages are cached content-addressed: the parse stage keys
// on the source hash, the layout stage on the graph hash plus spacing.
//
// [cache] - Cache backends behind a single interface: FileCache for the CLI
// (XDG cache directory), RedisCache for multi-instance API deployments, and
// NullCache for tests and --no-cache runs.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...          # All tests
//	go test ./pkg/pedigree/... # Specific package
//
// [gedcom]: https://pkg.go.dev/github.com/pedigraph/pedigraph/pkg/gedcom
// [pedigree]: https://pkg.go.dev/github.com/pedigraph/pedigraph/pkg/pedigree
// [pipeline]: https://pkg.go.dev/github.com/pedigraph/pedigraph/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/pedigraph/pedigraph/pkg/cache
// [errors]: https://pkg.go.dev/github.com/pedigraph/pedigraph/pkg/errors
// [observability]: https://pkg.go.dev/github.com/pedigraph/pedigraph/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/pedigraph/pedigraph/pkg/buildinfo
package pkg
