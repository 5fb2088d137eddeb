// Package depgraph implements the asset dependency graph engine.
//
// A Map stores the directed "asset depends on asset" relation as an
// adjacency list from asset name to an ordered slice of dependency names.
// Everything else in the package is a pure computation over that relation:
// transitive closure, bounded-depth tree materialization, whole-graph cycle
// detection, orphan and reference statistics, validation, normalization,
// and multi-format export.
//
// The package performs no I/O and no locking. A Map is a plain value owned
// by whatever subsystem constructs it; callers that share one Map across
// goroutines must serialize access themselves (see internal/server).
//
// Edges may target names that never appear as a key ("dangling"
// dependencies); that is legal and such targets still show up in closures,
// trees, and exports. The graph is not required to be acyclic: every
// traversal bounds its work with a visited set, so cyclic inputs are safe.
package depgraph
