// Package pedigree derives a generation-ordered layout graph from parsed
// GEDCOM records.
//
// The package covers three stages, run in order:
//
//  1. Build: convert Individual/Family collections into nodes and links
//     (marriage edges, parent-child edges). Dangling references are
//     dropped silently and counted in Stats.
//  2. AssignGenerations: breadth-first traversal over parent-child links
//     from root individuals, keeping the deepest generation seen per
//     node, with a birth-year fallback for disconnected individuals and
//     final normalization so the minimum generation is 0.
//  3. ComputeLayout: group nodes into generation rows, order rows with
//     spouses adjacent, assign coordinates, then iteratively re-center
//     parents over their children and resolve horizontal overlap.
//
// The resulting graph (nodes with x, y, generation; links with type,
// source, target) is plain data for rendering collaborators. Each call
// to Build produces fresh state; nothing is shared between builds, so
// concurrent pipelines over independent documents are safe.
package pedigree
