// Package spilldem removes depressions ("pits") from regular elevation
// grids and derives D8 flow directions — the hydrological conditioning
// step that precedes watershed delineation, flow accumulation and
// stream extraction.
//
// 🚀 What is spilldem?
//
//	A small, focused library that brings together:
//		• dem:   the elevation grid model — bounds/index arithmetic,
//		         nodata handling, the shared 8-direction table with
//		         physical traversal lengths
//		• flood: priority-flood depression filling (Wang & Liu, 2006)
//		         with an optional minimum-slope gradient and per-cell
//		         D8 flow-direction assignment
//
// ✨ Why choose spilldem?
//
//   - Exact semantics – each cell is committed once, at its true minimum
//     spill elevation; the filled surface is deterministic
//   - Flat-array core – no per-cell allocations, O(W·H) memory,
//     O(N log N) time
//   - Pure Go – no cgo, no hidden deps
//   - Raster-agnostic – consumes and produces plain float32/byte
//     buffers; file formats and georeferencing stay with the caller
//
// Quick ASCII example (a 3×3 pit):
//
//	10 10 10        10 10 10
//	10  1 10   →    10 10 10
//	10 10 10        10 10 10
//
//	the enclosed centre cell is raised to its spill level and assigned
//	a downstream direction toward the grid edge.
//
// Dive into the dem and flood package docs for the full contract, and
// examples/ for annotated walkthroughs.
//
//	go get github.com/katalvlaran/spilldem/flood
package spilldem
