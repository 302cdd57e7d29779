// Package lvmaze generates rectangular grid mazes with one exit and a
// distance field that points every cell toward it.
//
// 🚀 What is lvmaze?
//
//	A small, deterministic maze factory that brings together:
//		• Floorplan: W×H cells with four walls each, rooms and a single exit
//		• Builders: DFS, Prim, Kruskal and Boruvka spanning trees
//		• Distance field: BFS from the exit, start cell and "next step" hints
//		• Factory: one asynchronous order at a time, progress and cancellation
//		• Cache: in-memory or Redis, with a distributed generation lock
//
// ✨ Why choose lvmaze?
//
//   - Same order, same maze: every random choice flows from the order's seed
//   - Every maze is verified before delivery (one exit, connected, no sealed cells)
//   - Perfect mazes are spanning trees, imperfect ones add rooms and loops
//
// Packages:
//
//	floorplan/  — grid of wallboards, rooms, exit, Verify and snapshots
//	builder/    — spanning-tree builders and the Generate pipeline
//	distance/   — distance field from the exit
//	factory/    — orders, skill tables and the asynchronous Factory
//	cache/      — floorplan cache (memory, Redis) and generation locks
//	config/     — MAZE_* settings from .env files and the environment
//	cmd/mazegen — command-line front end
//
// Quick ASCII example (3×2, exit on the west side of the top-left cell):
//
//	+--+--+--+
//	 E       |
//	+--+--+  +
//	|        |
//	+--+--+--+
//
//	go run github.com/katalvlaran/lvmaze/cmd/mazegen -level 3 -method prim
package lvmaze
