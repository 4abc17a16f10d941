// Package girth finds short cycles in positioned undirected graphs.
//
// 🚀 What is girth?
//
//	A small, dependency-light library for interactive cycle exploration:
//		• core: immutable Graph over vertices placed in the unit square
//		• builder: random sparse graphs plus deterministic fixtures
//		• cycle: branch-labelled BFS cycle search, per vertex and graph-wide
//		• converters: YAML graph documents and cycle reports
//
// Quick start:
//
//	g, _ := builder.NewRandom(12, 0.2, builder.WithSeed(7))
//	f, _ := cycle.NewFinder(g)
//	fmt.Println(f.Overall())
//	v, c, _ := f.ThroughClosest(0.4, 0.6)
//
// Layout:
//
//	core/       — Point, Graph, Draft, nearest-vertex lookup
//	builder/    — Constructor, BuildGraph, NewRandom and fixture topologies
//	cycle/      — ShortestCycleThrough, ShortestCycle, Finder, Verify
//	converters/ — Encode/Decode graph documents, EncodeCycle reports
//	cmd/girth/  — command-line driver (generate, cycle)
//
// The cycle search reports the first cross-branch collision it meets. That
// is usually, but not always, the shortest cycle through the root; see the
// cycle package documentation.
package girth
