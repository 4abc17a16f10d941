// Package cycle finds short cycles in a core.Graph with a branch-labelled
// breadth-first search.
//
// What
//
//   - ShortestCycleThrough(g, v): a cycle that starts at v, found by running BFS
//     from v where every first-hop neighbor of v opens its own branch. The
//     search stops at the first cross-branch collision and rebuilds the cycle
//     from the provenance (parent) links of both colliding vertices.
//   - ShortestCycle(g): the shortest of all per-vertex results, first vertex
//     index winning ties.
//   - Finder: holds a Graph, computes ShortestCycle once on construction and
//     answers per-vertex and per-position queries on demand.
//   - Verify(g, c): checks that c is a simple closed walk of length ≥ 3 in g.
//
// Search rules
//
//	The frontier is a FIFO queue. Vertices discovered while expanding one
//	dequeued vertex are staged in a side buffer and appended only after that
//	vertex is fully expanded, so same-depth vertices are expanded before
//	deeper ones. For each neighbor i of the current vertex:
//	  1. collision:  i is waiting in the queue under another branch → stop;
//	  2. visited:    i already has a parent → skip;
//	  3. otherwise:  parent[i] = current, stage i under the current branch.
//	The "waiting in the queue" test uses a side index (vertex → branch)
//	holding exactly the enqueued-but-unprocessed entries.
//
// Known limitation
//
//	The first collision in FIFO order wins. That is a tie-break policy, not a
//	minimality proof: when two branches are joined by chords at different
//	depths, ShortestCycleThrough may return a longer cycle than the true
//	shortest one through v (see TestShortestCycleThrough_FirstCollisionWins).
//	ShortestCycle usually recovers the short cycle from another root, but it
//	inherits the same policy and is not guaranteed to be the girth.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - ShortestCycleThrough: O(V + E) time (each vertex enqueued at most once),
//     O(V) memory. Cheap enough to run on every pointer move.
//   - ShortestCycle:        O(V·(V + E)).
//
// Errors
//
//   - ErrGraphNil        nil graph.
//   - ErrRootNotFound    root index outside [0, g.Order()).
//   - ErrInvalidCycle    Verify rejected a vertex sequence.
package cycle
