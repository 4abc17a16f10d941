// Package builder assembles core.Graph instances from composable Constructor
// closures: the random Bernoulli generator used by the demo, plus small
// deterministic topologies (cycles, paths, wheels, grids, ...) that make good
// fixtures for the cycle package.
//
// Components:
//
//   - Constructor: func(*core.Draft, builderConfig) error. Each constructor
//     appends its own vertices after those already staged, so several can be
//     combined into one disconnected Graph by a single BuildGraph call.
//   - BuilderOption: WithSeed / WithRand choose the random source,
//     WithMargin controls how far generated positions stay from the border.
//   - NewRandom: the one-call "construct(vertexCount, connectionDensity)" entry
//     point; seeds from the clock unless the caller supplies a source.
//
// Guarantees:
//
//   - Every produced Graph is symmetric and loop-free (core.Draft enforces it).
//   - Same options, same seed and same constructor order ⇒ identical Graph.
//   - Invalid parameters surface as sentinel errors (ErrTooFewVertices,
//     ErrInvalidProbability, ErrNeedRandSource); constructors never clamp.
//   - Option constructors panic on meaningless input (nil RNG, margin ∉ [0,0.5)).
package builder
