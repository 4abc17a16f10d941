// Package builder defines shared constants used by graph builders, ensuring
// consistent defaults and validation across all topology constructors.
package builder

//-----------------------------------------------------------------------------
// Builder Method Name Constants
//   used to prefix errors with the constructor name for context.
//-----------------------------------------------------------------------------

const (
	MethodCycle             = "Cycle"
	MethodPath              = "Path"
	MethodStar              = "Star"
	MethodWheel             = "Wheel"
	MethodComplete          = "Complete"
	MethodCompleteBipartite = "CompleteBipartite"
	MethodGrid              = "Grid"
	MethodEmpty             = "Empty"
	MethodRandomSparse      = "RandomSparse"
)

//-----------------------------------------------------------------------------
// Minimum Node Counts
//-----------------------------------------------------------------------------

// MinCycleNodes is the smallest ring without loops or multi-edges.
const MinCycleNodes = 3

// MinPathNodes is the smallest path with at least one edge.
const MinPathNodes = 2

// MinStarNodes is one center plus one leaf.
const MinStarNodes = 2

// MinWheelNodes is a 3-ring plus the hub.
const MinWheelNodes = 4

// MinCompleteNodes allows the trivial K_1.
const MinCompleteNodes = 1

// MinPartition is the smallest side of a complete bipartite graph.
const MinPartition = 1

// MinGridDim is the smallest grid dimension; a 1×1 grid has no edges.
const MinGridDim = 1

// MinRandomNodes allows the empty graph: zero vertices is a valid request.
const MinRandomNodes = 0

//-----------------------------------------------------------------------------
// Probability Bounds and Layout Defaults
//-----------------------------------------------------------------------------

// MinProbability and MaxProbability bound the connection density, inclusive.
const (
	MinProbability = 0.0
	MaxProbability = 1.0
)

// DefaultMargin keeps generated positions inside [0.1, 0.9]².
const DefaultMargin = 0.1

// maxMargin is exclusive: a margin of 0.5 collapses the placement box to a point.
const maxMargin = 0.5
