// Package: wgraph/builder
//
// constants.go - method tokens, fixed IDs and size minima.

package builder

// Method tokens used as error context.
const (
	MethodCycle        = "Cycle"
	MethodPath         = "Path"
	MethodStar         = "Star"
	MethodWheel        = "Wheel"
	MethodComplete     = "Complete"
	MethodGrid         = "Grid"
	MethodRandomSparse = "RandomSparse"
	MethodTerrain      = "Terrain"
)

// CenterVertexID is the hub name used by Star and Wheel.
const CenterVertexID = "Center"

// Size minima per constructor.
const (
	MinCycleNodes        = 3
	MinPathNodes         = 2
	MinStarNodes         = 2
	MinWheelNodes        = 3
	MinCompleteNodes     = 1
	MinGridDim           = 1
	MinRandomSparseNodes = 1
)

// Probability bounds for RandomSparse.
const (
	MinProbability = 0.0
	MaxProbability = 1.0
)
