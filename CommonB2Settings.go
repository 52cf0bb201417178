package box2d

import (
	"errors"
	"math"
)

func B2Assert(a bool) {
	if !a {
		panic("B2Assert")
	}
}

const B2_maxFloat = math.MaxFloat64
const B2_epsilon = math.SmallestNonzeroFloat64
const B2_pi = math.Pi

/// @file
/// Global tuning constants based on meters-kilograms-seconds (MKS) units.
///

/// The maximum number of vertices on a convex polygon.
const B2_maxPolygonVertices = 8

/// A small length used as a collision and constraint tolerance. Usually it is
/// chosen to be numerically significant, but visually insignificant.
const B2_linearSlop = 0.005

/// The radius of the polygon/edge shape skin. This should not be modified. Making
/// this smaller means polygons will have an insufficient buffer for continuous collision.
/// Making it larger may create artifacts for vertex collision.
const B2_polygonRadius = (2.0 * B2_linearSlop)

// Geometry construction errors. Builders wrap these with the offending shape
// and count, so match them with errors.Is.
var (
	ErrTooFewVertices     = errors.New("box2d: too few vertices")
	ErrTooManyVertices    = errors.New("box2d: too many vertices")
	ErrDegeneratePolygon  = errors.New("box2d: degenerate polygon")
	ErrVerticesTooClose   = errors.New("box2d: vertices too close together")
	ErrOddCoordinateCount = errors.New("box2d: odd number of coordinates")
)
