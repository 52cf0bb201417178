package box2d

import "fmt"

// b2VertexSource reads vertices either from a point list or from a flat
// x0, y0, x1, y1, ... coordinate list, so shapes can be built from coordinate
// arrays without first allocating a []B2Vec2.
type b2VertexSource struct {
	points []B2Vec2
	coords []float64
}

func b2PointSource(points []B2Vec2) b2VertexSource {
	return b2VertexSource{points: points}
}

func b2CoordSource(coords []float64) (b2VertexSource, error) {
	if len(coords)%2 != 0 {
		return b2VertexSource{}, fmt.Errorf("%w: got %d values", ErrOddCoordinateCount, len(coords))
	}
	return b2VertexSource{coords: coords}, nil
}

func (src b2VertexSource) Len() int {
	if src.coords != nil {
		return len(src.coords) / 2
	}
	return len(src.points)
}

func (src b2VertexSource) At(i int) B2Vec2 {
	if src.coords != nil {
		return MakeB2Vec2(src.coords[2*i], src.coords[2*i+1])
	}
	return src.points[i]
}

// B2CoordsToVec2 converts a flat x0, y0, x1, y1, ... list to points.
func B2CoordsToVec2(coords []float64) ([]B2Vec2, error) {
	src, err := b2CoordSource(coords)
	if err != nil {
		return nil, err
	}
	points := make([]B2Vec2, src.Len())
	for i := range points {
		points[i] = src.At(i)
	}
	return points, nil
}
