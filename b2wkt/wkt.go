// Package b2wkt exports fixture geometry as simple features geometries, mostly
// for printing them as WKT.
package b2wkt

import (
	"fmt"
	"math"

	b2 "github.com/ByteArena/box2d-builder"
	"github.com/peterstace/simplefeatures/geom"
)

const DefaultCircleSegments = 16

func appendXY(coords []float64, v b2.B2Vec2) []float64 {
	return append(coords, v.X, v.Y)
}

func lineString(coords []float64) (geom.Geometry, error) {
	ls, err := geom.NewLineString(geom.NewSequence(coords, geom.DimXY))
	if err != nil {
		return geom.Geometry{}, fmt.Errorf("b2wkt: line string: %w", err)
	}
	return ls.AsGeometry(), nil
}

func polygon(coords []float64) (geom.Geometry, error) {
	ring, err := geom.NewLineString(geom.NewSequence(coords, geom.DimXY))
	if err != nil {
		return geom.Geometry{}, fmt.Errorf("b2wkt: polygon ring: %w", err)
	}
	poly, err := geom.NewPolygon([]geom.LineString{ring})
	if err != nil {
		return geom.Geometry{}, fmt.Errorf("b2wkt: polygon: %w", err)
	}
	return poly.AsGeometry(), nil
}

// FixtureGeometry returns the shape of fd transformed by xf. A circle becomes
// a polygon with segments sides (DefaultCircleSegments when fewer than 3),
// a polygon a polygon, a chain a line string that is closed for loops and an
// edge a two point line string. Empty polygons give an empty geometry.
func FixtureGeometry(fd *b2.B2FixtureDef, xf b2.B2Transform, segments int) (geom.Geometry, error) {
	if segments < 3 {
		segments = DefaultCircleSegments
	}

	switch s := fd.Shape.(type) {
	case *b2.B2CircleShape:
		center := b2.B2TransformVec2Mul(xf, s.M_p)
		coords := make([]float64, 0, (segments+1)*2)
		for i := 0; i < segments; i++ {
			angle := 2.0 * b2.B2_pi * float64(i) / float64(segments)
			coords = appendXY(coords, b2.MakeB2Vec2(
				center.X+s.M_radius*math.Cos(angle),
				center.Y+s.M_radius*math.Sin(angle),
			))
		}
		coords = append(coords, coords[0], coords[1])
		return polygon(coords)

	case *b2.B2PolygonShape:
		if s.M_count == 0 {
			return geom.Geometry{}, nil
		}
		coords := make([]float64, 0, (s.M_count+1)*2)
		for i := 0; i < s.M_count; i++ {
			coords = appendXY(coords, b2.B2TransformVec2Mul(xf, s.M_vertices[i]))
		}
		coords = appendXY(coords, b2.B2TransformVec2Mul(xf, s.M_vertices[0]))
		return polygon(coords)

	case *b2.B2ChainShape:
		coords := make([]float64, 0, s.M_count*2)
		for _, v := range s.M_vertices {
			coords = appendXY(coords, b2.B2TransformVec2Mul(xf, v))
		}
		return lineString(coords)

	case *b2.B2EdgeShape:
		coords := make([]float64, 0, 4)
		coords = appendXY(coords, b2.B2TransformVec2Mul(xf, s.M_vertex1))
		coords = appendXY(coords, b2.B2TransformVec2Mul(xf, s.M_vertex2))
		return lineString(coords)
	}

	return geom.Geometry{}, nil
}

// BodyGeometry collects the world space geometry of every fixture in order.
func BodyGeometry(def *b2.B2BodyDef, segments int) (geom.GeometryCollection, error) {
	xf := def.GetTransform()

	geoms := make([]geom.Geometry, 0, len(def.Fixtures))
	for i, fd := range def.Fixtures {
		g, err := FixtureGeometry(fd, xf, segments)
		if err != nil {
			return geom.GeometryCollection{}, fmt.Errorf("fixture %d: %w", i, err)
		}
		geoms = append(geoms, g)
	}
	return geom.NewGeometryCollection(geoms), nil
}
