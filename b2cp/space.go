// Package b2cp adds body definitions assembled with the fixture builder to a
// chipmunk space.
package b2cp

import (
	"errors"
	"fmt"
	"math"

	b2 "github.com/ByteArena/box2d-builder"
	"github.com/jakecoffman/cp"
)

var (
	ErrUnsupportedShape = errors.New("b2cp: unsupported shape")
	ErrEmptyPolygon     = errors.New("b2cp: polygon has no vertices")
)

func vector(v b2.B2Vec2) cp.Vector {
	return cp.Vector{X: v.X, Y: v.Y}
}

// Filter maps box2d filtering onto a chipmunk shape filter. Negative box2d
// groups become chipmunk groups; chipmunk has no "always collide" group, so
// positive groups fall back to the category and mask bits.
func Filter(f b2.B2Filter) cp.ShapeFilter {
	group := uint(cp.NO_GROUP)
	if f.GroupIndex < 0 {
		group = uint(-int(f.GroupIndex))
	}
	return cp.NewShapeFilter(group, uint(f.CategoryBits), uint(f.MaskBits))
}

// shapeMass is the mass a fixture adds to a dynamic body.
func shapeMass(fd *b2.B2FixtureDef) float64 {
	if fd.Density == 0.0 || fd.Shape == nil {
		return 0
	}
	return fd.GetMassData().Mass
}

func newBody(def *b2.B2BodyDef) *cp.Body {
	var body *cp.Body

	switch def.Type {
	case b2.B2BodyType.B2_staticBody:
		body = cp.NewStaticBody()
	case b2.B2BodyType.B2_kinematicBody:
		body = cp.NewKinematicBody()
	default:
		total := 0.0
		for _, fd := range def.Fixtures {
			total += shapeMass(fd)
		}
		if total > 0 {
			// Mass, moment and center of gravity accumulate from the shapes.
			body = cp.NewBody(0, 0)
		} else {
			// Same fallback as a box2d body without mass.
			massData := def.ComputeMassData()
			body = cp.NewBody(massData.Mass, math.Inf(1))
		}
	}

	body.SetPosition(vector(def.Position))
	body.SetAngle(def.Angle)
	if def.Type != b2.B2BodyType.B2_staticBody {
		body.SetVelocityVector(vector(def.LinearVelocity))
		body.SetAngularVelocity(def.AngularVelocity)
	}
	body.UserData = def.UserData

	return body
}

// Shapes builds the chipmunk shapes of one fixture definition. Chains become
// one segment per child edge. On a dynamic body the fixture mass is set on
// the shape, so chipmunk derives the body mass from its shapes.
func Shapes(body *cp.Body, fd *b2.B2FixtureDef) ([]*cp.Shape, error) {
	var shapes []*cp.Shape

	switch s := fd.Shape.(type) {
	case *b2.B2CircleShape:
		shapes = append(shapes, cp.NewCircle(body, s.M_radius, vector(s.M_p)))

	case *b2.B2PolygonShape:
		if s.M_count == 0 {
			return nil, ErrEmptyPolygon
		}
		verts := make([]cp.Vector, s.M_count)
		for i := range verts {
			verts[i] = vector(s.M_vertices[i])
		}
		shapes = append(shapes, cp.NewPolyShapeRaw(body, len(verts), verts, 0))

	case *b2.B2ChainShape:
		edge := b2.MakeB2EdgeShape()
		for i := 0; i < s.GetChildCount(); i++ {
			s.GetChildEdge(&edge, i)
			shapes = append(shapes, segment(body, &edge))
		}

	case *b2.B2EdgeShape:
		shapes = append(shapes, segment(body, s))

	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedShape, fd.Shape)
	}

	for _, shape := range shapes {
		shape.SetFriction(fd.Friction)
		shape.SetElasticity(fd.Restitution)
		shape.SetSensor(fd.IsSensor)
		shape.SetFilter(Filter(fd.Filter))
		shape.UserData = fd.UserData
	}

	if body.GetType() == cp.BODY_DYNAMIC && len(shapes) == 1 {
		if mass := shapeMass(fd); mass > 0 {
			shapes[0].SetMass(mass)
		}
	}

	return shapes, nil
}

func segment(body *cp.Body, edge *b2.B2EdgeShape) *cp.Shape {
	return cp.NewSegment(body, vector(edge.M_vertex1), vector(edge.M_vertex2), 0)
}

// AddBody adds the body and the shapes of every fixture definition, in
// definition order, to space. A dynamic body gets its mass, moment and center
// of gravity from the shapes, which matches B2BodyDef.ComputeMassData. Fixed
// rotation bodies get an infinite moment. Nothing is added when a fixture
// cannot be converted.
func AddBody(space *cp.Space, def *b2.B2BodyDef) (*cp.Body, []*cp.Shape, error) {
	body := newBody(def)

	var shapes []*cp.Shape
	for i, fd := range def.Fixtures {
		fixtureShapes, err := Shapes(body, fd)
		if err != nil {
			return nil, nil, fmt.Errorf("fixture %d: %w", i, err)
		}
		shapes = append(shapes, fixtureShapes...)
	}

	space.AddBody(body)
	for _, shape := range shapes {
		space.AddShape(shape)
	}
	if def.Type == b2.B2BodyType.B2_dynamicBody && def.FixedRotation {
		body.SetMoment(math.Inf(1))
	}

	return body, shapes, nil
}
