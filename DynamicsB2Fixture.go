package box2d

import (
	"fmt"
	"io"
)

/// This holds contact filtering data.
type B2Filter struct {
	/// The collision category bits. Normally you would just set one bit.
	CategoryBits uint16

	/// The collision mask bits. This states the categories that this
	/// shape would accept for collision.
	MaskBits uint16

	/// Collision groups allow a certain group of objects to never collide (negative)
	/// or always collide (positive). Zero means no collision group. Non-zero group
	/// filtering always wins against the mask bits.
	GroupIndex int16
}

func MakeB2Filter() B2Filter {
	return B2Filter{
		CategoryBits: 0x0001,
		MaskBits:     0xFFFF,
		GroupIndex:   0,
	}
}

/// A fixture definition pairs one shape with the non-geometric fixture data.
/// Fixture definitions are created by the builder methods of B2BodyDef and are
/// owned by that body definition.
type B2FixtureDef struct {

	/// The shape, this must be set.
	Shape B2ShapeInterface

	/// Use this to store application specific fixture data.
	UserData interface{}

	/// The friction coefficient, usually in the range [0,1].
	Friction float64

	/// The restitution (elasticity) usually in the range [0,1].
	Restitution float64

	/// The density, usually in kg/m^2.
	Density float64

	/// A sensor shape collects contact information but never generates a collision
	/// response.
	IsSensor bool

	/// Contact filtering data.
	Filter B2Filter
}

/// The constructor sets the default fixture definition values.
func MakeB2FixtureDef() B2FixtureDef {
	return B2FixtureDef{
		Shape:       nil,
		UserData:    nil,
		Friction:    0.2,
		Restitution: 0.0,
		Density:     0.0,
		IsSensor:    false,
		Filter:      MakeB2Filter(),
	}
}

func NewB2FixtureDef() *B2FixtureDef {
	res := MakeB2FixtureDef()
	return &res
}

func (def B2FixtureDef) GetType() uint8 {
	return def.Shape.GetType()
}

/// Mass data of the shape using this definition's density.
func (def B2FixtureDef) GetMassData() B2MassData {
	massData := MakeMassData()
	if def.Shape != nil {
		def.Shape.ComputeMass(&massData, def.Density)
	}
	return massData
}

func (def B2FixtureDef) Dump(w io.Writer) {
	init := "func(fd *box2d.B2FixtureDef, shape *box2d.%s) {\n"

	switch s := def.Shape.(type) {
	case *B2CircleShape:
		fmt.Fprintf(w, "  bd.Circle(box2d.B2CircleParams{Radius: %v, Position: box2d.MakeB2Vec2(%v, %v)}, ", s.M_radius, s.M_p.X, s.M_p.Y)
		fmt.Fprintf(w, init, "B2CircleShape")

	case *B2PolygonShape:
		if s.M_count == 0 {
			fmt.Fprint(w, "  bd.Polygon(nil, ")
		} else {
			fmt.Fprintf(w, "  bd.PolygonFromPoints(%s, ", dumpVertices(s.M_vertices[:s.M_count]))
		}
		fmt.Fprintf(w, init, "B2PolygonShape")

	case *B2ChainShape:
		if s.IsLoop() {
			fmt.Fprintf(w, "  bd.Loop(%s, ", dumpVertices(s.M_vertices[:s.M_count-1]))
		} else {
			fmt.Fprintf(w, "  bd.Chain(%s, ", dumpVertices(s.M_vertices))
		}
		fmt.Fprintf(w, init, "B2ChainShape")

	case *B2EdgeShape:
		fmt.Fprintf(w, "  bd.Edge(box2d.MakeB2Vec2(%v, %v), box2d.MakeB2Vec2(%v, %v), ", s.M_vertex1.X, s.M_vertex1.Y, s.M_vertex2.X, s.M_vertex2.Y)
		fmt.Fprintf(w, init, "B2EdgeShape")

	default:
		return
	}

	fmt.Fprintf(w, "    fd.Friction = %v\n", def.Friction)
	fmt.Fprintf(w, "    fd.Restitution = %v\n", def.Restitution)
	fmt.Fprintf(w, "    fd.Density = %v\n", def.Density)
	fmt.Fprintf(w, "    fd.IsSensor = %v\n", def.IsSensor)
	fmt.Fprintf(w, "    fd.Filter.CategoryBits = %d\n", def.Filter.CategoryBits)
	fmt.Fprintf(w, "    fd.Filter.MaskBits = %d\n", def.Filter.MaskBits)
	fmt.Fprintf(w, "    fd.Filter.GroupIndex = %d\n", def.Filter.GroupIndex)
	fmt.Fprint(w, "  })\n")
}

func dumpVertices(vs []B2Vec2) string {
	out := "[]box2d.B2Vec2{"
	for i, v := range vs {
		if i > 0 {
			out += ", "
		}
		out += fmt.Sprintf("{X: %v, Y: %v}", v.X, v.Y)
	}
	return out + "}"
}
