package box2d

import (
	"fmt"
	"io"
)

/// The body type.
/// static: zero mass, zero velocity, may be manually moved
/// kinematic: zero mass, non-zero velocity set by user, moved by solver
/// dynamic: positive mass, non-zero velocity determined by forces, moved by solver

var B2BodyType = struct {
	B2_staticBody    uint8
	B2_kinematicBody uint8
	B2_dynamicBody   uint8
}{
	B2_staticBody:    0,
	B2_kinematicBody: 1,
	B2_dynamicBody:   2,
}

/// A body definition holds all the data needed to construct a rigid body,
/// including the ordered fixture definitions added through the builder
/// methods (Circle, Box, Polygon, Chain, Loop, Edge).
/// A body definition is a build time value: it is filled by one goroutine and
/// then handed to whatever creates the runtime body.
type B2BodyDef struct {

	/// The body type: static, kinematic, or dynamic.
	/// Note: if a dynamic body would have zero mass, the mass is set to one.
	Type uint8

	/// The world position of the body. Avoid creating bodies at the origin
	/// since this can lead to many overlapping shapes.
	Position B2Vec2

	/// The world angle of the body in radians.
	Angle float64

	/// The linear velocity of the body's origin in world co-ordinates.
	LinearVelocity B2Vec2

	/// The angular velocity of the body.
	AngularVelocity float64

	/// Linear damping is use to reduce the linear velocity. The damping parameter
	/// can be larger than 1.0 but the damping effect becomes sensitive to the
	/// time step when the damping parameter is large.
	/// Units are 1/time
	LinearDamping float64

	/// Angular damping is use to reduce the angular velocity. The damping parameter
	/// can be larger than 1.0 but the damping effect becomes sensitive to the
	/// time step when the damping parameter is large.
	/// Units are 1/time
	AngularDamping float64

	/// Set this flag to false if this body should never fall asleep. Note that
	/// this increases CPU usage.
	AllowSleep bool

	/// Is this body initially awake or sleeping?
	Awake bool

	/// Should this body be prevented from rotating? Useful for characters.
	FixedRotation bool

	/// Is this a fast moving body that should be prevented from tunneling through
	/// other moving bodies?
	Bullet bool

	/// Does this body start out active?
	Active bool

	/// Use this to store application specific body data.
	UserData interface{}

	/// Scale the gravity applied to this body.
	GravityScale float64

	/// Fixture definitions in creation order. Only the builder methods append
	/// to it.
	Fixtures []*B2FixtureDef
}

/// This constructor sets the body definition default values.
func MakeB2BodyDef() B2BodyDef {
	return B2BodyDef{
		UserData:        nil,
		Position:        MakeB2Vec2(0, 0),
		Angle:           0.0,
		LinearVelocity:  MakeB2Vec2(0, 0),
		AngularVelocity: 0.0,
		LinearDamping:   0.0,
		AngularDamping:  0.0,
		AllowSleep:      true,
		Awake:           true,
		FixedRotation:   false,
		Bullet:          false,
		Type:            B2BodyType.B2_staticBody,
		Active:          true,
		GravityScale:    1.0,
	}
}

func NewB2BodyDef() *B2BodyDef {
	res := MakeB2BodyDef()
	return &res
}

/// The body origin transform described by Position and Angle.
func (def B2BodyDef) GetTransform() B2Transform {
	return MakeB2TransformFromPositionAndAngle(def.Position, def.Angle)
}

/// Mass data the runtime body will end up with once all fixtures are
/// attached. Center is in body local coordinates and I is about the center
/// of mass.
func (def B2BodyDef) ComputeMassData() B2MassData {
	massData := MakeMassData()

	// Static and kinematic bodies have zero mass.
	if def.Type != B2BodyType.B2_dynamicBody {
		return massData
	}

	// Accumulate mass over all fixtures.
	localCenter := MakeB2Vec2(0, 0)
	for _, fd := range def.Fixtures {
		if fd.Density == 0.0 || fd.Shape == nil {
			continue
		}

		fixtureMass := fd.GetMassData()
		massData.Mass += fixtureMass.Mass
		localCenter.OperatorPlusInplace(B2Vec2MulScalar(fixtureMass.Mass, fixtureMass.Center))
		massData.I += fixtureMass.I
	}

	if massData.Mass > 0.0 {
		localCenter.OperatorScalarMulInplace(1.0 / massData.Mass)
	} else {
		// Force all dynamic bodies to have a positive mass.
		massData.Mass = 1.0
	}

	if massData.I > 0.0 && !def.FixedRotation {
		// Center the inertia about the center of mass.
		massData.I -= massData.Mass * B2Vec2Dot(localCenter, localCenter)
	} else {
		massData.I = 0.0
	}

	massData.Center = localCenter
	return massData
}

/// World space bounding box of every fixture child. ok is false when no
/// fixture has any geometry yet.
func (def B2BodyDef) ComputeAABB() (aabb B2AABB, ok bool) {
	xf := def.GetTransform()

	for _, fd := range def.Fixtures {
		if fd.Shape == nil {
			continue
		}
		if poly, isPoly := fd.Shape.(*B2PolygonShape); isPoly && poly.M_count == 0 {
			continue
		}

		for child := 0; child < fd.Shape.GetChildCount(); child++ {
			childAABB := MakeB2AABB()
			fd.Shape.ComputeAABB(&childAABB, xf, child)
			if !ok {
				aabb = childAABB
				ok = true
				continue
			}
			aabb.CombineInPlace(childAABB)
		}
	}

	return aabb, ok
}

/// Test a world point against every fixture shape.
func (def B2BodyDef) TestPoint(p B2Vec2) bool {
	xf := def.GetTransform()
	for _, fd := range def.Fixtures {
		if fd.Shape != nil && fd.Shape.TestPoint(xf, p) {
			return true
		}
	}
	return false
}

/// Dump writes Go source that rebuilds this body definition with the
/// builder methods.
func (def B2BodyDef) Dump(w io.Writer) {
	fmt.Fprint(w, "{\n")
	fmt.Fprint(w, "  bd := box2d.MakeB2BodyDef()\n")
	fmt.Fprintf(w, "  bd.Type = %d\n", def.Type)
	fmt.Fprintf(w, "  bd.Position.Set(%v, %v)\n", def.Position.X, def.Position.Y)
	fmt.Fprintf(w, "  bd.Angle = %v\n", def.Angle)
	fmt.Fprintf(w, "  bd.LinearVelocity.Set(%v, %v)\n", def.LinearVelocity.X, def.LinearVelocity.Y)
	fmt.Fprintf(w, "  bd.AngularVelocity = %v\n", def.AngularVelocity)
	fmt.Fprintf(w, "  bd.LinearDamping = %v\n", def.LinearDamping)
	fmt.Fprintf(w, "  bd.AngularDamping = %v\n", def.AngularDamping)
	fmt.Fprintf(w, "  bd.AllowSleep = %v\n", def.AllowSleep)
	fmt.Fprintf(w, "  bd.Awake = %v\n", def.Awake)
	fmt.Fprintf(w, "  bd.FixedRotation = %v\n", def.FixedRotation)
	fmt.Fprintf(w, "  bd.Bullet = %v\n", def.Bullet)
	fmt.Fprintf(w, "  bd.Active = %v\n", def.Active)
	fmt.Fprintf(w, "  bd.GravityScale = %v\n", def.GravityScale)
	for _, fd := range def.Fixtures {
		fd.Dump(w)
	}
	fmt.Fprint(w, "}\n")
}
