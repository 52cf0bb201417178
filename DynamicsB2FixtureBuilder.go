package box2d

import (
	"fmt"
	"math"
)

///////////////////////////////////////////////////////////////////////////////
// Fixture builder
//
// Each builder method resolves its geometric defaults, builds the shape, hands
// the new fixture definition and the shape to the caller's init function and
// appends the definition to B2BodyDef.Fixtures:
//
//	bd := box2d.MakeB2BodyDef()
//	bd.Box(box2d.B2BoxParams{Width: 2, Height: 4}, func(fd *box2d.B2FixtureDef, shape *box2d.B2PolygonShape) {
//		fd.Density = 1.0
//	})
//
// Methods whose geometry can be invalid return an error; nothing is appended
// and init is not called in that case.
///////////////////////////////////////////////////////////////////////////////

/// Configures a fixture definition right after its shape was built. A nil
/// init keeps the MakeB2FixtureDef defaults.
type B2FixtureInit[S B2ShapeInterface] func(fixtureDef *B2FixtureDef, shape S)

const (
	B2_defaultCircleRadius = 1.0
	B2_defaultBoxWidth     = 1.0
	B2_defaultBoxHeight    = 1.0
)

/// Circle geometry. A zero Radius means B2_defaultCircleRadius.
type B2CircleParams struct {
	Radius float64

	/// Center of the circle in body local coordinates.
	Position B2Vec2
}

func MakeB2CircleParams() B2CircleParams {
	return B2CircleParams{
		Radius:   B2_defaultCircleRadius,
		Position: MakeB2Vec2(0, 0),
	}
}

/// Box geometry. Width and Height are full dimensions, not half extents; a
/// zero value means B2_defaultBoxWidth / B2_defaultBoxHeight. The sign of a
/// dimension is ignored.
type B2BoxParams struct {
	Width  float64
	Height float64

	/// Center of the box in body local coordinates.
	Position B2Vec2

	/// Rotation of the box around Position in radians.
	Angle float64
}

func MakeB2BoxParams() B2BoxParams {
	return B2BoxParams{
		Width:    B2_defaultBoxWidth,
		Height:   B2_defaultBoxHeight,
		Position: MakeB2Vec2(0, 0),
		Angle:    0.0,
	}
}

/// AddFixture wraps an already built shape into a new fixture definition,
/// runs init on it and appends it to def.Fixtures.
func AddFixture[S B2ShapeInterface](def *B2BodyDef, shape S, init B2FixtureInit[S]) *B2FixtureDef {
	fixtureDef := NewB2FixtureDef()
	fixtureDef.Shape = shape

	if init != nil {
		init(fixtureDef, shape)
	}

	def.Fixtures = append(def.Fixtures, fixtureDef)
	recordFixtureBuilt(shape.GetType())

	return fixtureDef
}

/// Adds a circle fixture.
func (def *B2BodyDef) Circle(params B2CircleParams, init B2FixtureInit[*B2CircleShape]) *B2FixtureDef {
	radius := params.Radius
	if radius == 0 {
		radius = B2_defaultCircleRadius
	}

	shape := NewB2CircleShape()
	shape.Set(radius, params.Position)

	return AddFixture(def, shape, init)
}

/// Adds a rectangle fixture of params.Width x params.Height centered at
/// params.Position and rotated by params.Angle.
func (def *B2BodyDef) Box(params B2BoxParams, init B2FixtureInit[*B2PolygonShape]) *B2FixtureDef {
	width, height := math.Abs(params.Width), math.Abs(params.Height)
	if width == 0 {
		width = B2_defaultBoxWidth
	}
	if height == 0 {
		height = B2_defaultBoxHeight
	}

	shape := NewB2PolygonShape()
	shape.SetAsBoxFromCenterAndAngle(width/2.0, height/2.0, params.Position, params.Angle)

	return AddFixture(def, shape, init)
}

/// Adds a polygon fixture from a flat x0, y0, x1, y1, ... list.
/// An empty list leaves the polygon without vertices; init is then expected
/// to call Set on the shape.
func (def *B2BodyDef) Polygon(coords []float64, init B2FixtureInit[*B2PolygonShape]) (*B2FixtureDef, error) {
	shape := NewB2PolygonShape()
	if len(coords) > 0 {
		if err := shape.SetFromCoords(coords); err != nil {
			return nil, fmt.Errorf("polygon fixture: %w", err)
		}
	}

	return AddFixture(def, shape, init), nil
}

/// Adds a polygon fixture. At least 3 points are required.
func (def *B2BodyDef) PolygonFromPoints(points []B2Vec2, init B2FixtureInit[*B2PolygonShape]) (*B2FixtureDef, error) {
	shape := NewB2PolygonShape()
	if err := shape.Set(points); err != nil {
		return nil, fmt.Errorf("polygon fixture: %w", err)
	}

	return AddFixture(def, shape, init), nil
}

/// Adds an open chain fixture. At least 2 points are required.
func (def *B2BodyDef) Chain(points []B2Vec2, init B2FixtureInit[*B2ChainShape]) (*B2FixtureDef, error) {
	shape := NewB2ChainShape()
	if err := shape.CreateChain(points); err != nil {
		return nil, fmt.Errorf("chain fixture: %w", err)
	}

	return AddFixture(def, shape, init), nil
}

/// Adds an open chain fixture from a flat x0, y0, x1, y1, ... list.
func (def *B2BodyDef) ChainFromCoords(coords []float64, init B2FixtureInit[*B2ChainShape]) (*B2FixtureDef, error) {
	shape := NewB2ChainShape()
	if err := shape.CreateChainFromCoords(coords); err != nil {
		return nil, fmt.Errorf("chain fixture: %w", err)
	}

	return AddFixture(def, shape, init), nil
}

/// Adds a closed chain fixture: the last point connects back to the first.
/// At least 2 points are required.
func (def *B2BodyDef) Loop(points []B2Vec2, init B2FixtureInit[*B2ChainShape]) (*B2FixtureDef, error) {
	shape := NewB2ChainShape()
	if err := shape.CreateLoop(points); err != nil {
		return nil, fmt.Errorf("loop fixture: %w", err)
	}

	return AddFixture(def, shape, init), nil
}

/// Adds a closed chain fixture from a flat x0, y0, x1, y1, ... list.
func (def *B2BodyDef) LoopFromCoords(coords []float64, init B2FixtureInit[*B2ChainShape]) (*B2FixtureDef, error) {
	shape := NewB2ChainShape()
	if err := shape.CreateLoopFromCoords(coords); err != nil {
		return nil, fmt.Errorf("loop fixture: %w", err)
	}

	return AddFixture(def, shape, init), nil
}

/// Adds a line segment fixture from one point to the other.
func (def *B2BodyDef) Edge(from, to B2Vec2, init B2FixtureInit[*B2EdgeShape]) *B2FixtureDef {
	shape := NewB2EdgeShape()
	shape.Set(from, to)

	return AddFixture(def, shape, init)
}
