package box2d_test

import (
	"bytes"
	"testing"

	box2d "github.com/ByteArena/box2d-builder"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withDensity[S box2d.B2ShapeInterface](density float64) box2d.B2FixtureInit[S] {
	return func(fd *box2d.B2FixtureDef, _ S) {
		fd.Density = density
	}
}

func TestBodyDef_Defaults(t *testing.T) {
	bd := box2d.MakeB2BodyDef()

	assert.Equal(t, box2d.B2BodyType.B2_staticBody, bd.Type)
	assert.Nil(t, bd.UserData)
	assert.Empty(t, bd.Fixtures)
	assert.True(t, bd.Awake)
	assert.True(t, bd.Active)
	assert.Equal(t, 1.0, bd.GravityScale)
}

func TestBodyDef_MassStaticIsZero(t *testing.T) {
	bd := box2d.MakeB2BodyDef()
	bd.Box(box2d.MakeB2BoxParams(), withDensity[*box2d.B2PolygonShape](5))

	assert.Equal(t, box2d.MakeMassData(), bd.ComputeMassData())

	bd.Type = box2d.B2BodyType.B2_kinematicBody
	assert.Equal(t, box2d.MakeMassData(), bd.ComputeMassData())
}

func TestBodyDef_MassDynamic(t *testing.T) {
	bd := box2d.MakeB2BodyDef()
	bd.Type = box2d.B2BodyType.B2_dynamicBody

	bd.Box(box2d.B2BoxParams{Width: 2, Height: 2, Position: vec(-1, 0)}, withDensity[*box2d.B2PolygonShape](1))
	bd.Box(box2d.B2BoxParams{Width: 2, Height: 2, Position: vec(1, 0)}, withDensity[*box2d.B2PolygonShape](1))
	// Zero density fixtures do not contribute.
	bd.Circle(box2d.B2CircleParams{Radius: 10, Position: vec(50, 50)}, nil)
	bd.Edge(vec(0, 0), vec(100, 0), withDensity[*box2d.B2EdgeShape](3))

	massData := bd.ComputeMassData()
	assert.InDelta(t, 8.0, massData.Mass, 1e-12)
	assert.InDelta(t, 0.0, massData.Center.X, 1e-12)
	assert.InDelta(t, 0.0, massData.Center.Y, 1e-12)
	// A 4x2 rectangle of mass 8 about its center.
	assert.InDelta(t, 8.0*(16.0+4.0)/12.0, massData.I, 1e-9)

	bd.FixedRotation = true
	assert.Equal(t, 0.0, bd.ComputeMassData().I)
}

func TestBodyDef_MassDynamicDefaultsToOne(t *testing.T) {
	bd := box2d.MakeB2BodyDef()
	bd.Type = box2d.B2BodyType.B2_dynamicBody

	assert.Equal(t, 1.0, bd.ComputeMassData().Mass)

	_, err := bd.Polygon(nil, withDensity[*box2d.B2PolygonShape](4))
	require.NoError(t, err)

	massData := bd.ComputeMassData()
	assert.Equal(t, 1.0, massData.Mass)
	assert.Equal(t, 0.0, massData.I)
}

func TestBodyDef_AABB(t *testing.T) {
	bd := box2d.MakeB2BodyDef()

	_, ok := bd.ComputeAABB()
	assert.False(t, ok)

	_, err := bd.Polygon(nil, nil)
	require.NoError(t, err)
	_, ok = bd.ComputeAABB()
	assert.False(t, ok, "polygons without vertices have no bounds")

	bd.Position = vec(10, 0)
	bd.Circle(box2d.B2CircleParams{Radius: 1}, nil)
	_, err = bd.ChainFromCoords([]float64{-5, 0, 0, 3}, nil)
	require.NoError(t, err)

	aabb, ok := bd.ComputeAABB()
	require.True(t, ok)
	assert.Equal(t, vec(5, -1), aabb.LowerBound)
	assert.Equal(t, vec(11, 3), aabb.UpperBound)
	assert.Equal(t, vec(8, 1), aabb.GetCenter())
	assert.Equal(t, vec(3, 2), aabb.GetExtents())
}

func TestBodyDef_TestPoint(t *testing.T) {
	bd := box2d.MakeB2BodyDef()
	bd.Position = vec(0, 10)
	bd.Box(box2d.B2BoxParams{Width: 2, Height: 2}, nil)
	bd.Circle(box2d.B2CircleParams{Radius: 1, Position: vec(5, 0)}, nil)
	bd.Edge(vec(-10, 0), vec(10, 0), nil)

	assert.True(t, bd.TestPoint(vec(0.5, 10.5)))
	assert.True(t, bd.TestPoint(vec(5, 10.5)))
	assert.False(t, bd.TestPoint(vec(0, 0)))
	assert.False(t, bd.TestPoint(vec(-8, 10)))
}

func TestBodyDef_GetTransform(t *testing.T) {
	bd := box2d.MakeB2BodyDef()
	bd.Position = vec(1, 2)
	bd.Angle = 0.5 * box2d.B2_pi

	xf := bd.GetTransform()
	p := box2d.B2TransformVec2Mul(xf, vec(1, 0))
	assert.InDelta(t, 1.0, p.X, 1e-12)
	assert.InDelta(t, 3.0, p.Y, 1e-12)
}

func TestBodyDef_DumpListsFixturesInOrder(t *testing.T) {
	bd := box2d.MakeB2BodyDef()
	bd.Edge(vec(0, 0), vec(1, 0), nil)
	bd.Circle(box2d.MakeB2CircleParams(), nil)
	_, err := bd.Polygon(nil, nil)
	require.NoError(t, err)

	var buf bytes.Buffer
	bd.Dump(&buf)
	out := buf.String()

	edge := bytes.Index(buf.Bytes(), []byte("bd.Edge("))
	circle := bytes.Index(buf.Bytes(), []byte("bd.Circle("))
	polygon := bytes.Index(buf.Bytes(), []byte("bd.Polygon(nil, "))
	assert.True(t, edge >= 0 && edge < circle && circle < polygon, out)
}
