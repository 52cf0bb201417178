package b2world

import (
	"testing"

	"github.com/ByteArena/box2d"
	b2 "github.com/ByteArena/box2d-builder"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newWorld() box2d.B2World {
	return box2d.MakeB2World(box2d.MakeB2Vec2(0, -10))
}

func fixtures(body *box2d.B2Body) []*box2d.B2Fixture {
	var out []*box2d.B2Fixture
	for f := body.GetFixtureList(); f != nil; f = f.GetNext() {
		out = append(out, f)
	}
	// The engine prepends new fixtures.
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}

func TestCreateBody(t *testing.T) {
	world := newWorld()

	def := b2.NewB2BodyDef()
	def.Type = b2.B2BodyType.B2_dynamicBody
	def.Position = b2.MakeB2Vec2(1, 2)
	def.UserData = "crate"
	def.Box(b2.B2BoxParams{Width: 2, Height: 2}, func(fd *b2.B2FixtureDef, _ *b2.B2PolygonShape) {
		fd.Density = 1
		fd.Friction = 0.6
		fd.UserData = "body"
	})
	def.Circle(b2.B2CircleParams{Radius: 0.5, Position: b2.MakeB2Vec2(0, 1)}, func(fd *b2.B2FixtureDef, _ *b2.B2CircleShape) {
		fd.IsSensor = true
		fd.Filter.GroupIndex = -2
	})

	body, err := CreateBody(&world, def)
	require.NoError(t, err)

	assert.Equal(t, 1, world.GetBodyCount())
	assert.Equal(t, "crate", body.GetUserData())
	assert.Equal(t, def.Type, body.GetType())
	assert.Equal(t, box2d.MakeB2Vec2(1, 2), body.GetPosition())
	assert.InDelta(t, 4.0, body.GetMass(), 1e-9)
	assert.InDelta(t, def.ComputeMassData().Mass, body.GetMass(), 1e-9)

	created := fixtures(body)
	require.Len(t, created, 2)

	assert.Equal(t, b2.B2Shape_Type.E_polygon, created[0].GetType())
	assert.Equal(t, 0.6, created[0].GetFriction())
	assert.Equal(t, "body", created[0].GetUserData())

	assert.Equal(t, b2.B2Shape_Type.E_circle, created[1].GetType())
	assert.True(t, created[1].IsSensor())
	assert.Equal(t, int16(-2), created[1].GetFilterData().GroupIndex)
	circle := created[1].GetShape().(*box2d.B2CircleShape)
	assert.Equal(t, 0.5, circle.M_radius)
	assert.Equal(t, box2d.MakeB2Vec2(0, 1), circle.M_p)
}

func TestConvertShape_Polygon(t *testing.T) {
	poly := b2.NewB2PolygonShape()
	require.NoError(t, poly.SetFromCoords([]float64{0, 0, 2, 0, 0, 2}))

	shape, err := ConvertShape(poly)
	require.NoError(t, err)

	converted := shape.(*box2d.B2PolygonShape)
	require.Equal(t, poly.M_count, converted.M_count)
	for i := 0; i < poly.M_count; i++ {
		assert.Equal(t, poly.M_vertices[i].X, converted.M_vertices[i].X)
		assert.Equal(t, poly.M_vertices[i].Y, converted.M_vertices[i].Y)
		assert.Equal(t, poly.M_normals[i].X, converted.M_normals[i].X)
		assert.Equal(t, poly.M_normals[i].Y, converted.M_normals[i].Y)
	}
	assert.Equal(t, poly.M_centroid.X, converted.M_centroid.X)
}

func TestConvertShape_Loop(t *testing.T) {
	chain := b2.NewB2ChainShape()
	require.NoError(t, chain.CreateLoopFromCoords([]float64{0, 0, 4, 0}))

	shape, err := ConvertShape(chain)
	require.NoError(t, err)

	converted := shape.(*box2d.B2ChainShape)
	assert.Equal(t, 2, converted.GetChildCount())
	assert.True(t, converted.M_hasPrevVertex)
	assert.True(t, converted.M_hasNextVertex)
	assert.Equal(t, box2d.MakeB2Vec2(4, 0), converted.M_prevVertex)
	assert.Equal(t, box2d.MakeB2Vec2(4, 0), converted.M_nextVertex)
	assert.Equal(t, box2d.MakeB2Vec2(0, 0), converted.M_vertices[2])
}

func TestConvertShape_OpenChainAndEdge(t *testing.T) {
	chain := b2.NewB2ChainShape()
	require.NoError(t, chain.CreateChainFromCoords([]float64{0, 0, 1, 0, 2, 1}))

	shape, err := ConvertShape(chain)
	require.NoError(t, err)
	converted := shape.(*box2d.B2ChainShape)
	assert.Equal(t, 2, converted.GetChildCount())
	assert.False(t, converted.M_hasPrevVertex)
	assert.False(t, converted.M_hasNextVertex)

	edge := b2.NewB2EdgeShape()
	edge.Set(b2.MakeB2Vec2(0, 0), b2.MakeB2Vec2(5, 0))
	shape, err = ConvertShape(edge)
	require.NoError(t, err)
	convertedEdge := shape.(*box2d.B2EdgeShape)
	assert.Equal(t, box2d.MakeB2Vec2(0, 0), convertedEdge.M_vertex1)
	assert.Equal(t, box2d.MakeB2Vec2(5, 0), convertedEdge.M_vertex2)
}

func TestCreateBody_ErrorLeavesWorldUntouched(t *testing.T) {
	world := newWorld()

	def := b2.NewB2BodyDef()
	def.Circle(b2.MakeB2CircleParams(), nil)
	_, err := def.Polygon(nil, nil)
	require.NoError(t, err)

	body, err := CreateBody(&world, def)
	require.ErrorIs(t, err, ErrEmptyPolygon)
	assert.Contains(t, err.Error(), "fixture 1")
	assert.Nil(t, body)
	assert.Equal(t, 0, world.GetBodyCount())
}

func TestCreateBodies_StopsAtFirstError(t *testing.T) {
	world := newWorld()

	ok := b2.NewB2BodyDef()
	ok.Edge(b2.MakeB2Vec2(-1, 0), b2.MakeB2Vec2(1, 0), nil)

	broken := b2.NewB2BodyDef()
	_, err := broken.Polygon(nil, nil)
	require.NoError(t, err)

	bodies, err := CreateBodies(&world, []*b2.B2BodyDef{ok, broken, ok})
	require.ErrorIs(t, err, ErrEmptyPolygon)
	assert.Contains(t, err.Error(), "body 1")
	assert.Len(t, bodies, 1)
	assert.Equal(t, 1, world.GetBodyCount())
}
