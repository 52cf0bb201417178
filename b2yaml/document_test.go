package b2yaml

import (
	"testing"

	b2 "github.com/ByteArena/box2d-builder"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const crate = `
name: crate
type: dynamic
position: [1, 2]
angle: 0.5
fixed_rotation: true
fixtures:
  - circle: {radius: 0.5, position: [0, 1]}
    density: 1
  - box: {width: 2, height: 1}
  - polygon: [0,0, 1,0, 1,1]
  - chain: [[0,0],[1,0],[1,1]]
  - loop: [0,0, 1,0, 1,1]
  - edge: {from: [0,0], to: [5,0]}
    friction: 0.4
    sensor: true
    filter: {category: 2, mask: 65535, group: -1}
`

func TestDecodeAndBuild(t *testing.T) {
	doc, err := Decode([]byte(crate))
	require.NoError(t, err)
	assert.Equal(t, "crate", doc.Name)
	require.Len(t, doc.Fixtures, 6)

	def, err := doc.Build()
	require.NoError(t, err)

	assert.Equal(t, b2.B2BodyType.B2_dynamicBody, def.Type)
	assert.Equal(t, b2.MakeB2Vec2(1, 2), def.Position)
	assert.Equal(t, 0.5, def.Angle)
	assert.True(t, def.FixedRotation)
	assert.Equal(t, "crate", def.UserData)
	require.Len(t, def.Fixtures, 6)

	circle := def.Fixtures[0].Shape.(*b2.B2CircleShape)
	assert.Equal(t, 0.5, circle.M_radius)
	assert.Equal(t, b2.MakeB2Vec2(0, 1), circle.M_p)
	assert.Equal(t, 1.0, def.Fixtures[0].Density)

	box := def.Fixtures[1].Shape.(*b2.B2PolygonShape)
	assert.Equal(t, b2.MakeB2Vec2(1, 0.5), box.GetVertex(2))
	assert.Equal(t, 0.2, def.Fixtures[1].Friction)
	assert.Equal(t, 0.0, def.Fixtures[1].Density)

	assert.Equal(t, 3, def.Fixtures[2].Shape.(*b2.B2PolygonShape).M_count)
	assert.False(t, def.Fixtures[3].Shape.(*b2.B2ChainShape).IsLoop())
	assert.True(t, def.Fixtures[4].Shape.(*b2.B2ChainShape).IsLoop())

	edge := def.Fixtures[5]
	assert.Equal(t, b2.MakeB2Vec2(5, 0), edge.Shape.(*b2.B2EdgeShape).M_vertex2)
	assert.Equal(t, 0.4, edge.Friction)
	assert.True(t, edge.IsSensor)
	assert.Equal(t, b2.B2Filter{CategoryBits: 2, MaskBits: 0xFFFF, GroupIndex: -1}, edge.Filter)
}

func TestBuild_Defaults(t *testing.T) {
	doc, err := Decode([]byte("fixtures:\n  - circle: {}\n  - box: {}\n"))
	require.NoError(t, err)

	def, err := doc.Build()
	require.NoError(t, err)

	assert.Equal(t, b2.B2BodyType.B2_staticBody, def.Type)
	assert.Nil(t, def.UserData)
	assert.Equal(t, 1.0, def.Fixtures[0].Shape.GetRadius())
	assert.Equal(t, b2.MakeB2Filter(), def.Fixtures[0].Filter)
	assert.Equal(t, b2.MakeB2Vec2(0.5, 0.5), def.Fixtures[1].Shape.(*b2.B2PolygonShape).GetVertex(2))
}

func TestBuild_PartialFilterKeepsDefaults(t *testing.T) {
	doc, err := Decode([]byte("fixtures:\n  - edge: {from: [0, 0], to: [1, 0]}\n    filter: {group: 4}\n"))
	require.NoError(t, err)

	def, err := doc.Build()
	require.NoError(t, err)
	assert.Equal(t, b2.B2Filter{CategoryBits: 1, MaskBits: 0xFFFF, GroupIndex: 4}, def.Fixtures[0].Filter)
}

func TestBuild_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		err  error
		msg  string
	}{
		{"unknown type", "type: floating\n", ErrUnknownBodyType, "floating"},
		{"bad position", "position: [1, 2, 3]\n", ErrBadVector, "position"},
		{"no shape", "fixtures:\n  - density: 1\n", ErrFixtureKind, "fixture 0"},
		{"two shapes", "fixtures:\n  - circle: {}\n    box: {}\n", ErrFixtureKind, "fixture 0"},
		{"short polygon", "fixtures:\n  - box: {}\n  - polygon: [0, 0, 1, 0]\n", b2.ErrTooFewVertices, "fixture 1"},
		{"odd loop", "fixtures:\n  - loop: [0, 0, 1]\n", b2.ErrOddCoordinateCount, "fixture 0"},
		{"short chain", "fixtures:\n  - chain: [[0, 0]]\n", b2.ErrTooFewVertices, "fixture 0"},
		{"bad chain point", "fixtures:\n  - chain: [[0, 0], [1]]\n", ErrBadVector, "point 1"},
		{"bad edge", "fixtures:\n  - edge: {from: [0], to: [1, 1]}\n", ErrBadVector, "edge from"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := Decode([]byte(tt.doc))
			require.NoError(t, err)

			def, err := doc.Build()
			require.ErrorIs(t, err, tt.err)
			assert.Contains(t, err.Error(), tt.msg)
			assert.Nil(t, def)
		})
	}
}

func TestDecode_Invalid(t *testing.T) {
	_, err := Decode([]byte("fixtures: {circle: ["))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "b2yaml: decode")
}
