// Package b2world creates runtime bodies in a box2d world from body
// definitions assembled with the fixture builder.
package b2world

import (
	"errors"
	"fmt"

	"github.com/ByteArena/box2d"
	b2 "github.com/ByteArena/box2d-builder"
)

var (
	ErrUnsupportedShape = errors.New("b2world: unsupported shape")
	ErrEmptyPolygon     = errors.New("b2world: polygon has no vertices")
	ErrWorldLocked      = errors.New("b2world: world is locked")
)

func convertVec2(v b2.B2Vec2) box2d.B2Vec2 {
	return box2d.MakeB2Vec2(v.X, v.Y)
}

func convertVertices(vs []b2.B2Vec2) []box2d.B2Vec2 {
	out := make([]box2d.B2Vec2, len(vs))
	for i, v := range vs {
		out[i] = convertVec2(v)
	}
	return out
}

// ConvertBodyDef copies the body level settings. Fixtures are not part of an
// engine body definition and are created by CreateBody.
func ConvertBodyDef(def *b2.B2BodyDef) box2d.B2BodyDef {
	bd := box2d.MakeB2BodyDef()
	bd.Type = def.Type
	bd.Position = convertVec2(def.Position)
	bd.Angle = def.Angle
	bd.LinearVelocity = convertVec2(def.LinearVelocity)
	bd.AngularVelocity = def.AngularVelocity
	bd.LinearDamping = def.LinearDamping
	bd.AngularDamping = def.AngularDamping
	bd.AllowSleep = def.AllowSleep
	bd.Awake = def.Awake
	bd.FixedRotation = def.FixedRotation
	bd.Bullet = def.Bullet
	bd.Active = def.Active
	bd.UserData = def.UserData
	bd.GravityScale = def.GravityScale
	return bd
}

// ConvertShape turns a builder shape into the equivalent engine shape.
func ConvertShape(shape b2.B2ShapeInterface) (box2d.B2ShapeInterface, error) {
	switch s := shape.(type) {
	case *b2.B2CircleShape:
		circle := box2d.MakeB2CircleShape()
		circle.M_radius = s.M_radius
		circle.M_p = convertVec2(s.M_p)
		return &circle, nil

	case *b2.B2PolygonShape:
		if s.M_count == 0 {
			return nil, ErrEmptyPolygon
		}
		poly := box2d.MakeB2PolygonShape()
		poly.M_count = s.M_count
		poly.M_centroid = convertVec2(s.M_centroid)
		for i := 0; i < s.M_count; i++ {
			poly.M_vertices[i] = convertVec2(s.M_vertices[i])
			poly.M_normals[i] = convertVec2(s.M_normals[i])
		}
		return &poly, nil

	case *b2.B2ChainShape:
		// The engine refuses loops of fewer than 3 vertices, so loops go in as
		// chains that already carry the closing vertex plus ghost vertices.
		chain := box2d.MakeB2ChainShape()
		chain.CreateChain(convertVertices(s.M_vertices), s.M_count)
		if s.M_hasPrevVertex {
			chain.SetPrevVertex(convertVec2(s.M_prevVertex))
		}
		if s.M_hasNextVertex {
			chain.SetNextVertex(convertVec2(s.M_nextVertex))
		}
		return &chain, nil

	case *b2.B2EdgeShape:
		edge := box2d.MakeB2EdgeShape()
		edge.Set(convertVec2(s.M_vertex1), convertVec2(s.M_vertex2))
		edge.M_vertex0 = convertVec2(s.M_vertex0)
		edge.M_vertex3 = convertVec2(s.M_vertex3)
		edge.M_hasVertex0 = s.M_hasVertex0
		edge.M_hasVertex3 = s.M_hasVertex3
		return &edge, nil
	}

	return nil, fmt.Errorf("%w: %T", ErrUnsupportedShape, shape)
}

// ConvertFixtureDef turns a builder fixture definition into an engine one.
func ConvertFixtureDef(fd *b2.B2FixtureDef) (box2d.B2FixtureDef, error) {
	out := box2d.MakeB2FixtureDef()

	shape, err := ConvertShape(fd.Shape)
	if err != nil {
		return out, err
	}

	out.Shape = shape
	out.UserData = fd.UserData
	out.Friction = fd.Friction
	out.Restitution = fd.Restitution
	out.Density = fd.Density
	out.IsSensor = fd.IsSensor
	out.Filter = box2d.B2Filter{
		CategoryBits: fd.Filter.CategoryBits,
		MaskBits:     fd.Filter.MaskBits,
		GroupIndex:   fd.Filter.GroupIndex,
	}
	return out, nil
}

// CreateBody creates the runtime body and one fixture per definition, in
// definition order. All fixture definitions are converted before the world
// is touched, so a conversion error leaves the world unchanged.
func CreateBody(world *box2d.B2World, def *b2.B2BodyDef) (*box2d.B2Body, error) {
	if world.IsLocked() {
		return nil, ErrWorldLocked
	}

	fixtureDefs := make([]box2d.B2FixtureDef, len(def.Fixtures))
	for i, fd := range def.Fixtures {
		converted, err := ConvertFixtureDef(fd)
		if err != nil {
			return nil, fmt.Errorf("fixture %d: %w", i, err)
		}
		fixtureDefs[i] = converted
	}

	bd := ConvertBodyDef(def)
	body := world.CreateBody(&bd)
	body.SetUserData(def.UserData)

	for i := range fixtureDefs {
		body.CreateFixtureFromDef(&fixtureDefs[i])
	}

	return body, nil
}

// CreateBodies creates every definition in order and stops at the first
// error. Bodies created before the error stay in the world.
func CreateBodies(world *box2d.B2World, defs []*b2.B2BodyDef) ([]*box2d.B2Body, error) {
	bodies := make([]*box2d.B2Body, 0, len(defs))
	for i, def := range defs {
		body, err := CreateBody(world, def)
		if err != nil {
			return bodies, fmt.Errorf("body %d: %w", i, err)
		}
		bodies = append(bodies, body)
	}
	return bodies, nil
}
