// Package b2yaml builds body definitions from declarative YAML documents.
package b2yaml

import (
	"errors"
	"fmt"

	b2 "github.com/ByteArena/box2d-builder"
	"gopkg.in/yaml.v3"
)

var (
	ErrUnknownBodyType = errors.New("b2yaml: unknown body type")
	ErrBadVector       = errors.New("b2yaml: vector needs exactly 2 numbers")
	ErrFixtureKind     = errors.New("b2yaml: fixture needs exactly one shape")
)

// Vec is a [x, y] pair. An absent vector is the origin.
type Vec []float64

func (v Vec) toVec2() (b2.B2Vec2, error) {
	if len(v) == 0 {
		return b2.MakeB2Vec2(0, 0), nil
	}
	if len(v) != 2 {
		return b2.B2Vec2{}, fmt.Errorf("%w, got %d", ErrBadVector, len(v))
	}
	return b2.MakeB2Vec2(v[0], v[1]), nil
}

func toVec2s(vs []Vec) ([]b2.B2Vec2, error) {
	out := make([]b2.B2Vec2, len(vs))
	for i, v := range vs {
		p, err := v.toVec2()
		if err != nil {
			return nil, fmt.Errorf("point %d: %w", i, err)
		}
		out[i] = p
	}
	return out, nil
}

type Document struct {
	Name            string    `yaml:"name"`
	Type            string    `yaml:"type"`
	Position        Vec       `yaml:"position"`
	Angle           float64   `yaml:"angle"`
	LinearVelocity  Vec       `yaml:"linear_velocity"`
	AngularVelocity float64   `yaml:"angular_velocity"`
	FixedRotation   bool      `yaml:"fixed_rotation"`
	Bullet          bool      `yaml:"bullet"`
	GravityScale    *float64  `yaml:"gravity_scale"`
	Fixtures        []Fixture `yaml:"fixtures"`
}

type CircleSpec struct {
	Radius   float64 `yaml:"radius"`
	Position Vec     `yaml:"position"`
}

type BoxSpec struct {
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	Position Vec     `yaml:"position"`
	Angle    float64 `yaml:"angle"`
}

type EdgeSpec struct {
	From Vec `yaml:"from"`
	To   Vec `yaml:"to"`
}

type FilterSpec struct {
	Category *uint16 `yaml:"category"`
	Mask     *uint16 `yaml:"mask"`
	Group    int16   `yaml:"group"`
}

// Fixture holds one shape and the fixture settings. Settings left out keep
// the fixture definition defaults.
type Fixture struct {
	Circle  *CircleSpec `yaml:"circle"`
	Box     *BoxSpec    `yaml:"box"`
	Polygon []float64   `yaml:"polygon"`
	Chain   []Vec       `yaml:"chain"`
	Loop    []float64   `yaml:"loop"`
	Edge    *EdgeSpec   `yaml:"edge"`

	Density     *float64    `yaml:"density"`
	Friction    *float64    `yaml:"friction"`
	Restitution *float64    `yaml:"restitution"`
	Sensor      bool        `yaml:"sensor"`
	Filter      *FilterSpec `yaml:"filter"`
}

func Decode(data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("b2yaml: decode: %w", err)
	}
	return &doc, nil
}

func bodyType(name string) (uint8, error) {
	switch name {
	case "", "static":
		return b2.B2BodyType.B2_staticBody, nil
	case "kinematic":
		return b2.B2BodyType.B2_kinematicBody, nil
	case "dynamic":
		return b2.B2BodyType.B2_dynamicBody, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownBodyType, name)
}

// Build drives the fixture builder with the document, fixtures in document
// order. The body UserData is the document name.
func (doc Document) Build() (*b2.B2BodyDef, error) {
	def := b2.NewB2BodyDef()

	var err error
	if def.Type, err = bodyType(doc.Type); err != nil {
		return nil, err
	}
	if def.Position, err = doc.Position.toVec2(); err != nil {
		return nil, fmt.Errorf("b2yaml: position: %w", err)
	}
	if def.LinearVelocity, err = doc.LinearVelocity.toVec2(); err != nil {
		return nil, fmt.Errorf("b2yaml: linear_velocity: %w", err)
	}
	def.Angle = doc.Angle
	def.AngularVelocity = doc.AngularVelocity
	def.FixedRotation = doc.FixedRotation
	def.Bullet = doc.Bullet
	if doc.GravityScale != nil {
		def.GravityScale = *doc.GravityScale
	}
	if doc.Name != "" {
		def.UserData = doc.Name
	}

	for i, fixture := range doc.Fixtures {
		if err := fixture.build(def); err != nil {
			return nil, fmt.Errorf("b2yaml: fixture %d: %w", i, err)
		}
	}

	return def, nil
}

func (f Fixture) kinds() int {
	n := 0
	for _, set := range []bool{
		f.Circle != nil, f.Box != nil, f.Polygon != nil,
		f.Chain != nil, f.Loop != nil, f.Edge != nil,
	} {
		if set {
			n++
		}
	}
	return n
}

func (f Fixture) apply(fd *b2.B2FixtureDef) {
	if f.Density != nil {
		fd.Density = *f.Density
	}
	if f.Friction != nil {
		fd.Friction = *f.Friction
	}
	if f.Restitution != nil {
		fd.Restitution = *f.Restitution
	}
	fd.IsSensor = f.Sensor
	if f.Filter != nil {
		if f.Filter.Category != nil {
			fd.Filter.CategoryBits = *f.Filter.Category
		}
		if f.Filter.Mask != nil {
			fd.Filter.MaskBits = *f.Filter.Mask
		}
		fd.Filter.GroupIndex = f.Filter.Group
	}
}

func settings[S b2.B2ShapeInterface](f Fixture) b2.B2FixtureInit[S] {
	return func(fd *b2.B2FixtureDef, _ S) {
		f.apply(fd)
	}
}

func (f Fixture) build(def *b2.B2BodyDef) error {
	if n := f.kinds(); n != 1 {
		return fmt.Errorf("%w, got %d", ErrFixtureKind, n)
	}

	switch {
	case f.Circle != nil:
		center, err := f.Circle.Position.toVec2()
		if err != nil {
			return fmt.Errorf("circle position: %w", err)
		}
		def.Circle(b2.B2CircleParams{Radius: f.Circle.Radius, Position: center}, settings[*b2.B2CircleShape](f))

	case f.Box != nil:
		center, err := f.Box.Position.toVec2()
		if err != nil {
			return fmt.Errorf("box position: %w", err)
		}
		def.Box(b2.B2BoxParams{
			Width:    f.Box.Width,
			Height:   f.Box.Height,
			Position: center,
			Angle:    f.Box.Angle,
		}, settings[*b2.B2PolygonShape](f))

	case f.Polygon != nil:
		if _, err := def.Polygon(f.Polygon, settings[*b2.B2PolygonShape](f)); err != nil {
			return err
		}

	case f.Chain != nil:
		points, err := toVec2s(f.Chain)
		if err != nil {
			return fmt.Errorf("chain: %w", err)
		}
		if _, err := def.Chain(points, settings[*b2.B2ChainShape](f)); err != nil {
			return err
		}

	case f.Loop != nil:
		if _, err := def.LoopFromCoords(f.Loop, settings[*b2.B2ChainShape](f)); err != nil {
			return err
		}

	case f.Edge != nil:
		from, err := f.Edge.From.toVec2()
		if err != nil {
			return fmt.Errorf("edge from: %w", err)
		}
		to, err := f.Edge.To.toVec2()
		if err != nil {
			return fmt.Errorf("edge to: %w", err)
		}
		def.Edge(from, to, settings[*b2.B2EdgeShape](f))
	}

	return nil
}
