package box2d

import "fmt"

/// A chain shape is a free form sequence of line segments.
/// The chain has two-sided collision, so you can use inside and outside collision.
/// Therefore, you may use any winding order.
/// Connectivity information is used to create smooth collisions.
/// WARNING: The chain will not collide properly if there are self-intersections.
type B2ChainShape struct {
	B2Shape

	/// The vertices. A loop stores its first vertex again at the end.
	M_vertices []B2Vec2

	/// The vertex count.
	M_count int

	M_prevVertex    B2Vec2
	M_nextVertex    B2Vec2
	M_hasPrevVertex bool
	M_hasNextVertex bool

	M_isLoop bool
}

func MakeB2ChainShape() B2ChainShape {
	return B2ChainShape{
		B2Shape: B2Shape{
			M_type:   B2Shape_Type.E_chain,
			M_radius: B2_polygonRadius,
		},
		M_vertices:      nil,
		M_count:         0,
		M_hasPrevVertex: false,
		M_hasNextVertex: false,
	}
}

func NewB2ChainShape() *B2ChainShape {
	res := MakeB2ChainShape()
	return &res
}

func (chain *B2ChainShape) Clear() {
	chain.M_vertices = nil
	chain.M_count = 0
	chain.M_isLoop = false
	chain.M_hasPrevVertex = false
	chain.M_hasNextVertex = false
	chain.M_prevVertex.SetZero()
	chain.M_nextVertex.SetZero()
}

/// Create a loop. This automatically adjusts connectivity.
/// Any previous vertices are discarded.
func (chain *B2ChainShape) CreateLoop(vertices []B2Vec2) error {
	return chain.createLoop(b2PointSource(vertices))
}

/// Create a loop from a flat x0, y0, x1, y1, ... list.
func (chain *B2ChainShape) CreateLoopFromCoords(coords []float64) error {
	src, err := b2CoordSource(coords)
	if err != nil {
		return err
	}
	return chain.createLoop(src)
}

/// Create a chain with isolated end vertices.
/// Any previous vertices are discarded.
func (chain *B2ChainShape) CreateChain(vertices []B2Vec2) error {
	return chain.createChain(b2PointSource(vertices))
}

/// Create a chain from a flat x0, y0, x1, y1, ... list.
func (chain *B2ChainShape) CreateChainFromCoords(coords []float64) error {
	src, err := b2CoordSource(coords)
	if err != nil {
		return err
	}
	return chain.createChain(src)
}

func validateChainVertices(src b2VertexSource) error {
	count := src.Len()
	if count < 2 {
		return fmt.Errorf("%w: chain needs at least 2, got %d", ErrTooFewVertices, count)
	}

	for i := 1; i < count; i++ {
		if B2Vec2DistanceSquared(src.At(i-1), src.At(i)) <= B2_linearSlop*B2_linearSlop {
			return fmt.Errorf("%w: vertex %d and %d", ErrVerticesTooClose, i-1, i)
		}
	}

	return nil
}

func (chain *B2ChainShape) createLoop(src b2VertexSource) error {
	if err := validateChainVertices(src); err != nil {
		return err
	}

	count := src.Len()
	if B2Vec2DistanceSquared(src.At(count-1), src.At(0)) <= B2_linearSlop*B2_linearSlop {
		return fmt.Errorf("%w: loop closes on vertex %d", ErrVerticesTooClose, count-1)
	}
	chain.Clear()

	chain.M_count = count + 1
	chain.M_vertices = make([]B2Vec2, chain.M_count)
	for i := 0; i < count; i++ {
		chain.M_vertices[i] = src.At(i)
	}

	chain.M_vertices[count] = chain.M_vertices[0]
	chain.M_prevVertex = chain.M_vertices[chain.M_count-2]
	chain.M_nextVertex = chain.M_vertices[1]
	chain.M_hasPrevVertex = true
	chain.M_hasNextVertex = true
	chain.M_isLoop = true

	return nil
}

func (chain *B2ChainShape) createChain(src b2VertexSource) error {
	if err := validateChainVertices(src); err != nil {
		return err
	}
	chain.Clear()

	chain.M_count = src.Len()
	chain.M_vertices = make([]B2Vec2, chain.M_count)
	for i := range chain.M_vertices {
		chain.M_vertices[i] = src.At(i)
	}

	return nil
}

/// Establish connectivity to a vertex that precedes the first vertex.
/// Don't call this for loops.
func (chain *B2ChainShape) SetPrevVertex(prevVertex B2Vec2) {
	chain.M_prevVertex = prevVertex
	chain.M_hasPrevVertex = true
}

/// Establish connectivity to a vertex that follows the last vertex.
/// Don't call this for loops.
func (chain *B2ChainShape) SetNextVertex(nextVertex B2Vec2) {
	chain.M_nextVertex = nextVertex
	chain.M_hasNextVertex = true
}

// IsLoop reports whether the last vertex connects back to the first one.
func (chain B2ChainShape) IsLoop() bool {
	return chain.M_isLoop
}

func (chain B2ChainShape) Clone() B2ShapeInterface {
	clone := NewB2ChainShape()
	clone.M_radius = chain.M_radius
	clone.M_vertices = append([]B2Vec2(nil), chain.M_vertices...)
	clone.M_count = chain.M_count
	clone.M_prevVertex = chain.M_prevVertex
	clone.M_nextVertex = chain.M_nextVertex
	clone.M_hasPrevVertex = chain.M_hasPrevVertex
	clone.M_hasNextVertex = chain.M_hasNextVertex
	clone.M_isLoop = chain.M_isLoop
	return clone
}

func (chain B2ChainShape) GetChildCount() int {
	// edge count = vertex count - 1
	if chain.M_count == 0 {
		return 0
	}
	return chain.M_count - 1
}

/// Get a child edge.
func (chain B2ChainShape) GetChildEdge(edge *B2EdgeShape, index int) {
	B2Assert(0 <= index && index < chain.M_count-1)

	edge.M_type = B2Shape_Type.E_edge
	edge.M_radius = chain.M_radius

	edge.M_vertex1 = chain.M_vertices[index+0]
	edge.M_vertex2 = chain.M_vertices[index+1]

	if index > 0 {
		edge.M_vertex0 = chain.M_vertices[index-1]
		edge.M_hasVertex0 = true
	} else {
		edge.M_vertex0 = chain.M_prevVertex
		edge.M_hasVertex0 = chain.M_hasPrevVertex
	}

	if index < chain.M_count-2 {
		edge.M_vertex3 = chain.M_vertices[index+2]
		edge.M_hasVertex3 = true
	} else {
		edge.M_vertex3 = chain.M_nextVertex
		edge.M_hasVertex3 = chain.M_hasNextVertex
	}
}

func (chain B2ChainShape) TestPoint(xf B2Transform, p B2Vec2) bool {
	return false
}

func (chain B2ChainShape) ComputeAABB(aabb *B2AABB, xf B2Transform, childIndex int) {
	B2Assert(childIndex < chain.M_count-1)

	v1 := B2TransformVec2Mul(xf, chain.M_vertices[childIndex])
	v2 := B2TransformVec2Mul(xf, chain.M_vertices[childIndex+1])

	aabb.LowerBound = B2Vec2Min(v1, v2)
	aabb.UpperBound = B2Vec2Max(v1, v2)
}

func (chain B2ChainShape) ComputeMass(massData *B2MassData, density float64) {
	massData.Mass = 0.0
	massData.Center.SetZero()
	massData.I = 0.0
}
