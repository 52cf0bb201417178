package box2d

import "fmt"

/// A convex polygon. It is assumed that the interior of the polygon is to
/// the left of each edge.
/// Polygons have a maximum number of vertices equal to b2_maxPolygonVertices.
/// In most cases you should not need many vertices for a convex polygon.
type B2PolygonShape struct {
	B2Shape

	M_centroid B2Vec2
	M_vertices [B2_maxPolygonVertices]B2Vec2
	M_normals  [B2_maxPolygonVertices]B2Vec2
	M_count    int
}

func MakeB2PolygonShape() B2PolygonShape {
	return B2PolygonShape{
		B2Shape: B2Shape{
			M_type:   B2Shape_Type.E_polygon,
			M_radius: B2_polygonRadius,
		},
		M_count:    0,
		M_centroid: MakeB2Vec2(0, 0),
	}
}

func NewB2PolygonShape() *B2PolygonShape {
	res := MakeB2PolygonShape()
	return &res
}

func (poly B2PolygonShape) GetVertex(index int) B2Vec2 {
	B2Assert(0 <= index && index < poly.M_count)
	return poly.M_vertices[index]
}

// GetVertices returns a copy of the polygon vertices in hull order.
func (poly B2PolygonShape) GetVertices() []B2Vec2 {
	return append([]B2Vec2(nil), poly.M_vertices[:poly.M_count]...)
}

func (poly B2PolygonShape) Clone() B2ShapeInterface {
	clone := NewB2PolygonShape()
	clone.M_radius = poly.M_radius
	clone.M_centroid = poly.M_centroid
	clone.M_count = poly.M_count
	clone.M_vertices = poly.M_vertices
	clone.M_normals = poly.M_normals
	return clone
}

/// Build vertices to represent an axis-aligned box centered on the local origin.
/// @param hx the half-width.
/// @param hy the half-height.
func (poly *B2PolygonShape) SetAsBox(hx float64, hy float64) {
	poly.SetAsBoxFromCenterAndAngle(hx, hy, MakeB2Vec2(0, 0), 0.0)
}

/// Build vertices to represent an oriented box.
/// @param hx the half-width.
/// @param hy the half-height.
/// @param center the center of the box in local coordinates.
/// @param angle the rotation of the box in local coordinates.
func (poly *B2PolygonShape) SetAsBoxFromCenterAndAngle(hx float64, hy float64, center B2Vec2, angle float64) {
	poly.M_count = 4
	poly.M_vertices[0].Set(-hx, -hy)
	poly.M_vertices[1].Set(hx, -hy)
	poly.M_vertices[2].Set(hx, hy)
	poly.M_vertices[3].Set(-hx, hy)
	poly.M_normals[0].Set(0.0, -1.0)
	poly.M_normals[1].Set(1.0, 0.0)
	poly.M_normals[2].Set(0.0, 1.0)
	poly.M_normals[3].Set(-1.0, 0.0)
	poly.M_centroid = center

	xf := MakeB2TransformFromPositionAndAngle(center, angle)

	// Transform vertices and normals.
	for i := 0; i < poly.M_count; i++ {
		poly.M_vertices[i] = B2TransformVec2Mul(xf, poly.M_vertices[i])
		poly.M_normals[i] = B2RotVec2Mul(xf.Q, poly.M_normals[i])
	}
}

func (poly B2PolygonShape) GetChildCount() int {
	return 1
}

func computeCentroid(vs []B2Vec2) (B2Vec2, error) {
	count := len(vs)
	c := MakeB2Vec2(0, 0)
	area := 0.0

	// pRef is the reference point for forming triangles.
	// Its location doesn't change the result (except for rounding error).
	pRef := MakeB2Vec2(0.0, 0.0)
	for i := 0; i < count; i++ {
		pRef.OperatorPlusInplace(vs[i])
	}
	pRef.OperatorScalarMulInplace(1.0 / float64(count))

	inv3 := 1.0 / 3.0

	for i := 0; i < count; i++ {
		p1 := pRef
		p2 := vs[i]
		p3 := vs[0]
		if i+1 < count {
			p3 = vs[i+1]
		}

		e1 := B2Vec2Sub(p2, p1)
		e2 := B2Vec2Sub(p3, p1)

		triangleArea := 0.5 * B2Vec2Cross(e1, e2)
		area += triangleArea

		// Area weighted centroid
		c.OperatorPlusInplace(B2Vec2MulScalar(triangleArea*inv3, B2Vec2Add(B2Vec2Add(p1, p2), p3)))
	}

	if area <= B2_epsilon {
		return c, fmt.Errorf("%w: zero area", ErrDegeneratePolygon)
	}
	c.OperatorScalarMulInplace(1.0 / area)
	return c, nil
}

/// Create a convex hull from the given array of local points.
/// The count must be in the range [3, b2_maxPolygonVertices].
/// On error the polygon is left untouched.
func (poly *B2PolygonShape) Set(vertices []B2Vec2) error {
	return poly.set(b2PointSource(vertices))
}

/// Like Set, reading the points from a flat x0, y0, x1, y1, ... list.
func (poly *B2PolygonShape) SetFromCoords(coords []float64) error {
	src, err := b2CoordSource(coords)
	if err != nil {
		return err
	}
	return poly.set(src)
}

func (poly *B2PolygonShape) set(src b2VertexSource) error {
	count := src.Len()
	if count < 3 {
		return fmt.Errorf("%w: polygon needs at least 3, got %d", ErrTooFewVertices, count)
	}
	if count > B2_maxPolygonVertices {
		return fmt.Errorf("%w: polygon takes at most %d, got %d", ErrTooManyVertices, B2_maxPolygonVertices, count)
	}

	// Perform welding and copy vertices into local buffer.
	var ps [B2_maxPolygonVertices]B2Vec2
	n := 0
	for i := 0; i < count; i++ {
		v := src.At(i)

		unique := true
		for j := 0; j < n; j++ {
			if B2Vec2DistanceSquared(v, ps[j]) < ((0.5 * B2_linearSlop) * (0.5 * B2_linearSlop)) {
				unique = false
				break
			}
		}

		if unique {
			ps[n] = v
			n++
		}
	}

	if n < 3 {
		return fmt.Errorf("%w: %d distinct vertices after welding", ErrDegeneratePolygon, n)
	}

	// Create the convex hull using the Gift wrapping algorithm
	// http://en.wikipedia.org/wiki/Gift_wrapping_algorithm

	// Find the right most point on the hull
	i0 := 0
	x0 := ps[0].X
	for i := 1; i < n; i++ {
		x := ps[i].X
		if x > x0 || (x == x0 && ps[i].Y < ps[i0].Y) {
			i0 = i
			x0 = x
		}
	}

	var hull [B2_maxPolygonVertices]int
	m := 0
	ih := i0

	for {
		if m >= B2_maxPolygonVertices {
			return fmt.Errorf("%w: hull does not close", ErrDegeneratePolygon)
		}
		hull[m] = ih

		ie := 0
		for j := 1; j < n; j++ {
			if ie == ih {
				ie = j
				continue
			}

			r := B2Vec2Sub(ps[ie], ps[hull[m]])
			v := B2Vec2Sub(ps[j], ps[hull[m]])
			c := B2Vec2Cross(r, v)
			if c < 0.0 {
				ie = j
			}

			// Collinearity check
			if c == 0.0 && v.LengthSquared() > r.LengthSquared() {
				ie = j
			}
		}

		m++
		ih = ie

		if ie == i0 {
			break
		}
	}

	if m < 3 {
		return fmt.Errorf("%w: %d hull vertices", ErrDegeneratePolygon, m)
	}

	var vertices, normals [B2_maxPolygonVertices]B2Vec2
	for i := 0; i < m; i++ {
		vertices[i] = ps[hull[i]]
	}

	// Compute normals. Ensure the edges have non-zero length.
	for i := 0; i < m; i++ {
		i2 := 0
		if i+1 < m {
			i2 = i + 1
		}

		edge := B2Vec2Sub(vertices[i2], vertices[i])
		if edge.LengthSquared() <= B2_epsilon*B2_epsilon {
			return fmt.Errorf("%w: zero length edge %d", ErrDegeneratePolygon, i)
		}
		normals[i] = B2Vec2CrossVectorScalar(edge, 1.0)
		normals[i].Normalize()
	}

	centroid, err := computeCentroid(vertices[:m])
	if err != nil {
		return err
	}

	poly.M_count = m
	poly.M_vertices = vertices
	poly.M_normals = normals
	poly.M_centroid = centroid
	return nil
}

func (poly B2PolygonShape) TestPoint(xf B2Transform, p B2Vec2) bool {
	if poly.M_count == 0 {
		return false
	}

	pLocal := B2RotVec2MulT(xf.Q, B2Vec2Sub(p, xf.P))
	for i := 0; i < poly.M_count; i++ {
		dot := B2Vec2Dot(poly.M_normals[i], B2Vec2Sub(pLocal, poly.M_vertices[i]))
		if dot > 0.0 {
			return false
		}
	}

	return true
}

func (poly B2PolygonShape) ComputeAABB(aabb *B2AABB, xf B2Transform, childIndex int) {
	lower := B2TransformVec2Mul(xf, poly.M_vertices[0])
	upper := lower

	for i := 1; i < poly.M_count; i++ {
		v := B2TransformVec2Mul(xf, poly.M_vertices[i])
		lower = B2Vec2Min(lower, v)
		upper = B2Vec2Max(upper, v)
	}

	r := MakeB2Vec2(poly.M_radius, poly.M_radius)
	aabb.LowerBound = B2Vec2Sub(lower, r)
	aabb.UpperBound = B2Vec2Add(upper, r)
}

/// A polygon without vertices has no mass.
func (poly B2PolygonShape) ComputeMass(massData *B2MassData, density float64) {
	// Polygon mass, centroid, and inertia.
	// Let rho be the polygon density in mass per unit area.
	// Then:
	// mass = rho * int(dA)
	// centroid.x = (1/mass) * rho * int(x * dA)
	// centroid.y = (1/mass) * rho * int(y * dA)
	// I = rho * int((x*x + y*y) * dA)
	//
	// We can compute these integrals by summing all the integrals
	// for each triangle of the polygon. To evaluate the integral
	// for a single triangle, we make a change of variables to
	// the (u,v) coordinates of the triangle:
	// x = x0 + e1x * u + e2x * v
	// y = y0 + e1y * u + e2y * v
	// where 0 <= u && 0 <= v && u + v <= 1.
	//
	// We integrate u from [0,1-v] and then v from [0,1].
	// We also need to use the Jacobian of the transformation:
	// D = cross(e1, e2)
	//
	// Simplification: triangle centroid = (1/3) * (p1 + p2 + p3)
	if poly.M_count < 3 {
		*massData = MakeMassData()
		return
	}

	center := MakeB2Vec2(0, 0)
	area := 0.0
	I := 0.0

	// s is the reference point for forming triangles.
	s := MakeB2Vec2(0.0, 0.0)
	for i := 0; i < poly.M_count; i++ {
		s.OperatorPlusInplace(poly.M_vertices[i])
	}
	s.OperatorScalarMulInplace(1.0 / float64(poly.M_count))

	k_inv3 := 1.0 / 3.0

	for i := 0; i < poly.M_count; i++ {
		// Triangle vertices.
		e1 := B2Vec2Sub(poly.M_vertices[i], s)
		e2 := B2Vec2Sub(poly.M_vertices[0], s)
		if i+1 < poly.M_count {
			e2 = B2Vec2Sub(poly.M_vertices[i+1], s)
		}

		D := B2Vec2Cross(e1, e2)

		triangleArea := 0.5 * D
		area += triangleArea

		// Area weighted centroid
		center.OperatorPlusInplace(B2Vec2MulScalar(triangleArea*k_inv3, B2Vec2Add(e1, e2)))

		intx2 := e1.X*e1.X + e2.X*e1.X + e2.X*e2.X
		inty2 := e1.Y*e1.Y + e2.Y*e1.Y + e2.Y*e2.Y

		I += (0.25 * k_inv3 * D) * (intx2 + inty2)
	}

	// Clockwise or collapsed vertices, e.g. a box set with a negative extent.
	if area <= B2_epsilon {
		*massData = MakeMassData()
		return
	}

	// Total mass
	massData.Mass = density * area

	// Center of mass
	center.OperatorScalarMulInplace(1.0 / area)
	massData.Center = B2Vec2Add(center, s)

	// Inertia tensor relative to the local origin (point s).
	massData.I = density * I

	// Shift to center of mass then to original body origin.
	massData.I += massData.Mass * (B2Vec2Dot(massData.Center, massData.Center) - B2Vec2Dot(center, center))
}

/// Validate convexity. This is a very time consuming operation.
/// @returns true if valid
func (poly B2PolygonShape) Validate() bool {
	for i := 0; i < poly.M_count; i++ {
		i1 := i
		i2 := 0
		if i < poly.M_count-1 {
			i2 = i1 + 1
		}

		p := poly.M_vertices[i1]
		e := B2Vec2Sub(poly.M_vertices[i2], p)

		for j := 0; j < poly.M_count; j++ {
			if j == i1 || j == i2 {
				continue
			}

			v := B2Vec2Sub(poly.M_vertices[j], p)
			if B2Vec2Cross(e, v) < 0.0 {
				return false
			}
		}
	}

	return true
}
