package geom

import "math"

// normalTolerance bounds the deviation between unit normals that are
// considered parallel.
const normalTolerance = 1e-7

// Plane is an oriented plane: points p with Normal.Dot(p) == D.
type Plane struct {
	Normal Point3
	D      float64
}

// Canonical returns the plane with its normal flipped, if needed, so that
// its first significant component is positive. Both orientations of one
// geometric plane share a canonical form.
func (pl Plane) Canonical() (Plane, bool) {
	for _, c := range []float64{pl.Normal.X, pl.Normal.Y, pl.Normal.Z} {
		if math.Abs(c) < 1e-9 {
			continue
		}
		if c < 0 {
			return Plane{Normal: pl.Normal.Scale(-1), D: -pl.D}, true
		}
		break
	}
	return pl, false
}

// Coplanar reports whether pl and o describe the same geometric plane,
// regardless of orientation.
func (pl Plane) Coplanar(o Plane, tol float64) bool {
	d := pl.Normal.Dot(o.Normal)
	switch {
	case d > 1-normalTolerance:
		return math.Abs(pl.D-o.D) <= tol
	case d < -1+normalTolerance:
		return math.Abs(pl.D+o.D) <= tol
	}
	return false
}

// Facing reports whether pl and o have anti-parallel normals.
func (pl Plane) Facing(o Plane) bool {
	return pl.Normal.Dot(o.Normal) < -1+normalTolerance
}

// Distance returns the signed distance from p to the plane.
func (pl Plane) Distance(p Point3) float64 {
	return pl.Normal.Dot(p) - pl.D
}

// Frame is an orthonormal 2D coordinate frame embedded in a plane. Rings
// projected into the frame are counterclockwise when their polygon's normal
// matches N.
type Frame struct {
	Origin  Point3
	U, V, N Point3
}

// NewFrame builds the frame of the canonical form of pl, so both sides of a
// shared plane project into the same coordinates.
func NewFrame(pl Plane) Frame {
	c, _ := pl.Canonical()
	n := c.Normal.Normalize()
	ref := Pt(0, 0, 1)
	if math.Abs(n.Z) > 0.9 {
		ref = Pt(0, 1, 0)
	}
	u := ref.Cross(n).Normalize()
	v := n.Cross(u)
	return Frame{Origin: n.Scale(c.D), U: u, V: v, N: n}
}

// Project maps p into frame coordinates, discarding the normal offset.
func (f Frame) Project(p Point3) Point2 {
	d := p.Sub(f.Origin)
	return P2(d.Dot(f.U), d.Dot(f.V))
}

// Lift maps frame coordinates back onto the plane.
func (f Frame) Lift(q Point2) Point3 {
	return f.Origin.Add(f.U.Scale(q.X)).Add(f.V.Scale(q.Y))
}

// ProjectPolygon projects every vertex of p.
func (f Frame) ProjectPolygon(p Polygon) Ring {
	r := make(Ring, len(p))
	for i, v := range p {
		r[i] = f.Project(v)
	}
	return r
}

// LiftRing lifts every vertex of r.
func (f Frame) LiftRing(r Ring) Polygon {
	pts := make([]Point3, len(r))
	for i, q := range r {
		pts[i] = f.Lift(q)
	}
	return NewPolygon(pts...)
}
