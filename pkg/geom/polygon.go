package geom

import (
	"math"
)

// Polygon is an ordered sequence of at least three coplanar points bounding
// one planar face. Closure is implicit. Counterclockwise winding seen from
// the outside gives the outward normal.
type Polygon []Point3

// NewPolygon builds a polygon from pts, dropping repeated consecutive points
// and a trailing repeat of the first point.
func NewPolygon(pts ...Point3) Polygon {
	out := make(Polygon, 0, len(pts))
	for _, p := range pts {
		if len(out) > 0 && out[len(out)-1].Near(p, Tolerance) {
			continue
		}
		out = append(out, p)
	}
	for len(out) > 1 && out[0].Near(out[len(out)-1], Tolerance) {
		out = out[:len(out)-1]
	}
	return out
}

// FromRing places a plan ring at elevation z.
func FromRing(r Ring, z float64) Polygon {
	pts := make([]Point3, len(r))
	for i, p := range r {
		pts[i] = p.At3(z)
	}
	return NewPolygon(pts...)
}

// VectorArea returns the Newell area vector: its direction is the normal
// implied by the winding and its length is the polygon area.
func (p Polygon) VectorArea() Point3 {
	var n Point3
	for i := range p {
		a := p[i]
		b := p[(i+1)%len(p)]
		n.X += (a.Y - b.Y) * (a.Z + b.Z)
		n.Y += (a.Z - b.Z) * (a.X + b.X)
		n.Z += (a.X - b.X) * (a.Y + b.Y)
	}
	return n.Scale(0.5)
}

// Normal returns the unit outward normal.
func (p Polygon) Normal() Point3 {
	return p.VectorArea().Normalize()
}

// Area returns the polygon area.
func (p Polygon) Area() float64 {
	return p.VectorArea().Length()
}

// Centroid returns the vertex average. It lies inside convex polygons and is
// only used as a reference point.
func (p Polygon) Centroid() Point3 {
	var c Point3
	if len(p) == 0 {
		return c
	}
	for _, v := range p {
		c = c.Add(v)
	}
	return c.Scale(1 / float64(len(p)))
}

// Reverse returns the polygon with the opposite winding.
func (p Polygon) Reverse() Polygon {
	out := make(Polygon, len(p))
	for i, v := range p {
		out[len(p)-1-i] = v
	}
	return out
}

// Plane returns the oriented plane containing the polygon.
func (p Polygon) Plane() Plane {
	n := p.Normal()
	return Plane{Normal: n, D: n.Dot(p.Centroid())}
}

// Bounds returns the axis-aligned bounding box.
func (p Polygon) Bounds() (min, max Point3) {
	if len(p) == 0 {
		return
	}
	min, max = p[0], p[0]
	for _, v := range p[1:] {
		min = Point3{math.Min(min.X, v.X), math.Min(min.Y, v.Y), math.Min(min.Z, v.Z)}
		max = Point3{math.Max(max.X, v.X), math.Max(max.Y, v.Y), math.Max(max.Z, v.Z)}
	}
	return min, max
}

// IsHorizontal reports whether the polygon lies in a horizontal plane.
func (p Polygon) IsHorizontal() bool {
	return math.Abs(p.Normal().Z) > 1-1e-9
}

// IsVertical reports whether the polygon lies in a vertical plane.
func (p Polygon) IsVertical() bool {
	return math.Abs(p.Normal().Z) < 1e-9
}

// OrientAway returns the polygon wound so that its normal points away from
// the interior reference point ref.
func (p Polygon) OrientAway(ref Point3) Polygon {
	if p.Normal().Dot(p.Centroid().Sub(ref)) < 0 {
		return p.Reverse()
	}
	return p
}

// Simplify drops repeated and collinear vertices.
func (p Polygon) Simplify(tol float64) Polygon {
	if len(p) < 3 {
		return p
	}
	f := NewFrame(p.Plane())
	r := f.ProjectPolygon(p).Simplify(tol)
	keep := make(Polygon, 0, len(r))
	for _, q := range r {
		keep = append(keep, nearestVertex(p, f.Lift(q)))
	}
	return keep
}

// Congruent reports whether p and q bound the same region of the same plane,
// irrespective of winding and starting vertex.
func (p Polygon) Congruent(q Polygon, tol float64) bool {
	if !p.Plane().Coplanar(q.Plane(), tol) {
		return false
	}
	f := NewFrame(p.Plane())
	return f.ProjectPolygon(p).Congruent(f.ProjectPolygon(q), tol)
}

// nearestVertex returns the vertex of p closest to x.
func nearestVertex(p Polygon, x Point3) Point3 {
	best := x
	d := math.Inf(1)
	for _, v := range p {
		if dv := v.Sub(x).Length(); dv < d {
			best, d = v, dv
		}
	}
	return best
}
