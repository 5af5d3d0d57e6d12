package geom

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// Ring is a simple polygon in a 2D frame (a plan outline or the projection
// of a surface onto its plane). Closure is implicit: the last point is not a
// repeat of the first.
type Ring []Point2

// Rect returns the counterclockwise axis-aligned rectangle spanning the two
// corners.
func Rect(x0, y0, x1, y1 float64) Ring {
	return Ring{P2(x0, y0), P2(x1, y0), P2(x1, y1), P2(x0, y1)}
}

// orb returns the ring as a closed orb.Ring.
func (r Ring) orb() orb.Ring {
	or := make(orb.Ring, 0, len(r)+1)
	for _, p := range r {
		or = append(or, orb.Point{p.X, p.Y})
	}
	if len(r) > 0 {
		or = append(or, orb.Point{r[0].X, r[0].Y})
	}
	return or
}

// SignedArea returns the shoelace area, positive for counterclockwise rings.
func (r Ring) SignedArea() float64 {
	n := len(r)
	if n < 3 {
		return 0
	}
	a := 0.0
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		a += r[i].X*r[j].Y - r[j].X*r[i].Y
	}
	return a / 2
}

// Area returns the unsigned area. planar.Area is signed by winding.
func (r Ring) Area() float64 {
	if len(r) < 3 {
		return 0
	}
	return math.Abs(planar.Area(r.orb()))
}

// Centroid returns the area centroid.
func (r Ring) Centroid() Point2 {
	c, _ := planar.CentroidArea(r.orb())
	return P2(c[0], c[1])
}

// Contains reports whether p is inside the ring or on its boundary.
func (r Ring) Contains(p Point2) bool {
	if len(r) < 3 {
		return false
	}
	return planar.RingContains(r.orb(), orb.Point{p.X, p.Y})
}

// Bound returns the axis-aligned bounds of the ring.
func (r Ring) Bound() orb.Bound {
	return r.orb().Bound()
}

// Reverse returns the ring with the opposite winding.
func (r Ring) Reverse() Ring {
	out := make(Ring, len(r))
	for i, p := range r {
		out[len(r)-1-i] = p
	}
	return out
}

// CCW returns the ring wound counterclockwise.
func (r Ring) CCW() Ring {
	if r.SignedArea() < 0 {
		return r.Reverse()
	}
	return r
}

// Translate shifts every vertex by d.
func (r Ring) Translate(d Point2) Ring {
	out := make(Ring, len(r))
	for i, p := range r {
		out[i] = p.Add(d)
	}
	return out
}

// Simplify drops repeated vertices and vertices lying within tol of the
// segment joining their neighbours.
func (r Ring) Simplify(tol float64) Ring {
	out := make(Ring, 0, len(r))
	for _, p := range r {
		if len(out) > 0 && out[len(out)-1].Near(p, tol) {
			continue
		}
		out = append(out, p)
	}
	for len(out) > 1 && out[0].Near(out[len(out)-1], tol) {
		out = out[:len(out)-1]
	}
	for changed := true; changed && len(out) >= 3; {
		changed = false
		for i := 0; i < len(out) && len(out) >= 3; i++ {
			a := out[(i+len(out)-1)%len(out)]
			c := out[(i+1)%len(out)]
			if segmentDistance(out[i], a, c) <= tol {
				out = append(out[:i], out[i+1:]...)
				changed = true
				i--
			}
		}
	}
	return out
}

// Canonical rotates the ring to start at its lexicographically smallest
// vertex, keeping the winding.
func (r Ring) Canonical() Ring {
	if len(r) == 0 {
		return r
	}
	k := 0
	for i, p := range r {
		if p.Less(r[k]) {
			k = i
		}
	}
	out := make(Ring, 0, len(r))
	out = append(out, r[k:]...)
	return append(out, r[:k]...)
}

// Congruent reports whether r and o cover the same region: after
// simplification they have the same vertex set and the same area.
func (r Ring) Congruent(o Ring, tol float64) bool {
	a := r.Simplify(tol)
	b := o.Simplify(tol)
	if len(a) != len(b) || len(a) < 3 {
		return false
	}
	if math.Abs(a.Area()-b.Area()) > tol*math.Max(1, a.Area()) {
		return false
	}
	for _, p := range a {
		found := false
		for _, q := range b {
			if p.Near(q, tol) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// segmentDistance returns the distance from p to the segment ab.
func segmentDistance(p, a, b Point2) float64 {
	ab := b.Sub(a)
	l2 := ab.Dot(ab)
	if l2 == 0 {
		return p.Sub(a).Length()
	}
	t := p.Sub(a).Dot(ab) / l2
	t = math.Max(0, math.Min(1, t))
	return p.Sub(a.Add(ab.Scale(t))).Length()
}
