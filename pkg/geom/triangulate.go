package geom

// Triangle is three points of a 2D frame, counterclockwise.
type Triangle [3]Point2

// Area returns the signed triangle area.
func (t Triangle) Area() float64 {
	return t[1].Sub(t[0]).Cross(t[2].Sub(t[0])) / 2
}

// Centroid returns the triangle centroid, which is strictly interior for a
// non-degenerate triangle.
func (t Triangle) Centroid() Point2 {
	return t[0].Add(t[1]).Add(t[2]).Scale(1.0 / 3)
}

// Triangulate splits a simple ring into counterclockwise triangles by ear
// clipping. Collinear and repeated vertices are removed first. A ring that
// stops yielding ears (self-touching or degenerate input) is finished with a
// fan so the call never loops.
func Triangulate(r Ring) []Triangle {
	ring := r.Simplify(Tolerance).CCW()
	if len(ring) < 3 {
		return nil
	}
	idx := make([]int, len(ring))
	for i := range idx {
		idx[i] = i
	}
	var tris []Triangle
	for len(idx) > 3 {
		clipped := false
		for i := range idx {
			ia := idx[(i+len(idx)-1)%len(idx)]
			ib := idx[i]
			ic := idx[(i+1)%len(idx)]
			if !isEar(ring, idx, ia, ib, ic) {
				continue
			}
			tris = append(tris, Triangle{ring[ia], ring[ib], ring[ic]})
			idx = append(idx[:i], idx[i+1:]...)
			clipped = true
			break
		}
		if !clipped {
			for i := 1; i+1 < len(idx); i++ {
				tris = append(tris, Triangle{ring[idx[0]], ring[idx[i]], ring[idx[i+1]]})
			}
			return tris
		}
	}
	return append(tris, Triangle{ring[idx[0]], ring[idx[1]], ring[idx[2]]})
}

// isEar reports whether the corner (a, b, c) is convex and contains no other
// remaining vertex.
func isEar(ring Ring, idx []int, ia, ib, ic int) bool {
	a, b, c := ring[ia], ring[ib], ring[ic]
	if b.Sub(a).Cross(c.Sub(b)) <= AreaTolerance {
		return false
	}
	t := Triangle{a, b, c}
	for _, k := range idx {
		if k == ia || k == ib || k == ic {
			continue
		}
		p := ring[k]
		if p.Near(a, Tolerance) || p.Near(b, Tolerance) || p.Near(c, Tolerance) {
			continue
		}
		if t.contains(p) {
			return false
		}
	}
	return true
}

// contains reports whether p lies inside or on the triangle.
func (t Triangle) contains(p Point2) bool {
	for i := 0; i < 3; i++ {
		a, b := t[i], t[(i+1)%3]
		if b.Sub(a).Cross(p.Sub(a)) < -AreaTolerance {
			return false
		}
	}
	return true
}

// InteriorPoint returns a point strictly inside the ring: the centroid of
// its largest ear-clipped triangle.
func InteriorPoint(r Ring) (Point2, bool) {
	best := -1.0
	var pt Point2
	for _, t := range Triangulate(r) {
		if a := t.Area(); a > best {
			best, pt = a, t.Centroid()
		}
	}
	return pt, best > AreaTolerance
}
