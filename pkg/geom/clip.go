package geom

// ClipConvex clips subject against the convex counterclockwise ring clip
// (Sutherland–Hodgman). The result is the intersection when subject is
// convex too.
func ClipConvex(subject, clip Ring) Ring {
	out := subject
	for i := range clip {
		if len(out) == 0 {
			break
		}
		a, b := clip[i], clip[(i+1)%len(clip)]
		in := out
		out = make(Ring, 0, len(in)+2)
		for j := range in {
			cur := in[j]
			prev := in[(j+len(in)-1)%len(in)]
			curIn := side(a, b, cur) >= 0
			prevIn := side(a, b, prev) >= 0
			if curIn {
				if !prevIn {
					out = append(out, lineIntersect(prev, cur, a, b))
				}
				out = append(out, cur)
			} else if prevIn {
				out = append(out, lineIntersect(prev, cur, a, b))
			}
		}
	}
	return out
}

// side is positive when p is left of the directed line ab.
func side(a, b, p Point2) float64 {
	return b.Sub(a).Cross(p.Sub(a))
}

// lineIntersect returns the intersection of segment pq with the line ab.
func lineIntersect(p, q, a, b Point2) Point2 {
	sp := side(a, b, p)
	sq := side(a, b, q)
	t := sp / (sp - sq)
	return p.Add(q.Sub(p).Scale(t))
}

// OverlapArea returns the area shared by two simple rings, computed by
// clipping every triangle pair.
func OverlapArea(a, b Ring) float64 {
	ta := Triangulate(a)
	tb := Triangulate(b)
	total := 0.0
	for _, x := range ta {
		for _, y := range tb {
			c := ClipConvex(Ring(x[:]), Ring(y[:]))
			total += c.SignedArea()
		}
	}
	return total
}

// PolygonOverlap returns the area shared by two coplanar polygons, or zero
// when they are not coplanar.
func PolygonOverlap(p, q Polygon) float64 {
	if !p.Plane().Coplanar(q.Plane(), Tolerance) {
		return 0
	}
	f := NewFrame(p.Plane())
	return OverlapArea(f.ProjectPolygon(p), f.ProjectPolygon(q))
}
