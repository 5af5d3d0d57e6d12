package geom

import (
	"errors"
	"math"
	"sort"
)

// ErrHole is returned when a split region would not be a simple polygon:
// one ring sits strictly inside another without touching its boundary.
var ErrHole = errors.New("geom: overlay region encloses a hole")

// Overlay is the planar subdivision induced by a set of simple rings that
// share one plane. It is stored as a half-edge structure: every input edge
// is split at every vertex and crossing it meets, each bounded face is
// labelled with the input rings that cover it, and the faces of one ring can
// then be merged back into pieces.
type Overlay struct {
	tol   float64
	rings []Ring
	verts []Point2
	half  []halfEdge
	faces []overlayFace
}

type halfEdge struct {
	origin int
	twin   int
	next   int
	face   int // -1 for the unbounded side
}

type overlayFace struct {
	edge  int
	cover []int
}

// Piece is one connected region of an input ring, tagged with the key the
// partition function assigned to its faces.
type Piece struct {
	Key  int
	Ring Ring
}

// NewOverlay builds the subdivision of rings with vertex snapping tolerance
// tol.
func NewOverlay(rings []Ring, tol float64) (*Overlay, error) {
	o := &Overlay{tol: tol, rings: rings}

	type segment struct{ a, b int }
	var segs []segment
	ringVerts := make([][]int, len(rings))
	for i, r := range rings {
		for _, p := range r {
			ringVerts[i] = append(ringVerts[i], o.vertex(p))
		}
		n := len(ringVerts[i])
		for k := 0; k < n; k++ {
			a, b := ringVerts[i][k], ringVerts[i][(k+1)%n]
			if a != b {
				segs = append(segs, segment{a, b})
			}
		}
	}

	// Proper crossings become vertices; collinear overlaps and T-junctions
	// are picked up by the split below.
	for i := range segs {
		for j := i + 1; j < len(segs); j++ {
			p, ok := o.crossing(segs[i].a, segs[i].b, segs[j].a, segs[j].b)
			if ok {
				o.vertex(p)
			}
		}
	}

	seen := make(map[[2]int]bool)
	var edges [][2]int
	for _, s := range segs {
		for _, e := range o.split(s.a, s.b) {
			key := e
			if key[0] > key[1] {
				key[0], key[1] = key[1], key[0]
			}
			if seen[key] {
				continue
			}
			seen[key] = true
			edges = append(edges, e)
		}
	}

	o.link(edges)
	o.traceFaces()
	if err := o.checkNesting(ringVerts); err != nil {
		return nil, err
	}
	o.label()
	return o, nil
}

// vertex returns the index of the vertex within tol of p, adding one when
// none exists.
func (o *Overlay) vertex(p Point2) int {
	for i, v := range o.verts {
		if v.Near(p, o.tol) {
			return i
		}
	}
	o.verts = append(o.verts, p)
	return len(o.verts) - 1
}

// crossing returns the intersection of segments ab and cd when they are not
// parallel and meet within both.
func (o *Overlay) crossing(a, b, c, d int) (Point2, bool) {
	p1, p2 := o.verts[a], o.verts[b]
	q1, q2 := o.verts[c], o.verts[d]
	r := p2.Sub(p1)
	s := q2.Sub(q1)
	den := r.Cross(s)
	if math.Abs(den) <= 1e-12*r.Length()*s.Length() {
		return Point2{}, false
	}
	w := q1.Sub(p1)
	t := w.Cross(s) / den
	u := w.Cross(r) / den
	const slack = 1e-9
	if t < -slack || t > 1+slack || u < -slack || u > 1+slack {
		return Point2{}, false
	}
	return p1.Add(r.Scale(t)), true
}

// split returns the sub-edges of ab cut at every vertex lying on it.
func (o *Overlay) split(a, b int) [][2]int {
	pa, pb := o.verts[a], o.verts[b]
	ab := pb.Sub(pa)
	l2 := ab.Dot(ab)
	type onSegment struct {
		v int
		t float64
	}
	var cuts []onSegment
	for k, p := range o.verts {
		if k == a || k == b || segmentDistance(p, pa, pb) > o.tol {
			continue
		}
		t := p.Sub(pa).Dot(ab) / l2
		if t > 0 && t < 1 {
			cuts = append(cuts, onSegment{k, t})
		}
	}
	sort.Slice(cuts, func(i, j int) bool { return cuts[i].t < cuts[j].t })
	chain := []int{a}
	for _, c := range cuts {
		chain = append(chain, c.v)
	}
	chain = append(chain, b)
	out := make([][2]int, 0, len(chain)-1)
	for i := 0; i+1 < len(chain); i++ {
		if chain[i] != chain[i+1] {
			out = append(out, [2]int{chain[i], chain[i+1]})
		}
	}
	return out
}

// link creates the twin half-edges and the next pointers. Around every
// vertex the outgoing half-edges are sorted by angle; the successor of an
// incoming half-edge is the outgoing one immediately clockwise from its
// twin, which keeps each face on the left.
func (o *Overlay) link(edges [][2]int) {
	o.half = make([]halfEdge, 0, 2*len(edges))
	for k, e := range edges {
		o.half = append(o.half,
			halfEdge{origin: e[0], twin: 2*k + 1, face: -1},
			halfEdge{origin: e[1], twin: 2 * k, face: -1},
		)
	}
	out := make([][]int, len(o.verts))
	for h := range o.half {
		v := o.half[h].origin
		out[v] = append(out[v], h)
	}
	pos := make([]int, len(o.half))
	for v := range out {
		sort.Slice(out[v], func(i, j int) bool {
			return o.angle(out[v][i]) < o.angle(out[v][j])
		})
		for i, h := range out[v] {
			pos[h] = i
		}
	}
	for h := range o.half {
		t := o.half[h].twin
		v := o.half[t].origin
		deg := len(out[v])
		o.half[h].next = out[v][(pos[t]-1+deg)%deg]
	}
}

// angle returns the direction of half-edge h.
func (o *Overlay) angle(h int) float64 {
	a := o.verts[o.half[h].origin]
	b := o.verts[o.half[o.half[h].twin].origin]
	return math.Atan2(b.Y-a.Y, b.X-a.X)
}

// traceFaces walks every next-cycle. Counterclockwise cycles bound faces;
// clockwise ones are outer boundaries and belong to the unbounded side.
func (o *Overlay) traceFaces() {
	visited := make([]bool, len(o.half))
	for h := range o.half {
		if visited[h] {
			continue
		}
		var loop []int
		for e := h; !visited[e]; e = o.half[e].next {
			visited[e] = true
			loop = append(loop, e)
		}
		face := -1
		if o.loopRing(loop).SignedArea() > AreaTolerance {
			face = len(o.faces)
			o.faces = append(o.faces, overlayFace{edge: h})
		}
		for _, e := range loop {
			o.half[e].face = face
		}
	}
}

// checkNesting rejects inputs where a ring lies inside another ring without
// sharing any vertex or edge with it; the enclosing region would need a hole.
func (o *Overlay) checkNesting(ringVerts [][]int) error {
	parent := make([]int, len(o.verts))
	for i := range parent {
		parent[i] = i
	}
	var find func(int) int
	find = func(x int) int {
		for parent[x] != x {
			parent[x] = parent[parent[x]]
			x = parent[x]
		}
		return x
	}
	for h := 0; h < len(o.half); h += 2 {
		a, b := find(o.half[h].origin), find(o.half[h+1].origin)
		if a != b {
			parent[a] = b
		}
	}
	for i, ri := range o.rings {
		for j, rj := range o.rings {
			if i == j || len(ringVerts[i]) == 0 || len(ringVerts[j]) == 0 {
				continue
			}
			if find(ringVerts[i][0]) == find(ringVerts[j][0]) {
				continue
			}
			if ri.Contains(rj[0]) {
				return ErrHole
			}
		}
	}
	return nil
}

// label records, for every bounded face, which input rings cover it.
func (o *Overlay) label() {
	for fi := range o.faces {
		p, ok := InteriorPoint(o.FaceRing(fi))
		if !ok {
			continue
		}
		for ri, r := range o.rings {
			if r.Contains(p) {
				o.faces[fi].cover = append(o.faces[fi].cover, ri)
			}
		}
	}
}

// loopRing returns the vertices visited by a half-edge loop.
func (o *Overlay) loopRing(loop []int) Ring {
	r := make(Ring, len(loop))
	for i, e := range loop {
		r[i] = o.verts[o.half[e].origin]
	}
	return r
}

// NumFaces returns the number of bounded faces.
func (o *Overlay) NumFaces() int {
	return len(o.faces)
}

// FaceRing returns the boundary of bounded face fi.
func (o *Overlay) FaceRing(fi int) Ring {
	var loop []int
	start := o.faces[fi].edge
	for e := start; ; {
		loop = append(loop, e)
		e = o.half[e].next
		if e == start {
			break
		}
	}
	return o.loopRing(loop)
}

// Cover returns the indices of the input rings covering face fi.
func (o *Overlay) Cover(fi int) []int {
	return o.faces[fi].cover
}

// Partition merges the faces covered by ring owner into pieces. Faces with
// the same key (as computed by key from their cover) that share an edge end
// up in one piece. Pieces are counterclockwise, simplified, and ordered by
// key and then by their lowest vertex.
func (o *Overlay) Partition(owner int, key func(cover []int) int) ([]Piece, error) {
	in := make([]bool, len(o.faces))
	faceKey := make([]int, len(o.faces))
	for fi, f := range o.faces {
		for _, r := range f.cover {
			if r == owner {
				in[fi] = true
				faceKey[fi] = key(f.cover)
				break
			}
		}
	}
	boundary := func(h int) bool {
		f := o.half[h].face
		if f < 0 || !in[f] {
			return false
		}
		g := o.half[o.half[h].twin].face
		return g < 0 || !in[g] || faceKey[g] != faceKey[f]
	}
	nextBoundary := func(h int) int {
		n := o.half[h].next
		for !boundary(n) {
			n = o.half[o.half[n].twin].next
		}
		return n
	}

	used := make([]bool, len(o.half))
	var pieces []Piece
	for h := range o.half {
		if used[h] || !boundary(h) {
			continue
		}
		var loop []int
		for e := h; !used[e]; e = nextBoundary(e) {
			used[e] = true
			loop = append(loop, e)
		}
		ring := o.loopRing(loop)
		area := ring.SignedArea()
		if area < -AreaTolerance {
			return nil, ErrHole
		}
		if area <= AreaTolerance {
			continue
		}
		pieces = append(pieces, Piece{
			Key:  faceKey[o.half[h].face],
			Ring: ring.Simplify(o.tol).Canonical(),
		})
	}
	sort.SliceStable(pieces, func(i, j int) bool {
		if pieces[i].Key != pieces[j].Key {
			return pieces[i].Key < pieces[j].Key
		}
		return pieces[i].Ring[0].Less(pieces[j].Ring[0])
	})
	return pieces, nil
}
