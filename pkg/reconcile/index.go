package reconcile

import (
	"sort"

	"github.com/chazu/resgeom/pkg/envelope"
	"github.com/chazu/resgeom/pkg/geom"
	"github.com/dhconnelly/rtreego"
)

// boundsPad keeps degenerate (planar) boxes valid for the R-tree and lets
// surfaces touching within tolerance find each other.
const boundsPad = 1e-3

// entry is a surface in the broad-phase index.
type entry struct {
	idx   int
	surf  *envelope.Surface
	plane geom.Plane
	rect  rtreego.Rect
}

// Bounds implements the rtreego.Spatial interface.
func (e *entry) Bounds() rtreego.Rect {
	return e.rect
}

// index is an R-tree over surface bounding boxes.
type index struct {
	entries []*entry
	tree    *rtreego.Rtree
}

func newIndex(surfaces []*envelope.Surface) *index {
	ix := &index{tree: rtreego.NewTree(3, 25, 50)}
	for i, s := range surfaces {
		lo, hi := s.Polygon.Bounds()
		rect, _ := rtreego.NewRect(
			rtreego.Point{lo.X - boundsPad, lo.Y - boundsPad, lo.Z - boundsPad},
			[]float64{hi.X - lo.X + 2*boundsPad, hi.Y - lo.Y + 2*boundsPad, hi.Z - lo.Z + 2*boundsPad},
		)
		e := &entry{idx: i, surf: s, plane: s.Polygon.Plane(), rect: rect}
		ix.entries = append(ix.entries, e)
		ix.tree.Insert(e)
	}
	return ix
}

// facingPairs calls fn for every pair of surfaces from different spaces that
// lie in the same plane with opposite normals, lower index first, in a
// deterministic order.
func (ix *index) facingPairs(fn func(a, b *entry)) {
	for _, a := range ix.entries {
		hits := ix.tree.SearchIntersect(a.rect)
		var cands []*entry
		for _, h := range hits {
			b := h.(*entry)
			if b.idx <= a.idx || b.surf.Space == a.surf.Space {
				continue
			}
			if !a.plane.Facing(b.plane) || !a.plane.Coplanar(b.plane, geom.Tolerance*10) {
				continue
			}
			cands = append(cands, b)
		}
		sort.Slice(cands, func(i, j int) bool { return cands[i].idx < cands[j].idx })
		for _, b := range cands {
			fn(a, b)
		}
	}
}
