// Package reconcile splits coplanar surfaces of different spaces along their
// shared boundaries and pairs the coincident halves.
//
// Detection reads the surface set only; splits are collected first and
// applied afterwards in surface order, so the result does not depend on the
// order in which overlapping pairs are found.
package reconcile

import (
	"fmt"
	"sort"
	"strings"

	"github.com/chazu/resgeom/pkg/envelope"
	"github.com/chazu/resgeom/pkg/geom"
)

// minOverlap is the shared area, in ft², below which two surfaces only
// touch.
const minOverlap = 1e-4

// matchTolerance is the vertex distance for congruence tests.
const matchTolerance = geom.Tolerance * 10

// Result counts what a reconciliation run changed.
type Result struct {
	Split   int // surfaces replaced by pieces
	Pieces  int // pieces created
	Matched int // surface pairs linked
}

// Changed reports whether the run modified the envelope.
func (r Result) Changed() bool {
	return r.Split > 0 || r.Matched > 0
}

// Reconcile runs the intersection pass and then the matching pass over every
// surface in env. Running it again on its own output changes nothing.
func Reconcile(env *envelope.BuildingEnvelope) (Result, error) {
	var res Result
	if err := intersect(env, &res); err != nil {
		return res, err
	}
	match(env, &res)
	return res, nil
}

// ---------------------------------------------------------------------------
// Intersection pass
// ---------------------------------------------------------------------------

type overlapPair struct {
	a, b      int
	congruent bool
}

// intersect groups overlapping facing surfaces into clusters and splits
// every member of a cluster that holds a partial overlap.
func intersect(env *envelope.BuildingEnvelope, res *Result) error {
	surfaces := env.Surfaces()
	ix := newIndex(surfaces)

	parent := make([]int, len(surfaces))
	for i := range parent {
		parent[i] = i
	}
	find := func(x int) int {
		for parent[x] != x {
			parent[x] = parent[parent[x]]
			x = parent[x]
		}
		return x
	}

	var pairs []overlapPair
	ix.facingPairs(func(a, b *entry) {
		if geom.PolygonOverlap(a.surf.Polygon, b.surf.Polygon) <= minOverlap {
			return
		}
		ra, rb := find(a.idx), find(b.idx)
		if ra != rb {
			parent[rb] = ra
		}
		pairs = append(pairs, overlapPair{
			a: a.idx, b: b.idx,
			congruent: a.surf.Polygon.Congruent(b.surf.Polygon, matchTolerance),
		})
	})

	partial := make(map[int]bool)
	for _, p := range pairs {
		if !p.congruent {
			partial[find(p.a)] = true
		}
	}
	if len(partial) == 0 {
		return nil
	}

	var roots []int
	clusters := make(map[int][]int)
	for i := range surfaces {
		r := find(i)
		if !partial[r] {
			continue
		}
		if _, ok := clusters[r]; !ok {
			roots = append(roots, r)
		}
		clusters[r] = append(clusters[r], i)
	}

	replace := make(map[int][]geom.Polygon)
	for _, r := range roots {
		if err := splitCluster(surfaces, clusters[r], replace); err != nil {
			return err
		}
	}

	idxs := make([]int, 0, len(replace))
	for i := range replace {
		idxs = append(idxs, i)
	}
	sort.Ints(idxs)
	for _, i := range idxs {
		s := surfaces[i]
		pieces, err := s.Space.Split(s, replace[i])
		if err != nil {
			return fmt.Errorf("reconcile: %w", err)
		}
		res.Split++
		res.Pieces += len(pieces)
	}
	return nil
}

// splitCluster overlays the members of one cluster in their shared plane
// and records the pieces of every member that does not survive whole. Each
// piece is keyed by the opposite-facing member covering it, so a member
// splits exactly along the outlines of the surfaces across from it.
func splitCluster(surfaces []*envelope.Surface, members []int, replace map[int][]geom.Polygon) error {
	frame := geom.NewFrame(surfaces[members[0]].Polygon.Plane())
	rings := make([]geom.Ring, len(members))
	flipped := make([]bool, len(members))
	var verts []geom.Point3
	for k, m := range members {
		poly := surfaces[m].Polygon
		r := frame.ProjectPolygon(poly)
		if r.SignedArea() < 0 {
			r = r.Reverse()
			flipped[k] = true
		}
		rings[k] = r
		verts = append(verts, poly...)
	}

	ov, err := geom.NewOverlay(rings, geom.Tolerance)
	if err != nil {
		return fmt.Errorf("reconcile %s: %w", clusterName(surfaces, members), err)
	}
	for k, m := range members {
		key := func(cover []int) int {
			for _, c := range cover {
				if c != k && flipped[c] != flipped[k] {
					return c
				}
			}
			return -1
		}
		pieces, err := ov.Partition(k, key)
		if err != nil {
			return fmt.Errorf("reconcile %s: %w", surfaces[m].Name, err)
		}
		if len(pieces) == 0 {
			return fmt.Errorf("reconcile %s: surface vanished in overlay", surfaces[m].Name)
		}
		if len(pieces) == 1 && pieces[0].Ring.Congruent(rings[k], matchTolerance) {
			continue
		}
		polys := make([]geom.Polygon, 0, len(pieces))
		for _, pc := range pieces {
			r := pc.Ring
			if flipped[k] {
				r = r.Reverse()
			}
			polys = append(polys, snap(frame.LiftRing(r), verts))
		}
		replace[m] = polys
	}
	return nil
}

// snap replaces lifted vertices with the original vertex they came from, so
// unchanged corners keep their exact coordinates.
func snap(p geom.Polygon, verts []geom.Point3) geom.Polygon {
	out := make([]geom.Point3, len(p))
	for i, q := range p {
		out[i] = q
		for _, v := range verts {
			if v.Near(q, matchTolerance) {
				out[i] = v
				break
			}
		}
	}
	return geom.NewPolygon(out...)
}

func clusterName(surfaces []*envelope.Surface, members []int) string {
	names := make([]string, len(members))
	for i, m := range members {
		names[i] = surfaces[m].Space.Name + "/" + surfaces[m].Name
	}
	return strings.Join(names, ", ")
}

// ---------------------------------------------------------------------------
// Matching pass
// ---------------------------------------------------------------------------

// match links congruent facing surfaces of different spaces. Surfaces that
// are already paired keep their partner.
func match(env *envelope.BuildingEnvelope, res *Result) {
	ix := newIndex(env.Surfaces())
	ix.facingPairs(func(a, b *entry) {
		sa, sb := a.surf, b.surf
		if sa.Adjacent != nil || sb.Adjacent != nil {
			return
		}
		if !sa.Polygon.Congruent(sb.Polygon, matchTolerance) {
			return
		}
		envelope.Link(sa, sb)
		res.Matched++
	})
}
