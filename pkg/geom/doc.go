// Package geom is the explicit polygon kernel behind envelope generation.
// It holds 3D points and planar polygons, per-plane 2D frames, ear-clipping
// triangulation, convex clipping, and a half-edge overlay that splits
// coplanar polygons along each other's boundaries.
package geom
