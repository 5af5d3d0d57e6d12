package geom

import (
	"fmt"
	"math"
)

// Tolerance is the distance in feet under which two points are treated as
// the same point.
const Tolerance = 1e-5

// AreaTolerance is the area in square feet under which a region is empty.
const AreaTolerance = 1e-6

// Point3 is an immutable point (or vector) in building coordinates, in feet.
// X runs along the front facade, Y from front to back, Z up.
type Point3 struct {
	X, Y, Z float64
}

// Pt is shorthand for Point3{x, y, z}.
func Pt(x, y, z float64) Point3 {
	return Point3{X: x, Y: y, Z: z}
}

func (p Point3) Add(q Point3) Point3 { return Point3{p.X + q.X, p.Y + q.Y, p.Z + q.Z} }
func (p Point3) Sub(q Point3) Point3 { return Point3{p.X - q.X, p.Y - q.Y, p.Z - q.Z} }
func (p Point3) Scale(k float64) Point3 {
	return Point3{p.X * k, p.Y * k, p.Z * k}
}

// Dot returns the scalar product.
func (p Point3) Dot(q Point3) float64 { return p.X*q.X + p.Y*q.Y + p.Z*q.Z }

// Cross returns the vector product p x q.
func (p Point3) Cross(q Point3) Point3 {
	return Point3{
		p.Y*q.Z - p.Z*q.Y,
		p.Z*q.X - p.X*q.Z,
		p.X*q.Y - p.Y*q.X,
	}
}

// Length returns the Euclidean norm.
func (p Point3) Length() float64 { return math.Sqrt(p.Dot(p)) }

// Normalize returns the unit vector along p, or the zero vector.
func (p Point3) Normalize() Point3 {
	l := p.Length()
	if l == 0 {
		return Point3{}
	}
	return p.Scale(1 / l)
}

// Near reports whether p and q are within tol of each other.
func (p Point3) Near(q Point3, tol float64) bool {
	return p.Sub(q).Length() <= tol
}

func (p Point3) String() string {
	return fmt.Sprintf("(%.4f, %.4f, %.4f)", p.X, p.Y, p.Z)
}

// Point2 is a point in a plane-local or plan coordinate frame.
type Point2 struct {
	X, Y float64
}

// P2 is shorthand for Point2{x, y}.
func P2(x, y float64) Point2 {
	return Point2{X: x, Y: y}
}

func (p Point2) Add(q Point2) Point2 { return Point2{p.X + q.X, p.Y + q.Y} }
func (p Point2) Sub(q Point2) Point2 { return Point2{p.X - q.X, p.Y - q.Y} }
func (p Point2) Scale(k float64) Point2 { return Point2{p.X * k, p.Y * k} }
func (p Point2) Dot(q Point2) float64 { return p.X*q.X + p.Y*q.Y }
func (p Point2) Cross(q Point2) float64 { return p.X*q.Y - p.Y*q.X }
func (p Point2) Length() float64 { return math.Hypot(p.X, p.Y) }
func (p Point2) Near(q Point2, tol float64) bool {
	return p.Sub(q).Length() <= tol
}

// Less orders points lexicographically by X then Y.
func (p Point2) Less(q Point2) bool {
	if p.X != q.X {
		return p.X < q.X
	}
	return p.Y < q.Y
}

// At3 lifts a plan point to elevation z.
func (p Point2) At3(z float64) Point3 {
	return Point3{p.X, p.Y, z}
}
