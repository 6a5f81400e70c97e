package geometry2D

import "math"

// GeomTol is the relative tolerance below which geometric quantities are
// considered degenerate
const GeomTol = 1.e-12

// Vec2 is a point or direction in the generator (meridian) half plane of an
// axisymmetric body: R is the distance from the symmetry axis, Z the axial
// coordinate. Solid geometry is recovered by revolving the generator about
// the axis.
type Vec2 struct {
	R, Z float64
}

func (a Vec2) Add(b Vec2) Vec2 {
	return Vec2{a.R + b.R, a.Z + b.Z}
}

func (a Vec2) Sub(b Vec2) Vec2 {
	return Vec2{a.R - b.R, a.Z - b.Z}
}

func (a Vec2) Scale(c float64) Vec2 {
	return Vec2{c * a.R, c * a.Z}
}

func (a Vec2) Dot(b Vec2) float64 {
	return a.R*b.R + a.Z*b.Z
}

func (a Vec2) Norm() float64 {
	return math.Hypot(a.R, a.Z)
}

// Revolve places a generator plane vector into 3-space at the revolution
// angle theta, supplied as its rotation pair (cos theta, sin theta):
// (R, Z) becomes (R cos, R sin, Z). For a position vector this sweeps the
// point around the axis; for the generator normal it yields the surface
// normal of the revolved ring at that angle.
func (a Vec2) Revolve(cosTheta, sinTheta float64) Vec3 {
	return Vec3{a.R * cosTheta, a.R * sinTheta, a.Z}
}

// Vec3 is a point or direction in the revolved 3-space, Z being the
// symmetry axis.
type Vec3 struct {
	X, Y, Z float64
}

func (a Vec3) Sub(b Vec3) Vec3 {
	return Vec3{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

func (a Vec3) Dot(b Vec3) float64 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

func (a Vec3) Norm() float64 {
	return math.Sqrt(a.Dot(a))
}
