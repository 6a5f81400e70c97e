package geometry2D

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVec2Ops(t *testing.T) {
	var (
		a = Vec2{3, 4}
		b = Vec2{1, -2}
	)
	assert.Equal(t, Vec2{4, 2}, a.Add(b))
	assert.Equal(t, Vec2{2, 6}, a.Sub(b))
	assert.Equal(t, Vec2{6, 8}, a.Scale(2))
	assert.Equal(t, -5., a.Dot(b))
	assert.Equal(t, 5., a.Norm())
}

func TestRevolve(t *testing.T) {
	var (
		a   = Vec2{2, 5}
		arc = math.Pi / 3
	)
	q3 := a.Revolve(math.Cos(arc), math.Sin(arc))
	assert.InDelta(t, 2*math.Cos(arc), q3.X, 1.e-15)
	assert.InDelta(t, 2*math.Sin(arc), q3.Y, 1.e-15)
	assert.Equal(t, 5., q3.Z)
	// revolution preserves the radial distance and the axial coordinate
	assert.InDelta(t, a.R, math.Hypot(q3.X, q3.Y), 1.e-15)
	// theta = 0 embeds the generator plane itself
	assert.Equal(t, Vec3{2, 0, 5}, a.Revolve(1, 0))
}

func TestVec3Ops(t *testing.T) {
	var (
		a = Vec3{1, 2, 3}
		b = Vec3{-1, 0, 2}
	)
	assert.Equal(t, Vec3{2, 2, 1}, a.Sub(b))
	assert.Equal(t, 5., a.Dot(b))
	assert.InDelta(t, math.Sqrt(14), a.Norm(), 1.e-15)
}

func TestNormal2D(t *testing.T) {
	// generator running parallel to the axis in the -Z direction, as on the
	// equator of a sphere traversed north to south: normal points radially
	// outward
	n := Normal2D(Vec2{1, 0.1}, Vec2{1, -0.1})
	assert.InDelta(t, 1, n.R, 1.e-15)
	assert.InDelta(t, 0, n.Z, 1.e-15)

	// reversing the traversal flips the normal
	n = Normal2D(Vec2{1, -0.1}, Vec2{1, 0.1})
	assert.InDelta(t, -1, n.R, 1.e-15)

	// unit length for an oblique segment
	n = Normal2D(Vec2{0.5, 1}, Vec2{2, -1})
	assert.InDelta(t, 1, n.Norm(), 1.e-15)
	// normal is orthogonal to the segment
	assert.InDelta(t, 0, n.Dot(Vec2{2, -1}.Sub(Vec2{0.5, 1})), 1.e-15)
}

func TestDistToSegment(t *testing.T) {
	var (
		a = Vec2{0, 0}
		b = Vec2{2, 0}
	)
	// projection interior to the segment
	assert.InDelta(t, 1, DistToSegment(Vec2{1, 1}, a, b), 1.e-15)
	// projection clamped to the endpoints
	assert.InDelta(t, math.Sqrt2, DistToSegment(Vec2{-1, 1}, a, b), 1.e-15)
	assert.InDelta(t, 2, DistToSegment(Vec2{4, 0}, a, b), 1.e-15)
	// point on the segment
	assert.Equal(t, 0., DistToSegment(Vec2{0.5, 0}, a, b))
	// degenerate segment
	assert.InDelta(t, 5, DistToSegment(Vec2{3, 4}, a, a), 1.e-15)
}
