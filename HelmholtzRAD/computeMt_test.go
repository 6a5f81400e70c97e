package HelmholtzRAD

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/notargets/gobem/geometry2D"
)

func TestComputeMtOffElement(t *testing.T) {
	var (
		qa   = geometry2D.Vec2{R: 1, Z: 0}
		qb   = geometry2D.Vec2{R: 2, Z: 0}
		p    = geometry2D.Vec2{R: 5, Z: 3}
		vecp = geometry2D.Vec2{R: 0.6, Z: 0.8}
		p3   = p.Revolve(1, 0)
		vp3  = vecp.Revolve(1, 0)
	)
	ref := refKernelIntegral(func(q geometry2D.Vec2, cosT, sinT float64) float64 {
		rr := q.Revolve(cosT, sinT).Sub(p3)
		return rr.Dot(vp3) / (rr.Norm() * rr.Dot(rr))
	}, qa, qb)
	val, err := ComputeMt(0, p, vecp, qa, qb, false)
	assert.NoError(t, err)
	assert.InDelta(t, ref, real(val), 1.e-8)
	assert.InDelta(t, 0, imag(val), 1.e-15)
}

func TestComputeMtDerivativeOfL(t *testing.T) {
	// the adjoint double layer is the derivative of the single layer along
	// the collocation normal; a centered difference of ComputeL over the
	// same quadrature nodes must reproduce it in both wavenumber branches
	var (
		qa   = geometry2D.Vec2{R: 1, Z: 0}
		qb   = geometry2D.Vec2{R: 2, Z: 0}
		p    = geometry2D.Vec2{R: 5, Z: 3}
		vecp = geometry2D.Vec2{R: 0.6, Z: 0.8}
		eps  = 1.e-4
	)
	for _, k := range []float64{0, 2} {
		lp, err := ComputeL(k, p.Add(vecp.Scale(eps)), qa, qb, false)
		assert.NoError(t, err)
		lm, err := ComputeL(k, p.Sub(vecp.Scale(eps)), qa, qb, false)
		assert.NoError(t, err)
		fd := (lp - lm) / complex(2*eps, 0)

		val, err := ComputeMt(k, p, vecp, qa, qb, false)
		assert.NoError(t, err)
		assertCmplxNear(t, fd, val, 1.e-5)
	}
}

func TestComputeMtNormalLinearity(t *testing.T) {
	// the kernel projects onto the collocation normal, so scaling the normal
	// scales the value
	var (
		qa   = geometry2D.Vec2{R: 1, Z: 0}
		qb   = geometry2D.Vec2{R: 2, Z: 0}
		p    = geometry2D.Vec2{R: 3, Z: 1}
		vecp = geometry2D.Vec2{R: 0.6, Z: 0.8}
	)
	one, err := ComputeMt(2, p, vecp, qa, qb, false)
	assert.NoError(t, err)
	two, err := ComputeMt(2, p, vecp.Scale(2), qa, qb, false)
	assert.NoError(t, err)
	assertCmplxNear(t, 2*one, two, 1.e-12)
}

func TestComputeMtOnElement(t *testing.T) {
	var (
		qa   = geometry2D.Vec2{R: 1, Z: 0.2}
		qb   = geometry2D.Vec2{R: 2, Z: -0.2}
		p    = geometry2D.Vec2{R: 1.5, Z: 0}
		vecp = geometry2D.Normal2D(qa, qb)
	)
	static, err := ComputeMt(0, p, vecp, qa, qb, true)
	assert.NoError(t, err)
	dynamic, err := ComputeMt(1.e-6, p, vecp, qa, qb, true)
	assert.NoError(t, err)
	assertCmplxNear(t, static, dynamic, 1.e-3)
}
