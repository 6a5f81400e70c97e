package quadrature

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// CircularIntegrator approximates the half revolution integral
// int_0^pi f(cos theta, sin theta) dtheta by composite Gauss Legendre
// quadrature over n equal panels. Axisymmetric kernels are even in theta, so
// the half circle carries the full revolution up to a factor of two which the
// kernel evaluators fold into their own scaling.
type CircularIntegrator struct {
	segments int
	rotation *mat.Dense // 8n rows of (cos theta, sin theta)
}

// NewCircularIntegrator precomputes the rotation table for n panels spanning
// [0, pi]. Panics if n < 1; panel counts are derived from element geometry
// and are always positive.
func NewCircularIntegrator(n int) (c *CircularIntegrator) {
	if n < 1 {
		panic("quadrature: circular integrator needs at least one panel")
	}
	var (
		nSamples = n * len(gaussSamples)
		factor   = math.Pi / float64(n)
	)
	c = &CircularIntegrator{
		segments: n,
		rotation: mat.NewDense(nSamples, 2, nil),
	}
	for i := 0; i < nSamples; i++ {
		var (
			panel = i / len(gaussSamples)
			s     = gaussSamples[i%len(gaussSamples)][0]
			arc   = factor * (float64(panel) + s)
		)
		c.rotation.Set(i, 0, math.Cos(arc))
		c.rotation.Set(i, 1, math.Sin(arc))
	}
	return
}

// Integrate sums weight times f over the precomputed rotation pairs and
// scales by the panel width pi/n.
func (c *CircularIntegrator) Integrate(f func(cosTheta, sinTheta float64) complex128) (sum complex128) {
	rows, _ := c.rotation.Dims()
	for i := 0; i < rows; i++ {
		var (
			row = c.rotation.RawRowView(i)
			w   = gaussSamples[i%len(gaussSamples)][1]
		)
		sum += complex(w, 0) * f(row[0], row[1])
	}
	return sum * complex(math.Pi/float64(c.segments), 0)
}
