package HelmholtzRAD

import (
	"math/cmplx"

	"github.com/notargets/gobem/geometry2D"
	"github.com/notargets/gobem/quadrature"
)

// ComputeM evaluates the double layer potential, the derivative of the
// Green's function along the element normal at the integration point. The
// normal is Normal2D(qa, qb) revolved with the ring, so element orientation
// fixes the sign. The azimuthal average leaves a bounded integrand even on
// the element; splitting the generator at p keeps the quadrature clustered
// where the kernel varies most.
func ComputeM(k float64, p, qa, qb geometry2D.Vec2, pOnElement bool) (complex128, error) {
	if err := validate(k, p, qa, qb, pOnElement); err != nil {
		return 0, err
	}
	var (
		nSections = azimuthalSections(qa, qb)
		vecq      = geometry2D.Normal2D(qa, qb)
		g         quadrature.Integrand
	)
	if k == 0 {
		g = staticM(p, vecq, nSections)
	} else {
		g = dynamicM(k, p, vecq, nSections)
	}
	if pOnElement {
		return quadrature.ComplexQuad(g, qa, p) + quadrature.ComplexQuad(g, p, qb), nil
	}
	return quadrature.ComplexQuad(g, qa, qb), nil
}

func staticM(p, vecq geometry2D.Vec2, sections int) quadrature.Integrand {
	var (
		circle = quadrature.NewCircularIntegrator(sections)
		p3     = p.Revolve(1, 0)
	)
	return func(x geometry2D.Vec2) complex128 {
		return ringAverage(circle, x, func(cosT, sinT float64) complex128 {
			var (
				rr  = x.Revolve(cosT, sinT).Sub(p3)
				nq3 = vecq.Revolve(cosT, sinT)
			)
			return complex(-rr.Dot(nq3)/(rr.Norm()*rr.Dot(rr)), 0)
		})
	}
}

func dynamicM(k float64, p, vecq geometry2D.Vec2, sections int) quadrature.Integrand {
	var (
		circle = quadrature.NewCircularIntegrator(sections)
		p3     = p.Revolve(1, 0)
	)
	return func(x geometry2D.Vec2) complex128 {
		return ringAverage(circle, x, func(cosT, sinT float64) complex128 {
			var (
				rr  = x.Revolve(cosT, sinT).Sub(p3)
				nq3 = vecq.Revolve(cosT, sinT)
				RR  = rr.Norm()
				ikr = complex(0, k*RR)
			)
			return (ikr - 1) * cmplx.Exp(ikr) *
				complex(rr.Dot(nq3)/(RR*rr.Dot(rr)), 0)
		})
	}
}
