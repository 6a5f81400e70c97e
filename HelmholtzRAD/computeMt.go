package HelmholtzRAD

import (
	"math/cmplx"

	"github.com/notargets/gobem/geometry2D"
	"github.com/notargets/gobem/quadrature"
)

// ComputeMt evaluates the adjoint double layer potential, the derivative of
// the Green's function along the collocation normal vecp. The collocation
// point sits in the theta = 0 generator plane, so vecp enters as the fixed
// 3-space vector (vecp.R, 0, vecp.Z) rather than revolving with the ring.
// Both wavenumber branches project onto that same vector.
func ComputeMt(k float64, p, vecp, qa, qb geometry2D.Vec2, pOnElement bool) (complex128, error) {
	if err := validate(k, p, qa, qb, pOnElement); err != nil {
		return 0, err
	}
	if err := validateNormal(vecp); err != nil {
		return 0, err
	}
	var (
		nSections = azimuthalSections(qa, qb)
		g         quadrature.Integrand
	)
	if k == 0 {
		g = staticMt(p, vecp, nSections)
	} else {
		g = dynamicMt(k, p, vecp, nSections)
	}
	if pOnElement {
		return quadrature.ComplexQuad(g, qa, p) + quadrature.ComplexQuad(g, p, qb), nil
	}
	return quadrature.ComplexQuad(g, qa, qb), nil
}

func staticMt(p, vecp geometry2D.Vec2, sections int) quadrature.Integrand {
	var (
		circle = quadrature.NewCircularIntegrator(sections)
		p3     = p.Revolve(1, 0)
		vecp3  = vecp.Revolve(1, 0)
	)
	return func(x geometry2D.Vec2) complex128 {
		return ringAverage(circle, x, func(cosT, sinT float64) complex128 {
			rr := x.Revolve(cosT, sinT).Sub(p3)
			return complex(rr.Dot(vecp3)/(rr.Norm()*rr.Dot(rr)), 0)
		})
	}
}

func dynamicMt(k float64, p, vecp geometry2D.Vec2, sections int) quadrature.Integrand {
	var (
		circle = quadrature.NewCircularIntegrator(sections)
		p3     = p.Revolve(1, 0)
		vecp3  = vecp.Revolve(1, 0)
	)
	return func(x geometry2D.Vec2) complex128 {
		return ringAverage(circle, x, func(cosT, sinT float64) complex128 {
			var (
				rr  = x.Revolve(cosT, sinT).Sub(p3)
				RR  = rr.Norm()
				ikr = complex(0, k*RR)
			)
			return -(ikr - 1) * cmplx.Exp(ikr) *
				complex(rr.Dot(vecp3)/(RR*rr.Dot(rr)), 0)
		})
	}
}
