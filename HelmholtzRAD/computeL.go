package HelmholtzRAD

import (
	"math/cmplx"

	"github.com/notargets/gobem/geometry2D"
	"github.com/notargets/gobem/quadrature"
)

// ComputeL evaluates the single layer potential of a unit density over the
// ring surface generated by [qa, qb], observed at p. pOnElement selects the
// singular treatment for a collocation point interior to the element; with
// it set, p must lie strictly between qa and qb.
func ComputeL(k float64, p, qa, qb geometry2D.Vec2, pOnElement bool) (complex128, error) {
	if err := validate(k, p, qa, qb, pOnElement); err != nil {
		return 0, err
	}
	nSections := azimuthalSections(qa, qb)
	switch {
	case pOnElement && k == 0:
		return staticLOn(p, qa, qb, 2*nSections), nil
	case pOnElement:
		return dynamicLOn(k, p, qa, qb, nSections), nil
	case k == 0:
		return staticLOff(p, qa, qb, nSections), nil
	default:
		return dynamicLOff(k, p, qa, qb, nSections), nil
	}
}

// staticLOn integrates the 1/R kernel with the collocation point on the
// element: the generator is split at p and each half integrated with the
// endpoint clustering substitution, which absorbs the weak singularity left
// by the azimuthal average. The revolution uses doubled resolution since p
// sits on the ring itself.
func staticLOn(p, qa, qb geometry2D.Vec2, sections int) complex128 {
	var (
		circle = quadrature.NewCircularIntegrator(sections)
		p3     = p.Revolve(1, 0)
	)
	g := func(x geometry2D.Vec2) complex128 {
		return ringAverage(circle, x, func(cosT, sinT float64) complex128 {
			rr := x.Revolve(cosT, sinT).Sub(p3)
			return complex(1/rr.Norm(), 0)
		})
	}
	return quadrature.ComplexQuadSingular(g, p, qa) +
		quadrature.ComplexQuadSingular(g, p, qb)
}

// dynamicLOn adds the dynamic correction to the static on element value. The
// correction kernel (exp(ikR) - 1)/R is bounded as R -> 0, so a plain
// quadrature over the whole element suffices.
func dynamicLOn(k float64, p, qa, qb geometry2D.Vec2, sections int) complex128 {
	var (
		circle = quadrature.NewCircularIntegrator(2 * sections)
		p3     = p.Revolve(1, 0)
	)
	g := func(x geometry2D.Vec2) complex128 {
		return ringAverage(circle, x, func(cosT, sinT float64) complex128 {
			var (
				rr = x.Revolve(cosT, sinT).Sub(p3)
				RR = rr.Norm()
			)
			return (cmplx.Exp(complex(0, k*RR)) - 1) / complex(RR, 0)
		})
	}
	return staticLOn(p, qa, qb, 2*sections) + quadrature.ComplexQuad(g, qa, qb)
}

func staticLOff(p, qa, qb geometry2D.Vec2, sections int) complex128 {
	var (
		circle = quadrature.NewCircularIntegrator(sections)
		p3     = p.Revolve(1, 0)
	)
	g := func(x geometry2D.Vec2) complex128 {
		return ringAverage(circle, x, func(cosT, sinT float64) complex128 {
			rr := x.Revolve(cosT, sinT).Sub(p3)
			return complex(1/rr.Norm(), 0)
		})
	}
	return quadrature.ComplexQuad(g, qa, qb)
}

func dynamicLOff(k float64, p, qa, qb geometry2D.Vec2, sections int) complex128 {
	var (
		circle = quadrature.NewCircularIntegrator(sections)
		p3     = p.Revolve(1, 0)
	)
	g := func(x geometry2D.Vec2) complex128 {
		return ringAverage(circle, x, func(cosT, sinT float64) complex128 {
			var (
				rr = x.Revolve(cosT, sinT).Sub(p3)
				RR = rr.Norm()
			)
			return cmplx.Exp(complex(0, k*RR)) / complex(RR, 0)
		})
	}
	return quadrature.ComplexQuad(g, qa, qb)
}
