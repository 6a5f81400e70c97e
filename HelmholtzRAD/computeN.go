package HelmholtzRAD

import (
	"math"
	"math/cmplx"

	"github.com/notargets/gobem/geometry2D"
	"github.com/notargets/gobem/quadrature"
)

// ComputeN evaluates the hypersingular operator, the second derivative of the
// Green's function along the collocation normal vecp and the element normal.
// On the element the static kernel is not integrable directly; the element is
// closed with two cone patches meeting the symmetry axis and the divergent
// parts cancel between them. The dynamic on element value is assembled from
// the static one, the static single layer and a bounded correction kernel.
func ComputeN(k float64, p, vecp, qa, qb geometry2D.Vec2, pOnElement bool) (complex128, error) {
	if err := validate(k, p, qa, qb, pOnElement); err != nil {
		return 0, err
	}
	if err := validateNormal(vecp); err != nil {
		return 0, err
	}
	nSections := azimuthalSections(qa, qb)
	switch {
	case pOnElement && k == 0:
		segA, segB := coneSections(qa, qb)
		return staticNOn(p, vecp, qa, qb, nSections, segA, segB), nil
	case pOnElement:
		return dynamicNOn(k, p, vecp, qa, qb, nSections), nil
	case k == 0:
		return staticNOff(p, vecp, qa, qb, nSections), nil
	default:
		return dynamicNOff(k, p, vecp, qa, qb, nSections), nil
	}
}

// coneSections subdivides each cone patch in proportion to its slant length
// radius*sqrt(2) measured in element lengths.
func coneSections(qa, qb geometry2D.Vec2) (segA, segB int) {
	lenAB := qb.Sub(qa).Norm()
	segA = int(qa.R*math.Sqrt2/lenAB) + 1
	segB = int(qb.R*math.Sqrt2/lenAB) + 1
	return
}

// axialDirection is the sign of the axial drop from the cone base endpoint to
// the far endpoint. Ties take the supplied fallback so that for an element
// perpendicular to the axis the two cones still open in opposite directions.
func axialDirection(base, far geometry2D.Vec2, tie float64) float64 {
	switch d := base.Z - far.Z; {
	case d > 0:
		return 1
	case d < 0:
		return -1
	default:
		return tie
	}
}

// staticNOn regularizes the static hypersingular kernel with the cone
// construction: rays leave the element rim at each endpoint under 45 degrees
// and meet the symmetry axis at an apex displaced axially by the endpoint
// radius. Each patch carries the same second derivative kernel with the cone
// surface normal sqrt(1/2)*(cos, sin, direction); its sign makes the
// divergent parts of the two patches cancel against the element's own
// contribution, and the negated patch sum is the finite operator value. The
// direction choice is part of that cancellation and must not be altered.
func staticNOn(p, vecp, qa, qb geometry2D.Vec2, sections, segA, segB int) complex128 {
	var (
		p3    = p.Revolve(1, 0)
		vecp3 = vecp.Revolve(1, 0)
	)
	cone := func(direction float64) quadrature.Integrand {
		circle := quadrature.NewCircularIntegrator(sections)
		return func(x geometry2D.Vec2) complex128 {
			return ringAverage(circle, x, func(cosT, sinT float64) complex128 {
				var (
					nq3 = geometry2D.Vec3{
						X: math.Sqrt(0.5) * cosT,
						Y: math.Sqrt(0.5) * sinT,
						Z: math.Sqrt(0.5) * direction,
					}
					rr     = x.Revolve(cosT, sinT).Sub(p3)
					rr2    = rr.Dot(rr)
					dnpnq  = vecp3.Dot(nq3)
					rnprnq = vecp3.Dot(rr) * -rr.Dot(nq3) / rr2
				)
				return complex((dnpnq+3*rnprnq)/(math.Sqrt(rr2)*rr2), 0)
			})
		}
	}

	var (
		dirA = axialDirection(qa, qb, 1)
		tipA = geometry2D.Vec2{R: 0, Z: qa.Z + dirA*qa.R}
		valA = quadrature.ComplexQuadCone(cone(dirA), qa, tipA, segA)

		dirB = axialDirection(qb, qa, -1)
		tipB = geometry2D.Vec2{R: 0, Z: qb.Z + dirB*qb.R}
		valB = quadrature.ComplexQuadCone(cone(dirB), qb, tipB, segB)
	)
	return -(valA + valB)
}

// dynamicNOn subtracts the static 1/R and 1/R^2 parts from the dynamic
// kernel, integrates the bounded remainder along the generator split at p,
// and restores the subtracted parts through the static hypersingular and
// single layer values.
func dynamicNOn(k float64, p, vecp, qa, qb geometry2D.Vec2, sections int) complex128 {
	var (
		segA, segB = coneSections(qa, qb)
		g          = regularizedN(k, p, vecp, geometry2D.Normal2D(qa, qb), sections)
	)
	return staticNOn(p, vecp, qa, qb, sections, segA, segB) -
		complex(k*k/2, 0)*staticLOn(p, qa, qb, 2*sections) +
		quadrature.ComplexQuad(g, qa, p) + quadrature.ComplexQuad(g, p, qb)
}

// regularizedN builds the azimuthally averaged remainder of the dynamic
// hypersingular kernel after its static parts are removed. As R -> 0 the
// differences FPGR - FPGR0 and FPGRR - FPGRR0 decay like k^2 and the
// remainder stays bounded.
func regularizedN(k float64, p, vecp, vecq geometry2D.Vec2, sections int) quadrature.Integrand {
	var (
		circle = quadrature.NewCircularIntegrator(sections)
		p3     = p.Revolve(1, 0)
		vecp3  = vecp.Revolve(1, 0)
	)
	return func(x geometry2D.Vec2) complex128 {
		return ringAverage(circle, x, func(cosT, sinT float64) complex128 {
			var (
				nq3    = vecq.Revolve(cosT, sinT)
				rr     = x.Revolve(cosT, sinT).Sub(p3)
				rr2    = rr.Dot(rr)
				RR     = math.Sqrt(rr2)
				dnpnq  = vecp3.Dot(nq3)
				rnprnq = vecp3.Dot(rr) * -rr.Dot(nq3) / rr2
				rnpnq  = -(dnpnq + rnprnq) / RR

				ikr    = complex(0, k*RR)
				ekr    = cmplx.Exp(ikr)
				fpg0   = 1 / RR
				fpgr   = ekr / complex(rr2, 0) * (ikr - 1)
				fpgr0  = complex(-1/rr2, 0)
				fpgrr  = ekr * (2 - 2*ikr - complex(k*RR*k*RR, 0)) / complex(RR*rr2, 0)
				fpgrr0 = complex(2/(RR*rr2), 0)
			)
			return (fpgr-fpgr0)*complex(rnpnq, 0) +
				(fpgrr-fpgrr0)*complex(rnprnq, 0) +
				complex(k*k*fpg0/2, 0)
		})
	}
}

func staticNOff(p, vecp, qa, qb geometry2D.Vec2, sections int) complex128 {
	var (
		circle = quadrature.NewCircularIntegrator(sections)
		vecq   = geometry2D.Normal2D(qa, qb)
		p3     = p.Revolve(1, 0)
		vecp3  = vecp.Revolve(1, 0)
	)
	g := func(x geometry2D.Vec2) complex128 {
		return ringAverage(circle, x, func(cosT, sinT float64) complex128 {
			var (
				nq3    = vecq.Revolve(cosT, sinT)
				rr     = x.Revolve(cosT, sinT).Sub(p3)
				rr2    = rr.Dot(rr)
				RR     = math.Sqrt(rr2)
				dnpnq  = vecp3.Dot(nq3)
				rnprnq = vecp3.Dot(rr) * -rr.Dot(nq3) / rr2
				rnpnq  = -(dnpnq + rnprnq) / RR
			)
			return complex(-rnpnq/rr2+2*rnprnq/(RR*rr2), 0)
		})
	}
	return quadrature.ComplexQuad(g, qa, qb)
}

func dynamicNOff(k float64, p, vecp, qa, qb geometry2D.Vec2, sections int) complex128 {
	var (
		circle = quadrature.NewCircularIntegrator(sections)
		vecq   = geometry2D.Normal2D(qa, qb)
		p3     = p.Revolve(1, 0)
		vecp3  = vecp.Revolve(1, 0)
	)
	g := func(x geometry2D.Vec2) complex128 {
		return ringAverage(circle, x, func(cosT, sinT float64) complex128 {
			var (
				nq3    = vecq.Revolve(cosT, sinT)
				rr     = x.Revolve(cosT, sinT).Sub(p3)
				rr2    = rr.Dot(rr)
				RR     = math.Sqrt(rr2)
				dnpnq  = vecp3.Dot(nq3)
				rnprnq = vecp3.Dot(rr) * -rr.Dot(nq3) / rr2
				rnpnq  = -(dnpnq + rnprnq) / RR

				ikr   = complex(0, k*RR)
				ekr   = cmplx.Exp(ikr)
				fpgr  = ekr / complex(rr2, 0) * (ikr - 1)
				fpgrr = ekr * (2 - 2*ikr - complex(k*RR*k*RR, 0)) / complex(RR*rr2, 0)
			)
			return fpgr*complex(rnpnq, 0) + fpgrr*complex(rnprnq, 0)
		})
	}
	return quadrature.ComplexQuad(g, qa, qb)
}
