// Package HelmholtzRAD evaluates the singular boundary integral operators of
// the axisymmetric (RAD) Helmholtz problem: the single layer L, double layer
// M, its adjoint Mt and the hypersingular N, each integrated over the ring
// surface obtained by revolving a straight generator segment [qa, qb] about
// the Z axis. Kernels embed the free space Green's function
// G = exp(ikR)/(4 pi R), reducing to the Laplace kernel 1/(4 pi R) in the
// static case k = 0.
//
// All quadrature composes one pinned 8 point Gauss Legendre rule: plain
// panels for regular integrands, an endpoint clustering substitution where
// the collocation point meets the integration path, and cone patches from
// the element rim to the symmetry axis for the static hypersingular case.
package HelmholtzRAD

import (
	"fmt"
	"math"

	"github.com/notargets/gobem/geometry2D"
	"github.com/notargets/gobem/quadrature"
)

// azimuthalSections balances the revolution quadrature against the generator
// resolution: one panel per arc length comparable to the element length,
// measured at the element mid radius, and never fewer than one.
func azimuthalSections(qa, qb geometry2D.Vec2) int {
	var (
		q     = qa.Add(qb).Scale(0.5)
		lenAB = qb.Sub(qa).Norm()
	)
	return 1 + int(q.R*math.Pi/lenAB)
}

// ringAverage scales the half circle integral of kern at the generator point
// x by x.R/(2 pi). Together with the azimuthal symmetry of the kernels this
// turns the surface integral of G style kernels, 1/(4 pi) included, into a
// line integral along the generator.
func ringAverage(circle *quadrature.CircularIntegrator, x geometry2D.Vec2,
	kern func(cosTheta, sinTheta float64) complex128) complex128 {
	return circle.Integrate(kern) * complex(x.R/(2*math.Pi), 0)
}

// validate rejects wavenumbers and geometries the quadrature cannot handle.
// The checks are shared by all four operators; Mt and N additionally validate
// the collocation normal.
func validate(k float64, p, qa, qb geometry2D.Vec2, pOnElement bool) error {
	if k < 0 || math.IsNaN(k) || math.IsInf(k, 0) {
		return fmt.Errorf("%w: k = %v", ErrInvalidWavenumber, k)
	}
	if qa.R < 0 || qb.R < 0 || p.R < 0 {
		return fmt.Errorf("%w: negative radial coordinate", ErrDegenerateGeometry)
	}
	lenAB := qb.Sub(qa).Norm()
	if lenAB <= geometry2D.GeomTol*(qa.Norm()+qb.Norm()+1) {
		return fmt.Errorf("%w: zero length element [%v %v]", ErrDegenerateGeometry, qa, qb)
	}
	if pOnElement {
		if p.Sub(qa).Norm() <= geometry2D.GeomTol*lenAB ||
			p.Sub(qb).Norm() <= geometry2D.GeomTol*lenAB {
			return fmt.Errorf("%w: collocation point %v at element endpoint", ErrDegenerateGeometry, p)
		}
	} else if geometry2D.DistToSegment(p, qa, qb) <= geometry2D.GeomTol*lenAB {
		return fmt.Errorf("%w: collocation point %v on element treated as off element", ErrDegenerateGeometry, p)
	}
	return nil
}

func validateNormal(vecp geometry2D.Vec2) error {
	if vecp.Norm() <= geometry2D.GeomTol {
		return fmt.Errorf("%w: zero collocation normal", ErrDegenerateGeometry)
	}
	return nil
}
