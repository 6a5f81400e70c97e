package quadrature

import "github.com/notargets/gobem/geometry2D"

// gaussSamples is the 8 point Gauss Legendre rule on the unit interval,
// stored as (abscissa, weight) pairs. The values are pinned to keep results
// bit for bit reproducible across implementations and are deliberately not
// configurable; every line and azimuthal integral in the package composes
// panels of this one rule.
var gaussSamples = [8][2]float64{
	{0.980144928249, 5.061426814519E-02},
	{0.898333238707, 0.111190517227},
	{0.762766204958, 0.156853322939},
	{0.591717321248, 0.181341891689},
	{0.408282678752, 0.181341891689},
	{0.237233795042, 0.156853322939},
	{0.101666761293, 0.111190517227},
	{1.985507175123E-02, 5.061426814519E-02},
}

// Integrand is a complex valued field sampled along a generator plane path.
type Integrand func(x geometry2D.Vec2) complex128

// ComplexQuad integrates a regular integrand along the straight segment
// [start, end] with the fixed 8 point rule.
func ComplexQuad(f Integrand, start, end geometry2D.Vec2) (sum complex128) {
	vec := end.Sub(start)
	for _, s := range gaussSamples {
		sum += complex(s[1], 0) * f(start.Add(vec.Scale(s[0])))
	}
	return sum * complex(vec.Norm(), 0)
}

// ComplexQuadSingular integrates an integrand with an integrable singularity
// at start along [start, end]. The path parameter is substituted by its
// square, x(s) = start + s^2 (end - start), so the Jacobian 2s supplies a
// factor that vanishes at the singular endpoint and weak singularities of
// 1/R type are integrated accurately by the same 8 point rule.
func ComplexQuadSingular(f Integrand, start, end geometry2D.Vec2) (sum complex128) {
	vec := end.Sub(start)
	for _, s := range gaussSamples {
		sum += complex(s[1]*s[0], 0) * f(start.Add(vec.Scale(s[0]*s[0])))
	}
	return sum * complex(2*vec.Norm(), 0)
}

// ComplexQuadCone integrates along [start, end] split into segments equal
// subsegments, applying ComplexQuad on each. Cone patches regularizing the
// hypersingular kernel need the extra resolution because their integrand
// varies strongly along the slant. Panics if segments < 1; callers derive
// the count from element geometry and it is always positive.
func ComplexQuadCone(f Integrand, start, end geometry2D.Vec2, segments int) (sum complex128) {
	if segments < 1 {
		panic("quadrature: cone quadrature needs at least one segment")
	}
	delta := end.Sub(start).Scale(1 / float64(segments))
	for i := 0; i < segments; i++ {
		a := start.Add(delta.Scale(float64(i)))
		sum += ComplexQuad(f, a, a.Add(delta))
	}
	return
}
