package geometry2D

// Normal2D returns the unit normal of the generator segment [qa, qb], the
// direction qa->qb rotated a quarter turn counterclockwise in the (R, Z)
// plane. When the generator is traversed with the body on its right this is
// the outward normal of the revolved surface.
func Normal2D(qa, qb Vec2) Vec2 {
	var (
		vec = qb.Sub(qa)
		l   = vec.Norm()
	)
	return Vec2{-vec.Z / l, vec.R / l}
}

// DistToSegment returns the distance from p to the closest point of the
// segment [a, b] in the generator plane.
func DistToSegment(p, a, b Vec2) float64 {
	var (
		vec = b.Sub(a)
		w   = p.Sub(a)
		l2  = vec.Dot(vec)
	)
	if l2 == 0 {
		return w.Norm()
	}
	t := w.Dot(vec) / l2
	switch {
	case t < 0:
		t = 0
	case t > 1:
		t = 1
	}
	return p.Sub(a.Add(vec.Scale(t))).Norm()
}
