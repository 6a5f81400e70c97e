package HelmholtzRAD

import "errors"

var (
	// ErrDegenerateGeometry reports element or collocation geometry the
	// kernels cannot evaluate: a zero length element, a negative radial
	// coordinate, a collocation point at an element endpoint, or a
	// collocation point lying on the element without the on element flag.
	ErrDegenerateGeometry = errors.New("HelmholtzRAD: degenerate geometry")

	// ErrInvalidWavenumber reports a negative or non finite wavenumber.
	ErrInvalidWavenumber = errors.New("HelmholtzRAD: invalid wavenumber")
)
