// Package acoustics converts between the quantities a Helmholtz boundary
// solver works in, acoustic potentials and wavenumbers, and the quantities
// measurements are reported in, pressures, intensities and decibel levels.
package acoustics

import (
	"math"
	"math/cmplx"
)

// referencePressure is the hearing threshold 20 uPa, the 0 dB point.
const referencePressure = 2.e-5

// FrequencyToWavenumber converts a frequency in Hz to the wavenumber
// k = 2 pi f / c.
func (m Medium) FrequencyToWavenumber(f float64) float64 {
	return 2 * math.Pi * f / m.SpeedOfSound
}

// WavenumberToFrequency inverts FrequencyToWavenumber.
func (m Medium) WavenumberToFrequency(k float64) float64 {
	return 0.5 * k * m.SpeedOfSound / math.Pi
}

// SoundPressure turns an acoustic potential phi into the complex sound
// pressure i rho omega exp(-i omega t) phi at time t, with omega = k c.
func (m Medium) SoundPressure(k float64, phi complex128, t float64) complex128 {
	omega := k * m.SpeedOfSound
	return complex(0, m.Density*omega) *
		cmplx.Exp(complex(0, -omega*t)) * phi
}

// SoundMagnitude expresses a complex pressure amplitude as a level in dB
// relative to the hearing threshold.
func SoundMagnitude(pressure complex128) float64 {
	return 20 * math.Log10(cmplx.Abs(pressure)/referencePressure)
}

// AcousticIntensity is the time averaged intensity of a harmonic pressure
// and particle velocity pair.
func AcousticIntensity(pressure, velocity complex128) float64 {
	return 0.5 * real(cmplx.Conj(pressure)*velocity)
}

// SignalPhase returns the phase of the pressure signal in radians.
func SignalPhase(pressure complex128) float64 {
	return math.Atan2(imag(pressure), real(pressure))
}
