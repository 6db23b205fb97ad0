package mercator

import (
	"fmt"
	"math"
)

// eps10 is the distance from either pole, in radians, inside which the
// forward projection refuses to evaluate.
const eps10 = 1.0e-10

func atPole(phi float64) bool {
	return math.Abs(math.Abs(phi)-math.Pi/2) <= eps10 || !(math.Abs(phi) < math.Pi/2)
}

// The formulas below work on a unit semi-major axis. lam is relative to the
// central meridian.

func (m *Mercator) ellipsoidalForward(lam, phi float64) (x, y float64, err error) {
	if atPole(phi) {
		return 0, 0, ErrToleranceCondition
	}
	x = m.k0 * lam
	y = -m.k0 * math.Log(tsfn(phi, math.Sin(phi), m.ellipsoid.e))
	return x, y, nil
}

func (m *Mercator) ellipsoidalInverse(x, y float64) (lam, phi float64, err error) {
	phi, err = phi2(math.Exp(-y/m.k0), m.ellipsoid.e)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %v", ErrToleranceCondition, err)
	}
	lam = x / m.k0
	return lam, phi, nil
}

func (m *Mercator) sphericalForward(lam, phi float64) (x, y float64, err error) {
	if atPole(phi) {
		return 0, 0, ErrToleranceCondition
	}
	x = m.k0 * lam
	y = m.k0 * logTanHalfPlusQuarterPi(phi)
	return x, y, nil
}

func (m *Mercator) sphericalInverse(x, y float64) (lam, phi float64, err error) {
	// π/2 - 2 atan(exp(-y/k0)) is the Gudermannian of y/k0.
	phi = halfPiMinusTwoAtanExp(-y / m.k0)
	lam = x / m.k0
	return lam, phi, nil
}
