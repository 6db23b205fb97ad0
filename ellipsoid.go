package mercator

import (
	"errors"
	"fmt"
	"math"
)

// Ellipsoid parameter errors.
var (
	ErrSemiMajorAxis = errors.New("semi-major axis must be greater than zero")
	ErrFlattening    = errors.New("flattening must be in the range [0, 1)")
	ErrRadius        = errors.New("sphere radius must be greater than zero")
)

// Ellipsoid is a reference ellipsoid of revolution. A zero flattening
// describes a sphere.
type Ellipsoid struct {
	semiMajorAxis float64
	semiMinorAxis float64
	flattening    float64

	es float64 // Eccentricity squared
	e  float64 // Eccentricity
}

// WGS84 is the World Geodetic System 1984 ellipsoid.
var WGS84 = deriveEllipsoidParameters(6378137, 1/298.257223563)

// NewEllipsoid constructs an ellipsoid from its semi-major axis (meters) and
// flattening.
func NewEllipsoid(semiMajorAxis, flattening float64) (Ellipsoid, error) {
	if !(semiMajorAxis > 0) || math.IsInf(semiMajorAxis, 0) {
		return Ellipsoid{}, fmt.Errorf("%w: %g", ErrSemiMajorAxis, semiMajorAxis)
	}
	if !(flattening >= 0 && flattening < 1) {
		return Ellipsoid{}, fmt.Errorf("%w: %g", ErrFlattening, flattening)
	}
	return deriveEllipsoidParameters(semiMajorAxis, flattening), nil
}

// NewSphere constructs a sphere of the given radius (meters).
func NewSphere(radius float64) (Ellipsoid, error) {
	if !(radius > 0) || math.IsInf(radius, 0) {
		return Ellipsoid{}, fmt.Errorf("%w: %g", ErrRadius, radius)
	}
	return deriveEllipsoidParameters(radius, 0), nil
}

// deriveEllipsoidParameters fills in the shape constants that depend on the
// semi-major axis and flattening. Inputs are assumed to be validated.
func deriveEllipsoidParameters(a, f float64) Ellipsoid {
	es := 2*f - f*f
	return Ellipsoid{
		semiMajorAxis: a,
		semiMinorAxis: a * (1 - f),
		flattening:    f,
		es:            es,
		e:             math.Sqrt(es),
	}
}

// SemiMajorAxis returns the equatorial radius in meters.
func (el Ellipsoid) SemiMajorAxis() float64 { return el.semiMajorAxis }

// SemiMinorAxis returns the polar radius in meters.
func (el Ellipsoid) SemiMinorAxis() float64 { return el.semiMinorAxis }

// Flattening returns (a-b)/a.
func (el Ellipsoid) Flattening() float64 { return el.flattening }

// Eccentricity returns the first eccentricity e.
func (el Ellipsoid) Eccentricity() float64 { return el.e }

// EccentricitySquared returns e².
func (el Ellipsoid) EccentricitySquared() float64 { return el.es }

// IsSphere reports whether the ellipsoid has zero eccentricity.
func (el Ellipsoid) IsSphere() bool { return el.es == 0 }

// String returns a short description of the ellipsoid.
func (el Ellipsoid) String() string {
	if el.IsSphere() {
		return fmt.Sprintf("sphere(R=%g)", el.semiMajorAxis)
	}
	return fmt.Sprintf("ellipsoid(a=%g, 1/f=%g)", el.semiMajorAxis, 1/el.flattening)
}
