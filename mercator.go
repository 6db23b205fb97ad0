package mercator

import (
	"errors"
	"fmt"
	"math"

	"github.com/golang/geo/r2"
	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
)

// Projection setup errors.
var (
	ErrLatTSOutOfRange  = errors.New("latitude of true scale out of range")
	ErrScaleFactor      = errors.New("scale factor must be greater than zero")
	ErrCentralMeridian  = errors.New("central meridian out of range")
	ErrMaxLatitude      = errors.New("maximum latitude out of range")
	errInvalidEllipsoid = fmt.Errorf("invalid ellipsoid: %w", ErrSemiMajorAxis)
)

// ErrToleranceCondition is returned by the conversions when a point lies at
// or beyond the pole singularity, or when a projected point cannot be
// inverted. The accompanying coordinate is zero.
var ErrToleranceCondition = errors.New("tolerance condition error")

// Projection names.
const (
	NameMercator    = "merc"
	NameWebMercator = "webmerc"
)

// WebMercatorMaxLatitude is the latitude, in radians, at which Web Mercator
// maps become square: atan(sinh(π)), about 85.0511 degrees.
var WebMercatorMaxLatitude = math.Atan(math.Sinh(math.Pi))

// MapCoords is a projected coordinate in meters.
type MapCoords struct {
	Easting  float64
	Northing float64
}

type forwardFunc func(m *Mercator, lam, phi float64) (x, y float64, err error)
type inverseFunc func(m *Mercator, x, y float64) (lam, phi float64, err error)

// Mercator provides conversions between geodetic coordinates (latitude and
// longitude) and Mercator projection coordinates (easting and northing).
//
// A Mercator is immutable once constructed and may be used from multiple
// goroutines concurrently. Conversion failures are reported per call and do
// not affect later conversions.
type Mercator struct {
	name      string
	ellipsoid Ellipsoid
	spherical bool

	k0   float64 // Scale factor at the equator
	lat0 float64 // Latitude of origin in radians
	lon0 float64 // Longitude of origin in radians
	x0   float64 // False easting in meters
	y0   float64 // False northing in meters

	// Formulas for a unit semi-major axis, bound once by the constructor.
	fwd forwardFunc
	inv inverseFunc
}

// NewMercator constructs a standard Mercator projection ("merc").
//
// Spherical formulas are used when the ellipsoid (or the sphere requested
// with ParamRadius) has zero eccentricity, ellipsoidal formulas otherwise.
// When ParamLatTS is supplied the scale factor is chosen so that the
// parallel at that latitude has true scale; its magnitude must be less than
// π/2. Otherwise ParamScaleFactor, defaulting to 1, is used.
func NewMercator(ellipsoid Ellipsoid, params ParamSource) (*Mercator, error) {
	if !(ellipsoid.semiMajorAxis > 0) {
		return nil, errInvalidEllipsoid
	}
	if radius, ok := lookupParam(params, ParamRadius); ok {
		var err error
		if ellipsoid, err = NewSphere(radius); err != nil {
			return nil, err
		}
	}

	centralMeridian := paramOr(params, ParamCentralMeridian, 0)
	if (centralMeridian < -math.Pi) ||
		(centralMeridian > 2*math.Pi) || math.IsNaN(centralMeridian) {
		return nil, fmt.Errorf("%w: %g", ErrCentralMeridian, centralMeridian)
	}
	if centralMeridian > math.Pi {
		centralMeridian -= 2 * math.Pi
	}

	m := &Mercator{
		name:      NameMercator,
		ellipsoid: ellipsoid,
		k0:        1,
		lon0:      centralMeridian,
		x0:        paramOr(params, ParamFalseEasting, 0),
		y0:        paramOr(params, ParamFalseNorthing, 0),
	}

	if k0, ok := lookupParam(params, ParamScaleFactor); ok {
		if !(k0 > 0) || math.IsInf(k0, 0) {
			return nil, fmt.Errorf("%w: %g", ErrScaleFactor, k0)
		}
		m.k0 = k0
	}

	latTS, hasLatTS := lookupParam(params, ParamLatTS)
	if hasLatTS {
		latTS = math.Abs(latTS)
		if !(latTS < math.Pi/2) {
			return nil, fmt.Errorf("%w: |lat_ts| = %g", ErrLatTSOutOfRange, latTS)
		}
	}

	if ellipsoid.es != 0 {
		if hasLatTS {
			m.k0 = msfn(math.Sin(latTS), math.Cos(latTS), ellipsoid.es)
		}
		m.fwd = (*Mercator).ellipsoidalForward
		m.inv = (*Mercator).ellipsoidalInverse
	} else {
		if hasLatTS {
			m.k0 = math.Cos(latTS)
		}
		m.spherical = true
		m.fwd = (*Mercator).sphericalForward
		m.inv = (*Mercator).sphericalInverse
	}
	return m, nil
}

// NewWebMercator constructs a Web / Pseudo Mercator projection ("webmerc",
// EPSG:3857): the spherical Mercator formulas applied to a sphere whose
// radius is the semi-major axis of ellipsoid. The scale factor, latitude and
// longitude of origin are fixed at 1, 0 and 0; only ParamFalseEasting and
// ParamFalseNorthing are read from params.
func NewWebMercator(ellipsoid Ellipsoid, params ParamSource) (*Mercator, error) {
	if !(ellipsoid.semiMajorAxis > 0) {
		return nil, errInvalidEllipsoid
	}
	// b = a, with the eccentricity and flattening cleared and every derived
	// shape constant recomputed for the sphere.
	sphere := deriveEllipsoidParameters(ellipsoid.semiMajorAxis, 0)
	m := &Mercator{
		name:      NameWebMercator,
		ellipsoid: sphere,
		spherical: true,
		k0:        1,
		lat0:      0,
		lon0:      0,
		x0:        paramOr(params, ParamFalseEasting, 0),
		y0:        paramOr(params, ParamFalseNorthing, 0),
		fwd:       (*Mercator).sphericalForward,
		inv:       (*Mercator).sphericalInverse,
	}
	return m, nil
}

// Name returns the projection name, NameMercator or NameWebMercator.
func (m *Mercator) Name() string { return m.name }

// Ellipsoid returns the ellipsoid the projection formulas operate on.
func (m *Mercator) Ellipsoid() Ellipsoid { return m.ellipsoid }

// IsSpherical reports whether the spherical formulas are in use.
func (m *Mercator) IsSpherical() bool { return m.spherical }

// ScaleFactor returns the scale factor at the equator.
func (m *Mercator) ScaleFactor() float64 { return m.k0 }

// OriginLatitude returns the latitude of origin in radians.
func (m *Mercator) OriginLatitude() float64 { return m.lat0 }

// CentralMeridian returns the longitude of origin in radians.
func (m *Mercator) CentralMeridian() float64 { return m.lon0 }

// String describes the projection.
func (m *Mercator) String() string {
	return fmt.Sprintf("%s(%s, k0=%g, lon0=%g)", m.name, m.ellipsoid, m.k0, m.lon0)
}

// Forward projects the geodetic point (lam, phi), in radians, to easting and
// northing in meters. Latitudes within 1e-10 radians of either pole, or
// beyond it, fail with ErrToleranceCondition.
func (m *Mercator) Forward(lam, phi float64) (x, y float64, err error) {
	x, y, err = m.fwd(m, adjustLongitude(lam-m.lon0), phi)
	if err != nil {
		return 0, 0, err
	}
	a := m.ellipsoid.semiMajorAxis
	return a*x + m.x0, a*y + m.y0, nil
}

// Inverse converts easting and northing in meters back to longitude and
// latitude in radians.
func (m *Mercator) Inverse(x, y float64) (lam, phi float64, err error) {
	ra := 1 / m.ellipsoid.semiMajorAxis
	lam, phi, err = m.inv(m, (x-m.x0)*ra, (y-m.y0)*ra)
	if err != nil {
		return 0, 0, err
	}
	return adjustLongitude(lam + m.lon0), phi, nil
}

// ConvertFromGeodetic converts geodetic coordinates (latitude and longitude)
// to Mercator coordinates (easting and northing).
func (m *Mercator) ConvertFromGeodetic(geodeticCoordinates s2.LatLng) (MapCoords, error) {
	easting, northing, err := m.Forward(geodeticCoordinates.Lng.Radians(),
		geodeticCoordinates.Lat.Radians())
	if err != nil {
		return MapCoords{}, err
	}
	return MapCoords{Easting: easting, Northing: northing}, nil
}

// ConvertToGeodetic converts Mercator coordinates (easting and northing) to
// geodetic coordinates (latitude and longitude).
func (m *Mercator) ConvertToGeodetic(mapProjectionCoordinates MapCoords) (s2.LatLng, error) {
	longitude, latitude, err := m.Inverse(mapProjectionCoordinates.Easting,
		mapProjectionCoordinates.Northing)
	if err != nil {
		return s2.LatLng{}, err
	}
	return s2.LatLng{Lat: s1.Angle(latitude), Lng: s1.Angle(longitude)}, nil
}

// Bounds returns the projected extent of the whole longitude range between
// the parallels -maxLat and maxLat (radians). For Web Mercator,
// Bounds(WebMercatorMaxLatitude) is the square covered by zoom level 0 of a
// tiled web map.
func (m *Mercator) Bounds(maxLat float64) (r2.Rect, error) {
	if !(maxLat > 0 && maxLat < math.Pi/2) {
		return r2.Rect{}, fmt.Errorf("%w: %g", ErrMaxLatitude, maxLat)
	}
	xmin, ymin, err := m.fwd(m, -math.Pi, -maxLat)
	if err != nil {
		return r2.Rect{}, err
	}
	xmax, ymax, err := m.fwd(m, math.Pi, maxLat)
	if err != nil {
		return r2.Rect{}, err
	}
	a := m.ellipsoid.semiMajorAxis
	return r2.RectFromPoints(
		r2.Point{X: a*xmin + m.x0, Y: a*ymin + m.y0},
		r2.Point{X: a*xmax + m.x0, Y: a*ymax + m.y0},
	), nil
}

// adjustLongitude reduces lon to the range [-π, π]. Values that exceed it by
// a hair are left alone so points on the antimeridian keep their sign.
func adjustLongitude(lon float64) float64 {
	if math.Abs(lon) < math.Pi+1e-12 || math.IsInf(lon, 0) || math.IsNaN(lon) {
		return lon
	}
	lon += math.Pi
	lon -= 2 * math.Pi * math.Floor(lon/(2*math.Pi))
	return lon - math.Pi
}
