package mercator_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tzneal/mercator"
)

func TestNewEllipsoid(t *testing.T) {
	el, err := mercator.NewEllipsoid(ellipsoidSemiMajorAxis, ellipsoidFlattening)
	require.NoError(t, err)
	assert.Equal(t, mercator.WGS84, el)
	assert.False(t, el.IsSphere())
	assert.InDelta(t, 6356752.314245, el.SemiMinorAxis(), 1e-6)
	assert.InDelta(t, 0.00669437999014, el.EccentricitySquared(), 1e-14)
	assert.InDelta(t, 0.0818191908426, el.Eccentricity(), 1e-13)

	for _, tt := range []struct {
		a, f float64
		want error
	}{
		{0, ellipsoidFlattening, mercator.ErrSemiMajorAxis},
		{-1, ellipsoidFlattening, mercator.ErrSemiMajorAxis},
		{math.Inf(1), ellipsoidFlattening, mercator.ErrSemiMajorAxis},
		{math.NaN(), ellipsoidFlattening, mercator.ErrSemiMajorAxis},
		{ellipsoidSemiMajorAxis, -0.1, mercator.ErrFlattening},
		{ellipsoidSemiMajorAxis, 1, mercator.ErrFlattening},
		{ellipsoidSemiMajorAxis, math.NaN(), mercator.ErrFlattening},
	} {
		_, err := mercator.NewEllipsoid(tt.a, tt.f)
		assert.ErrorIs(t, err, tt.want, "a = %g, f = %g", tt.a, tt.f)
	}
}

func TestNewSphere(t *testing.T) {
	s, err := mercator.NewSphere(6371000)
	require.NoError(t, err)
	assert.True(t, s.IsSphere())
	assert.Equal(t, s.SemiMajorAxis(), s.SemiMinorAxis())
	assert.Zero(t, s.Eccentricity())
	assert.Equal(t, "sphere(R=6.371e+06)", s.String())

	_, err = mercator.NewSphere(0)
	assert.ErrorIs(t, err, mercator.ErrRadius)
}
