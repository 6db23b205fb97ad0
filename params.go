package mercator

// Parameter names understood by the Mercator constructors. Angles are in
// radians and lengths in meters.
const (
	// ParamLatTS is the latitude of true scale.
	ParamLatTS = "lat_ts"

	// ParamCentralMeridian is the longitude of origin.
	ParamCentralMeridian = "lon_0"

	// ParamScaleFactor is the scale factor at the equator. It is only
	// consulted when lat_ts is absent.
	ParamScaleFactor = "k_0"

	// ParamFalseEasting is added to every projected x.
	ParamFalseEasting = "x_0"

	// ParamFalseNorthing is added to every projected y.
	ParamFalseNorthing = "y_0"

	// ParamRadius replaces the ellipsoid with a sphere of this radius.
	ParamRadius = "R"
)

// ParamSource looks up named projection parameters.
type ParamSource interface {
	// Param returns the value of the named parameter and whether it was
	// supplied at all.
	Param(name string) (float64, bool)
}

// Params is a ParamSource backed by a map. A nil Params supplies nothing.
type Params map[string]float64

// Param implements ParamSource.
func (p Params) Param(name string) (float64, bool) {
	v, ok := p[name]
	return v, ok
}

func paramOr(src ParamSource, name string, def float64) float64 {
	if src == nil {
		return def
	}
	if v, ok := src.Param(name); ok {
		return v
	}
	return def
}

func lookupParam(src ParamSource, name string) (float64, bool) {
	if src == nil {
		return 0, false
	}
	return src.Param(name)
}
