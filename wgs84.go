package mercator

import "fmt"

// DefaultMercator is a WGS84 ellipsoid based Mercator projection with true
// scale at the equator (EPSG:3395).
var DefaultMercator *Mercator

// DefaultWebMercator is the Web Mercator projection used by tiled web maps
// (EPSG:3857).
var DefaultWebMercator *Mercator

func init() {
	var err error
	DefaultMercator, err = NewMercator(WGS84, nil)
	if err != nil {
		panic(fmt.Sprintf("error constructing WGS84 Mercator projection: %s", err))
	}
	DefaultWebMercator, err = NewWebMercator(WGS84, nil)
	if err != nil {
		panic(fmt.Sprintf("error constructing Web Mercator projection: %s", err))
	}
}
