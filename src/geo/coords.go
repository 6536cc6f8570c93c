// Package geo maps team tricodes to normalized positions on the US
// map canvas. Arena latitude/longitude is projected linearly onto the
// continental bounding box; the result is a static (x%, y%) table.
package geo

// Point is a normalized map position: x grows eastward, y southward,
// both in [0, 1].
type Point struct {
	X float64
	Y float64
}

type latLon struct {
	lat float64
	lon float64
}

// Continental US bounding box used by the projection. Toronto sits
// inside the latitude range, so all 30 arenas land on the canvas.
const (
	lonWest  = -125.0
	lonEast  = -66.9
	latNorth = 49.4
	latSouth = 24.5
)

// arenas holds each team's home arena location.
var arenas = map[string]latLon{
	"ATL": {33.757, -84.396},
	"BOS": {42.366, -71.062},
	"BKN": {40.683, -73.975},
	"CHA": {35.225, -80.839},
	"CHI": {41.881, -87.674},
	"CLE": {41.496, -81.688},
	"DAL": {32.790, -96.810},
	"DEN": {39.749, -105.008},
	"DET": {42.341, -83.055},
	"GSW": {37.768, -122.388},
	"HOU": {29.751, -95.362},
	"IND": {39.764, -86.155},
	"LAC": {33.945, -118.342},
	"LAL": {34.043, -118.267},
	"MEM": {35.138, -90.051},
	"MIA": {25.781, -80.187},
	"MIL": {43.045, -87.917},
	"MIN": {44.979, -93.276},
	"NOP": {29.949, -90.082},
	"NYK": {40.750, -73.993},
	"OKC": {35.463, -97.515},
	"ORL": {28.539, -81.384},
	"PHI": {39.901, -75.172},
	"PHX": {33.446, -112.071},
	"POR": {45.532, -122.667},
	"SAC": {38.580, -121.500},
	"SAS": {29.427, -98.437},
	"TOR": {43.643, -79.379},
	"UTA": {40.768, -111.901},
	"WAS": {38.898, -77.021},
}

// positions is the projected table, built once at init.
var positions = func() map[string]Point {
	m := make(map[string]Point, len(arenas))
	for code, a := range arenas {
		m[code] = project(a)
	}
	return m
}()

func project(a latLon) Point {
	return Point{
		X: (a.lon - lonWest) / (lonEast - lonWest),
		Y: (latNorth - a.lat) / (latNorth - latSouth),
	}
}

// Position returns the normalized map position for a tricode.
func Position(tricode string) (Point, bool) {
	p, ok := positions[tricode]
	return p, ok
}

// Tricodes lists every known team code.
func Tricodes() []string {
	codes := make([]string, 0, len(arenas))
	for code := range arenas {
		codes = append(codes, code)
	}
	return codes
}
