package query

import (
	"errors"
	"strconv"
	"strings"
)

// LatLng is a point in decimal degrees. Used in geo search.
type LatLng struct {
	// Lat is the latitude in decimal degrees.
	Lat float64
	// Lng is the longitude in decimal degrees.
	Lng float64
}

// GeoRect is a rectangle defined by two extreme points. Used in geo
// search.
type GeoRect struct {
	// P1 is the first corner of the rectangle.
	P1 LatLng
	// P2 is the opposite corner of the rectangle.
	P2 LatLng
}

// Polygon is a closed area of at least three vertices. Construct with
// NewPolygon; the minimum-vertex rule is enforced there.
type Polygon []LatLng

// ErrPolygonTooSmall is returned by NewPolygon for fewer than three
// vertices.
var ErrPolygonTooSmall = errors.New("seekd: a polygon requires at least three vertices")

// NewPolygon builds a polygon from points. Unlike the tolerant typed
// getters, this fails fast: passing fewer than three vertices is a
// programming error, not a data error.
func NewPolygon(points ...LatLng) (Polygon, error) {
	if len(points) < 3 {
		return nil, ErrPolygonTooSmall
	}
	return Polygon(points), nil
}

func formatCoord(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// joinCoords flattens points into the wire form "lat1,lng1,lat2,lng2,...".
func joinCoords(points []LatLng) string {
	fields := make([]string, 0, len(points)*2)
	for _, p := range points {
		fields = append(fields, formatCoord(p.Lat), formatCoord(p.Lng))
	}
	return strings.Join(fields, ",")
}

// splitCoords parses a flat comma-joined coordinate list back into
// points. The field count must be even and every field must be a
// valid float, else ok is false.
func splitCoords(value string) ([]LatLng, bool) {
	fields := strings.Split(value, ",")
	if len(fields)%2 != 0 {
		return nil, false
	}
	points := make([]LatLng, len(fields)/2)
	for i := range points {
		lat, err := strconv.ParseFloat(fields[2*i], 64)
		if err != nil {
			return nil, false
		}
		lng, err := strconv.ParseFloat(fields[2*i+1], 64)
		if err != nil {
			return nil, false
		}
		points[i] = LatLng{Lat: lat, Lng: lng}
	}
	return points, true
}
