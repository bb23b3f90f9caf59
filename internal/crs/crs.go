package crs

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// DefaultGeographicCRS is the CRS used for unprojected lat-long data whenever
// no explicit CRS is given. 4326 is the GPS lat/lng we all know and love.
const DefaultGeographicCRS = "EPSG:4326"

// UTMZone returns the UTM zone number for the given longitude in degrees.
// The simple formula works well for most latitudes but may be off for some
// extreme northern locations like Svalbard or far northern Norway.
func UTMZone(lng float64) int {
	zone := int(math.Floor((lng+180)/6.0)) + 1
	if zone < 1 {
		zone = 1
	}
	if zone > 60 {
		zone = 60
	}
	return zone
}

// UTMProj4 returns the proj4 definition of the UTM CRS for the given zone,
// on the WGS84 ellipsoid/datum with meter units.
func UTMProj4(zone int) string {
	return fmt.Sprintf("+proj=utm +zone=%d +ellps=WGS84 +datum=WGS84 +units=m +no_defs", zone)
}

// ToProj4 normalizes a CRS identifier to a definition that proj4 can
// initialize. "EPSG:4326" (any case) and bare numeric codes become
// "+init=epsg:4326", proj strings pass through verbatim.
func ToProj4(crsID string) string {
	id := strings.TrimSpace(crsID)
	if strings.HasPrefix(id, "+") {
		return id
	}
	upper := strings.ToUpper(id)
	if strings.HasPrefix(upper, "EPSG:") {
		return "+init=epsg:" + strings.TrimPrefix(upper, "EPSG:")
	}
	if _, err := strconv.Atoi(id); err == nil {
		return "+init=epsg:" + id
	}
	return id
}
