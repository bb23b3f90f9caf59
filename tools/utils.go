package tools

import (
	"encoding/json"
	"math"
)

func FmtJSONString(v interface{}) string {
	data, err := json.Marshal(v)
	if err != nil {
		return "marshal data fail"
	}
	return string(data)
}

// Tolerance for comparing projected coordinates, in the units of the CRS.
// Transform round trips are exact well below a tenth of a millimeter.
const CoordinateTolerance = 0.0001

func IsCoordinateEqual(c1, c2 float64) bool {
	return math.Abs(c1-c2) < CoordinateTolerance
}
