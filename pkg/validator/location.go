package validator

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Location is a geographic point submitted with rescue and technician records.
type Location struct {
	Latitude  Coordinate `json:"latitude"`
	Longitude Coordinate `json:"longitude"`
}

// NewLocation returns a Location with both coordinates set.
func NewLocation(lat, lng float64) *Location {
	return &Location{Latitude: Coord(lat), Longitude: Coord(lng)}
}

// Coordinate holds one coordinate as submitted: a JSON number or a numeric string.
// The zero value is an unset coordinate.
type Coordinate struct {
	raw string
	set bool
}

// Coord returns a set coordinate for a numeric value.
func Coord(v float64) Coordinate {
	return Coordinate{raw: strconv.FormatFloat(v, 'f', -1, 64), set: true}
}

// CoordString returns a set coordinate for a textual value.
func CoordString(s string) Coordinate {
	return Coordinate{raw: s, set: true}
}

// IsSet reports whether the coordinate was supplied.
func (c Coordinate) IsSet() bool {
	return c.set
}

// Float parses the coordinate. It fails for unset, non-numeric, NaN and infinite values.
func (c Coordinate) Float() (float64, bool) {
	if !c.set {
		return 0, false
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(c.raw), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

func (c Coordinate) String() string {
	return c.raw
}

// UnmarshalJSON accepts a number, a string or null.
func (c *Coordinate) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*c = Coordinate{}
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*c = CoordString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		// Booleans and objects are kept as unparseable input rather than rejected.
		*c = CoordString(string(data))
		return nil
	}
	*c = CoordString(n.String())
	return nil
}

func (c Coordinate) MarshalJSON() ([]byte, error) {
	if !c.set {
		return []byte("null"), nil
	}
	if f, ok := c.Float(); ok {
		return []byte(strconv.FormatFloat(f, 'f', -1, 64)), nil
	}
	return json.Marshal(c.raw)
}
