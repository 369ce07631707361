package table

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// missingTokens are the cell spellings read as a missing value, matching the
// default NA set of common CSV tooling.
var missingTokens = map[string]bool{
	"": true, "#N/A": true, "#N/A N/A": true, "#NA": true, "-1.#IND": true,
	"-1.#QNAN": true, "-NaN": true, "-nan": true, "1.#IND": true, "1.#QNAN": true,
	"<NA>": true, "N/A": true, "NA": true, "NULL": true, "NaN": true, "None": true,
	"n/a": true, "nan": true, "null": true,
}

// ParseValue parses one numeric cell. ok is false for an empty or NA cell.
// Values that are not finite are an error.
func ParseValue(s string) (v float64, ok bool, err error) {
	s = strings.TrimSpace(s)
	if missingTokens[s] {
		return 0, false, nil
	}
	v, err = strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false, fmt.Errorf("%q is not a finite number", s)
	}
	return v, true, nil
}
