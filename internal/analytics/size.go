package analytics

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/spf13/cast"
)

var (
	digitsOnlyRe = regexp.MustCompile(`^\d+$`)
	sizeUnitRe   = regexp.MustCompile(`^(\d+(?:\.\d+)?)\s*([a-zA-Z]+)?$`)
	byteWordRe   = regexp.MustCompile(`(?i)^(\d+(?:\.\d+)?)\s*bytes?$`)
)

var unitFactors = map[string]float64{
	"b":  1,
	"k":  1024,
	"kb": 1024,
	"m":  1024 * 1024,
	"mb": 1024 * 1024,
	"g":  1024 * 1024 * 1024,
	"gb": 1024 * 1024 * 1024,
	"t":  1024 * 1024 * 1024 * 1024,
	"tb": 1024 * 1024 * 1024 * 1024,
}

// ParseSize converts an attachment size value to bytes. Numeric values
// pass through as-is; text accepts plain digit strings, "<n> byte(s)",
// and "<n> <unit>" with a power-of-1024 unit (b, kb, mb, gb, tb and
// their single-letter forms, case-insensitive, optional space). The
// second return is false when the value cannot be interpreted.
func ParseSize(v any) (float64, bool) {
	if v == nil {
		return 0, false
	}

	s, isText := v.(string)
	if !isText {
		n, err := cast.ToFloat64E(v)
		if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
			return 0, false
		}
		return n, true
	}

	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, ",", "")
	if s == "" {
		return 0, false
	}

	if digitsOnlyRe.MatchString(s) {
		n, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		return n, true
	}

	if m := byteWordRe.FindStringSubmatch(s); m != nil {
		n, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			return 0, false
		}
		return n, true
	}

	m := sizeUnitRe.FindStringSubmatch(s)
	if m == nil {
		return 0, false
	}
	n, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, false
	}
	factor := 1.0
	if m[2] != "" {
		f, ok := unitFactors[strings.ToLower(m[2])]
		if !ok {
			return 0, false
		}
		factor = f
	}
	return n * factor, true
}
