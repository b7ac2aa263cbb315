// Package cropfilter coerces the optional cropId query parameter.
package cropfilter

import (
	"strconv"
	"strings"
)

// Parse returns nil for an empty or non-integer value, which callers treat
// as "no filter". 0 and negative ids are kept and simply match nothing.
func Parse(raw string) *int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &n
}
