// Package version normalizes PHP version tokens to the integer form used by
// PHP_VERSION_ID comparisons (major*10000 + minor*100 + patch, e.g. "8.0" ->
// 80000).
package version

import (
	"fmt"
	"strconv"
	"strings"
)

// DefaultTarget is the ambient minimum version assumed when the configuration
// does not specify one.
const DefaultTarget = "8.0"

// ID converts a version token to its canonical integer id. The token may be
// an integer already in id form (80000), a bare major version (8), or a
// dotted string ("8.0", "7.4.3"). Configuration values decoded from YAML may
// also arrive as float64; they are rendered back to text first so fractional
// notations keep their meaning.
func ID(token interface{}) (int, error) {
	switch v := token.(type) {
	case nil:
		return ID(DefaultTarget)
	case int:
		return fromInt(v), nil
	case int64:
		return fromInt(int(v)), nil
	case float64:
		return fromString(strconv.FormatFloat(v, 'f', -1, 64))
	case string:
		return fromString(v)
	default:
		return 0, fmt.Errorf("unsupported version token type %T", token)
	}
}

func fromInt(v int) int {
	// values below 10000 are bare major versions, everything else is
	// already a version id
	if v < 10000 {
		return v * 10000
	}
	return v
}

func fromString(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty version token")
	}

	if n, err := strconv.Atoi(s); err == nil {
		return fromInt(n), nil
	}

	parts := strings.SplitN(s, ".", 3)
	nums := make([]int, 3)
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil {
			return 0, fmt.Errorf("malformed version token %q", s)
		}
		nums[i] = n
	}
	if nums[1] > 99 || nums[2] > 99 {
		return 0, fmt.Errorf("malformed version token %q", s)
	}

	return nums[0]*10000 + nums[1]*100 + nums[2], nil
}

// String renders a version id back to dotted form, mainly for messages.
func String(id int) string {
	major := id / 10000
	minor := (id % 10000) / 100
	patch := id % 100
	if patch == 0 {
		return fmt.Sprintf("%d.%d", major, minor)
	}
	return fmt.Sprintf("%d.%d.%d", major, minor, patch)
}
