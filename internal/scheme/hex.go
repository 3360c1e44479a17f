package scheme

import (
	"fmt"
	"math"
)

// ComponentsToHex converts floating-point RGB components in [0,1] to a
// lowercase "#rrggbb" string. Each component is scaled by 255 and truncated
// toward zero; out-of-range values are clamped so the result is always six
// hex digits.
func ComponentsToHex(r, g, b float64) string {
	return fmt.Sprintf("#%02x%02x%02x", componentByte(r), componentByte(g), componentByte(b))
}

func componentByte(v float64) uint8 {
	if math.IsNaN(v) {
		return 0
	}
	n := v * 255
	switch {
	case n <= 0:
		return 0
	case n >= 255:
		return 255
	}
	return uint8(n)
}
