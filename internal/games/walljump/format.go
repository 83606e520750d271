package walljump

import (
	"fmt"
	"math"
)

// FormatElapsed renders seconds as zero-padded MM:SS, truncating
// fractional seconds. Negative and non-finite inputs render as 00:00.
func FormatElapsed(seconds float64) string {
	if math.IsNaN(seconds) || math.IsInf(seconds, 0) || seconds < 0 {
		seconds = 0
	}
	total := int64(math.Floor(seconds))
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}
