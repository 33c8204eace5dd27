package geom

import (
	"math"
	"time"
)

// Seconds converts a float second count to a Duration, rounding to the
// nearest nanosecond so repeated frame steps sum exactly.
func Seconds(s float64) time.Duration {
	return time.Duration(math.Round(s * float64(time.Second)))
}
