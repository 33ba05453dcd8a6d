package diskbench

import "time"

type stopwatch struct {
	start time.Time
}

func startStopwatch() stopwatch {
	return stopwatch{time.Now()}
}

// elapsed uses the monotonic clock reading taken by startStopwatch.
func (sw stopwatch) elapsed() time.Duration {
	if duration := time.Since(sw.start); duration > 0 {
		return duration
	}
	return 0
}
