package diskbench

import (
	"encoding/json"
	"fmt"
	"time"
)

func computeStats(samples []time.Duration, blockSize uint64) Stats {
	stats := Stats{
		Blocks:     uint64(len(samples)),
		BlockSize:  blockSize,
		TotalBytes: blockSize * uint64(len(samples)),
	}
	if len(samples) < 1 {
		return stats
	}
	var total time.Duration
	fastest := samples[0]
	slowest := samples[0]
	for _, sample := range samples {
		total += sample
		if sample < fastest {
			fastest = sample
		}
		if sample > slowest {
			slowest = sample
		}
	}
	stats.TotalSeconds = total.Seconds()
	stats.Average = newRate(stats.TotalBytes, total)
	// The fastest block has the shortest duration.
	stats.Fastest = newRate(blockSize, fastest)
	stats.Slowest = newRate(blockSize, slowest)
	return stats
}

func newRate(numBytes uint64, duration time.Duration) Rate {
	if duration <= 0 {
		return Rate{}
	}
	return Rate{float64(numBytes) / duration.Seconds(), true}
}

func (r Rate) String() string {
	if mibPerSecond, ok := r.MiBPerSecond(); ok {
		return fmt.Sprintf("%.2f", mibPerSecond)
	}
	return "n/a"
}

func (r Rate) MarshalJSON() ([]byte, error) {
	if mibPerSecond, ok := r.MiBPerSecond(); ok {
		return json.Marshal(mibPerSecond)
	}
	return []byte("null"), nil
}
