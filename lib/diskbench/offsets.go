package diskbench

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/ncw/directio"
)

// checkExtent returns a *ConfigError if blocksCount blocks of blockSize
// bytes, plus one byte for the inclusive offset bound, do not fit in a file
// offset.
func checkExtent(blockSize, blocksCount uint64) error {
	if blocksCount > 0 && blockSize > (math.MaxInt64-1)/blocksCount {
		return &ConfigError{"TotalSize", fmt.Sprintf(
			"%d blocks of %d bytes exceeds the maximum file size",
			blocksCount, blockSize)}
	}
	return nil
}

// maxOffset returns the inclusive upper bound for read offsets. The
// within-extent bound is limited to the last full block of a file of
// fileSize bytes.
func (policy OffsetPolicy) maxOffset(blockSize, blocksCount uint64,
	fileSize int64) int64 {
	extent := int64(blockSize * blocksCount)
	if policy == OffsetPolicyWithinExtent {
		if fileSize < extent {
			extent = fileSize
		}
		if extent -= int64(blockSize); extent < 0 {
			return 0
		}
	}
	return extent
}

func generateOffsets(rng *rand.Rand, policy OffsetPolicy,
	blockSize, blocksCount uint64, fileSize, align int64) []int64 {
	limit := policy.maxOffset(blockSize, blocksCount, fileSize) + 1
	offsets := make([]int64, blocksCount)
	for index := range offsets {
		offset := rng.Int63n(limit)
		if align > 1 {
			offset -= offset % align
		}
		offsets[index] = offset
	}
	return offsets
}

func (s *Session) offsetAlignment() int64 {
	if s.config.DirectIO {
		return directio.AlignSize
	}
	return 0
}
