package diskbench

import (
	"math/rand"

	"github.com/ncw/directio"
)

func allocateBlock(size uint64, direct bool) []byte {
	if direct && size > 0 {
		return directio.AlignedBlock(int(size))
	}
	return make([]byte, size)
}

// fillRandom overwrites every byte of block so that compressing or
// deduplicating storage cannot shortcut the write.
func fillRandom(rng *rand.Rand, block []byte) {
	rng.Read(block)
}

func fillPattern(block []byte) {
	for index := range block {
		block[index] = byte(index)
	}
}

func newReadBuffer(size uint64, direct bool) []byte {
	buffer := allocateBlock(size, direct)
	fillPattern(buffer)
	return buffer
}
