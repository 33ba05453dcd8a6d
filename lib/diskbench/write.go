package diskbench

import (
	"fmt"
	"os"
	"time"
)

func (s *Session) write(blockSize, blocksCount uint64) error {
	s.writeSamples = nil
	if err := checkExtent(blockSize, blocksCount); err != nil {
		return err
	}
	s.writeSamples = make([]time.Duration, 0, blocksCount)
	file, err := s.openFile(os.O_WRONLY | os.O_CREATE | os.O_TRUNC)
	if err != nil {
		return s.ioError("create", err)
	}
	defer file.Close()
	block := allocateBlock(blockSize, s.config.DirectIO)
	s.logger.Debugf(1, "write phase: %d blocks of %d bytes\n",
		blocksCount, blockSize)
	s.beginProgress(PhaseWrite)
	for index := uint64(0); index < blocksCount; index++ {
		fillRandom(s.rand, block)
		sw := startStopwatch()
		if _, err := file.Write(block); err != nil {
			return s.ioError("write", err)
		}
		if err := file.Sync(); err != nil {
			return s.ioError("sync", err)
		}
		sample := sw.elapsed()
		s.writeSamples = append(s.writeSamples, sample)
		s.metrics.addWriteSample(sample)
		s.logger.Debugf(2, "write block %d: %s\n", index, sample)
		s.setProgress(PhaseWrite, index+1, blocksCount)
	}
	s.endProgress(PhaseWrite)
	if err := file.Close(); err != nil {
		return s.ioError("close", err)
	}
	fi, err := os.Stat(s.config.Filename)
	if err != nil {
		return s.ioError("stat", err)
	}
	if expected := int64(blockSize * blocksCount); fi.Size() != expected {
		return fmt.Errorf("%w: %s has %d bytes after writing %d",
			ErrUnexpected, s.config.Filename, fi.Size(), expected)
	}
	s.logger.Debugf(1, "write phase: done\n")
	return nil
}
