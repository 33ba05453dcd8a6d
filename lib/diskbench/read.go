package diskbench

import (
	"io"
	"os"
	"time"
)

func (s *Session) read(blockSize, blocksCount uint64) error {
	s.readSamples = nil
	s.readOffsets = nil
	if err := checkExtent(blockSize, blocksCount); err != nil {
		return err
	}
	file, err := s.openFile(os.O_RDONLY)
	if err != nil {
		return s.ioError("open", err)
	}
	defer file.Close()
	fi, err := file.Stat()
	if err != nil {
		return s.ioError("stat", err)
	}
	s.readOffsets = generateOffsets(s.rand, s.config.OffsetPolicy, blockSize,
		blocksCount, fi.Size(), s.offsetAlignment())
	s.readSamples = make([]time.Duration, 0, blocksCount)
	buffer := newReadBuffer(blockSize, s.config.DirectIO)
	interval := readProgressInterval(s.config.WriteBlockSize, blockSize)
	s.logger.Debugf(1, "read phase: %d blocks of %d bytes\n",
		blocksCount, blockSize)
	s.beginProgress(PhaseRead)
	for index, offset := range s.readOffsets {
		sw := startStopwatch()
		if _, err := file.Seek(offset, io.SeekStart); err != nil {
			return s.ioError("seek", err)
		}
		nRead, err := file.Read(buffer)
		if err != nil && err != io.EOF {
			return s.ioError("read", err)
		}
		sample := sw.elapsed()
		s.readSamples = append(s.readSamples, sample)
		s.metrics.addReadSample(sample)
		s.logger.Debugf(2, "read block %d at %d: %d bytes in %s\n",
			index, offset, nRead, sample)
		if uint64(index)%interval == 0 {
			s.setProgress(PhaseRead, uint64(index)+1, blocksCount)
		}
	}
	s.endProgress(PhaseRead)
	s.logger.Debugf(1, "read phase: done\n")
	return nil
}
