package diskbench

import (
	"math/rand"
	"os"
	"time"

	"github.com/Cloud-Foundations/Dominator/lib/format"
	"github.com/Cloud-Foundations/Dominator/lib/log"
	"github.com/Cloud-Foundations/Dominator/lib/log/nulllogger"
	"github.com/ncw/directio"
)

func newSession(config Config, progress Progress,
	logger log.DebugLogger) (*Session, error) {
	if err := config.Check(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = nulllogger.New()
	}
	seed := config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Session{
		config:   config,
		logger:   logger,
		progress: progress,
		rand:     rand.New(rand.NewSource(seed)),
	}, nil
}

func (s *Session) openFile(flag int) (*os.File, error) {
	if s.config.DirectIO {
		return directio.OpenFile(s.config.Filename, flag, 0666)
	}
	return os.OpenFile(s.config.Filename, flag, 0666)
}

func (s *Session) ioError(op string, err error) error {
	if pathErr, ok := err.(*os.PathError); ok {
		err = pathErr.Err
	}
	return &IOError{Op: op, Filename: s.config.Filename, Err: err}
}

func (s *Session) run(dropper CacheDropper) (*Report, error) {
	s.logger.Debugf(0, "writing %s in %d blocks of %s to: %s\n",
		format.FormatBytes(s.config.TotalSize), s.config.WriteBlocks(),
		format.FormatBytes(s.config.WriteBlockSize), s.config.Filename)
	if err := s.write(s.config.WriteBlockSize,
		s.config.WriteBlocks()); err != nil {
		return nil, err
	}
	if dropper != nil {
		if err := dropper.DropCaches(s.config.Filename); err != nil {
			s.logger.Printf(
				"error dropping caches, reads may be served from memory: %s\n",
				err)
		}
	}
	s.logger.Debugf(0, "reading %d blocks of %s from: %s\n",
		s.config.ReadBlocks(), format.FormatBytes(s.config.ReadBlockSize),
		s.config.Filename)
	if err := s.read(s.config.ReadBlockSize,
		s.config.ReadBlocks()); err != nil {
		return nil, err
	}
	return s.report(), nil
}
