package diskbench

func percentComplete(completed, total uint64) uint {
	if total < 1 {
		return 100
	}
	return uint(completed * 100 / total)
}

// readProgressInterval returns how many read blocks pass between progress
// updates. Smaller read blocks mean more iterations for the same data, so
// updates are thinned by the ratio of the block sizes.
func readProgressInterval(writeBlockSize, readBlockSize uint64) uint64 {
	if readBlockSize < 1 {
		return 1
	}
	if interval := writeBlockSize / readBlockSize; interval > 0 {
		return interval
	}
	return 1
}

func (s *Session) progressEnabled() bool {
	return s.config.Verbose && s.progress != nil
}

func (s *Session) beginProgress(phase Phase) {
	if s.progressEnabled() {
		s.progress.Begin(phase)
	}
}

func (s *Session) setProgress(phase Phase, completed, total uint64) {
	if s.progressEnabled() {
		s.progress.SetPercent(phase, percentComplete(completed, total))
	}
}

func (s *Session) endProgress(phase Phase) {
	if s.progressEnabled() {
		s.progress.End(phase)
	}
}
