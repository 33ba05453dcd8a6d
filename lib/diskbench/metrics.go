package diskbench

import (
	"sync/atomic"
	"time"

	"github.com/Cloud-Foundations/tricorder/go/tricorder"
	"github.com/Cloud-Foundations/tricorder/go/tricorder/units"
)

var latencyBucketer = tricorder.NewGeometricBucketer(1e-3, 100e3)

func (s *Session) registerMetrics(dir *tricorder.DirectorySpec) error {
	metrics := &sessionMetrics{
		writeTimeDistribution: latencyBucketer.NewCumulativeDistribution(),
		readTimeDistribution:  latencyBucketer.NewCumulativeDistribution(),
	}
	err := dir.RegisterMetric("write/block-time",
		metrics.writeTimeDistribution, units.Millisecond,
		"time to write and sync one block")
	if err != nil {
		return err
	}
	err = dir.RegisterMetric("write/blocks-completed",
		func() uint64 { return atomic.LoadUint64(&metrics.writeBlocks) },
		units.None, "number of blocks written")
	if err != nil {
		return err
	}
	err = dir.RegisterMetric("read/block-time",
		metrics.readTimeDistribution, units.Millisecond,
		"time to seek and read one block")
	if err != nil {
		return err
	}
	err = dir.RegisterMetric("read/blocks-completed",
		func() uint64 { return atomic.LoadUint64(&metrics.readBlocks) },
		units.None, "number of blocks read")
	if err != nil {
		return err
	}
	s.metrics = metrics
	return nil
}

func (m *sessionMetrics) addWriteSample(sample time.Duration) {
	if m == nil {
		return
	}
	m.writeTimeDistribution.Add(sample)
	atomic.AddUint64(&m.writeBlocks, 1)
}

func (m *sessionMetrics) addReadSample(sample time.Duration) {
	if m == nil {
		return
	}
	m.readTimeDistribution.Add(sample)
	atomic.AddUint64(&m.readBlocks, 1)
}
