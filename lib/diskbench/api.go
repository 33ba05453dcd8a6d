/*
	Package diskbench measures the write and read throughput of the storage
	behind a regular file.

	A Session writes a test file block by block, forcing each block to stable
	storage, then reads blocks back from random offsets. Every block operation
	is timed individually so that the report can show the fastest and slowest
	block as well as the average throughput.
*/
package diskbench

import (
	"errors"
	"io"
	"math/rand"
	"time"

	"github.com/Cloud-Foundations/Dominator/lib/log"
	"github.com/Cloud-Foundations/tricorder/go/tricorder"
)

// ErrUnexpected is wrapped by errors which are not caused by a failed system
// call, such as a file which has the wrong length after the write phase.
var ErrUnexpected = errors.New("unexpected")

// Config describes a benchmark run. All sizes are in bytes.
type Config struct {
	Filename       string
	TotalSize      uint64
	WriteBlockSize uint64
	ReadBlockSize  uint64
	Verbose        bool
	DirectIO       bool // Bypass the page cache with O_DIRECT/F_NOCACHE.
	OffsetPolicy   OffsetPolicy
	Seed           int64 // If zero, seed from the clock.
}

// OffsetPolicy selects the range from which random read offsets are drawn.
// It satisfies the standard library flag.Value interface.
type OffsetPolicy uint

const (
	// OffsetPolicyInclusive draws from [0, blocks*blockSize], which reaches
	// one full block past the end of the read extent.
	OffsetPolicyInclusive OffsetPolicy = iota
	// OffsetPolicyWithinExtent draws from [0, extent-blockSize], where the
	// extent is blocks*blockSize limited to the length of the test file.
	OffsetPolicyWithinExtent
)

// Phase identifies the write or the read half of a benchmark.
type Phase uint

const (
	PhaseWrite Phase = iota
	PhaseRead
)

// ConfigError reports an invalid configuration. No I/O has been performed
// when a ConfigError is returned.
type ConfigError struct {
	Field  string
	Reason string
}

// IOError wraps a failed system call on the test file.
type IOError struct {
	Op       string
	Filename string
	Err      error
}

// Progress receives completion updates for a phase. Methods are never
// called while a block operation is being timed.
type Progress interface {
	Begin(phase Phase)
	SetPercent(phase Phase, percent uint)
	End(phase Phase)
}

// CacheDropper evicts cached data for the test file so that the read phase
// is served by the storage device. Failures are logged and otherwise
// ignored.
type CacheDropper interface {
	DropCaches(filename string) error
}

// Rate is a throughput in bytes per second. A Rate is invalid if there was
// no measured time to divide by.
type Rate struct {
	bytesPerSecond float64
	valid          bool
}

// Stats summarises the samples of one phase.
type Stats struct {
	Blocks       uint64  `json:"blocks"`
	BlockSize    uint64  `json:"blockSize"`
	TotalBytes   uint64  `json:"totalBytes"`
	TotalSeconds float64 `json:"totalSeconds"`
	Average      Rate    `json:"averageMiBPerSecond"`
	Fastest      Rate    `json:"maxMiBPerSecond"`
	Slowest      Rate    `json:"minMiBPerSecond"`
}

// Report holds the statistics for a complete run.
type Report struct {
	Filename string `json:"filename"`
	Write    Stats  `json:"write"`
	Read     Stats  `json:"read"`
}

// Session holds the configuration and the samples of a benchmark run. A
// Session must not be used concurrently.
type Session struct {
	config       Config
	logger       log.DebugLogger
	progress     Progress
	rand         *rand.Rand
	writeSamples []time.Duration
	readSamples  []time.Duration
	readOffsets  []int64
	metrics      *sessionMetrics
}

type sessionMetrics struct {
	writeTimeDistribution *tricorder.CumulativeDistribution
	readTimeDistribution  *tricorder.CumulativeDistribution
	writeBlocks           uint64 // Atomic.
	readBlocks            uint64 // Atomic.
}

// Check returns a *ConfigError if the configuration cannot be run.
func (config Config) Check() error {
	return config.check()
}

// WriteBlocks returns the number of blocks written by Run.
func (config Config) WriteBlocks() uint64 {
	if config.WriteBlockSize < 1 {
		return 0
	}
	return config.TotalSize / config.WriteBlockSize
}

// ReadBlocks returns the number of blocks read by Run.
func (config Config) ReadBlocks() uint64 {
	if config.ReadBlockSize < 1 {
		return 0
	}
	return config.TotalSize / config.ReadBlockSize
}

// New creates a Session after checking config. If progress is nil or
// config.Verbose is false no progress is reported. If logger is nil nothing
// is logged.
func New(config Config, progress Progress,
	logger log.DebugLogger) (*Session, error) {
	return newSession(config, progress, logger)
}

// Config returns the configuration of the Session.
func (s *Session) Config() Config { return s.config }

// Write creates or truncates the test file and writes blocksCount blocks of
// random data, each followed by a sync. Samples from a previous write phase
// are discarded.
func (s *Session) Write(blockSize, blocksCount uint64) error {
	return s.write(blockSize, blocksCount)
}

// Read reads blocksCount blocks of blockSize bytes from random offsets in the
// test file. Short reads are not errors. Samples and offsets from a previous
// read phase are discarded.
func (s *Session) Read(blockSize, blocksCount uint64) error {
	return s.read(blockSize, blocksCount)
}

// Run performs the write phase, drops caches using dropper (which may be
// nil), performs the read phase and returns the report.
func (s *Session) Run(dropper CacheDropper) (*Report, error) {
	return s.run(dropper)
}

// Report computes the statistics for the samples collected so far. It does
// not modify the Session.
func (s *Session) Report() *Report {
	return s.report()
}

// WriteSamples returns the per-block write times in completion order. The
// slice must not be modified.
func (s *Session) WriteSamples() []time.Duration { return s.writeSamples }

// ReadSamples returns the per-block read times in completion order. The
// slice must not be modified.
func (s *Session) ReadSamples() []time.Duration { return s.readSamples }

// ReadOffsets returns the offsets used by the last read phase, in the order
// they were read. The slice must not be modified.
func (s *Session) ReadOffsets() []int64 { return s.readOffsets }

// RegisterMetrics registers per-block latency distributions and block
// counters for the Session in dir.
func (s *Session) RegisterMetrics(dir *tricorder.DirectorySpec) error {
	return s.registerMetrics(dir)
}

// ComputeStats summarises samples taken with blocks of blockSize bytes.
func ComputeStats(samples []time.Duration, blockSize uint64) Stats {
	return computeStats(samples, blockSize)
}

// MiBPerSecond returns the rate in MiB/s and whether it is valid.
func (r Rate) MiBPerSecond() (float64, bool) {
	return r.bytesPerSecond / (1 << 20), r.valid
}

// WriteText writes the report in human-readable form to w.
func (r *Report) WriteText(w io.Writer) error {
	return r.writeText(w)
}

// WriteJSON writes the report as indented JSON to w.
func (r *Report) WriteJSON(w io.Writer) error {
	return r.writeJSON(w)
}
