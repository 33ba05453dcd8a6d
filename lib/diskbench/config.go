package diskbench

import (
	"errors"
	"fmt"
	"math"

	"github.com/ncw/directio"
)

var offsetPolicyNames = map[OffsetPolicy]string{
	OffsetPolicyInclusive:    "inclusive",
	OffsetPolicyWithinExtent: "within-extent",
}

func (config Config) check() error {
	if config.Filename == "" {
		return &ConfigError{"Filename", "no test file specified"}
	}
	if config.WriteBlockSize < 1 {
		return &ConfigError{"WriteBlockSize", "must be greater than zero"}
	}
	if config.ReadBlockSize < 1 {
		return &ConfigError{"ReadBlockSize", "must be greater than zero"}
	}
	if config.TotalSize >= math.MaxInt64 {
		return &ConfigError{"TotalSize",
			fmt.Sprintf("%d exceeds the maximum file size", config.TotalSize)}
	}
	if _, ok := offsetPolicyNames[config.OffsetPolicy]; !ok {
		return &ConfigError{"OffsetPolicy",
			fmt.Sprintf("unknown policy: %d", config.OffsetPolicy)}
	}
	if config.DirectIO {
		if config.WriteBlockSize%directio.BlockSize != 0 {
			return &ConfigError{"WriteBlockSize", fmt.Sprintf(
				"%d is not a multiple of %d, required for direct I/O",
				config.WriteBlockSize, directio.BlockSize)}
		}
		if config.ReadBlockSize%directio.BlockSize != 0 {
			return &ConfigError{"ReadBlockSize", fmt.Sprintf(
				"%d is not a multiple of %d, required for direct I/O",
				config.ReadBlockSize, directio.BlockSize)}
		}
	}
	return nil
}

func (policy OffsetPolicy) String() string {
	if name, ok := offsetPolicyNames[policy]; ok {
		return name
	}
	return fmt.Sprintf("OffsetPolicy(%d)", uint(policy))
}

func (policy *OffsetPolicy) Set(value string) error {
	for p, name := range offsetPolicyNames {
		if value == name {
			*policy = p
			return nil
		}
	}
	return errors.New("unknown offset policy: " + value)
}

func (phase Phase) String() string {
	switch phase {
	case PhaseWrite:
		return "Write"
	case PhaseRead:
		return "Read"
	}
	return fmt.Sprintf("Phase(%d)", uint(phase))
}

func (e *ConfigError) Error() string {
	return "invalid " + e.Field + ": " + e.Reason
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %s", e.Op, e.Filename, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }
