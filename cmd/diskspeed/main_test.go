package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/Cloud-Foundations/diskspeed/lib/diskbench"
)

func TestMakeConfigDefaults(t *testing.T) {
	config := makeConfig()
	if config.TotalSize != 128<<20 {
		t.Errorf("default size: %d", config.TotalSize)
	}
	if config.WriteBlockSize != 1<<20 || config.ReadBlockSize != 1<<20 {
		t.Errorf("default block sizes: %d, %d", config.WriteBlockSize,
			config.ReadBlockSize)
	}
	if !config.Verbose || config.DirectIO {
		t.Errorf("default verbose: %v, direct: %v", config.Verbose,
			config.DirectIO)
	}
	if config.OffsetPolicy != diskbench.OffsetPolicyInclusive {
		t.Errorf("default offset policy: %s", config.OffsetPolicy)
	}
	if err := config.Check(); err != nil {
		t.Fatal(err)
	}
	if n := config.WriteBlocks(); n != 128 {
		t.Errorf("default write blocks: %d", n)
	}
}

func TestProgressBar(t *testing.T) {
	buffer := &bytes.Buffer{}
	bar := newProgressBar(buffer)
	bar.SetPercent(diskbench.PhaseWrite, 10)
	bar.End(diskbench.PhaseWrite)
	if buffer.Len() != 0 {
		t.Errorf("output before Begin: %q", buffer)
	}
	bar.Begin(diskbench.PhaseWrite)
	bar.SetPercent(diskbench.PhaseWrite, 50)
	bar.SetPercent(diskbench.PhaseWrite, 100)
	bar.End(diskbench.PhaseWrite)
	output := buffer.String()
	if !strings.Contains(output, "Write:") {
		t.Errorf("no phase description in: %q", output)
	}
	if !strings.HasSuffix(output, " done\n") {
		t.Errorf("no completion marker in: %q", output)
	}
}
