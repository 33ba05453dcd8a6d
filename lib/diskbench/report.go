package diskbench

import (
	"fmt"
	"io"
	"strconv"

	"github.com/Cloud-Foundations/Dominator/lib/json"
)

func (s *Session) report() *Report {
	return &Report{
		Filename: s.config.Filename,
		Write:    computeStats(s.writeSamples, s.config.WriteBlockSize),
		Read:     computeStats(s.readSamples, s.config.ReadBlockSize),
	}
}

// formatUnits shows numBytes in multiples of unit, with two decimals only
// when the division is not exact.
func formatUnits(numBytes, unit uint64) string {
	if numBytes%unit == 0 {
		return strconv.FormatUint(numBytes/unit, 10)
	}
	return fmt.Sprintf("%.2f", float64(numBytes)/float64(unit))
}

func (r *Report) writeText(w io.Writer) error {
	_, err := fmt.Fprintf(w,
		"Written %s MB in %.4f s\nWrite speed is  %s MB/s\n"+
			"  max: %s, min: %s\n\n",
		formatUnits(r.Write.TotalBytes, 1<<20), r.Write.TotalSeconds,
		r.Write.Average, r.Write.Fastest, r.Write.Slowest)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w,
		"Read %d x %s KB blocks in %.4f s\nRead speed is  %s MB/s\n"+
			"  max: %s, min: %s\n",
		r.Read.Blocks, formatUnits(r.Read.BlockSize, 1<<10),
		r.Read.TotalSeconds, r.Read.Average, r.Read.Fastest, r.Read.Slowest)
	return err
}

func (r *Report) writeJSON(w io.Writer) error {
	return json.WriteWithIndent(w, "    ", r)
}
