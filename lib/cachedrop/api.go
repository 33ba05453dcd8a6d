/*
	Package cachedrop evicts file data from the operating system page cache.
*/
package cachedrop

import (
	"errors"

	"github.com/Cloud-Foundations/Dominator/lib/log"
)

var ErrUnsupported = errors.New("dropping caches is not supported")

// Mode selects how caches are dropped. It satisfies the standard library
// flag.Value interface.
type Mode uint

const (
	ModeAuto    Mode = iota // Try ModeProc, fall back to ModeFadvise.
	ModeProc                // Drop all clean caches system-wide (root only).
	ModeFadvise             // Advise the kernel to drop the file's pages.
	ModeNone
)

type Dropper struct {
	mode   Mode
	logger log.DebugLogger
}

func New(mode Mode, logger log.DebugLogger) *Dropper {
	return &Dropper{mode: mode, logger: logger}
}

// DropCaches evicts cached data for filename according to the mode of the
// Dropper.
func (d *Dropper) DropCaches(filename string) error {
	return d.dropCaches(filename)
}

func (d *Dropper) Mode() Mode { return d.mode }
