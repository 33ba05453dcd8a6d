package cachedrop

import (
	"errors"
	"fmt"
)

var modeNames = []string{
	ModeAuto:    "auto",
	ModeProc:    "proc",
	ModeFadvise: "fadvise",
	ModeNone:    "none",
}

func (d *Dropper) dropCaches(filename string) error {
	switch d.mode {
	case ModeNone:
		return nil
	case ModeProc:
		return dropSystemCaches()
	case ModeFadvise:
		return dropFileCaches(filename)
	case ModeAuto:
		err := dropSystemCaches()
		if err == nil {
			d.logger.Debugln(1, "dropped system page cache")
			return nil
		}
		d.logger.Debugf(0, "cannot drop system page cache: %s, using fadvise\n",
			err)
		return dropFileCaches(filename)
	}
	return fmt.Errorf("unknown cache drop mode: %s", d.mode)
}

func (mode Mode) String() string {
	if uint(mode) < uint(len(modeNames)) {
		return modeNames[mode]
	}
	return fmt.Sprintf("Mode(%d)", uint(mode))
}

func (mode *Mode) Set(value string) error {
	for index, name := range modeNames {
		if value == name {
			*mode = Mode(index)
			return nil
		}
	}
	return errors.New("unknown cache drop mode: " + value)
}
