package main

import (
	"fmt"

	"github.com/Cloud-Foundations/Dominator/lib/format"
	"github.com/Cloud-Foundations/Dominator/lib/log"
	"github.com/Cloud-Foundations/diskspeed/lib/diskbench"
	"github.com/Cloud-Foundations/diskspeed/lib/fsinfo"
)

func checkSpace(config diskbench.Config, logger log.Logger) error {
	info, err := fsinfo.Lookup(config.Filename)
	if err != nil {
		logger.Printf("cannot describe file-system for: %s: %s\n",
			config.Filename, err)
		return nil
	}
	logger.Printf("File-system: %s\n", info)
	if required := fsinfo.RequiredSpace(config.Filename,
		config.TotalSize); required > info.Free {
		return &diskbench.ConfigError{
			Field: "TotalSize",
			Reason: fmt.Sprintf("need %s free on %s, have %s",
				format.FormatBytes(required), info.MountPoint,
				format.FormatBytes(info.Free)),
		}
	}
	return nil
}
