//go:build unix

package fsinfo

import "syscall"

func getDevnum(name string) (uint64, error) {
	var stat syscall.Stat_t
	if err := syscall.Stat(name, &stat); err != nil {
		return 0, err
	}
	return uint64(stat.Dev), nil
}
