package cachedrop

import (
	"os"

	"golang.org/x/sys/unix"
)

var dropCachesFilename = "/proc/sys/vm/drop_caches"

// dropSystemCaches frees the page cache, dentries and inodes.
func dropSystemCaches() error {
	file, err := os.OpenFile(dropCachesFilename, os.O_WRONLY, 0)
	if err != nil {
		return err
	}
	defer file.Close()
	unix.Sync()
	if _, err := file.Write([]byte("3")); err != nil {
		return err
	}
	return file.Close()
}

func dropFileCaches(filename string) error {
	file, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer file.Close()
	fd := int(file.Fd())
	// Dirty pages are not evicted by POSIX_FADV_DONTNEED.
	if err := unix.Fdatasync(fd); err != nil {
		return &os.PathError{Op: "fdatasync", Path: filename, Err: err}
	}
	if err := unix.Fadvise(fd, 0, 0, unix.FADV_DONTNEED); err != nil {
		return &os.PathError{Op: "fadvise", Path: filename, Err: err}
	}
	return nil
}
