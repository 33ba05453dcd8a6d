/*
	Package fsinfo describes the file-system which holds a file.
*/
package fsinfo

// Info describes a mounted file-system. Sizes are in bytes.
type Info struct {
	Device     string
	MountPoint string
	FsType     string
	Total      uint64
	Free       uint64
}

// Lookup returns information about the file-system which holds filename.
// The file need not exist, but its directory must.
func Lookup(filename string) (*Info, error) {
	return lookup(filename)
}

// RequiredSpace returns the number of free bytes needed to write totalSize
// bytes to filename. An existing file is truncated before writing, so the
// space it occupies is available.
func RequiredSpace(filename string, totalSize uint64) uint64 {
	return requiredSpace(filename, totalSize)
}

func (info *Info) String() string {
	return info.format()
}
