//go:build !linux

package cachedrop

func dropSystemCaches() error {
	return ErrUnsupported
}

func dropFileCaches(filename string) error {
	return ErrUnsupported
}
