//go:build !unix

package fsinfo

import "errors"

func getDevnum(name string) (uint64, error) {
	return 0, errors.New("device numbers not supported")
}
