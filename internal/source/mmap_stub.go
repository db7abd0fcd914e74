//go:build !linux

package source

import (
	"fmt"
	"os"
)

func mapFile(f *os.File, size int64) ([]byte, func(), error) {
	return nil, nil, fmt.Errorf("mmap not supported on this platform")
}
