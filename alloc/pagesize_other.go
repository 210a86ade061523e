//go:build !unix

package alloc

import "os"

func pageSize() int {
	return os.Getpagesize()
}
