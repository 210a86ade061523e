//go:build unix

package alloc

import "golang.org/x/sys/unix"

func pageSize() int {
	return unix.Getpagesize()
}
