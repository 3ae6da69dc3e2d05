//go:build !linux

package native

import "sync"

type noLibC struct{}

var (
	libcOnce sync.Once
	libc     *MethodLibrary
)

// LibC returns a library that resolves nothing; every stat generation
// probe on these systems ends in a link failure.
func LibC() Library {
	libcOnce.Do(func() {
		libc = NewLibrary("libc", noLibC{})
	})
	return libc
}
