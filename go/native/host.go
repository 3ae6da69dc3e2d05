package native

import (
	"fmt"
	"runtime"
	"strconv"
)

// HostInfo identifies the running process: architecture family, word
// size and operating system.
type HostInfo struct {
	Arch string
	Bits int
	OS   string
}

func (h HostInfo) String() string {
	return fmt.Sprintf("%s/%s (%d-bit)", h.OS, h.Arch, h.Bits)
}

// Detect reports the running host. Arch is the Go architecture name;
// profile lookup resolves it through aliases.
func Detect() HostInfo {
	return HostInfo{
		Arch: runtime.GOARCH,
		Bits: strconv.IntSize,
		OS:   runtime.GOOS,
	}
}
