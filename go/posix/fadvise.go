package posix

import "syscall"

// Fadvise is a posix_fadvise advice value.
type Fadvise int

const (
	FadviseNormal Fadvise = iota
	FadviseRandom
	FadviseSequential
	FadviseWillNeed
	FadviseDontNeed
	FadviseNoReuse
)

var fadviseNames = []string{"normal", "random", "sequential", "willneed", "dontneed", "noreuse"}

func (f Fadvise) String() string {
	if f >= 0 && int(f) < len(fadviseNames) {
		return fadviseNames[f]
	}
	return "invalid"
}

// ParseFadvise looks an advice value up by name.
func ParseFadvise(name string) (Fadvise, bool) {
	for i, n := range fadviseNames {
		if n == name {
			return Fadvise(i), true
		}
	}
	return 0, false
}

// PosixFadvise passes straight through to the native call and returns its
// error number, 0 on success.
func (p *POSIX) PosixFadvise(fd int, offset, length int64, advice Fadvise) int {
	sym, err := p.resolve("posix_fadvise")
	if err != nil {
		p.handler.Warn(WarnUnimplemented, "posix_fadvise is not implemented on this platform")
		return int(syscall.ENOSYS)
	}
	ret, errno := sym.Call(fd, offset, length, int(advice))
	if ret < 0 {
		return int(errno)
	}
	return ret
}
