package native

import (
	"runtime"
	"strconv"
	"sync"
	"unsafe"

	"github.com/pkg/errors"
	"github.com/tklauser/go-sysconf"
	"golang.org/x/sys/unix"
)

// fstatat(2) numbers. 32-bit hosts use fstatat64, which fills struct
// stat64; 64-bit hosts fill their native struct stat.
var fstatatNumbers = map[string]int{
	"386":      300,
	"amd64":    262,
	"arm":      327,
	"arm64":    79,
	"riscv64":  79,
	"ppc64":    291,
	"ppc64le":  291,
	"mips64":   5252,
	"mips64le": 5252,
}

var statSymbols = []string{"stat", "lstat", "fstat", "__xstat64", "__lxstat64", "__fxstat64"}

// the largest stat record any profile describes is 144 bytes
const scratchSize = 256

type linuxLibC struct {
	fstatat  uintptr
	versions map[int]bool
}

var (
	libcOnce sync.Once
	libc     *MethodLibrary
)

// LibC returns the process C library binding. Stat entry points are
// served by the kernel directly and are hidden on architectures whose
// fstatat number is not known.
func LibC() Library {
	libcOnce.Do(func() {
		impl := &linuxLibC{versions: map[int]bool{0: true, 1: true}}
		if runtime.GOARCH == "386" || runtime.GOARCH == "arm" {
			impl.versions = map[int]bool{3: true}
		}
		var opts []func(*MethodLibrary)
		if nr, ok := fstatatNumbers[runtime.GOARCH]; ok {
			impl.fstatat = uintptr(nr)
		} else {
			opts = append(opts, Without(statSymbols...))
		}
		libc = NewLibrary("libc.so.6", impl, opts...)
	})
	return libc
}

func (l *linuxLibC) statat(dirfd int, path string, flags int, buf []byte) int {
	p, err := unix.BytePtrFromString(path)
	if err != nil {
		return -int(unix.EINVAL)
	}
	var scratch [scratchSize]byte
	_, _, errno := unix.Syscall6(l.fstatat, uintptr(dirfd), uintptr(unsafe.Pointer(p)),
		uintptr(unsafe.Pointer(&scratch[0])), uintptr(flags), 0, 0)
	if errno != 0 {
		return -int(errno)
	}
	copy(buf, scratch[:])
	return 0
}

func (l *linuxLibC) Stat(path string, buf []byte) int {
	return l.statat(unix.AT_FDCWD, path, 0, buf)
}

func (l *linuxLibC) Lstat(path string, buf []byte) int {
	return l.statat(unix.AT_FDCWD, path, unix.AT_SYMLINK_NOFOLLOW, buf)
}

func (l *linuxLibC) Fstat(fd int, buf []byte) int {
	return l.statat(fd, "", unix.AT_EMPTY_PATH, buf)
}

// Xstat64 and friends take the glibc stat interface version first.
// Unknown versions fail the way glibc does.
func (l *linuxLibC) Xstat64(ver int, path string, buf []byte) int {
	if !l.versions[ver] {
		return -int(unix.EINVAL)
	}
	return l.Stat(path, buf)
}

func (l *linuxLibC) Lxstat64(ver int, path string, buf []byte) int {
	if !l.versions[ver] {
		return -int(unix.EINVAL)
	}
	return l.Lstat(path, buf)
}

func (l *linuxLibC) Fxstat64(ver int, fd int, buf []byte) int {
	if !l.versions[ver] {
		return -int(unix.EINVAL)
	}
	return l.Fstat(fd, buf)
}

// Syscall is syscall(2) for up to three word arguments.
func (l *linuxLibC) Syscall(nr int, a1, a2, a3 uintptr) int {
	r1, _, errno := unix.Syscall(uintptr(nr), a1, a2, a3)
	if errno != 0 {
		return -int(errno)
	}
	return int(r1)
}

// PosixFadvise returns the error number rather than setting errno.
func (l *linuxLibC) PosixFadvise(fd int, offset, length int64, advice int) int {
	if err := unix.Fadvise(fd, offset, length, advice); err != nil {
		if errno, ok := err.(unix.Errno); ok {
			return int(errno)
		}
		return int(unix.EINVAL)
	}
	return 0
}

func (l *linuxLibC) Times(buf []byte) int {
	var scratch [scratchSize]byte
	r1, _, errno := unix.RawSyscall(unix.SYS_TIMES, uintptr(unsafe.Pointer(&scratch[0])), 0, 0)
	if errno != 0 {
		return -int(errno)
	}
	copy(buf, scratch[:])
	// clock_t may wrap; only the record matters to callers
	return int(r1 &^ (1 << (strconv.IntSize - 1)))
}

func errnoOf(err error) int {
	var errno unix.Errno
	if errors.As(err, &errno) {
		return int(errno)
	}
	return int(unix.EINVAL)
}

// Sysconf stores the limit in val. Names follow glibc's _SC_ numbering.
func (l *linuxLibC) Sysconf(name int, val *int64) int {
	v, err := sysconf.Sysconf(name)
	if err != nil {
		return -errnoOf(err)
	}
	*val = v
	return 0
}

const csPath = "/bin:/usr/bin"

// Confstr copies a NUL-terminated, possibly truncated value into buf and
// returns the full length including the NUL.
func (l *linuxLibC) Confstr(name int, buf []byte) int {
	if name != 0 {
		return -int(unix.EINVAL)
	}
	if len(buf) > 0 {
		n := copy(buf[:len(buf)-1], csPath)
		buf[n] = 0
	}
	return len(csPath) + 1
}

// LINK_MAX by filesystem magic; others get the kernel's LINK_MAX.
var linkMax = map[uint32]int64{
	unix.EXT4_SUPER_MAGIC:  65000,
	unix.BTRFS_SUPER_MAGIC: 65535,
	unix.XFS_SUPER_MAGIC:   2147483647,
}

// Fpathconf answers from fstatfs(2) and the kernel's fixed limits.
func (l *linuxLibC) Fpathconf(fd, name int, val *int64) int {
	var st unix.Statfs_t
	if err := unix.Fstatfs(fd, &st); err != nil {
		return -errnoOf(err)
	}
	switch name {
	case 0:
		*val = 127
		if n, ok := linkMax[uint32(st.Type)]; ok {
			*val = n
		}
	case 1, 2:
		*val = 255
	case 3:
		*val = int64(st.Namelen)
	case 4, 5:
		*val = 4096
	case 6, 7:
		*val = 1
	case 8:
		*val = 0
	case 13:
		*val = 64
	case 20:
		*val = 1
	default:
		return -int(unix.EINVAL)
	}
	return 0
}
