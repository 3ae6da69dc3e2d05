package posix

import (
	"strconv"
	"sync"
	"syscall"

	log "github.com/sirupsen/logrus"

	"github.com/lunixbochs/goposix/go/models"
	"github.com/lunixbochs/goposix/go/native"
)

// fakeLibC serves stat records from a table of paths, encoded with the
// layout of the architecture under test.
type fakeLibC struct {
	mu    sync.Mutex
	calls []string

	layout     *models.Layout
	files      map[string]map[string]uint64
	xstatErrno syscall.Errno
	syscalls   []int
	syscallRet int
	tms        []byte
	sysconf    map[int]int64
	confstr    map[int]string
}

func newFakeLibC(a *models.Arch) *fakeLibC {
	return &fakeLibC{
		layout: a.Stat,
		files: map[string]map[string]uint64{
			"/dev/null": {models.StatMode: S_IFCHR | 0666, models.StatRdev: 0x103},
		},
		sysconf: map[int]int64{SC_PAGESIZE: 4096, SC_CHILD_MAX: -1},
		confstr: map[int]string{CS_PATH: "/bin:/usr/bin"},
	}
}

func (f *fakeLibC) record(name string) {
	f.mu.Lock()
	f.calls = append(f.calls, name)
	f.mu.Unlock()
}

func (f *fakeLibC) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

func (f *fakeLibC) fill(key string, buf []byte) int {
	vals, ok := f.files[key]
	if !ok {
		return -int(syscall.ENOENT)
	}
	out, err := f.layout.Encode(vals)
	if err != nil {
		panic(err)
	}
	copy(buf, out)
	return 0
}

func (f *fakeLibC) Stat(path string, buf []byte) int {
	f.record("stat")
	return f.fill(path, buf)
}

func (f *fakeLibC) Lstat(path string, buf []byte) int {
	f.record("lstat")
	return f.fill(path, buf)
}

func (f *fakeLibC) Fstat(fd int, buf []byte) int {
	f.record("fstat")
	return f.fill("fd:"+strconv.Itoa(fd), buf)
}

func (f *fakeLibC) Xstat64(ver int, path string, buf []byte) int {
	f.record("__xstat64")
	if f.xstatErrno != 0 {
		return -int(f.xstatErrno)
	}
	return f.fill(path, buf)
}

func (f *fakeLibC) Lxstat64(ver int, path string, buf []byte) int {
	f.record("__lxstat64")
	return f.fill(path, buf)
}

func (f *fakeLibC) Fxstat64(ver int, fd int, buf []byte) int {
	f.record("__fxstat64")
	return f.fill("fd:"+strconv.Itoa(fd), buf)
}

func (f *fakeLibC) Syscall(nr int, a1, a2, a3 uintptr) int {
	f.record("syscall")
	f.mu.Lock()
	f.syscalls = append(f.syscalls, nr)
	f.mu.Unlock()
	return f.syscallRet
}

func (f *fakeLibC) PosixFadvise(fd int, offset, length int64, advice int) int {
	f.record("posix_fadvise")
	if advice > int(FadviseNoReuse) {
		return int(syscall.EINVAL)
	}
	return 0
}

func (f *fakeLibC) Times(buf []byte) int {
	f.record("times")
	copy(buf, f.tms)
	return 1234
}

func (f *fakeLibC) Sysconf(name int, val *int64) int {
	f.record("sysconf")
	v, ok := f.sysconf[name]
	if !ok {
		return -int(syscall.EINVAL)
	}
	*val = v
	return 0
}

func (f *fakeLibC) Confstr(name int, buf []byte) int {
	f.record("confstr")
	v, ok := f.confstr[name]
	if !ok {
		return -int(syscall.EINVAL)
	}
	if len(buf) > 0 {
		n := copy(buf[:len(buf)-1], v)
		buf[n] = 0
	}
	return len(v) + 1
}

func (f *fakeLibC) Fpathconf(fd, name int, val *int64) int {
	f.record("fpathconf")
	if fd < 0 {
		return -int(syscall.EBADF)
	}
	if name != PC_NAME_MAX {
		return -int(syscall.EINVAL)
	}
	*val = 255
	return 0
}

func quietLogger() *log.Logger {
	l := log.New()
	l.SetLevel(log.PanicLevel)
	return l
}

func newTestPOSIX(a *models.Arch, f *fakeLibC, opts ...func(*native.MethodLibrary)) *POSIX {
	p, err := New(
		WithArch(a),
		WithLibrary(native.NewLibrary("libc.so.6", f, opts...)),
		WithLogger(quietLogger()),
	)
	if err != nil {
		panic(err)
	}
	return p
}
