package posix

import (
	"errors"
	"os"
	"path/filepath"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

func hostPOSIX(t *testing.T) *POSIX {
	p, err := New(WithLogger(quietLogger()))
	if err != nil {
		t.Skipf("no profile for this host: %v", err)
	}
	if p.Decision().Generation == Unsupported {
		t.Skip("host has no stat interface")
	}
	return p
}

func TestHostStatSizes(t *testing.T) {
	p := hostPOSIX(t)
	dir := t.TempDir()
	for _, size := range []int{0, 1, 4096, 1 << 20} {
		path := filepath.Join(dir, "f")
		require.NoError(t, os.WriteFile(path, make([]byte, size), 0644))

		st, err := p.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, int64(size), st.Size())
		assert.True(t, st.IsRegular())
		assert.Equal(t, uint32(0644), st.Mode()&0777)

		lst, err := p.Lstat(path)
		require.NoError(t, err)
		assert.Equal(t, st.Ino(), lst.Ino())
		assert.Equal(t, st.Dev(), lst.Dev())
		assert.Equal(t, st.Size(), lst.Size())
		assert.Equal(t, st.Mode(), lst.Mode())
		assert.Equal(t, st.ModTime(), lst.ModTime())
		assert.Equal(t, st.Ctime(), lst.Ctime())
	}
}

func TestHostMatchesOsStat(t *testing.T) {
	p := hostPOSIX(t)
	path := filepath.Join(t.TempDir(), "f")
	require.NoError(t, os.WriteFile(path, []byte("hello"), 0600))

	fi, err := os.Stat(path)
	require.NoError(t, err)
	sys := fi.Sys().(*syscall.Stat_t)

	st, err := p.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, uint64(sys.Ino), st.Ino())
	assert.Equal(t, uint64(sys.Nlink), st.Nlink())
	assert.Equal(t, fi.Mode(), st.FileMode())
	assert.Equal(t, fi.ModTime().UnixNano(), st.ModTime().UnixNano())
	assert.Equal(t, uint32(os.Getuid()), st.Uid())
}

func TestHostSymlink(t *testing.T) {
	p := hostPOSIX(t)
	dir := t.TempDir()
	target := filepath.Join(dir, "target")
	link := filepath.Join(dir, "link")
	require.NoError(t, os.WriteFile(target, []byte("x"), 0644))
	require.NoError(t, os.Symlink(target, link))

	st, err := p.Stat(link)
	require.NoError(t, err)
	assert.True(t, st.IsRegular())

	lst, err := p.Lstat(link)
	require.NoError(t, err)
	assert.True(t, lst.IsSymlink())
	assert.NotEqual(t, st.Ino(), lst.Ino())
}

func TestHostFstat(t *testing.T) {
	p := hostPOSIX(t)
	f, err := os.CreateTemp(t.TempDir(), "fstat")
	require.NoError(t, err)
	defer f.Close()
	_, err = f.Write(make([]byte, 100))
	require.NoError(t, err)

	st, err := p.FstatFile(f)
	require.NoError(t, err)
	assert.Equal(t, int64(100), st.Size())

	byPath, err := p.Stat(f.Name())
	require.NoError(t, err)
	assert.Equal(t, byPath.Ino(), st.Ino())

	st, err = p.Fstat(int(f.Fd()))
	require.NoError(t, err)
	assert.Equal(t, byPath.Ino(), st.Ino())
}

func TestHostENOENT(t *testing.T) {
	p := hostPOSIX(t)
	path := filepath.Join(t.TempDir(), "missing")
	_, err := p.Stat(path)
	assert.True(t, errors.Is(err, syscall.ENOENT))
	var pe *Error
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, path, pe.Arg)

	_, err = p.Lstat(path)
	assert.True(t, errors.Is(err, syscall.ENOENT))
}

func TestHostDevNull(t *testing.T) {
	p := hostPOSIX(t)
	st, err := p.Stat("/dev/null")
	require.NoError(t, err)
	assert.Equal(t, uint32(S_IFCHR), st.Mode()&S_IFMT)
	assert.NotZero(t, st.Rdev())
}

func TestHostFadviseAndTimes(t *testing.T) {
	p := hostPOSIX(t)
	f, err := os.CreateTemp(t.TempDir(), "fadvise")
	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, 0, p.PosixFadvise(int(f.Fd()), 0, 0, FadviseSequential))
	assert.Equal(t, int(syscall.EBADF), p.PosixFadvise(-1, 0, 0, FadviseNormal))

	tms, err := p.Times()
	require.NoError(t, err)
	assert.GreaterOrEqual(t, tms.Utime, int64(0))
}

func TestHostIoprio(t *testing.T) {
	p := hostPOSIX(t)
	if _, ok := p.Arch().Syscalls.Lookup("ioprio_get"); !ok {
		t.Skip("no ioprio on this profile")
	}
	prio, err := p.IoprioGet(IOPRIO_WHO_PROCESS, 0)
	if errors.Is(err, syscall.ENOSYS) {
		t.Skip("kernel has no ioprio_get")
	}
	require.NoError(t, err)
	assert.GreaterOrEqual(t, prio, 0)
}

func TestHostConf(t *testing.T) {
	p := hostPOSIX(t)
	v, err := p.Sysconf(SC_PAGESIZE)
	require.NoError(t, err)
	assert.Equal(t, int64(os.Getpagesize()), v)

	v, err = p.Sysconf(SC_CLK_TCK)
	require.NoError(t, err)
	assert.Equal(t, int64(100), v)

	v, err = p.Sysconf(SC_NPROCESSORS_ONLN)
	require.NoError(t, err)
	assert.Positive(t, v)

	path, err := p.Confstr(CS_PATH)
	require.NoError(t, err)
	assert.Equal(t, "/bin:/usr/bin", path)

	f, err := os.Open(t.TempDir())
	require.NoError(t, err)
	defer f.Close()
	var fs unix.Statfs_t
	require.NoError(t, unix.Fstatfs(int(f.Fd()), &fs))
	v, err = p.Fpathconf(int(f.Fd()), PC_NAME_MAX)
	require.NoError(t, err)
	assert.Equal(t, int64(fs.Namelen), v)

	v, err = p.Fpathconf(int(f.Fd()), PC_LINK_MAX)
	require.NoError(t, err)
	assert.Positive(t, v)

	_, err = p.Fpathconf(-1, PC_NAME_MAX)
	assert.True(t, errors.Is(err, syscall.EBADF))
}
