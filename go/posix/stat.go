package posix

import (
	"os"
	"strconv"
	"syscall"

	"github.com/pkg/errors"
)

// statCall names one stat-family operation and its entry point in each
// generation.
type statCall struct {
	op        string
	legacy    string
	versioned string
}

var (
	statOp  = statCall{op: "stat", legacy: "stat", versioned: "__xstat64"}
	lstatOp = statCall{op: "lstat", legacy: "lstat", versioned: "__lxstat64"}
	fstatOp = statCall{op: "fstat", legacy: "fstat", versioned: "__fxstat64"}
)

// Stat follows symlinks.
func (p *POSIX) Stat(path string) (*FileStat, error) {
	return p.stat(statOp, path, path)
}

func (p *POSIX) Lstat(path string) (*FileStat, error) {
	return p.stat(lstatOp, path, path)
}

func (p *POSIX) Fstat(fd int) (*FileStat, error) {
	return p.stat(fstatOp, fd, strconv.Itoa(fd))
}

// FstatFile stats an open file through its descriptor.
func (p *POSIX) FstatFile(f *os.File) (*FileStat, error) {
	rc, err := f.SyscallConn()
	if err != nil {
		return nil, errors.Wrapf(err, "fstat %s", f.Name())
	}
	var st *FileStat
	var serr error
	err = rc.Control(func(fd uintptr) {
		st, serr = p.stat(fstatOp, int(fd), strconv.Itoa(int(fd)))
	})
	if err != nil {
		return nil, errors.Wrapf(err, "fstat %s", f.Name())
	}
	return st, serr
}

func (p *POSIX) stat(c statCall, operand interface{}, arg string) (*FileStat, error) {
	d := p.Decision()
	var name string
	switch d.Generation {
	case Modern:
		name = c.versioned
	case Legacy:
		name = c.legacy
	default:
		return nil, p.unimplemented(c.op)
	}
	sym, err := p.resolve(name)
	if err != nil {
		return nil, p.unimplemented(c.op)
	}
	layout := p.arch.Stat
	buf := layout.Alloc()
	var ret int
	var errno syscall.Errno
	if d.Generation == Modern {
		ret, errno = sym.Call(d.Version, operand, buf)
	} else {
		ret, errno = sym.Call(operand, buf)
	}
	if ret < 0 {
		return nil, p.fail(errno, c.op, arg)
	}
	rec, err := layout.Decode(buf)
	if err != nil {
		return nil, errors.Wrapf(err, "%s %s", c.op, arg)
	}
	return &FileStat{rec: rec}, nil
}
