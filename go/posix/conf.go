package posix

import (
	"sort"
	"strconv"
)

// sysconf(3) names, glibc numbering.
const (
	SC_ARG_MAX          = 0
	SC_CHILD_MAX        = 1
	SC_CLK_TCK          = 2
	SC_NGROUPS_MAX      = 3
	SC_OPEN_MAX         = 4
	SC_PAGESIZE         = 30
	SC_LINE_MAX         = 43
	SC_LOGIN_NAME_MAX   = 71
	SC_NPROCESSORS_CONF = 83
	SC_NPROCESSORS_ONLN = 84
	SC_PHYS_PAGES       = 85
	SC_SYMLOOP_MAX      = 173
	SC_HOST_NAME_MAX    = 180
)

// fpathconf(3) names.
const (
	PC_LINK_MAX         = 0
	PC_MAX_CANON        = 1
	PC_MAX_INPUT        = 2
	PC_NAME_MAX         = 3
	PC_PATH_MAX         = 4
	PC_PIPE_BUF         = 5
	PC_CHOWN_RESTRICTED = 6
	PC_NO_TRUNC         = 7
	PC_VDISABLE         = 8
	PC_FILESIZEBITS     = 13
	PC_2_SYMLINKS       = 20
)

// confstr(3) names.
const CS_PATH = 0

var sysconfNames = map[string]int{
	"arg_max":          SC_ARG_MAX,
	"child_max":        SC_CHILD_MAX,
	"clk_tck":          SC_CLK_TCK,
	"ngroups_max":      SC_NGROUPS_MAX,
	"open_max":         SC_OPEN_MAX,
	"pagesize":         SC_PAGESIZE,
	"line_max":         SC_LINE_MAX,
	"login_name_max":   SC_LOGIN_NAME_MAX,
	"nprocessors_conf": SC_NPROCESSORS_CONF,
	"nprocessors_onln": SC_NPROCESSORS_ONLN,
	"phys_pages":       SC_PHYS_PAGES,
	"symloop_max":      SC_SYMLOOP_MAX,
	"host_name_max":    SC_HOST_NAME_MAX,
}

var pathconfNames = map[string]int{
	"link_max":         PC_LINK_MAX,
	"max_canon":        PC_MAX_CANON,
	"max_input":        PC_MAX_INPUT,
	"name_max":         PC_NAME_MAX,
	"path_max":         PC_PATH_MAX,
	"pipe_buf":         PC_PIPE_BUF,
	"chown_restricted": PC_CHOWN_RESTRICTED,
	"no_trunc":         PC_NO_TRUNC,
	"vdisable":         PC_VDISABLE,
	"filesizebits":     PC_FILESIZEBITS,
	"2_symlinks":       PC_2_SYMLINKS,
}

// ParseSysconf looks a sysconf name up without its _SC_ prefix, e.g.
// "pagesize".
func ParseSysconf(name string) (int, bool) {
	n, ok := sysconfNames[name]
	return n, ok
}

func ParsePathconf(name string) (int, bool) {
	n, ok := pathconfNames[name]
	return n, ok
}

// SysconfNames lists the names ParseSysconf knows, sorted.
func SysconfNames() []string { return sortedKeys(sysconfNames) }

func PathconfNames() []string { return sortedKeys(pathconfNames) }

func sortedKeys(m map[string]int) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Sysconf returns a runtime system limit. An indeterminate limit is -1
// with a nil error.
func (p *POSIX) Sysconf(name int) (int64, error) {
	sym, err := p.resolve("sysconf")
	if err != nil {
		return -1, p.unimplemented("sysconf")
	}
	var val int64
	if ret, errno := sym.Call(name, &val); ret < 0 {
		return -1, p.fail(errno, "sysconf", strconv.Itoa(name))
	}
	return val, nil
}

// Fpathconf returns a limit of the filesystem holding an open descriptor.
func (p *POSIX) Fpathconf(fd, name int) (int64, error) {
	sym, err := p.resolve("fpathconf")
	if err != nil {
		return -1, p.unimplemented("fpathconf")
	}
	var val int64
	if ret, errno := sym.Call(fd, name, &val); ret < 0 {
		return -1, p.fail(errno, "fpathconf", strconv.Itoa(fd))
	}
	return val, nil
}

// Confstr returns a configuration string such as CS_PATH.
func (p *POSIX) Confstr(name int) (string, error) {
	sym, err := p.resolve("confstr")
	if err != nil {
		return "", p.unimplemented("confstr")
	}
	buf := make([]byte, 64)
	for {
		// the result counts the terminating NUL
		ret, errno := sym.Call(name, buf)
		if ret < 0 {
			return "", p.fail(errno, "confstr", strconv.Itoa(name))
		}
		if ret == 0 {
			return "", nil
		}
		if ret <= len(buf) {
			return string(buf[:ret-1]), nil
		}
		buf = make([]byte, ret)
	}
}
