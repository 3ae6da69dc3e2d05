// Package sys holds the subcommands for the calls that are not stat:
// ioprio, fadvise, times and getconf.
package sys

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"syscall"

	"github.com/pkg/errors"

	"github.com/lunixbochs/goposix/go/cmd"
	"github.com/lunixbochs/goposix/go/posix"
)

var classNames = map[int]string{
	posix.IOPRIO_CLASS_NONE: "none",
	posix.IOPRIO_CLASS_RT:   "realtime",
	posix.IOPRIO_CLASS_BE:   "best-effort",
	posix.IOPRIO_CLASS_IDLE: "idle",
}

// parsePrio reads "class[:data]", class by name or number.
func parsePrio(s string) (int, error) {
	parts := strings.SplitN(s, ":", 2)
	class := -1
	for n, name := range classNames {
		if name == parts[0] {
			class = n
		}
	}
	if class < 0 {
		n, err := strconv.Atoi(parts[0])
		if err != nil {
			return 0, errors.Errorf("bad ioprio class %q", parts[0])
		}
		class = n
	}
	data := 0
	if len(parts) == 2 {
		n, err := strconv.Atoi(parts[1])
		if err != nil {
			return 0, errors.Errorf("bad ioprio data %q", parts[1])
		}
		data = n
	}
	return posix.IoprioPrioValue(class, data), nil
}

func ioprioMain(args []string) int {
	var pid *int
	var set *string
	c := cmd.New("ioprio", "")
	c.Setup = func(fs *flag.FlagSet) {
		pid = fs.Int("pid", 0, "process to query (0 is the caller)")
		set = fs.String("set", "", "set priority to class[:data], e.g. best-effort:4 or idle")
	}
	return c.Run(args, func(c *cmd.Cmd, _ []string) error {
		p, err := c.POSIX()
		if err != nil {
			return err
		}
		if *set != "" {
			prio, err := parsePrio(*set)
			if err != nil {
				return err
			}
			if _, err := p.IoprioSet(posix.IOPRIO_WHO_PROCESS, *pid, prio); err != nil {
				return err
			}
		}
		prio, err := p.IoprioGet(posix.IOPRIO_WHO_PROCESS, *pid)
		if err != nil {
			return err
		}
		class := posix.IoprioClass(prio)
		fmt.Fprintf(c.Out, "%s: %s (class %d, data %d)\n",
			c.Colorize(p.Arch().Name, "cyan"), classNames[class], class, posix.IoprioData(prio))
		return nil
	})
}

func fadviseMain(args []string) int {
	var offset, length *int64
	c := cmd.New("fadvise", "<advice> <path>")
	c.Setup = func(fs *flag.FlagSet) {
		offset = fs.Int64("offset", 0, "start of the range")
		length = fs.Int64("len", 0, "length of the range (0 is to end of file)")
	}
	return c.Run(args, func(c *cmd.Cmd, args []string) error {
		if len(args) != 2 {
			c.Flags.Usage()
			return errors.New("need advice and path")
		}
		advice, ok := posix.ParseFadvise(args[0])
		if !ok {
			return errors.Errorf("unknown advice %q", args[0])
		}
		p, err := c.POSIX()
		if err != nil {
			return err
		}
		f, err := os.Open(args[1])
		if err != nil {
			return errors.Wrap(err, "open")
		}
		defer f.Close()
		if ret := p.PosixFadvise(int(f.Fd()), *offset, *length, advice); ret != 0 {
			return &posix.Error{Errno: syscall.Errno(ret), Op: "posix_fadvise", Arg: args[1]}
		}
		fmt.Fprintf(c.Out, "%s: %s\n", args[1], advice)
		return nil
	})
}

func timesMain(args []string) int {
	c := cmd.New("times", "")
	return c.Run(args, func(c *cmd.Cmd, _ []string) error {
		p, err := c.POSIX()
		if err != nil {
			return err
		}
		t, err := p.Times()
		if err != nil {
			return err
		}
		fmt.Fprintf(c.Out, "user %d system %d children user %d children system %d elapsed %d\n",
			t.Utime, t.Stime, t.Cutime, t.Cstime, t.Elapsed)
		return nil
	})
}

// writeConf prints sysconf values by name, all known names when none are
// given. With a path, its pathconf values follow.
func writeConf(w io.Writer, p *posix.POSIX, names []string, path string) error {
	if len(names) == 0 {
		names = posix.SysconfNames()
	}
	for _, name := range names {
		n, ok := posix.ParseSysconf(strings.ToLower(name))
		if !ok {
			return errors.Errorf("unknown sysconf name %q", name)
		}
		v, err := p.Sysconf(n)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%-18s %d\n", name, v)
	}
	cs, err := p.Confstr(posix.CS_PATH)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "%-18s %s\n", "path", cs)
	if path == "" {
		return nil
	}
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrap(err, "open")
	}
	defer f.Close()
	for _, name := range posix.PathconfNames() {
		n, _ := posix.ParsePathconf(name)
		v, err := p.Fpathconf(int(f.Fd()), n)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%-18s %d\n", name, v)
	}
	return nil
}

func getconfMain(args []string) int {
	var path *string
	c := cmd.New("getconf", "[name...]")
	c.Setup = func(fs *flag.FlagSet) {
		path = fs.String("path", "", "also print the pathconf limits of this file's filesystem")
	}
	return c.Run(args, func(c *cmd.Cmd, args []string) error {
		p, err := c.POSIX()
		if err != nil {
			return err
		}
		return writeConf(c.Out, p, args, *path)
	})
}

func init() {
	cmd.Register("ioprio", "get or set the I/O scheduling priority", ioprioMain)
	cmd.Register("fadvise", "declare an access pattern for a file", fadviseMain)
	cmd.Register("times", "print process times in clock ticks", timesMain)
	cmd.Register("getconf", "print system and filesystem limits", getconfMain)
}
