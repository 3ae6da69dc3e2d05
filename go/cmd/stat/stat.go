package stat

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/pkg/errors"

	"github.com/lunixbochs/goposix/go/cmd"
	"github.com/lunixbochs/goposix/go/posix"
)

func fileType(st *posix.FileStat) string {
	switch st.Mode() & posix.S_IFMT {
	case posix.S_IFREG:
		if st.Size() == 0 {
			return "regular empty file"
		}
		return "regular file"
	case posix.S_IFDIR:
		return "directory"
	case posix.S_IFLNK:
		return "symbolic link"
	case posix.S_IFCHR:
		return "character special file"
	case posix.S_IFBLK:
		return "block special file"
	case posix.S_IFIFO:
		return "fifo"
	case posix.S_IFSOCK:
		return "socket"
	}
	return "unknown"
}

func stamp(sec, nsec int64) string {
	return time.Unix(sec, nsec).Format("2006-01-02 15:04:05.000000000 -0700")
}

// Print writes st in the layout of stat(1).
func Print(c *cmd.Cmd, w io.Writer, name string, st *posix.FileStat, d posix.StatDecision) {
	label := func(s string) string { return c.Colorize(s, "cyan") }
	fmt.Fprintf(w, "%s %s\n", label("  File:"), name)
	fmt.Fprintf(w, "%s %-10d %s %-10d %s %-6d %s\n", label("  Size:"), st.Size(),
		label("Blocks:"), st.Blocks(), label("IO Block:"), st.BlockSize(), fileType(st))
	fmt.Fprintf(w, "%s %-10s %s %-10d %s %d\n", label("Device:"), fmt.Sprintf("%xh/%dd", st.Dev(), st.Dev()),
		label("Inode:"), st.Ino(), label("Links:"), st.Nlink())
	fmt.Fprintf(w, "%s (%04o/%s)  %s %d  %s %d\n", label("Access:"), st.Mode()&07777, st.FileMode(),
		label("Uid:"), st.Uid(), label("Gid:"), st.Gid())
	fmt.Fprintf(w, "%s %s\n", label("Access:"), stamp(st.Atime(), st.ATimeNanoSecs()))
	fmt.Fprintf(w, "%s %s\n", label("Modify:"), stamp(st.Mtime(), st.MTimeNanoSecs()))
	fmt.Fprintf(w, "%s %s\n", label("Change:"), stamp(st.Ctime(), st.CTimeNanoSecs()))
	fmt.Fprintf(w, "%s %s via %s\n", label("Layout:"), st.Layout(), d)
}

func statMain(op string) func(args []string) int {
	return func(args []string) int {
		c := cmd.New(op, "<path> [path...]")
		return c.Run(args, func(c *cmd.Cmd, paths []string) error {
			if len(paths) == 0 {
				c.Flags.Usage()
				return errors.New("no paths given")
			}
			p, err := c.POSIX()
			if err != nil {
				return err
			}
			call := p.Stat
			if op == "lstat" {
				call = p.Lstat
			}
			for _, path := range paths {
				st, err := call(path)
				if err != nil {
					return err
				}
				Print(c, c.Out, path, st, p.Decision())
			}
			return nil
		})
	}
}

func fstatMain(args []string) int {
	var fd *int
	c := cmd.New("fstat", "[-fd N | path...]")
	c.Setup = func(fs *flag.FlagSet) {
		fd = fs.Int("fd", -1, "stat an inherited descriptor instead of opening paths")
	}
	return c.Run(args, func(c *cmd.Cmd, paths []string) error {
		p, err := c.POSIX()
		if err != nil {
			return err
		}
		if *fd >= 0 {
			st, err := p.Fstat(*fd)
			if err != nil {
				return err
			}
			Print(c, c.Out, "fd "+strconv.Itoa(*fd), st, p.Decision())
			return nil
		}
		if len(paths) == 0 {
			c.Flags.Usage()
			return errors.New("no paths given")
		}
		for _, path := range paths {
			f, err := os.Open(path)
			if err != nil {
				return errors.Wrap(err, "open")
			}
			st, err := p.FstatFile(f)
			f.Close()
			if err != nil {
				return err
			}
			Print(c, c.Out, path, st, p.Decision())
		}
		return nil
	})
}

func init() {
	cmd.Register("stat", "stat files, following symlinks", statMain("stat"))
	cmd.Register("lstat", "stat files without following symlinks", statMain("lstat"))
	cmd.Register("fstat", "stat open files by descriptor", fstatMain)
}
