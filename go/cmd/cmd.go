package cmd

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/mgutz/ansi"
	"github.com/pkg/errors"

	"github.com/lunixbochs/goposix/go/arch"
	"github.com/lunixbochs/goposix/go/models"
	"github.com/lunixbochs/goposix/go/posix"
)

// Cmd holds the state shared by every subcommand: common flags, the
// loaded config and a lazily built POSIX instance.
type Cmd struct {
	Name  string
	Usage string
	Flags *flag.FlagSet

	// Setup registers subcommand flags before parsing.
	Setup func(fs *flag.FlagSet)

	Config *models.Config
	Out    io.Writer
	Err    io.Writer

	// Options are appended when building the POSIX instance.
	Options []posix.Option

	color bool
	posix *posix.POSIX
}

func New(name, usage string) *Cmd {
	return &Cmd{
		Name:  name,
		Usage: usage,
		Flags: flag.NewFlagSet(name, flag.ContinueOnError),
		Out:   os.Stdout,
		Err:   os.Stderr,
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}

// Parse handles the common flags, loads the config and returns the
// remaining positional arguments.
func (c *Cmd) Parse(argv []string) ([]string, error) {
	fs := c.Flags
	fs.SetOutput(c.Err)
	archName := fs.String("arch", "", "architecture profile to use instead of the host's")
	statVersion := fs.String("stat-version", "", "force the stat generation: auto, modern, legacy or unsupported")
	verbose := fs.Bool("v", false, "verbose logging")
	logLevel := fs.String("log-level", "", "logrus level (debug, info, warn, error)")
	color := fs.Bool("color", isTerminal(c.Out), "colorize output")
	configPath := fs.String("config", "", "YAML config file (default: config.yml in the user config dir)")
	if c.Setup != nil {
		c.Setup(fs)
	}
	fs.Usage = func() {
		fmt.Fprintf(c.Err, "Usage: %s [options] %s\n\nOptions:\n", argv[0], c.Usage)
		PrintFlags(c.Err, fs)
	}
	if err := fs.Parse(argv[1:]); err != nil {
		return nil, err
	}

	var err error
	if *configPath != "" {
		var data []byte
		if data, err = os.ReadFile(*configPath); err == nil {
			c.Config, err = models.ParseConfig(data)
		}
	} else {
		c.Config, err = models.LoadConfig()
	}
	if err != nil {
		return nil, errors.Wrap(err, "loading config")
	}
	// flags set on the command line win over the file
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "arch":
			c.Config.Arch = *archName
		case "stat-version":
			c.Config.StatVersion = strings.ToLower(*statVersion)
		case "v":
			c.Config.Verbose = *verbose
		case "log-level":
			c.Config.LogLevel = *logLevel
		}
	})
	c.color = *color
	if !flagSet(fs, "color") && c.Config.Color {
		c.color = true
	}
	if c.Config.Output == nil {
		c.Config.Output = c.Err
	}
	return fs.Args(), nil
}

func flagSet(fs *flag.FlagSet, name string) bool {
	found := false
	fs.Visit(func(f *flag.Flag) { found = found || f.Name == name })
	return found
}

// POSIX builds the dispatcher on first use.
func (c *Cmd) POSIX() (*posix.POSIX, error) {
	if c.posix == nil {
		opts := append([]posix.Option{posix.WithConfig(c.Config)}, c.Options...)
		p, err := posix.New(opts...)
		if err != nil {
			return nil, err
		}
		c.posix = p
	}
	return c.posix, nil
}

// Arch resolves the profile from -arch or the host, without touching the
// native library.
func (c *Cmd) Arch() (*models.Arch, error) {
	if c.Config.Arch != "" {
		return arch.GetArch(c.Config.Arch)
	}
	p, err := c.POSIX()
	if err != nil {
		return nil, err
	}
	return p.Arch(), nil
}

// Colorize wraps s in an ansi style when color output is on.
func (c *Cmd) Colorize(s, style string) string {
	if !c.color {
		return s
	}
	return ansi.ColorCode(style) + s + ansi.Reset
}

// Run parses argv, calls fn and turns its error into an exit status.
func (c *Cmd) Run(argv []string, fn func(c *Cmd, args []string) error) int {
	args, err := c.Parse(argv)
	if err == flag.ErrHelp {
		return 0
	} else if err != nil {
		fmt.Fprintf(c.Err, "%s\n", err)
		return 2
	}
	if err := fn(c, args); err != nil {
		c.PrintError(err)
		return 1
	}
	return 0
}

type stackTracer interface {
	StackTrace() errors.StackTrace
}

// PrintError prints an error, with its stack trace in verbose mode.
func (c *Cmd) PrintError(err error) {
	fmt.Fprintf(c.Err, "%s: %s\n", c.Colorize("error", "red+b"), err)
	if c.Config == nil || !c.Config.Verbose {
		return
	}
	var st stackTracer
	if !errors.As(err, &st) {
		return
	}
	fmt.Fprintf(c.Err, "%s\n", strings.Repeat("-", 40))
	// full path and method name for each frame
	var frames [][]string
	for _, f := range st.StackTrace() {
		fileline := fmt.Sprintf("%s:%d", f, f)
		method := fmt.Sprintf("%n", f)
		frames = append(frames, []string{fileline, method})
		if method == "main" {
			break
		}
	}
	width := 0
	for _, f := range frames {
		if len(f[0]) > width {
			width = len(f[0])
		}
	}
	for _, f := range frames {
		fmt.Fprintf(c.Err, "%-*s | %s()\n", width, f[0], f[1])
	}
}
