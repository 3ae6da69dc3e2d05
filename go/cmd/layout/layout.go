package layout

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"

	"github.com/lunixbochs/goposix/go/arch"
	"github.com/lunixbochs/goposix/go/cmd"
	"github.com/lunixbochs/goposix/go/models"
)

type fieldDoc struct {
	Name   string `yaml:"name,omitempty"`
	Type   string `yaml:"type"`
	Offset int    `yaml:"offset"`
	Size   int    `yaml:"size"`
	Pad    bool   `yaml:"pad,omitempty"`
}

type layoutDoc struct {
	Arch   string     `yaml:"arch"`
	Name   string     `yaml:"name"`
	Order  string     `yaml:"order"`
	Size   int        `yaml:"size"`
	Fields []fieldDoc `yaml:"fields"`
}

func pick(a *models.Arch, which string) (*models.Layout, error) {
	switch which {
	case "stat":
		return a.Stat, nil
	case "msghdr":
		return a.MsgHdr, nil
	case "tms":
		return a.Tms, nil
	}
	return nil, errors.Errorf("unknown struct %q (want stat, msghdr or tms)", which)
}

func document(a *models.Arch, l *models.Layout) layoutDoc {
	doc := layoutDoc{Arch: a.Name, Name: l.Name, Order: l.Order.String(), Size: l.Size}
	for _, f := range l.Fields {
		fd := fieldDoc{Type: f.Type, Offset: f.Offset, Size: f.Size, Pad: f.Padding}
		if !f.Padding {
			fd.Name = f.Name
		}
		doc.Fields = append(doc.Fields, fd)
	}
	return doc
}

func profiles(c *cmd.Cmd, all bool) ([]*models.Arch, error) {
	if all {
		return arch.All(), nil
	}
	a, err := c.Arch()
	if err != nil {
		return nil, err
	}
	return []*models.Arch{a}, nil
}

func writeLayouts(w io.Writer, c *cmd.Cmd, archs []*models.Arch, which string, asYAML bool) error {
	var docs []layoutDoc
	for _, a := range archs {
		l, err := pick(a, which)
		if err != nil {
			return err
		}
		if asYAML {
			docs = append(docs, document(a, l))
			continue
		}
		fmt.Fprintf(w, "%s %s\n", c.Colorize(a.Name, "cyan+b"), l)
	}
	if asYAML {
		out, err := yaml.Marshal(docs)
		if err != nil {
			return errors.Wrap(err, "yaml")
		}
		_, err = w.Write(out)
		return err
	}
	return nil
}

func layoutMain(args []string) int {
	var all, asYAML *bool
	c := cmd.New("layout", "[stat|msghdr|tms]")
	c.Setup = func(fs *flag.FlagSet) {
		all = fs.Bool("all", false, "show every architecture profile")
		asYAML = fs.Bool("yaml", false, "print layouts as YAML")
	}
	return c.Run(args, func(c *cmd.Cmd, args []string) error {
		which := "stat"
		if len(args) > 0 {
			which = args[0]
		}
		archs, err := profiles(c, *all)
		if err != nil {
			return err
		}
		return writeLayouts(c.Out, c, archs, which, *asYAML)
	})
}

// writeABI prints one row per profile: word size, byte order, stat size,
// the stat generation pin and the ioprio numbers.
func writeABI(w io.Writer, c *cmd.Cmd, archs []*models.Arch) {
	fmt.Fprintf(w, "%-12s %4s %-6s %5s %-7s %s\n", "arch", "bits", "order", "stat", "pinned", "syscalls")
	for _, a := range archs {
		pinned := "-"
		if a.HasPinned {
			pinned = fmt.Sprintf("v%d", a.PinnedStatVersion)
		}
		order := "little"
		if a.Order.String() == "BigEndian" {
			order = "big"
		}
		var calls []string
		for _, name := range a.Syscalls.Names() {
			nr, _ := a.Syscalls.Lookup(name)
			calls = append(calls, fmt.Sprintf("%s=%d", name, nr))
		}
		if len(calls) == 0 {
			calls = []string{c.Colorize("none", "yellow")}
		}
		fmt.Fprintf(w, "%-12s %4d %-6s %5d %-7s %s\n", a.Name, a.Bits, order, a.Stat.Size, pinned, strings.Join(calls, " "))
	}
}

func abiMain(args []string) int {
	var all *bool
	c := cmd.New("abi", "")
	c.Setup = func(fs *flag.FlagSet) {
		all = fs.Bool("all", true, "show every architecture profile")
	}
	return c.Run(args, func(c *cmd.Cmd, _ []string) error {
		archs, err := profiles(c, *all && c.Config.Arch == "")
		if err != nil {
			return err
		}
		writeABI(c.Out, c, archs)
		return nil
	})
}

func init() {
	cmd.Register("layout", "show binary struct layouts", layoutMain)
	cmd.Register("abi", "show per-architecture ABI numbers", abiMain)
}
