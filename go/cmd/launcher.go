package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"
)

type command struct {
	name, desc string
	main       func(args []string) int
}

var commands = make(map[string]*command)
var order []string
var pad int

// Register adds a subcommand. main receives the argument list with the
// program and subcommand names joined as args[0].
func Register(name, desc string, main func(args []string) int) {
	if _, ok := commands[name]; ok {
		panic("duplicate command " + name)
	}
	if len(name) > pad {
		pad = len(name)
	}
	commands[name] = &command{name, desc, main}
	order = append(order, name)
}

func usage(w io.Writer, prog string) {
	fmt.Fprintln(w, "Commands:")
	for _, name := range order {
		cmd := commands[name]
		fmt.Fprintf(w, "  %-*s | %s\n", pad, cmd.name, cmd.desc)
	}
	fmt.Fprintf(w, "\nExample: %s stat -v /etc/passwd\n\n", prog)
}

// Dispatch runs the subcommand named by argv[1] and returns its exit
// status.
func Dispatch(argv []string, stderr io.Writer) int {
	if len(argv) < 2 {
		usage(stderr, argv[0])
		return 1
	}
	cmd, ok := commands[argv[1]]
	if !ok {
		fmt.Fprintf(stderr, "Command '%s' not found.\n\n", argv[1])
		usage(stderr, argv[0])
		return 1
	}
	args := append([]string{strings.Join(argv[:2], " ")}, argv[2:]...)
	return cmd.main(args)
}

func Main() {
	os.Exit(Dispatch(os.Args, os.Stderr))
}
