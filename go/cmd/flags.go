package cmd

import (
	"flag"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/lunixbochs/fvbommel-util/sortorder"
)

const usageWidth = 80

// PrintFlags writes an aligned option listing, wrapping usage text at
// usageWidth columns.
func PrintFlags(w io.Writer, fs *flag.FlagSet) {
	var flags []*flag.Flag
	fs.VisitAll(func(f *flag.Flag) { flags = append(flags, f) })
	sort.Slice(flags, func(i, j int) bool { return sortorder.NaturalLess(flags[i].Name, flags[j].Name) })

	wname, wdef := 0, 0
	for _, f := range flags {
		if len(f.Name) > wname {
			wname = len(f.Name)
		}
		if len(f.DefValue) > wdef {
			wdef = len(f.DefValue)
		}
	}
	indent := wname + wdef + 7
	lpad := strings.Repeat(" ", indent)
	for _, f := range flags {
		def := ""
		if f.DefValue != "" && f.DefValue != "false" {
			def = "(" + f.DefValue + ")"
		}
		fmt.Fprintf(w, "  -%-*s %-*s ", wname, f.Name, wdef+2, def)
		for i, line := range wrap(f.Usage, usageWidth-indent) {
			if i > 0 {
				fmt.Fprint(w, lpad)
			}
			fmt.Fprintln(w, line)
		}
	}
}

func wrap(s string, width int) []string {
	if width < 20 {
		width = 20
	}
	var lines []string
	for _, para := range strings.Split(s, "\n") {
		line := ""
		for _, word := range strings.Fields(para) {
			if line != "" && len(line)+1+len(word) > width {
				lines = append(lines, line)
				line = ""
			}
			if line != "" {
				line += " "
			}
			line += word
		}
		lines = append(lines, line)
	}
	return lines
}
