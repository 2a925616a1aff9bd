package main

import (
	"flag"
	"fmt"
	"text/tabwriter"

	"github.com/example/sketchpad/internal/shape"
)

type infoCmd struct {
	*root
	fs   *flag.FlagSet
	file string
}

func (i *infoCmd) FlagSet() *flag.FlagSet {
	return i.fs
}

func parseInfoCmd(args []string, r *root) (*infoCmd, error) {
	fs := flag.NewFlagSet("info", flag.ExitOnError)
	cmd := &infoCmd{root: r.subcommand("info"), fs: fs}
	fs.Usage = usageFunc(cmd)
	fs.StringVar(&cmd.file, "file", "", "scene document to inspect (- for stdin)")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if cmd.file == "" && fs.NArg() == 1 {
		cmd.file = fs.Arg(0)
	} else if cmd.file == "" || fs.NArg() > 0 {
		return nil, &UsageError{of: cmd}
	}
	return cmd, nil
}

func (i *infoCmd) Run() error {
	shapes, err := loadShapes(i.file)
	if err != nil {
		return err
	}
	tw := tabwriter.NewWriter(i.out(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tKIND\tID\tLABEL\tCOLOR\tBOUNDS")
	for n, s := range shapes {
		bounds := "-"
		if lo, hi, ok := shape.Bounds(s); ok {
			bounds = fmt.Sprintf("%.1f,%.1f %.1fx%.1f", lo.X, lo.Y, hi.X-lo.X, hi.Y-lo.Y)
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\n", n, s.Kind(), orDash(s.ID()), orDash(s.Label()), orDash(s.Color()), bounds)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	if lo, hi, ok := sceneBounds(shapes); ok {
		fmt.Fprintf(i.out(), "%d shapes, extent %.1f,%.1f to %.1f,%.1f\n", len(shapes), lo.X, lo.Y, hi.X, hi.Y)
	} else {
		fmt.Fprintf(i.out(), "%d shapes\n", len(shapes))
	}
	return nil
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
