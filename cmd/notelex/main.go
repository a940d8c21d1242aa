// Package main is a line-oriented demo driver for the notelex engine.
// Each input line is run through pattern extraction, trigger detection,
// and completion, and the results are printed. Lines containing a
// trigger are also processed as a node-type switch.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dshills/notelex/internal/app"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	opts, ok := parseFlags()
	if !ok {
		return 0
	}

	session, err := app.New(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize: %v\n", err)
		return 1
	}
	defer session.Close()

	fmt.Println("notelex - type a line, Ctrl-D to quit")
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		process(os.Stdout, session, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// process reports what the engine sees in one input line.
func process(w io.Writer, session *app.Session, line string) {
	cursor := len([]rune(line))

	res := session.Extract(line)
	fmt.Fprintf(w, "clean: %q\n", res.CleanText)
	for _, p := range res.Patterns {
		fmt.Fprintf(w, "  %-8s %-12q -> %q [%d,%d)\n",
			p.Type, p.RawValue, p.DisplayValue, p.Start, p.End)
	}

	if det := session.Detect(line); det.HasTrigger {
		labels := make([]string, 0, len(det.Matches))
		for _, cmd := range det.Matches {
			labels = append(labels, cmd.Trigger)
		}
		fmt.Fprintf(w, "trigger: %c%s matches [%s]\n",
			det.Char, det.Word, strings.Join(labels, " "))

		sw := session.ProcessSwitch(line, cursor)
		if sw.Success {
			fmt.Fprintf(w, "switch: %s %q cursor=%d\n",
				sw.NodeType, sw.ReplacementText, sw.CursorPosition)
		} else {
			fmt.Fprintf(w, "switch: %s\n", sw.Message)
		}
	}

	if comp := session.Complete(line, cursor); comp != nil {
		labels := make([]string, 0, len(comp.Items))
		for _, item := range comp.Items {
			labels = append(labels, item.Label)
		}
		fmt.Fprintf(w, "complete %s %q: %s\n",
			comp.Type, comp.Query, strings.Join(labels, " "))
	}
}

func parseFlags() (app.Options, bool) {
	var opts app.Options
	var showVersion bool

	flag.StringVar(&opts.ConfigPath, "config", "", "Path to configuration file")
	flag.StringVar(&opts.ConfigPath, "c", "", "Path to configuration file (shorthand)")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "notelex - command and pattern recognition demo\n\n")
		fmt.Fprintf(os.Stderr, "Usage: notelex [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  echo 'Buy milk @tomorrow #high' | notelex\n")
		fmt.Fprintf(os.Stderr, "  notelex -c notelex.toml\n")
	}

	flag.Parse()

	if showVersion {
		fmt.Printf("notelex %s (%s)\n", version, commit)
		return opts, false
	}
	return opts, true
}
