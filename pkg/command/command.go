// Package command implements the interactive command loop around an
// interval set: it parses one command per line, applies it to the set
// it owns and renders the resulting sequence.
package command

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/kdious/Manage-Intervals-Challenge/pkg/interval"
	"github.com/kdious/Manage-Intervals-Challenge/pkg/intervalset"
)

const helpText = `Commands:
  add <from> <to>      add an interval to the list
  remove <from> <to>   remove an interval from the list
  clear                clear the interval list
  displayList          display the current interval list
  enableDebugging      enable extra debugging output
  disableDebugging     disable debugging output
  help                 display this list of commands
  exit                 exit the program
`

type Config struct {
	Prompt string
	Debug  bool
}

// Runner owns one interval set and a debug flag for the lifetime of a
// command loop.
type Runner struct {
	set    *intervalset.Set
	debug  bool
	prompt string
	out    io.Writer
}

func New(cfg Config, out io.Writer) *Runner {
	prompt := cfg.Prompt
	if prompt == "" {
		prompt = "> "
	}
	return &Runner{
		set:    &intervalset.Set{},
		debug:  cfg.Debug,
		prompt: prompt,
		out:    out,
	}
}

// Run reads commands from in until exit or end of input. Errors from
// individual commands are printed and the loop continues; only a
// failing reader ends the loop with an error.
func (r *Runner) Run(in io.Reader) error {
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(r.out, r.prompt)
		if !scanner.Scan() {
			break
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		if done := r.dispatch(fields[0], fields[1:]); done {
			return nil
		}
	}
	return errors.Wrap(scanner.Err(), "reading commands")
}

func (r *Runner) dispatch(cmd string, args []string) (done bool) {
	switch cmd {
	case "add":
		r.mutate(cmd, args, r.set.Add)
	case "remove":
		r.mutate(cmd, args, r.set.Remove)
	case "clear":
		r.set.Clear()
		r.printIntervals()
	case "displayList":
		r.printIntervals()
	case "enableDebugging":
		r.debug = true
		fmt.Fprintln(r.out, "Debugging mode enabled")
	case "disableDebugging":
		r.debug = false
		fmt.Fprintln(r.out, "Debugging mode disabled")
	case "help":
		fmt.Fprint(r.out, helpText)
	case "exit":
		return true
	default:
		fmt.Fprintf(r.out, "Unknown command: %s\n", cmd)
		fmt.Fprint(r.out, helpText)
	}
	return false
}

// mutate runs one add or remove against the owned set. Parse and range
// errors leave the set unchanged.
func (r *Runner) mutate(name string, args []string, op func(from, to int) ([]interval.Interval, error)) {
	from, to, err := parseArgs(args)
	if err != nil {
		fmt.Fprintf(r.out, "Error - %v\nUsage: %s <from> <to>\n", err, name)
		return
	}
	result, err := op(from, to)
	if err != nil {
		fmt.Fprintf(r.out, "Error - %v\n", err)
		return
	}
	if r.debug {
		fmt.Fprintf(r.out, "Intervals list: %v\n", result)
	}
	r.printIntervals()
}

func (r *Runner) printIntervals() {
	fmt.Fprintf(r.out, "Intervals: %s\n", r.set)
}

func parseArgs(args []string) (from, to int, err error) {
	if len(args) < 2 {
		return 0, 0, fmt.Errorf("expected two integer arguments, got %d", len(args))
	}
	from, err = strconv.Atoi(args[0])
	if err != nil {
		return 0, 0, fmt.Errorf("from %q is not an integer", args[0])
	}
	to, err = strconv.Atoi(args[1])
	if err != nil {
		return 0, 0, fmt.Errorf("to %q is not an integer", args[1])
	}
	return from, to, nil
}
