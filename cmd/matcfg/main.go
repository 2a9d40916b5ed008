// Package main is a command line tool for inspecting and validating material
// configuration variables.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/fatih/color"
	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/nsimtools/matcfg/cfgvar"
)

type options struct {
	List    bool   `long:"list" short:"l" description:"List all configuration variables and quit."`
	Mode    string `long:"mode" short:"m" default:"short" choice:"short" choice:"full" choice:"json" choice:"yaml" description:"Rendering mode for --list."`
	Prefix  string `long:"prefix" description:"Prefix prepended to every output line of --list (e.g. \"# \")."`
	Verbose bool   `long:"verbose" short:"v" description:"Display verbose output."`

	Args struct {
		Assignments []string `positional-arg-name:"name=value" description:"Variable assignments to validate."`
	} `positional-args:"yes"`
}

const (
	exitCodeSuccess = 0
	exitCodeError   = 1
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	var opts options
	flagParser := flags.NewParser(&opts, flags.Default)
	flagParser.LongDescription = heredoc.Doc(`
		Validate material configuration variable assignments, or list the
		known variables.

		Each positional argument must be of the form name=value; the value is
		parsed and validated against the variable's declared domain and the
		canonical (normalized) form is printed. For example:

		    matcfg temp=300 dcutoff=0.5nm inelas=none
	`)

	if _, err := flagParser.ParseArgs(args); flags.WroteHelp(err) {
		return exitCodeSuccess
	} else if err != nil {
		return exitCodeError
	}

	logger := newLogger(opts.Verbose)
	defer func() { _ = logger.Sync() }()

	if opts.List {
		mode, err := cfgvar.ParseListMode(opts.Mode)
		if err != nil {
			return fail(err)
		}
		if err := cfgvar.DumpVarList(os.Stdout, mode, opts.Prefix); err != nil {
			return fail(err)
		}
		return exitCodeSuccess
	}

	if len(opts.Args.Assignments) == 0 {
		flagParser.WriteHelp(os.Stderr)
		return exitCodeError
	}

	for _, assignment := range opts.Args.Assignments {
		name, raw, err := splitAssignment(assignment)
		if err != nil {
			return fail(err)
		}
		id, ok := cfgvar.FromName(name)
		if !ok {
			return fail(fmt.Errorf("unknown configuration parameter %q", name))
		}
		logger.Debug("validating assignment",
			zap.String("name", name), zap.String("raw", raw))
		v, err := cfgvar.Parse(id, raw)
		if err != nil {
			return fail(err)
		}
		fmt.Printf("%s=%s\n", name, v)
	}
	return exitCodeSuccess
}

// splitAssignment splits "name=value" on the first '='. The value part may
// be empty (e.g. "scatfactory=" clears a factory request).
func splitAssignment(s string) (name, value string, err error) {
	name, value, ok := strings.Cut(s, "=")
	if !ok || name == "" {
		return "", "", fmt.Errorf("expected name=value, got %q", s)
	}
	return name, value, nil
}

func newLogger(verbose bool) *zap.Logger {
	cfg := zap.NewDevelopmentConfig()
	if !verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	}
	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

func fail(err error) int {
	msg := err.Error()
	if term.IsTerminal(int(os.Stderr.Fd())) {
		msg = color.New(color.FgRed).Sprint(msg)
	}
	fmt.Fprintln(os.Stderr, msg)
	return exitCodeError
}
