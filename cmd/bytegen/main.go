// Command bytegen inspects the code generation core against a type pool:
// it resolves generic signatures, prints the instructions of assignments,
// constants and constructors, and maintains type databases.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"

	"github.com/davecgh/go-spew/spew"
	"github.com/mattn/go-isatty"

	"github.com/funvibe/bytegen/internal/config"
	"github.com/funvibe/bytegen/internal/typepool"
)

const usage = `Usage: bytegen [flags] <command> [args]

Commands:
  types                         list the types loaded from the configured sources
  resolve <signature> [type]    resolve a generic type signature, optionally
                                inside the type variables of type
  members <type>                list the generic members of a type
  assign <source> <target>      print the conversion from source to target
  constant <type> [value]       print the constant push of value, or the
                                default value of type
  ctor <super> [none|imitate]   print the constructors of a subclass of super
  export <db>                   write the type pool to a SQLite database
  watch                         rebuild the type pool whenever a source changes

Flags:
`

// errUsage makes run print the usage text
var errUsage = errors.New("invalid arguments")

// session is the state one command runs with
type session struct {
	cfg      *config.Config
	cfgPath  string
	pool     *typepool.Pool
	out      io.Writer
	color    bool
	implicit bool
	dump     bool

	// reloaded is called with every pool watch builds
	reloaded func(*typepool.Pool)
}

func main() {
	defer func() {
		if r := recover(); r != nil {
			if os.Getenv("DEBUG") == "1" {
				panic(r)
			}
			fmt.Fprintf(os.Stderr, "Internal error: %v\n", r)
			fmt.Fprintln(os.Stderr, "This is a bug. Please report it.")
			os.Exit(1)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes one command line and returns the exit code
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("bytegen", flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.Usage = func() {
		fmt.Fprint(stderr, usage)
		flags.PrintDefaults()
	}
	cfgPath := flags.String("config", "", "project file (default: nearest "+config.ConfigFileName+")")
	implicit := flags.Bool("implicit", false, "allow conversions that can fail at run time")
	dump := flags.Bool("dump", false, "dump resolved values")
	debug := flags.Bool("debug", false, "log source loading")
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	config.IsDebugMode = *debug
	log.SetOutput(stderr)

	s := &session{out: stdout, dump: *dump}
	var err error
	if s.cfgPath, err = locateConfig(*cfgPath); err != nil {
		fmt.Fprintf(stderr, "Error: %s\n", err)
		return 1
	}
	if s.cfgPath != "" {
		s.cfg, err = loadConfig(s.cfgPath)
	} else {
		s.cfg = config.Default()
	}
	if err != nil {
		fmt.Fprintf(stderr, "Error: %s\n", err)
		return 1
	}
	s.implicit = *implicit || s.cfg.Implicit
	s.color = useColor(s.cfg.Color, stdout)

	rest := flags.Args()
	if len(rest) == 0 {
		flags.Usage()
		return 2
	}

	if rest[0] == "watch" {
		err = s.watch(ctx)
	} else {
		if s.pool, err = buildPool(ctx, s.cfg); err == nil {
			err = s.dispatch(ctx, rest[0], rest[1:])
		}
	}
	switch {
	case errors.Is(err, errUsage):
		flags.Usage()
		return 2
	case err != nil:
		fmt.Fprintf(stderr, "Error: %s\n", err)
		return 1
	}
	return 0
}

func (s *session) dispatch(ctx context.Context, cmd string, args []string) error {
	switch cmd {
	case "types":
		return s.types(args)
	case "resolve":
		return s.resolve(args)
	case "members":
		return s.members(args)
	case "assign":
		return s.assign(args)
	case "constant":
		return s.constant(args)
	case "ctor":
		return s.ctor(args)
	case "export":
		return s.export(ctx, args)
	}
	return errUsage
}

// locateConfig returns the explicit path, or the nearest project file
// above the working directory, or "" when there is none.
func locateConfig(explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	return config.FindConfig(".")
}

func loadConfig(path string) (*config.Config, error) {
	cfg, err := config.LoadConfig(path)
	if err != nil {
		return nil, err
	}
	debugf("using %s (target %s)", path, cfg.Version)
	return cfg, nil
}

// useColor applies the configured mode; auto means a terminal without
// NO_COLOR set.
func useColor(mode string, out io.Writer) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	f, ok := out.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func (s *session) dumpValue(v ...any) {
	if s.dump {
		cfg := spew.ConfigState{Indent: "  ", MaxDepth: 4, DisablePointerAddresses: true}
		cfg.Fdump(s.out, v...)
	}
}
