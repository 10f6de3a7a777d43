package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/idilsaglam/todolist/internal/config"
	"github.com/idilsaglam/todolist/internal/logging"
	"github.com/idilsaglam/todolist/internal/session"
	"github.com/idilsaglam/todolist/internal/tui"
	"github.com/idilsaglam/todolist/internal/ui"
)

// Options tune behavior from root flags and the loaded config.
type Options struct {
	Group  bool // list grouped by active/completed
	Config *config.Config

	// Stdin and Stdout default to the process streams.
	Stdin  io.Reader
	Stdout io.Writer
	// Stderr receives script-mode logs.
	Stderr io.Writer
}

func (o *Options) defaults() {
	if o.Config == nil {
		o.Config = config.Default()
	}
	if o.Stdin == nil {
		o.Stdin = os.Stdin
	}
	if o.Stdout == nil {
		o.Stdout = os.Stdout
	}
	if o.Stderr == nil {
		o.Stderr = os.Stderr
	}
}

// Run dispatches subcommands and returns an exit code (0 ok, 1 error, 2 usage).
// With no subcommand the interactive editor starts.
func Run(args []string, opt Options) int {
	opt.defaults()
	if len(args) == 0 {
		return doUI(opt)
	}
	cmd, a := args[0], args[1:]

	switch cmd {
	case "help", "-h", "--help":
		PrintHelp(opt.Stdout)
		return 0

	case "ui":
		if len(a) != 0 {
			ui.Fail("usage: todo ui")
			return 2
		}
		return doUI(opt)

	case "script":
		return doScript(a, opt)
	}

	ui.Fail("unknown subcommand: " + cmd)
	fmt.Fprintln(ui.Stderr)
	PrintHelp(ui.Stderr)
	return 2
}

func PrintHelp(w io.Writer) {
	fmt.Fprint(w, `todo - a small task-list editor

Usage:
  todo [flags] [subcommand] [args]

Subcommands:
  ui                       Interactive editor (default)
  script [-json] [file]    Replay commands from file (or stdin) and print the list

Script commands (one per line, # starts a comment):
  add <text...>            Add a todo (at least 2 characters)
  toggle|done|undone <id>  Change completion of a todo
  edit <id> <text...>      Rename a todo
  rm <id>                  Remove a todo
  all on|off               Mark every todo completed or active
  filter all|active|completed
  clear                    Clear completed todos
  ls                       Print the current list

Flags:
  -config <file>   TOML config file
  -theme <name>    classic, neon or mono
  -log-level <l>   debug, info, warn or error
  -group           Group printed lists by active/completed

Examples:
  todo
  printf 'add Buy milk\nadd Walk dog\ndone todo_0\n' | todo script
`)
}

// -------------- subcommand impls ----------------

func doUI(opt Options) int {
	logger, closeLog, err := logging.Open(opt.Config.Log, io.Discard)
	if err != nil {
		ui.Fail("log: " + err.Error())
		return 1
	}
	defer closeLog()

	s := session.New(session.WithLogger(logger))
	logger.Info("session started", "session", s.ID(), "mode", "ui")
	if err := tui.Run(s, tui.Options{
		AltScreen: opt.Config.AltScreen,
		CharLimit: opt.Config.CharLimit,
		Logger:    logger,
	}); err != nil {
		logger.Error("tui failed", "err", err)
		ui.Fail("tui: " + err.Error())
		return 1
	}
	logger.Info("session ended", "session", s.ID(), "items", len(s.Items()))
	ui.OK(fmt.Sprintf("bye (%d item left, nothing saved)", s.ActiveCount()))
	return 0
}

func doScript(args []string, opt Options) int {
	fs := flag.NewFlagSet("script", flag.ContinueOnError)
	fs.SetOutput(ui.Stderr)
	asJSON := fs.Bool("json", false, "print the final list as JSON")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() > 1 {
		ui.Fail("usage: todo script [-json] [file]")
		return 2
	}

	in := opt.Stdin
	if name := fs.Arg(0); name != "" && name != "-" {
		f, err := os.Open(name)
		if err != nil {
			ui.Fail("script: " + err.Error())
			return 1
		}
		defer f.Close()
		in = f
	}

	logger, closeLog, err := logging.Open(opt.Config.Log, opt.Stderr)
	if err != nil {
		ui.Fail("log: " + err.Error())
		return 1
	}
	defer closeLog()

	r := NewScriptRunner(session.New(session.WithLogger(logger)), opt.Stdout, ScriptOptions{
		Group:  opt.Group,
		Logger: logger,
	})
	if err := r.Run(in); err != nil {
		var se *ScriptError
		if errors.As(err, &se) {
			ui.Fail(se.Error())
			ui.Hint("Hint: run `todo help` for the script commands")
			return 2
		}
		ui.Fail("script: " + err.Error())
		return 1
	}

	if *asJSON {
		if err := r.WriteJSON(); err != nil {
			ui.Fail(err.Error())
			return 1
		}
		return 0
	}
	r.Print()
	return 0
}
