package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/idilsaglam/todolist/internal/cli"
	"github.com/idilsaglam/todolist/internal/config"
	"github.com/idilsaglam/todolist/internal/ui"
)

func main() {
	// Root flags (apply to every subcommand)
	configPath := flag.String("config", "", "TOML config file (default $TODO_CONFIG or the user config dir)")
	theme := flag.String("theme", "", "color theme: classic, neon or mono")
	logLevel := flag.String("log-level", "", "log level: debug, info, warn or error")
	groupPending := flag.Bool("group", false, "group printed lists by active/completed")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		ui.Fail("config: " + err.Error())
		os.Exit(1)
	}
	// Flags override file and environment.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "theme":
			cfg.Theme = *theme
		case "log-level":
			cfg.Log.Level = *logLevel
		case "group":
			cfg.Group = *groupPending
		}
	})
	if err := cfg.Validate(); err != nil {
		ui.Fail("config: " + err.Error())
		os.Exit(2)
	}
	ui.SetTheme(cfg.Theme)

	code := cli.Run(flag.Args(), cli.Options{
		Group:  cfg.Group,
		Config: cfg,
	})
	if code != 0 {
		fmt.Fprintln(os.Stderr)
	}
	os.Exit(code)
}
