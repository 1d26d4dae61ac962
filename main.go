// genpolicy compiles generator policies into field constraints and
// corrects generator settings against them.
//
// Usage:
//
//	genpolicy compile [--policy FILE] [--kind password|passphrase]
//	genpolicy adjust  [--policy FILE] [--kind password|passphrase] SETTINGS...
//	genpolicy check   [--policy FILE]
//
// Configuration is read from --config or GENPOLICY_CONFIG.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/pflag"

	"genpolicy/config"
	"genpolicy/core"
	"genpolicy/policyfile"
)

const (
	kindPassword   = "password"
	kindPassphrase = "passphrase"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// options are the flags shared by every subcommand.
type options struct {
	configPath string
	logLevel   string
	policyPath string
	kind       string
}

func (o *options) addFlags(flagSet *pflag.FlagSet) {
	flagSet.StringVar(&o.configPath, "config", "", "path to YAML config (default: $"+config.EnvVar+")")
	flagSet.StringVar(&o.logLevel, "log-level", "", "override log.level (debug, info, warn, error)")
	flagSet.StringVar(&o.policyPath, "policy", "", "path to JSONC policy document (default: no policy)")
	flagSet.StringVar(&o.kind, "kind", kindPassword, "generator kind: password or passphrase")
}

// environment is everything a subcommand needs after flags are parsed.
type environment struct {
	config   *config.Config
	logger   *slog.Logger
	compiler *core.Compiler
	document *policyfile.Document
	kind     string
	stdout   io.Writer
}

func run(args []string, stdout, stderr io.Writer) error {
	if len(args) == 0 {
		printUsage(stderr)
		return errors.New("missing command")
	}

	command, args := args[0], args[1:]
	var handler func(*environment, []string) error
	switch command {
	case "compile":
		handler = runCompile
	case "adjust":
		handler = runAdjust
	case "check":
		handler = runCheck
	case "help", "-h", "--help":
		printUsage(stdout)
		return nil
	default:
		printUsage(stderr)
		return fmt.Errorf("unknown command %q", command)
	}

	var opts options
	flagSet := pflag.NewFlagSet("genpolicy "+command, pflag.ContinueOnError)
	flagSet.SetOutput(stderr)
	opts.addFlags(flagSet)
	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}

	env, err := newEnvironment(opts, stdout, stderr)
	if err != nil {
		return err
	}
	return handler(env, flagSet.Args())
}

func newEnvironment(opts options, stdout, stderr io.Writer) (*environment, error) {
	if opts.kind != kindPassword && opts.kind != kindPassphrase {
		return nil, fmt.Errorf("invalid --kind %q (want %s or %s)", opts.kind, kindPassword, kindPassphrase)
	}

	var cfg *config.Config
	var err error
	if opts.configPath != "" {
		cfg, err = config.LoadFile(opts.configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, err
	}
	if opts.logLevel != "" {
		cfg.Log.Level = opts.logLevel
	}

	logger, err := newLogger(cfg.Log, stderr)
	if err != nil {
		return nil, err
	}

	compiler := core.NewCompilerWithDefaults(cfg.Defaults)
	compiler.SetLogger(logger)

	document := &policyfile.Document{}
	if opts.policyPath != "" {
		document, err = policyfile.Load(opts.policyPath)
		if err != nil {
			return nil, err
		}
		logger.Debug("loaded policy document", "path", opts.policyPath, "policies", len(document.Policies))
	}

	return &environment{
		config:   cfg,
		logger:   logger,
		compiler: compiler,
		document: document,
		kind:     opts.kind,
		stdout:   stdout,
	}, nil
}

func newLogger(cfg config.LogConfig, output io.Writer) (*slog.Logger, error) {
	level, err := config.ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}
	handlerOptions := &slog.HandlerOptions{Level: level}
	if cfg.Format == "json" {
		return slog.New(slog.NewJSONHandler(output, handlerOptions)), nil
	}
	return slog.New(slog.NewTextHandler(output, handlerOptions)), nil
}

func printUsage(output io.Writer) {
	fmt.Fprintf(output, `genpolicy compiles generator policies and corrects generator settings.

Usage:
  genpolicy compile [flags]              print the compiled constraints
  genpolicy adjust [flags] SETTINGS...   correct settings files against the policy
  genpolicy check [flags]                validate configuration and compiled constraints

Flags:
  --config PATH      YAML config (default: $%s)
  --log-level LEVEL  debug, info, warn, error
  --policy PATH      JSONC policy document
  --kind KIND        password or passphrase (default: password)
`, config.EnvVar)
}
