// Package cli builds the cobra commands shared by the transunico binaries.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/Halkcyon/transunico/internal/clipboard"
	"github.com/Halkcyon/transunico/internal/config"
	"github.com/Halkcyon/transunico/internal/logging"
	"github.com/Halkcyon/transunico/internal/translate"
	"github.com/spf13/cobra"
)

var log = logging.L("cli")

// Options configures the commands. Zero fields fall back to the process
// streams and the real clipboard.
type Options struct {
	Version   string
	Out       io.Writer
	Err       io.Writer
	NewSystem func(clipboard.Options) (clipboard.System, error)
}

func (o Options) withDefaults() Options {
	if o.Version == "" {
		o.Version = "dev"
	}
	if o.Out == nil {
		o.Out = os.Stdout
	}
	if o.Err == nil {
		o.Err = os.Stderr
	}
	if o.NewSystem == nil {
		o.NewSystem = clipboard.NewSystem
	}
	return o
}

// app carries the state shared by one command tree.
type app struct {
	opts    Options
	cfgFile string
}

func (a *app) addGlobalFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default is <user config dir>/transunico/transunico.yaml)")
	flags.String("backend", clipboard.BackendAuto, "clipboard backend: auto, native, portable, command or none")
	flags.BoolP("print", "p", false, "also write the translated text to stdout")
	flags.String("log-level", "warn", "log level: debug, info, warn, error")
	flags.String("log-format", "text", "log format: text or json")
}

// setup loads the config, configures logging and builds the clipboard
// owner for one invocation.
func (a *app) setup(cmd *cobra.Command) (*config.Config, *clipboard.Owner, error) {
	cfg, err := config.Load(a.cfgFile, cmd.Flags())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	if result := cfg.ValidateTiered(); result.HasFatals() {
		return nil, nil, fmt.Errorf("invalid config: %w", errors.Join(result.Fatals...))
	}
	logging.Init(cfg.LogFormat, cfg.LogLevel, a.opts.Err)

	sys, err := a.opts.NewSystem(clipboard.Options{
		Backend:      cfg.Backend,
		CopyCommand:  cfg.CopyCommand,
		PasteCommand: cfg.PasteCommand,
	})
	if err != nil {
		return nil, nil, err
	}
	log.Debug("clipboard ready", logging.KeyBackend, cfg.Backend)
	return cfg, clipboard.NewOwner(sys), nil
}

// copyTranslated normalises args, translates them with v and places the
// result on the clipboard. No args is a no-op.
func (a *app) copyTranslated(cmd *cobra.Command, args []string, v translate.Variant) error {
	if len(args) == 0 {
		return nil
	}

	cfg, owner, err := a.setup(cmd)
	if err != nil {
		return err
	}

	text := v.Apply(translate.Normalize(args))
	log.Debug("translated", logging.KeyVariant, v.Name, "runes", len([]rune(text)))

	if err := owner.SetClipboard(text); err != nil {
		return err
	}
	if cfg.Print {
		fmt.Fprintln(a.opts.Out, text)
	}
	return nil
}

// Execute runs cmd and exits the process with status 1 on error.
func Execute(cmd *cobra.Command) {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), err)
		os.Exit(1)
	}
}
