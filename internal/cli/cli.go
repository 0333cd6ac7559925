// Package cli wires the passwiz commands.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/passwiz/passwiz-go/internal/clipboard"
	"github.com/passwiz/passwiz-go/internal/config"
	"github.com/passwiz/passwiz-go/internal/controller"
	"github.com/passwiz/passwiz-go/internal/generator"
	"github.com/passwiz/passwiz-go/internal/server"
	"github.com/passwiz/passwiz-go/internal/tui"
)

type rootOptions struct {
	cfg            config.Config
	insecureRandom bool
	noClipboard    bool

	// newClipboard is replaced in tests.
	newClipboard func() clipboard.Clipboard
	// runTUI is replaced in tests.
	runTUI func(*controller.Controller) error
}

// NewRootCommand builds the passwiz command tree on top of cfg.
func NewRootCommand(cfg config.Config) *cobra.Command {
	return newRootOptions(cfg).command()
}

func newRootOptions(cfg config.Config) *rootOptions {
	o := &rootOptions{
		cfg:            cfg,
		insecureRandom: !cfg.SecureRandom,
		runTUI: func(c *controller.Controller) error {
			return tui.Run(c)
		},
	}
	o.newClipboard = func() clipboard.Clipboard {
		if o.noClipboard {
			return clipboard.NewMemory()
		}
		return clipboard.NewSystem()
	}
	return o
}

func (o *rootOptions) command() *cobra.Command {
	root := &cobra.Command{
		Use:           "passwiz",
		Short:         "Generate random passwords",
		Long:          "PassWiz generates random passwords from letters, optionally digits and symbols, and copies them to the clipboard.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.startTUI()
		},
	}

	root.PersistentFlags().BoolVar(&o.insecureRandom, "insecure-random", o.insecureRandom, "use the fast non-cryptographic random source")
	root.PersistentFlags().BoolVar(&o.noClipboard, "no-clipboard", false, "keep copies in memory instead of the system clipboard")

	root.AddCommand(
		&cobra.Command{
			Use:   "tui",
			Short: "Start the interactive generator",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return o.startTUI()
			},
		},
		o.generateCommand(),
		o.serveCommand(),
	)

	return root
}

func (o *rootOptions) source() generator.Source {
	if o.insecureRandom {
		now := uint64(time.Now().UnixNano())
		return generator.NewFastSource(now, uint64(os.Getpid()))
	}
	return generator.NewSecureSource()
}

func (o *rootOptions) initialConfiguration() controller.Configuration {
	return controller.Configuration{
		Length:         o.cfg.DefaultLength,
		IncludeDigits:  o.cfg.DefaultNumbers,
		IncludeSymbols: o.cfg.DefaultSymbols,
	}
}

func (o *rootOptions) startTUI() error {
	logger, closeLog, err := tuiLogger(o.cfg.LogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	ctrl := controller.New(
		controller.WithConfiguration(o.initialConfiguration()),
		controller.WithSource(o.source()),
		controller.WithClipboard(o.newClipboard()),
		controller.WithLogger(logger),
	)
	return o.runTUI(ctrl)
}

// tuiLogger keeps log lines off the terminal while the TUI owns it.
func tuiLogger(path string) (*slog.Logger, func(), error) {
	if path == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}
	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return logger, func() { f.Close() }, nil
}

func (o *rootOptions) generateCommand() *cobra.Command {
	var (
		conf     controller.Configuration
		count    int
		copyLast bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Print passwords and exit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if count < 1 {
				return fmt.Errorf("count must be at least 1, got %d", count)
			}

			logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: slog.LevelWarn}))
			src := o.source()

			var last *controller.Controller
			for i := 0; i < count; i++ {
				last = controller.New(
					controller.WithConfiguration(conf),
					controller.WithSource(src),
					controller.WithClipboard(o.newClipboard()),
					controller.WithLogger(logger),
				)
				fmt.Fprintln(cmd.OutOrStdout(), last.Password())
			}

			if copyLast {
				// A failed copy is already logged and is not an error exit.
				_ = last.CopyCurrentPassword(cmd.Context())
			}
			return nil
		},
	}

	defaults := o.initialConfiguration()
	cmd.Flags().IntVarP(&conf.Length, "length", "l", defaults.Length, fmt.Sprintf("password length (%d-%d)", controller.MinLength, controller.MaxLength))
	cmd.Flags().BoolVarP(&conf.IncludeDigits, "numbers", "n", defaults.IncludeDigits, "include digits (0-9)")
	cmd.Flags().BoolVarP(&conf.IncludeSymbols, "symbols", "s", defaults.IncludeSymbols, "include special symbols")
	cmd.Flags().IntVarP(&count, "count", "c", 1, "number of passwords to generate")
	cmd.Flags().BoolVar(&copyLast, "copy", false, "copy the last password to the clipboard")

	return cmd
}

func (o *rootOptions) serveCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the generator over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return server.Run(ctx, o.cfg, o.source())
		},
	}
	cmd.Flags().StringVarP(&o.cfg.Port, "port", "p", o.cfg.Port, "port to listen on")
	return cmd
}
