// Package controller owns the generator configuration and the current
// password, and regenerates the password whenever the configuration changes.
//
// A Controller is driven from a single UI goroutine and is not safe for
// concurrent use.
package controller

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/passwiz/passwiz-go/internal/clipboard"
	"github.com/passwiz/passwiz-go/internal/generator"
)

const (
	MinLength     = 6
	MaxLength     = 32
	DefaultLength = 8
)

// ErrClipboardUnavailable reports a failed copy. It is never fatal.
var ErrClipboardUnavailable = errors.New("could not copy password to clipboard")

// Configuration holds the user-controlled generation parameters.
type Configuration struct {
	Length         int
	IncludeDigits  bool
	IncludeSymbols bool
}

// DefaultConfiguration returns the configuration used on initial load.
func DefaultConfiguration() Configuration {
	return Configuration{Length: DefaultLength}
}

// State is a snapshot of the controller.
type State struct {
	Configuration Configuration
	Alphabet      string
	Password      string
	// Generation counts regenerations since construction, the initial load included.
	Generation int
}

// Listener is notified after every regeneration.
type Listener func(State)

// Controller holds the Configuration and Password pair.
type Controller struct {
	cfg        Configuration
	alphabet   string
	password   string
	generation int

	src       generator.Source
	clipboard clipboard.Clipboard
	logger    *slog.Logger
	listeners []Listener
}

// Option customizes a Controller.
type Option func(*Controller)

// WithConfiguration sets the configuration used for the initial load.
// The length is clamped to [MinLength, MaxLength].
func WithConfiguration(cfg Configuration) Option {
	return func(c *Controller) {
		cfg.Length = ClampLength(cfg.Length)
		c.cfg = cfg
	}
}

// WithSource sets the random source. The default is generator.NewSecureSource.
func WithSource(src generator.Source) Option {
	return func(c *Controller) { c.src = src }
}

// WithClipboard sets the clipboard used by CopyCurrentPassword.
func WithClipboard(cb clipboard.Clipboard) Option {
	return func(c *Controller) { c.clipboard = cb }
}

// WithLogger sets the logger. The default is slog.Default.
func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) { c.logger = l }
}

// WithListener registers l before the initial load, so it observes it.
func WithListener(l Listener) Option {
	return func(c *Controller) { c.listeners = append(c.listeners, l) }
}

// New creates a Controller and performs the initial generation.
func New(opts ...Option) *Controller {
	c := &Controller{
		cfg: DefaultConfiguration(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.src == nil {
		c.src = generator.NewSecureSource()
	}
	if c.clipboard == nil {
		c.clipboard = clipboard.NewSystem()
	}
	if c.logger == nil {
		c.logger = slog.Default()
	}

	c.regenerate()
	return c
}

// ClampLength bounds n to [MinLength, MaxLength].
func ClampLength(n int) int {
	return max(MinLength, min(n, MaxLength))
}

// Subscribe registers l to be called after every later regeneration.
func (c *Controller) Subscribe(l Listener) {
	c.listeners = append(c.listeners, l)
}

// Configuration returns the current configuration.
func (c *Controller) Configuration() Configuration { return c.cfg }

// Password returns the current password.
func (c *Controller) Password() string { return c.password }

// State returns a snapshot of the current state.
func (c *Controller) State() State {
	return State{
		Configuration: c.cfg,
		Alphabet:      c.alphabet,
		Password:      c.password,
		Generation:    c.generation,
	}
}

// SetLength clamps n and regenerates if the length changed.
func (c *Controller) SetLength(n int) {
	n = ClampLength(n)
	if n == c.cfg.Length {
		return
	}
	c.cfg.Length = n
	c.regenerate()
}

// SetIncludeDigits regenerates if the digit flag changed.
func (c *Controller) SetIncludeDigits(include bool) {
	if include == c.cfg.IncludeDigits {
		return
	}
	c.cfg.IncludeDigits = include
	c.regenerate()
}

// SetIncludeSymbols regenerates if the symbol flag changed.
func (c *Controller) SetIncludeSymbols(include bool) {
	if include == c.cfg.IncludeSymbols {
		return
	}
	c.cfg.IncludeSymbols = include
	c.regenerate()
}

// ToggleDigits flips the digit flag.
func (c *Controller) ToggleDigits() {
	c.SetIncludeDigits(!c.cfg.IncludeDigits)
}

// ToggleSymbols flips the symbol flag.
func (c *Controller) ToggleSymbols() {
	c.SetIncludeSymbols(!c.cfg.IncludeSymbols)
}

// CopyCurrentPassword writes the current password to the clipboard. It does
// not touch the configuration or the password. A failure is logged and
// returned wrapped in ErrClipboardUnavailable so the caller can show a notice.
func (c *Controller) CopyCurrentPassword(ctx context.Context) error {
	return c.CopyFunc()(ctx)
}

// CopyFunc captures the current password and returns a function that writes
// it to the clipboard. The returned function does not read controller state,
// so it may run on another goroutine while the controller keeps changing.
func (c *Controller) CopyFunc() func(ctx context.Context) error {
	password, length := c.password, c.cfg.Length
	cb, logger := c.clipboard, c.logger

	return func(ctx context.Context) (err error) {
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("%w: %v", ErrClipboardUnavailable, r)
			}
			if err != nil {
				logger.Warn("copy to clipboard failed", "error", err)
			}
		}()

		if err := cb.WriteText(ctx, password); err != nil {
			return fmt.Errorf("%w: %w", ErrClipboardUnavailable, err)
		}

		logger.Debug("password copied to clipboard", "length", length)
		return nil
	}
}

func (c *Controller) regenerate() {
	alphabet := generator.BuildAlphabet(c.cfg.IncludeDigits, c.cfg.IncludeSymbols)

	password, err := generator.Generate(c.cfg.Length, alphabet, c.src)
	if err != nil {
		c.logger.Error("password generation failed, keeping previous password",
			"length", c.cfg.Length, "error", err)
		return
	}

	c.alphabet = alphabet
	c.password = password
	c.generation++

	c.logger.Debug("password regenerated",
		"generation", c.generation,
		"length", c.cfg.Length,
		"digits", c.cfg.IncludeDigits,
		"symbols", c.cfg.IncludeSymbols,
	)

	state := c.State()
	for _, l := range c.listeners {
		l(state)
	}
}
