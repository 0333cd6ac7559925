// Package clipboard writes text to the platform clipboard.
package clipboard

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/atotto/clipboard"
)

// ErrUnavailable is returned when no clipboard can be written on this platform.
var ErrUnavailable = errors.New("clipboard unavailable")

// Clipboard accepts text to place on a clipboard.
type Clipboard interface {
	WriteText(ctx context.Context, text string) error
}

// System writes to the operating system clipboard through xclip, xsel,
// wl-copy, pbcopy or the Windows API, whichever the platform offers.
type System struct {
	write func(text string) error
}

// NewSystem creates a System clipboard.
func NewSystem() *System {
	return &System{write: writeAll}
}

func writeAll(text string) error {
	if clipboard.Unsupported {
		return ErrUnavailable
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}

// WriteText copies text to the system clipboard. The platform helper does
// not take a context, so WriteText returns ctx.Err() once ctx is done and
// leaves the helper to finish in the background.
func (s *System) WriteText(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	done := make(chan error, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- fmt.Errorf("%w: %v", ErrUnavailable, r)
			}
		}()
		done <- s.write(text)
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Memory is an in-process clipboard. It is used when the system clipboard
// is disabled and in tests.
type Memory struct {
	mu     sync.Mutex
	text   string
	writes int
	err    error
}

// NewMemory creates an empty Memory clipboard.
func NewMemory() *Memory {
	return &Memory{}
}

// FailWith makes subsequent writes return err. A nil err restores normal writes.
func (m *Memory) FailWith(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}

// WriteText stores text.
func (m *Memory) WriteText(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.err != nil {
		return m.err
	}
	m.text = text
	m.writes++
	return nil
}

// Text returns the last successfully written text.
func (m *Memory) Text() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.text
}

// Writes returns the number of successful writes.
func (m *Memory) Writes() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.writes
}
