// Package clipboard places text on the system clipboard.
package clipboard

import (
	"errors"
	"fmt"
	"time"

	atotto "github.com/atotto/clipboard"
)

// Settle is how long Copy waits after writing so that clipboard helpers
// that hand data off asynchronously finish before the process exits.
const Settle = 100 * time.Millisecond

// ErrUnavailable is returned when no clipboard mechanism exists on this system.
var ErrUnavailable = errors.New("clipboard unavailable")

// Sink accepts a single string and makes it the clipboard contents.
type Sink interface {
	WriteText(text string) error
}

// System is the Sink backed by the platform clipboard utilities.
type System struct{}

// NewSystem returns a System sink, or ErrUnavailable when the platform
// offers no clipboard utility (for example xclip, xsel or wl-copy on Linux).
func NewSystem() (*System, error) {
	if atotto.Unsupported {
		return nil, ErrUnavailable
	}
	return &System{}, nil
}

// WriteText implements Sink.
func (*System) WriteText(text string) error {
	if err := atotto.WriteAll(text); err != nil {
		return fmt.Errorf("failed to write clipboard: %w", err)
	}
	return nil
}

// Copy writes text to sink and waits Settle before returning.
func Copy(sink Sink, text string) error {
	if err := sink.WriteText(text); err != nil {
		return err
	}
	time.Sleep(Settle)
	return nil
}
