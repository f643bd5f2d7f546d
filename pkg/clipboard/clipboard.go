// Package clipboard copies text to the system clipboard, falling back to
// an OSC 52 escape sequence when no native clipboard is available (e.g.
// over SSH or in a headless session).
package clipboard

import (
	"fmt"
	"io"
	"os"

	"github.com/atotto/clipboard"
	"github.com/aymanbagabas/go-osc52/v2"
)

// Copy writes text to the clipboard. The native clipboard is tried first
// when present; otherwise the OSC 52 sequence is written to the
// controlling terminal. An error is returned only when both paths fail.
func Copy(text string) error {
	if !clipboard.Unsupported {
		if err := clipboard.WriteAll(text); err == nil {
			return nil
		}
	}
	return copyOSC52(text)
}

func copyOSC52(text string) error {
	out, release, err := terminalWriter()
	if err != nil {
		return fmt.Errorf("clipboard unavailable: %w", err)
	}
	defer release()

	if _, err := osc52.New(text).WriteTo(out); err != nil {
		return fmt.Errorf("failed to write clipboard sequence: %w", err)
	}
	return nil
}

// terminalWriter acquires a handle on the controlling terminal. The
// release function must be called regardless of whether the write
// succeeded.
func terminalWriter() (io.Writer, func(), error) {
	tty, err := os.OpenFile("/dev/tty", os.O_WRONLY, 0)
	if err == nil {
		return tty, func() { tty.Close() }, nil
	}
	// No controlling terminal (tests, pipes); stderr still reaches the
	// emulator when one is attached.
	return os.Stderr, func() {}, nil
}
