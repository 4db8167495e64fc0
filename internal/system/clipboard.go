// Package system provides the OS-facing port implementations: clipboard
// writes, the simulated paste keystroke, and desktop notifications.
package system

import (
	"context"
	"fmt"

	"github.com/atotto/clipboard"
)

// Clipboard implements ports.Clipboard on the system clipboard.
type Clipboard struct{}

func NewClipboard() *Clipboard {
	return &Clipboard{}
}

func (c *Clipboard) SetText(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("clipboard write failed: %w", err)
	}
	return nil
}
