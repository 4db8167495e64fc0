package system

import (
	"context"
	"fmt"
	"runtime"

	"github.com/micmonay/keybd_event"
)

// Keystroker implements ports.Keystroker with a synthesized paste
// chord: Ctrl+V, or Cmd+V on macOS.
type Keystroker struct{}

func NewKeystroker() *Keystroker {
	return &Keystroker{}
}

func (k *Keystroker) SendPaste(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	kb, err := keybd_event.NewKeyBonding()
	if err != nil {
		return fmt.Errorf("keyboard binding failed: %w", err)
	}

	if runtime.GOOS == "darwin" {
		kb.HasSuper(true)
	} else {
		kb.HasCTRL(true)
	}
	kb.SetKeys(keybd_event.VK_V)

	if err := kb.Launching(); err != nil {
		return fmt.Errorf("paste keystroke failed: %w", err)
	}
	return nil
}
