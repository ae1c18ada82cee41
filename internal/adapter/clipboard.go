package adapter

import (
	"fmt"

	"github.com/atotto/clipboard"
)

type systemClipboard struct{}

// NewSystemClipboard returns a [Clipboard] backed by the OS clipboard
// (pbcopy, xclip/xsel/wl-copy or the Windows API).
func NewSystemClipboard() Clipboard {
	return systemClipboard{}
}

func (systemClipboard) WriteAll(text string) error {
	if clipboard.Unsupported {
		return ErrClipboardUnavailable
	}

	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("%w: %w", ErrClipboardWrite, err)
	}
	return nil
}
