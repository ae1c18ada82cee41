package adapter

import "errors"

var (
	ErrCreateOutputFile     = errors.New("cannot create output file")
	ErrClipboardUnavailable = errors.New("clipboard is not available on this system")
	ErrClipboardWrite       = errors.New("cannot write to clipboard")
)
