package app

import "errors"

var (
	ErrNilDependency    = errors.New("app dependency is nil")
	ErrNoClipboard      = errors.New("clipboard output requested but no clipboard is configured")
	ErrShortOutputWrite = errors.New("output accepted fewer bytes than rendered")
)
