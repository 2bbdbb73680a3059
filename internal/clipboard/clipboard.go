// Package clipboard copies text to the system clipboard.
package clipboard

import (
	"sync"

	"golang.design/x/clipboard"

	"github.com/cloudpebble/cptui/internal/errors"
	"github.com/cloudpebble/cptui/internal/logger"
)

var (
	initOnce sync.Once
	initErr  error
)

// Init initializes the system clipboard. It is safe to call repeatedly.
func Init() error {
	initOnce.Do(func() {
		if err := clipboard.Init(); err != nil {
			logger.WithComponent("clipboard").Warn("clipboard unavailable", "error", err)
			initErr = errors.E(errors.Op("clipboard.Init"), errors.KindIO, "clipboard unavailable", err)
		}
	})
	return initErr
}

func systemWrite(text string) error {
	if err := Init(); err != nil {
		return err
	}
	clipboard.Write(clipboard.FmtText, []byte(text))
	return nil
}

func systemRead() (string, error) {
	if err := Init(); err != nil {
		return "", err
	}
	return string(clipboard.Read(clipboard.FmtText)), nil
}

var (
	write = systemWrite
	read  = systemRead
)

// SetBackend replaces the system clipboard. Tests use it.
func SetBackend(w func(string) error, r func() (string, error)) {
	write, read = w, r
}

// ResetBackend restores the system clipboard.
func ResetBackend() {
	write, read = systemWrite, systemRead
}

// WriteText puts text on the clipboard.
func WriteText(text string) error {
	return write(text)
}

// ReadText returns the clipboard's text, or "" when it holds none.
func ReadText() (string, error) {
	return read()
}
