// Package clipboardtest provides an in-memory clipboard.System whose steps
// can be made to fail.
package clipboardtest

import (
	"errors"

	"github.com/Halkcyon/transunico/internal/clipboard"
)

// Injected failures.
var (
	ErrOpen  = errors.New("clipboardtest: open refused")
	ErrSet   = errors.New("clipboardtest: set refused")
	ErrClose = errors.New("clipboardtest: close refused")
	ErrRead  = errors.New("clipboardtest: read refused")
)

// System models the systemwide clipboard: a single slot that one holder can
// open at a time. Set a Fail* field to make that step fail.
type System struct {
	FailOpen  bool
	FailSet   bool
	FailClose bool
	FailRead  bool

	// Calls records every primitive invoked, in order.
	Calls []string
	// Last is the buffer passed to the most recent SetText.
	Last *clipboard.EncodedText

	held  bool
	units []uint16
}

func New() *System {
	return &System{}
}

// Held reports whether the clipboard is open at the "OS" level.
func (s *System) Held() bool {
	return s.held
}

// Text returns the stored content without going through open/close.
func (s *System) Text() string {
	return clipboard.Decode(s.units)
}

func (s *System) Open() error {
	s.Calls = append(s.Calls, "open")
	if s.FailOpen {
		return ErrOpen
	}
	if s.held {
		return errors.New("clipboardtest: clipboard held by another owner")
	}
	s.held = true
	return nil
}

func (s *System) SetText(buf *clipboard.EncodedText) error {
	s.Calls = append(s.Calls, "set")
	s.Last = buf
	if !s.held {
		return errors.New("clipboardtest: set without open")
	}
	if s.FailSet {
		return ErrSet
	}
	// Keep the caller's buffer itself, not a copy: it belongs to us now.
	s.units = buf.Units()
	return nil
}

func (s *System) ReadText() (string, error) {
	s.Calls = append(s.Calls, "read")
	if !s.held {
		return "", errors.New("clipboardtest: read without open")
	}
	if s.FailRead {
		return "", ErrRead
	}
	return clipboard.Decode(s.units), nil
}

func (s *System) Close() error {
	s.Calls = append(s.Calls, "close")
	if s.FailClose {
		return ErrClose
	}
	s.held = false
	return nil
}
