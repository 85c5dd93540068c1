// Package clipboard places plain Unicode text on the system clipboard.
//
// The system clipboard is a single systemwide resource accessed through an
// open, set (or read), close sequence. Owner enforces that sequence: it never
// opens twice, always closes after a successful open, and reports partial
// failures (the text was set but the clipboard could not be closed, and so
// on) as distinct error kinds.
package clipboard

import (
	"errors"

	"github.com/Halkcyon/transunico/internal/logging"
)

var ownerLog = logging.L("clipboard")

// Owner guards access to the system clipboard. The zero value is not usable;
// create one with NewOwner. An Owner is not safe for concurrent use, wrap it
// in Locked to share it between goroutines.
type Owner struct {
	sys    System
	isOpen bool
	// setErr is the set failure of the last cycle, if any.
	setErr error
}

// NewOwner returns a closed Owner driving sys. A nil sys behaves like a
// platform without a clipboard.
func NewOwner(sys System) *Owner {
	if sys == nil {
		sys = Unavailable{}
	}
	return &Owner{sys: sys}
}

// IsOpen reports whether the owner currently holds the clipboard.
func (o *Owner) IsOpen() bool {
	return o.isOpen
}

// Open acquires the clipboard. It fails with ErrAlreadyOpen, without calling
// the backend, when the owner already holds it.
func (o *Owner) Open() error {
	if o.isOpen {
		return ErrAlreadyOpen
	}
	if err := o.sys.Open(); err != nil {
		ownerLog.Debug("open failed", logging.KeyError, err)
		return &Error{Kind: KindFailedToOpen, Err: err}
	}
	o.isOpen = true
	o.setErr = nil
	ownerLog.Debug("opened")
	return nil
}

// Close releases the clipboard. Closing a closed owner reports
// ErrAlreadyClosed, or ErrAlreadyClosedAndFailedToSet when the set of the
// last cycle failed. If the backend close fails the owner stays open,
// because the OS clipboard is still held, and Close may be retried.
func (o *Owner) Close() error {
	var stepErr error
	if !o.isOpen {
		stepErr = o.setErr
	}
	return o.closeAfter(setStep, stepErr)
}

// SetClipboard replaces the clipboard content with text. Only a successful
// set followed by a successful close returns nil.
func (o *Owner) SetClipboard(text string) error {
	if err := o.Open(); err != nil {
		return err
	}

	buf := Encode(text)
	setErr := o.sys.SetText(buf)
	if setErr == nil {
		// The OS owns the buffer now.
		buf.Handoff()
	} else {
		ownerLog.Debug("set failed", logging.KeyError, setErr)
		buf.Release()
	}
	o.setErr = setErr

	return o.closeAfter(setStep, setErr)
}

// Clipboard returns the current clipboard text. Backends that cannot read
// fail with ErrFailedToRead.
func (o *Owner) Clipboard() (string, error) {
	if err := o.Open(); err != nil {
		return "", err
	}

	var (
		text    string
		readErr error
	)
	if r, ok := o.sys.(Reader); ok {
		text, readErr = r.ReadText()
	} else {
		readErr = errors.New("backend cannot read")
	}
	if readErr != nil {
		ownerLog.Debug("read failed", logging.KeyError, readErr)
		text = ""
	}

	if err := o.closeAfter(readStep, readErr); err != nil {
		return "", err
	}
	return text, nil
}

// stepKinds maps the outcome of the step run between open and close to the
// kinds reported for it.
type stepKinds struct {
	failed         Kind
	failedAndClose Kind
	alreadyClosed  Kind
}

var (
	setStep  = stepKinds{KindFailedToSet, KindFailedToSetAndClose, KindAlreadyClosedAndFailedToSet}
	readStep = stepKinds{KindFailedToRead, KindFailedToReadAndClose, KindAlreadyClosed}
)

// closeAfter closes the clipboard and composes the result with stepErr, the
// failure of the step that ran while it was open.
func (o *Owner) closeAfter(k stepKinds, stepErr error) error {
	if !o.isOpen {
		if stepErr != nil {
			return &Error{Kind: k.alreadyClosed, Err: stepErr}
		}
		return ErrAlreadyClosed
	}

	if err := o.sys.Close(); err != nil {
		ownerLog.Warn("close failed, clipboard still held", logging.KeyError, err)
		if stepErr != nil {
			return &Error{Kind: k.failedAndClose, Err: errors.Join(stepErr, err)}
		}
		return &Error{Kind: KindFailedToClose, Err: err}
	}
	o.isOpen = false
	ownerLog.Debug("closed")

	if stepErr != nil {
		return &Error{Kind: k.failed, Err: stepErr}
	}
	return nil
}
