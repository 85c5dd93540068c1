package clipboard

import (
	"errors"
	"fmt"
	"strings"
)

// System is the OS clipboard primitive set an Owner drives. Open acquires
// the systemwide clipboard and fails if another process holds it. SetText
// takes the encoded buffer; on success the buffer belongs to the OS. Close
// releases the clipboard.
type System interface {
	Open() error
	SetText(buf *EncodedText) error
	Close() error
}

// Reader is implemented by systems that can read the clipboard back while
// it is open.
type Reader interface {
	ReadText() (string, error)
}

// ErrNoClipboard is returned by Unavailable.
var ErrNoClipboard = errors.New("no clipboard available")

// Unavailable is the system for platforms without a clipboard. Open always
// fails, which an Owner surfaces as ErrFailedToOpen.
type Unavailable struct {
	Reason string
}

func (u Unavailable) Open() error {
	if u.Reason != "" {
		return fmt.Errorf("%w: %s", ErrNoClipboard, u.Reason)
	}
	return ErrNoClipboard
}

func (u Unavailable) SetText(*EncodedText) error {
	return ErrNoClipboard
}

func (u Unavailable) Close() error {
	return ErrNoClipboard
}

// Backend names accepted by NewSystem.
const (
	BackendAuto     = "auto"
	BackendNative   = "native"
	BackendPortable = "portable"
	BackendCommand  = "command"
	BackendNone     = "none"
)

// Backends lists every backend name NewSystem accepts.
var Backends = []string{BackendAuto, BackendNative, BackendPortable, BackendCommand, BackendNone}

// Options selects and configures a System.
type Options struct {
	Backend string
	// CopyCommand and PasteCommand configure BackendCommand: the program
	// followed by its arguments.
	CopyCommand  []string
	PasteCommand []string
}

// NewSystem builds the System named by opts.Backend. An empty backend
// means BackendAuto: the native Win32 clipboard on Windows, the portable
// backend elsewhere.
func NewSystem(opts Options) (System, error) {
	backend := strings.ToLower(strings.TrimSpace(opts.Backend))
	if backend == "" || backend == BackendAuto {
		backend = autoBackend
	}

	switch backend {
	case BackendNative:
		return newNativeSystem(), nil
	case BackendPortable:
		return NewPortableSystem(), nil
	case BackendCommand:
		if len(opts.CopyCommand) == 0 {
			return nil, errors.New("clipboard: command backend requires a copy command")
		}
		return NewCommandSystem(opts.CopyCommand, opts.PasteCommand), nil
	case BackendNone:
		return Unavailable{Reason: "disabled by configuration"}, nil
	default:
		return nil, fmt.Errorf("clipboard: unknown backend %q", opts.Backend)
	}
}
