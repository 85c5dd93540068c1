package clipboard

import "errors"

// Kind names the step, or combination of steps, of a clipboard cycle that
// failed.
type Kind uint8

const (
	KindAlreadyOpen Kind = iota + 1
	KindFailedToOpen
	KindFailedToSet
	KindFailedToClose
	KindFailedToSetAndClose
	KindAlreadyClosed
	KindAlreadyClosedAndFailedToSet
	KindFailedToRead
	KindFailedToReadAndClose
)

var kindNames = map[Kind]string{
	KindAlreadyOpen:                 "already open",
	KindFailedToOpen:                "failed to open",
	KindFailedToSet:                 "failed to set",
	KindFailedToClose:               "failed to close",
	KindFailedToSetAndClose:         "failed to set and close",
	KindAlreadyClosed:               "already closed",
	KindAlreadyClosedAndFailedToSet: "already closed and failed to set",
	KindFailedToRead:                "failed to read",
	KindFailedToReadAndClose:        "failed to read and close",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Error reports a failed clipboard cycle. Err holds the backend error(s)
// behind the failure; both are joined when two steps failed.
type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return "clipboard: " + e.Kind.String()
	}
	return "clipboard: " + e.Kind.String() + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches any *Error of the same Kind, so errors.Is(err, ErrFailedToSet)
// holds regardless of the wrapped backend error.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// Sentinels for errors.Is.
var (
	ErrAlreadyOpen                 = &Error{Kind: KindAlreadyOpen}
	ErrFailedToOpen                = &Error{Kind: KindFailedToOpen}
	ErrFailedToSet                 = &Error{Kind: KindFailedToSet}
	ErrFailedToClose               = &Error{Kind: KindFailedToClose}
	ErrFailedToSetAndClose         = &Error{Kind: KindFailedToSetAndClose}
	ErrAlreadyClosed               = &Error{Kind: KindAlreadyClosed}
	ErrAlreadyClosedAndFailedToSet = &Error{Kind: KindAlreadyClosedAndFailedToSet}
	ErrFailedToRead                = &Error{Kind: KindFailedToRead}
	ErrFailedToReadAndClose        = &Error{Kind: KindFailedToReadAndClose}
)

// KindOf returns the Kind of the first *Error in err's chain, or 0.
func KindOf(err error) Kind {
	var ce *Error
	if errors.As(err, &ce) {
		return ce.Kind
	}
	return 0
}
