package clipboard

import "unicode/utf16"

type ownership uint8

const (
	owned ownership = iota
	released
	handedOff
)

// EncodedText is a null-terminated UTF-16 buffer in the layout the OS
// clipboard expects for CF_UNICODETEXT. The caller manages it until either
// Release (the set failed, free it) or Handoff (the OS took it) is called.
type EncodedText struct {
	units []uint16
	state ownership
}

// Encode converts text to UTF-16 code units followed by a zero unit.
// Invalid UTF-8 is encoded as U+FFFD.
func Encode(text string) *EncodedText {
	units := utf16.Encode([]rune(text))
	return &EncodedText{units: append(units, 0)}
}

// Units returns the code units including the terminator. It returns nil
// once the buffer is no longer managed by the caller.
func (e *EncodedText) Units() []uint16 {
	if e.state != owned {
		return nil
	}
	return e.units
}

// Len is the number of code units before the terminator.
func (e *EncodedText) Len() int {
	if e.state != owned || len(e.units) == 0 {
		return 0
	}
	return len(e.units) - 1
}

// Text decodes the buffer back to a string.
func (e *EncodedText) Text() string {
	return Decode(e.Units())
}

// Owned reports whether the caller still manages the buffer.
func (e *EncodedText) Owned() bool {
	return e.state == owned
}

// HandedOff reports whether ownership moved to the OS.
func (e *EncodedText) HandedOff() bool {
	return e.state == handedOff
}

// Release frees the buffer on the failure path. It is a no-op after
// Handoff: the OS copy must not be touched.
func (e *EncodedText) Release() {
	if e.state != owned {
		return
	}
	clear(e.units)
	e.units = nil
	e.state = released
}

// Handoff stops managing the buffer without freeing it. Call it only after
// the OS accepted the buffer.
func (e *EncodedText) Handoff() {
	if e.state != owned {
		return
	}
	e.units = nil
	e.state = handedOff
}

// Decode reads code units up to the first zero unit and decodes them.
// Unpaired surrogates become U+FFFD. A nil or empty buffer yields "".
func Decode(units []uint16) string {
	for i, u := range units {
		if u == 0 {
			units = units[:i]
			break
		}
	}
	if len(units) == 0 {
		return ""
	}
	return string(utf16.Decode(units))
}
