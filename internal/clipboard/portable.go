package clipboard

import (
	"errors"
	"fmt"
	"runtime"

	atotto "github.com/atotto/clipboard"
)

var errUnsupported = errors.New("clipboard: no xclip, xsel, wl-copy or pbcopy found")

// PortableSystem uses github.com/atotto/clipboard, which shells out to the
// platform's clipboard tools. The library has no open/close concept, so
// Open only checks that a tool is present and Close is a no-op.
type PortableSystem struct {
	unsupported func() bool
	write       func(string) error
	read        func() (string, error)
}

func NewPortableSystem() *PortableSystem {
	return &PortableSystem{
		unsupported: func() bool { return atotto.Unsupported },
		write:       atotto.WriteAll,
		read:        atotto.ReadAll,
	}
}

func (p *PortableSystem) Open() error {
	if p.unsupported() {
		return fmt.Errorf("%w (%s)", errUnsupported, runtime.GOOS)
	}
	return nil
}

func (p *PortableSystem) SetText(buf *EncodedText) error {
	return p.write(buf.Text())
}

func (p *PortableSystem) ReadText() (string, error) {
	return p.read()
}

func (p *PortableSystem) Close() error {
	return nil
}
