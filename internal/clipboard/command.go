package clipboard

import (
	"bytes"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

var errNoPasteCommand = errors.New("clipboard: no paste command configured")

// CommandSystem pipes the text to a user supplied program, e.g. clip.exe
// under WSL or "xclip -selection clipboard". Open resolves the program and
// fails when it is not installed.
type CommandSystem struct {
	copyCmd  []string
	pasteCmd []string
	path     string
}

func NewCommandSystem(copyCmd, pasteCmd []string) *CommandSystem {
	return &CommandSystem{copyCmd: copyCmd, pasteCmd: pasteCmd}
}

func (c *CommandSystem) Open() error {
	if len(c.copyCmd) == 0 {
		return errors.New("clipboard: no copy command configured")
	}
	path, err := exec.LookPath(c.copyCmd[0])
	if err != nil {
		return fmt.Errorf("clipboard: %w", err)
	}
	c.path = path
	return nil
}

func (c *CommandSystem) SetText(buf *EncodedText) error {
	if c.path == "" {
		return errors.New("clipboard: command not resolved")
	}
	cmd := exec.Command(c.path, c.copyCmd[1:]...)
	cmd.Stdin = strings.NewReader(buf.Text())
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return commandError(c.copyCmd[0], err, stderr.String())
	}
	return nil
}

func (c *CommandSystem) ReadText() (string, error) {
	if len(c.pasteCmd) == 0 {
		return "", errNoPasteCommand
	}
	path, err := exec.LookPath(c.pasteCmd[0])
	if err != nil {
		return "", fmt.Errorf("clipboard: %w", err)
	}
	cmd := exec.Command(path, c.pasteCmd[1:]...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	out, err := cmd.Output()
	if err != nil {
		return "", commandError(c.pasteCmd[0], err, stderr.String())
	}
	return string(out), nil
}

func (c *CommandSystem) Close() error {
	c.path = ""
	return nil
}

func commandError(name string, err error, stderr string) error {
	if msg := strings.TrimSpace(stderr); msg != "" {
		return fmt.Errorf("clipboard: %s: %w: %s", name, err, msg)
	}
	return fmt.Errorf("clipboard: %s: %w", name, err)
}
