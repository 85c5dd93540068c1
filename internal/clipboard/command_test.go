//go:build !windows

package clipboard

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestCommandSystemCycle(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clip")
	sys := NewCommandSystem(
		[]string{"sh", "-c", `cat > "$0"`, path},
		[]string{"cat", path},
	)
	owner := NewOwner(sys)

	if err := owner.SetClipboard("ꜱᴍᴏʟ"); err != nil {
		t.Fatalf("SetClipboard: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read copy target: %v", err)
	}
	if string(data) != "ꜱᴍᴏʟ" {
		t.Fatalf("copy command received %q", data)
	}

	got, err := owner.Clipboard()
	if err != nil {
		t.Fatalf("Clipboard: %v", err)
	}
	if got != "ꜱᴍᴏʟ" {
		t.Fatalf("Clipboard() = %q", got)
	}
}

func TestCommandSystemMissingProgram(t *testing.T) {
	sys := NewCommandSystem([]string{"transunico-no-such-clipboard-tool"}, nil)
	err := NewOwner(sys).SetClipboard("abc")
	if !errors.Is(err, ErrFailedToOpen) {
		t.Fatalf("SetClipboard = %v, want ErrFailedToOpen", err)
	}
}

func TestCommandSystemFailingProgram(t *testing.T) {
	sys := NewCommandSystem([]string{"sh", "-c", "echo denied >&2; exit 3"}, nil)
	owner := NewOwner(sys)

	err := owner.SetClipboard("abc")
	if !errors.Is(err, ErrFailedToSet) {
		t.Fatalf("SetClipboard = %v, want ErrFailedToSet", err)
	}
	var exitErr interface{ ExitCode() int }
	if !errors.As(err, &exitErr) || exitErr.ExitCode() != 3 {
		t.Fatalf("expected exit status 3 in %v", err)
	}
	if owner.IsOpen() {
		t.Fatal("owner should be closed")
	}
}

func TestCommandSystemWithoutPasteCommand(t *testing.T) {
	sys := NewCommandSystem([]string{"true"}, nil)
	_, err := NewOwner(sys).Clipboard()
	if !errors.Is(err, ErrFailedToRead) {
		t.Fatalf("Clipboard = %v, want ErrFailedToRead", err)
	}
	if !errors.Is(err, errNoPasteCommand) {
		t.Fatalf("expected errNoPasteCommand cause in %v", err)
	}
}
