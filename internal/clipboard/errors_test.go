package clipboard

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorMessage(t *testing.T) {
	err := &Error{Kind: KindFailedToSet, Err: errors.New("SetClipboardData failed")}
	if got, want := err.Error(), "clipboard: failed to set: SetClipboardData failed"; got != want {
		t.Fatalf("Error() = %q, want %q", got, want)
	}
	if got, want := ErrAlreadyClosed.Error(), "clipboard: already closed"; got != want {
		t.Fatalf("Error() = %q, want %q", got, want)
	}
}

func TestErrorIsMatchesKind(t *testing.T) {
	cause := errors.New("busy")
	err := fmt.Errorf("copy: %w", &Error{Kind: KindFailedToOpen, Err: cause})

	if !errors.Is(err, ErrFailedToOpen) {
		t.Fatal("expected ErrFailedToOpen match through wrapping")
	}
	if errors.Is(err, ErrFailedToSet) {
		t.Fatal("unexpected ErrFailedToSet match")
	}
	if !errors.Is(err, cause) {
		t.Fatal("expected cause to be reachable")
	}
	if KindOf(err) != KindFailedToOpen {
		t.Fatalf("KindOf() = %v, want %v", KindOf(err), KindFailedToOpen)
	}
	if KindOf(cause) != 0 {
		t.Fatalf("KindOf(plain error) = %v, want 0", KindOf(cause))
	}
}

func TestKindString(t *testing.T) {
	for kind, name := range kindNames {
		if kind.String() != name {
			t.Fatalf("%d.String() = %q, want %q", kind, kind.String(), name)
		}
	}
	if Kind(200).String() != "unknown" {
		t.Fatalf("unexpected name for unknown kind: %q", Kind(200).String())
	}
}
