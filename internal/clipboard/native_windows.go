//go:build windows

package clipboard

import (
	"fmt"
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"
)

const autoBackend = BackendNative

var (
	user32   = windows.NewLazySystemDLL("user32.dll")
	kernel32 = windows.NewLazySystemDLL("kernel32.dll")

	procOpenClipboard    = user32.NewProc("OpenClipboard")
	procCloseClipboard   = user32.NewProc("CloseClipboard")
	procEmptyClipboard   = user32.NewProc("EmptyClipboard")
	procGetClipboardData = user32.NewProc("GetClipboardData")
	procSetClipboardData = user32.NewProc("SetClipboardData")

	procGlobalAlloc  = kernel32.NewProc("GlobalAlloc")
	procGlobalFree   = kernel32.NewProc("GlobalFree")
	procGlobalLock   = kernel32.NewProc("GlobalLock")
	procGlobalUnlock = kernel32.NewProc("GlobalUnlock")
)

const (
	cfUnicodeText = 13 // CF_UNICODETEXT
	gmemMoveable  = 0x0002
)

// nativeSystem drives the Win32 clipboard API.
type nativeSystem struct{}

func newNativeSystem() System {
	return nativeSystem{}
}

func (nativeSystem) Open() error {
	// A NULL owner window associates the clipboard with the current task.
	if r, _, err := procOpenClipboard.Call(0); r == 0 {
		return procError("OpenClipboard", err)
	}
	return nil
}

func (nativeSystem) Close() error {
	if r, _, err := procCloseClipboard.Call(); r == 0 {
		return procError("CloseClipboard", err)
	}
	return nil
}

// SetText copies buf into a movable global block and passes it to
// SetClipboardData. The block is freed here only if the system rejected it;
// otherwise the system owns it.
func (nativeSystem) SetText(buf *EncodedText) error {
	units := buf.Units()
	if len(units) == 0 {
		return fmt.Errorf("empty buffer")
	}

	hMem, _, err := procGlobalAlloc.Call(gmemMoveable, uintptr(len(units))*2)
	if hMem == 0 {
		return procError("GlobalAlloc", err)
	}

	ptr, _, err := procGlobalLock.Call(hMem)
	if ptr == 0 {
		procGlobalFree.Call(hMem)
		return procError("GlobalLock", err)
	}
	copy(unsafe.Slice((*uint16)(unsafe.Pointer(ptr)), len(units)), units)
	// The block must be unlocked before the clipboard is closed.
	procGlobalUnlock.Call(hMem)

	if r, _, err := procEmptyClipboard.Call(); r == 0 {
		procGlobalFree.Call(hMem)
		return procError("EmptyClipboard", err)
	}
	if r, _, err := procSetClipboardData.Call(cfUnicodeText, hMem); r == 0 {
		procGlobalFree.Call(hMem)
		return procError("SetClipboardData", err)
	}
	return nil
}

func (nativeSystem) ReadText() (string, error) {
	hData, _, err := procGetClipboardData.Call(cfUnicodeText)
	if hData == 0 {
		return "", procError("GetClipboardData", err)
	}

	ptr, _, err := procGlobalLock.Call(hData)
	if ptr == 0 {
		return "", procError("GlobalLock", err)
	}
	defer procGlobalUnlock.Call(hData)

	return windows.UTF16PtrToString((*uint16)(unsafe.Pointer(ptr))), nil
}

// procError turns the last-error value of a failed call into an error.
// Some calls fail without setting it.
func procError(name string, err error) error {
	if errno, ok := err.(syscall.Errno); ok && errno == 0 {
		return fmt.Errorf("%s failed", name)
	}
	return fmt.Errorf("%s: %w", name, err)
}
