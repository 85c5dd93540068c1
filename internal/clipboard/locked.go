package clipboard

import "sync"

// Locked serialises access to an Owner shared between goroutines.
type Locked struct {
	mu    sync.Mutex
	owner *Owner
}

func NewLocked(owner *Owner) *Locked {
	return &Locked{owner: owner}
}

func (l *Locked) SetClipboard(text string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.owner.SetClipboard(text)
}

func (l *Locked) Clipboard() (string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.owner.Clipboard()
}
