package entropy

import (
	"context"
	"sync"
)

// Locked serializes access to a Buffer
type Locked struct {
	mu sync.Mutex
	b  *Buffer
}

// NewLocked wraps b, which must not be used directly afterwards
func NewLocked(b *Buffer) *Locked {
	return &Locked{b: b}
}

// Take calls Buffer.Take under the lock
func (l *Locked) Take(ctx context.Context, n int) ([]byte, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.b.Take(ctx, n)
}

// Read calls Buffer.Read under the lock
func (l *Locked) Read(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.b.Read(p)
}

// Cursor returns the number of bits consumed so far
func (l *Locked) Cursor() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.b.Cursor()
}
