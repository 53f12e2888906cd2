// Package arena provides the bounded string storage used by the argparse registry.
// Every string a parser keeps (names, descriptions, option tokens, string
// defaults) is copied into one fixed region and referenced by offset.
package arena

import (
	"errors"
	"unsafe"
)

// DefaultSize is the capacity used when a non-positive size is requested.
const DefaultSize = 0x1000

// ErrCapacityExceeded is returned when a string does not fit in the remaining space.
var ErrCapacityExceeded = errors.New("arena capacity exceeded")

// Ref locates an interned string inside an Arena. The zero Ref is the empty string.
type Ref struct {
	off int
	n   int
}

// Len returns the length of the referenced string in bytes (terminator excluded).
func (r Ref) Len() int { return r.n }

// Mark is a saved cursor position, used to undo a group of Intern calls.
type Mark int

// Arena is a single bounded byte region. Each interned string occupies its
// bytes plus one terminator byte. Not safe for concurrent use.
type Arena struct {
	buf []byte
	off int
}

// New creates an arena with the given capacity in bytes.
func New(size int) *Arena {
	if size <= 0 {
		size = DefaultSize
	}
	return &Arena{buf: make([]byte, size)}
}

// Intern copies s into the next free region and returns a reference to it.
// On failure the arena is left untouched.
func (a *Arena) Intern(s string) (Ref, error) {
	need := len(s) + 1 // terminator
	if a.Remaining() < need {
		return Ref{}, ErrCapacityExceeded
	}

	ref := Ref{off: a.off, n: len(s)}
	copy(a.buf[a.off:], s)
	a.buf[a.off+len(s)] = 0
	a.off += need
	return ref, nil
}

// String returns the interned string for ref without copying.
// The result stays valid for the arena's lifetime as long as ref was not
// discarded by a Rollback.
func (a *Arena) String(ref Ref) string {
	if ref.n == 0 {
		return ""
	}
	return unsafe.String(&a.buf[ref.off], ref.n)
}

// Mark records the current cursor.
func (a *Arena) Mark() Mark { return Mark(a.off) }

// Rollback restores the cursor saved by Mark. Bytes written after the mark are
// not zeroed, only made unreachable.
func (a *Arena) Rollback(m Mark) {
	if int(m) >= 0 && int(m) <= a.off {
		a.off = int(m)
	}
}

// Len returns the number of bytes in use.
func (a *Arena) Len() int { return a.off }

// Cap returns the total capacity in bytes.
func (a *Arena) Cap() int { return len(a.buf) }

// Remaining returns the number of free bytes.
func (a *Arena) Remaining() int { return len(a.buf) - a.off }
