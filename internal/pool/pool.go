// Package pool provides reusable buffers for argparse output
// Used by help/version rendering and error-message formatting
package pool

import (
	"bytes"
	"sync"
)

// Pool is a generic, type-safe wrapper around sync.Pool
type Pool[T any] struct {
	pool  sync.Pool
	reset func(*T) // Optional reset function called before reuse
	keep  func(*T) bool
}

// NewPool creates a new generic pool with the given factory function
func NewPool[T any](factory func() *T) *Pool[T] {
	return &Pool[T]{
		pool: sync.Pool{
			New: func() any {
				return factory()
			},
		},
	}
}

// NewPoolWithReset creates a pool with a reset function called before reuse
func NewPoolWithReset[T any](factory func() *T, reset func(*T)) *Pool[T] {
	p := NewPool(factory)
	p.reset = reset
	return p
}

// Get retrieves an object from the pool or creates a new one
func (p *Pool[T]) Get() *T {
	obj := p.pool.Get().(*T)
	if p.reset != nil {
		p.reset(obj)
	}
	return obj
}

// Put returns an object to the pool for reuse.
// Objects rejected by the keep predicate are dropped.
func (p *Pool[T]) Put(obj *T) {
	if obj == nil {
		return
	}
	if p.keep != nil && !p.keep(obj) {
		return
	}
	p.pool.Put(obj)
}

// MaxBufferCap bounds the capacity of buffers kept for reuse. Help text for a
// full registry stays well under it.
const MaxBufferCap = 64 << 10

// BufferPool hands out bytes.Buffers for rendering text
type BufferPool struct {
	*Pool[bytes.Buffer]
}

// NewBufferPool creates a buffer pool whose buffers start with initialCap bytes
func NewBufferPool(initialCap int) *BufferPool {
	p := NewPoolWithReset(
		func() *bytes.Buffer {
			return bytes.NewBuffer(make([]byte, 0, initialCap))
		},
		func(b *bytes.Buffer) {
			b.Reset() // keep capacity
		},
	)
	p.keep = func(b *bytes.Buffer) bool { return b.Cap() <= MaxBufferCap }
	return &BufferPool{Pool: p}
}

// GlobalBufferPool is shared by all parsers in the process
var GlobalBufferPool = NewBufferPool(1024)

// GetBuffer retrieves an empty buffer from the global pool
func GetBuffer() *bytes.Buffer {
	return GlobalBufferPool.Get()
}

// PutBuffer returns a buffer to the global pool
func PutBuffer(b *bytes.Buffer) {
	GlobalBufferPool.Put(b)
}
