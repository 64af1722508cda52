package main

import (
	"io"
	"sync"
)

// Default buffer size for copyBuffer in bytes
const DefaultCopyBufSize = 256 * 1024

// copyBuf caches the []byte used to stream random content, reference input and
// S3 object bodies, so multi-megabyte cases never sit in memory.
var copyBuf = NewBufferPool(DefaultCopyBufSize)

// BufferPool specifies an interface to fetch and return resources from a cache
// pool.
type BufferPool interface {
	Get() []byte
	Put([]byte)
}

// bufferPool implements a simple unbounded cache for reusing []byte of a
// fixed size.
type bufferPool struct {
	size int
	pool *sync.Pool
}

// NewBufferPool initializes a new BufferPool which will return []byte slice of
// the specified size.
func NewBufferPool(size int) BufferPool {
	return &bufferPool{
		size: size,
		pool: &sync.Pool{
			New: func() any {
				return make([]byte, size)
			},
		},
	}
}

// Get returns a []byte slice of the pool's size.  The slice should be returned
// via Put when the caller has finished with it.
func (p *bufferPool) Get() []byte {
	return p.pool.Get().([]byte)[:p.size]
}

// Put returns a []byte slice to the pool, slices that are too small are
// dropped.
func (p *bufferPool) Put(b []byte) {
	if cap(b) < p.size {
		return
	}
	p.pool.Put(b[:p.size])
}

// copyBuffer copies from src to dst through a pooled buffer.
func copyBuffer(dst io.Writer, src io.Reader) (int64, error) {
	buf := copyBuf.Get()
	defer copyBuf.Put(buf)

	return io.CopyBuffer(dst, src, buf)
}
