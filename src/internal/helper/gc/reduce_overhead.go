// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package gc

import (
	"io"

	"github.com/valyala/bytebufferpool"
)

// Buffer defines the interface for a reusable byte buffer.
// It mirrors the subset of [bytebufferpool.ByteBuffer] used across the
// application so callers never depend on the concrete pool type.
//
// Methods:
//   - Write: Appends p to the buffer (implements [io.Writer])
//   - WriteString: Appends a string to the buffer
//   - WriteByte: Appends a single byte to the buffer
//   - ReadFrom: Reads all data from r into the buffer
//   - Bytes: Returns the accumulated bytes
//   - String: Returns the accumulated bytes as a string
//   - Len: Returns the number of accumulated bytes
//   - Reset: Empties the buffer for reuse
type Buffer interface {
	Write(p []byte) (int, error)
	WriteString(s string) (int, error)
	WriteByte(c byte) error
	ReadFrom(r io.Reader) (int64, error)
	Bytes() []byte
	String() string
	Len() int
	Reset()
}

// Pool defines the interface for obtaining and returning buffers.
//
// Buffers obtained with Get must be returned with Put once the caller no longer
// references their contents. Put resets nothing itself; callers reset before Put.
type Pool interface {
	Get() Buffer
	Put(b Buffer)
}

// pool wraps [bytebufferpool.Pool] to implement Pool.
type pool struct{ p *bytebufferpool.Pool }

// Get returns an empty buffer from the pool.
func (p *pool) Get() Buffer { return p.p.Get() }

// Put returns b to the pool. Buffers that were not obtained from a
// bytebufferpool are dropped.
func (p *pool) Put(b Buffer) {
	if buf, ok := b.(*bytebufferpool.ByteBuffer); ok {
		p.p.Put(buf)
	}
}

// Default is the process-wide buffer pool.
//
// Example usage:
//
//	buf := gc.Default.Get()
//	defer func() {
//		buf.Reset()
//		gc.Default.Put(buf)
//	}()
//	if _, err := buf.ReadFrom(file); err != nil {
//		return err
//	}
var Default Pool = &pool{p: &bytebufferpool.Pool{}}
