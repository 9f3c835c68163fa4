/*
 * serdec-go
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package serdec

import (
	"bufio"
	"io"
	"math"
	"os"
)

const (
	bufferAlignment       = 64
	bufferPadding         = 64
	defaultBufferCapacity = 256

	magicBuffer = 0x5EDEC0B0
)

// Buffer is a reference-counted, 64-byte-aligned byte container with a
// guaranteed-zero padding tail. Retain/Release mutate a plain int32
// refcount without atomics, so they are not safe for concurrent use:
// callers sharing a Buffer across goroutines must synchronize
// externally.
type Buffer struct {
	magic    uint32
	refCount int32

	raw      []byte // over-allocated backing storage
	data     []byte // 64-byte-aligned view into raw, len == capacity (padding included)
	size     int
	capacity int
}

func newAlignedBuffer(size int) *Buffer {
	dataCap := defaultBufferCapacity
	if size > dataCap {
		dataCap = size
	}
	// capacity is the full allocation size including the zero-padding
	// tail, so that Cap() >= Len()+64 always holds.
	capacity := dataCap + bufferPadding

	raw := make([]byte, capacity+bufferAlignment)
	off := int((bufferAlignment - uintptrOf(raw)%bufferAlignment) % bufferAlignment)

	return &Buffer{
		magic:    magicBuffer,
		refCount: 1,
		raw:      raw,
		data:     raw[off : off+capacity],
		size:     size,
		capacity: capacity,
	}
}

// NewBufferFromBytes copies src into a new Buffer.
func NewBufferFromBytes(src []byte) *Buffer {
	if src == nil {
		return nil
	}
	b := newAlignedBuffer(len(src))
	copy(b.data, src)
	return b
}

// NewBufferFromString copies s into a new Buffer.
func NewBufferFromString(s string) *Buffer {
	if s == "" {
		return newAlignedBuffer(0)
	}
	b := newAlignedBuffer(len(s))
	copy(b.data, s)
	return b
}

// NewBufferFromFile reads up to max bytes (0 = unbounded) from path into
// a new Buffer.
func NewBufferFromFile(path string, max int) (*Buffer, ErrorCode) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrFileNotFound
		}
		return nil, ErrIO
	}
	defer f.Close()
	return NewBufferFromStream(f, max)
}

// NewBufferFromStream reads up to max bytes (0 = unbounded) from r into
// a new Buffer.
func NewBufferFromStream(r io.Reader, max int) (*Buffer, ErrorCode) {
	if max > 0 {
		r = io.LimitReader(r, int64(max))
	}
	br := bufio.NewReader(r)
	data, err := io.ReadAll(br)
	if err != nil {
		return nil, ErrIO
	}
	return NewBufferFromBytes(data), ErrNone
}

func (b *Buffer) valid() bool { return b != nil && b.magic == magicBuffer }

// Retain increments the reference count and returns b, or nil if b is
// invalid.
func (b *Buffer) Retain() *Buffer {
	if !b.valid() {
		return nil
	}
	b.refCount++
	return b
}

// Release decrements the reference count, freeing the buffer's storage
// when it reaches zero.
func (b *Buffer) Release() {
	if !b.valid() {
		return
	}
	b.refCount--
	if b.refCount <= 0 {
		b.magic = 0 // freed
		b.raw, b.data = nil, nil
	}
}

// Data returns the logical (unpadded) view of the buffer's bytes.
func (b *Buffer) Data() []byte {
	if !b.valid() {
		return nil
	}
	return b.data[:b.size]
}

// Len returns the logical size, or math.MaxInt if b is invalid (the
// Go analogue of an unsigned SIZE_MAX sentinel for a bad handle).
func (b *Buffer) Len() int {
	if !b.valid() {
		return math.MaxInt
	}
	return b.size
}

// Cap returns the allocated capacity (always >= Len()+64), or
// math.MaxInt if b is invalid.
func (b *Buffer) Cap() int {
	if !b.valid() {
		return math.MaxInt
	}
	return b.capacity
}
