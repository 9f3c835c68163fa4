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

const (
	defaultBlockSize = 16 * 1024
	defaultMaxMemory = 256 * 1024 * 1024

	magicArena = 0x5EDEC0A2
	magicFreed = 0xFEEDFEED
)

// Config configures an Arena. A zero Config is valid: every field
// defaults as documented.
type Config struct {
	// BlockSize is the capacity of each standard block. Default 16 KiB.
	BlockSize int
	// MaxMemory bounds the arena's total_allocated. Default 256 MiB.
	MaxMemory int
	// Alloc, if set, replaces the block-backing allocator (default:
	// make([]byte, n)). Free, if set, is called with a block's storage
	// when it would otherwise be released (default: no-op, since Go's
	// GC reclaims it).
	Alloc func(n int) []byte
	Free  func([]byte)
}

type arenaBlock struct {
	data []byte // len(data) == capacity, data[:used] is live
	used int
	next *arenaBlock
}

// Arena is a singly-linked list of blocks implementing bump allocation
// with a hard memory cap. See NewArena.
type Arena struct {
	magic uint32

	first   *arenaBlock
	current *arenaBlock

	totalAllocated int
	cfg            Config
}

// NewArena creates an arena from cfg, filling in defaults for zero
// fields. Panics if Alloc is set but returns a block whose length differs
// from the size requested (here or in later allocations): that is a
// caller bug, not a data error.
func NewArena(cfg Config) *Arena {
	if cfg.BlockSize <= 0 {
		cfg.BlockSize = defaultBlockSize
	}
	if cfg.MaxMemory <= 0 {
		cfg.MaxMemory = defaultMaxMemory
	}
	if cfg.Alloc == nil {
		cfg.Alloc = func(n int) []byte { return make([]byte, n) }
	}
	if cfg.Free == nil {
		cfg.Free = func([]byte) {}
	}

	block := &arenaBlock{data: cfg.Alloc(cfg.BlockSize)}
	if len(block.data) != cfg.BlockSize {
		panic("serdec: Config.Alloc returned a block of the wrong size")
	}

	return &Arena{
		magic:          magicArena,
		first:          block,
		current:        block,
		totalAllocated: cfg.BlockSize,
		cfg:            cfg,
	}
}

func (a *Arena) valid() bool { return a != nil && a.magic == magicArena }

// Destroy releases every block. Destroy(nil) is a no-op. The arena must
// not be used afterward.
func (a *Arena) Destroy() {
	if !a.valid() {
		return
	}
	a.magic = magicFreed
	for b := a.first; b != nil; {
		next := b.next
		a.cfg.Free(b.data)
		b = next
	}
	a.first, a.current = nil, nil
}

// Alloc returns n contiguous, zero-length-checked bytes. Returns nil if
// the arena is invalid, n is 0, or the allocation would exceed
// MaxMemory.
func (a *Arena) Alloc(n int) []byte {
	if !a.valid() || n <= 0 {
		return nil
	}

	// Oversize: a dedicated block, spliced after current (not made
	// current), so the current block stays the bump target for future
	// small allocations.
	if n > a.cfg.BlockSize {
		if a.totalAllocated+n > a.cfg.MaxMemory {
			return nil
		}
		block := &arenaBlock{data: a.cfg.Alloc(n), used: n}
		if len(block.data) != n {
			panic("serdec: Config.Alloc returned a block of the wrong size")
		}
		block.next = a.current.next
		a.current.next = block
		a.totalAllocated += n
		return block.data
	}

	// Normal: bump within current, or roll a new standard block.
	if n > len(a.current.data)-a.current.used {
		if a.totalAllocated+a.cfg.BlockSize > a.cfg.MaxMemory {
			return nil
		}
		block := &arenaBlock{data: a.cfg.Alloc(a.cfg.BlockSize)}
		if len(block.data) != a.cfg.BlockSize {
			panic("serdec: Config.Alloc returned a block of the wrong size")
		}
		block.next = a.current.next
		a.current.next = block
		a.current = block
		a.totalAllocated += a.cfg.BlockSize
	}

	p := a.current.data[a.current.used : a.current.used+n : a.current.used+n]
	a.current.used += n
	return p
}

// AllocAligned returns n bytes whose address is divisible by the
// power-of-two align. Padding is charged against the current block's
// remaining space but not accounted separately against MaxMemory beyond
// the block's own reservation.
func (a *Arena) AllocAligned(n, align int) []byte {
	if !a.valid() || n <= 0 || align <= 0 || align&(align-1) != 0 {
		return nil
	}

	if n <= len(a.current.data)-a.current.used {
		base := uintptrOf(a.current.data) + uintptr(a.current.used)
		padding := int((uintptr(align) - base%uintptr(align)) % uintptr(align))
		if padding <= len(a.current.data)-a.current.used-n {
			start := a.current.used + padding
			p := a.current.data[start : start+n : start+n]
			a.current.used = start + n
			return p
		}
	}

	// Not enough room for padding + n in the current block: roll a
	// fresh block sized to guarantee room for the alignment padding too,
	// and compute the padding from its actual address rather than
	// assuming anything about where the allocator places it.
	if n > a.cfg.BlockSize {
		size := n + align
		if a.totalAllocated+size > a.cfg.MaxMemory {
			return nil
		}
		block := &arenaBlock{data: a.cfg.Alloc(size)}
		if len(block.data) != size {
			panic("serdec: Config.Alloc returned a block of the wrong size")
		}
		block.next = a.current.next
		a.current.next = block
		a.totalAllocated += size
		base := uintptrOf(block.data)
		padding := int((uintptr(align) - base%uintptr(align)) % uintptr(align))
		block.used = padding
		p := block.data[padding : padding+n : padding+n]
		block.used += n
		return p
	}
	blockSize := a.cfg.BlockSize + align
	if a.totalAllocated+blockSize > a.cfg.MaxMemory {
		return nil
	}
	block := &arenaBlock{data: a.cfg.Alloc(blockSize)}
	if len(block.data) != blockSize {
		panic("serdec: Config.Alloc returned a block of the wrong size")
	}
	block.next = a.current.next
	a.current.next = block
	a.current = block
	a.totalAllocated += blockSize
	base := uintptrOf(block.data)
	padding := int((uintptr(align) - base%uintptr(align)) % uintptr(align))
	block.used = padding
	p := block.data[padding : padding+n : padding+n]
	block.used += n
	return p
}

// Strdup copies len(s) bytes plus a trailing NUL into the arena.
func (a *Arena) Strdup(s []byte) []byte {
	if !a.valid() {
		return nil
	}
	p := a.Alloc(len(s) + 1)
	if p == nil {
		return nil
	}
	copy(p, s)
	p[len(s)] = 0
	return p
}

// Reset rewinds the arena to its first block, discarding every other
// block. Callers must not keep using pointers obtained before Reset.
func (a *Arena) Reset() {
	if !a.valid() {
		return
	}
	for b := a.first.next; b != nil; {
		next := b.next
		a.cfg.Free(b.data)
		b = next
	}
	a.first.next = nil
	a.first.used = 0
	a.current = a.first
	a.totalAllocated = len(a.first.data)
}

// Used sums the used byte count across all live blocks.
func (a *Arena) Used() int {
	if !a.valid() {
		return -1
	}
	n := 0
	for b := a.first; b != nil; b = b.next {
		n += b.used
	}
	return n
}
