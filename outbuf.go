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
	"fmt"
	"math"
)

// outBufDefaultCapacity is the initial backing size for a
// NewOutBuffer(0) call.
const outBufDefaultCapacity = 256

// outBufGrowthFactor is the minimum geometric growth factor applied on
// each Reserve that doesn't fit the current capacity.
const outBufGrowthFactor = 2

// OutBuffer is a growable output byte buffer, the serialize-side
// counterpart to Buffer: geometric growth, explicit Reserve, and a
// detach-on-Take handoff. Not safe for concurrent use.
type OutBuffer struct {
	data []byte
}

// NewOutBuffer allocates an OutBuffer with at least the given initial
// capacity (0 uses a small default).
func NewOutBuffer(capacity int) *OutBuffer {
	if capacity <= 0 {
		capacity = outBufDefaultCapacity
	}
	return &OutBuffer{data: make([]byte, 0, capacity)}
}

// Len returns the number of bytes currently held.
func (o *OutBuffer) Len() int { return len(o.data) }

// Cap returns the current backing capacity.
func (o *OutBuffer) Cap() int { return cap(o.data) }

// Bytes returns the buffer's current contents. The slice is only valid
// until the next mutating call.
func (o *OutBuffer) Bytes() []byte { return o.data }

// Reserve grows the backing array, if needed, so that at least extra
// more bytes can be appended without a further allocation. Growth is
// geometric (factor >= 2), with an overflow check against a hard
// ceiling instead of silently wrapping.
func (o *OutBuffer) Reserve(extra int) {
	need := len(o.data) + extra
	if need <= cap(o.data) {
		return
	}
	newCap := cap(o.data)
	if newCap == 0 {
		newCap = outBufDefaultCapacity
	}
	for newCap < need {
		if newCap > math.MaxInt/outBufGrowthFactor {
			newCap = need
			break
		}
		newCap *= outBufGrowthFactor
	}
	grown := make([]byte, len(o.data), newCap)
	copy(grown, o.data)
	o.data = grown
}

// Append appends p to the buffer, growing as needed.
func (o *OutBuffer) Append(p []byte) {
	o.Reserve(len(p))
	o.data = append(o.data, p...)
}

// AppendString appends s to the buffer, growing as needed.
func (o *OutBuffer) AppendString(s string) {
	o.Reserve(len(s))
	o.data = append(o.data, s...)
}

// PutByte appends a single byte, growing as needed.
func (o *OutBuffer) PutByte(c byte) {
	o.Reserve(1)
	o.data = append(o.data, c)
}

// Printf formats according to format and appends the result, growing as
// needed. It never fails: a formatting error is impossible to produce
// from well-typed Go arguments.
func (o *OutBuffer) Printf(format string, args ...interface{}) {
	fmt.Fprintf((*outBufWriter)(o), format, args...)
}

// outBufWriter adapts *OutBuffer to io.Writer so fmt.Fprintf can target
// it directly without an intermediate allocation.
type outBufWriter OutBuffer

func (w *outBufWriter) Write(p []byte) (int, error) {
	(*OutBuffer)(w).Append(p)
	return len(p), nil
}

// Clear empties the buffer without releasing its backing array.
func (o *OutBuffer) Clear() {
	o.data = o.data[:0]
}

// Take detaches the backing array from o, NUL-terminates it, and
// returns the logical (non-NUL) bytes. After Take, o is empty and ready
// for reuse. The NUL terminator lets the result be handed to C-string
// interop without a copy.
func (o *OutBuffer) Take() []byte {
	n := len(o.data)
	out := o.data
	out = append(out, 0)
	o.data = nil
	return out[:n]
}
