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

import "encoding/binary"

// allSpacesWord is eight 0x20 bytes; a loaded 64-bit word equals this
// value iff all eight source bytes are plain ASCII spaces.
const allSpacesWord = 0x2020202020202020

// skipSpacesSWAR advances past a run of plain 0x20 space bytes starting
// at data[pos], eight bytes at a time while a full word of spaces
// remains (words are loaded from any offset, not only aligned ones),
// falling back to skipSpacesScalar for the remainder.
// This is a genuine (if modest) word-at-a-time scan, not an emulation of
// SIMD assembly: it reads one uint64 and compares it against a
// constant, which is always exact (no per-byte bit tricks, so there is
// no false-positive class to reason about).
func skipSpacesSWAR(data []byte, pos int) int {
	for pos+8 <= len(data) && binary.LittleEndian.Uint64(data[pos:pos+8]) == allSpacesWord {
		pos += 8
	}
	return skipSpacesScalar(data, pos)
}
