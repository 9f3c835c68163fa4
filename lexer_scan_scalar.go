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

// skipSpacesScalar advances past a run of plain 0x20 space bytes
// starting at data[pos], one byte at a time, returning the new
// position. It does not handle \t, \r, or \n: those are structurally
// significant for line/column tracking and are handled by the caller.
func skipSpacesScalar(data []byte, pos int) int {
	for pos < len(data) && data[pos] == ' ' {
		pos++
	}
	return pos
}
