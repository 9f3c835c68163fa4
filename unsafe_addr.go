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

import "unsafe"

// uintptrOf returns the address of b's backing array's first byte, for
// alignment arithmetic only. It must never be retained past the calls
// that use it (no conversion to unsafe.Pointer is stored), so it does
// not interfere with the garbage collector's ability to move or collect
// the slice in the future (Go slices are not currently relocated, but
// this keeps the usage within the documented unsafe.Pointer rules).
func uintptrOf(b []byte) uintptr {
	if len(b) == 0 {
		return 0
	}
	return uintptr(unsafe.Pointer(&b[0]))
}
