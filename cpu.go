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

import "github.com/klauspost/cpuid/v2"

// SupportedSIMD reports whether the host CPU is wide enough that the
// lexer's word-at-a-time (SWAR) scanner for runs of spaces is worth
// preferring over the scalar, byte-at-a-time scanner. This module
// contains no hand-written assembly: both scan paths are portable Go
// and produce byte-identical results, so this only decides which loop
// runs.
func SupportedSIMD() bool {
	return cpuid.CPU.Supports(cpuid.SSE2) || cpuid.CPU.Supports(cpuid.ASIMD)
}
