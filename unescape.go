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

import "unicode/utf8"

// Unescape decodes a raw JSON string slice (the bytes between the
// quotes, as produced by the Lexer's String token) into arena-owned
// bytes. All JSON escapes shrink or preserve byte count, so len(src) is
// always a sufficient allocation.
func Unescape(arena *Arena, src []byte) ([]byte, ErrorCode) {
	dst := arena.Alloc(len(src))
	if dst == nil && len(src) > 0 {
		return nil, ErrOutOfMemory
	}

	n := 0
	for i := 0; i < len(src); {
		c := src[i]
		if c != '\\' {
			dst[n] = c
			n++
			i++
			continue
		}

		if i+1 >= len(src) {
			return nil, ErrInvalidEscape // trailing backslash
		}
		esc := src[i+1]
		switch esc {
		case '"', '\\', '/':
			dst[n] = esc
			n++
			i += 2
		case 'b':
			dst[n] = '\b'
			n++
			i += 2
		case 'f':
			dst[n] = '\f'
			n++
			i += 2
		case 'n':
			dst[n] = '\n'
			n++
			i += 2
		case 'r':
			dst[n] = '\r'
			n++
			i += 2
		case 't':
			dst[n] = '\t'
			n++
			i += 2
		case 'u':
			cp, consumed, code := decodeUnicodeEscape(src, i+2)
			if code != ErrNone {
				return nil, code
			}
			written := utf8.EncodeRune(dst[n:], cp)
			n += written
			i += 2 + consumed
		default:
			return nil, ErrInvalidEscape
		}
	}

	return dst[:n], ErrNone
}

// decodeUnicodeEscape decodes a \uXXXX (and, for a high surrogate, a
// following \uXXXX low surrogate) starting at src[at]. Returns the
// combined codepoint, the number of source bytes consumed after the
// leading "\u" already accounted for by the caller (4, or 10 for a
// surrogate pair), and an error code.
func decodeUnicodeEscape(src []byte, at int) (cp rune, consumed int, code ErrorCode) {
	hi, ok := parseHex4(src, at)
	if !ok {
		return 0, 0, ErrInvalidEscape
	}

	if hi >= 0xD800 && hi <= 0xDBFF {
		// High surrogate: must be followed by \uDCxx..DFxx.
		if at+4+2 > len(src) || src[at+4] != '\\' || src[at+4+1] != 'u' {
			return 0, 0, ErrInvalidEscape
		}
		lo, ok := parseHex4(src, at+6)
		if !ok || lo < 0xDC00 || lo > 0xDFFF {
			return 0, 0, ErrInvalidEscape
		}
		combined := 0x10000 + (rune(hi)-0xD800)<<10 + (rune(lo) - 0xDC00)
		return combined, 10, ErrNone
	}

	if hi >= 0xDC00 && hi <= 0xDFFF {
		// Lone low surrogate.
		return 0, 0, ErrInvalidEscape
	}

	return rune(hi), 4, ErrNone
}

// parseHex4 parses exactly 4 hex digits (upper or lower case) at
// src[at:at+4].
func parseHex4(src []byte, at int) (uint16, bool) {
	if at+4 > len(src) {
		return 0, false
	}
	var v uint16
	for i := 0; i < 4; i++ {
		d, ok := hexDigit(src[at+i])
		if !ok {
			return 0, false
		}
		v = v<<4 | uint16(d)
	}
	return v, true
}

func hexDigit(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	default:
		return 0, false
	}
}
