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
	"math"
	"testing"
)

func lexOneNumber(t *testing.T, src string) Token {
	t.Helper()
	buf := NewBufferFromString(src)
	defer buf.Release()
	l := NewLexer(buf)
	defer l.Destroy()
	return l.Next()
}

func TestLexNumberUnsigned(t *testing.T) {
	tok := lexOneNumber(t, "12345")
	if tok.Type != TokenNumber || tok.Number.Kind != NumberUnsigned || tok.Number.U64 != 12345 {
		t.Fatalf("got %+v", tok)
	}
}

func TestLexNumberZero(t *testing.T) {
	tok := lexOneNumber(t, "0")
	if tok.Type != TokenNumber || tok.Number.Kind != NumberUnsigned || tok.Number.U64 != 0 {
		t.Fatalf("got %+v", tok)
	}
}

func TestLexNumberNegative(t *testing.T) {
	tok := lexOneNumber(t, "-42")
	if tok.Type != TokenNumber || tok.Number.Kind != NumberSigned || tok.Number.I64 != -42 {
		t.Fatalf("got %+v", tok)
	}
}

func TestLexNumberNegativeZero(t *testing.T) {
	tok := lexOneNumber(t, "-0")
	if tok.Type != TokenNumber || tok.Number.Kind != NumberSigned || !tok.Number.Negative || tok.Number.I64 != 0 {
		t.Fatalf("got %+v, want {Signed, Negative:true, I64:0}", tok)
	}
}

func TestLexNumberMinInt64(t *testing.T) {
	tok := lexOneNumber(t, "-9223372036854775808")
	if tok.Type != TokenNumber || tok.Number.Kind != NumberSigned || tok.Number.I64 != math.MinInt64 {
		t.Fatalf("got %+v, want MinInt64", tok)
	}
}

func TestLexNumberUint64Overflow(t *testing.T) {
	tok := lexOneNumber(t, "99999999999999999999999999")
	if tok.Type != TokenError || tok.Error.Code != ErrNumberOverflow {
		t.Fatalf("got %+v, want ErrNumberOverflow", tok)
	}
}

func TestLexNumberNegativeOverflow(t *testing.T) {
	// Magnitude 2^63+1 cannot be negated into an int64.
	tok := lexOneNumber(t, "-9223372036854775809")
	if tok.Type != TokenError || tok.Error.Code != ErrNumberOverflow {
		t.Fatalf("got %+v, want ErrNumberOverflow", tok)
	}
}

func TestLexNumberFloat(t *testing.T) {
	tok := lexOneNumber(t, "3.25")
	if tok.Type != TokenNumber || tok.Number.Kind != NumberFloat {
		t.Fatalf("got %+v", tok)
	}
	if math.Abs(tok.Number.F64-3.25) > 1e-12 {
		t.Errorf("F64 = %v, want 3.25", tok.Number.F64)
	}
}

func TestLexNumberExponent(t *testing.T) {
	tok := lexOneNumber(t, "1e3")
	if tok.Type != TokenNumber || tok.Number.Kind != NumberFloat {
		t.Fatalf("got %+v", tok)
	}
	if math.Abs(tok.Number.F64-1000) > 1e-9 {
		t.Errorf("F64 = %v, want 1000", tok.Number.F64)
	}
}

func TestLexNumberNegativeExponent(t *testing.T) {
	tok := lexOneNumber(t, "1.5e-2")
	if tok.Type != TokenNumber || tok.Number.Kind != NumberFloat {
		t.Fatalf("got %+v", tok)
	}
	if math.Abs(tok.Number.F64-0.015) > 1e-12 {
		t.Errorf("F64 = %v, want 0.015", tok.Number.F64)
	}
}

func TestLexNumberGrammarErrors(t *testing.T) {
	tests := []string{
		"01", "-01", "00", "-00", "1.", "0.", "1e", "1e+", "1e--1", "0.e1", "--5", "-",
	}
	for _, src := range tests {
		tok := lexOneNumber(t, src)
		if tok.Type != TokenError {
			t.Errorf("src %q: got %v, want error", src, tok.Type)
			continue
		}
		if tok.Error.Code != ErrInvalidNumber && tok.Error.Code != ErrUnexpectedChar {
			t.Errorf("src %q: error code = %v, want InvalidNumber or UnexpectedChar", src, tok.Error.Code)
		}
	}
}

func TestLexNumberExponentClamped(t *testing.T) {
	// An exponent far beyond the clamp should produce +Inf, not panic or
	// silently wrap.
	tok := lexOneNumber(t, "1e999")
	if tok.Type != TokenNumber || !math.IsInf(tok.Number.F64, 1) {
		t.Fatalf("got %+v, want +Inf", tok)
	}
}
