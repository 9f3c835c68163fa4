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

import "fmt"

// ErrorCode is a banded error taxonomy: syntax errors fall in 100-199,
// string errors in 200-299, number errors in 300-399, resource errors in
// 400-499, I/O errors in 500-599, and internal/corruption errors at 600.
type ErrorCode int

// ErrNone is the zero value, meaning no error occurred.
const ErrNone ErrorCode = 0

// Syntax errors (100-199).
const (
	ErrUnexpectedChar ErrorCode = 100
	ErrUnexpectedEOF  ErrorCode = 101
	ErrInvalidValue   ErrorCode = 102
	ErrTrailingChars  ErrorCode = 103
)

// String errors (200-299).
const (
	ErrInvalidEscape      ErrorCode = 200
	ErrInvalidUTF8        ErrorCode = 201
	ErrUnterminatedString ErrorCode = 202
)

// Number errors (300-399).
const (
	ErrInvalidNumber  ErrorCode = 300
	ErrNumberOverflow ErrorCode = 301
)

// Resource errors (400-499).
const (
	ErrDepthLimit  ErrorCode = 400
	ErrMemoryLimit ErrorCode = 401
	ErrOutOfMemory ErrorCode = 402
)

// I/O errors (500-599).
const (
	ErrIO           ErrorCode = 500
	ErrFileNotFound ErrorCode = 501
)

// ErrInvalidHandle reports a corrupted or already-destroyed handle (a
// magic-tag check failure). Band 600.
const ErrInvalidHandle ErrorCode = 600

// String returns a stable human label for code, including for unknown
// codes, matching serdec_error_string's total-function contract.
func (c ErrorCode) String() string {
	switch c {
	case ErrNone:
		return "OK"
	case ErrUnexpectedChar:
		return "Unexpected Character"
	case ErrUnexpectedEOF:
		return "Unexpected EOF"
	case ErrInvalidValue:
		return "Invalid Value"
	case ErrTrailingChars:
		return "Trailing Characters"
	case ErrInvalidEscape:
		return "Invalid Escape"
	case ErrInvalidUTF8:
		return "Invalid UTF-8"
	case ErrUnterminatedString:
		return "Unterminated String"
	case ErrInvalidNumber:
		return "Invalid Number"
	case ErrNumberOverflow:
		return "Number Overflow"
	case ErrDepthLimit:
		return "Depth Limit"
	case ErrMemoryLimit:
		return "Memory Limit"
	case ErrOutOfMemory:
		return "Out of Memory"
	case ErrIO:
		return "IO"
	case ErrFileNotFound:
		return "File Not Found"
	case ErrInvalidHandle:
		return "Invalid Handle"
	default:
		return "Unknown Error"
	}
}

// ErrorInfo is a structured error report: code plus source position and
// optional context, owned by the component that produced it. Once set,
// its fields never change for the lifetime of the producing component
// (lexer/event iterator errors are sticky, see Lexer.Next and
// EventIterator.Next).
type ErrorInfo struct {
	Code    ErrorCode
	Offset  uint64
	Line    uint64
	Column  uint64
	Path    string
	Message string
	Context string
}

// Error implements the error interface so ErrorInfo composes with
// errors.Is/errors.As and %w wrapping.
func (e *ErrorInfo) Error() string {
	if e == nil {
		return ErrNone.String()
	}
	return fmt.Sprintf("%s at line %d, column %d (offset %d)", e.Code, e.Line, e.Column, e.Offset)
}

// String renders the same multi-line report as Format, as a string.
func (e *ErrorInfo) String() string {
	var b []byte
	b = e.appendTo(b)
	return string(b)
}

// Format writes a human-readable report to w:
//
//	Error: <label>
//	At: line L, column C (offset O)
//	Path: <path>        (if set)
//	Context: <context>  (if set)
//	Message: <message>  (if set)
func (e *ErrorInfo) Format(w interface{ Write([]byte) (int, error) }) error {
	_, err := w.Write(e.appendTo(nil))
	return err
}

func (e *ErrorInfo) appendTo(b []byte) []byte {
	if e == nil {
		return append(b, ErrNone.String()...)
	}
	b = append(b, "Error: "...)
	b = append(b, e.Code.String()...)
	b = append(b, '\n')
	b = append(b, fmt.Sprintf("At: line %d, column %d (offset %d)\n", e.Line, e.Column, e.Offset)...)
	if e.Path != "" {
		b = append(b, "Path: "...)
		b = append(b, e.Path...)
		b = append(b, '\n')
	}
	if e.Context != "" {
		b = append(b, "Context: "...)
		b = append(b, e.Context...)
		b = append(b, '\n')
	}
	if e.Message != "" {
		b = append(b, "Message: "...)
		b = append(b, e.Message...)
		b = append(b, '\n')
	}
	return b
}
