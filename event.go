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

// EventKind discriminates an Event's kind.
type EventKind int

const (
	EventStartObject EventKind = iota
	EventEndObject
	EventStartArray
	EventEndArray
	EventKey
	EventString
	EventNumber
	EventBool
	EventNull
	EventError
	EventEnd
)

// StringSlice is a borrowed span into the Buffer owning the document
// being iterated; the Buffer must outlive it.
type StringSlice struct {
	Start      int
	Length     int
	HasEscapes bool
}

// Bytes returns the slice's raw (still-escaped, if HasEscapes) bytes
// from buf.
func (s StringSlice) Bytes(buf *Buffer) []byte {
	data := buf.Data()
	return data[s.Start : s.Start+s.Length]
}

// Event is a single item produced by the EventIterator.
type Event struct {
	Kind   EventKind
	Offset int

	String StringSlice // Key, String
	Number NumberValue // Number
	Bool   bool        // Bool
	Error  *ErrorInfo  // Error
}

// defaultMaxDepth is the nesting-depth bound NewEventIterator applies;
// SetMaxDepth overrides it.
const defaultMaxDepth = 128

type frameKind int

const (
	frameObject frameKind = iota
	frameArray
)

// objState tracks where we are inside an object's key/value/comma
// grammar; arrays use only stateKeyOrClose (value or close),
// stateValue and stateCommaOrClose.
type objState int

const (
	stateKeyOrClose objState = iota
	stateColon
	stateValue
	stateCommaOrClose
)

type frame struct {
	kind  frameKind
	state objState
}

// EventIterator is a thin, single-threaded, synchronous façade over a
// Lexer that emits typed JSON events, matching start/end events for
// every object and array it opens. It never blocks.
type EventIterator struct {
	lex      *Lexer
	stack    []frame
	started  bool
	done     bool
	errored  bool
	err      *ErrorInfo
	maxDepth int
}

// NewEventIterator wraps lex. Returns nil if lex is nil.
func NewEventIterator(lex *Lexer) *EventIterator {
	if lex == nil {
		return nil
	}
	return &EventIterator{lex: lex, maxDepth: defaultMaxDepth}
}

// NewEventIteratorFromBuffer creates a Lexer over buf and wraps it.
// Returns nil if buf is invalid.
func NewEventIteratorFromBuffer(buf *Buffer) *EventIterator {
	lex := NewLexer(buf)
	if lex == nil {
		return nil
	}
	return NewEventIterator(lex)
}

// SetMaxDepth overrides the default nesting-depth bound (128). Must be
// called before the first call to Next.
func (it *EventIterator) SetMaxDepth(n int) {
	if n > 0 {
		it.maxDepth = n
	}
}

// Reset rewires the iterator onto a fresh buffer via a new Lexer,
// discarding any prior Lexer's Buffer reference, so one EventIterator
// value can be reused across documents instead of allocating a new one
// per parse.
func (it *EventIterator) Reset(buf *Buffer) {
	it.lex.Destroy()
	it.lex = NewLexer(buf)
	it.stack = it.stack[:0]
	it.started = false
	it.done = false
	it.errored = false
	it.err = nil
}

// Error returns the first error encountered, or nil.
func (it *EventIterator) Error() *ErrorInfo {
	return it.err
}

func (it *EventIterator) fail(info *ErrorInfo) Event {
	it.errored = true
	it.err = info
	return Event{Kind: EventError, Error: info}
}

// Next returns the next event. On the lexer's first error it returns a
// single Error event and End forever after (sticky, cancellation-safe).
func (it *EventIterator) Next() Event {
	if it.errored || it.done {
		return Event{Kind: EventEnd}
	}

	if !it.started {
		it.started = true
		return it.beginValue()
	}

	// Resume based on the innermost open frame.
	for {
		if len(it.stack) == 0 {
			it.done = true
			return Event{Kind: EventEnd}
		}
		top := &it.stack[len(it.stack)-1]

		switch top.kind {
		case frameObject:
			switch top.state {
			case stateKeyOrClose:
				tok := it.lex.Next()
				switch tok.Type {
				case TokenCloseObj:
					it.stack = it.stack[:len(it.stack)-1]
					return it.afterValue(Event{Kind: EventEndObject, Offset: tok.Offset})
				case TokenString:
					top.state = stateColon
					return Event{
						Kind:   EventKey,
						Offset: tok.Offset,
						String: StringSlice{Start: tok.Start, Length: tok.Length, HasEscapes: tok.HasEscapes},
					}
				case TokenError:
					return it.fail(tok.Error)
				default:
					return it.failSynthetic(tok, ErrUnexpectedChar)
				}
			case stateColon:
				tok := it.lex.Next()
				if tok.Type == TokenError {
					return it.fail(tok.Error)
				}
				if tok.Type != TokenColon {
					return it.failSynthetic(tok, ErrUnexpectedChar)
				}
				top.state = stateValue
				continue
			case stateValue:
				top.state = stateCommaOrClose
				return it.beginValue()
			case stateCommaOrClose:
				tok := it.lex.Next()
				switch tok.Type {
				case TokenCloseObj:
					it.stack = it.stack[:len(it.stack)-1]
					return it.afterValue(Event{Kind: EventEndObject, Offset: tok.Offset})
				case TokenComma:
					top.state = stateKeyOrClose
					continue
				case TokenError:
					return it.fail(tok.Error)
				default:
					return it.failSynthetic(tok, ErrUnexpectedChar)
				}
			}
		case frameArray:
			switch top.state {
			case stateValue, stateKeyOrClose:
				// stateKeyOrClose doubles as "value or close" for
				// arrays: peek for immediate close, else emit a value.
				peeked := it.lex.Peek()
				if peeked.Type == TokenCloseArr {
					it.lex.Next()
					it.stack = it.stack[:len(it.stack)-1]
					return it.afterValue(Event{Kind: EventEndArray, Offset: peeked.Offset})
				}
				top.state = stateCommaOrClose
				return it.beginValue()
			case stateCommaOrClose:
				tok := it.lex.Next()
				switch tok.Type {
				case TokenCloseArr:
					it.stack = it.stack[:len(it.stack)-1]
					return it.afterValue(Event{Kind: EventEndArray, Offset: tok.Offset})
				case TokenComma:
					top.state = stateValue
					continue
				case TokenError:
					return it.fail(tok.Error)
				default:
					return it.failSynthetic(tok, ErrUnexpectedChar)
				}
			}
		}
	}
}

// afterValue is called right after popping a frame; if the stack is now
// empty, the document's root value is complete and the next Next() call
// must return End.
func (it *EventIterator) afterValue(ev Event) Event {
	return ev
}

// beginValue consumes one value-starting token (which may itself be an
// object/array open) and returns the corresponding event, pushing a new
// frame for objects/arrays.
func (it *EventIterator) beginValue() Event {
	tok := it.lex.Next()
	switch tok.Type {
	case TokenOpenObj:
		if len(it.stack) >= it.maxDepth {
			return it.fail(&ErrorInfo{Code: ErrDepthLimit, Offset: uint64(tok.Offset), Message: "nesting depth exceeded"})
		}
		it.stack = append(it.stack, frame{kind: frameObject, state: stateKeyOrClose})
		return Event{Kind: EventStartObject, Offset: tok.Offset}
	case TokenOpenArr:
		if len(it.stack) >= it.maxDepth {
			return it.fail(&ErrorInfo{Code: ErrDepthLimit, Offset: uint64(tok.Offset), Message: "nesting depth exceeded"})
		}
		it.stack = append(it.stack, frame{kind: frameArray, state: stateKeyOrClose})
		return Event{Kind: EventStartArray, Offset: tok.Offset}
	case TokenString:
		return Event{
			Kind:   EventString,
			Offset: tok.Offset,
			String: StringSlice{Start: tok.Start, Length: tok.Length, HasEscapes: tok.HasEscapes},
		}
	case TokenNumber:
		return Event{Kind: EventNumber, Offset: tok.Offset, Number: tok.Number}
	case TokenTrue:
		return Event{Kind: EventBool, Offset: tok.Offset, Bool: true}
	case TokenFalse:
		return Event{Kind: EventBool, Offset: tok.Offset, Bool: false}
	case TokenNull:
		return Event{Kind: EventNull, Offset: tok.Offset}
	case TokenError:
		return it.fail(tok.Error)
	default:
		return it.failSynthetic(tok, ErrUnexpectedChar)
	}
}

// failSynthetic reports a bracketing-grammar violation: the lexer only
// tokenizes and has no notion of object/array nesting, so violations
// like a bare comma or a string where a colon is expected are only
// visible once the iterator checks the token against the current
// frame's expected grammar.
func (it *EventIterator) failSynthetic(tok Token, code ErrorCode) Event {
	return it.fail(&ErrorInfo{
		Code:    code,
		Offset:  uint64(tok.Offset),
		Message: "unexpected token",
	})
}
