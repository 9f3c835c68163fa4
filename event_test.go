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

import "testing"

func newTestIterator(t *testing.T, src string) (*EventIterator, *Buffer) {
	t.Helper()
	buf := NewBufferFromString(src)
	it := NewEventIteratorFromBuffer(buf)
	t.Cleanup(func() { buf.Release() })
	return it, buf
}

func collectKinds(it *EventIterator) []EventKind {
	var kinds []EventKind
	for {
		ev := it.Next()
		kinds = append(kinds, ev.Kind)
		if ev.Kind == EventEnd || ev.Kind == EventError {
			return kinds
		}
	}
}

func TestEventIteratorScalarValue(t *testing.T) {
	it, _ := newTestIterator(t, "42")
	kinds := collectKinds(it)
	want := []EventKind{EventNumber, EventEnd}
	if !eqKinds(kinds, want) {
		t.Fatalf("got %v, want %v", kinds, want)
	}
}

func TestEventIteratorEmptyObject(t *testing.T) {
	it, _ := newTestIterator(t, "{}")
	kinds := collectKinds(it)
	want := []EventKind{EventStartObject, EventEndObject, EventEnd}
	if !eqKinds(kinds, want) {
		t.Fatalf("got %v, want %v", kinds, want)
	}
}

func TestEventIteratorEmptyArray(t *testing.T) {
	it, _ := newTestIterator(t, "[]")
	kinds := collectKinds(it)
	want := []EventKind{EventStartArray, EventEndArray, EventEnd}
	if !eqKinds(kinds, want) {
		t.Fatalf("got %v, want %v", kinds, want)
	}
}

func TestEventIteratorObjectWithKeys(t *testing.T) {
	it, buf := newTestIterator(t, `{"a":1,"b":"x"}`)

	ev := it.Next()
	if ev.Kind != EventStartObject {
		t.Fatalf("got %v, want StartObject", ev.Kind)
	}

	ev = it.Next()
	if ev.Kind != EventKey || string(ev.String.Bytes(buf)) != "a" {
		t.Fatalf("got %v %q, want Key \"a\"", ev.Kind, ev.String.Bytes(buf))
	}

	ev = it.Next()
	if ev.Kind != EventNumber || ev.Number.U64 != 1 {
		t.Fatalf("got %+v, want Number 1", ev)
	}

	ev = it.Next()
	if ev.Kind != EventKey || string(ev.String.Bytes(buf)) != "b" {
		t.Fatalf("got %v %q, want Key \"b\"", ev.Kind, ev.String.Bytes(buf))
	}

	ev = it.Next()
	if ev.Kind != EventString || string(ev.String.Bytes(buf)) != "x" {
		t.Fatalf("got %v %q, want String \"x\"", ev.Kind, ev.String.Bytes(buf))
	}

	ev = it.Next()
	if ev.Kind != EventEndObject {
		t.Fatalf("got %v, want EndObject", ev.Kind)
	}

	ev = it.Next()
	if ev.Kind != EventEnd {
		t.Fatalf("got %v, want End", ev.Kind)
	}
}

func TestEventIteratorNestedArrayInObject(t *testing.T) {
	it, _ := newTestIterator(t, `{"items":[1,2,[true,false]],"n":null}`)
	kinds := collectKinds(it)
	want := []EventKind{
		EventStartObject,
		EventKey, EventStartArray,
		EventNumber, EventNumber,
		EventStartArray, EventBool, EventBool, EventEndArray,
		EventEndArray,
		EventKey, EventNull,
		EventEndObject,
		EventEnd,
	}
	if !eqKinds(kinds, want) {
		t.Fatalf("got %v, want %v", kinds, want)
	}
}

func TestEventIteratorArrayOfObjects(t *testing.T) {
	it, _ := newTestIterator(t, `[{"a":1},{"b":2}]`)
	kinds := collectKinds(it)
	want := []EventKind{
		EventStartArray,
		EventStartObject, EventKey, EventNumber, EventEndObject,
		EventStartObject, EventKey, EventNumber, EventEndObject,
		EventEndArray,
		EventEnd,
	}
	if !eqKinds(kinds, want) {
		t.Fatalf("got %v, want %v", kinds, want)
	}
}

func TestEventIteratorStickyErrorThenEnd(t *testing.T) {
	it, _ := newTestIterator(t, `{"a": @}`)
	var kinds []EventKind
	for i := 0; i < 6; i++ {
		kinds = append(kinds, it.Next().Kind)
	}

	// Once an Error is hit, every later call must return End.
	foundError := false
	for _, k := range kinds {
		if foundError && k != EventEnd {
			t.Fatalf("kinds after first error must be End, got %v in %v", k, kinds)
		}
		if k == EventError {
			foundError = true
		}
	}
	if !foundError {
		t.Fatalf("expected an Error event, got %v", kinds)
	}
}

func TestEventIteratorDepthLimit(t *testing.T) {
	src := ""
	for i := 0; i < 10; i++ {
		src += "["
	}
	for i := 0; i < 10; i++ {
		src += "]"
	}
	it, _ := newTestIterator(t, src)
	it.SetMaxDepth(3)

	var sawError bool
	for i := 0; i < 20; i++ {
		ev := it.Next()
		if ev.Kind == EventError {
			if ev.Error.Code != ErrDepthLimit {
				t.Fatalf("error code = %v, want ErrDepthLimit", ev.Error.Code)
			}
			sawError = true
			break
		}
	}
	if !sawError {
		t.Fatal("expected a depth-limit error")
	}
}

func eqKinds(a, b []EventKind) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
