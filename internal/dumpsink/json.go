package dumpsink

import (
	"errors"
	"strings"

	gojson "github.com/goccy/go-json"
)

// MaxStackDepth is the maximum container nesting the JSON sink will
// track before failing; raw_data_block nesting never approaches this
// in practice, so hitting it indicates a runaway production.
//
// Source: jstack[16] in original_source/src/aac_dump.c
const MaxStackDepth = 16

// ErrStackDepthExceeded is returned when BeginStruct/BeginArray would
// push past MaxStackDepth.
var ErrStackDepthExceeded = errors.New("dumpsink: stack depth exceeded")

type frame struct {
	isArray bool
	obj     map[string]any
	arr     []any
}

// JSON is a Sink that assembles a nested map[string]any / []any tree
// and renders it with a JSON-API-compatible marshaler.
//
// Ported from: struct aac_dump in original_source/src/aac_dump.c
type JSON struct {
	stack []*frame
	root  any
	err   error
}

// NewJSON returns an empty JSON dump sink.
func NewJSON() *JSON {
	return &JSON{}
}

// Err returns the first error encountered (typically
// ErrStackDepthExceeded); once set, further calls are no-ops.
func (j *JSON) Err() error { return j.err }

func (j *JSON) push(f *frame) bool {
	if j.err != nil {
		return false
	}
	if len(j.stack) >= MaxStackDepth {
		j.err = ErrStackDepthExceeded
		return false
	}
	j.stack = append(j.stack, f)
	return true
}

func (j *JSON) top() *frame {
	if len(j.stack) == 0 {
		return nil
	}
	return j.stack[len(j.stack)-1]
}

func (j *JSON) attach(name string, value any) {
	parent := j.top()
	if parent == nil {
		j.root = value
		return
	}
	if parent.isArray {
		parent.arr = append(parent.arr, value)
	} else {
		parent.obj[extractKey(name)] = value
	}
}

// BeginStruct pushes a new object container.
func (j *JSON) BeginStruct(name string) {
	j.push(&frame{obj: map[string]any{}})
	_ = name
}

// EndStruct pops the current object container and attaches it to its
// parent under name.
func (j *JSON) EndStruct(name string) {
	if j.err != nil || len(j.stack) == 0 {
		return
	}
	f := j.stack[len(j.stack)-1]
	j.stack = j.stack[:len(j.stack)-1]
	j.attach(name, f.obj)
}

// BeginArray pushes a new array container.
func (j *JSON) BeginArray(name string) {
	j.push(&frame{isArray: true})
	_ = name
}

// EndArray pops the current array container and attaches it to its
// parent under name.
func (j *JSON) EndArray(name string) {
	if j.err != nil || len(j.stack) == 0 {
		return
	}
	f := j.stack[len(j.stack)-1]
	j.stack = j.stack[:len(j.stack)-1]
	j.attach(name, f.arr)
}

// BeginArrayItem pushes a new object container representing one
// element of the enclosing array.
func (j *JSON) BeginArrayItem() {
	j.push(&frame{obj: map[string]any{}})
}

// EndArrayItem pops the item object and appends it to the enclosing
// array.
func (j *JSON) EndArrayItem() {
	if j.err != nil || len(j.stack) == 0 {
		return
	}
	f := j.stack[len(j.stack)-1]
	j.stack = j.stack[:len(j.stack)-1]
	parent := j.top()
	if parent != nil && parent.isArray {
		parent.arr = append(parent.arr, f.obj)
	} else {
		j.root = f.obj
	}
}

// Field attaches a scalar leaf value under the key extracted from
// name.
func (j *JSON) Field(name string, value int64) {
	j.attach(name, value)
}

// extractKey returns the leaf field name from a dotted or arrow path,
// stripping leading spaces and any trailing "[...]" index suffix.
//
// Ported from: extract_key() in original_source/src/aac_dump.c
func extractKey(field string) string {
	key := field
	if i := strings.LastIndexByte(key, '.'); i >= 0 {
		key = key[i+1:]
	}
	if i := strings.LastIndex(key, ">"); i >= 0 {
		key = key[i+1:]
	}
	key = strings.TrimLeft(key, " ")
	if i := strings.IndexByte(key, '['); i >= 0 {
		key = key[:i]
	}
	return key
}

// JSONString renders the accumulated tree as a JSON document.
func (j *JSON) JSONString() ([]byte, error) {
	if j.err != nil {
		return nil, j.err
	}
	return gojson.Marshal(j.root)
}

// Object returns the root value of the accumulated tree (a
// map[string]any for any struct-rooted dump).
func (j *JSON) Object() any { return j.root }

// Clear resets the sink to its initial empty state.
func (j *JSON) Clear() {
	j.stack = nil
	j.root = nil
	j.err = nil
}
