// Package dumpsink defines the event-stream interface the syntax
// engine emits in dump mode, and a JSON-rendering implementation.
//
// Ported from: struct aac_dump / aac_dump_json_* in
// original_source/src/aac_dump.c (Parrot-Developers/libaac).
package dumpsink

// Sink receives the structural events emitted by the syntax engine
// while walking an already-populated syntax tree in dump mode.
type Sink interface {
	BeginStruct(name string)
	EndStruct(name string)
	BeginArray(name string)
	EndArray(name string)
	BeginArrayItem()
	EndArrayItem()
	Field(name string, value int64)
}
