// Package syntax implements the AAC raw_data_block syntax tree: the
// single description of every syntactic element (ics_info,
// section_data, scale_factor_data, spectral_data, SCE/CPE/CCE/DSE/PCE/
// FIL, and the ASC/ADTS header productions) driven through Op in one
// of three modes — read, write, dump.
//
// Ported from: aac_syntax.h / aac_syntax_ops.h (Parrot-Developers/libaac).
package syntax

import (
	"errors"

	"github.com/llehouerou/go-aac/internal/bitcursor"
	"github.com/llehouerou/go-aac/internal/dumpsink"
)

// Kind selects which of the three directions a production runs in.
//
// Ported from: AAC_SYNTAX_OP_KIND_READ/WRITE/DUMP in
// original_source/src/aac_syntax_ops.h
type Kind uint8

const (
	Read Kind = iota
	Write
	Dump
)

// Errors shared by every production in this package.
var (
	ErrInvalidInput      = errors.New("syntax: invalid input")
	ErrUnsupported       = errors.New("syntax: recognized but unimplemented")
	ErrCapacityExceeded  = errors.New("syntax: capacity exceeded")
	ErrBadSyncword       = errors.New("syntax: ADTS syncword mismatch")
	ErrBitstreamError    = errors.New("syntax: bitstream error")
	ErrWrongFramingState = errors.New("syntax: field read in wrong framing variant")
)

// unsignedField is the set of integer field types productions bind
// bit-width reads/writes to.
type unsignedField interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint | ~bool
}

type signedField interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// Op is the single abstraction a production is written against. Only
// one of cursor/sink is non-nil, matching Kind.
//
// Ported from: the AAC_BITS/AAC_FIELD/AAC_BEGIN_* macro family in
// original_source/src/aac_syntax_ops.h, expressed as methods instead
// of textual-include macros, and threaded explicitly through
// productions instead of via a bitstream-embedded back-pointer
// (original_source/include/aac/aac_bitstream.h's bs->priv).
type Op struct {
	Kind   Kind
	Cursor *bitcursor.Cursor
	Sink   dumpsink.Sink
	path   []string
}

// NewReadOp returns an Op that consumes bits from c and stores them
// into bound fields.
func NewReadOp(c *bitcursor.Cursor) *Op { return &Op{Kind: Read, Cursor: c} }

// NewWriteOp returns an Op that reads bound field values and emits
// bits to c.
func NewWriteOp(c *bitcursor.Cursor) *Op { return &Op{Kind: Write, Cursor: c} }

// NewDumpOp returns an Op that emits a field-event stream to sink
// describing already-populated field values, consuming no bits.
func NewDumpOp(sink dumpsink.Sink) *Op { return &Op{Kind: Dump, Sink: sink} }

func (op *Op) qualify(name string) string {
	if len(op.path) == 0 {
		return name
	}
	return op.path[len(op.path)-1] + "." + name
}

// U binds an n-bit unsigned field. Read mode stores the consumed value
// into *v; write mode emits the low n bits of *v; dump mode emits a
// field event carrying *v, consuming nothing.
func U[T unsignedField](op *Op, name string, n uint, v *T) error {
	switch op.Kind {
	case Read:
		val, err := op.Cursor.ReadBits(n)
		if err != nil {
			return err
		}
		*v = T(val)
		return nil
	case Write:
		return op.Cursor.WriteBits(uint64(*v), n)
	case Dump:
		op.Sink.Field(op.qualify(name), int64(*v))
		return nil
	}
	return nil
}

// I binds an n-bit two's-complement signed field.
func I[T signedField](op *Op, name string, n uint, v *T) error {
	switch op.Kind {
	case Read:
		val, err := op.Cursor.ReadBitsSigned(n)
		if err != nil {
			return err
		}
		*v = T(val)
		return nil
	case Write:
		return op.Cursor.WriteBitsSigned(int64(*v), n)
	case Dump:
		op.Sink.Field(op.qualify(name), int64(*v))
		return nil
	}
	return nil
}

// Bool binds a single-bit boolean field.
func Bool(op *Op, name string, v *bool) error {
	var tmp uint8
	if *v {
		tmp = 1
	}
	if err := U(op, name, 1, &tmp); err != nil {
		return err
	}
	if op.Kind != Write {
		*v = tmp != 0
	}
	return nil
}

// ByteAlign skips to the next byte boundary (byte_alignment()); a
// no-op in dump mode, since dump never tracks bit position.
func (op *Op) ByteAlign() error {
	switch op.Kind {
	case Read:
		return op.Cursor.ReadTrailingBits()
	case Write:
		return op.Cursor.WriteTrailingBits()
	default:
		return nil
	}
}

// Note emits a dump-only annotation field (a derived value with no
// corresponding bits, such as a computed section start index); it is
// a no-op outside dump mode.
func (op *Op) Note(name string, value int64) {
	if op.Kind == Dump {
		op.Sink.Field(op.qualify(name), value)
	}
}

// SkipBits consumes and discards n bits in read mode and writes n zero
// bits in write mode, without emitting a dump field — used for bit-exact
// padding/skip regions that carry no semantic name. A no-op in dump mode.
func (op *Op) SkipBits(n uint) error {
	switch op.Kind {
	case Read:
		_, err := op.Cursor.ReadBits(n)
		return err
	case Write:
		return op.Cursor.WriteBits(0, n)
	default:
		return nil
	}
}

// BeginStruct/EndStruct/BeginArray/EndArray/BeginArrayItem/EndArrayItem
// are no-ops outside dump mode, matching AAC_BEGIN_STRUCT et al. being
// empty macros for the read/write instantiations.
func (op *Op) BeginStruct(name string) {
	qualified := op.qualify(name)
	op.path = append(op.path, name)
	if op.Kind == Dump {
		op.Sink.BeginStruct(qualified)
	}
}

func (op *Op) EndStruct(name string) {
	if len(op.path) > 0 {
		op.path = op.path[:len(op.path)-1]
	}
	if op.Kind == Dump {
		op.Sink.EndStruct(op.qualify(name))
	}
}

func (op *Op) BeginArray(name string) {
	if op.Kind == Dump {
		op.Sink.BeginArray(op.qualify(name))
	}
}

func (op *Op) EndArray(name string) {
	if op.Kind == Dump {
		op.Sink.EndArray(op.qualify(name))
	}
}

func (op *Op) BeginArrayItem() {
	if op.Kind == Dump {
		op.Sink.BeginArrayItem()
	}
}

func (op *Op) EndArrayItem() {
	if op.Kind == Dump {
		op.Sink.EndArrayItem()
	}
}
