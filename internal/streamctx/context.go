// Package streamctx drives the ReaderFSM over a byte stream that
// carries either bare raw_data_block()s or ADTS-framed ones,
// dispatching frame_begin/frame_end callbacks synchronously as each
// frame is recognized.
//
// Ported from: aac_reader.c / aac_context.c (Parrot-Developers/libaac)
package streamctx

import (
	"github.com/llehouerou/go-aac/internal/syntax"
)

// Framing is the ReaderFSM state: what shape of stream a Context has
// committed to, if any.
type Framing int

const (
	// Unknown is the initial state: the Context has not yet seen
	// enough input to recognize ADTS sync, nor been told the stream is
	// raw via SetRaw.
	Unknown Framing = iota
	// Raw means the stream carries bare raw_data_block()s back to
	// back, with no ADTS framing.
	Raw
	// ADTS means the stream carries ADTS-framed raw_data_block()s.
	ADTS
	// Stopped means Stop was called, or a terminal error occurred; no
	// further callbacks fire.
	Stopped
)

// FrameHeader is the header information available to frame_begin for
// an ADTS frame. It is nil for Raw framing, which carries no header.
type FrameHeader struct {
	ADTS *syntax.ADTSFrameHeader
}

// Context holds ReaderFSM state across repeated Parse calls: the
// recognized framing, the last successfully parsed header, and the
// block config (sample rate index / frame length / object type)
// needed to interpret raw_data_block() bodies.
//
// A Context is owned exclusively by one caller; concurrent use on the
// same instance is undefined, matching every other type in this
// package.
type Context struct {
	framing    Framing
	lastHeader *FrameHeader
	blockCfg   syntax.RawDataBlockConfig
}

// NewContext returns a Context in the Unknown framing state.
func NewContext() *Context {
	return &Context{}
}

// Framing reports the ReaderFSM's current state.
func (c *Context) Framing() Framing { return c.framing }

// LastHeader returns the most recently, fully and validly parsed
// frame header, or nil if none has been parsed yet. It is retained
// across a body-parse failure so callers can inspect what was last
// known-good.
func (c *Context) LastHeader() *FrameHeader { return c.lastHeader }

// SetRaw forces the Context into Raw framing ahead of the first
// Parse call, for callers who already know their input carries bare
// raw_data_block()s with no ADTS wrapper. It fails ErrAmbiguousFraming
// once framing has already been recognized as ADTS.
func (c *Context) SetRaw(cfg syntax.RawDataBlockConfig) error {
	if c.framing == ADTS {
		return ErrAmbiguousFraming
	}
	c.framing = Raw
	c.blockCfg = cfg
	return nil
}

// Stop transitions the Context to Stopped. The next Parse call
// returns ErrStopped immediately with no further callbacks; this is
// idempotent.
func (c *Context) Stop() {
	c.framing = Stopped
}
