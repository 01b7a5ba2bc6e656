// internal/streamctx/reader.go
package streamctx

import (
	"github.com/llehouerou/go-aac/internal/bitcursor"
	"github.com/llehouerou/go-aac/internal/syntax"
)

// ReaderFlags selects which parts of a frame body Parse expands.
type ReaderFlags struct {
	// FrameData, when set, parses the full raw_data_block() contents
	// for each frame. When unset, the reader consumes the frame
	// payload opaquely and advances to the next frame boundary without
	// decoding it.
	FrameData bool
}

// FrameBeginFunc is invoked once a frame header has been fully and
// validly parsed, before its body is consumed.
type FrameBeginFunc func(ctx *Context, buf []byte, length int, header *FrameHeader, userdata any)

// FrameEndFunc is invoked after a frame's body has been consumed
// (opaquely or via a fully parsed raw_data_block), strictly after the
// matching FrameBeginFunc call for the same frame.
type FrameEndFunc func(ctx *Context, buf []byte, length int, header *FrameHeader, userdata any)

// Reader drives the ReaderFSM over successive Parse calls, invoking
// FrameBegin/FrameEnd synchronously on the caller's goroutine.
type Reader struct {
	Ctx      *Context
	Flags    ReaderFlags
	OnBegin  FrameBeginFunc
	OnEnd    FrameEndFunc
	UserData any
}

// NewReader returns a Reader bound to ctx. OnBegin/OnEnd may be left
// nil if the caller only cares about the side effect of driving
// ctx forward (e.g. counting frames via the returned consumed count).
func NewReader(ctx *Context, flags ReaderFlags) *Reader {
	return &Reader{Ctx: ctx, Flags: flags}
}

// Parse drives the ReaderFSM over buf, dispatching as many complete
// frames as buf holds. It returns the number of bytes fully consumed
// and, when buf ends mid-frame, ErrNeedMoreData — the caller should
// retain buf[consumed:] and append more data before calling Parse
// again. A non-NeedMoreData error is terminal for the stream; the
// Context transitions to Stopped and retains the last valid header.
//
// Ported from: aac_reader_parse_buffer loop in original_source/src/aac_reader.c
func (r *Reader) Parse(buf []byte) (consumed int, err error) {
	ctx := r.Ctx
	off := 0

	for {
		if ctx.framing == Stopped {
			return off, ErrStopped
		}

		remaining := buf[off:]

		if ctx.framing == Unknown {
			if len(remaining) < 2 {
				return off, ErrNeedMoreData
			}
			if remaining[0] == 0xFF && remaining[1]&0xF0 == 0xF0 {
				ctx.framing = ADTS
			} else {
				ctx.framing = Stopped
				return off, syntax.ErrInvalidInput
			}
		}

		switch ctx.framing {
		case ADTS:
			n, frameErr := r.parseADTSFrame(remaining)
			if frameErr == ErrNeedMoreData {
				return off, ErrNeedMoreData
			}
			if frameErr != nil {
				ctx.framing = Stopped
				return off, frameErr
			}
			off += n

		case Raw:
			n, frameErr := r.parseRawFrame(remaining)
			if frameErr == ErrNeedMoreData {
				return off, ErrNeedMoreData
			}
			if frameErr != nil {
				ctx.framing = Stopped
				return off, frameErr
			}
			off += n

		default:
			return off, ErrStopped
		}

		if off >= len(buf) {
			return off, nil
		}
	}
}

// parseADTSFrame parses one ADTS-framed raw_data_block() out of buf
// (which begins exactly at the frame's syncword) and dispatches
// frame_begin/frame_end around it. Returns the number of bytes the
// frame occupied.
func (r *Reader) parseADTSFrame(buf []byte) (int, error) {
	c := bitcursor.NewReader(buf)
	op := syntax.NewReadOp(c)

	fh, err := syntax.ParseADTSFrameHeader(op)
	if err != nil {
		return 0, ErrNeedMoreData
	}

	total := int(fh.Header.AACFrameLength)
	if total > len(buf) {
		return 0, ErrNeedMoreData
	}

	header := &FrameHeader{ADTS: fh}
	r.Ctx.lastHeader = header
	r.Ctx.blockCfg = syntax.RawDataBlockConfig{
		SFIndex:              fh.Header.SFIndex,
		ChannelConfiguration: fh.Header.ChannelConfiguration,
		ObjectType:           fh.Header.Profile + 1,
		FrameLength:          1024,
	}

	if r.OnBegin != nil {
		r.OnBegin(r.Ctx, buf, total, header, r.UserData)
	}

	if r.Flags.FrameData {
		bodyOff := fh.Header.HeaderSize()
		bodyCursor := bitcursor.NewReader(buf[bodyOff:total])
		bodyOp := syntax.NewReadOp(bodyCursor)
		if _, err := syntax.ParseRawDataBlock(bodyOp, &r.Ctx.blockCfg, nil); err != nil {
			return 0, err
		}
	}

	if r.OnEnd != nil {
		r.OnEnd(r.Ctx, buf, total, header, r.UserData)
	}

	return total, nil
}

// parseRawFrame parses one bare raw_data_block() out of buf, with no
// ADTS header to delimit it; the whole of buf is handed to
// ParseRawDataBlock and frame length is whatever it consumed.
func (r *Reader) parseRawFrame(buf []byte) (int, error) {
	c := bitcursor.NewReader(buf)
	op := syntax.NewReadOp(c)

	if _, err := syntax.ParseRawDataBlock(op, &r.Ctx.blockCfg, nil); err != nil {
		return 0, ErrNeedMoreData
	}

	n := c.ConsumedBits() / 8
	header := &FrameHeader{}
	r.Ctx.lastHeader = header

	if r.OnBegin != nil {
		r.OnBegin(r.Ctx, buf[:n], n, header, r.UserData)
	}
	if r.OnEnd != nil {
		r.OnEnd(r.Ctx, buf[:n], n, header, r.UserData)
	}

	return n, nil
}
