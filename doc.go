// Package aac provides a pure Go AAC (Advanced Audio Coding) bitstream
// toolkit: parsing, writing, and structured dumping of the ADTS/ASC/
// raw_data_block syntax defined in ISO/IEC 14496-3, plus conversion
// between that wire syntax and a plain AudioFormat description.
//
// This package does not decode AAC to PCM. Its SyntaxEngine
// (internal/syntax) reads a bitstream into Go structs, writes Go
// structs back to a conformant bitstream, or walks either direction
// while emitting structured dump events — the same description drives
// all three, parameterized over an Op's mode.
//
// # Basic Usage
//
// To drive a stream of ADTS frames:
//
//	ctx := streamctx.NewContext()
//	r := streamctx.NewReader(ctx, streamctx.ReaderFlags{FrameData: true})
//	r.OnBegin = func(c *streamctx.Context, buf []byte, n int, h *streamctx.FrameHeader, _ any) {
//	    // inspect h.ADTS.Header
//	}
//	consumed, err := r.Parse(buf)
//
// # Components
//
//   - internal/bitcursor: MSB-first bit-level cursor, read and write.
//   - internal/huffman: canonical-Huffman codebooks for scale factors
//     and spectral data.
//   - internal/syntax: the SyntaxEngine — every ISO 14496-3 production
//     as a read/write/dump-parameterized description.
//   - internal/streamctx: the ReaderFSM driving ADTS/raw framing over
//     successive input buffers, plus one-shot ParseASC/ParseADTSHeader.
//   - internal/dumpsink: the JSON event sink for dump mode.
//   - FormatConversion (format.go): AudioFormat ↔ ASC/ADTS.
//
// # Reference
//
// Ported from FAAD2 (https://github.com/knik0/faad2) and
// Parrot-Developers/libaac; this package narrows FAAD2's scope to
// bitstream syntax, dropping PCM reconstruction (filterbank, MDCT,
// spectral reconstruction) entirely.
package aac
