// Package huffman implements the AAC spectral and scalefactor Huffman
// codebooks: prefix-match lookup, radix dequantization, and
// escape-coded magnitude decoding.
//
// Ported from: find_offset_in_bc(), get_wxyz(), get_escape() in
// original_source/src/aac_syntax.h (Parrot-Developers/libaac), and
// ~/dev/faad2/libfaad/huffman.c's codebook/dequantization split.
package huffman

import (
	"errors"

	"github.com/llehouerou/go-aac/internal/bitcursor"
)

// ErrCodeNotFound is returned when no entry in a codebook matches the
// bits consumed so far, up to the codebook's maximum codeword length.
var ErrCodeNotFound = errors.New("huffman: no matching codeword")

// MaxQuantizedValue is the largest representable dequantized magnitude
// before an escape-coded codebook 11 overflow is reported.
//
// Source: MAX_QUANTIZED_VALUE in original_source/src/aac_syntax.h
const MaxQuantizedValue = 8191

// EscHCB is the codebook id that carries escape-coded magnitudes.
const EscHCB = 11

// escFlag is the per-component magnitude that signals "read an escape".
const escFlag = 16

// Entry is one (codeword, length, index) triple of a codebook.
type Entry struct {
	Codeword uint32
	Length   uint8
	Index    uint16
}

// Codebook is a spectral Huffman codebook: entries plus the dimension
// (2 or 4 components per codeword) and dequantization parameters
// needed to turn a matched index back into signed component values.
type Codebook struct {
	ID        uint8
	Dimension uint8
	LAV       uint16 // largest absolute value a raw (unsigned) component can take
	Signed    bool
	MaxLen    uint8
	Entries   []Entry
}

// ScaleFactorCodebook is the single 121-entry codebook used for
// scalefactor and intensity/noise deltas. Decoded values range over
// [-60, 60].
type ScaleFactorCodebook struct {
	MaxLen  uint8
	Entries []Entry
}

func maxLength(entries []Entry) uint8 {
	var m uint8
	for _, e := range entries {
		if e.Length > m {
			m = e.Length
		}
	}
	return m
}

// buildCanonical assigns canonical Huffman codewords to a slice of
// entries whose Length fields are already populated in non-decreasing
// order, per the standard canonical-code construction: the first
// codeword of a given length is one more than the last codeword of the
// previous (shorter) length, shifted left by the length difference.
func buildCanonical(entries []Entry) {
	var code uint32
	var prevLen uint8
	for i := range entries {
		l := entries[i].Length
		if i == 0 {
			code = 0
		} else {
			code = (code + 1) << (l - prevLen)
		}
		entries[i].Codeword = code
		prevLen = l
	}
}

// decode performs the bit-at-a-time prefix match described by the
// codebook: read one more bit, compare the bits accumulated so far
// against every entry of that exact length, stop at MaxLen.
//
// Ported from: find_offset_in_bc() in original_source/src/aac_syntax.h
func decode(c *bitcursor.Cursor, entries []Entry, maxLen uint8) (uint16, error) {
	var code uint32
	for length := uint8(1); length <= maxLen; length++ {
		bit, err := c.ReadBits(1)
		if err != nil {
			return 0, err
		}
		code = (code << 1) | uint32(bit)
		for _, e := range entries {
			if e.Length == length && e.Codeword == code {
				return e.Index, nil
			}
		}
	}
	return 0, ErrCodeNotFound
}

// Decode matches the next Huffman codeword in c against cb and returns
// its table index.
func (cb *Codebook) Decode(c *bitcursor.Cursor) (uint16, error) {
	return decode(c, cb.Entries, cb.MaxLen)
}

// Decode matches the next scalefactor/intensity/noise delta codeword
// and returns it adjusted to a signed delta in [-60, 60].
//
// Ported from: huffman_scale_factor() in ~/dev/faad2/libfaad/huffman.c
func (cb *ScaleFactorCodebook) Decode(c *bitcursor.Cursor) (int8, error) {
	idx, err := decode(c, cb.Entries, cb.MaxLen)
	if err != nil {
		return 0, err
	}
	return int8(idx) - 60, nil
}

// mod returns the dequantization radix for a codebook: lav+1 for
// unsigned codebooks, 2*lav+1 for signed ones.
func (cb *Codebook) mod() uint16 {
	if cb.Signed {
		return uint16(2*cb.LAV + 1)
	}
	return uint16(cb.LAV + 1)
}

func (cb *Codebook) offset() int16 {
	if cb.Signed {
		return int16(cb.LAV)
	}
	return 0
}

// Dequantize decomposes a matched table index into cb.Dimension signed
// components via radix-mod digit decomposition, most significant digit
// first.
//
// Ported from: get_wxyz() in original_source/src/aac_syntax.h
func (cb *Codebook) Dequantize(index uint16) []int16 {
	mod := cb.mod()
	off := cb.offset()
	out := make([]int16, cb.Dimension)
	v := index
	for i := int(cb.Dimension) - 1; i >= 0; i-- {
		digit := int16(v%mod) - off
		out[i] = digit
		v /= mod
	}
	return out
}

// ReadEscape decodes an escape-coded magnitude following an ESC_HCB
// component equal to escFlag: a unary run of leading one-bits (at
// least 4, capped at 13) gives the exponent i, followed by i magnitude
// bits; the result is (1<<i) + raw. An overflow run returns
// MaxQuantizedValue+1.
//
// Ported from: get_escape() in original_source/src/aac_syntax.h
func ReadEscape(c *bitcursor.Cursor) (int32, error) {
	i := uint(4)
	for {
		bit, err := c.ReadBits(1)
		if err != nil {
			return 0, err
		}
		if bit == 0 {
			break
		}
		i++
		if i == 13 {
			return MaxQuantizedValue + 1, nil
		}
	}
	raw, err := c.ReadBits(i)
	if err != nil {
		return 0, err
	}
	return int32(1<<i) + int32(raw), nil
}

// ApplyEscape replaces components of v that equal +-escFlag with their
// escape-decoded magnitude, preserving sign. Only meaningful for
// codebook 11 (ESC_HCB).
func ApplyEscape(c *bitcursor.Cursor, v []int16) error {
	for i, comp := range v {
		mag := comp
		if mag < 0 {
			mag = -mag
		}
		if mag != escFlag {
			continue
		}
		esc, err := ReadEscape(c)
		if err != nil {
			return err
		}
		if comp < 0 {
			v[i] = int16(-esc)
		} else {
			v[i] = int16(esc)
		}
	}
	return nil
}

// ReadSignBits reads the sign bits that follow the codeword of an
// unsigned codebook (one bit per nonzero component, 1 = negative) and
// applies them to v. Signed codebooks carry no sign bits; v is left
// unchanged.
func (cb *Codebook) ReadSignBits(c *bitcursor.Cursor, v []int16) error {
	if cb.Signed {
		return nil
	}
	for i, comp := range v {
		if comp == 0 {
			continue
		}
		bit, err := c.ReadBits(1)
		if err != nil {
			return err
		}
		if bit == 1 {
			v[i] = -comp
		}
	}
	return nil
}
