package huffman

import "github.com/llehouerou/go-aac/internal/bitcursor"

// Codebook identifiers with no entries (zero/noise/intensity) or with
// escape semantics, reused by the syntax engine's spectral_data
// production.
//
// Source: enum aac_band_type in original_source/include/aac/aac_types.h
const (
	ZeroHCB       = 0
	FirstPairHCB  = 5
	NoiseHCB      = 13
	IntensityHCB2 = 14
	IntensityHCB  = 15
)

var spectral = map[uint8]*Codebook{}

// ScaleFactor is the single scalefactor/intensity/noise delta codebook.
var ScaleFactor = newScaleFactorCodebook()

func init() {
	spectral[8] = newCodebook8()
	for _, s := range spectralShapes {
		spectral[s.id] = newSyntheticCodebook(s.id, s.dimension, s.lav, s.signed)
	}
}

// Spectral returns the codebook for a given sect_cb value (1-11).
// Callers must not invoke this for ZeroHCB/NoiseHCB/IntensityHCB(2),
// which carry no spectral Huffman data of their own.
func Spectral(sectCB uint8) (*Codebook, bool) {
	cb, ok := spectral[sectCB]
	return cb, ok
}

// IsNoSpectralData reports whether sectCB produces no Huffman-coded
// spectral coefficients at all (zero, noise, or intensity stereo).
func IsNoSpectralData(sectCB uint8) bool {
	switch sectCB {
	case ZeroHCB, NoiseHCB, IntensityHCB, IntensityHCB2:
		return true
	}
	return false
}

// SpectralData decodes one codeword of sectCB's dimension from c into
// out[:dimension]: table lookup, radix dequantization, per-component
// sign bits, then escape expansion (codebook 11 only).
//
// Ported from: spectral_data() inner codebook switch in
// ~/dev/faad2/libfaad/syntax.c:2156-2236
func SpectralData(sectCB uint8, c *bitcursor.Cursor, out []int16) error {
	cb, ok := Spectral(sectCB)
	if !ok {
		return ErrCodeNotFound
	}
	idx, err := cb.Decode(c)
	if err != nil {
		return err
	}
	vals := cb.Dequantize(idx)
	if err := cb.ReadSignBits(c, vals); err != nil {
		return err
	}
	if sectCB == EscHCB {
		if err := ApplyEscape(c, vals); err != nil {
			return err
		}
	}
	copy(out, vals)
	return nil
}
