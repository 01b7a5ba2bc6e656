// Package syntax implements AAC bitstream syntax parsing.
// This file contains scale factor decoding.
package syntax

import (
	"github.com/llehouerou/go-aac/internal/huffman"
)

// ParseScaleFactorData drives scale_factor_data(): in read mode it
// Huffman-decodes the differentially coded scale factors (relative to
// global_gain), intensity-stereo positions, and PNS noise energies
// into ics.ScaleFactors; in dump mode it walks the already-populated
// array and emits one field per (group, sfb); write mode is
// ErrUnsupported whenever ics.MaxSFB > 0 — re-encoding arbitrary scale
// factors back into a valid canonical-Huffman delta stream is not
// exercised by any documented property of this package. A MaxSFB == 0
// stream (no scalefactor bands, as WriteSilentFrame emits) carries no
// scale_factor_data bits at all, so write mode allows that case
// through.
//
// The read-side algorithm maintains three separate running totals:
//   - scaleFactor: for spectral codebooks (1-11, 16-31)
//   - isPosition: for intensity stereo codebooks (14, 15)
//   - noiseEnergy: for noise (PNS) codebook (13)
//
// Zero codebook (0) results in scale factor 0.
//
// Ported from: decode_scale_factors() in ~/dev/faad2/libfaad/syntax.c:1894-1985
func ParseScaleFactorData(op *Op, ics *ICStream) error {
	if op.Kind == Write && ics.MaxSFB > 0 {
		return ErrUnsupported
	}

	op.BeginStruct("scale_factor_data")
	defer op.EndStruct("scale_factor_data")

	if op.Kind == Dump {
		for g := uint8(0); g < ics.NumWindowGroups; g++ {
			for sfb := uint8(0); sfb < ics.MaxSFB; sfb++ {
				op.Note("hcod_sf", int64(ics.ScaleFactors[g][sfb]))
			}
		}
		return nil
	}

	if op.Kind == Write {
		return nil
	}

	scaleFactor := int16(ics.GlobalGain)
	isPosition := int16(0)
	noisePCMFlag := true
	noiseEnergy := int16(ics.GlobalGain) - 90

	for g := uint8(0); g < ics.NumWindowGroups; g++ {
		for sfb := uint8(0); sfb < ics.MaxSFB; sfb++ {
			cb := ics.SFBCB[g][sfb]

			switch cb {
			case huffman.ZeroHCB:
				ics.ScaleFactors[g][sfb] = 0

			case huffman.IntensityHCB, huffman.IntensityHCB2:
				delta, err := huffman.ScaleFactor.Decode(op.Cursor)
				if err != nil {
					return err
				}
				isPosition += int16(delta)
				ics.ScaleFactors[g][sfb] = isPosition

			case huffman.NoiseHCB:
				if noisePCMFlag {
					noisePCMFlag = false
					t, err := op.Cursor.ReadBits(9)
					if err != nil {
						return err
					}
					noiseEnergy += int16(t) - 256
				} else {
					delta, err := huffman.ScaleFactor.Decode(op.Cursor)
					if err != nil {
						return err
					}
					noiseEnergy += int16(delta)
				}
				ics.ScaleFactors[g][sfb] = noiseEnergy

			default:
				delta, err := huffman.ScaleFactor.Decode(op.Cursor)
				if err != nil {
					return err
				}
				scaleFactor += int16(delta)
				if scaleFactor < 0 || scaleFactor > 255 {
					return ErrScaleFactorRange
				}
				ics.ScaleFactors[g][sfb] = scaleFactor
			}
		}
	}

	return nil
}
