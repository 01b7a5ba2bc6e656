// internal/syntax/spectral.go
package syntax

import (
	"github.com/llehouerou/go-aac/internal/huffman"
)

// ParseSpectralData drives spectral_data(): read mode Huffman-decodes
// the quantized spectral coefficients assigned by section_data; dump
// mode walks the already-decoded specData and emits one field per
// non-zero coefficient; write mode is ErrUnsupported whenever
// ics.MaxSFB > 0, for the same reason as ParseScaleFactorData —
// arbitrary coefficients cannot be re-encoded into a valid
// canonical-Huffman stream without the real ISO bit patterns this
// corpus does not carry. A MaxSFB == 0 stream has no sections and so
// no spectral_data bits to emit, which is what WriteSilentFrame relies
// on.
//
// Codebooks 1-4 decode 4 values at a time (quad), codebooks 5-11
// decode 2 values (pair). Zero codebook (0) means silence - no
// spectral data in bitstream. Noise codebook (13) - spectral data is
// synthesized later (PNS). Intensity codebooks (14, 15) - stereo
// parameters, not spectral data.
//
// Ported from: spectral_data() in ~/dev/faad2/libfaad/syntax.c:2156-2236
func ParseSpectralData(op *Op, ics *ICStream, specData []int16, frameLength uint16) error {
	if op.Kind == Write && ics.MaxSFB > 0 {
		return ErrUnsupported
	}

	op.BeginStruct("spectral_data")
	defer op.EndStruct("spectral_data")

	if op.Kind == Dump {
		op.BeginArray("coef")
		for i, v := range specData {
			if v == 0 {
				continue
			}
			op.BeginArrayItem()
			op.Note("index", int64(i))
			op.Note("value", int64(v))
			op.EndArrayItem()
		}
		op.EndArray("coef")
		return nil
	}

	if op.Kind == Write {
		return nil
	}

	nshort := frameLength / 8
	groups := uint8(0)

	for g := uint8(0); g < ics.NumWindowGroups; g++ {
		p := uint16(groups) * nshort

		for i := uint8(0); i < ics.NumSec[g]; i++ {
			sectCB := ics.SectCB[g][i]

			var inc uint16
			if sectCB >= uint8(huffman.FirstPairHCB) {
				inc = 2
			} else {
				inc = 4
			}

			switch sectCB {
			case huffman.ZeroHCB, huffman.NoiseHCB, huffman.IntensityHCB, huffman.IntensityHCB2:
				p += ics.SectSFBOffset[g][ics.SectEnd[g][i]] - ics.SectSFBOffset[g][ics.SectStart[g][i]]

			default:
				start := ics.SectSFBOffset[g][ics.SectStart[g][i]]
				end := ics.SectSFBOffset[g][ics.SectEnd[g][i]]

				for k := start; k < end; k += inc {
					if err := huffman.SpectralData(sectCB, op.Cursor, specData[p:]); err != nil {
						return err
					}
					p += inc
				}
			}
		}

		groups += ics.WindowGroupLength[g]
	}

	return nil
}
