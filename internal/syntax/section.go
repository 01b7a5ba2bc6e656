// internal/syntax/section.go
package syntax

import (
	"github.com/llehouerou/go-aac/internal/huffman"
)

// ParseSectionData drives section_data(): the run-length assignment of
// Huffman codebooks to ranges of scale factor bands (Table 4.4.25), in
// whichever of read/write/dump op is bound to. Write mode emits the
// sections already recorded in ics.SectCB/SectStart/SectEnd/NumSec.
//
// Ported from: section_data() in ~/dev/faad2/libfaad/syntax.c:1731-1881
func ParseSectionData(op *Op, ics *ICStream) error {
	var sectBits, sectLim uint8

	if ics.WindowSequence == EightShortSequence {
		sectBits = 3
		sectLim = 8 * 15 // 120
	} else {
		sectBits = 5
		sectLim = MaxSFB // 51
	}
	sectEscVal := uint8((1 << sectBits) - 1)

	op.BeginStruct("section_data")
	op.BeginArray("sections")
	for g := uint8(0); g < ics.NumWindowGroups; g++ {
		k := uint8(0)

		numSec := ics.NumSec[g]
		for i := uint8(0); (op.Kind == Write && i < numSec) || (op.Kind != Write && k < ics.MaxSFB); i++ {
			if i >= sectLim {
				op.EndArray("sections")
				op.EndStruct("section_data")
				return ErrSectionLimit
			}

			op.BeginArrayItem()
			sectCB := ics.SectCB[g][i]
			if err := U(op, "sect_cb", 4, &sectCB); err != nil {
				op.EndArrayItem()
				op.EndArray("sections")
				op.EndStruct("section_data")
				return err
			}
			ics.SectCB[g][i] = sectCB

			if sectCB == 12 {
				op.EndArrayItem()
				op.EndArray("sections")
				op.EndStruct("section_data")
				return ErrReservedCodebook
			}
			if sectCB == uint8(huffman.NoiseHCB) {
				ics.NoiseUsed = true
			}
			if sectCB == uint8(huffman.IntensityHCB) || sectCB == uint8(huffman.IntensityHCB2) {
				ics.IsUsed = true
			}

			var sectLen uint8
			if op.Kind != Read {
				sectLen = uint8(ics.SectEnd[g][i] - ics.SectStart[g][i])
			}
			remaining := sectLen
			for {
				sectLenIncr := sectEscVal
				if op.Kind != Read {
					if remaining > uint8(sectEscVal) {
						sectLenIncr = sectEscVal
					} else {
						sectLenIncr = remaining
					}
				}
				if err := U(op, "sect_len_incr", uint(sectBits), &sectLenIncr); err != nil {
					op.EndArrayItem()
					op.EndArray("sections")
					op.EndStruct("section_data")
					return err
				}
				if op.Kind == Read {
					if sectLen > sectLim {
						op.EndArrayItem()
						op.EndArray("sections")
						op.EndStruct("section_data")
						return ErrSectionLength
					}
					sectLen += sectLenIncr
				} else {
					remaining -= sectLenIncr
				}
				if sectLenIncr != sectEscVal {
					break
				}
			}

			if op.Kind != Write {
				ics.SectStart[g][i] = uint16(k)
				ics.SectEnd[g][i] = uint16(k + sectLen)
			}
			op.Note("sect_start", int64(ics.SectStart[g][i]))
			op.Note("sect_end", int64(ics.SectEnd[g][i]))

			if sectLen > sectLim || k+sectLen > sectLim {
				op.EndArrayItem()
				op.EndArray("sections")
				op.EndStruct("section_data")
				return ErrSectionLength
			}

			if op.Kind != Write {
				for sfb := k; sfb < k+sectLen; sfb++ {
					ics.SFBCB[g][sfb] = sectCB
				}
			}

			k += sectLen
			if op.Kind != Write {
				ics.NumSec[g] = i + 1
			}
			op.EndArrayItem()
		}

		if op.Kind != Write && k != ics.MaxSFB {
			op.EndArray("sections")
			op.EndStruct("section_data")
			return ErrSectionCoverage
		}
	}
	op.EndArray("sections")
	op.EndStruct("section_data")

	return nil
}
