// internal/syntax/silent.go
//
// Synthesizes a raw_data_block() carrying silence: a single SCE (mono)
// or CPE (stereo) with max_sfb == 0 — no scalefactor bands, hence no
// section_data/scale_factor_data/spectral_data content — padded out
// with fill_element()s to an exact target byte length.
//
// Ported from: aac_write_silent_frame() in
// original_source/src/aac_writer.c
package syntax

import (
	"errors"

	"github.com/llehouerou/go-aac/internal/bitcursor"
)

// ErrSilentFrameTooSmall is returned by WriteSilentFrame when
// targetLen is too small to hold even the minimal silent element plus
// its terminating id_syn_ele.
var ErrSilentFrameTooSmall = errors.New("syntax: target length too small for a silent frame")

// silentGlobalGain is the global_gain value a silent element carries.
// Its exact value is immaterial — with max_sfb == 0 there are no
// scalefactor bands to scale — but 0x8C matches what reference silent-
// frame generators emit.
const silentGlobalGain = 0x8C

// WriteSilentFrame synthesizes a raw_data_block() of exactly targetLen
// bytes describing digital silence: one SingleChannelElement (mono) or
// ChannelPairElement (stereo, common_window off), both channels
// max_sfb == 0, followed by as many fill_element()s as needed to reach
// targetLen exactly, and the terminating ID_END.
func WriteSilentFrame(targetLen int, stereo bool, cfg *RawDataBlockConfig) ([]byte, error) {
	c := bitcursor.NewWriter()
	op := NewWriteOp(c)

	op.BeginStruct("raw_data_block")

	idSCE := uint8(IDSCE)
	if stereo {
		idSCE = uint8(IDCPE)
	}
	if err := U(op, "id_syn_ele", 3, &idSCE); err != nil {
		op.EndStruct("raw_data_block")
		return nil, err
	}

	var tag uint8
	if err := U(op, "element_instance_tag", 4, &tag); err != nil {
		op.EndStruct("raw_data_block")
		return nil, err
	}

	streamCfg := &ChannelStreamConfig{
		SFIndex:     cfg.SFIndex,
		FrameLength: cfg.FrameLength,
		ObjectType:  cfg.ObjectType,
	}

	if stereo {
		var commonWindow bool
		if err := Bool(op, "common_window", &commonWindow); err != nil {
			op.EndStruct("raw_data_block")
			return nil, err
		}
		for i := 0; i < 2; i++ {
			ics := silentICS()
			specData := make([]int16, cfg.FrameLength)
			if err := ParseIndividualChannelStream(op, ics, streamCfg, specData); err != nil {
				op.EndStruct("raw_data_block")
				return nil, err
			}
		}
	} else {
		ics := silentICS()
		specData := make([]int16, cfg.FrameLength)
		if err := ParseIndividualChannelStream(op, ics, streamCfg, specData); err != nil {
			op.EndStruct("raw_data_block")
			return nil, err
		}
	}

	if err := padToLength(op, c, targetLen); err != nil {
		op.EndStruct("raw_data_block")
		return nil, err
	}

	idEnd := uint8(IDEND)
	if err := U(op, "id_syn_ele", 3, &idEnd); err != nil {
		op.EndStruct("raw_data_block")
		return nil, err
	}
	if err := op.ByteAlign(); err != nil {
		op.EndStruct("raw_data_block")
		return nil, err
	}

	op.EndStruct("raw_data_block")

	out, err := c.AcquireBuffer()
	if err != nil {
		return nil, err
	}
	if len(out) != targetLen {
		return nil, ErrSilentFrameTooSmall
	}
	return out, nil
}

// silentICS returns an ICStream describing one channel of digital
// silence: a long window, max_sfb == 0 (no scalefactor bands, hence no
// section_data/scale_factor_data/spectral_data bits at all).
func silentICS() *ICStream {
	return &ICStream{
		GlobalGain:      silentGlobalGain,
		WindowSequence:  OnlyLongSequence,
		NumWindows:      1,
		NumWindowGroups: 1,
	}
}

// fillCost returns the bit cost of a fill_element() carrying either no
// extension_payload at all (cnt == 0) or a single extension_payload of
// cnt bytes.
func fillCost(cnt int) int {
	if cnt == 0 {
		return LenSEID + 4
	}
	base := LenSEID + 4 + 4 // id_syn_ele, count nibble, extension_type
	if cnt >= 15 {
		base += 8 // esc_count byte
	}
	return base + 8*(cnt-1)
}

// padToLength emits as many fill_element()s as needed so that, once
// the caller writes the 3-bit ID_END and byte-aligns, the cursor has
// produced exactly targetLen bytes. It combines up to seven "empty"
// (cnt == 0, 7-bit) fill elements with at most one "bulk" fill element
// to land the bit count within one byte of the target, leaving the
// final ByteAlign to absorb the rest.
func padToLength(op *Op, c *bitcursor.Cursor, targetLen int) error {
	targetBits := targetLen * 8
	gapBits := targetBits - c.WrittenBits() - LenSEID // reserve ID_END
	if gapBits < 0 {
		return ErrSilentFrameTooSmall
	}

	for n0 := 0; n0 <= 7 && 7*n0 <= gapBits; n0++ {
		used := 7 * n0
		rem := gapBits - used
		if rem <= 7 {
			for i := 0; i < n0; i++ {
				if _, err := ParseFillElement(op, &FillResult{Count: 0}); err != nil {
					return err
				}
			}
			return nil
		}

		if cnt, ok := bulkFillCount(rem); ok {
			for i := 0; i < n0; i++ {
				if _, err := ParseFillElement(op, &FillResult{Count: 0}); err != nil {
					return err
				}
			}
			in := &FillResult{
				Count: uint16(cnt),
				Extensions: []ExtensionPayloadResult{
					{Type: ExtFil, RawBytes: make([]byte, cnt-1)},
				},
			}
			if _, err := ParseFillElement(op, in); err != nil {
				return err
			}
			return nil
		}
	}

	return ErrSilentFrameTooSmall
}

// bulkFillCount finds a single fill_element() extension_payload byte
// count whose bit cost falls in [rem-7, rem], so that combined with
// the already-chosen empty fillers the total lands within one byte of
// rem — the remaining slack is absorbed by final byte alignment.
func bulkFillCount(rem int) (int, bool) {
	for w := rem; w > rem-8 && w >= 0; w-- {
		if w%8 != 3 {
			continue
		}
		cnt := (w - 3) / 8
		if cnt >= 15 {
			cnt = (w - 11) / 8
		}
		if cnt < 1 {
			continue
		}
		if fillCost(cnt) == w {
			return cnt, true
		}
	}
	return 0, false
}
