// internal/syntax/cpe.go
package syntax

// CPEConfig holds configuration for Channel Pair Element parsing.
// Ported from: channel_pair_element() parameters in ~/dev/faad2/libfaad/syntax.c:698
type CPEConfig struct {
	SFIndex     uint8  // Sample rate index (0-11)
	FrameLength uint16 // Frame length (960 or 1024)
	ObjectType  uint8  // Audio object type
}

// CPEResult holds the result of parsing a Channel Pair Element.
// Ported from: channel_pair_element() return values in ~/dev/faad2/libfaad/syntax.c:698-826
type CPEResult struct {
	Element   Element // Parsed element data (contains ICS1 and ICS2)
	SpecData1 []int16 // Spectral coefficients for channel 1 (1024 or 960 values)
	SpecData2 []int16 // Spectral coefficients for channel 2 (1024 or 960 values)
	Tag       uint8   // Element instance tag (for channel mapping)
}

// ParseChannelPairElement drives channel_pair_element(): a shared
// ics_info() and M/S mask when common_window is set, followed by two
// individual_channel_stream() payloads.
//
// in supplies the already-decoded element to walk in dump mode; write
// mode of a non-trivial (MaxSFB > 0) element remains ErrUnsupported
// for the same reason as ParseSingleChannelElement. in is ignored in
// read mode and may be nil there.
//
// Ported from: channel_pair_element() in ~/dev/faad2/libfaad/syntax.c:698-826
func ParseChannelPairElement(op *Op, cfg *CPEConfig, in *CPEResult) (*CPEResult, error) {
	op.BeginStruct("channel_pair_element")
	defer op.EndStruct("channel_pair_element")

	res := &CPEResult{
		SpecData1: make([]int16, cfg.FrameLength),
		SpecData2: make([]int16, cfg.FrameLength),
	}
	if op.Kind != Read {
		res = in
	}
	res.Element.PairedChannel = 1

	if err := U(op, "element_instance_tag", 4, &res.Tag); err != nil {
		return nil, err
	}
	res.Element.ElementInstanceTag = res.Tag

	if err := Bool(op, "common_window", &res.Element.CommonWindow); err != nil {
		return nil, err
	}

	if res.Element.CommonWindow {
		icsCfg := &ICSInfoConfig{
			SFIndex:      cfg.SFIndex,
			FrameLength:  cfg.FrameLength,
			ObjectType:   cfg.ObjectType,
			CommonWindow: true,
		}
		if err := ParseICSInfo(op, &res.Element.ICS1, icsCfg); err != nil {
			return nil, err
		}

		if err := U(op, "ms_mask_present", 2, &res.Element.ICS1.MSMaskPresent); err != nil {
			return nil, err
		}
		if res.Element.ICS1.MSMaskPresent == 3 {
			return nil, ErrMSMaskReserved
		}
		if res.Element.ICS1.MSMaskPresent == 1 {
			op.BeginArray("ms_used")
			for g := uint8(0); g < res.Element.ICS1.NumWindowGroups; g++ {
				for sfb := uint8(0); sfb < res.Element.ICS1.MaxSFB; sfb++ {
					op.BeginArrayItem()
					if err := U(op, "ms_used", 1, &res.Element.ICS1.MSUsed[g][sfb]); err != nil {
						op.EndArrayItem()
						op.EndArray("ms_used")
						return nil, err
					}
					op.EndArrayItem()
				}
			}
			op.EndArray("ms_used")
		}

		copyWindowInfo(&res.Element.ICS2, &res.Element.ICS1)
	}

	streamCfg := &ChannelStreamConfig{
		SFIndex:      cfg.SFIndex,
		FrameLength:  cfg.FrameLength,
		ObjectType:   cfg.ObjectType,
		CommonWindow: res.Element.CommonWindow,
	}
	if err := ParseIndividualChannelStream(op, &res.Element.ICS1, streamCfg, res.SpecData1); err != nil {
		return nil, err
	}
	if err := ParseIndividualChannelStream(op, &res.Element.ICS2, streamCfg, res.SpecData2); err != nil {
		return nil, err
	}

	return res, nil
}

// copyWindowInfo propagates the window/grouping fields a common_window
// CPE's single ics_info() call determines to the second channel, which
// never gets its own ics_info().
func copyWindowInfo(dst, src *ICStream) {
	dst.WindowSequence = src.WindowSequence
	dst.WindowShape = src.WindowShape
	dst.MaxSFB = src.MaxSFB
	dst.NumSWB = src.NumSWB
	dst.NumWindows = src.NumWindows
	dst.NumWindowGroups = src.NumWindowGroups
	dst.WindowGroupLength = src.WindowGroupLength
	dst.ScaleFactorGrouping = src.ScaleFactorGrouping
	dst.SectSFBOffset = src.SectSFBOffset
	dst.SWBOffset = src.SWBOffset
	dst.SWBOffsetMax = src.SWBOffsetMax
}
