// internal/syntax/cce.go
package syntax

import "github.com/llehouerou/go-aac/internal/huffman"

// CCEConfig holds configuration for Coupling Channel Element parsing.
// Ported from: coupling_channel_element() parameters in ~/dev/faad2/libfaad/syntax.c:987
type CCEConfig struct {
	SFIndex     uint8  // Sample rate index (0-11)
	FrameLength uint16 // Frame length (960 or 1024)
	ObjectType  uint8  // Audio object type
}

// CCECoupledElement holds information about a coupled element target.
// Ported from: coupling_channel_element() loop in ~/dev/faad2/libfaad/syntax.c:1006-1027
type CCECoupledElement struct {
	TargetIsCPE bool  // True if target is a CPE (vs SCE)
	TargetTag   uint8 // Target element instance tag (0-15)
	CCL         bool  // Apply coupling to left channel (only if TargetIsCPE)
	CCR         bool  // Apply coupling to right channel (only if TargetIsCPE)
}

// CCEResult holds the result of parsing a Coupling Channel Element.
// Note: CCE data is parsed but not used for decoding (rarely used in practice).
// Ported from: coupling_channel_element() in ~/dev/faad2/libfaad/syntax.c:987-1076
type CCEResult struct {
	Tag                 uint8                // Element instance tag (0-15)
	IndSwCCEFlag        bool                 // Independently switched CCE
	NumCoupledElements  uint8                // Number of coupled elements (0-7)
	CoupledElements     [8]CCECoupledElement // Coupled element targets
	NumGainElementLists uint8                // Number of gain element lists
	CCDomain            bool                 // Coupling domain (0=before TNS, 1=after TNS)
	GainElementSign     bool                 // Sign of gain elements
	GainElementScale    uint8                // Scale of gain elements (0-3)
	Element             Element              // Parsed ICS element
	SpecData            []int16              // Spectral data (parsed but not used)
	CommonGainPresent   [8]bool              // common_gain_element_present per coupled element
	HCodGain            [8]int8              // decoded gain delta, one per coupled element with a common gain
}

// ParseCouplingChannelElement drives coupling_channel_element(): the
// target element list plus one individual_channel_stream() carrying
// the coupling channel's own spectral data. Per-band (non-common)
// gain element lists are ErrUnsupported — only the single
// common_gain_element_present case is decoded, since per-band gain
// control is never exercised by AAC-LC stereo/5.1 content. Write mode
// is ErrUnsupported unconditionally: this package carries no spectral
// Huffman encoder and CCE has no MaxSFB == 0 escape the way
// WriteSilentFrame uses for SCE/CPE.
//
// in supplies the already-decoded element to walk in dump mode; it is
// ignored in read/write mode and may be nil there.
//
// Ported from: coupling_channel_element() in ~/dev/faad2/libfaad/syntax.c:987-1076
func ParseCouplingChannelElement(op *Op, cfg *CCEConfig, in *CCEResult) (*CCEResult, error) {
	op.BeginStruct("coupling_channel_element")
	defer op.EndStruct("coupling_channel_element")

	if op.Kind == Write {
		return nil, ErrUnsupported
	}

	res := &CCEResult{SpecData: make([]int16, cfg.FrameLength)}
	if op.Kind == Dump {
		res = in
	}

	if err := U(op, "element_instance_tag", 4, &res.Tag); err != nil {
		return nil, err
	}
	if err := Bool(op, "ind_sw_cce_flag", &res.IndSwCCEFlag); err != nil {
		return nil, err
	}
	if err := U(op, "num_coupled_elements", 3, &res.NumCoupledElements); err != nil {
		return nil, err
	}

	op.BeginArray("coupled_elements")
	n := res.NumCoupledElements + 1
	for c := uint8(0); c < n && c < 8; c++ {
		op.BeginArrayItem()
		ce := &res.CoupledElements[c]
		err := Bool(op, "cc_target_is_cpe", &ce.TargetIsCPE)
		if err == nil {
			err = U(op, "cc_target_tag_select", 4, &ce.TargetTag)
		}
		if err == nil && ce.TargetIsCPE {
			err = Bool(op, "cc_l", &ce.CCL)
			if err == nil {
				err = Bool(op, "cc_r", &ce.CCR)
			}
		}
		if op.Kind == Read {
			res.NumGainElementLists++
		}
		op.EndArrayItem()
		if err != nil {
			op.EndArray("coupled_elements")
			return nil, err
		}
	}
	op.EndArray("coupled_elements")

	if err := Bool(op, "cc_domain", &res.CCDomain); err != nil {
		return nil, err
	}
	if err := Bool(op, "gain_element_sign", &res.GainElementSign); err != nil {
		return nil, err
	}
	if err := U(op, "gain_element_scale", 2, &res.GainElementScale); err != nil {
		return nil, err
	}

	streamCfg := &ChannelStreamConfig{
		SFIndex:     cfg.SFIndex,
		FrameLength: cfg.FrameLength,
		ObjectType:  cfg.ObjectType,
	}
	if err := ParseIndividualChannelStream(op, &res.Element.ICS1, streamCfg, res.SpecData); err != nil {
		return nil, err
	}

	op.BeginArray("gain_elements")
	for c := uint8(0); c < n && c < 8; c++ {
		op.BeginArrayItem()
		cge := res.IndSwCCEFlag
		var err error
		if !cge {
			err = Bool(op, "common_gain_element_present", &res.CommonGainPresent[c])
			cge = res.CommonGainPresent[c]
		} else {
			res.CommonGainPresent[c] = true
		}
		switch {
		case err != nil:
		case !cge:
			err = ErrUnsupported
		case op.Kind == Read:
			res.HCodGain[c], err = huffman.ScaleFactor.Decode(op.Cursor)
		case op.Kind == Dump:
			op.Note("hcod_gain", int64(res.HCodGain[c]))
		}
		op.EndArrayItem()
		if err != nil {
			op.EndArray("gain_elements")
			return nil, err
		}
	}
	op.EndArray("gain_elements")

	return res, nil
}
