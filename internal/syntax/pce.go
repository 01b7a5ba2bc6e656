// internal/syntax/pce.go
package syntax

// ProgramConfig contains Program Configuration Element data.
// The PCE describes the channel configuration for complex streams,
// mapping syntax elements to output channels.
//
// Ported from: program_config in ~/dev/faad2/libfaad/structs.h:103-144
type ProgramConfig struct {
	// Basic info
	ElementInstanceTag uint8 // Element instance tag
	ObjectType         uint8 // Audio object type
	SFIndex            uint8 // Sample frequency index

	// Element counts
	NumFrontChannelElements uint8 // Front channel element count
	NumSideChannelElements  uint8 // Side channel element count
	NumBackChannelElements  uint8 // Back channel element count
	NumLFEChannelElements   uint8 // LFE channel element count
	NumAssocDataElements    uint8 // Associated data element count
	NumValidCCElements      uint8 // Valid coupling channel count

	// Mixdown info
	MonoMixdownPresent         bool  // Mono mixdown element present
	MonoMixdownElementNumber   uint8 // Mono mixdown element number
	StereoMixdownPresent       bool  // Stereo mixdown element present
	StereoMixdownElementNumber uint8 // Stereo mixdown element number
	MatrixMixdownIdxPresent    bool  // Matrix mixdown present
	PseudoSurroundEnable       bool  // Pseudo surround enabled
	MatrixMixdownIdx           uint8 // Matrix mixdown index

	// Element configuration (up to 16 of each type)
	FrontElementIsCPE         [16]bool  // True if front element is CPE
	FrontElementTagSelect     [16]uint8 // Front element instance tags
	SideElementIsCPE          [16]bool  // True if side element is CPE
	SideElementTagSelect      [16]uint8 // Side element instance tags
	BackElementIsCPE          [16]bool  // True if back element is CPE
	BackElementTagSelect      [16]uint8 // Back element instance tags
	LFEElementTagSelect       [16]uint8 // LFE element instance tags
	AssocDataElementTagSelect [16]uint8 // Assoc data element tags
	CCElementIsIndSW          [16]bool  // CC element is independently switched
	ValidCCElementTagSelect   [16]uint8 // Valid CC element tags

	// Total channel count (computed)
	Channels uint8

	// Comment field
	CommentFieldBytes uint8      // Comment length
	CommentFieldData  [257]uint8 // Comment data

	// Derived values (computed after parsing)
	NumFrontChannels uint8     // Total front channels
	NumSideChannels  uint8     // Total side channels
	NumBackChannels  uint8     // Total back channels
	NumLFEChannels   uint8     // Total LFE channels
	SCEChannel       [16]uint8 // SCE to channel mapping
	CPEChannel       [16]uint8 // CPE to channel mapping
}

// ParsePCE drives program_config_element(): the channel-mapping
// element used in place of an implicit channel configuration
// (ChannelsConfiguration == 0 in the ASC).
//
// in supplies the content to emit in write mode and to walk in dump
// mode; it is ignored in read mode and may be nil there.
//
// Ported from: program_config_element() in ~/dev/faad2/libfaad/syntax.c:174-268
func ParsePCE(op *Op, in *ProgramConfig) (*ProgramConfig, error) {
	pce := &ProgramConfig{}
	if op.Kind != Read {
		pce = in
	}

	op.BeginStruct("program_config_element")
	defer op.EndStruct("program_config_element")

	if err := U(op, "element_instance_tag", 4, &pce.ElementInstanceTag); err != nil {
		return nil, err
	}
	if err := U(op, "object_type", 2, &pce.ObjectType); err != nil {
		return nil, err
	}
	if err := U(op, "sampling_frequency_index", 4, &pce.SFIndex); err != nil {
		return nil, err
	}
	if err := U(op, "num_front_channel_elements", 4, &pce.NumFrontChannelElements); err != nil {
		return nil, err
	}
	if err := U(op, "num_side_channel_elements", 4, &pce.NumSideChannelElements); err != nil {
		return nil, err
	}
	if err := U(op, "num_back_channel_elements", 4, &pce.NumBackChannelElements); err != nil {
		return nil, err
	}
	if err := U(op, "num_lfe_channel_elements", 2, &pce.NumLFEChannelElements); err != nil {
		return nil, err
	}
	if err := U(op, "num_assoc_data_elements", 3, &pce.NumAssocDataElements); err != nil {
		return nil, err
	}
	if err := U(op, "num_valid_cc_elements", 4, &pce.NumValidCCElements); err != nil {
		return nil, err
	}

	if err := Bool(op, "mono_mixdown_present", &pce.MonoMixdownPresent); err != nil {
		return nil, err
	}
	if pce.MonoMixdownPresent {
		if err := U(op, "mono_mixdown_element_number", 4, &pce.MonoMixdownElementNumber); err != nil {
			return nil, err
		}
	}
	if err := Bool(op, "stereo_mixdown_present", &pce.StereoMixdownPresent); err != nil {
		return nil, err
	}
	if pce.StereoMixdownPresent {
		if err := U(op, "stereo_mixdown_element_number", 4, &pce.StereoMixdownElementNumber); err != nil {
			return nil, err
		}
	}
	if err := Bool(op, "matrix_mixdown_idx_present", &pce.MatrixMixdownIdxPresent); err != nil {
		return nil, err
	}
	if pce.MatrixMixdownIdxPresent {
		if err := U(op, "matrix_mixdown_idx", 2, &pce.MatrixMixdownIdx); err != nil {
			return nil, err
		}
		if err := Bool(op, "pseudo_surround_enable", &pce.PseudoSurroundEnable); err != nil {
			return nil, err
		}
	}

	if err := parsePCEElementGroup(op, "front", pce.NumFrontChannelElements, &pce.FrontElementIsCPE, &pce.FrontElementTagSelect); err != nil {
		return nil, err
	}
	if err := parsePCEElementGroup(op, "side", pce.NumSideChannelElements, &pce.SideElementIsCPE, &pce.SideElementTagSelect); err != nil {
		return nil, err
	}
	if err := parsePCEElementGroup(op, "back", pce.NumBackChannelElements, &pce.BackElementIsCPE, &pce.BackElementTagSelect); err != nil {
		return nil, err
	}

	op.BeginArray("lfe_element_tag_select")
	for i := uint8(0); i < pce.NumLFEChannelElements && i < 16; i++ {
		op.BeginArrayItem()
		err := U(op, "lfe_element_tag_select", 4, &pce.LFEElementTagSelect[i])
		op.EndArrayItem()
		if err != nil {
			op.EndArray("lfe_element_tag_select")
			return nil, err
		}
	}
	op.EndArray("lfe_element_tag_select")

	op.BeginArray("assoc_data_element_tag_select")
	for i := uint8(0); i < pce.NumAssocDataElements && i < 16; i++ {
		op.BeginArrayItem()
		err := U(op, "assoc_data_element_tag_select", 4, &pce.AssocDataElementTagSelect[i])
		op.EndArrayItem()
		if err != nil {
			op.EndArray("assoc_data_element_tag_select")
			return nil, err
		}
	}
	op.EndArray("assoc_data_element_tag_select")

	op.BeginArray("valid_cc")
	for i := uint8(0); i < pce.NumValidCCElements && i < 16; i++ {
		op.BeginArrayItem()
		err := Bool(op, "cc_element_is_ind_sw", &pce.CCElementIsIndSW[i])
		if err == nil {
			err = U(op, "valid_cc_element_tag_select", 4, &pce.ValidCCElementTagSelect[i])
		}
		op.EndArrayItem()
		if err != nil {
			op.EndArray("valid_cc")
			return nil, err
		}
	}
	op.EndArray("valid_cc")

	if err := op.ByteAlign(); err != nil {
		return nil, err
	}

	if err := U(op, "comment_field_bytes", 8, &pce.CommentFieldBytes); err != nil {
		return nil, err
	}
	op.BeginArray("comment_field_data")
	for i := uint8(0); i < pce.CommentFieldBytes; i++ {
		op.BeginArrayItem()
		err := U(op, "comment_field_data", 8, &pce.CommentFieldData[i])
		op.EndArrayItem()
		if err != nil {
			op.EndArray("comment_field_data")
			return nil, err
		}
	}
	op.EndArray("comment_field_data")

	computeChannelMapping(pce)

	return pce, nil
}

func parsePCEElementGroup(op *Op, name string, count uint8, isCPE *[16]bool, tagSelect *[16]uint8) error {
	op.BeginArray(name)
	for i := uint8(0); i < count && i < 16; i++ {
		op.BeginArrayItem()
		err := Bool(op, "element_is_cpe", &isCPE[i])
		if err == nil {
			err = U(op, "element_tag_select", 4, &tagSelect[i])
		}
		op.EndArrayItem()
		if err != nil {
			op.EndArray(name)
			return err
		}
	}
	op.EndArray(name)
	return nil
}

// computeChannelMapping derives the total channel count and per-SCE/
// CPE output channel assignment from the element counts just parsed.
//
// Ported from: program_config_element() post-processing in
// ~/dev/faad2/libfaad/syntax.c:270-283
func computeChannelMapping(pce *ProgramConfig) {
	ch := uint8(0)
	sce, cpe := uint8(0), uint8(0)

	mapGroup := func(count uint8, isCPE *[16]bool) {
		for i := uint8(0); i < count && i < 16; i++ {
			if isCPE[i] {
				pce.CPEChannel[cpe] = ch
				ch += 2
				cpe++
			} else {
				pce.SCEChannel[sce] = ch
				ch++
				sce++
			}
		}
	}
	mapGroup(pce.NumFrontChannelElements, &pce.FrontElementIsCPE)
	mapGroup(pce.NumSideChannelElements, &pce.SideElementIsCPE)
	mapGroup(pce.NumBackChannelElements, &pce.BackElementIsCPE)
	ch += pce.NumLFEChannelElements

	pce.NumFrontChannels = countChannels(pce.NumFrontChannelElements, &pce.FrontElementIsCPE)
	pce.NumSideChannels = countChannels(pce.NumSideChannelElements, &pce.SideElementIsCPE)
	pce.NumBackChannels = countChannels(pce.NumBackChannelElements, &pce.BackElementIsCPE)
	pce.NumLFEChannels = pce.NumLFEChannelElements
	pce.Channels = ch
}

func countChannels(count uint8, isCPE *[16]bool) uint8 {
	var n uint8
	for i := uint8(0); i < count && i < 16; i++ {
		if isCPE[i] {
			n += 2
		} else {
			n++
		}
	}
	return n
}
