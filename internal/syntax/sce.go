// internal/syntax/sce.go
package syntax

// SCEConfig holds configuration for Single Channel Element parsing.
// Ported from: single_lfe_channel_element() parameters in ~/dev/faad2/libfaad/syntax.c:1060
type SCEConfig struct {
	SFIndex     uint8  // Sample rate index (0-11)
	FrameLength uint16 // Frame length (960 or 1024)
	ObjectType  uint8  // Audio object type
}

// SCEResult holds the result of parsing a Single Channel Element.
// Ported from: single_lfe_channel_element() return values in ~/dev/faad2/libfaad/syntax.c:1060-1095
type SCEResult struct {
	Element  Element // Parsed element data
	SpecData []int16 // Spectral coefficients (1024 or 960 values)
	Tag      uint8   // Element instance tag (for channel mapping)
}

// ParseSingleChannelElement drives single_channel_element() (and
// single_lfe_channel_element(), identical except for the element ID
// that routed here): element_instance_tag followed by one
// individual_channel_stream().
//
// in supplies the already-decoded element to walk in dump mode; write
// mode of a non-trivial (MaxSFB > 0) element remains ErrUnsupported,
// raised by ParseScaleFactorData/ParseSpectralData further down the
// call chain, since this package carries no spectral Huffman encoder.
// in is ignored in read mode and may be nil there.
//
// Ported from: single_lfe_channel_element() in
// ~/dev/faad2/libfaad/syntax.c:1060-1095
func ParseSingleChannelElement(op *Op, cfg *SCEConfig, in *SCEResult) (*SCEResult, error) {
	op.BeginStruct("single_channel_element")
	defer op.EndStruct("single_channel_element")

	res := &SCEResult{SpecData: make([]int16, cfg.FrameLength), Element: Element{PairedChannel: -1}}
	if op.Kind != Read {
		res = in
	}

	if err := U(op, "element_instance_tag", 4, &res.Tag); err != nil {
		return nil, err
	}
	res.Element.ElementInstanceTag = res.Tag

	streamCfg := &ChannelStreamConfig{
		SFIndex:     cfg.SFIndex,
		FrameLength: cfg.FrameLength,
		ObjectType:  cfg.ObjectType,
	}
	if err := ParseIndividualChannelStream(op, &res.Element.ICS1, streamCfg, res.SpecData); err != nil {
		return nil, err
	}
	if res.Element.ICS1.IsUsed {
		return nil, ErrIntensityStereoInSCE
	}

	return res, nil
}
