// internal/syntax/fill.go
package syntax

// FillResult holds the parsed payload summary of a fill_element().
type FillResult struct {
	Count      uint16
	Extensions []ExtensionPayloadResult
}

// ExtensionPayloadResult holds one extension_payload() decoded inside
// a fill_element() or (in principle) an SCE/CPE's extension data.
type ExtensionPayloadResult struct {
	Type     ExtensionType
	DRC      *DRCInfo
	RawBytes []byte // present for every extension type other than EXT_DYNAMIC_RANGE
}

// ParseFillElement drives fill_element(): a 4-bit count (escaped to
// 12 bits via the 0xF sentinel) followed by a run of
// extension_payload()s that together consume exactly that many bytes.
//
// in supplies the content to emit in write mode and to walk in dump
// mode (its Count and Extensions fields); it is ignored in read mode
// and may be nil there.
//
// Ported from: fill_element() in ~/dev/faad2/libfaad/syntax.c:2303-2330
func ParseFillElement(op *Op, in *FillResult) (*FillResult, error) {
	op.BeginStruct("fill_element")
	defer op.EndStruct("fill_element")

	res := &FillResult{}
	if op.Kind != Read {
		res.Count = in.Count
	}

	cnt := uint8(0)
	if op.Kind != Read {
		if res.Count >= 15 {
			cnt = 15
		} else {
			cnt = uint8(res.Count)
		}
	}
	if err := U(op, "count", 4, &cnt); err != nil {
		return nil, err
	}
	total := uint16(cnt)
	if cnt == 15 {
		var esc uint8
		if op.Kind != Read {
			esc = uint8(res.Count - 14)
		}
		if err := U(op, "esc_count", 8, &esc); err != nil {
			return nil, err
		}
		total += uint16(esc) - 1
	}
	res.Count = total

	op.BeginArray("extension_payload")
	extIdx := 0
	for remaining := total; remaining > 0; {
		op.BeginArrayItem()
		var inExt *ExtensionPayloadResult
		if op.Kind != Read {
			if extIdx < len(in.Extensions) {
				inExt = &in.Extensions[extIdx]
			} else {
				inExt = &ExtensionPayloadResult{}
			}
		}
		ext, consumed, err := ParseExtensionPayload(op, remaining, inExt)
		op.EndArrayItem()
		if err != nil {
			op.EndArray("extension_payload")
			return nil, err
		}
		res.Extensions = append(res.Extensions, *ext)
		remaining -= consumed
		extIdx++
	}
	op.EndArray("extension_payload")

	return res, nil
}

// ParseExtensionPayload drives extension_payload(cnt): a 4-bit
// extension_type selector, dispatching to dynamic_range_info() for
// EXT_DYNAMIC_RANGE and treating every other extension type (fill
// data, data elements, SBR/PS payloads) as an opaque byte run — this
// package decodes AAC-LC core audio only, so non-DRC extension
// payload content is preserved but not interpreted.
//
// in supplies the content to emit in write mode and to walk in dump
// mode (Type, DRC, RawBytes); it is ignored in read mode and may be
// nil there.
//
// Ported from: extension_payload() in ~/dev/faad2/libfaad/syntax.c:2333-2364
func ParseExtensionPayload(op *Op, cnt uint16, in *ExtensionPayloadResult) (*ExtensionPayloadResult, uint16, error) {
	res := &ExtensionPayloadResult{}

	extType := uint8(0)
	if op.Kind != Read {
		extType = uint8(in.Type)
	}
	if err := U(op, "extension_type", 4, &extType); err != nil {
		return nil, 0, err
	}
	res.Type = ExtensionType(extType)

	if res.Type == ExtDynamicRange {
		drc := &DRCInfo{}
		if op.Kind != Read && in.DRC != nil {
			*drc = *in.DRC
		}
		consumed, err := parseDynamicRangeInfo(op, drc)
		if err != nil {
			return nil, 0, err
		}
		res.DRC = drc
		return res, consumed, nil
	}

	n := int(cnt) - 1
	if n < 0 {
		n = 0
	}
	if op.Kind == Read {
		res.RawBytes = make([]byte, n)
	}
	op.BeginArray("other_bits")
	for i := 0; i < n; i++ {
		op.BeginArrayItem()
		var b uint8
		if op.Kind != Read {
			if in != nil && i < len(in.RawBytes) {
				b = in.RawBytes[i]
			}
		}
		err := U(op, "other_bits", 8, &b)
		if op.Kind == Read {
			res.RawBytes[i] = b
		}
		op.EndArrayItem()
		if err != nil {
			op.EndArray("other_bits")
			return nil, 0, err
		}
	}
	op.EndArray("other_bits")

	return res, cnt, nil
}

// parseDynamicRangeInfo drives dynamic_range_info(), returning the
// number of bytes consumed (the unit fill_element() counts down in).
//
// Ported from: dynamic_range_info() in ~/dev/faad2/libfaad/syntax.c:2396-2470
func parseDynamicRangeInfo(op *Op, drc *DRCInfo) (uint16, error) {
	op.BeginStruct("dynamic_range_info")
	defer op.EndStruct("dynamic_range_info")

	drc.Present = true
	n := uint16(1)

	var pceTagPresent bool
	if err := Bool(op, "pce_tag_present", &pceTagPresent); err != nil {
		return 0, err
	}
	if pceTagPresent {
		if err := U(op, "pce_instance_tag", 4, &drc.PCEInstanceTag); err != nil {
			return 0, err
		}
		var reserved uint8
		if err := U(op, "drc_tag_reserved_bits", 4, &reserved); err != nil {
			return 0, err
		}
		n++
	}

	if err := Bool(op, "excluded_chns_present", &drc.ExcludedChnsPresent); err != nil {
		return 0, err
	}
	if drc.ExcludedChnsPresent {
		extra, err := parseExcludedChannels(op, drc)
		if err != nil {
			return 0, err
		}
		n += uint16(extra)
	}

	var bandIncr uint8
	if op.Kind != Read {
		if drc.NumBands > 0 {
			bandIncr = drc.NumBands - 1
		}
	}
	if err := U(op, "band_incr", 4, &bandIncr); err != nil {
		return 0, err
	}
	drc.NumBands = bandIncr + 1

	var interpolationScheme uint8
	if err := U(op, "interpolation_scheme", 1, &interpolationScheme); err != nil {
		return 0, err
	}
	n++

	op.BeginArray("band_top")
	for i := uint8(0); i <= bandIncr && i < 17; i++ {
		op.BeginArrayItem()
		err := U(op, "band_top", 8, &drc.BandTop[i])
		op.EndArrayItem()
		if err != nil {
			op.EndArray("band_top")
			return 0, err
		}
		n++
	}
	op.EndArray("band_top")

	var progRefLevelPresent bool
	if err := Bool(op, "prog_ref_level_present", &progRefLevelPresent); err != nil {
		return 0, err
	}
	if progRefLevelPresent {
		if err := U(op, "prog_ref_level", 7, &drc.ProgRefLevel); err != nil {
			return 0, err
		}
		var reserved uint8
		if err := U(op, "prog_ref_level_reserved_bits", 1, &reserved); err != nil {
			return 0, err
		}
		n++
	}

	op.BeginArray("dyn_rng")
	for i := uint8(0); i <= bandIncr && i < 17; i++ {
		op.BeginArrayItem()
		err := U(op, "dyn_rng_sgn", 1, &drc.DynRngSgn[i])
		if err == nil {
			err = U(op, "dyn_rng_ctl", 7, &drc.DynRngCtl[i])
		}
		op.EndArrayItem()
		if err != nil {
			op.EndArray("dyn_rng")
			return 0, err
		}
		n++
	}
	op.EndArray("dyn_rng")

	return n, nil
}

// parseExcludedChannels drives excluded_channels(): a 7-bit exclusion
// mask per channel group, extended 7 channels at a time while the
// additional_excluded_chns flag keeps being set. Returns the number of
// bytes consumed.
//
// Ported from: excluded_channels() in ~/dev/faad2/libfaad/syntax.c:2367-2394
func parseExcludedChannels(op *Op, drc *DRCInfo) (uint8, error) {
	op.BeginStruct("excluded_channels")
	defer op.EndStruct("excluded_channels")

	var n uint8
	numExclChan := 7

	for i := 0; i < 7; i++ {
		var bit uint8
		if op.Kind != Read {
			bit = drc.ExcludeMask[i]
		}
		if err := U(op, "exclude_mask", 1, &bit); err != nil {
			return n, err
		}
		drc.ExcludeMask[i] = bit
	}
	n++

	for {
		var additionalBit uint8
		if op.Kind != Read {
			additionalBit = drc.AdditionalExcludedChns[n-1]
		}
		if err := U(op, "additional_excluded_chns", 1, &additionalBit); err != nil {
			return n, err
		}
		drc.AdditionalExcludedChns[n-1] = additionalBit

		if additionalBit == 0 {
			break
		}
		if numExclChan >= MaxChannels-7 {
			return n, nil
		}

		for i := numExclChan; i < numExclChan+7; i++ {
			if i >= MaxChannels {
				continue
			}
			var bit uint8
			if op.Kind != Read {
				bit = drc.ExcludeMask[i]
			}
			if err := U(op, "exclude_mask", 1, &bit); err != nil {
				return n, err
			}
			drc.ExcludeMask[i] = bit
		}
		n++
		numExclChan += 7
	}

	return n, nil
}
