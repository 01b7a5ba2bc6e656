// internal/syntax/ics_extra.go
package syntax

// ParsePulseData drives pulse_data(): up to 4 pulses added to the
// spectral coefficients of a long block, starting at pulse_start_sfb.
//
// Ported from: pulse_data() in ~/dev/faad2/libfaad/syntax.c:2031-2060
func ParsePulseData(op *Op, pul *PulseInfo) error {
	op.BeginStruct("pulse_data")
	defer op.EndStruct("pulse_data")

	var numberPulse uint8
	if op.Kind != Read {
		numberPulse = pul.NumberPulse - 1
	}
	if err := U(op, "number_pulse", 2, &numberPulse); err != nil {
		return err
	}
	if op.Kind == Read {
		pul.NumberPulse = numberPulse + 1
	}

	if err := U(op, "pulse_start_sfb", 6, &pul.PulseStartSFB); err != nil {
		return err
	}

	op.BeginArray("pulse")
	for i := uint8(0); i < pul.NumberPulse; i++ {
		op.BeginArrayItem()
		if err := U(op, "pulse_offset", 5, &pul.PulseOffset[i]); err != nil {
			op.EndArrayItem()
			op.EndArray("pulse")
			return err
		}
		if err := U(op, "pulse_amp", 4, &pul.PulseAmp[i]); err != nil {
			op.EndArrayItem()
			op.EndArray("pulse")
			return err
		}
		op.EndArrayItem()
	}
	op.EndArray("pulse")

	return nil
}

// ParseTNSData drives tns_data(): up to 3 (long window) or 1 (short
// window) cascaded all-pole filters per window, shaping the
// quantization noise in frequency.
//
// Ported from: tns_data() in ~/dev/faad2/libfaad/syntax.c:1991-2030
func ParseTNSData(op *Op, ics *ICStream, tns *TNSInfo) error {
	op.BeginStruct("tns_data")
	defer op.EndStruct("tns_data")

	isShort := ics.WindowSequence == EightShortSequence
	nFiltBits, lengthBits, orderBits := uint(2), uint(6), uint(5)
	if isShort {
		nFiltBits, lengthBits, orderBits = 1, 4, 3
	}

	op.BeginArray("windows")
	for w := uint8(0); w < ics.NumWindows; w++ {
		op.BeginArrayItem()
		if err := U(op, "n_filt", nFiltBits, &tns.NFilt[w]); err != nil {
			op.EndArrayItem()
			op.EndArray("windows")
			return err
		}
		if tns.NFilt[w] > 0 {
			if err := U(op, "coef_res", 1, &tns.CoefRes[w]); err != nil {
				op.EndArrayItem()
				op.EndArray("windows")
				return err
			}
		}

		for i := uint8(0); i < tns.NFilt[w]; i++ {
			if err := U(op, "length", lengthBits, &tns.Length[w][i]); err != nil {
				op.EndArrayItem()
				op.EndArray("windows")
				return err
			}
			if err := U(op, "order", orderBits, &tns.Order[w][i]); err != nil {
				op.EndArrayItem()
				op.EndArray("windows")
				return err
			}
			if tns.Order[w][i] == 0 {
				continue
			}
			if err := U(op, "direction", 1, &tns.Direction[w][i]); err != nil {
				op.EndArrayItem()
				op.EndArray("windows")
				return err
			}
			if err := U(op, "coef_compress", 1, &tns.CoefCompress[w][i]); err != nil {
				op.EndArrayItem()
				op.EndArray("windows")
				return err
			}
			coefBits := uint(tns.CoefRes[w]) + 3 - uint(tns.CoefCompress[w][i])
			for j := uint8(0); j < tns.Order[w][i] && j < 32; j++ {
				if err := U(op, "coef", coefBits, &tns.Coef[w][i][j]); err != nil {
					op.EndArrayItem()
					op.EndArray("windows")
					return err
				}
			}
		}
		op.EndArrayItem()
	}
	op.EndArray("windows")

	return nil
}

// ParseGainControlData drives gain_control_data(): SSR-only adaptive
// gain control across four PQF subbands. This object type is never
// validated as decodable (see isObjectTypeSupported in asc.go), so
// reaching this production always fails ErrUnsupported.
//
// Ported from: gain_control_data() in ~/dev/faad2/libfaad/syntax.c:2240-2290
func ParseGainControlData(op *Op, ics *ICStream) error {
	return ErrUnsupported
}

// ChannelStreamConfig holds configuration for individual_channel_stream().
type ChannelStreamConfig struct {
	SFIndex      uint8
	FrameLength  uint16
	ObjectType   uint8
	CommonWindow bool
	Scalable     bool
}

// ParseIndividualChannelStream drives individual_channel_stream(): the
// per-channel payload shared by SCE, the two channels of a CPE, and
// CCE's coupled-channel data — global_gain, ics_info (unless a
// common_window CPE already parsed it), section_data,
// scale_factor_data, optional pulse/TNS/gain-control data, and
// spectral_data.
//
// Ported from: individual_channel_stream() in
// ~/dev/faad2/libfaad/syntax.c:955-1056
func ParseIndividualChannelStream(op *Op, ics *ICStream, cfg *ChannelStreamConfig, specData []int16) error {
	op.BeginStruct("individual_channel_stream")
	defer op.EndStruct("individual_channel_stream")

	if err := U(op, "global_gain", 8, &ics.GlobalGain); err != nil {
		return err
	}

	if !cfg.CommonWindow && !cfg.Scalable {
		icsCfg := &ICSInfoConfig{
			SFIndex:     cfg.SFIndex,
			FrameLength: cfg.FrameLength,
			ObjectType:  cfg.ObjectType,
		}
		if err := ParseICSInfo(op, ics, icsCfg); err != nil {
			return err
		}
	}

	if err := ParseSectionData(op, ics); err != nil {
		return err
	}
	if err := ParseScaleFactorData(op, ics); err != nil {
		return err
	}

	if err := Bool(op, "pulse_data_present", &ics.PulseDataPresent); err != nil {
		return err
	}
	if ics.PulseDataPresent {
		if ics.WindowSequence == EightShortSequence {
			return ErrUnsupported
		}
		if err := ParsePulseData(op, &ics.Pul); err != nil {
			return err
		}
	}

	if err := Bool(op, "tns_data_present", &ics.TNSDataPresent); err != nil {
		return err
	}
	if ics.TNSDataPresent {
		if err := ParseTNSData(op, ics, &ics.TNS); err != nil {
			return err
		}
	}

	if err := Bool(op, "gain_control_data_present", &ics.GainControlDataPresent); err != nil {
		return err
	}
	if ics.GainControlDataPresent {
		if err := ParseGainControlData(op, ics); err != nil {
			return err
		}
	}

	return ParseSpectralData(op, ics, specData, cfg.FrameLength)
}
