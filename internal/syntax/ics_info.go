// internal/syntax/ics_info.go
package syntax

// ICSInfoConfig holds configuration needed for ICS info parsing.
type ICSInfoConfig struct {
	SFIndex      uint8  // Sample rate index (0-11)
	FrameLength  uint16 // Frame length (960 or 1024)
	ObjectType   uint8  // Audio object type
	CommonWindow bool   // True if CPE with common window
}

// ObjectType constants.
// Ported from: ~/dev/faad2/libfaad/neaacdec.h:85-100
const (
	ObjectTypeMain = 1  // AAC Main
	ObjectTypeLC   = 2  // AAC Low Complexity
	ObjectTypeSSR  = 3  // AAC Scalable Sample Rate
	ObjectTypeLTP  = 4  // AAC Long Term Prediction
	ObjectTypeSBR  = 5  // Spectral Band Replication
	ObjectTypeLD   = 23 // AAC Low Delay
)

// ParseICSInfo drives ics_info() in whichever direction op is bound
// to. The predictor data path is implemented only for AOT Main
// (MPEG-2 style prediction); any other object type signaling
// predictor_data_present fails ErrUnsupported — Long Term Prediction
// and the SSR/LD predictor variants are out of scope for this
// package.
//
// Ported from: ics_info() in ~/dev/faad2/libfaad/syntax.c:829-952
func ParseICSInfo(op *Op, ics *ICStream, cfg *ICSInfoConfig) error {
	op.BeginStruct("ics_info")
	defer op.EndStruct("ics_info")

	var reserved uint8
	if err := U(op, "ics_reserved_bit", 1, &reserved); err != nil {
		return err
	}
	if reserved != 0 {
		return ErrICSReservedBit
	}

	seq := uint8(ics.WindowSequence)
	if err := U(op, "window_sequence", 2, &seq); err != nil {
		return err
	}
	ics.WindowSequence = WindowSequence(seq)

	if err := U(op, "window_shape", 1, &ics.WindowShape); err != nil {
		return err
	}

	if ics.WindowSequence == EightShortSequence {
		if err := U(op, "max_sfb", 4, &ics.MaxSFB); err != nil {
			return err
		}
		if err := U(op, "scale_factor_grouping", 7, &ics.ScaleFactorGrouping); err != nil {
			return err
		}
	} else {
		if err := U(op, "max_sfb", 6, &ics.MaxSFB); err != nil {
			return err
		}
	}

	if op.Kind != Write {
		if err := WindowGroupingInfo(ics, cfg.SFIndex, cfg.FrameLength); err != nil {
			return err
		}
	}

	if ics.WindowSequence != EightShortSequence {
		if err := Bool(op, "predictor_data_present", &ics.PredictorDataPresent); err != nil {
			return err
		}

		if ics.PredictorDataPresent {
			if cfg.ObjectType != ObjectTypeMain {
				return ErrUnsupported
			}
			if err := parseMainPrediction(op, ics, cfg.SFIndex); err != nil {
				return err
			}
		}
	}

	return nil
}

// parseMainPrediction drives the MAIN profile prediction_data fields.
// Ported from: ics_info() MAIN profile section in syntax.c:876-905
func parseMainPrediction(op *Op, ics *ICStream, sfIndex uint8) error {
	limit := maxPredSFB(sfIndex)
	if ics.MaxSFB < limit {
		limit = ics.MaxSFB
	}

	op.BeginStruct("predictor")
	defer op.EndStruct("predictor")

	var predictorReset bool
	if err := Bool(op, "predictor_reset", &predictorReset); err != nil {
		return err
	}
	var predictorResetGroup uint8
	if predictorReset {
		if err := U(op, "predictor_reset_group_number", 5, &predictorResetGroup); err != nil {
			return err
		}
	}

	op.BeginArray("prediction_used")
	for sfb := uint8(0); sfb < limit; sfb++ {
		op.BeginArrayItem()
		var used bool
		if err := Bool(op, "prediction_used", &used); err != nil {
			op.EndArrayItem()
			op.EndArray("prediction_used")
			return err
		}
		op.EndArrayItem()
	}
	op.EndArray("prediction_used")

	return nil
}

// maxPredSFB returns the maximum SFB for MAIN profile prediction.
// Ported from: max_pred_sfb() in ~/dev/faad2/libfaad/common.c:73-85
func maxPredSFB(sfIndex uint8) uint8 {
	maxPredSFBTable := [12]uint8{
		33, 33, 38, 40, 40, 40, 41, 41, 37, 37, 37, 34,
	}
	if sfIndex >= 12 {
		return 0
	}
	return maxPredSFBTable[sfIndex]
}
