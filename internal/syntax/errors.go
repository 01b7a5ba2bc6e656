// Package syntax implements AAC bitstream syntax parsing.
// This file contains error definitions for the syntax package.
package syntax

import "errors"

// Window grouping errors.
var (
	// ErrInvalidSRIndex indicates an invalid sample rate index (must be 0-11).
	ErrInvalidSRIndex = errors.New("syntax: invalid sample rate index")

	// ErrInvalidWindowSequence indicates an invalid window sequence type.
	ErrInvalidWindowSequence = errors.New("syntax: invalid window sequence")

	// ErrMaxSFBTooLarge indicates max_sfb exceeds the number of SFBs for this sample rate.
	ErrMaxSFBTooLarge = errors.New("syntax: max_sfb exceeds num_swb")
)

// section_data errors.
var (
	// ErrSectionLimit indicates section_data() produced more sections
	// than a window sequence's section-count limit allows.
	ErrSectionLimit = errors.New("syntax: too many sections")

	// ErrReservedCodebook indicates a section used the reserved
	// codebook index 12.
	ErrReservedCodebook = errors.New("syntax: reserved codebook index")

	// ErrSectionLength indicates an accumulated section length ran
	// past the scalefactor-band limit for this window sequence.
	ErrSectionLength = errors.New("syntax: section length out of range")

	// ErrSectionCoverage indicates section_data()'s sections did not
	// exactly cover every scalefactor band up to max_sfb.
	ErrSectionCoverage = errors.New("syntax: sections do not cover max_sfb")
)

// ics_info/scale_factor_data/channel_pair_element errors.
var (
	// ErrICSReservedBit indicates ics_info()'s reserved bit was nonzero.
	ErrICSReservedBit = errors.New("syntax: ics_reserved_bit must be 0")

	// ErrScaleFactorRange indicates an accumulated scalefactor index
	// fell outside the representable [0,255] range.
	ErrScaleFactorRange = errors.New("syntax: scalefactor out of range")

	// ErrMSMaskReserved indicates channel_pair_element()'s
	// ms_mask_present field carried the reserved value 3.
	ErrMSMaskReserved = errors.New("syntax: ms_mask_present value 3 is reserved")

	// ErrIntensityStereoInSCE indicates a single_channel_element()'s
	// ICS used an intensity-stereo codebook, which is only meaningful
	// for the second channel of a channel_pair_element().
	ErrIntensityStereoInSCE = errors.New("syntax: intensity stereo not allowed in single channel element")
)

// pulse_data errors.
var (
	// ErrPulsePosition indicates pulse_data() placed a pulse at or
	// beyond the end of the frame.
	ErrPulsePosition = errors.New("syntax: pulse position exceeds frame length")
)
