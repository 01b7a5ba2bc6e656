package tables

// SampleRates maps sample rate index to actual sample rate in Hz.
// Index 0-12 are the 13 defined ISO 14496-3 Table 1.18 frequencies;
// indices 13-14 are reserved and 15 is the "escape" (explicit
// frequency) marker — all three report 0 here.
//
// Source: ~/dev/faad2/libfaad/common.c:61-65, extended with index 12
// (7350 Hz) per ISO 14496-3 Table 1.18.
var SampleRates = [13]uint32{
	96000, 88200, 64000, 48000, 44100, 32000,
	24000, 22050, 16000, 12000, 11025, 8000, 7350,
}

// GetSampleRate returns the sample rate for a given index.
// Returns 0 for invalid indices (>= 13).
//
// Source: ~/dev/faad2/libfaad/common.c:59-71 (get_sample_rate function)
func GetSampleRate(srIndex uint8) uint32 {
	if int(srIndex) >= len(SampleRates) {
		return 0
	}
	return SampleRates[srIndex]
}

// GetSRIndex returns the sample rate index for a given sample rate.
// Uses threshold-based matching as defined in the MPEG-4 AAC standard.
// The thresholds are calculated as geometric means between adjacent rates.
//
// Source: ~/dev/faad2/libfaad/common.c:41-56 (get_sr_index function)
func GetSRIndex(sampleRate uint32) uint8 {
	if sampleRate >= 92017 {
		return 0
	}
	if sampleRate >= 75132 {
		return 1
	}
	if sampleRate >= 55426 {
		return 2
	}
	if sampleRate >= 46009 {
		return 3
	}
	if sampleRate >= 37566 {
		return 4
	}
	if sampleRate >= 27713 {
		return 5
	}
	if sampleRate >= 23004 {
		return 6
	}
	if sampleRate >= 18783 {
		return 7
	}
	if sampleRate >= 13856 {
		return 8
	}
	if sampleRate >= 11502 {
		return 9
	}
	if sampleRate >= 9391 {
		return 10
	}
	if sampleRate >= 7657 {
		return 11
	}
	return 12
}
