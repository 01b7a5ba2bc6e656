// internal/syntax/asc.go
package syntax

import (
	"errors"

	"github.com/llehouerou/go-aac"
	"github.com/llehouerou/go-aac/internal/bitcursor"
	"github.com/llehouerou/go-aac/internal/tables"
)

// ASC parsing errors.
var (
	// ErrASCNil is returned when nil config is passed.
	ErrASCNil = errors.New("nil AudioSpecificConfig")

	// ErrASCUnsupportedObjectType is returned for unsupported object types.
	ErrASCUnsupportedObjectType = errors.New("unsupported audio object type")

	// ErrASCInvalidSampleRate is returned for invalid sample rate index.
	ErrASCInvalidSampleRate = errors.New("invalid sample rate")

	// ErrASCInvalidChannelConfig is returned for invalid channel configuration.
	ErrASCInvalidChannelConfig = errors.New("invalid channel configuration")

	// ErrASCGAConfigFailed is returned when GASpecificConfig parsing fails.
	ErrASCGAConfigFailed = errors.New("GASpecificConfig parsing failed")

	// ErrASCEPConfigNotSupported is returned for unsupported epConfig values.
	ErrASCEPConfigNotSupported = errors.New("epConfig != 0 not supported")

	// ErrASCBitstreamError is returned for bitstream initialization errors.
	ErrASCBitstreamError = errors.New("bitstream initialization error")
)

// SRIndexExplicit indicates an explicit 24-bit sample rate follows.
const SRIndexExplicit = 0x0f

// objectTypesTable defines which audio object types can be decoded.
// Ported from: ~/dev/faad2/libfaad/mp4.c:40-117 (ObjectTypesTable)
// This table assumes all optional features are enabled:
// MAIN_DEC, LTP_DEC, SBR_DEC, ERROR_RESILIENCE, LD_DEC, PS_DEC
//
// Note: This table is specifically for ASC (AudioSpecificConfig) parsing.
// Index 27 ("ER Parametric" in MPEG-4) is not supported.
var objectTypesTable = [32]bool{
	false, // 0: NULL
	true,  // 1: AAC Main
	true,  // 2: AAC LC
	false, // 3: AAC SSR (not supported)
	true,  // 4: AAC LTP
	true,  // 5: SBR (HE-AAC)
	false, // 6: AAC Scalable
	false, // 7: TwinVQ
	false, // 8: CELP
	false, // 9: HVXC
	false, // 10: Reserved
	false, // 11: Reserved
	false, // 12: TTSI
	false, // 13: Main synthetic
	false, // 14: Wavetable synthesis
	false, // 15: General MIDI
	false, // 16: Algorithmic Synthesis and Audio FX
	true,  // 17: ER AAC LC
	false, // 18: Reserved
	true,  // 19: ER AAC LTP
	false, // 20: ER AAC scalable
	false, // 21: ER TwinVQ
	false, // 22: ER BSAC
	true,  // 23: ER AAC LD
	false, // 24: ER CELP
	false, // 25: ER HVXC
	false, // 26: ER HILN
	false, // 27: ER Parametric
	false, // 28: Reserved
	true,  // 29: AAC LC + SBR + PS (HE-AACv2)
	false, // 30: Reserved
	false, // 31: Reserved
}

// isObjectTypeSupported returns true if the audio object type can be decoded.
// Ported from: ~/dev/faad2/libfaad/mp4.c:40-117
func isObjectTypeSupported(objType uint8) bool {
	if objType >= 32 {
		return false
	}
	return objectTypesTable[objType]
}

// ParseGASpecificConfig drives GASpecificConfig(): frame length flag,
// core coder dependency, the PCE carried inline when channel
// configuration is 0, and (for ER object types) the three resilience
// flags plus a reserved bit.
//
// Ported from: GASpecificConfig() in ~/dev/faad2/libfaad/syntax.c:109-165
func ParseGASpecificConfig(op *Op, asc *aac.AudioSpecificConfig) (*ProgramConfig, error) {
	op.BeginStruct("GASpecificConfig")
	defer op.EndStruct("GASpecificConfig")

	if err := Bool(op, "frameLengthFlag", &asc.FrameLengthFlag); err != nil {
		return nil, err
	}
	if err := Bool(op, "dependsOnCoreCoder", &asc.DependsOnCoreCoder); err != nil {
		return nil, err
	}
	if asc.DependsOnCoreCoder {
		if err := U(op, "coreCoderDelay", 14, &asc.CoreCoderDelay); err != nil {
			return nil, err
		}
	}
	if err := Bool(op, "extensionFlag", &asc.ExtensionFlag); err != nil {
		return nil, err
	}

	var pce *ProgramConfig
	if asc.ChannelsConfiguration == 0 {
		var err error
		pce, err = ParsePCE(op, nil)
		if err != nil {
			return nil, err
		}
	}

	if asc.ExtensionFlag {
		if asc.ObjectTypeIndex >= ERObjectStart {
			if err := Bool(op, "aacSectionDataResilienceFlag", &asc.AACSectionDataResilienceFlag); err != nil {
				return nil, err
			}
			if err := Bool(op, "aacScalefactorDataResilienceFlag", &asc.AACScalefactorDataResilienceFlag); err != nil {
				return nil, err
			}
			if err := Bool(op, "aacSpectralDataResilienceFlag", &asc.AACSpectralDataResilienceFlag); err != nil {
				return nil, err
			}
		}
		if err := op.SkipBits(1); err != nil { // extensionFlag3, reserved
			return nil, err
		}
	}

	return pce, nil
}

// ParseASC parses an AudioSpecificConfig from raw bytes.
// Returns the parsed config, optional PCE, and any error.
//
// Ported from: ~/dev/faad2/libfaad/mp4.c:299-313 (AudioSpecificConfig2)
func ParseASC(data []byte) (*aac.AudioSpecificConfig, *ProgramConfig, error) {
	op := NewReadOp(bitcursor.NewReader(data))
	return ParseASCFromOp(op, uint32(len(data)), false)
}

// ParseASCShortForm parses an AudioSpecificConfig without SBR extension detection.
// Use this when you know there's no SBR extension data in the config.
//
// Ported from: ~/dev/faad2/libfaad/mp4.c short_form parameter
func ParseASCShortForm(data []byte) (*aac.AudioSpecificConfig, *ProgramConfig, error) {
	op := NewReadOp(bitcursor.NewReader(data))
	return ParseASCFromOp(op, uint32(len(data)), true)
}

// ParseASCFromOp drives get_AudioObjectType() + AudioSpecificConfig()
// against an already-positioned Op. bufferSize is the total size
// available, used only for trailing-SBR-extension byte accounting;
// shortForm disables that backward-compatible SBR extension scan.
//
// Ported from: ~/dev/faad2/libfaad/mp4.c:127-297 (AudioSpecificConfigFromBitfile)
func ParseASCFromOp(op *Op, bufferSize uint32, shortForm bool) (*aac.AudioSpecificConfig, *ProgramConfig, error) {
	op.BeginStruct("AudioSpecificConfig")
	defer op.EndStruct("AudioSpecificConfig")

	asc := &aac.AudioSpecificConfig{}
	startBits := uint32(0)
	if op.Cursor != nil {
		startBits = uint32(op.Cursor.ConsumedBits())
	}

	objType, err := getAudioObjectType(op)
	if err != nil {
		return nil, nil, err
	}
	asc.ObjectTypeIndex = objType

	if err := U(op, "samplingFrequencyIndex", 4, &asc.SamplingFrequencyIndex); err != nil {
		return nil, nil, err
	}
	if asc.SamplingFrequencyIndex == SRIndexExplicit {
		if err := U(op, "samplingFrequency", 24, &asc.SamplingFrequency); err != nil {
			return nil, nil, err
		}
	} else {
		asc.SamplingFrequency = tables.GetSampleRate(asc.SamplingFrequencyIndex)
	}

	if err := U(op, "channelsConfiguration", 4, &asc.ChannelsConfiguration); err != nil {
		return nil, nil, err
	}

	if !isObjectTypeSupported(asc.ObjectTypeIndex) {
		return nil, nil, ErrASCUnsupportedObjectType
	}
	if asc.SamplingFrequency == 0 {
		return nil, nil, ErrASCInvalidSampleRate
	}
	if asc.ChannelsConfiguration > 7 {
		return nil, nil, ErrASCInvalidChannelConfig
	}

	// Upmatrix mono to stereo for implicit PS signaling
	if asc.ChannelsConfiguration == 1 {
		asc.ChannelsConfiguration = 2
	}

	asc.SBRPresentFlag = -1

	if asc.ObjectTypeIndex == 5 || asc.ObjectTypeIndex == 29 {
		asc.SBRPresentFlag = 1

		var extSRIndex uint8
		if err := U(op, "extensionSamplingFrequencyIndex", 4, &extSRIndex); err != nil {
			return nil, nil, err
		}
		if extSRIndex == asc.SamplingFrequencyIndex {
			asc.DownSampledSBR = true
		}
		asc.SamplingFrequencyIndex = extSRIndex

		if asc.SamplingFrequencyIndex == SRIndexExplicit {
			if err := U(op, "samplingFrequency", 24, &asc.SamplingFrequency); err != nil {
				return nil, nil, err
			}
		} else {
			asc.SamplingFrequency = tables.GetSampleRate(asc.SamplingFrequencyIndex)
		}

		objType, err := getAudioObjectType(op)
		if err != nil {
			return nil, nil, err
		}
		asc.ObjectTypeIndex = objType
	}

	var pce *ProgramConfig
	switch asc.ObjectTypeIndex {
	case 1, 2, 3, 4, 6, 7: // Main, LC, SSR, LTP, Scalable, TwinVQ
		pce, err = ParseGASpecificConfig(op, asc)
		if err != nil {
			return nil, nil, ErrASCGAConfigFailed
		}
	default:
		if asc.ObjectTypeIndex >= ERObjectStart {
			pce, err = ParseGASpecificConfig(op, asc)
			if err != nil {
				return nil, nil, ErrASCGAConfigFailed
			}
			if err := U(op, "epConfig", 2, &asc.EPConfig); err != nil {
				return nil, nil, err
			}
			if asc.EPConfig != 0 {
				return nil, nil, ErrASCEPConfigNotSupported
			}
		} else {
			return nil, nil, ErrASCUnsupportedObjectType
		}
	}

	if !shortForm && op.Kind == Read {
		consumed := uint32(op.Cursor.ConsumedBits())
		bitsToDecode := int32(bufferSize*8) - int32(consumed-startBits)
		if asc.ObjectTypeIndex != 5 && asc.ObjectTypeIndex != 29 && bitsToDecode >= 16 {
			syncExtType, err := op.Cursor.PeekBits(11)
			if err == nil && syncExtType == 0x2b7 {
				if _, err := op.Cursor.ReadBits(11); err != nil {
					return nil, nil, err
				}
				extOTi, err := getAudioObjectType(op)
				if err != nil {
					return nil, nil, err
				}
				if extOTi == 5 {
					var sbrPresent bool
					if err := Bool(op, "sbrPresentFlag", &sbrPresent); err != nil {
						return nil, nil, err
					}
					if sbrPresent {
						asc.SBRPresentFlag = 1
						asc.ObjectTypeIndex = extOTi

						var extSRIndex uint8
						if err := U(op, "extensionSamplingFrequencyIndex", 4, &extSRIndex); err != nil {
							return nil, nil, err
						}
						if extSRIndex == asc.SamplingFrequencyIndex {
							asc.DownSampledSBR = true
						}
						asc.SamplingFrequencyIndex = extSRIndex

						if asc.SamplingFrequencyIndex == SRIndexExplicit {
							if err := U(op, "samplingFrequency", 24, &asc.SamplingFrequency); err != nil {
								return nil, nil, err
							}
						} else {
							asc.SamplingFrequency = tables.GetSampleRate(asc.SamplingFrequencyIndex)
						}
					} else {
						asc.SBRPresentFlag = 0
					}
				}
			}
		}
	}

	if asc.SBRPresentFlag == -1 {
		if asc.SamplingFrequency <= 24000 {
			asc.SamplingFrequency *= 2
			asc.ForceUpSampling = true
		} else {
			asc.DownSampledSBR = true
		}
	}

	return asc, pce, nil
}

// getAudioObjectType drives get_AudioObjectType(): a 5-bit object type,
// escaped to 5+6 bits when the base field reads 31 (the MPEG-4
// "escape" encoding for object types 32 and above).
//
// Ported from: get_sample_rate()-adjacent object type decode in
// ~/dev/faad2/libfaad/mp4.c:119-126
func getAudioObjectType(op *Op) (uint8, error) {
	var base uint8
	if err := U(op, "objectTypeIndex", 5, &base); err != nil {
		return 0, err
	}
	if base != 31 {
		return base, nil
	}
	var ext uint8
	if err := U(op, "objectTypeIndexExt", 6, &ext); err != nil {
		return 0, err
	}
	return 32 + ext, nil
}
