// Package aac provides AudioFormat and the object-type vocabulary
// shared by the bitstream toolkit described in doc.go.
package aac

// ObjectType represents an AAC audio object type.
// Source: ~/dev/faad2/include/neaacdec.h:74-83
type ObjectType uint8

// AAC Object Types.
const (
	ObjectTypeMain    ObjectType = 1
	ObjectTypeLC      ObjectType = 2  // Most common - Low Complexity
	ObjectTypeSSR     ObjectType = 3  // Scalable Sample Rate
	ObjectTypeLTP     ObjectType = 4  // Long Term Prediction
	ObjectTypeHEAAC   ObjectType = 5  // High Efficiency AAC (with SBR)
	ObjectTypeERLC    ObjectType = 17 // Error Resilient LC
	ObjectTypeERLTP   ObjectType = 19 // Error Resilient LTP
	ObjectTypeLD      ObjectType = 23 // Low Delay
	ObjectTypeDRMERLC ObjectType = 27 // DRM specific
)

// objectTypeNames maps the object types this package recognizes to
// their canonical string form.
//
// Ported from: aac_aot_to_str()/aac_aot_from_str() in
// original_source/src/aac_types.c
var objectTypeNames = map[ObjectType]string{
	ObjectTypeMain:    "AAC_MAIN",
	ObjectTypeLC:      "AAC_LC",
	ObjectTypeSSR:     "AAC_SSR",
	ObjectTypeLTP:     "AAC_LTP",
	ObjectTypeHEAAC:   "SBR",
	ObjectTypeERLC:    "ER_AAC_LC",
	ObjectTypeERLTP:   "ER_AAC_LTP",
	ObjectTypeLD:      "ER_AAC_LD",
	ObjectTypeDRMERLC: "DRM_ER_LC",
}

// String returns the canonical name of ot, or "UNKNOWN" if ot is not a
// recognized object type.
func (ot ObjectType) String() string {
	if name, ok := objectTypeNames[ot]; ok {
		return name
	}
	return "UNKNOWN"
}

// ParseObjectType converts a case-insensitive object type name back to
// its ObjectType value. Unknown or empty names return ObjectType(0)
// (NULL), matching aac_aot_from_str's behavior for any unrecognized
// input including nil/empty strings.
//
// Ported from: aac_aot_from_str() in original_source/src/aac_types.c
func ParseObjectType(s string) ObjectType {
	upper := make([]byte, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 'a' && c <= 'z' {
			c -= 'a' - 'A'
		}
		upper[i] = c
	}
	name := string(upper)
	for ot, n := range objectTypeNames {
		if n == name {
			return ot
		}
	}
	return ObjectType(0)
}

// AudioSpecificConfig contains the MP4 AudioSpecificConfig data.
// Source: ~/dev/faad2/include/neaacdec.h:140-161
type AudioSpecificConfig struct {
	// Audio Specific Info
	ObjectTypeIndex        uint8
	SamplingFrequencyIndex uint8
	SamplingFrequency      uint32
	ChannelsConfiguration  uint8

	// GA Specific Info
	FrameLengthFlag                  bool
	DependsOnCoreCoder               bool
	CoreCoderDelay                   uint16
	ExtensionFlag                    bool
	AACSectionDataResilienceFlag     bool
	AACScalefactorDataResilienceFlag bool
	AACSpectralDataResilienceFlag    bool
	EPConfig                         uint8

	// SBR extension
	SBRPresentFlag  int8
	ForceUpSampling bool
	DownSampledSBR  bool
}
