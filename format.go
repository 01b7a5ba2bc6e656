package aac

import (
	"errors"

	"github.com/llehouerou/go-aac/internal/syntax"
	"github.com/llehouerou/go-aac/internal/tables"
)

// ErrFormatInvalidInput is returned by the FormatConversion helpers
// when the requested AudioFormat is not one this package can express:
// a non-AAC-LC encoding, an out-of-table channel count, an undefined
// sampling-frequency index, or an unrecognized framing selector.
var ErrFormatInvalidInput = errors.New("aac: invalid audio format")

// Framing selects how a raw_data_block is delivered.
type Framing uint8

// Framing selectors.
const (
	FramingRaw  Framing = iota // bare raw_data_block, no transport header
	FramingADTS                // ADTS-wrapped raw_data_block
)

// AudioFormat is a canonical description of a PCM/AAC stream shape:
// encoding, channel layout, bit depth, sample rate and framing. It is
// the collaborator record FormatConversion maps to and from {ASC,
// ADTS}.
//
// Ported from: AudioFormat record in
// original_source/include/aac/aac_format.h
type AudioFormat struct {
	Encoding     ObjectType // only ObjectTypeLC is currently supported
	ChannelCount uint8
	BitDepth     uint8 // always 16 for the supported formats
	SampleRate   uint32
	Framing      Framing
}

// channelConfigTable maps a 4-bit channel_configuration value to an
// output channel count. Indices 0 and 8-15 are reserved/program-config-
// dependent and report 0 (not representable as a plain AudioFormat).
//
// Source: ~/dev/faad2/libfaad/common.c channel configuration table
var channelConfigTable = [16]uint8{
	0, 1, 2, 3, 4, 5, 6, 8,
	0, 0, 0, 0, 0, 0, 0, 0,
}

// channelCountToConfig inverts channelConfigTable for the channel
// counts FormatConversion supports.
func channelCountToConfig(count uint8) (uint8, bool) {
	for idx, c := range channelConfigTable {
		if c == count && idx != 0 {
			return uint8(idx), true
		}
	}
	return 0, false
}

// FormatIsValid reports whether fmt describes a format
// FormatConversion can map to a wire representation: AAC-LC, 16-bit, a
// channel count present in channelConfigTable, a sampling-frequency
// index defined in ISO 14496-3 Table 1.18, and a recognized Framing.
func FormatIsValid(f AudioFormat) bool {
	if f.Encoding != ObjectTypeLC || f.BitDepth != 16 {
		return false
	}
	if _, ok := channelCountToConfig(f.ChannelCount); !ok {
		return false
	}
	if tables.GetSampleRate(tables.GetSRIndex(f.SampleRate)) != f.SampleRate {
		return false
	}
	return f.Framing == FramingRaw || f.Framing == FramingADTS
}

// FormatEqual reports whether a and b describe the same format.
func FormatEqual(a, b AudioFormat) bool { return a == b }

// ASCFromFormat builds an AudioSpecificConfig + GASpecificConfig
// payload describing f. f must satisfy FormatIsValid and have
// Framing == FramingRaw (an ASC accompanies raw/MP4-muxed streams, not
// ADTS ones).
func ASCFromFormat(f AudioFormat) (*AudioSpecificConfig, error) {
	if !FormatIsValid(f) || f.Framing != FramingRaw {
		return nil, ErrFormatInvalidInput
	}
	chanConfig, _ := channelCountToConfig(f.ChannelCount)
	asc := &AudioSpecificConfig{
		ObjectTypeIndex:        uint8(f.Encoding),
		SamplingFrequencyIndex: tables.GetSRIndex(f.SampleRate),
		SamplingFrequency:      f.SampleRate,
		ChannelsConfiguration:  chanConfig,
		SBRPresentFlag:         0,
	}
	return asc, nil
}

// FormatFromASC derives the canonical AudioFormat described by asc.
// Only AAC-LC ASCs map to a representable AudioFormat.
func FormatFromASC(asc *AudioSpecificConfig) (AudioFormat, error) {
	if asc == nil || asc.ObjectTypeIndex != uint8(ObjectTypeLC) {
		return AudioFormat{}, ErrFormatInvalidInput
	}
	chanConfig := asc.ChannelsConfiguration
	count := uint8(0)
	if int(chanConfig) < len(channelConfigTable) {
		count = channelConfigTable[chanConfig]
	}
	if count == 0 {
		return AudioFormat{}, ErrFormatInvalidInput
	}
	return AudioFormat{
		Encoding:     ObjectTypeLC,
		ChannelCount: count,
		BitDepth:     16,
		SampleRate:   asc.SamplingFrequency,
		Framing:      FramingRaw,
	}, nil
}

// ADTSFromFormat builds an ADTSHeader describing f with
// protection_absent set (no CRC) and aac_frame_length left at 0 for the
// caller to fill in once the payload size is known. f must satisfy
// FormatIsValid and have Framing == FramingADTS.
func ADTSFromFormat(f AudioFormat) (*syntax.ADTSHeader, error) {
	if !FormatIsValid(f) || f.Framing != FramingADTS {
		return nil, ErrFormatInvalidInput
	}
	chanConfig, _ := channelCountToConfig(f.ChannelCount)
	return &syntax.ADTSHeader{
		Syncword:             syntax.ADTSSyncword,
		ProtectionAbsent:     true,
		Profile:              uint8(f.Encoding) - 1,
		SFIndex:              tables.GetSRIndex(f.SampleRate),
		ChannelConfiguration: chanConfig,
	}, nil
}

// FormatFromADTS derives the canonical AudioFormat described by h.
// Only AAC-LC (profile 1, i.e. object type 2) headers map to a
// representable AudioFormat.
func FormatFromADTS(h *syntax.ADTSHeader) (AudioFormat, error) {
	if h == nil || ObjectType(h.Profile+1) != ObjectTypeLC {
		return AudioFormat{}, ErrFormatInvalidInput
	}
	count := uint8(0)
	if int(h.ChannelConfiguration) < len(channelConfigTable) {
		count = channelConfigTable[h.ChannelConfiguration]
	}
	if count == 0 {
		return AudioFormat{}, ErrFormatInvalidInput
	}
	return AudioFormat{
		Encoding:     ObjectTypeLC,
		ChannelCount: count,
		BitDepth:     16,
		SampleRate:   tables.GetSampleRate(h.SFIndex),
		Framing:      FramingADTS,
	}, nil
}
