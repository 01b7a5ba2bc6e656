// internal/syntax/adts.go
//
// # ADTS Framing
//
// Audio Data Transport Stream wraps each raw_data_block() in a
// self-contained header carrying enough information (sample rate,
// channel configuration, frame length) to decode without an out-of-band
// AudioSpecificConfig. adts_fixed_header() and adts_variable_header()
// together form the 7-byte (protection_absent) or 9-byte header;
// adts_error_check()/adts_header_error_check()/
// adts_raw_data_block_error_check() carry the optional CRC fields that
// appear when protection_absent is false.
package syntax

import (
	"errors"

	"github.com/llehouerou/go-aac/internal/bitcursor"
)

// ADTSSyncword is the 12-bit sync pattern for ADTS frames.
const ADTSSyncword = 0x0FFF

// ErrADTSSyncwordNotFound is returned when no ADTS syncword is found.
var ErrADTSSyncwordNotFound = errors.New("unable to find ADTS syncword")

// MaxSyncSearchBytes is the maximum bytes to search for ADTS syncword.
// Matches FAAD2's limit of 768 bytes.
const MaxSyncSearchBytes = 768

// FindSyncword searches for the ADTS syncword (0xFFF) directly on a
// bitcursor, skipping up to MaxSyncSearchBytes bytes. On success the 12
// syncword bits are left consumed; the caller continues straight into
// ParseADTSFixedHeader. Returns ErrADTSSyncwordNotFound otherwise.
//
// Ported from: adts_fixed_header() sync recovery loop in
// ~/dev/faad2/libfaad/syntax.c:2466-2482
func FindSyncword(c *bitcursor.Cursor) error {
	for i := 0; i < MaxSyncSearchBytes; i++ {
		syncword, err := c.PeekBits(12)
		if err != nil {
			return ErrADTSSyncwordNotFound
		}
		if syncword == ADTSSyncword {
			_, err := c.ReadBits(12)
			return err
		}
		if _, err := c.ReadBits(8); err != nil {
			return ErrADTSSyncwordNotFound
		}
	}
	return ErrADTSSyncwordNotFound
}

// ADTSHeader contains Audio Data Transport Stream header data.
// ADTS is the most common AAC transport format (used in .aac files).
//
// Ported from: adts_header in ~/dev/faad2/libfaad/structs.h:146-168
type ADTSHeader struct {
	Syncword             uint16 // 12 bits, must be 0xFFF
	ID                   uint8  // 1 bit: 0=MPEG-4, 1=MPEG-2
	Layer                uint8  // 2 bits: always 0
	ProtectionAbsent     bool   // 1 bit: true=no CRC
	Profile              uint8  // 2 bits: object type - 1
	SFIndex              uint8  // 4 bits: sample frequency index
	PrivateBit           bool   // 1 bit
	ChannelConfiguration uint8  // 3 bits: channel config
	Original             bool   // 1 bit
	Home                 bool   // 1 bit

	// Variable header
	CopyrightIDBit         bool   // 1 bit
	CopyrightIDStart       bool   // 1 bit
	AACFrameLength         uint16 // 13 bits: total frame bytes
	ADTSBufferFullness     uint16 // 11 bits: buffer fullness
	NoRawDataBlocksInFrame uint8  // 2 bits: num blocks - 1
}

// HeaderSize returns the ADTS header size in bytes.
// Returns 7 if CRC is absent, 9 if CRC is present.
func (h *ADTSHeader) HeaderSize() int {
	if h.ProtectionAbsent {
		return 7
	}
	return 9
}

// DataSize returns the raw audio data size (frame length minus header).
func (h *ADTSHeader) DataSize() int {
	return int(h.AACFrameLength) - h.HeaderSize()
}

// ParseADTSFixedHeader drives adts_fixed_header(): the 28 bits that
// stay constant across every frame of a constant-parameter stream
// (syncword through the home bit).
//
// Ported from: adts_fixed_header() in ~/dev/faad2/libfaad/syntax.c:2480-2516
func ParseADTSFixedHeader(op *Op, h *ADTSHeader) error {
	op.BeginStruct("adts_fixed_header")
	defer op.EndStruct("adts_fixed_header")

	if op.Kind == Write {
		h.Syncword = ADTSSyncword
	}
	if err := U(op, "syncword", 12, &h.Syncword); err != nil {
		return err
	}
	if op.Kind != Write && h.Syncword != ADTSSyncword {
		return ErrADTSSyncwordNotFound
	}
	if err := U(op, "id", 1, &h.ID); err != nil {
		return err
	}
	if err := U(op, "layer", 2, &h.Layer); err != nil {
		return err
	}
	if err := Bool(op, "protection_absent", &h.ProtectionAbsent); err != nil {
		return err
	}
	if err := U(op, "profile", 2, &h.Profile); err != nil {
		return err
	}
	if err := U(op, "sampling_frequency_index", 4, &h.SFIndex); err != nil {
		return err
	}
	if err := Bool(op, "private_bit", &h.PrivateBit); err != nil {
		return err
	}
	if err := U(op, "channel_configuration", 3, &h.ChannelConfiguration); err != nil {
		return err
	}
	if err := Bool(op, "original_copy", &h.Original); err != nil {
		return err
	}
	if err := Bool(op, "home", &h.Home); err != nil {
		return err
	}
	return nil
}

// ParseADTSVariableHeader drives adts_variable_header(): the 28 bits
// that may change from frame to frame (frame length, buffer fullness,
// block count).
//
// Ported from: adts_variable_header() in ~/dev/faad2/libfaad/syntax.c:2519-2540
func ParseADTSVariableHeader(op *Op, h *ADTSHeader) error {
	op.BeginStruct("adts_variable_header")
	defer op.EndStruct("adts_variable_header")

	if err := Bool(op, "copyright_identification_bit", &h.CopyrightIDBit); err != nil {
		return err
	}
	if err := Bool(op, "copyright_identification_start", &h.CopyrightIDStart); err != nil {
		return err
	}
	if err := U(op, "aac_frame_length", 13, &h.AACFrameLength); err != nil {
		return err
	}
	if err := U(op, "adts_buffer_fullness", 11, &h.ADTSBufferFullness); err != nil {
		return err
	}
	if err := U(op, "number_of_raw_data_blocks_in_frame", 2, &h.NoRawDataBlocksInFrame); err != nil {
		return err
	}
	return nil
}

// ParseADTSErrorCheck drives adts_error_check(): the single crc_check
// present when protection_absent is false and the frame carries exactly
// one raw_data_block.
//
// Ported from: adts_error_check() in ~/dev/faad2/libfaad/syntax.c:2543-2548
func ParseADTSErrorCheck(op *Op, crc *uint16) error {
	op.BeginStruct("adts_error_check")
	defer op.EndStruct("adts_error_check")
	return U(op, "crc_check", 16, crc)
}

// ParseADTSHeaderErrorCheck drives adts_header_error_check(): a
// raw_data_block_position entry per raw data block beyond the first,
// followed by a header-covering crc_check. Used when protection_absent
// is false and the frame carries more than one raw_data_block.
//
// Ported from: adts_header_error_check() in ~/dev/faad2/libfaad/syntax.c:2551-2566
func ParseADTSHeaderErrorCheck(op *Op, numRawDataBlocks uint8, positions *[]uint16, crc *uint16) error {
	op.BeginStruct("adts_header_error_check")
	defer op.EndStruct("adts_header_error_check")

	if op.Kind != Write {
		*positions = make([]uint16, numRawDataBlocks)
	}
	op.BeginArray("raw_data_block_position")
	for i := uint8(0); i < numRawDataBlocks; i++ {
		op.BeginArrayItem()
		err := U(op, "raw_data_block_position", 16, &(*positions)[i])
		op.EndArrayItem()
		if err != nil {
			op.EndArray("raw_data_block_position")
			return err
		}
	}
	op.EndArray("raw_data_block_position")

	return U(op, "crc_check", 16, crc)
}

// ParseADTSRawDataBlockErrorCheck drives
// adts_raw_data_block_error_check(): one crc_check per raw_data_block
// carried in the frame, used alongside adts_header_error_check() when
// more than one block is present.
//
// Ported from: adts_raw_data_block_error_check() in ~/dev/faad2/libfaad/syntax.c:2569-2580
func ParseADTSRawDataBlockErrorCheck(op *Op, numRawDataBlocks uint8, crcs *[]uint16) error {
	op.BeginStruct("adts_raw_data_block_error_check")
	defer op.EndStruct("adts_raw_data_block_error_check")

	n := numRawDataBlocks + 1
	if op.Kind != Write {
		*crcs = make([]uint16, n)
	}
	op.BeginArray("crc_check")
	for i := uint8(0); i < n; i++ {
		op.BeginArrayItem()
		err := U(op, "crc_check", 16, &(*crcs)[i])
		op.EndArrayItem()
		if err != nil {
			op.EndArray("crc_check")
			return err
		}
	}
	op.EndArray("crc_check")
	return nil
}

// ADTSFrameHeader bundles a fully parsed adts_fixed_header() +
// adts_variable_header() plus whichever error-check fields its
// protection_absent/block-count combination carries. It stops short of
// raw_data_block() itself: callers drive that separately (typically via
// streamctx.Reader) once they know the frame's payload length.
type ADTSFrameHeader struct {
	Header               ADTSHeader
	CRC                  uint16
	RawDataBlockPosition []uint16
	RawDataBlockCRC      []uint16
}

// ParseADTSFrameHeader drives the header portion of adts_frame():
// adts_fixed_header(), adts_variable_header(), and whichever
// error-check production applies.
//
// Ported from: adts_frame() header portion in ~/dev/faad2/libfaad/syntax.c:2583-2620
func ParseADTSFrameHeader(op *Op) (*ADTSFrameHeader, error) {
	fh := &ADTSFrameHeader{}

	if err := ParseADTSFixedHeader(op, &fh.Header); err != nil {
		return nil, err
	}
	if err := ParseADTSVariableHeader(op, &fh.Header); err != nil {
		return nil, err
	}
	if !fh.Header.ProtectionAbsent {
		if fh.Header.NoRawDataBlocksInFrame == 0 {
			if err := ParseADTSErrorCheck(op, &fh.CRC); err != nil {
				return nil, err
			}
		} else {
			if err := ParseADTSHeaderErrorCheck(op, fh.Header.NoRawDataBlocksInFrame, &fh.RawDataBlockPosition, &fh.CRC); err != nil {
				return nil, err
			}
		}
	}

	return fh, nil
}
