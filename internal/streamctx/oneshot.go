// internal/streamctx/oneshot.go
//
// One-shot parse entry points for callers who already know their
// input is exactly one ASC or one ADTS header, with no interest in
// driving the full ReaderFSM.
//
// Ported from: aac_parse_asc() / aac_parse_adts() in
// original_source/src/aac_reader.c
package streamctx

import (
	"github.com/llehouerou/go-aac"
	"github.com/llehouerou/go-aac/internal/bitcursor"
	"github.com/llehouerou/go-aac/internal/syntax"
)

// ParseASC parses exactly one AudioSpecificConfig out of data,
// ignoring any trailing bytes beyond what AudioSpecificConfig()
// itself consumes.
func ParseASC(data []byte) (*aac.AudioSpecificConfig, error) {
	asc, _, err := syntax.ParseASC(data)
	if err != nil {
		return nil, err
	}
	return asc, nil
}

// ParseADTSHeader parses exactly one ADTS fixed+variable header (plus
// its error-check fields, when present) out of data. data need only
// hold the header bytes, not the frame body.
func ParseADTSHeader(data []byte) (*syntax.ADTSHeader, error) {
	op := syntax.NewReadOp(bitcursor.NewReader(data))
	fh, err := syntax.ParseADTSFrameHeader(op)
	if err != nil {
		return nil, err
	}
	return &fh.Header, nil
}
