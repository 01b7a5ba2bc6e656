package dumpcmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"

	"github.com/llehouerou/go-aac/internal/bitcursor"
	"github.com/llehouerou/go-aac/internal/syntax"
)

func writeSilentADTSFile(t *testing.T, cfg *syntax.RawDataBlockConfig) string {
	t.Helper()

	body, err := syntax.WriteSilentFrame(50, cfg.ChannelConfiguration > 1, cfg)
	if err != nil {
		t.Fatalf("WriteSilentFrame: %v", err)
	}

	headerCursor := bitcursor.NewWriter()
	op := syntax.NewWriteOp(headerCursor)
	h := &syntax.ADTSHeader{
		Syncword:               syntax.ADTSSyncword,
		ProtectionAbsent:       true,
		Profile:                cfg.ObjectType - 1,
		SFIndex:                cfg.SFIndex,
		ChannelConfiguration:   cfg.ChannelConfiguration,
		AACFrameLength:         uint16(7 + len(body)),
		ADTSBufferFullness:     0x7FF,
		NoRawDataBlocksInFrame: 0,
	}
	if err := syntax.ParseADTSFixedHeader(op, h); err != nil {
		t.Fatalf("ParseADTSFixedHeader: %v", err)
	}
	if err := syntax.ParseADTSVariableHeader(op, h); err != nil {
		t.Fatalf("ParseADTSVariableHeader: %v", err)
	}
	if err := op.ByteAlign(); err != nil {
		t.Fatalf("ByteAlign: %v", err)
	}
	headerBytes, err := headerCursor.AcquireBuffer()
	if err != nil {
		t.Fatalf("AcquireBuffer: %v", err)
	}

	path := filepath.Join(t.TempDir(), "frame.aac")
	if err := os.WriteFile(path, append(headerBytes, body...), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestRunDump_HeaderOnly(t *testing.T) {
	cfg := &syntax.RawDataBlockConfig{
		SFIndex:              3,
		ChannelConfiguration: 1,
		ObjectType:           2,
		FrameLength:          1024,
	}
	path := writeSilentADTSFile(t, cfg)

	log := zerolog.Nop()
	if err := runDump(&log, path, false); err != nil {
		t.Fatalf("runDump: %v", err)
	}
}

func TestRunDump_FrameData(t *testing.T) {
	cfg := &syntax.RawDataBlockConfig{
		SFIndex:              3,
		ChannelConfiguration: 1,
		ObjectType:           2,
		FrameLength:          1024,
	}
	path := writeSilentADTSFile(t, cfg)

	log := zerolog.Nop()
	if err := runDump(&log, path, true); err != nil {
		t.Fatalf("runDump: %v", err)
	}
}

func TestRunDump_MissingFile(t *testing.T) {
	log := zerolog.Nop()
	if err := runDump(&log, filepath.Join(t.TempDir(), "missing.aac"), false); err == nil {
		t.Error("runDump with missing file: want error, got nil")
	}
}
