// internal/syntax/raw_data_block_write_dump_test.go
package syntax

import (
	"testing"

	"github.com/llehouerou/go-aac/internal/bitcursor"
	"github.com/llehouerou/go-aac/internal/dumpsink"
)

func rawDataBlockTestConfig() *RawDataBlockConfig {
	return &RawDataBlockConfig{
		SFIndex:              4,
		FrameLength:          1024,
		ObjectType:           ObjectTypeLC,
		ChannelConfiguration: 1,
	}
}

// TestParseRawDataBlock_WriteNonSpectralElements writes a PCE, a DSE
// and a FIL element back to bits and reads the result back, covering
// the non-spectral write-direction element-list iteration.
func TestParseRawDataBlock_WriteNonSpectralElements(t *testing.T) {
	in := &RawDataBlockResult{
		PCEs: []*ProgramConfig{
			{ElementInstanceTag: 3, ObjectType: ObjectTypeLC, SFIndex: 4},
		},
		DSEs: []*DSEResult{
			{ElementInstanceTag: 1, Data: []byte{0xAA, 0xBB, 0xCC}},
		},
		FILs: []*FillResult{
			{Count: 0},
		},
	}

	c := bitcursor.NewWriter()
	op := NewWriteOp(c)
	cfg := rawDataBlockTestConfig()
	if _, err := ParseRawDataBlock(op, cfg, in); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := op.ByteAlign(); err != nil {
		t.Fatalf("ByteAlign: %v", err)
	}

	out, err := c.AcquireBuffer()
	if err != nil {
		t.Fatalf("AcquireBuffer: %v", err)
	}

	rc := bitcursor.NewReader(out)
	rop := NewReadOp(rc)
	got, err := ParseRawDataBlock(rop, cfg, nil)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}

	if len(got.PCEs) != 1 || got.PCEs[0].ElementInstanceTag != 3 {
		t.Fatalf("PCEs = %+v, want one element with tag 3", got.PCEs)
	}
	if len(got.DSEs) != 1 || string(got.DSEs[0].Data) != string([]byte{0xAA, 0xBB, 0xCC}) {
		t.Fatalf("DSEs = %+v, want one element carrying {0xAA,0xBB,0xCC}", got.DSEs)
	}
	if len(got.FILs) != 1 {
		t.Fatalf("FILs = %+v, want one element", got.FILs)
	}
}

// TestParseRawDataBlock_DumpWalksElements verifies that dump mode,
// driven from an already Read-parsed RawDataBlockResult, actually
// emits an event per element instead of terminating immediately.
func TestParseRawDataBlock_DumpWalksElements(t *testing.T) {
	cfg := rawDataBlockTestConfig()
	body, err := WriteSilentFrame(64, false, cfg)
	if err != nil {
		t.Fatalf("WriteSilentFrame: %v", err)
	}

	rc := bitcursor.NewReader(body)
	rop := NewReadOp(rc)
	res, err := ParseRawDataBlock(rop, cfg, nil)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(res.SCEs) != 1 {
		t.Fatalf("SCEs = %d, want 1", len(res.SCEs))
	}

	sink := dumpsink.NewJSON()
	dop := NewDumpOp(sink)
	if _, err := ParseRawDataBlock(dop, cfg, res); err != nil {
		t.Fatalf("dump: %v", err)
	}

	obj, ok := sink.Object().(map[string]any)
	if !ok {
		t.Fatalf("Object() = %T, want map[string]any", sink.Object())
	}
	elements, ok := obj["elements"].([]any)
	if !ok || len(elements) == 0 {
		t.Fatalf("elements = %#v, want a non-empty array", obj["elements"])
	}
}
