// internal/syntax/raw_data_block.go
//
// # Raw Data Block Parsing
//
// raw_data_block() is the top-level dispatch loop: it reads a 3-bit
// syntax element id and routes to the matching element production
// until ID_END, in whichever of read/write/dump op is bound to.
//
// Ported from: raw_data_block() in ~/dev/faad2/libfaad/syntax.c:449-648
package syntax

// RawDataBlockConfig holds configuration for raw data block parsing.
// Ported from: raw_data_block() parameters in ~/dev/faad2/libfaad/syntax.c:449-450
type RawDataBlockConfig struct {
	SFIndex              uint8  // Sample rate index (0-11)
	FrameLength          uint16 // Frame length (960 or 1024)
	ObjectType           uint8  // Audio object type
	ChannelConfiguration uint8  // Channel configuration (0-7)
}

// RawDataBlockResult holds every syntax element a raw_data_block()
// carried, grouped by element type, for however many channels it
// described. Write and dump mode walk it in the fixed PCE, SCE/CPE/
// CCE, DSE, FIL order built by writeOrDumpElements, which need not
// match the original bitstream's interleaving — raw_data_block()
// places no ordering constraint on sibling elements beyond a PCE (if
// present) preceding everything else.
type RawDataBlockResult struct {
	SCEs []*SCEResult
	CPEs []*CPEResult
	CCEs []*CCEResult
	DSEs []*DSEResult
	PCEs []*ProgramConfig
	FILs []*FillResult
}

// ParseRawDataBlock drives raw_data_block(): repeatedly read (or, in
// write/dump mode, emit) a 3-bit id_syn_ele and dispatch to the
// matching element production, stopping at ID_END.
//
// in supplies the element list to emit in write mode and to walk in
// dump mode; it is ignored in read mode and may be nil there. Write
// mode can emit every element type this package knows how to encode:
// PCE, DSE, and FIL unconditionally, and SCE/CPE so long as every
// element's channel streams carry MaxSFB == 0 (no scalefactor bands —
// the silent-frame case WriteSilentFrame also relies on). A non-silent
// SCE/CPE, or any CCE, is ErrUnsupported in write mode: this package
// carries no spectral Huffman encoder.
//
// Ported from: raw_data_block() in ~/dev/faad2/libfaad/syntax.c:449-648
func ParseRawDataBlock(op *Op, cfg *RawDataBlockConfig, in *RawDataBlockResult) (*RawDataBlockResult, error) {
	if op.Kind != Read {
		return writeOrDumpElements(op, cfg, in)
	}

	op.BeginStruct("raw_data_block")
	defer op.EndStruct("raw_data_block")

	res := &RawDataBlockResult{}

	op.BeginArray("elements")
	for {
		idVal := uint8(IDEND)
		if err := U(op, "id_syn_ele", 3, &idVal); err != nil {
			op.EndArray("elements")
			return nil, err
		}
		id := ElementID(idVal)
		if id == IDEND {
			break
		}

		op.BeginArrayItem()
		var err error
		switch id {
		case IDSCE, IDLFE:
			var sce *SCEResult
			sce, err = ParseSingleChannelElement(op, &SCEConfig{
				SFIndex: cfg.SFIndex, FrameLength: cfg.FrameLength, ObjectType: cfg.ObjectType,
			}, nil)
			if err == nil {
				res.SCEs = append(res.SCEs, sce)
			}

		case IDCPE:
			var cpe *CPEResult
			cpe, err = ParseChannelPairElement(op, &CPEConfig{
				SFIndex: cfg.SFIndex, FrameLength: cfg.FrameLength, ObjectType: cfg.ObjectType,
			}, nil)
			if err == nil {
				res.CPEs = append(res.CPEs, cpe)
			}

		case IDCCE:
			var cce *CCEResult
			cce, err = ParseCouplingChannelElement(op, &CCEConfig{
				SFIndex: cfg.SFIndex, FrameLength: cfg.FrameLength, ObjectType: cfg.ObjectType,
			}, nil)
			if err == nil {
				res.CCEs = append(res.CCEs, cce)
			}

		case IDDSE:
			var dse *DSEResult
			dse, err = ParseDataStreamElement(op, nil)
			if err == nil {
				res.DSEs = append(res.DSEs, dse)
			}

		case IDPCE:
			var pce *ProgramConfig
			pce, err = ParsePCE(op, nil)
			if err == nil {
				res.PCEs = append(res.PCEs, pce)
			}

		case IDFIL:
			var fil *FillResult
			fil, err = ParseFillElement(op, nil)
			if err == nil {
				res.FILs = append(res.FILs, fil)
			}

		default:
			err = ErrInvalidInput
		}
		op.EndArrayItem()

		if err != nil {
			op.EndArray("elements")
			return nil, err
		}
	}
	op.EndArray("elements")

	if err := op.Cursor.ReadTrailingBits(); err != nil {
		return nil, err
	}

	return res, nil
}

// writeOrDumpElements drives raw_data_block() for write and dump mode:
// it iterates in's element slices in a fixed canonical order, emitting
// (or, in dump mode, re-describing) one id_syn_ele plus the matching
// element production per entry, then a terminating ID_END.
func writeOrDumpElements(op *Op, cfg *RawDataBlockConfig, in *RawDataBlockResult) (*RawDataBlockResult, error) {
	op.BeginStruct("raw_data_block")
	defer op.EndStruct("raw_data_block")

	if in == nil {
		in = &RawDataBlockResult{}
	}

	sceCfg := &SCEConfig{SFIndex: cfg.SFIndex, FrameLength: cfg.FrameLength, ObjectType: cfg.ObjectType}
	cpeCfg := &CPEConfig{SFIndex: cfg.SFIndex, FrameLength: cfg.FrameLength, ObjectType: cfg.ObjectType}
	cceCfg := &CCEConfig{SFIndex: cfg.SFIndex, FrameLength: cfg.FrameLength, ObjectType: cfg.ObjectType}

	op.BeginArray("elements")

	for _, pce := range in.PCEs {
		if err := writeElement(op, IDPCE, func() error {
			_, err := ParsePCE(op, pce)
			return err
		}); err != nil {
			op.EndArray("elements")
			return nil, err
		}
	}

	for _, sce := range in.SCEs {
		if err := writeElement(op, IDSCE, func() error {
			_, err := ParseSingleChannelElement(op, sceCfg, sce)
			return err
		}); err != nil {
			op.EndArray("elements")
			return nil, err
		}
	}

	for _, cpe := range in.CPEs {
		if err := writeElement(op, IDCPE, func() error {
			_, err := ParseChannelPairElement(op, cpeCfg, cpe)
			return err
		}); err != nil {
			op.EndArray("elements")
			return nil, err
		}
	}

	for _, cce := range in.CCEs {
		if err := writeElement(op, IDCCE, func() error {
			_, err := ParseCouplingChannelElement(op, cceCfg, cce)
			return err
		}); err != nil {
			op.EndArray("elements")
			return nil, err
		}
	}

	for _, dse := range in.DSEs {
		if err := writeElement(op, IDDSE, func() error {
			_, err := ParseDataStreamElement(op, dse)
			return err
		}); err != nil {
			op.EndArray("elements")
			return nil, err
		}
	}

	for _, fil := range in.FILs {
		if err := writeElement(op, IDFIL, func() error {
			_, err := ParseFillElement(op, fil)
			return err
		}); err != nil {
			op.EndArray("elements")
			return nil, err
		}
	}

	op.EndArray("elements")

	idEnd := uint8(IDEND)
	if err := U(op, "id_syn_ele", 3, &idEnd); err != nil {
		return nil, err
	}
	if op.Kind == Write {
		if err := op.Cursor.WriteTrailingBits(); err != nil {
			return nil, err
		}
	}

	return in, nil
}

// writeElement emits one array item's id_syn_ele (set to id) followed
// by whatever element production fn drives.
func writeElement(op *Op, id ElementID, fn func() error) error {
	op.BeginArrayItem()
	defer op.EndArrayItem()

	idVal := uint8(id)
	if err := U(op, "id_syn_ele", 3, &idVal); err != nil {
		return err
	}
	return fn()
}
