// internal/syntax/dse.go
//
// # Data Stream Element Parsing
//
// Data Stream Elements carry auxiliary data that is not part of the
// audio bitstream; that data is opaque and simply passed through.
//
// Ported from: ~/dev/faad2/libfaad/syntax.c:1080-1107
package syntax

// DSEResult holds the parsed fields of a data_stream_element().
type DSEResult struct {
	ElementInstanceTag uint8
	ByteAligned        bool
	Data               []byte
}

// ParseDataStreamElement drives data_stream_element(): an
// element_instance_tag, an optional byte-alignment point, a
// (possibly extended) byte count, and that many opaque data bytes.
//
// in supplies the content to emit in write mode and to walk in dump
// mode (ElementInstanceTag, ByteAligned, Data); it is ignored in read
// mode and may be nil there.
//
// Ported from: data_stream_element() in ~/dev/faad2/libfaad/syntax.c:1080-1107
func ParseDataStreamElement(op *Op, in *DSEResult) (*DSEResult, error) {
	op.BeginStruct("data_stream_element")
	defer op.EndStruct("data_stream_element")

	res := &DSEResult{}
	if op.Kind != Read {
		res = in
	}

	if err := U(op, "element_instance_tag", 4, &res.ElementInstanceTag); err != nil {
		return nil, err
	}
	if err := Bool(op, "data_byte_align_flag", &res.ByteAligned); err != nil {
		return nil, err
	}

	count := uint8(0)
	if op.Kind != Read {
		n := len(res.Data)
		if n >= 255 {
			count = 255
		} else {
			count = uint8(n)
		}
	}
	if err := U(op, "count", 8, &count); err != nil {
		return nil, err
	}
	total := uint16(count)
	if count == 255 {
		var extra uint8
		if op.Kind != Read {
			extra = uint8(len(res.Data) - 255)
		}
		if err := U(op, "esc_count", 8, &extra); err != nil {
			return nil, err
		}
		total += uint16(extra)
	}

	if res.ByteAligned {
		if err := op.ByteAlign(); err != nil {
			return nil, err
		}
	}

	if op.Kind == Read {
		res.Data = make([]byte, total)
	}
	op.BeginArray("data_stream_byte")
	for i := uint16(0); i < total; i++ {
		op.BeginArrayItem()
		var b uint8
		if op.Kind != Read {
			b = res.Data[i]
		}
		err := U(op, "data_stream_byte", 8, &b)
		if op.Kind == Read {
			res.Data[i] = b
		}
		op.EndArrayItem()
		if err != nil {
			op.EndArray("data_stream_byte")
			return nil, err
		}
	}
	op.EndArray("data_stream_byte")

	return res, nil
}
