// Package dumpcmd implements aacdump's "dump" subcommand: read an
// ADTS file frame by frame and print each frame's syntax tree as
// JSON.
package dumpcmd

import (
	"fmt"
	"os"

	gojson "github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/llehouerou/go-aac/internal/bitcursor"
	"github.com/llehouerou/go-aac/internal/dumpsink"
	"github.com/llehouerou/go-aac/internal/syntax"
)

// New builds the "dump" cobra command. log is shared with the root
// command for startup/error diagnostics.
func New(log *zerolog.Logger) *cobra.Command {
	var frameData bool

	cmd := &cobra.Command{
		Use:   "dump <file>",
		Short: "Print each ADTS frame's syntax tree as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDump(log, args[0], frameData)
		},
	}

	cmd.Flags().BoolVar(&frameData, "frame-data", false, "expand raw_data_block() into the output as a field-event dump")

	return cmd
}

// frame is one ADTS frame's JSON rendering. Both the header and, when
// --frame-data is set, the raw_data_block body go through the real
// SyntaxEngine dump path (field events → dumpsink.JSON): each is first
// read-parsed, then re-driven in dump mode against the already
// populated result, so the JSON reflects the event stream a consumer
// of the dump sink would see rather than a direct struct marshal.
type frame struct {
	Index      int    `json:"index"`
	Header     any    `json:"adts_header"`
	RawDataBlk any    `json:"raw_data_block,omitempty"`
	Error      string `json:"error,omitempty"`
}

func runDump(log *zerolog.Logger, path string, frameData bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	var frames []frame
	offset := 0
	for idx := 0; offset < len(data); idx++ {
		buf := data[offset:]
		if len(buf) < 7 || buf[0] != 0xFF || buf[1]&0xF0 != 0xF0 {
			if offset == 0 {
				return fmt.Errorf("%s: no ADTS syncword at start of file", path)
			}
			break
		}

		c := bitcursor.NewReader(buf)
		op := syntax.NewReadOp(c)
		fh, err := syntax.ParseADTSFrameHeader(op)
		if err != nil {
			log.Error().Int("frame", idx).Err(err).Msg("parse ADTS header")
			frames = append(frames, frame{Index: idx, Error: err.Error()})
			break
		}

		headerSink := dumpsink.NewJSON()
		dumpOp := syntax.NewDumpOp(headerSink)
		dumpOp.BeginStruct("adts_header")
		if err := syntax.ParseADTSFixedHeader(dumpOp, &fh.Header); err != nil {
			return fmt.Errorf("dump frame %d header: %w", idx, err)
		}
		if err := syntax.ParseADTSVariableHeader(dumpOp, &fh.Header); err != nil {
			return fmt.Errorf("dump frame %d header: %w", idx, err)
		}
		dumpOp.EndStruct("adts_header")

		fr := frame{Index: idx, Header: headerSink.Object()}

		total := int(fh.Header.AACFrameLength)
		if total <= fh.Header.HeaderSize() || total > len(buf) {
			log.Warn().Int("frame", idx).Int("aac_frame_length", total).Msg("truncated frame, stopping")
			frames = append(frames, fr)
			break
		}

		if frameData {
			body := buf[fh.Header.HeaderSize():total]
			bc := bitcursor.NewReader(body)
			rop := syntax.NewReadOp(bc)
			cfg := &syntax.RawDataBlockConfig{
				SFIndex:              fh.Header.SFIndex,
				ChannelConfiguration: fh.Header.ChannelConfiguration,
				ObjectType:           fh.Header.Profile + 1,
				FrameLength:          1024,
			}
			res, err := syntax.ParseRawDataBlock(rop, cfg, nil)
			if err != nil {
				log.Warn().Int("frame", idx).Err(err).Msg("raw_data_block parse failed")
				fr.Error = err.Error()
			} else {
				bodySink := dumpsink.NewJSON()
				bodyDumpOp := syntax.NewDumpOp(bodySink)
				if _, err := syntax.ParseRawDataBlock(bodyDumpOp, cfg, res); err != nil {
					log.Warn().Int("frame", idx).Err(err).Msg("raw_data_block dump failed")
					fr.Error = err.Error()
				} else {
					fr.RawDataBlk = bodySink.Object()
				}
			}
		}

		frames = append(frames, fr)
		offset += total
	}

	out, err := gojson.MarshalIndent(frames, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	_, err = os.Stdout.Write(out)
	if err == nil {
		fmt.Println()
	}
	return err
}
