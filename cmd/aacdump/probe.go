package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/llehouerou/go-aac/internal/streamctx"
)

// probeCmd prints a one-line human-readable summary per ADTS frame
// found in a file, driven by streamctx.Reader rather than dumpcmd's
// direct per-frame header parse.
func probeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "probe <file>",
		Short: "Print one summary line per ADTS frame",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProbe(args[0])
		},
	}
}

func runProbe(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	ctx := streamctx.NewContext()
	r := streamctx.NewReader(ctx, streamctx.ReaderFlags{FrameData: false})

	count := 0
	r.OnBegin = func(_ *streamctx.Context, _ []byte, length int, h *streamctx.FrameHeader, _ any) {
		count++
		if h == nil || h.ADTS == nil {
			fmt.Printf("frame %d: %d bytes (raw)\n", count, length)
			return
		}
		hdr := h.ADTS.Header
		fmt.Printf("frame %d: %d bytes, object_type=%d sfindex=%d channels=%d\n",
			count, length, hdr.Profile+1, hdr.SFIndex, hdr.ChannelConfiguration)
	}

	offset := 0
	for offset < len(data) {
		n, err := r.Parse(data[offset:])
		if err == streamctx.ErrNeedMoreData {
			break
		}
		if err != nil {
			return fmt.Errorf("probe at byte %d: %w", offset, err)
		}
		offset += n
	}

	fmt.Printf("%d frame(s)\n", count)
	return nil
}

// ascCmd parses a bare AudioSpecificConfig (as carried out-of-band in
// an MP4 esds box, with no ADTS/raw framing around it) and prints its
// fields, exercising streamctx's one-shot ParseASC entry point.
func ascCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "asc <file>",
		Short: "Parse a bare AudioSpecificConfig and print its fields",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read %s: %w", args[0], err)
			}
			asc, err := streamctx.ParseASC(data)
			if err != nil {
				return fmt.Errorf("parse ASC: %w", err)
			}
			fmt.Printf("object_type_index=%d sampling_frequency_index=%d sampling_frequency=%d channels_configuration=%d frame_length_flag=%t\n",
				asc.ObjectTypeIndex, asc.SamplingFrequencyIndex, asc.SamplingFrequency, asc.ChannelsConfiguration, asc.FrameLengthFlag)
			return nil
		},
	}
}
