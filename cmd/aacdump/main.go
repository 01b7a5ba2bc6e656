// Command aacdump is a thin reference CLI over the aac bitstream
// toolkit: it reads an ADTS file and prints the parsed syntax tree as
// JSON, or a one-line summary per frame. It is illustrative, not part
// of the core library's API surface — cmd/aacdump is the only place
// in this module that imports a logging or flag-parsing library.
package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/llehouerou/go-aac/cmd/aacdump/internal/dumpcmd"
)

var log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

func main() {
	root := &cobra.Command{
		Use:   "aacdump",
		Short: "Inspect AAC bitstreams (ADTS/ASC/raw_data_block) as JSON",
	}

	root.AddCommand(dumpcmd.New(&log), probeCmd(), ascCmd())

	if err := root.Execute(); err != nil {
		log.Error().Err(err).Msg("aacdump failed")
		os.Exit(1)
	}
}
