package cmd

import (
	"github.com/jsphweid/bmsdex/midi"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(exportMidiCmd)
}

var exportMidiCmd = &cobra.Command{
	Use:   "export-midi <chart> <out.mid>",
	Short: "Exports a chart as MIDI",
	Long:  `Renders the tempo changes and playable notes of a BMS chart to a Standard MIDI File.`,
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return exportMidi(args[0], args[1])
	},
}

func exportMidi(in string, out string) error {
	chart, err := readChartFile(in)
	if err != nil {
		return err
	}
	if err := midi.WriteChartFile(out, chart); err != nil {
		return err
	}
	log.Info().Str("in", in).Str("out", out).Msg("exported midi")
	return nil
}
