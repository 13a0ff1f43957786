package cmd

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(convertCmd)
}

var convertCmd = &cobra.Command{
	Use:   "convert <in> <out>",
	Short: "Rewrites a chart",
	Long:  `Reads a BMS chart and writes it back out with minimal-resolution note lines.`,
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return convert(args[0], args[1])
	},
}

func convert(in string, out string) error {
	chart, err := readChartFile(in)
	if err != nil {
		return err
	}
	if err := writeChartFile(out, chart); err != nil {
		return err
	}
	log.Info().Str("in", in).Str("out", out).Int("entries", len(chart.Entries)).Msg("converted chart")
	return nil
}
