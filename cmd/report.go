package cmd

import (
	"fmt"

	"github.com/jsphweid/bmsdex/util"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var reportMax int

func init() {
	reportCmd.Flags().IntVar(&reportMax, "max", 0, "only look at the first n charts (0 for all)")
	rootCmd.AddCommand(reportCmd)
}

var reportCmd = &cobra.Command{
	Use:   "report <dir>",
	Short: "Creates a report",
	Long:  `Walks a directory for BMS charts and reports note and measure counts.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := analyzeCharts(args[0], reportMax)
		if err != nil {
			return err
		}
		printReport(r)
		return nil
	},
}

type chartReport struct {
	path     string
	measures int
	notes1P  int
	notes2P  int
	entries  int
}

type chartsReport struct {
	charts   []chartReport
	skipped  int
	measures []int
	entries  []int
	notes    []int
}

func analyzeCharts(dir string, maxNum int) (chartsReport, error) {
	var report chartsReport

	paths, err := util.GatherAllChartPaths(dir, maxNum)
	if err != nil {
		return report, err
	}

	for i, path := range paths {
		log.Debug().Msgf("Processing %v of %v charts", i+1, len(paths))
		chart, err := readChartFile(path)
		if err != nil {
			log.Warn().Err(err).Str("chart", path).Msg("skipping chart")
			report.skipped += 1
			continue
		}
		cr := chartReport{
			path:     path,
			measures: chart.Measures(),
			notes1P:  chart.NoteCount(1),
			notes2P:  chart.NoteCount(2),
			entries:  len(chart.Entries),
		}
		report.charts = append(report.charts, cr)
		report.measures = append(report.measures, cr.measures)
		report.entries = append(report.entries, cr.entries)
		report.notes = append(report.notes, cr.notes1P+cr.notes2P)
	}
	return report, nil
}

func printReport(report chartsReport) {
	for _, c := range report.charts {
		fmt.Printf("%v: measures=%v 1P=%v 2P=%v entries=%v\n", c.path, c.measures, c.notes1P, c.notes2P, c.entries)
	}
	fmt.Printf("charts: %v\n", len(report.charts))
	fmt.Printf("skipped: %v\n", report.skipped)
	fmt.Printf("total measures: %v\n", util.Sum(report.measures))
	fmt.Printf("total notes: %v\n", util.Sum(report.notes))
	fmt.Printf("total entries: %v\n", util.Sum(report.entries))
}
