package cmd

import (
	"github.com/jsphweid/bmsdex/constants"
	"github.com/jsphweid/bmsdex/util"
	"github.com/spf13/cobra"
)

var (
	logLevel  string
	logFormat string
)

var rootCmd = &cobra.Command{
	Use:   "bmsdex",
	Short: "BMS chart and BemaniLZ asset tool",
	Long:  `Reads, rewrites and exports BMS charts, and unpacks BemaniLZ compressed game assets.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		util.SetupLogger(logFormat, logLevel)
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", constants.GetLogLevel(), "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", constants.GetLogFormat(), "log format (console or json)")
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
