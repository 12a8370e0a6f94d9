package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile   string
	outputFmt string
	topN      int
	parallel  int
)

// rootCmd analyzes the given files (or stdin) when called without a
// subcommand.
var rootCmd = &cobra.Command{
	Use:   "loglens [files...]",
	Short: "Loglens — compact statistical log summaries",
	Long: `Loglens reads one or more plain-text log files (glob patterns allowed)
or standard input and prints a compact summary: total line count, counts
per severity level, the observed time span, counts per source tag, and
the most frequent normalized messages.

Examples:
  loglens /var/log/app.log
  loglens "/var/log/**/*.log" --format json
  cat app.log | loglens --top 10`,
	Version: "0.1.0",
	Args:    cobra.ArbitraryArgs,
	RunE:    runAnalyze,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default: $HOME/.loglens.yaml)")
	rootCmd.PersistentFlags().StringVarP(&outputFmt, "format", "f", "text", "output format: text, json")
	rootCmd.PersistentFlags().IntVarP(&topN, "top", "n", 5, "number of top messages to display")
	rootCmd.Flags().IntVarP(&parallel, "parallel", "p", 1, "number of files to aggregate concurrently")
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigName(".loglens")
		viper.SetConfigType("yaml")
	}

	viper.AutomaticEnv()
	_ = viper.ReadInConfig()
}
