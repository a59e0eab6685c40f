package cmd

import (
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "tickettriage",
	Short: "AI-powered support ticket triage",
	Long: `Ticket Triage classifies incoming support tickets with an LLM, scores
their priority deterministically, and either answers them from live
documentation search or routes them to the right team.`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", ".tickettriage.yml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
