package cmd

import (
	"github.com/spf13/cobra"

	"github.com/rpatodia/tickettriage/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize tickettriage configuration with an interactive wizard",
	Long:  `Runs an interactive wizard to configure the triage pipeline and generates a .tickettriage.yml file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := config.RunWizard(cfgFile)
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
