package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rpatodia/tickettriage/internal/config"
	"github.com/rpatodia/tickettriage/internal/ticket"
)

var analyzeSubject string

var analyzeCmd = &cobra.Command{
	Use:   "analyze <text>",
	Short: "Analyze a single support ticket",
	Long:  `Runs one ticket through the full triage pipeline and prints the result as JSON.`,
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		p, err := buildPipeline(cfg)
		if err != nil {
			return err
		}

		t := ticket.New(analyzeSubject, strings.Join(args, " "), "")
		result, err := p.Process(cmd.Context(), t)
		if err != nil {
			return err
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	},
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeSubject, "subject", "", "ticket subject line")
	rootCmd.AddCommand(analyzeCmd)
}
