package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rpatodia/tickettriage/internal/config"
	"github.com/rpatodia/tickettriage/internal/pipeline"
	"github.com/rpatodia/tickettriage/internal/progress"
	"github.com/rpatodia/tickettriage/internal/ticket"
)

var batchOutput string

var batchCmd = &cobra.Command{
	Use:   "batch <file>",
	Short: "Analyze a batch of tickets from a JSON or YAML file",
	Long: `Reads an array of tickets from a file, runs each through the triage
pipeline sequentially, and writes the results as a JSON array.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		tickets, err := ticket.LoadFile(args[0])
		if err != nil {
			return err
		}
		if len(tickets) == 0 {
			return fmt.Errorf("%s contains no tickets", args[0])
		}

		p, err := buildPipeline(cfg)
		if err != nil {
			return err
		}

		type batchResult struct {
			TicketID string           `json:"ticket_id"`
			Subject  string           `json:"subject,omitempty"`
			Error    string           `json:"error,omitempty"`
			Result   *pipeline.Result `json:"result,omitempty"`
		}

		reporter := progress.NewReporter()
		reporter.Start(len(tickets))

		results := make([]batchResult, 0, len(tickets))
		for i, t := range tickets {
			reporter.Update(i+1, t.Subject)

			br := batchResult{TicketID: t.ID.String(), Subject: t.Subject}
			result, err := p.Process(cmd.Context(), t)
			if err != nil {
				br.Error = err.Error()
			} else {
				br.Result = result
			}
			results = append(results, br)
		}
		reporter.Finish()

		out := os.Stdout
		if batchOutput != "" {
			f, err := os.Create(batchOutput)
			if err != nil {
				return fmt.Errorf("creating %s: %w", batchOutput, err)
			}
			defer f.Close()
			out = f
		}

		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	},
}

func init() {
	batchCmd.Flags().StringVarP(&batchOutput, "output", "o", "", "write results to a file instead of stdout")
	rootCmd.AddCommand(batchCmd)
}
