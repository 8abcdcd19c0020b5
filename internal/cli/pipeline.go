// pipeline.go implements the "leadtrack pipeline" command that builds the
// initial contact table.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/leadtrack-dev/leadtrack/internal/config"
	"github.com/leadtrack-dev/leadtrack/internal/logging"
	"github.com/leadtrack-dev/leadtrack/internal/message"
	"github.com/leadtrack-dev/leadtrack/internal/pipeline"
)

var pipelineDataDir string

var pipelineCmd = &cobra.Command{
	Use:   "pipeline",
	Short: "Build the contact table from scratch",
	Long: `Run the upstream pipeline: extract event/company data, generate
contacts, infer outreach channels (currently always LinkedIn) and draft
initial outreach messages. Writes the CSVs the dashboard reads.

Requires OPENAI_API_KEY in the environment or a .env file; without it
contacts are still written, with empty outreach messages.`,
	RunE: runPipeline,
}

func init() {
	pipelineCmd.Flags().StringVar(&pipelineDataDir, "data", "", "Data directory (default from config)")
}

func runPipeline(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(".")
	if err != nil {
		return err
	}
	dataDir := cfg.Data.Dir
	if pipelineDataDir != "" {
		dataDir = pipelineDataDir
	}

	logger := logging.New(cfg.Logging.Level)
	gen := message.NewGenerator(config.APIKey(), cfg.OpenAI.Model)

	return pipeline.New(dataDir, gen, logger).Run(cmd.Context())
}
