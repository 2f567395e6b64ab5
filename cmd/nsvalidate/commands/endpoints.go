package commands

import (
	"github.com/spf13/cobra"

	"github.com/thoreinstein/nsvalidate/internal/checklist"
	"github.com/thoreinstein/nsvalidate/internal/validator"
)

func init() {
	rootCmd.AddCommand(endpointsCmd)
}

var endpointsCmd = &cobra.Command{
	Use:   "endpoints",
	Short: "Print the API endpoints summary",
	Long: `Print the summary of API endpoints a Nightscout API backend serves.

The list is informational; no endpoint is contacted.`,
	Example: `  nsvalidate endpoints
  nsvalidate endpoints --json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if quiet {
			return nil
		}
		format := validator.FormatText
		if jsonOutput {
			format = validator.FormatJSON
		}
		return validator.NewReporter(cmd.OutOrStdout(), format).ReportEndpoints(checklist.Endpoints())
	},
}
