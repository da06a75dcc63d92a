package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/yksanjo/smart-test-generator/internal/domain"
	m "github.com/yksanjo/smart-test-generator/internal/model"
)

// viewCmd represents the view command.
var viewCmd = newViewCmd()

func newViewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "view",
		Short: "View the analysis from a previous generation run",
		Long:  "Load the analysis persisted by a previous generate run from the output directory and display it.",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			outputDir := m.Path(viper.GetString(outputFlagName))
			path := fsAdapter.JoinPath(string(outputDir), domain.AnalysisFileName)

			analysis, err := analysisStore.LoadAnalysis(path)
			if err != nil {
				return err
			}

			return ui.DisplayAnalysis(cmd.Context(), analysis)
		},
	}
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
