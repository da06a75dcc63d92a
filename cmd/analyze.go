package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var analyzeParallelFlag uint

// analyzeCmd represents the analyze command.
var analyzeCmd = newAnalyzeCmd()

func newAnalyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze [paths...]",
		Short: "Analyze Python sources without generating tests",
		Long: `Parse the given Python files or directories and show the structural
summary together with the detected edge cases and failure modes.
Nothing is written to disk.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			analysis, err := workflow.Analyze(
				ctx,
				parsePaths(args),
				viper.GetBool(recursiveConfigKey),
				viper.GetUint(parallelConfigKey),
			)
			if err != nil {
				return err
			}

			return ui.DisplayAnalysis(ctx, analysis)
		},
	}

	cmd.Flags().UintVarP(&analyzeParallelFlag, parallelFlagName, "p", viper.GetUint(parallelConfigKey), "number of parallel analysis workers")
	bindFlagToConfig(cmd.Flags().Lookup(parallelFlagName), parallelConfigKey)

	return cmd
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
}
