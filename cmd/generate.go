package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/yksanjo/smart-test-generator/internal/domain"
	m "github.com/yksanjo/smart-test-generator/internal/model"
	"github.com/yksanjo/smart-test-generator/internal/report"
)

var generateTestTypeFlag []string
var generateRunTestsFlag bool
var generateParallelFlag uint
var generateReportFormatFlag string

// generateCmd represents the generate command.
var generateCmd = newGenerateCmd()

func newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate [paths...]",
		Short: "Analyze Python sources and generate test skeletons",
		Long: `Analyze the given Python files or directories, generate pytest test
skeletons into the output directory, and write a run report next to
them. With --run-tests the generated suite is executed via pytest.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			outputDir := m.Path(viper.GetString(outputFlagName))

			runReport, err := workflow.Generate(ctx, domain.GenerateArgs{
				Sources:   parsePaths(args),
				OutputDir: outputDir,
				TestTypes: testTypes(),
				Recursive: viper.GetBool(recursiveConfigKey),
				RunTests:  viper.GetBool(runTestsConfigKey),
				Threads:   viper.GetUint(parallelConfigKey),
			})
			if err != nil {
				return err
			}

			if err := writeReport(runReport, outputDir); err != nil {
				return err
			}

			if err := ui.DisplayAnalysis(ctx, runReport.Analysis); err != nil {
				return err
			}

			ui.DisplayGeneratedFiles(ctx, runReport.GeneratedTests)

			if runReport.Results != nil {
				ui.DisplayTestResults(ctx, runReport.Results)
			}

			return nil
		},
	}

	configureGenerateFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(generateCmd)
}

func configureGenerateFlags(cmd *cobra.Command) {
	cmd.Flags().StringSliceVarP(&generateTestTypeFlag, testTypeFlagName, "t", []string{viper.GetString(testTypeConfigKey)}, "test types to generate: unit, integration, property or all (can be repeated)")
	bindFlagToConfig(cmd.Flags().Lookup(testTypeFlagName), testTypeConfigKey)

	cmd.Flags().BoolVar(&generateRunTestsFlag, runTestsFlagName, viper.GetBool(runTestsConfigKey), "run the generated tests with pytest after generation")
	bindFlagToConfig(cmd.Flags().Lookup(runTestsFlagName), runTestsConfigKey)

	cmd.Flags().UintVarP(&generateParallelFlag, parallelFlagName, "p", viper.GetUint(parallelConfigKey), "number of parallel analysis workers")
	bindFlagToConfig(cmd.Flags().Lookup(parallelFlagName), parallelConfigKey)

	cmd.Flags().StringVar(&generateReportFormatFlag, reportFormatFlagName, viper.GetString(reportFormatConfigKey), "report output format: text, json or html")
	bindFlagToConfig(cmd.Flags().Lookup(reportFormatFlagName), reportFormatConfigKey)
}

// testTypes normalizes the configured test-type selection.
func testTypes() []string {
	values := viper.GetStringSlice(testTypeConfigKey)

	var types []string

	for _, value := range values {
		for _, part := range strings.Split(value, ",") {
			if part = strings.TrimSpace(part); part != "" {
				types = append(types, part)
			}
		}
	}

	return types
}

// writeReport renders the report in the configured format and writes it
// into the output directory.
func writeReport(runReport *m.RunReport, outputDir m.Path) error {
	format := report.Format(viper.GetString(reportFormatConfigKey))

	renderer, err := report.NewRenderer(format)
	if err != nil {
		return err
	}

	rendered, err := renderer.Render(runReport)
	if err != nil {
		return err
	}

	path := fsAdapter.JoinPath(string(outputDir), report.FileName(format))
	if err := fsAdapter.WriteFileAtomic(path, []byte(rendered), 0o600); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	return nil
}
