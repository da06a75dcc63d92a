// Package cmd provides the root command and CLI setup for the smart test
// generator.
package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/yksanjo/smart-test-generator/internal/adapter"
	"github.com/yksanjo/smart-test-generator/internal/controller"
	"github.com/yksanjo/smart-test-generator/internal/domain"
	m "github.com/yksanjo/smart-test-generator/internal/model"
)

var fsAdapter adapter.SourceFSAdapter
var analysisStore adapter.AnalysisStore
var testAdapter adapter.TestRunnerAdapter
var workflow domain.Workflow
var ui controller.UI

// outputDirFlag is a root-level flag shared by commands that read or
// write the generated test directory.
var outputDirFlag string

// recursiveFlag controls whether directory sources are scanned
// recursively.
var recursiveFlag bool

// verboseFlag raises the log level to debug.
var verboseFlag bool

func init() {
	configureRootFlags(rootCmd)

	// Initialize shared dependencies.
	ui = controller.NewSimpleUI(rootCmd)
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	analysisStore = adapter.NewYAMLAnalysisStore()
	testAdapter = adapter.NewPytestRunnerAdapter()
	workflow = domain.NewWorkflow(fsAdapter, analysisStore, testAdapter, newRunReport)
}

const rootLongDescription = `stg analyzes Python source code and generates pytest test skeletons for
it: unit tests per function and class, integration tests for component
interactions, and property-based tests using Hypothesis.

It also reports the edge cases and likely failure modes it detects so
you know where the generated tests need real assertions first.`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = baseRootCmd()

func baseRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stg",
		Short: "Smart test generator for Python code",
		Long:  rootLongDescription,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(verboseFlag)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().
		StringVarP(
			&outputDirFlag, outputFlagName, "o",
			viper.GetString(outputFlagName),
			"output directory for generated tests and reports",
		)
	bindFlagToConfig(cmd.PersistentFlags().Lookup(outputFlagName), outputFlagName)

	cmd.PersistentFlags().BoolVarP(&recursiveFlag, recursiveFlagName, "r", viper.GetBool(recursiveConfigKey), "scan source directories recursively")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(recursiveFlagName), recursiveConfigKey)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", false, "enable verbose logging")
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func parsePaths(args []string) []m.Path {
	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}

// newRunReport stamps a fresh report with its identity.
func newRunReport() *m.RunReport {
	return &m.RunReport{
		RunID:       uuid.NewString(),
		GeneratedAt: time.Now(),
	}
}
