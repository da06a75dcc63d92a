package controller

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	m "github.com/yksanjo/smart-test-generator/internal/model"
)

// findingsPreview caps how many findings each section of the summary
// shows; the full lists live in the rendered reports.
const findingsPreview = 10

var headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))

// SimpleUI implements UI using cobra Command's output stream. Headers are
// styled only when that stream is a terminal.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplayAnalysis renders the analysis summary tables.
func (s *SimpleUI) DisplayAnalysis(ctx context.Context, analysis *m.AnalysisResult) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.header("Analysis Summary")
	s.printf("\n%s", renderCountsTable(analysis))

	s.displayFindings("Edge Cases", analysis.EdgeCases)
	s.displayFindings("Failure Modes", analysis.FailureModes)

	if len(analysis.Skipped) > 0 {
		s.header("Skipped Files")

		for _, skip := range analysis.Skipped {
			s.printf("  %s: %s\n", skip.Path, skip.Reason)
		}
	}

	return nil
}

func (s *SimpleUI) displayFindings(title string, findings []string) {
	if len(findings) == 0 {
		return
	}

	s.header(fmt.Sprintf("%s (%d)", title, len(findings)))

	shown := findings
	if len(shown) > findingsPreview {
		shown = shown[:findingsPreview]
	}

	for _, finding := range shown {
		s.printf("  - %s\n", finding)
	}

	if rest := len(findings) - len(shown); rest > 0 {
		s.printf("  ... and %d more\n", rest)
	}
}

// DisplayGeneratedFiles lists the test files written by the run.
func (s *SimpleUI) DisplayGeneratedFiles(ctx context.Context, files []string) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.header(fmt.Sprintf("Generated %d test file(s)", len(files)))

	for _, file := range files {
		s.printf("  %s\n", file)
	}
}

// DisplayTestResults renders the pytest outcome.
func (s *SimpleUI) DisplayTestResults(ctx context.Context, results *m.RunResult) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.header("Test Results")
	s.printf("\n%s", renderResultsTable(results))

	if len(results.FailedTests) > 0 {
		s.printf("\nFailed tests:\n")

		for _, test := range results.FailedTests {
			s.printf("  - %s\n", test)
		}
	}
}

func renderCountsTable(analysis *m.AnalysisResult) string {
	var buf bytes.Buffer

	table := tablewriter.NewWriter(&buf)
	table.SetHeader([]string{"Section", "Count"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER})

	table.Append([]string{"Files", fmt.Sprintf("%d", len(analysis.Files))})
	table.Append([]string{"Functions", fmt.Sprintf("%d", len(analysis.Functions))})
	table.Append([]string{"Classes", fmt.Sprintf("%d", len(analysis.Classes))})
	table.Append([]string{"Imports", fmt.Sprintf("%d", len(analysis.Imports))})
	table.Append([]string{"Edge cases", fmt.Sprintf("%d", len(analysis.EdgeCases))})
	table.Append([]string{"Failure modes", fmt.Sprintf("%d", len(analysis.FailureModes))})
	table.Append([]string{"Skipped", fmt.Sprintf("%d", len(analysis.Skipped))})

	table.Render()

	return buf.String()
}

func renderResultsTable(results *m.RunResult) string {
	var buf bytes.Buffer

	table := tablewriter.NewWriter(&buf)
	table.SetHeader([]string{"Outcome", "Count"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER})

	table.Append([]string{"Passed", fmt.Sprintf("%d", results.Passed)})
	table.Append([]string{"Failed", fmt.Sprintf("%d", results.Failed)})
	table.Append([]string{"Skipped", fmt.Sprintf("%d", results.Skipped)})
	table.Append([]string{"Errors", fmt.Sprintf("%d", results.Errors)})
	table.SetFooter([]string{
		fmt.Sprintf("Total (%.2fs)", results.Duration.Seconds()),
		fmt.Sprintf("%d", results.Total),
	})

	table.Render()

	return buf.String()
}

func (s *SimpleUI) header(text string) {
	if isTTY(s.cmd.OutOrStdout()) {
		s.printf("\n%s\n", headerStyle.Render(text))

		return
	}

	s.printf("\n%s\n", text)
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

// isTTY reports whether w is an interactive terminal.
func isTTY(w io.Writer) bool {
	f, ok := w.(*os.File)

	return ok && term.IsTerminal(int(f.Fd()))
}
