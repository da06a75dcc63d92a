package report

import (
	"fmt"
	"strings"
	"time"

	m "github.com/yksanjo/smart-test-generator/internal/model"
)

// findingsLimit caps the findings listed per section in the text report.
const findingsLimit = 10

var (
	heavyRule = strings.Repeat("=", 70)
	lightRule = strings.Repeat("-", 70)
)

// TextRenderer produces the plain-text report.
type TextRenderer struct{}

func (r *TextRenderer) Render(report *m.RunReport) (string, error) {
	analysis := report.Analysis

	lines := []string{
		heavyRule,
		"SMART TEST GENERATOR REPORT",
		heavyRule,
		fmt.Sprintf("Run ID: %s", report.RunID),
		fmt.Sprintf("Generated: %s", report.GeneratedAt.Format(time.RFC3339)),
		"",
		lightRule,
		"CODE ANALYSIS SUMMARY",
		lightRule,
		fmt.Sprintf("Files analyzed: %d", len(analysis.Files)),
		fmt.Sprintf("Functions found: %d", len(analysis.Functions)),
		fmt.Sprintf("Classes found: %d", len(analysis.Classes)),
		fmt.Sprintf("Edge cases detected: %d", len(analysis.EdgeCases)),
		fmt.Sprintf("Failure modes detected: %d", len(analysis.FailureModes)),
		"",
	}

	lines = append(lines, findingsSection("DETECTED EDGE CASES", analysis.EdgeCases)...)
	lines = append(lines, findingsSection("DETECTED FAILURE MODES", analysis.FailureModes)...)

	lines = append(lines,
		lightRule,
		"GENERATED TESTS",
		lightRule,
		fmt.Sprintf("Total tests generated: %d", len(report.GeneratedTests)))

	for _, file := range report.GeneratedTests {
		lines = append(lines, fmt.Sprintf("  • %s", file))
	}

	lines = append(lines, "")

	if report.Results != nil {
		lines = append(lines,
			lightRule,
			"TEST EXECUTION RESULTS",
			lightRule,
			fmt.Sprintf("Tests passed: %d", report.Results.Passed),
			fmt.Sprintf("Tests failed: %d", report.Results.Failed),
			fmt.Sprintf("Tests skipped: %d", report.Results.Skipped))

		if len(report.Results.FailedTests) > 0 {
			lines = append(lines, "", "Failed Tests:")

			for _, failed := range report.Results.FailedTests {
				lines = append(lines, fmt.Sprintf("  ❌ %s", failed))
			}
		}
	}

	lines = append(lines, "", heavyRule, "END OF REPORT", heavyRule)

	return strings.Join(lines, "\n"), nil
}

func findingsSection(title string, findings []string) []string {
	if len(findings) == 0 {
		return nil
	}

	lines := []string{lightRule, title, lightRule}

	shown := findings
	if len(shown) > findingsLimit {
		shown = shown[:findingsLimit]
	}

	for _, finding := range shown {
		lines = append(lines, fmt.Sprintf("  • %s", finding))
	}

	if rest := len(findings) - len(shown); rest > 0 {
		lines = append(lines, fmt.Sprintf("  ... and %d more", rest))
	}

	return append(lines, "")
}
