package report

import (
	"fmt"
	"html/template"
	"strings"
	"time"

	m "github.com/yksanjo/smart-test-generator/internal/model"
)

// HTMLRenderer produces the standalone HTML report.
type HTMLRenderer struct{}

type htmlData struct {
	Timestamp    string
	Files        int
	Functions    int
	Classes      int
	EdgeCases    int
	FailureModes int
	Generated    []string
	Results      *m.RunResult
}

var htmlTemplate = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Smart Test Generator Report</title>
    <style>
        body {
            font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif;
            max-width: 1200px;
            margin: 0 auto;
            padding: 20px;
            background: #f5f5f5;
        }
        .header {
            background: linear-gradient(135deg, #667eea 0%, #764ba2 100%);
            color: white;
            padding: 30px;
            border-radius: 10px;
            margin-bottom: 20px;
        }
        .section {
            background: white;
            padding: 20px;
            border-radius: 10px;
            margin-bottom: 20px;
            box-shadow: 0 2px 4px rgba(0,0,0,0.1);
        }
        .stat {
            display: inline-block;
            background: #e8f4f8;
            padding: 15px 25px;
            border-radius: 8px;
            margin: 10px 10px 10px 0;
        }
        .stat-value {
            font-size: 24px;
            font-weight: bold;
            color: #667eea;
        }
        .stat-label {
            color: #666;
            font-size: 14px;
        }
        .test-pass {
            color: #10b981;
        }
        .test-fail {
            color: #ef4444;
        }
        ul {
            list-style-type: none;
            padding-left: 0;
        }
        li {
            padding: 8px 0;
            border-bottom: 1px solid #eee;
        }
    </style>
</head>
<body>
    <div class="header">
        <h1>🚀 Smart Test Generator Report</h1>
        <p>Generated: {{.Timestamp}}</p>
    </div>

    <div class="section">
        <h2>📊 Analysis Summary</h2>
        <div class="stat">
            <div class="stat-value">{{.Files}}</div>
            <div class="stat-label">Files Analyzed</div>
        </div>
        <div class="stat">
            <div class="stat-value">{{.Functions}}</div>
            <div class="stat-label">Functions</div>
        </div>
        <div class="stat">
            <div class="stat-value">{{.Classes}}</div>
            <div class="stat-label">Classes</div>
        </div>
        <div class="stat">
            <div class="stat-value">{{.EdgeCases}}</div>
            <div class="stat-label">Edge Cases</div>
        </div>
        <div class="stat">
            <div class="stat-value">{{.FailureModes}}</div>
            <div class="stat-label">Failure Modes</div>
        </div>
    </div>

    <div class="section">
        <h2>📝 Generated Tests</h2>
        <p>Total: {{len .Generated}} tests</p>
        <ul>
{{- range .Generated}}
            <li>📄 {{.}}</li>
{{- end}}
        </ul>
    </div>
{{- if .Results}}
    <div class="section">
        <h2>🧪 Test Results</h2>
        <div class="stat">
            <div class="stat-value test-pass">{{.Results.Passed}}</div>
            <div class="stat-label">Passed</div>
        </div>
        <div class="stat">
            <div class="stat-value test-fail">{{.Results.Failed}}</div>
            <div class="stat-label">Failed</div>
        </div>
        <div class="stat">
            <div class="stat-value">{{.Results.Skipped}}</div>
            <div class="stat-label">Skipped</div>
        </div>
    </div>
{{- end}}
</body>
</html>`))

func (r *HTMLRenderer) Render(report *m.RunReport) (string, error) {
	data := htmlData{
		Timestamp:    report.GeneratedAt.Format(time.RFC3339),
		Files:        len(report.Analysis.Files),
		Functions:    len(report.Analysis.Functions),
		Classes:      len(report.Analysis.Classes),
		EdgeCases:    len(report.Analysis.EdgeCases),
		FailureModes: len(report.Analysis.FailureModes),
		Generated:    report.GeneratedTests,
		Results:      report.Results,
	}

	var buf strings.Builder
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render html report: %w", err)
	}

	return buf.String(), nil
}
