// Package report renders run reports in text, JSON and HTML form.
package report

import (
	"fmt"

	m "github.com/yksanjo/smart-test-generator/internal/model"
)

// Format identifies a report output format.
type Format string

// Supported report formats.
const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatHTML Format = "html"
)

// Renderer turns a run report into one output document.
type Renderer interface {
	Render(report *m.RunReport) (string, error)
}

// NewRenderer returns the renderer for the requested format.
func NewRenderer(format Format) (Renderer, error) {
	switch format {
	case FormatText:
		return &TextRenderer{}, nil
	case FormatJSON:
		return &JSONRenderer{}, nil
	case FormatHTML:
		return &HTMLRenderer{}, nil
	}

	return nil, fmt.Errorf("unknown report format %q (want text, json or html)", format)
}

// FileName returns the conventional report file name for a format.
func FileName(format Format) string {
	switch format {
	case FormatJSON:
		return "report.json"
	case FormatHTML:
		return "report.html"
	default:
		return "report.txt"
	}
}
