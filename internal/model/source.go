// Package model defines the value types shared across the analysis pipeline.
package model

// Path represents a file system path.
type Path string

// SourceUnit is one source file handed to the analyzer. The raw text is
// kept only for the duration of the analysis pass; the derived syntax tree
// is owned by the parser and released once extraction finishes.
type SourceUnit struct {
	Path Path
	Text []byte
}

// SkippedFile records a file that failed to parse and was excluded from the
// batch. Skips are diagnostics, never fatal to the run.
type SkippedFile struct {
	Path   Path   `yaml:"path" json:"path"`
	Reason string `yaml:"reason" json:"reason"`
}
