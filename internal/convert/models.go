package convert

import (
	"github.com/nberkley/docs-mirror/pkg/catalog"
)

// Pipeline stages, recorded on failed results and in the run history.
const (
	StageFetch   = "fetch"
	StageExtract = "extract"
	StageRender  = "render"
	StageWrite   = "write"
)

// Result holds the outcome of converting a single catalog entry. A failed
// entry carries the stage that broke and the error; it never aborts the run.
type Result struct {
	Entry     catalog.Entry
	URL       string
	FilePath  string
	SizeBytes int64
	Language  string
	Stage     string
	Err       error
}

// Outcome aggregates a full run.
type Outcome struct {
	Results    []Result
	Successful int
	Failed     int
}

// RunSummary is the run-summary.yaml document written at the output root.
type RunSummary struct {
	StartedAt  string        `yaml:"started_at"`
	BaseURL    string        `yaml:"base_url"`
	OutputDir  string        `yaml:"output_dir"`
	Total      int           `yaml:"total"`
	Successful int           `yaml:"successful"`
	Failed     int           `yaml:"failed"`
	Pages      []PageSummary `yaml:"pages"`
}

// PageSummary is one run-summary entry.
type PageSummary struct {
	Path      string `yaml:"path"`
	Status    string `yaml:"status"`
	FilePath  string `yaml:"file_path,omitempty"`
	SizeBytes int64  `yaml:"size_bytes,omitempty"`
	Language  string `yaml:"language,omitempty"`
	Stage     string `yaml:"stage,omitempty"`
	Error     string `yaml:"error,omitempty"`
}
