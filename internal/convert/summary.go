package convert

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/nberkley/docs-mirror/pkg/storage"
)

// SummaryFileName sits next to README.md at the output root.
const SummaryFileName = "run-summary.yaml"

// BuildSummary flattens a run outcome into the YAML summary document.
func BuildSummary(startedAt time.Time, baseURL string, s *storage.Storage, outcome *Outcome) RunSummary {
	summary := RunSummary{
		StartedAt:  startedAt.UTC().Format(time.RFC3339),
		BaseURL:    baseURL,
		OutputDir:  s.Root(),
		Total:      len(outcome.Results),
		Successful: outcome.Successful,
		Failed:     outcome.Failed,
	}

	for _, r := range outcome.Results {
		page := PageSummary{
			Path: r.Entry.Path,
		}
		if r.Err != nil {
			page.Status = "failed"
			page.Stage = r.Stage
			page.Error = r.Err.Error()
		} else {
			page.Status = "success"
			page.FilePath = r.FilePath
			page.SizeBytes = r.SizeBytes
			page.Language = r.Language
		}
		summary.Pages = append(summary.Pages, page)
	}

	return summary
}

// WriteSummary saves the run summary at the output root.
func WriteSummary(s *storage.Storage, summary RunSummary) error {
	data, err := yaml.Marshal(summary)
	if err != nil {
		return fmt.Errorf("failed to marshal run summary: %w", err)
	}
	if err := s.SaveFile(SummaryFileName, data); err != nil {
		return fmt.Errorf("failed to save run summary: %w", err)
	}
	return nil
}
