package convert

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/nberkley/docs-mirror/pkg/catalog"
	"github.com/nberkley/docs-mirror/pkg/extractor"
	"github.com/nberkley/docs-mirror/pkg/fetcher"
	"github.com/nberkley/docs-mirror/pkg/index"
	"github.com/nberkley/docs-mirror/pkg/renderer"
	"github.com/nberkley/docs-mirror/pkg/storage"
)

// LanguageDetector is satisfied by detector.Detector; tests leave it nil to
// skip the model load.
type LanguageDetector interface {
	Detect(text string) string
}

// Pipeline runs the catalog sequentially: fetch, strip chrome, render to
// Markdown, write. One entry at a time, with a fixed pause between entries to
// bound the outbound request rate.
type Pipeline struct {
	Fetcher  *fetcher.Fetcher
	Store    *storage.Storage
	Detector LanguageDetector
	Delay    time.Duration
}

// ConvertEntry processes a single catalog entry end to end. Errors from any
// stage are captured on the Result rather than propagated.
func (p *Pipeline) ConvertEntry(ctx context.Context, entry catalog.Entry) Result {
	result := Result{
		Entry: entry,
		URL:   p.Fetcher.PageURL(entry.Path),
	}

	body, err := p.Fetcher.Get(ctx, entry.Path)
	if err != nil {
		result.Stage, result.Err = StageFetch, err
		return result
	}

	fragment, err := extractor.StripChrome(body)
	if err != nil {
		result.Stage, result.Err = StageExtract, err
		return result
	}

	markdown, err := renderer.ToMarkdown(fragment)
	if err != nil {
		result.Stage, result.Err = StageRender, err
		return result
	}

	document := pageDocument(entry.Stem, result.URL, markdown)
	path, err := p.Store.WritePage(entry.Stem, []byte(document))
	if err != nil {
		result.Stage, result.Err = StageWrite, err
		return result
	}

	result.FilePath = path
	result.SizeBytes = int64(len(document))
	if p.Detector != nil {
		result.Language = p.Detector.Detect(markdown)
	}
	return result
}

// Run converts every catalog entry in order and then always writes the index,
// however many entries failed. Only output-root creation and the index write
// itself are fatal.
func (p *Pipeline) Run(ctx context.Context, cat catalog.Catalog) (*Outcome, error) {
	if err := p.Store.EnsureRoot(); err != nil {
		return nil, err
	}

	outcome := &Outcome{Results: make([]Result, 0, len(cat))}
	for _, entry := range cat {
		log.Info("converting", "url", p.Fetcher.PageURL(entry.Path))

		result := p.ConvertEntry(ctx, entry)
		if result.Err != nil {
			log.Error("conversion failed", "url", result.URL, "stage", result.Stage, "error", result.Err)
			outcome.Failed++
		} else {
			log.Info("saved", "file", result.FilePath)
			outcome.Successful++
		}
		outcome.Results = append(outcome.Results, result)

		if p.Delay > 0 {
			time.Sleep(p.Delay)
		}
	}

	if err := index.Write(p.Store, cat); err != nil {
		return nil, err
	}

	return outcome, nil
}

// pageDocument prepends the generated title and source line to the rendered
// Markdown body.
func pageDocument(stem, sourceURL, markdown string) string {
	return fmt.Sprintf("# %s\n\n来源: %s\n\n%s", catalog.PageTitle(stem), sourceURL, markdown)
}
