package convert

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/urfave/cli/v2"

	"github.com/nberkley/docs-mirror/models"
	"github.com/nberkley/docs-mirror/pkg/catalog"
	"github.com/nberkley/docs-mirror/pkg/db"
	"github.com/nberkley/docs-mirror/pkg/detector"
	"github.com/nberkley/docs-mirror/pkg/fetcher"
	"github.com/nberkley/docs-mirror/pkg/index"
	"github.com/nberkley/docs-mirror/pkg/storage"
)

// ConvertAction is the default command: fetch every catalog page, write the
// Markdown tree and the index, then report counts.
func ConvertAction(c *cli.Context) error {
	config, err := loadConfig(c)
	if err != nil {
		return err
	}

	cat, err := catalog.Load()
	if err != nil {
		return err
	}

	pipeline := &Pipeline{
		Fetcher:  fetcher.New(config.BaseURL, config.Timeout),
		Store:    storage.New(config.OutputDir),
		Detector: detector.New(),
		Delay:    config.Delay,
	}

	// The history store is best effort: a broken database must not stop the
	// mirror run.
	var history *db.DB
	if !c.Bool("no-history") {
		history, err = db.Open()
		if err != nil {
			log.Warn("run history disabled", "error", err)
			history = nil
		} else {
			defer history.Close()
		}
	}

	startedAt := time.Now()
	var runID int64
	if history != nil {
		runID, err = history.CreateRun(config.BaseURL, config.OutputDir, len(cat))
		if err != nil {
			log.Warn("failed to create history run", "error", err)
			history = nil
		}
	}

	outcome, err := pipeline.Run(c.Context, cat)
	if err != nil {
		return err
	}

	if history != nil {
		recordOutcome(history, runID, outcome)
	}

	summary := BuildSummary(startedAt, config.BaseURL, pipeline.Store, outcome)
	if err := WriteSummary(pipeline.Store, summary); err != nil {
		log.Warn("failed to write run summary", "error", err)
	}

	fmt.Printf("\nConversion complete!\n")
	fmt.Printf("Successful: %d pages\n", outcome.Successful)
	fmt.Printf("Failed: %d pages\n", outcome.Failed)
	fmt.Printf("Files saved in: ./%s/\n", pipeline.Store.Root())
	return nil
}

// IndexAction rebuilds README.md from the catalog without fetching anything.
// The index never depended on fetch success, so this is always safe.
func IndexAction(c *cli.Context) error {
	config, err := loadConfig(c)
	if err != nil {
		return err
	}

	cat, err := catalog.Load()
	if err != nil {
		return err
	}

	store := storage.New(config.OutputDir)
	if err := store.EnsureRoot(); err != nil {
		return err
	}
	if err := index.Write(store, cat); err != nil {
		return err
	}

	fmt.Printf("Index written: %s/%s\n", store.Root(), index.FileName)
	return nil
}

// loadConfig layers CLI flags over the optional config file over defaults.
func loadConfig(c *cli.Context) (*models.Config, error) {
	config, err := models.LoadConfig(c.String("config"))
	if err != nil {
		return nil, err
	}

	if c.IsSet("base-url") {
		config.BaseURL = c.String("base-url")
	}
	if c.IsSet("output-dir") {
		config.OutputDir = c.String("output-dir")
	}
	if c.IsSet("timeout") {
		config.Timeout = c.Duration("timeout")
	}
	if c.IsSet("delay") {
		config.Delay = c.Duration("delay")
	}
	return config, nil
}

// recordOutcome writes per-page rows and the final counters; failures here
// only warn.
func recordOutcome(history *db.DB, runID int64, outcome *Outcome) {
	for _, r := range outcome.Results {
		record := db.PageRecord{
			Path:      r.Entry.Path,
			Stem:      r.Entry.Stem,
			Status:    "success",
			FilePath:  r.FilePath,
			SizeBytes: r.SizeBytes,
			Language:  r.Language,
		}
		if r.Err != nil {
			record.Status = "failed"
			record.Stage = r.Stage
			record.Error = r.Err.Error()
			record.FilePath = ""
		}
		if err := history.RecordPage(runID, record); err != nil {
			log.Warn("failed to record page", "path", r.Entry.Path, "error", err)
		}
	}
	if err := history.FinishRun(runID, outcome.Successful, outcome.Failed); err != nil {
		log.Warn("failed to finish history run", "error", err)
	}
}
