package db

import (
	"database/sql"
	"fmt"
	"time"
)

// RunInfo summarizes one recorded run.
type RunInfo struct {
	RunID        int64
	StartedAt    time.Time
	FinishedAt   time.Time
	BaseURL      string
	OutputDir    string
	PageCount    int
	SuccessCount int
	FailedCount  int
}

// PageRecord is the per-page outcome stored for a run.
type PageRecord struct {
	Path      string
	Stem      string
	Status    string
	Stage     string
	Error     string
	FilePath  string
	SizeBytes int64
	Language  string
}

// CreateRun inserts a new run row and returns its ID.
func (db *DB) CreateRun(baseURL, outputDir string, pageCount int) (int64, error) {
	res, err := db.Exec(
		`INSERT INTO runs (started_at, base_url, output_dir, page_count) VALUES (?, ?, ?, ?)`,
		time.Now().UTC(), baseURL, outputDir, pageCount,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to create run: %w", err)
	}
	return res.LastInsertId()
}

// RecordPage stores the outcome of one catalog entry.
func (db *DB) RecordPage(runID int64, p PageRecord) error {
	_, err := db.Exec(
		`INSERT INTO run_pages (run_id, path, stem, status, stage, error, file_path, size_bytes, language)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		runID, p.Path, p.Stem, p.Status, nullable(p.Stage), nullable(p.Error),
		nullable(p.FilePath), p.SizeBytes, nullable(p.Language),
	)
	if err != nil {
		return fmt.Errorf("failed to record page %s: %w", p.Path, err)
	}
	return nil
}

// FinishRun stamps the run's end time and final counters.
func (db *DB) FinishRun(runID int64, success, failed int) error {
	_, err := db.Exec(
		`UPDATE runs SET finished_at = ?, success_count = ?, failed_count = ? WHERE run_id = ?`,
		time.Now().UTC(), success, failed, runID,
	)
	if err != nil {
		return fmt.Errorf("failed to finish run %d: %w", runID, err)
	}
	return nil
}

// ListRuns returns the most recent runs, newest first.
func (db *DB) ListRuns(limit int) ([]RunInfo, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := db.Query(
		`SELECT run_id, started_at, finished_at, base_url, output_dir,
		        page_count, success_count, failed_count
		 FROM runs ORDER BY run_id DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	var runs []RunInfo
	for rows.Next() {
		var r RunInfo
		var finished sql.NullTime
		if err := rows.Scan(&r.RunID, &r.StartedAt, &finished, &r.BaseURL, &r.OutputDir,
			&r.PageCount, &r.SuccessCount, &r.FailedCount); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		if finished.Valid {
			r.FinishedAt = finished.Time
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// GetRun fetches a single run by ID.
func (db *DB) GetRun(runID int64) (*RunInfo, error) {
	var r RunInfo
	var finished sql.NullTime
	err := db.QueryRow(
		`SELECT run_id, started_at, finished_at, base_url, output_dir,
		        page_count, success_count, failed_count
		 FROM runs WHERE run_id = ?`, runID,
	).Scan(&r.RunID, &r.StartedAt, &finished, &r.BaseURL, &r.OutputDir,
		&r.PageCount, &r.SuccessCount, &r.FailedCount)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("run %d not found", runID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get run %d: %w", runID, err)
	}
	if finished.Valid {
		r.FinishedAt = finished.Time
	}
	return &r, nil
}

// GetRunPages returns the per-page rows for a run, in recorded order.
func (db *DB) GetRunPages(runID int64) ([]PageRecord, error) {
	rows, err := db.Query(
		`SELECT path, stem, status, COALESCE(stage, ''), COALESCE(error, ''),
		        COALESCE(file_path, ''), size_bytes, COALESCE(language, '')
		 FROM run_pages WHERE run_id = ? ORDER BY page_id`, runID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get pages for run %d: %w", runID, err)
	}
	defer rows.Close()

	var pages []PageRecord
	for rows.Next() {
		var p PageRecord
		if err := rows.Scan(&p.Path, &p.Stem, &p.Status, &p.Stage, &p.Error,
			&p.FilePath, &p.SizeBytes, &p.Language); err != nil {
			return nil, fmt.Errorf("failed to scan page: %w", err)
		}
		pages = append(pages, p)
	}
	return pages, rows.Err()
}

// LatestRunID returns the ID of the most recent run.
func (db *DB) LatestRunID() (int64, error) {
	var id int64
	err := db.QueryRow(`SELECT run_id FROM runs ORDER BY run_id DESC LIMIT 1`).Scan(&id)
	if err == sql.ErrNoRows {
		return 0, fmt.Errorf("no runs recorded yet")
	}
	if err != nil {
		return 0, fmt.Errorf("failed to get latest run: %w", err)
	}
	return id, nil
}

// nullable maps empty strings to NULL so COALESCE reads stay tidy.
func nullable(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
