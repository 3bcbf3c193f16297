package db

const schema = `
PRAGMA journal_mode = WAL;
PRAGMA synchronous = NORMAL;
PRAGMA foreign_keys = ON;

-- Runs table: one row per invocation of the convert command
CREATE TABLE IF NOT EXISTS runs (
    run_id INTEGER PRIMARY KEY AUTOINCREMENT,
    started_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    finished_at TIMESTAMP,
    base_url TEXT NOT NULL,
    output_dir TEXT NOT NULL,
    page_count INTEGER NOT NULL DEFAULT 0,
    success_count INTEGER NOT NULL DEFAULT 0,
    failed_count INTEGER NOT NULL DEFAULT 0
);

-- Per-page outcomes for a run
CREATE TABLE IF NOT EXISTS run_pages (
    page_id INTEGER PRIMARY KEY AUTOINCREMENT,
    run_id INTEGER NOT NULL,
    path TEXT NOT NULL,
    stem TEXT NOT NULL,
    status TEXT NOT NULL,          -- success or failed
    stage TEXT,                    -- fetch, extract, render, write
    error TEXT,
    file_path TEXT,
    size_bytes INTEGER DEFAULT 0,
    language TEXT,
    FOREIGN KEY (run_id) REFERENCES runs(run_id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_run_pages_run ON run_pages(run_id);
CREATE INDEX IF NOT EXISTS idx_run_pages_status ON run_pages(status);
`
