package convert

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/nberkley/docs-mirror/pkg/catalog"
	"github.com/nberkley/docs-mirror/pkg/fetcher"
	"github.com/nberkley/docs-mirror/pkg/index"
	"github.com/nberkley/docs-mirror/pkg/storage"
)

func newTestPipeline(t *testing.T, serverURL string) *Pipeline {
	t.Helper()
	return &Pipeline{
		Fetcher: fetcher.New(serverURL, time.Second),
		Store:   storage.New(filepath.Join(t.TempDir(), "shipany_docs")),
		Delay:   0,
	}
}

func TestRunEndToEnd(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/get-started" {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte(`<html><body><nav>skip</nav><h1>Hi</h1></body></html>`))
	}))
	defer server.Close()

	p := newTestPipeline(t, server.URL)
	cat := catalog.Catalog{{Path: "get-started", Stem: "get-started"}}

	outcome, err := p.Run(context.Background(), cat)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if outcome.Successful != 1 || outcome.Failed != 0 {
		t.Fatalf("unexpected counts: %d success, %d failed", outcome.Successful, outcome.Failed)
	}

	data, err := os.ReadFile(filepath.Join(p.Store.Root(), "get-started.md"))
	if err != nil {
		t.Fatalf("converted page missing: %v", err)
	}
	page := string(data)

	if !strings.HasPrefix(page, "# Get-Started\n\n") {
		t.Errorf("missing title line:\n%s", page)
	}
	if !strings.Contains(page, "来源: "+server.URL+"/get-started") {
		t.Errorf("missing source line:\n%s", page)
	}
	if !strings.Contains(page, "# Hi") {
		t.Errorf("missing converted heading:\n%s", page)
	}
	if strings.Contains(page, "skip") {
		t.Errorf("nav content leaked into output:\n%s", page)
	}

	if !p.Store.HasFile(index.FileName) {
		t.Error("index not written after run")
	}
}

func TestRunFailureIsolation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/missing" {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte(`<html><body><p>ok</p></body></html>`))
	}))
	defer server.Close()

	p := newTestPipeline(t, server.URL)
	cat := catalog.Catalog{
		{Path: "missing", Stem: "missing"},
		{Path: "get-started", Stem: "get-started"},
	}

	outcome, err := p.Run(context.Background(), cat)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if outcome.Failed != 1 || outcome.Successful != 1 {
		t.Fatalf("unexpected counts: %d success, %d failed", outcome.Successful, outcome.Failed)
	}

	first := outcome.Results[0]
	if first.Err == nil || first.Stage != StageFetch {
		t.Errorf("expected fetch-stage failure for first entry, got %+v", first)
	}

	if _, err := os.Stat(filepath.Join(p.Store.Root(), "get-started.md")); err != nil {
		t.Errorf("entry after a failure was not processed: %v", err)
	}

	// The index lists every catalog entry, fetched or not.
	data, err := os.ReadFile(filepath.Join(p.Store.Root(), index.FileName))
	if err != nil {
		t.Fatalf("index missing: %v", err)
	}
	if !strings.Contains(string(data), "(./missing.md)") {
		t.Errorf("index dropped the failed entry:\n%s", data)
	}
}

func TestRunIdempotent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html><body><h1>Stable</h1></body></html>`))
	}))
	defer server.Close()

	p := newTestPipeline(t, server.URL)
	cat := catalog.Catalog{{Path: "get-started", Stem: "get-started"}}

	if _, err := p.Run(context.Background(), cat); err != nil {
		t.Fatalf("first run failed: %v", err)
	}
	firstPage, err := os.ReadFile(filepath.Join(p.Store.Root(), "get-started.md"))
	if err != nil {
		t.Fatalf("page missing after first run: %v", err)
	}

	if _, err := p.Run(context.Background(), cat); err != nil {
		t.Fatalf("second run failed: %v", err)
	}
	secondPage, err := os.ReadFile(filepath.Join(p.Store.Root(), "get-started.md"))
	if err != nil {
		t.Fatalf("page missing after second run: %v", err)
	}

	if string(firstPage) != string(secondPage) {
		t.Error("runs against unchanged content produced different output")
	}
}

func TestConvertEntryStageClassification(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html><body><p>fine</p></body></html>`))
	}))
	defer server.Close()

	t.Run("write failure", func(t *testing.T) {
		dir := t.TempDir()
		blocker := filepath.Join(dir, "out")
		if err := os.WriteFile(blocker, []byte("x"), 0644); err != nil {
			t.Fatalf("setup failed: %v", err)
		}

		p := &Pipeline{
			Fetcher: fetcher.New(server.URL, time.Second),
			// Root path is a regular file, so the page write must fail.
			Store: storage.New(filepath.Join(blocker, "docs")),
		}
		result := p.ConvertEntry(context.Background(), catalog.Entry{Path: "p", Stem: "p"})
		if result.Err == nil || result.Stage != StageWrite {
			t.Errorf("expected write-stage failure, got %+v", result)
		}
	})

	t.Run("success carries size and path", func(t *testing.T) {
		p := newTestPipeline(t, server.URL)
		if err := p.Store.EnsureRoot(); err != nil {
			t.Fatalf("EnsureRoot failed: %v", err)
		}
		result := p.ConvertEntry(context.Background(), catalog.Entry{Path: "p", Stem: "p"})
		if result.Err != nil {
			t.Fatalf("ConvertEntry failed: %v", result.Err)
		}
		if result.FilePath == "" || result.SizeBytes == 0 {
			t.Errorf("missing file metadata: %+v", result)
		}
	})
}

func TestBuildSummaryCounts(t *testing.T) {
	store := storage.New(t.TempDir())
	outcome := &Outcome{
		Results: []Result{
			{Entry: catalog.Entry{Path: "a", Stem: "a"}, FilePath: "docs/a.md", SizeBytes: 10, Language: "en"},
			{Entry: catalog.Entry{Path: "b", Stem: "b"}, Stage: StageFetch, Err: context.DeadlineExceeded},
		},
		Successful: 1,
		Failed:     1,
	}

	summary := BuildSummary(time.Now(), "https://docs.shipany.ai/en", store, outcome)

	if summary.Total != 2 || summary.Successful != 1 || summary.Failed != 1 {
		t.Errorf("unexpected totals: %+v", summary)
	}
	if summary.Pages[0].Status != "success" || summary.Pages[0].Language != "en" {
		t.Errorf("unexpected success page: %+v", summary.Pages[0])
	}
	if summary.Pages[1].Status != "failed" || summary.Pages[1].Stage != StageFetch {
		t.Errorf("unexpected failed page: %+v", summary.Pages[1])
	}

	if err := WriteSummary(store, summary); err != nil {
		t.Fatalf("WriteSummary failed: %v", err)
	}
	if !store.HasFile(SummaryFileName) {
		t.Error("summary file not written")
	}
}
