// Package catalog holds the static table of documentation pages to mirror.
package catalog

import (
	_ "embed"
	"fmt"
	"strings"
	"unicode"

	"gopkg.in/yaml.v3"
)

// FallbackSection groups stems that have no path segments of their own.
const FallbackSection = "主要文档"

//go:embed catalog.yaml
var rawCatalog []byte

// Entry maps a page path (relative to the base URL) to its output file stem.
type Entry struct {
	Path string `yaml:"path"`
	Stem string `yaml:"stem"`
}

// Catalog is the ordered page list. Order matters: the index builder emits a
// section heading whenever the stem's first segment changes between entries.
type Catalog []Entry

type catalogFile struct {
	Pages []Entry `yaml:"pages"`
}

// Load parses the embedded page table and validates stem uniqueness.
func Load() (Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(rawCatalog, &file); err != nil {
		return nil, fmt.Errorf("failed to parse page catalog: %w", err)
	}
	if len(file.Pages) == 0 {
		return nil, fmt.Errorf("page catalog is empty")
	}

	seen := make(map[string]struct{}, len(file.Pages))
	for _, e := range file.Pages {
		if e.Path == "" || e.Stem == "" {
			return nil, fmt.Errorf("catalog entry with empty path or stem")
		}
		if _, ok := seen[e.Stem]; ok {
			return nil, fmt.Errorf("duplicate catalog stem: %s", e.Stem)
		}
		seen[e.Stem] = struct{}{}
	}

	return Catalog(file.Pages), nil
}

// Section returns the stem's first path segment, used to group index entries.
// Stems without a slash fall into FallbackSection.
func Section(stem string) string {
	if !strings.Contains(stem, "/") {
		return FallbackSection
	}
	return stem[:strings.Index(stem, "/")]
}

// PageTitle derives the H1 heading written at the top of a converted page:
// slashes become " - " and each word is title-cased.
func PageTitle(stem string) string {
	return TitleCase(strings.ReplaceAll(stem, "/", " - "))
}

// LinkTitle derives the index link text from the stem's last segment, with
// hyphens replaced by spaces and each word title-cased.
func LinkTitle(stem string) string {
	last := stem
	if i := strings.LastIndex(stem, "/"); i >= 0 {
		last = stem[i+1:]
	}
	return TitleCase(strings.ReplaceAll(last, "-", " "))
}

// TitleCase upper-cases the first letter following any non-letter boundary
// and lower-cases the rest, so "ai-integrations" becomes "Ai-Integrations".
func TitleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	prevLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			if prevLetter {
				b.WriteRune(unicode.ToLower(r))
			} else {
				b.WriteRune(unicode.ToUpper(r))
			}
			prevLetter = true
		} else {
			b.WriteRune(r)
			prevLetter = false
		}
	}
	return b.String()
}
