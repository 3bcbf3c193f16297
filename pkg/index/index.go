// Package index assembles the README.md that groups mirrored pages by their
// top-level section.
package index

import (
	"fmt"
	"strings"

	"github.com/nberkley/docs-mirror/pkg/catalog"
	"github.com/nberkley/docs-mirror/pkg/storage"
)

// FileName is the index file written at the output root.
const FileName = "README.md"

const preamble = `# ShipAny 文档索引

本文档包含 ShipAny 项目的完整操作指南。

## 目录结构

`

// Build walks the catalog in order and emits a section heading whenever the
// stem's first segment changes from the previous entry, then one link item
// per page. Grouping never depends on whether a page actually fetched.
func Build(cat catalog.Catalog) string {
	var b strings.Builder
	b.WriteString(preamble)

	current := ""
	for _, e := range cat {
		section := catalog.Section(e.Stem)
		if section != current {
			fmt.Fprintf(&b, "\n## %s\n\n", catalog.TitleCase(section))
			current = section
		}
		fmt.Fprintf(&b, "- [%s](./%s.md)\n", catalog.LinkTitle(e.Stem), e.Stem)
	}

	return b.String()
}

// Write assembles the index and saves it at the output root, replacing any
// previous index.
func Write(s *storage.Storage, cat catalog.Catalog) error {
	if err := s.SaveFile(FileName, []byte(Build(cat))); err != nil {
		return fmt.Errorf("failed to write index: %w", err)
	}
	return nil
}
