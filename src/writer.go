package src

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
)

// WriteReport maps output filenames to bytes written. A zero entry marks a
// per-file failure; the run continues past it.
type WriteReport map[string]int

// Successful counts files written with a nonzero size.
func (r WriteReport) Successful() int {
	n := 0
	for _, name := range outputOrder {
		if r[name] > 0 {
			n++
		}
	}
	return n
}

// TotalBytes sums the written sizes.
func (r WriteReport) TotalBytes() int {
	total := 0
	for _, size := range r {
		total += size
	}
	return total
}

// Complete reports whether every expected file was written.
func (r WriteReport) Complete() bool {
	return r.Successful() == len(outputOrder)
}

// Writer persists a ProjectContent into one project directory.
type Writer struct {
	dir string
	log zerolog.Logger
}

// NewWriter creates the project directory; creation is idempotent.
func NewWriter(dir string, log zerolog.Logger) (*Writer, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create project directory: %w", err)
	}
	return &Writer{dir: dir, log: log}, nil
}

// WriteAll writes the four artifacts, re-sanitizing each one immediately
// before the write. Go payloads are re-validated; a failure there is logged
// but never vetoes the write.
func (w *Writer) WriteAll(content ProjectContent) WriteReport {
	files := content.Files()
	report := make(WriteReport, len(outputOrder))

	for _, name := range outputOrder {
		body := files[name]
		if strings.HasSuffix(name, ".go") {
			body = SanitizeGoSource(body)
			if ok, diag := ValidateGoSyntax(body); !ok {
				w.log.Warn().Str("file", name).Str("diagnostic", diag).Msg("final validation failed")
			}
		} else {
			body = SanitizeMarkdown(body)
		}

		path := filepath.Join(w.dir, name)
		if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
			w.log.Error().Err(err).Str("file", name).Msg("write failed")
			report[name] = 0
			continue
		}
		report[name] = len(body)
	}
	return report
}
