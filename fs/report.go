// Package fs provides file-based output for docinventory reports.
package fs

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/docinventory"
)

// FormatReport renders a report as a YAML-compatible document: a dated
// comment line, then one block per platform in fixed order with its
// controllers, sensors and mcus as sorted lists.
func FormatReport(r *docinventory.Report) string {
	var b strings.Builder
	b.WriteString("# Generated on ")
	b.WriteString(r.GeneratedOn.Format("2006-01-02"))
	b.WriteString("\n\n")
	for _, p := range docinventory.Platforms() {
		b.WriteString(string(p))
		b.WriteString(":\n")
		for _, c := range r.Catalogs[p].Categories() {
			b.WriteString("  ")
			b.WriteString(c.Name)
			b.WriteString(":\n")
			if len(c.Items) == 0 {
				b.WriteString("    []\n")
				continue
			}
			for _, item := range c.Items {
				b.WriteString("    - ")
				b.WriteString(item)
				b.WriteString("\n")
			}
		}
		b.WriteString("\n")
	}
	return strings.TrimRightFunc(b.String(), isSpace) + "\n"
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}

// Ensure ReportWriter implements docinventory.ReportWriter at compile time.
var _ docinventory.ReportWriter = (*ReportWriter)(nil)

// ReportWriter writes a formatted report to a fixed path.
// The report is written to a temporary sibling file and renamed into place,
// so the destination never holds a partial report.
type ReportWriter struct {
	path string
}

// NewReportWriter creates a new ReportWriter for path.
func NewReportWriter(path string) *ReportWriter {
	return &ReportWriter{path: path}
}

// WriteReport validates r and writes it to the destination path.
func (w *ReportWriter) WriteReport(ctx context.Context, r *docinventory.Report) error {
	if err := r.Validate(); err != nil {
		return err
	}

	dir := filepath.Dir(w.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(w.path)+".*.tmp")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.WriteString(FormatReport(r)); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), w.path)
}
