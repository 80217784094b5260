// Package xlsx writes rank records to Excel workbooks.
package xlsx

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
	"unicode/utf8"

	"github.com/fwojciec/serprank"
	"github.com/xuri/excelize/v2"
)

// Report defaults.
const (
	DefaultDir    = "data"
	DefaultPrefix = "rankings_"
	SheetName     = "Rankings"

	// MaxColumnWidth caps auto-sized columns.
	MaxColumnWidth = 50
)

// Headers is the report header row.
var Headers = []string{"Entity", "Keyword", "Section", "Rank", "Title", "Link", "Snippet", "Error"}

// Ensure ReportWriter implements serprank.ReportWriter at compile time.
var _ serprank.ReportWriter = (*ReportWriter)(nil)

// ReportWriter writes each report to a new timestamped workbook.
type ReportWriter struct {
	dir    string
	prefix string

	// Now returns the time used in the file name. Defaults to time.Now.
	Now func() time.Time
}

// NewReportWriter creates a ReportWriter saving into dir with file names
// starting with prefix. Empty values use DefaultDir and DefaultPrefix.
func NewReportWriter(dir, prefix string) *ReportWriter {
	if dir == "" {
		dir = DefaultDir
	}
	if prefix == "" {
		prefix = DefaultPrefix
	}
	return &ReportWriter{dir: dir, prefix: prefix, Now: time.Now}
}

// WriteReport writes records to <dir>/<prefix>YYYYMMDD_HHMMSS.xlsx.
func (w *ReportWriter) WriteReport(records []serprank.RankRecord) (string, error) {
	if len(records) == 0 {
		return "", serprank.Errorf(serprank.EINVALID, "no records to report")
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return "", fmt.Errorf("rename sheet: %w", err)
	}

	rows := make([][]string, 0, len(records)+1)
	rows = append(rows, Headers)
	for _, rec := range records {
		rows = append(rows, row(rec))
	}

	widths := make([]int, len(Headers))
	for i, r := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return "", err
		}
		values := make([]any, len(r))
		for j, v := range r {
			values[j] = v
			widths[j] = max(widths[j], utf8.RuneCountInString(v))
		}
		if err := f.SetSheetRow(SheetName, cell, &values); err != nil {
			return "", fmt.Errorf("write row %d: %w", i+1, err)
		}
	}

	for j, width := range widths {
		col, err := excelize.ColumnNumberToName(j + 1)
		if err != nil {
			return "", err
		}
		if err := f.SetColWidth(SheetName, col, col, float64(min(width+2, MaxColumnWidth))); err != nil {
			return "", fmt.Errorf("size column %s: %w", col, err)
		}
	}

	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}
	path := filepath.Join(w.dir, w.prefix+w.Now().Format("20060102_150405")+".xlsx")
	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("save report: %w", err)
	}
	return path, nil
}

func row(rec serprank.RankRecord) []string {
	return []string{
		rec.EntityName,
		rec.Keyword,
		string(rec.Section),
		rec.Rank.String(),
		rec.Title,
		rec.Link,
		rec.Snippet,
		rec.ErrorDetail,
	}
}
