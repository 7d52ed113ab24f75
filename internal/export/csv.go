// Package export writes the admin working set of articles to disk.
package export

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-writenest/internal/logger"
	"github.com/MKhiriev/go-writenest/models"
)

// ErrNoArticles is returned when there is nothing to export.
var ErrNoArticles = errors.New("no articles to export")

var csvHeader = []string{"ID", "Title", "Author", "Date", "Status"}

// FileName returns the export file name for the UTC day of now.
func FileName(now time.Time) string {
	return "writenest-articles-" + now.UTC().Format(time.DateOnly) + ".csv"
}

// WriteCSV writes the header and one row per article. Title and author are
// always quoted; the other columns are written as is. Rows are separated by
// a line feed and the last row has none.
func WriteCSV(w io.Writer, articles []models.Article) error {
	bw := bufio.NewWriter(w)

	if _, err := bw.WriteString(strings.Join(csvHeader, ",")); err != nil {
		return err
	}
	for _, a := range articles {
		row := []string{
			strconv.FormatInt(a.ID, 10),
			quote(a.Title),
			quote(a.Author),
			a.Date,
			a.StatusLabel(),
		}
		if _, err := bw.WriteString("\n" + strings.Join(row, ",")); err != nil {
			return err
		}
	}

	return bw.Flush()
}

func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// CSVExporter writes CSV files into one directory.
type CSVExporter struct {
	dir    string
	logger *logger.Logger
}

// NewCSVExporter returns an exporter writing into dir.
func NewCSVExporter(dir string, logger *logger.Logger) *CSVExporter {
	return &CSVExporter{dir: dir, logger: logger}
}

// Export writes articles to FileName(now) in the export directory and
// returns the path. The file is replaced atomically.
func (e *CSVExporter) Export(ctx context.Context, articles []models.Article, now time.Time) (string, error) {
	if len(articles) == 0 {
		return "", ErrNoArticles
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if err := os.MkdirAll(e.dir, 0o755); err != nil {
		return "", fmt.Errorf("create export dir: %w", err)
	}

	path := filepath.Join(e.dir, FileName(now))
	tmp, err := os.CreateTemp(e.dir, ".writenest-export-*")
	if err != nil {
		return "", fmt.Errorf("create export file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err = WriteCSV(tmp, articles); err != nil {
		tmp.Close()
		return "", fmt.Errorf("write export file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return "", fmt.Errorf("close export file: %w", err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return "", fmt.Errorf("move export file: %w", err)
	}

	e.logger.Info().
		Str("func", "CSVExporter.Export").
		Str("path", path).
		Int("count", len(articles)).
		Msg("articles exported")

	return path, nil
}
