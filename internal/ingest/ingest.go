// Package ingest turns loose files, directories, and ZIP archives into the
// (filename, bytes) payloads the batch processor consumes. Content type is
// decided by magic bytes, not extension, so a mislabeled archive still lands
// on the right path.
package ingest

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/fiscaldata/nf-extractor/constants"
	"github.com/fiscaldata/nf-extractor/internal/batch"
)

// Collector gathers PDF payloads from the filesystem.
type Collector struct {
	logger *slog.Logger
}

func NewCollector(logger *slog.Logger) *Collector {
	if logger == nil {
		logger = slog.Default()
	}
	return &Collector{logger: logger}
}

// Sniff reports the content type of data from its magic bytes: "PDF", "ZIP",
// or "" when neither matches.
func Sniff(data []byte) string {
	switch {
	case bytes.HasPrefix(data, constants.MagicPDF):
		return "PDF"
	case bytes.HasPrefix(data, constants.MagicZIP):
		return "ZIP"
	default:
		return ""
	}
}

// Collect reads each path and returns the PDF payloads it holds, flattening
// ZIP archives in memory. Unreadable and unsupported inputs are logged and
// skipped; the batch runs with whatever survived.
func (c *Collector) Collect(paths []string) []batch.Item {
	var items []batch.Item
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			c.logger.Warn("ingest.read.failed", "path", p, "error", err)
			continue
		}
		switch Sniff(data) {
		case "PDF":
			items = append(items, batch.Item{Filename: filepath.Base(p), Data: data})
		case "ZIP":
			items = append(items, c.FlattenZip(data, filepath.Base(p))...)
		default:
			c.logger.Warn("ingest.unsupported", "path", p)
		}
	}
	c.logger.Info("ingest.collected", "inputs", len(paths), "items", len(items))
	return items
}

// CollectPaths accepts a mix of files and directories. Directories are
// scanned recursively; everything else goes through Collect. Unlike the
// per-file leniency of Collect, a path that cannot be resolved at all fails
// the whole call, since the caller named it explicitly.
func (c *Collector) CollectPaths(paths []string) ([]batch.Item, error) {
	var items []batch.Item
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", p, err)
		}
		if info.IsDir() {
			found, _, err := c.ScanDir(p)
			if err != nil {
				return nil, err
			}
			items = append(items, c.Collect(found)...)
			continue
		}
		items = append(items, c.Collect([]string{p})...)
	}
	return items, nil
}

// FlattenZip extracts the PDF entries of an in-memory ZIP archive. Entry
// names are flattened to their base name; an entry with a .pdf extension but
// non-PDF content is skipped.
func (c *Collector) FlattenZip(data []byte, source string) []batch.Item {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		c.logger.Warn("ingest.zip.invalid", "source", source, "error", err)
		return nil
	}
	var items []batch.Item
	for _, f := range zr.File {
		if f.FileInfo().IsDir() || !strings.HasSuffix(strings.ToLower(f.Name), ".pdf") {
			continue
		}
		payload, err := readZipEntry(f)
		if err != nil {
			c.logger.Warn("ingest.zip.entry_failed", "source", source, "entry", f.Name, "error", err)
			continue
		}
		if !bytes.HasPrefix(payload, constants.MagicPDF) {
			c.logger.Warn("ingest.zip.not_pdf", "source", source, "entry", f.Name)
			continue
		}
		items = append(items, batch.Item{Filename: path.Base(f.Name), Data: payload})
	}
	c.logger.Info("ingest.zip.flattened", "source", source, "items", len(items))
	return items
}

func readZipEntry(f *zip.File) ([]byte, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}
