package ingest

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/fiscaldata/nf-extractor/internal/batch"
)

// DirStats summarizes a directory scan.
type DirStats struct {
	Scanned uint32
	Matched uint32
	Failed  uint32
}

// ScanDir walks root and returns the files whose extension is allowed for
// ingestion. Hidden files and directories are skipped. Errors on individual
// entries are counted and the walk continues.
func (c *Collector) ScanDir(root string) ([]string, DirStats, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, DirStats{}, fmt.Errorf("scan root: %w", err)
	}
	if !info.IsDir() {
		return nil, DirStats{}, fmt.Errorf("scan root %s: not a directory", root)
	}

	var paths []string
	var stats DirStats
	err = filepath.WalkDir(root, func(p string, d fs.DirEntry, walkErr error) error {
		stats.Scanned++
		if walkErr != nil {
			c.logger.Warn("ingest.scan.entry_failed", "path", p, "error", walkErr)
			stats.Failed++
			return nil
		}
		// A hidden root (an inbox named ".notas", say) is still walked.
		if p != root && IsHidden(p) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() || !AllowedExt(filepath.Ext(p)) {
			return nil
		}
		stats.Matched++
		paths = append(paths, p)
		return nil
	})
	if err != nil {
		return paths, stats, fmt.Errorf("walk %s: %w", root, err)
	}
	c.logger.Info("ingest.scan.done", "root", root, "scanned", stats.Scanned, "matched", stats.Matched, "failed", stats.Failed)
	return paths, stats, nil
}

// CollectDir scans root and collects every matching file in one call.
func (c *Collector) CollectDir(root string) ([]batch.Item, DirStats, error) {
	paths, stats, err := c.ScanDir(root)
	if err != nil {
		return nil, stats, err
	}
	return c.Collect(paths), stats, nil
}
