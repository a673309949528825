package ingest

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/fiscaldata/nf-extractor/constants"
)

// WatchConfig controls inbox watching for the daemon.
type WatchConfig struct {
	Roots       []string // directories to watch, recursively
	AllowedExts map[string]struct{}
	InitialScan bool          // emit files already present under the roots
	Debounce    time.Duration // coalesce rapid write/rename bursts
	Logger      *slog.Logger
}

// StartWatcher watches the configured roots and emits the path of every
// allowed file created, written, or renamed into them. Subdirectories are
// picked up as they appear. Both channels close when ctx is cancelled.
func StartWatcher(ctx context.Context, cfg WatchConfig) (<-chan string, <-chan error, error) {
	if len(cfg.Roots) == 0 {
		return nil, nil, errors.New("no roots provided")
	}
	if cfg.AllowedExts == nil {
		cfg.AllowedExts = constants.AllowedExtensions
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, nil, err
	}

	// Register every directory under the roots, remembering pre-existing
	// files for the initial emission.
	var initial []string
	addRoot := func(root string) error {
		return filepath.WalkDir(root, func(p string, d fs.DirEntry, walkErr error) error {
			if walkErr != nil {
				return walkErr
			}
			if p != root && IsHidden(p) {
				if d.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}
			if d.IsDir() {
				return w.Add(p)
			}
			if cfg.InitialScan && allowedPath(p, cfg.AllowedExts) {
				initial = append(initial, p)
			}
			return nil
		})
	}
	for _, r := range cfg.Roots {
		if err := addRoot(r); err != nil {
			_ = w.Close()
			return nil, nil, err
		}
	}
	logger.Info("watch.start", "roots", cfg.Roots, "initial", len(initial), "debounce", cfg.Debounce)

	evCh := make(chan string, 256)
	errCh := make(chan error, 1)

	go func() {
		defer close(errCh)
		defer close(evCh)
		defer func() { _ = w.Close() }()

		for _, p := range initial {
			select {
			case evCh <- p:
			case <-ctx.Done():
				return
			}
		}

		pending := map[string]struct{}{}
		var timer *time.Timer
		var timerC <-chan time.Time

		sendPending := func() {
			for p := range pending {
				select {
				case evCh <- p:
				default:
				}
				delete(pending, p)
			}
		}

		for {
			select {
			case <-ctx.Done():
				return
			case <-timerC:
				timerC = nil
				sendPending()
			case e := <-w.Events:
				if e.Op&fsnotify.Create != 0 {
					tryAddDir(w, e.Name, logger)
				}
				if !allowedPath(e.Name, cfg.AllowedExts) || e.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename) == 0 {
					continue
				}
				pending[e.Name] = struct{}{}
				if cfg.Debounce <= 0 {
					sendPending()
					continue
				}
				if timer == nil {
					timer = time.NewTimer(cfg.Debounce)
				} else {
					if !timer.Stop() {
						select {
						case <-timer.C:
						default:
						}
					}
					timer.Reset(cfg.Debounce)
				}
				timerC = timer.C
			case err := <-w.Errors:
				logger.Error("watch.error", "error", err)
				select {
				case errCh <- err:
				default:
				}
			}
		}
	}()

	return evCh, errCh, nil
}

func allowedPath(path string, exts map[string]struct{}) bool {
	if IsHidden(path) {
		return false
	}
	_, ok := exts[constants.NormalizeExt(filepath.Ext(path))]
	return ok
}

// tryAddDir registers a newly created directory with the watcher. Created
// files stat as non-dirs and are ignored here.
func tryAddDir(w *fsnotify.Watcher, path string, logger *slog.Logger) {
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		return
	}
	if IsHidden(path) {
		return
	}
	if err := w.Add(path); err != nil {
		logger.Warn("watch.dir.add_failed", "path", path, "error", err)
	}
}
