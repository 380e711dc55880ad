package ingest

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"path/filepath"
	"sort"
	"time"

	"github.com/fsnotify/fsnotify"

	"labelscan/constants"
	"labelscan/internal/common"
	"labelscan/internal/jobs"
)

type waker interface {
	Wake()
}

// Watcher turns configured hot folders into job submissions. PDFs dropped
// into a watched directory are grouped per directory, debounced until the
// copy burst settles, and submitted as one batch.
type Watcher struct {
	svc    *jobs.Service
	queue  waker
	logger *slog.Logger

	roots    []string
	ownerID  string
	debounce time.Duration
}

func NewWatcher(svc *jobs.Service, queue waker, logger *slog.Logger, cfg common.IngestConfig) *Watcher {
	if logger == nil {
		logger = slog.Default()
	}
	debounce := cfg.Debounce
	if debounce <= 0 {
		debounce = 2 * time.Second
	}
	return &Watcher{
		svc:      svc,
		queue:    queue,
		logger:   logger,
		roots:    cfg.WatchRoots,
		ownerID:  cfg.OwnerID,
		debounce: debounce,
	}
}

// Run blocks until ctx is cancelled.
func (w *Watcher) Run(ctx context.Context) error {
	if len(w.roots) == 0 {
		return errors.New("no watch roots configured")
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer fsw.Close()

	for _, root := range w.roots {
		if err := addTree(fsw, root); err != nil {
			w.logger.Error("failed to watch root", "root", root, "error", err)
			return err
		}
	}
	w.logger.Info("ingest.watcher.start", "roots", w.roots, "debounce", w.debounce)

	// One pending batch and one timer per directory. A new event for the
	// directory pushes its settle deadline out again.
	pending := map[string]map[string]struct{}{}
	timers := map[string]*time.Timer{}
	settled := make(chan string, 16)

	defer func() {
		for _, t := range timers {
			t.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("ingest.watcher.stop")
			return nil

		case e, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if e.Op.Has(fsnotify.Create) {
				tryAddDir(fsw, e.Name)
			}
			if !allowed(e.Name) || !e.Op.Has(fsnotify.Create|fsnotify.Write|fsnotify.Rename) {
				continue
			}
			dir := filepath.Dir(e.Name)
			if pending[dir] == nil {
				pending[dir] = map[string]struct{}{}
			}
			pending[dir][filepath.Base(e.Name)] = struct{}{}
			if t, ok := timers[dir]; ok {
				t.Reset(w.debounce)
			} else {
				d := dir
				timers[d] = time.AfterFunc(w.debounce, func() {
					select {
					case settled <- d:
					case <-ctx.Done():
					}
				})
			}

		case dir := <-settled:
			batch := pending[dir]
			delete(pending, dir)
			if t, ok := timers[dir]; ok {
				t.Stop()
				delete(timers, dir)
			}
			w.submit(ctx, dir, batch)

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			w.logger.Error("watcher error", "error", err)
		}
	}
}

func (w *Watcher) submit(ctx context.Context, dir string, batch map[string]struct{}) {
	if len(batch) == 0 {
		return
	}
	filenames := make([]string, 0, len(batch))
	for name := range batch {
		filenames = append(filenames, name)
	}
	sort.Strings(filenames)

	job, err := w.svc.CreateJob(ctx, w.ownerID, dir, filenames, nil)
	if err != nil {
		w.logger.Error("hot-folder submission failed", "dir", dir, "files", len(filenames), "error", err)
		return
	}
	w.queue.Wake()
	w.logger.Info("ingest.job.submitted", "job_id", job.ID, "dir", dir, "files", len(filenames))
}

func addTree(fsw *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() {
			return fsw.Add(path)
		}
		return nil
	})
}

// tryAddDir best-effort registers a newly created directory. Errors for
// non-directories are expected and ignored.
func tryAddDir(fsw *fsnotify.Watcher, path string) {
	_ = fsw.Add(path)
}

func allowed(path string) bool {
	ext := constants.NormalizeExt(filepath.Ext(path))
	_, ok := constants.AllowedExtensions[ext]
	return ok
}
