package leadsync

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jcanalytics/leadsync-go/pkg/leadsync/layout"
	"github.com/jcanalytics/leadsync-go/pkg/leadsync/schema"
	"github.com/jcanalytics/leadsync-go/pkg/leadsync/store"
)

// Engine runs leadsync operations against one data directory.
//
// Every operation re-reads what it needs from disk and writes its results
// back; nothing is cached between calls. Mutating operations of one Engine
// are serialized, but separate processes working on the same directory can
// still overwrite each other's master updates (last writer wins).
type Engine struct {
	layout *layout.Layout
	store  store.SheetStore
	log    *zap.Logger
	now    func() time.Time

	mu sync.Mutex
}

// New creates an Engine.
func New(opts Options) *Engine {
	return &Engine{
		layout: opts.layout(),
		store:  opts.store(),
		log:    opts.logger(),
		now:    opts.clock(),
	}
}

// Layout returns the data directory layout used by the engine.
func (e *Engine) Layout() *layout.Layout {
	return e.layout
}

func (e *Engine) runLogger(op string) *zap.Logger {
	return e.log.With(zap.String("op", op), zap.String("run_id", uuid.NewString()))
}

// loadMaster reads the authoritative master file.
func (e *Engine) loadMaster() (string, *store.Sheet, error) {
	path, err := e.layout.MasterPath()
	if err != nil {
		return "", nil, NewIOError("list", e.layout.Main, err)
	}
	sheet, err := e.store.Read(path)
	if err != nil {
		return "", nil, NewIOError("read", path, err)
	}
	return path, sheet, nil
}

func (e *Engine) write(path string, s *store.Sheet) error {
	if err := e.store.Write(path, s); err != nil {
		return NewIOError("write", path, err)
	}
	return nil
}

// requireColumn resolves a load-bearing field or fails with a SchemaError.
func requireColumn(path string, header []string, f schema.Field) (int, error) {
	idx := f.Index(header)
	if idx < 0 {
		return -1, NewSchemaError(filepath.Base(path), f.Name)
	}
	return idx, nil
}

// optionalColumn resolves a field whose absence only disables a mutation.
func optionalColumn(log *zap.Logger, path string, header []string, f schema.Field) int {
	idx := f.Index(header)
	if idx < 0 {
		log.Debug("optional column not found",
			zap.String("file", filepath.Base(path)), zap.String("column", f.Name))
	}
	return idx
}

// appendToTracking seeds a new tracking sheet from the person's latest file
// (or from header when there is none), appends rows and writes it under
// fileName. Same-day writes overwrite each other.
func (e *Engine) appendToTracking(log *zap.Logger, person string, header []string, rows [][]string, fileName string) error {
	seed := store.NewSheet(header)
	latest, ok, err := e.layout.LatestTrackingFile(person)
	if err != nil {
		return NewIOError("list", e.layout.TrackingDir(person), err)
	}
	if ok {
		prev, err := e.store.Read(latest)
		switch {
		case err != nil:
			log.Warn("could not read previous tracking file, starting from master header",
				zap.String("person", person), zap.String("file", latest), zap.Error(err))
		case prev.Header() != nil:
			seed = prev
		}
	}
	seed.Append(rows...)
	return e.write(filepath.Join(e.layout.TrackingDir(person), fileName), seed)
}
