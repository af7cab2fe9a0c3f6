// Package leadsync distributes spreadsheet leads to people, reconciles their
// tracking files back into the master workbook and ingests raw batches.
package leadsync

import (
	"time"

	"go.uber.org/zap"

	"github.com/jcanalytics/leadsync-go/pkg/leadsync/layout"
	"github.com/jcanalytics/leadsync-go/pkg/leadsync/store"
)

// SyncMode selects which transitions a reconciliation run applies.
type SyncMode string

const (
	// ModeUpdate copies statuses and comments to the master and releases PO rows.
	ModeUpdate SyncMode = "update"
	// ModeRelease returns rows with a negative outcome to the pool.
	ModeRelease SyncMode = "release"
)

// ParseSyncMode validates a mode name. An empty name means ModeUpdate.
func ParseSyncMode(s string) (SyncMode, error) {
	switch SyncMode(s) {
	case "", ModeUpdate:
		return ModeUpdate, nil
	case ModeRelease:
		return ModeRelease, nil
	default:
		return "", validationError("mode", "%q (must be update or release)", s)
	}
}

// Options configures an Engine.
type Options struct {
	// DataPath is the root of the data directory. Ignored when Layout is set.
	DataPath string
	// Layout overrides the default folder names.
	Layout *layout.Layout
	// Store reads and writes sheets. Defaults to a FileStore.
	Store store.SheetStore
	// Logger receives operation logs. Defaults to a no-op logger.
	Logger *zap.Logger
	// Now returns the current time; used for file names and log dates.
	Now func() time.Time
}

// DefaultOptions returns options rooted at ./data.
func DefaultOptions() Options {
	return Options{DataPath: "data"}
}

func (o Options) layout() *layout.Layout {
	if o.Layout != nil {
		return o.Layout
	}
	return layout.New(o.DataPath)
}

func (o Options) store() store.SheetStore {
	if o.Store != nil {
		return o.Store
	}
	return store.NewFileStore()
}

func (o Options) logger() *zap.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return zap.NewNop()
}

func (o Options) clock() func() time.Time {
	if o.Now != nil {
		return o.Now
	}
	return time.Now
}
