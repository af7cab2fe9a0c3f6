package leadsync

import (
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/jcanalytics/leadsync-go/pkg/leadsync/layout"
	"github.com/jcanalytics/leadsync-go/pkg/leadsync/models"
	"github.com/jcanalytics/leadsync-go/pkg/leadsync/schema"
	"github.com/jcanalytics/leadsync-go/pkg/leadsync/store"
)

// History actions written to reconciliation logs.
const (
	ActionPOReleased       = "PO_RELEASED"
	ActionReleasedNegative = "RELEASED_NEGATIVE"
)

// StatusPO is the master status of leads passed over for manager review.
const StatusPO = "PO"

// NegativeKeywords mark a tracking status as a negative outcome. A status
// matches when it contains any keyword.
var NegativeKeywords = []string{"NA", "NS", "DISC", "ACB", "NO SALE", "DISCONNECTED", "NO ANSWER", "ALL CIRCUITS"}

// HistoryHeader is the column set of reconciliation logs.
var HistoryHeader = []string{"Date", "ID", "User", "Action", "Status", "Note"}

func isPassOver(status string) bool {
	return strings.Contains(status, "PO") || strings.Contains(status, "PASS OVER")
}

func isNegative(status string) bool {
	for _, k := range NegativeKeywords {
		if strings.Contains(status, k) {
			return true
		}
	}
	return false
}

// masterColumns holds the resolved master indexes used by reconciliation.
type masterColumns struct {
	id, status, assigned, comments int
}

type pendingWrite struct {
	path  string
	sheet *store.Sheet
}

// Sync reconciles every person's latest tracking file into the master.
//
// Tracking rows whose ID is unknown to the master are always kept. In
// ModeUpdate, PO rows are released for manager review and removed from the
// tracking file; other rows copy their status and comment into the master.
// In ModeRelease, rows with a negative outcome are returned to the pool and
// removed; other rows are left alone. Tracking files are only rewritten
// when a row was removed. Every release is recorded in a new history log.
//
// When the master holds duplicate IDs the last occurrence receives updates.
func (e *Engine) Sync(mode SyncMode) (*models.SyncResult, error) {
	if mode != ModeUpdate && mode != ModeRelease {
		return nil, validationError("mode", "%q (must be update or release)", mode)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	log := e.runLogger("sync").With(zap.String("mode", string(mode)))
	masterPath, master, err := e.loadMaster()
	if err != nil {
		return nil, err
	}
	header := master.Header()
	cols := masterColumns{}
	if cols.id, err = requireColumn(masterPath, header, schema.ID); err != nil {
		return nil, err
	}
	cols.status = optionalColumn(log, masterPath, header, schema.Status)
	cols.assigned = optionalColumn(log, masterPath, header, schema.AssignedTo)
	cols.comments = optionalColumn(log, masterPath, header, schema.Comments)

	index := make(map[string]int, master.Len())
	for i := 0; i < master.Len(); i++ {
		if id := schema.NormalizeID(master.Cell(i, cols.id)); id != "" {
			index[id] = i
		}
	}

	people, err := e.layout.People()
	if err != nil {
		return nil, NewIOError("list", e.layout.Tracking, err)
	}

	result := &models.SyncResult{}
	var history []models.HistoryEntry
	var pending []pendingWrite
	today := e.now().UTC().Format(layout.DateFormat)

	for _, person := range people {
		path, ok, err := e.layout.LatestTrackingFile(person)
		if err != nil {
			return nil, NewIOError("list", e.layout.TrackingDir(person), err)
		}
		if !ok {
			continue
		}
		tracking, err := e.store.Read(path)
		if err != nil {
			return nil, NewIOError("read", path, err)
		}

		kept, entries, stats := reconcile(mode, person, today, tracking, master, index, cols)
		if kept == nil {
			log.Warn("tracking file lacks ID or Status column, skipped",
				zap.String("person", person), zap.String("file", filepath.Base(path)))
			continue
		}
		result.Stats.POPromoted += stats.POPromoted
		result.Stats.NAReleased += stats.NAReleased
		result.Stats.Updates += stats.Updates
		history = append(history, entries...)

		if kept.Len() < tracking.Len() {
			pending = append(pending, pendingWrite{path: path, sheet: kept})
		}
		log.Debug("tracking file reconciled",
			zap.String("person", person),
			zap.Int("rows", tracking.Len()),
			zap.Int("kept", kept.Len()))
	}

	for _, w := range pending {
		if err := e.write(w.path, w.sheet); err != nil {
			return nil, err
		}
	}
	result.FilesUpdated = len(pending)

	if err := e.write(masterPath, master); err != nil {
		return nil, err
	}

	if len(history) > 0 {
		logSheet := store.NewSheet(HistoryHeader)
		for _, h := range history {
			logSheet.Append([]string{h.Date, h.ID, h.User, h.Action, h.Status, h.Note})
		}
		logPath := e.layout.HistoryLogPath(e.now())
		if err := e.write(logPath, logSheet); err != nil {
			return nil, err
		}
		result.HistoryEntries = len(history)
		result.HistoryFile = filepath.Base(logPath)
	}

	log.Info("sync complete",
		zap.Int("po_promoted", result.Stats.POPromoted),
		zap.Int("na_released", result.Stats.NAReleased),
		zap.Int("updates", result.Stats.Updates),
		zap.Int("files_updated", result.FilesUpdated),
		zap.Int("history_entries", result.HistoryEntries))
	return result, nil
}

// reconcile applies mode to one tracking sheet, mutating master in place.
// It returns the rows to keep (header included), or nil when the tracking
// sheet has no resolvable ID or Status column.
func reconcile(mode SyncMode, person, today string, tracking, master *store.Sheet, index map[string]int, cols masterColumns) (*store.Sheet, []models.HistoryEntry, models.SyncStats) {
	var stats models.SyncStats
	header := tracking.Header()
	idxID := schema.ID.Index(header)
	idxStatus := schema.Status.Index(header)
	if idxID < 0 || idxStatus < 0 {
		return nil, nil, stats
	}
	idxComments := schema.Comments.Index(header)

	kept := store.NewSheet(header)
	var history []models.HistoryEntry

	for i := 0; i < tracking.Len(); i++ {
		row := tracking.Row(i)
		id := schema.NormalizeID(tracking.Cell(i, idxID))
		mi, ok := index[id]
		if id == "" || !ok {
			kept.Append(row)
			continue
		}
		status := strings.ToUpper(strings.TrimSpace(tracking.Cell(i, idxStatus)))
		comment := tracking.Cell(i, idxComments)

		switch {
		case mode == ModeUpdate && isPassOver(status):
			master.Set(mi, cols.status, StatusPO)
			master.Set(mi, cols.assigned, "")
			history = append(history, models.HistoryEntry{
				Date: today, ID: id, User: person,
				Action: ActionPOReleased, Status: status, Note: "Released for manager review",
			})
			stats.POPromoted++
			stats.Updates++
		case mode == ModeRelease && isNegative(status):
			master.Set(mi, cols.status, status)
			master.Set(mi, cols.assigned, "")
			history = append(history, models.HistoryEntry{
				Date: today, ID: id, User: person,
				Action: ActionReleasedNegative, Status: status, Note: "Returned to pool",
			})
			stats.NAReleased++
			stats.Updates++
		case mode == ModeUpdate:
			if status != "" {
				master.Set(mi, cols.status, status)
			}
			if comment != "" {
				master.Set(mi, cols.comments, comment)
			}
			stats.Updates++
			kept.Append(row)
		default:
			kept.Append(row)
		}
	}
	return kept, history, stats
}
