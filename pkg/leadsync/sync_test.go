package leadsync

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcanalytics/leadsync-go/pkg/leadsync/layout"
)

func historyLogs(t *testing.T, l *layout.Layout) []string {
	t.Helper()
	matches, err := filepath.Glob(filepath.Join(l.Historical, "History_Log_*.xlsx"))
	require.NoError(t, err)
	return matches
}

func TestSyncUpdateReleasesPO(t *testing.T) {
	f := newFixture(t)
	f.writeMaster("1", "2", "3")
	anaFile := filepath.Join(f.layout.TrackingDir("Ana"), "Ana_2026-10-15.xlsx")
	f.writeSheet(anaFile, masterHeader,
		[]string{"2", "", "", " po ", "Ana", "1", "Analyst", ""},
		[]string{"3", "", "", "Callback", "Ana", "1", "Analyst", "call at 5"},
		[]string{"99", "", "", "PO", "Ana", "1", "Analyst", ""},
	)

	res, err := f.engine.Sync(ModeUpdate)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Stats.POPromoted)
	assert.Equal(t, 0, res.Stats.NAReleased)
	assert.Equal(t, 2, res.Stats.Updates)
	assert.Equal(t, 1, res.FilesUpdated)
	assert.Equal(t, 1, res.HistoryEntries)

	m := f.master()
	assert.Equal(t, "PO", m.Cell(1, 3))
	assert.Equal(t, "", m.Cell(1, 4))
	assert.Equal(t, "CALLBACK", m.Cell(2, 3))
	assert.Equal(t, "call at 5", m.Cell(2, 7))
	assert.Equal(t, "", m.Cell(0, 3))

	tracking := f.readSheet(anaFile)
	require.Equal(t, 2, tracking.Len())
	assert.Equal(t, "3", tracking.Cell(0, 0))
	assert.Equal(t, "99", tracking.Cell(1, 0), "unmatched rows are carried over")

	logs := historyLogs(t, f.layout)
	require.Len(t, logs, 1)
	assert.Equal(t, res.HistoryFile, filepath.Base(logs[0]))
	log := f.readSheet(logs[0])
	assert.Equal(t, HistoryHeader, log.Header())
	require.Equal(t, 1, log.Len())
	assert.Equal(t, []string{"2026-10-16", "2", "Ana", ActionPOReleased, "PO", "Released for manager review"}, log.Row(0))
}

func TestSyncReleaseNegative(t *testing.T) {
	f := newFixture(t)
	f.writeMaster("A-1", "A-2", "A-3")
	m := f.master()
	for i := 0; i < 3; i++ {
		m.Set(i, 4, "Bob")
	}
	require.NoError(t, f.fs.Write(f.masterPath(), m))

	bobFile := filepath.Join(f.layout.TrackingDir("Bob"), "Bob_2026-10-10.xlsx")
	f.writeSheet(bobFile, masterHeader,
		[]string{"a1", "", "", "No Answer", "Bob", "1", "Analyst", ""},
		[]string{"A-2", "", "", "Interested", "Bob", "1", "Analyst", "hot"},
		[]string{"A 3", "", "", "PO", "Bob", "1", "Analyst", ""},
	)

	res, err := f.engine.Sync(ModeRelease)
	require.NoError(t, err)
	assert.Equal(t, 0, res.Stats.POPromoted)
	assert.Equal(t, 1, res.Stats.NAReleased)
	assert.Equal(t, 1, res.Stats.Updates)
	assert.Equal(t, 1, res.FilesUpdated)

	m = f.master()
	assert.Equal(t, "NO ANSWER", m.Cell(0, 3))
	assert.Equal(t, "", m.Cell(0, 4))
	assert.Equal(t, "", m.Cell(1, 3), "release mode does not copy statuses")
	assert.Equal(t, "Bob", m.Cell(1, 4))
	assert.Equal(t, "Bob", m.Cell(2, 4))

	tracking := f.readSheet(bobFile)
	require.Equal(t, 2, tracking.Len())
	assert.Equal(t, "A-2", tracking.Cell(0, 0))
	assert.Equal(t, "A 3", tracking.Cell(1, 0))

	logs := historyLogs(t, f.layout)
	require.Len(t, logs, 1)
	row := f.readSheet(logs[0]).Row(0)
	assert.Equal(t, ActionReleasedNegative, row[3])
	assert.Equal(t, "NO ANSWER", row[4])
	assert.Equal(t, "Returned to pool", row[5])
}

func TestSyncLeavesUnchangedTrackingFilesAlone(t *testing.T) {
	f := newFixture(t)
	f.writeMaster("1")
	anaFile := filepath.Join(f.layout.TrackingDir("Ana"), "Ana_2026-10-15.xlsx")
	f.writeSheet(anaFile, masterHeader, []string{"1", "", "", "Interested", "Ana", "1", "Analyst", ""})
	old := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, os.Chtimes(anaFile, old, old))

	res, err := f.engine.Sync(ModeUpdate)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Stats.Updates)
	assert.Equal(t, 0, res.FilesUpdated)
	assert.Equal(t, 0, res.HistoryEntries)
	assert.Empty(t, res.HistoryFile)
	assert.Empty(t, historyLogs(t, f.layout))

	info, err := os.Stat(anaFile)
	require.NoError(t, err)
	assert.True(t, info.ModTime().Equal(old))
	assert.Equal(t, "INTERESTED", f.master().Cell(0, 3))
}

func TestSyncUsesLatestTrackingFileAndSkipsUnresolvable(t *testing.T) {
	f := newFixture(t)
	f.writeMaster("1", "2")

	oldFile := filepath.Join(f.layout.TrackingDir("Ana"), "Ana_2026-10-01.xlsx")
	newFile := filepath.Join(f.layout.TrackingDir("Ana"), "Ana_2026-09-01.xlsx")
	f.writeSheet(oldFile, masterHeader, []string{"1", "", "", "PO", "Ana", "1", "Analyst", ""})
	f.writeSheet(newFile, masterHeader, []string{"2", "", "", "PO", "Ana", "1", "Analyst", ""})
	require.NoError(t, os.Chtimes(oldFile, fixedNow.Add(-time.Hour), fixedNow.Add(-time.Hour)))
	require.NoError(t, os.Chtimes(newFile, fixedNow, fixedNow))

	// No Status column: the whole person is skipped.
	f.writeSheet(filepath.Join(f.layout.TrackingDir("Carl"), "Carl.xlsx"), []string{"ID", "Notes"}, []string{"1", "PO"})
	// A directory without workbooks is ignored.
	require.NoError(t, os.MkdirAll(f.layout.TrackingDir("Empty"), 0755))

	res, err := f.engine.Sync(ModeUpdate)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Stats.POPromoted)

	m := f.master()
	assert.Equal(t, "", m.Cell(0, 3))
	assert.Equal(t, "PO", m.Cell(1, 3))
	assert.Equal(t, 1, f.readSheet(oldFile).Len())
	assert.Equal(t, 0, f.readSheet(newFile).Len())
}

func TestSyncDuplicateMasterIDsUpdateLastRow(t *testing.T) {
	f := newFixture(t)
	f.writeMaster("7", "7")
	f.writeSheet(filepath.Join(f.layout.TrackingDir("Ana"), "Ana.xlsx"), masterHeader,
		[]string{"7", "", "", "Callback", "Ana", "1", "Analyst", ""})

	_, err := f.engine.Sync(ModeUpdate)
	require.NoError(t, err)
	m := f.master()
	assert.Equal(t, "", m.Cell(0, 3))
	assert.Equal(t, "CALLBACK", m.Cell(1, 3))
}

func TestSyncErrors(t *testing.T) {
	f := newFixture(t)

	_, err := f.engine.Sync("purge")
	assert.Equal(t, "validation", Kind(err))

	_, err = f.engine.Sync(ModeUpdate)
	assert.Equal(t, "not_found", Kind(err))

	f.writeSheet(f.masterPath(), []string{"Phone", "Status"}, []string{"555", ""})
	_, err = f.engine.Sync(ModeUpdate)
	assert.Equal(t, "schema", Kind(err))
}

func TestStatusClassifiers(t *testing.T) {
	tests := []struct {
		status   string
		passOver bool
		negative bool
	}{
		{"PO", true, false},
		{"PASS OVER", true, false},
		{"NO SALE", false, true},
		{"DISCONNECTED", false, true},
		{"ALL CIRCUITS BUSY", false, true},
		{"ACB", false, true},
		{"INTERESTED", false, false},
		{"", false, false},
	}
	for _, tt := range tests {
		if got := isPassOver(tt.status); got != tt.passOver {
			t.Errorf("isPassOver(%q) = %v, expected %v", tt.status, got, tt.passOver)
		}
		if got := isNegative(tt.status); got != tt.negative {
			t.Errorf("isNegative(%q) = %v, expected %v", tt.status, got, tt.negative)
		}
	}
}
