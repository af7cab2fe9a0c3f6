// Package layout maps leadsync concepts onto the data directory:
// Main holds the master file, Tracking/<person> the per-person files,
// RawData the pending batches and Historical the archive and audit logs.
package layout

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jcanalytics/leadsync-go/pkg/leadsync/models"
	"github.com/jcanalytics/leadsync-go/pkg/leadsync/store"
)

const (
	// DateFormat names tracking files and log dates.
	DateFormat = "2006-01-02"
	// StampFormat prefixes archived batches and names history logs.
	StampFormat = "2006-01-02-15-04-05"
)

// ErrInvalidPerson indicates a person name that cannot be used as a directory name.
var ErrInvalidPerson = errors.New("invalid person name")

// Layout locates files inside the data directory.
type Layout struct {
	Main       string
	Tracking   string
	RawData    string
	Historical string
	// MasterFileName is preferred when Main holds several workbooks and is
	// the name used when a master is created.
	MasterFileName string
}

// New returns the layout rooted at root with the default folder names.
func New(root string) *Layout {
	return &Layout{
		Main:           filepath.Join(root, "Main"),
		Tracking:       filepath.Join(root, "Tracking"),
		RawData:        filepath.Join(root, "RawData"),
		Historical:     filepath.Join(root, "Historical"),
		MasterFileName: "Datos.xlsx",
	}
}

// MasterPath returns the authoritative master file: MasterFileName (case
// insensitive) when present, otherwise the first .xlsx file in Main.
func (l *Layout) MasterPath() (string, error) {
	names, err := fileNames(l.Main)
	if err != nil {
		return "", err
	}
	var first string
	for _, name := range names {
		if strings.EqualFold(name, l.MasterFileName) {
			return filepath.Join(l.Main, name), nil
		}
		if first == "" && hasExt(name, ".xlsx") {
			first = name
		}
	}
	if first == "" {
		return "", fmt.Errorf("%w: no master workbook in %s", store.ErrNotFound, l.Main)
	}
	return filepath.Join(l.Main, first), nil
}

// DefaultMasterPath is where a newly created master is written.
func (l *Layout) DefaultMasterPath() string {
	return filepath.Join(l.Main, l.MasterFileName)
}

// ValidatePerson rejects names that would escape the tracking directory.
func ValidatePerson(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" || trimmed == "." || trimmed == ".." ||
		strings.ContainsAny(name, `/\`) || trimmed != name {
		return fmt.Errorf("%w: %q", ErrInvalidPerson, name)
	}
	return nil
}

// TrackingDir is the directory holding one person's tracking files.
func (l *Layout) TrackingDir(person string) string {
	return filepath.Join(l.Tracking, person)
}

// People lists tracking directories in listing order. A missing Tracking
// directory yields no people.
func (l *Layout) People() ([]string, error) {
	entries, err := os.ReadDir(l.Tracking)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	var people []string
	for _, e := range entries {
		if e.IsDir() {
			people = append(people, e.Name())
		}
	}
	return people, nil
}

// TrackingFiles lists the .xlsx files of one person in listing order.
func (l *Layout) TrackingFiles(person string) ([]models.FileInfo, error) {
	return List(l.TrackingDir(person), ".xlsx")
}

// LatestTrackingFile returns the most recently modified tracking file of a
// person, breaking ties by the lexically greatest name. ok is false when the
// person has no tracking file.
func (l *Layout) LatestTrackingFile(person string) (path string, ok bool, err error) {
	files, err := l.TrackingFiles(person)
	if err != nil || len(files) == 0 {
		return "", false, err
	}
	latest := files[0]
	for _, f := range files[1:] {
		if f.Modified.After(latest.Modified) ||
			(f.Modified.Equal(latest.Modified) && f.Name > latest.Name) {
			latest = f
		}
	}
	return filepath.Join(l.TrackingDir(person), latest.Name), true, nil
}

// TrackingFileName is the deterministic per-day name of a tracking file.
// Promoted level-2 batches carry an L2 tag.
func TrackingFileName(person string, promoted bool, now time.Time) string {
	date := now.UTC().Format(DateFormat)
	if promoted {
		return fmt.Sprintf("%s_L2_%s.xlsx", person, date)
	}
	return fmt.Sprintf("%s_%s.xlsx", person, date)
}

// RawFiles lists pending batches (.xlsx, .xls, .csv) in listing order.
func (l *Layout) RawFiles() ([]string, error) {
	names, err := fileNames(l.RawData)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	var out []string
	for _, name := range names {
		if hasExt(name, ".xlsx", ".xls", ".csv") {
			out = append(out, name)
		}
	}
	return out, nil
}

// Archive moves a processed raw batch into Historical under a timestamped
// name and returns that name.
func (l *Layout) Archive(name string, now time.Time) (string, error) {
	if err := os.MkdirAll(l.Historical, 0755); err != nil {
		return "", err
	}
	archived := fmt.Sprintf("Processed_%s_%s", now.UTC().Format(StampFormat), name)
	if err := os.Rename(filepath.Join(l.RawData, name), filepath.Join(l.Historical, archived)); err != nil {
		return "", err
	}
	return archived, nil
}

// HistoryLogPath returns a path for a new reconciliation log that does not
// collide with an existing file.
func (l *Layout) HistoryLogPath(now time.Time) string {
	base := "History_Log_" + now.UTC().Format(StampFormat)
	path := filepath.Join(l.Historical, base+".xlsx")
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return path
	}
	suffix := strings.SplitN(uuid.NewString(), "-", 2)[0]
	return filepath.Join(l.Historical, base+"_"+suffix+".xlsx")
}

// List returns the files of dir matching any of exts (case insensitive),
// in listing order. A missing directory yields nothing.
func List(dir string, exts ...string) ([]models.FileInfo, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	var out []models.FileInfo
	for _, e := range entries {
		if e.IsDir() || !hasExt(e.Name(), exts...) {
			continue
		}
		info, err := e.Info()
		if err != nil {
			return nil, err
		}
		out = append(out, models.FileInfo{Name: e.Name(), Size: info.Size(), Modified: info.ModTime()})
	}
	return out, nil
}

// SortNewestFirst orders files by modification time, newest first.
func SortNewestFirst(files []models.FileInfo) {
	sort.SliceStable(files, func(i, j int) bool {
		return files[i].Modified.After(files[j].Modified)
	})
}

func fileNames(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", store.ErrNotFound, dir)
		}
		return nil, err
	}
	var names []string
	for _, e := range entries {
		if !e.IsDir() {
			names = append(names, e.Name())
		}
	}
	return names, nil
}

func hasExt(name string, exts ...string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range exts {
		if ext == e {
			return true
		}
	}
	return false
}
