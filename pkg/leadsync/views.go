package leadsync

import (
	"errors"
	"path/filepath"

	"github.com/jcanalytics/leadsync-go/pkg/leadsync/layout"
	"github.com/jcanalytics/leadsync-go/pkg/leadsync/models"
	"github.com/jcanalytics/leadsync-go/pkg/leadsync/store"
)

// RootTrackingKey groups workbooks stored directly under Tracking.
const RootTrackingKey = "_root"

var spreadsheetExts = []string{".xlsx", ".xls", ".csv"}

// Structure lists the files of every data folder.
func (e *Engine) Structure() (*models.Structure, error) {
	l := e.layout
	s := &models.Structure{Tracking: make(map[string][]models.FileInfo)}

	var err error
	if s.Main, err = layout.List(l.Main, spreadsheetExts...); err != nil {
		return nil, NewIOError("list", l.Main, err)
	}
	if s.RawData, err = layout.List(l.RawData, spreadsheetExts...); err != nil {
		return nil, NewIOError("list", l.RawData, err)
	}
	if s.Historical, err = layout.List(l.Historical, spreadsheetExts...); err != nil {
		return nil, NewIOError("list", l.Historical, err)
	}

	people, err := l.People()
	if err != nil {
		return nil, NewIOError("list", l.Tracking, err)
	}
	for _, person := range people {
		files, err := layout.List(l.TrackingDir(person), ".xlsx", ".xls")
		if err != nil {
			return nil, NewIOError("list", l.TrackingDir(person), err)
		}
		s.Tracking[person] = files
	}
	root, err := layout.List(l.Tracking, ".xlsx", ".xls")
	if err != nil {
		return nil, NewIOError("list", l.Tracking, err)
	}
	if len(root) > 0 {
		s.Tracking[RootTrackingKey] = root
	}
	return s, nil
}

// Master returns the master workbook. Exists is false when there is none.
func (e *Engine) Master() (*models.SheetView, error) {
	path, sheet, err := e.loadMaster()
	if errors.Is(err, ErrNotFound) {
		return &models.SheetView{}, nil
	}
	if err != nil {
		return nil, err
	}
	return sheetView(path, sheet), nil
}

// Tracking returns the latest tracking file of person together with the
// names of all its tracking files.
func (e *Engine) Tracking(person string) (*models.SheetView, error) {
	if err := layout.ValidatePerson(person); err != nil {
		return nil, validationError("person", "%v", err)
	}
	path, ok, err := e.layout.LatestTrackingFile(person)
	if err != nil {
		return nil, NewIOError("list", e.layout.TrackingDir(person), err)
	}
	if !ok {
		return &models.SheetView{Person: person}, nil
	}
	sheet, err := e.store.Read(path)
	if err != nil {
		return nil, NewIOError("read", path, err)
	}
	files, err := e.layout.TrackingFiles(person)
	if err != nil {
		return nil, NewIOError("list", e.layout.TrackingDir(person), err)
	}

	view := sheetView(path, sheet)
	view.Person = person
	for _, f := range files {
		view.AllFiles = append(view.AllFiles, f.Name)
	}
	return view, nil
}

// TrackingAll returns the latest tracking file of every person who has one.
func (e *Engine) TrackingAll() (map[string]*models.SheetView, error) {
	people, err := e.layout.People()
	if err != nil {
		return nil, NewIOError("list", e.layout.Tracking, err)
	}
	out := make(map[string]*models.SheetView)
	for _, person := range people {
		path, ok, err := e.layout.LatestTrackingFile(person)
		if err != nil {
			return nil, NewIOError("list", e.layout.TrackingDir(person), err)
		}
		if !ok {
			continue
		}
		sheet, err := e.store.Read(path)
		if err != nil {
			return nil, NewIOError("read", path, err)
		}
		view := sheetView(path, sheet)
		view.Person = person
		out[person] = view
	}
	return out, nil
}

// History lists the historical archive, newest first.
func (e *Engine) History() ([]models.FileInfo, error) {
	files, err := layout.List(e.layout.Historical, spreadsheetExts...)
	if err != nil {
		return nil, NewIOError("list", e.layout.Historical, err)
	}
	layout.SortNewestFirst(files)
	return files, nil
}

func sheetView(path string, s *store.Sheet) *models.SheetView {
	view := &models.SheetView{
		Exists:    true,
		FileName:  filepath.Base(path),
		Headers:   s.Header(),
		TotalRows: s.Len(),
	}
	for i := 0; i < s.Len(); i++ {
		view.Rows = append(view.Rows, store.TypedRow(s.Row(i)))
	}
	return view
}
