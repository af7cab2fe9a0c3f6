package leadsync

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
	"go.uber.org/zap"

	"github.com/jcanalytics/leadsync-go/pkg/leadsync/models"
	"github.com/jcanalytics/leadsync-go/pkg/leadsync/schema"
	"github.com/jcanalytics/leadsync-go/pkg/leadsync/store"
)

// MinPhoneDigits is the shortest phone number accepted from a raw batch.
const MinPhoneDigits = 7

// ClassificationNew is the classification of freshly ingested leads.
const ClassificationNew = "New"

// Raw batches are positional: phone, first name, last name, address, city,
// state, zip code.
var rawColumns = []struct {
	pos   int
	field schema.Field
}{
	{1, schema.FirstName},
	{2, schema.LastName},
	{3, schema.Address},
	{4, schema.City},
	{5, schema.State},
	{6, schema.ZipCode},
}

// ingestColumns holds resolved master indexes for synthesized rows.
type ingestColumns struct {
	id, phone, classification, level, source int
	raw                                      []int
}

func resolveIngestColumns(header []string) ingestColumns {
	c := ingestColumns{
		id:             schema.ID.Index(header),
		phone:          schema.Phone.Index(header),
		classification: schema.Classification.Index(header),
		level:          schema.Level.Index(header),
		source:         schema.LeadSource.Index(header),
		raw:            make([]int, len(rawColumns)),
	}
	for i, rc := range rawColumns {
		c.raw[i] = rc.field.Index(header)
	}
	return c
}

// ProcessRawData merges every pending raw batch into the master.
//
// Rows are deduplicated by phone digits against the master and against rows
// added earlier in the run; rows with fewer than MinPhoneDigits digits are
// skipped. New rows get sequential IDs. The master is written to
// Main/<MasterFileName> after each batch, and only then is the batch moved
// into the historical archive, so a batch that fails midway stays in RawData
// and is retried on the next run.
func (e *Engine) ProcessRawData() (*models.IngestResult, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	log := e.runLogger("ingest")
	result := &models.IngestResult{Files: []models.IngestedFile{}}

	files, err := e.layout.RawFiles()
	if err != nil {
		return nil, NewIOError("list", e.layout.RawData, err)
	}
	if len(files) == 0 {
		log.Info("no raw data files to process")
		return result, nil
	}

	master, err := e.loadOrCreateMaster(log)
	if err != nil {
		return nil, err
	}
	cols := resolveIngestColumns(master.Header())
	if cols.phone < 0 {
		log.Warn("master has no phone column, deduplication limited to this run")
	}

	phones := make(map[string]struct{}, master.Len())
	for i := 0; i < master.Len(); i++ {
		if p := schema.Digits(master.Cell(i, cols.phone)); p != "" {
			phones[p] = struct{}{}
		}
	}

	nextID := master.Len()
	masterPath := e.layout.DefaultMasterPath()

	for _, name := range files {
		path := filepath.Join(e.layout.RawData, name)
		raw, err := e.store.Read(path)
		if err != nil {
			return nil, NewIOError("read", path, err)
		}
		sum, err := checksum(path)
		if err != nil {
			return nil, NewIOError("read", path, err)
		}

		added := 0
		for _, row := range raw.Rows {
			phone := schema.Digits(rawCell(row, 0))
			if len(phone) < MinPhoneDigits {
				continue
			}
			if _, dup := phones[phone]; dup {
				continue
			}
			nextID++
			phones[phone] = struct{}{}
			master.Append(newLead(cols, len(master.Header()), row, nextID, phone, name))
			added++
		}

		if err := e.write(masterPath, master); err != nil {
			return nil, err
		}
		archived, err := e.layout.Archive(name, e.now())
		if err != nil {
			return nil, NewIOError("archive", path, err)
		}

		result.Added += added
		result.Files = append(result.Files, models.IngestedFile{
			Name: name, Added: added, ArchivedAs: archived, Checksum: sum,
		})
		log.Info("raw file ingested",
			zap.String("file", name),
			zap.Int("added", added),
			zap.String("archived_as", archived),
			zap.String("checksum", sum))
	}

	log.Info("ingestion complete", zap.Int("files", len(result.Files)), zap.Int("added", result.Added))
	return result, nil
}

// loadOrCreateMaster reads the master, or starts one with the standard
// header when Main holds none (or it is empty).
func (e *Engine) loadOrCreateMaster(log *zap.Logger) (*store.Sheet, error) {
	_, master, err := e.loadMaster()
	switch {
	case errors.Is(err, ErrNotFound):
		log.Info("no master file, creating one", zap.String("file", e.layout.DefaultMasterPath()))
		return store.NewSheet(schema.StandardHeader()), nil
	case err != nil:
		return nil, err
	case master.Header() == nil:
		return store.NewSheet(schema.StandardHeader()), nil
	}
	return master, nil
}

func newLead(cols ingestColumns, width int, raw []string, id int, phone, source string) []string {
	row := make([]string, width)
	set := func(idx int, v string) {
		if idx >= 0 && idx < width {
			row[idx] = v
		}
	}
	set(cols.id, strconv.Itoa(id))
	set(cols.phone, phone)
	for i, rc := range rawColumns {
		set(cols.raw[i], rawCell(raw, rc.pos))
	}
	set(cols.classification, ClassificationNew)
	set(cols.level, "1")
	set(cols.source, source)
	return row
}

func rawCell(row []string, pos int) string {
	if pos >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[pos])
}

// checksum returns the xxhash of a file's content as 16 hex digits.
func checksum(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	h := xxhash.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return fmt.Sprintf("%016x", h.Sum64()), nil
}
