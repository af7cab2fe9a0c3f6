package leadsync

import (
	"sort"
	"strconv"

	"go.uber.org/zap"

	"github.com/jcanalytics/leadsync-go/pkg/leadsync/layout"
	"github.com/jcanalytics/leadsync-go/pkg/leadsync/models"
	"github.com/jcanalytics/leadsync-go/pkg/leadsync/schema"
)

// RoleForLevel returns the pipeline role of a level.
func RoleForLevel(level int) string {
	if level == 1 {
		return "Analyst"
	}
	return "Coordinator"
}

// Distribute assigns master rows to people. assignments maps a person to
// zero-based data row indexes of the master; indexes outside the master are
// skipped. Each assigned row gets AssignedTo, Level and Role updated and a
// copy is appended to the person's tracking file for today.
//
// Distribute is not idempotent: repeating a request appends the same rows to
// the tracking files again.
func (e *Engine) Distribute(assignments map[string][]int, level int) (*models.DistributeResult, error) {
	if len(assignments) == 0 {
		return nil, validationError("assignments", "at least one assignment is required")
	}
	if level != 1 && level != 2 {
		return nil, validationError("level", "%d (must be 1 or 2)", level)
	}
	people := make([]string, 0, len(assignments))
	for person := range assignments {
		if err := layout.ValidatePerson(person); err != nil {
			return nil, validationError("person", "%v", err)
		}
		people = append(people, person)
	}
	sort.Strings(people)

	e.mu.Lock()
	defer e.mu.Unlock()

	log := e.runLogger("distribute")
	masterPath, master, err := e.loadMaster()
	if err != nil {
		return nil, err
	}
	header := master.Header()
	idxAssigned, err := requireColumn(masterPath, header, schema.AssignedTo)
	if err != nil {
		return nil, err
	}
	idxLevel := optionalColumn(log, masterPath, header, schema.Level)
	idxRole := optionalColumn(log, masterPath, header, schema.Role)

	role := RoleForLevel(level)
	now := e.now()
	result := &models.DistributeResult{Results: make(map[string]models.Assignment)}

	for _, person := range people {
		var rows [][]string
		for _, idx := range assignments[person] {
			if master.Row(idx) == nil {
				log.Warn("row index out of range", zap.String("person", person), zap.Int("row", idx))
				continue
			}
			master.Set(idx, idxAssigned, person)
			master.Set(idx, idxLevel, strconv.Itoa(level))
			master.Set(idx, idxRole, role)
			rows = append(rows, master.CopyRow(idx))
		}
		if len(rows) == 0 {
			continue
		}

		fileName := layout.TrackingFileName(person, false, now)
		if err := e.appendToTracking(log, person, header, rows, fileName); err != nil {
			return nil, err
		}
		result.Results[person] = models.Assignment{Assigned: len(rows), FileName: fileName}
		log.Info("rows distributed", zap.String("person", person), zap.Int("assigned", len(rows)), zap.String("file", fileName))
	}

	if err := e.write(masterPath, master); err != nil {
		return nil, err
	}
	log.Info("distribution complete", zap.Int("people", len(result.Results)), zap.Int("level", level))
	return result, nil
}
