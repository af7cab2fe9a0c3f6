package leadsync

import (
	"strings"

	"go.uber.org/zap"

	"github.com/jcanalytics/leadsync-go/pkg/leadsync/layout"
	"github.com/jcanalytics/leadsync-go/pkg/leadsync/models"
	"github.com/jcanalytics/leadsync-go/pkg/leadsync/schema"
)

// StatusPromoted is written to the master Status of promoted leads.
const StatusPromoted = "Promoted"

// Promote force-assigns the leads with the given IDs to a level-2
// coordinator. IDs are compared after normalization. The promoted rows are
// appended to the coordinator's L2 tracking file for today.
func (e *Engine) Promote(leadIDs []string, coordinator string) (*models.PromoteResult, error) {
	if strings.TrimSpace(coordinator) == "" {
		return nil, validationError("coordinator", "a coordinator name is required")
	}
	if err := layout.ValidatePerson(coordinator); err != nil {
		return nil, validationError("coordinator", "%v", err)
	}
	wanted := make(map[string]struct{}, len(leadIDs))
	for _, id := range leadIDs {
		if key := schema.NormalizeID(id); key != "" {
			wanted[key] = struct{}{}
		}
	}
	if len(wanted) == 0 {
		return nil, validationError("lead_ids", "at least one lead id is required")
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	log := e.runLogger("promote")
	masterPath, master, err := e.loadMaster()
	if err != nil {
		return nil, err
	}
	header := master.Header()
	idxID, err := requireColumn(masterPath, header, schema.ID)
	if err != nil {
		return nil, err
	}
	idxAssigned, err := requireColumn(masterPath, header, schema.AssignedTo)
	if err != nil {
		return nil, err
	}
	idxLevel := optionalColumn(log, masterPath, header, schema.Level)
	idxRole := optionalColumn(log, masterPath, header, schema.Role)
	idxStatus := optionalColumn(log, masterPath, header, schema.Status)

	var rows [][]string
	for i := 0; i < master.Len(); i++ {
		if _, ok := wanted[schema.NormalizeID(master.Cell(i, idxID))]; !ok {
			continue
		}
		master.Set(i, idxAssigned, coordinator)
		master.Set(i, idxLevel, "2")
		master.Set(i, idxRole, RoleForLevel(2))
		master.Set(i, idxStatus, StatusPromoted)
		rows = append(rows, master.CopyRow(i))
	}

	result := &models.PromoteResult{Promoted: len(rows), Coordinator: coordinator}
	if len(rows) > 0 {
		fileName := layout.TrackingFileName(coordinator, true, e.now())
		if err := e.appendToTracking(log, coordinator, header, rows, fileName); err != nil {
			return nil, err
		}
		result.FileName = fileName
	}

	if err := e.write(masterPath, master); err != nil {
		return nil, err
	}
	log.Info("promotion complete", zap.String("coordinator", coordinator), zap.Int("promoted", len(rows)))
	return result, nil
}
