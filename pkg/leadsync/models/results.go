package models

// Assignment reports what distribution did for one person.
type Assignment struct {
	// Assigned is the number of master rows appended to the tracking file.
	Assigned int `json:"assigned"`
	// FileName is the tracking file written for the person.
	FileName string `json:"file_name"`
}

// DistributeResult is returned by a distribution run.
type DistributeResult struct {
	Results map[string]Assignment `json:"results"`
}

// PromoteResult is returned by a promotion run.
type PromoteResult struct {
	Promoted    int    `json:"promoted"`
	Coordinator string `json:"coordinator"`
	FileName    string `json:"file_name,omitempty"`
}

// SyncStats counts reconciliation transitions.
type SyncStats struct {
	// POPromoted counts rows released for manager review.
	POPromoted int `json:"po_promoted"`
	// NAReleased counts rows returned to the pool with a negative outcome.
	NAReleased int `json:"na_released"`
	// Updates counts every master mutation, including plain status/comment copies.
	Updates int `json:"updates"`
}

// SyncResult is returned by a reconciliation run.
type SyncResult struct {
	Stats          SyncStats `json:"stats"`
	FilesUpdated   int       `json:"files_updated"`
	HistoryEntries int       `json:"history_entries"`
	// HistoryFile is the log written for this run, empty when nothing was logged.
	HistoryFile string `json:"history_file,omitempty"`
}

// HistoryEntry is one row of a reconciliation log.
type HistoryEntry struct {
	Date   string `json:"date"`
	ID     string `json:"id"`
	User   string `json:"user"`
	Action string `json:"action"`
	Status string `json:"status"`
	Note   string `json:"note"`
}

// IngestedFile reports what ingestion did with one raw source file.
type IngestedFile struct {
	Name  string `json:"name"`
	Added int    `json:"added"`
	// ArchivedAs is the file name inside the historical archive.
	ArchivedAs string `json:"archived_as,omitempty"`
	// Checksum is the xxhash of the raw file content (hex).
	Checksum string `json:"checksum,omitempty"`
}

// IngestResult is returned by a raw data ingestion run.
type IngestResult struct {
	Added int            `json:"added"`
	Files []IngestedFile `json:"files"`
}
