// Package models defines data structures returned by leadsync operations.
package models

// SheetView represents the contents of one spreadsheet file as seen by a client.
type SheetView struct {
	// Exists is false when the requested file could not be located.
	Exists bool `json:"exists"`
	// FileName is the file name (no path).
	FileName string `json:"file_name,omitempty"`
	// Person owns the file when it is a tracking file.
	Person string `json:"person,omitempty"`
	// Headers is the header row.
	Headers []string `json:"headers,omitempty"`
	// Rows contains data rows with typed cell values.
	Rows [][]interface{} `json:"rows,omitempty"`
	// TotalRows is the number of data rows.
	TotalRows int `json:"total_rows"`
	// AllFiles lists every tracking file of the person (tracking views only).
	AllFiles []string `json:"all_files,omitempty"`
}
