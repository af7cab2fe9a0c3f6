package models

import "time"

// FileInfo describes a file inside the data directory.
type FileInfo struct {
	Name     string    `json:"name"`
	Size     int64     `json:"size"`
	Modified time.Time `json:"modified"`
}

// Structure is a listing of the data directory.
type Structure struct {
	Main       []FileInfo            `json:"main"`
	Tracking   map[string][]FileInfo `json:"tracking"`
	RawData    []FileInfo            `json:"raw_data"`
	Historical []FileInfo            `json:"historical"`
}
