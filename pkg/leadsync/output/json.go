// Package output serializes leadsync results for the command line.
package output

import (
	"encoding/json"
	"io"
)

// Failure is the structured result printed when an operation fails.
type Failure struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Message string `json:"message"`
}

// Success wraps an operation result.
type Success struct {
	Success bool        `json:"success"`
	Result  interface{} `json:"result"`
}

// ToJSON serializes v, indented when pretty is set.
func ToJSON(v interface{}, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}

// Write serializes v to w followed by a newline.
func Write(w io.Writer, v interface{}, pretty bool) error {
	data, err := ToJSON(v, pretty)
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}
