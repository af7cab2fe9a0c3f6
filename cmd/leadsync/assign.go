package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/jcanalytics/leadsync-go/pkg/leadsync"
)

// parseAssignments parses values of the form "Person=0,2,5".
func parseAssignments(values []string) (map[string][]int, error) {
	out := make(map[string][]int)
	for _, v := range values {
		person, list, ok := strings.Cut(v, "=")
		person = strings.TrimSpace(person)
		if !ok || person == "" {
			return nil, &leadsync.ValidationError{Field: "assign", Reason: fmt.Sprintf("%q (expected Person=row,row)", v)}
		}
		for _, part := range strings.Split(list, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			idx, err := strconv.Atoi(part)
			if err != nil {
				return nil, &leadsync.ValidationError{Field: "assign", Reason: fmt.Sprintf("row %q of %s is not a number", part, person)}
			}
			out[person] = append(out[person], idx)
		}
		if _, seen := out[person]; !seen {
			out[person] = nil
		}
	}
	return out, nil
}

// loadAssignments reads a YAML mapping of person to master rows.
func loadAssignments(path string) (map[string][]int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, leadsync.NewIOError("read", path, err)
	}
	var out map[string][]int
	if err := yaml.Unmarshal(data, &out); err != nil {
		return nil, &leadsync.ValidationError{Field: "assign-file", Reason: err.Error()}
	}
	return out, nil
}

func mergeAssignments(dst, src map[string][]int) {
	for person, rows := range src {
		dst[person] = append(dst[person], rows...)
	}
}
