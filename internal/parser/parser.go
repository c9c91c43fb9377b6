package parser

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"log"
	"path/filepath"
	"strconv"
	"strings"

	"planview/internal/model"
)

// Row is one denormalized record from an export file, keyed by the source
// system's field names ("ProjectId", "FullName", ...). All values are kept as
// strings; ids are opaque and must never be parsed as numbers.
type Row map[string]string

// Logical roles an export file can play, matched by base file name.
const (
	RoleProject       = "project_data"
	RoleBoards        = "boards_data"
	RoleStages        = "stages_data"
	RoleWorkItems     = "workitem_data"
	RoleImportance    = "importance_levels_data"
	RoleMilestones    = "milestones_data"
	RoleTags          = "workitem_tags_data"
	RoleTagDefs       = "tags_data"
	RoleUsers         = "project_users_data"
	RoleWorkItemUsers = "workitem_users_data"
	RoleSubtasks      = "subtasks_data"
)

var knownRoles = map[string]struct{}{
	RoleProject:       {},
	RoleBoards:        {},
	RoleStages:        {},
	RoleWorkItems:     {},
	RoleImportance:    {},
	RoleMilestones:    {},
	RoleTags:          {},
	RoleTagDefs:       {},
	RoleUsers:         {},
	RoleWorkItemUsers: {},
	RoleSubtasks:      {},
}

// Role maps a file name like "boards_data.csv" to its logical role. The
// second return is false for unrecognized names; those files are ignored by
// the pipeline, never treated as an error.
func Role(name string) (string, bool) {
	ext := strings.ToLower(filepath.Ext(name))
	if ext != ".csv" && ext != ".json" {
		return "", false
	}
	base := strings.TrimSuffix(name, filepath.Ext(name))
	if _, ok := knownRoles[base]; !ok {
		return "", false
	}
	return base, true
}

// FileSet holds parsed rows grouped by role. A role that is absent or failed
// to parse simply has no entry, which downstream normalizers treat as an
// empty collection.
type FileSet map[string][]Row

// Parse turns a raw file set into rows, one file at a time. A file that fails
// to parse degrades to an absent collection; it never aborts the others.
func Parse(files []model.RawFile) FileSet {
	set := FileSet{}
	for _, f := range files {
		role, ok := Role(f.Name)
		if !ok {
			continue
		}
		rows, err := Rows(f.Name, f.Content)
		if err != nil {
			log.Printf("⚠️  Skipping %s: %v", f.Name, err)
			continue
		}
		set[role] = rows
	}
	return set
}

// Rows parses a single file's content according to its extension.
func Rows(name, content string) ([]Row, error) {
	if strings.EqualFold(filepath.Ext(name), ".json") {
		return jsonRows(content)
	}
	return csvRows(content)
}

// csvRows reads header-driven CSV. Records shorter than the header leave the
// trailing fields absent rather than failing the file; extra fields beyond
// the header are dropped.
func csvRows(content string) ([]Row, error) {
	r := csv.NewReader(strings.NewReader(content))
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("invalid CSV: %w", err)
	}
	if len(records) == 0 {
		return []Row{}, nil
	}
	header := records[0]
	rows := make([]Row, 0, len(records)-1)
	for _, record := range records[1:] {
		row := Row{}
		for i, field := range header {
			if i < len(record) {
				row[field] = record[i]
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// jsonRows requires the content to be a JSON array of objects. Scalar values
// are coerced to strings; nulls and nested values are dropped, since no
// export field maps to them.
func jsonRows(content string) ([]Row, error) {
	dec := json.NewDecoder(strings.NewReader(content))
	dec.UseNumber()
	var raw []map[string]any
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}
	rows := make([]Row, 0, len(raw))
	for _, obj := range raw {
		row := Row{}
		for k, v := range obj {
			switch val := v.(type) {
			case string:
				row[k] = val
			case json.Number:
				row[k] = val.String()
			case bool:
				row[k] = strconv.FormatBool(val)
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}
