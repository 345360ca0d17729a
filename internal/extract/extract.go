// Package extract loads the raw NASA data files: the NEO catalog CSV
// and the close-approach JSON export. It maps file columns to model
// fields and nothing more; linking and indexing happen in catalog.
package extract

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/papapumpkin/perihelion/internal/neo"
)

// ErrMissingColumn indicates a required column is absent from an input
// file's header.
var ErrMissingColumn = errors.New("required column missing")

// neoColumns are the columns consumed from the NEO CSV; the export
// carries dozens more, all ignored.
var neoColumns = []string{"pdes", "name", "pha", "diameter"}

// cadColumns are the fields consumed from the close-approach JSON.
var cadColumns = []string{"des", "cd", "dist", "v_rel"}

// LoadBodies reads near-Earth objects from a CSV file with a header
// row. A blank diameter or hazard flag degrades gracefully (unknown
// diameter, not hazardous); a missing required column is an error.
func LoadBodies(path string) ([]*neo.Body, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening NEO file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("reading NEO header: %w", err)
	}

	col := make(map[string]int, len(header))
	for i, name := range header {
		col[name] = i
	}
	for _, name := range neoColumns {
		if _, ok := col[name]; !ok {
			return nil, fmt.Errorf("%w: %s in %s", ErrMissingColumn, name, path)
		}
	}

	var bodies []*neo.Body
	for line := 2; ; line++ {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading NEO row %d: %w", line, err)
		}
		bodies = append(bodies, neo.NewBody(
			row[col["pdes"]],
			row[col["name"]],
			row[col["pha"]],
			row[col["diameter"]],
		))
	}
	return bodies, nil
}

// cadDocument is the close-approach export layout: a fields array
// naming the columns, and a data array of rows.
type cadDocument struct {
	Fields []string `json:"fields"`
	Data   [][]any  `json:"data"`
}

// LoadApproaches reads close approaches from the NASA cad.json export.
// All consumed fields are required non-empty strings convertible to
// their target types; anything else is a loader error.
func LoadApproaches(path string) ([]*neo.Approach, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening approach file: %w", err)
	}

	var doc cadDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	col := make(map[string]int, len(doc.Fields))
	for i, name := range doc.Fields {
		col[name] = i
	}
	for _, name := range cadColumns {
		if _, ok := col[name]; !ok {
			return nil, fmt.Errorf("%w: %s in %s", ErrMissingColumn, name, path)
		}
	}

	approaches := make([]*neo.Approach, 0, len(doc.Data))
	for i, row := range doc.Data {
		des, err := stringAt(row, col["des"])
		if err != nil {
			return nil, fmt.Errorf("approach row %d: %w", i, err)
		}
		cd, err := stringAt(row, col["cd"])
		if err != nil {
			return nil, fmt.Errorf("approach row %d: %w", i, err)
		}
		dist, err := stringAt(row, col["dist"])
		if err != nil {
			return nil, fmt.Errorf("approach row %d: %w", i, err)
		}
		vrel, err := stringAt(row, col["v_rel"])
		if err != nil {
			return nil, fmt.Errorf("approach row %d: %w", i, err)
		}

		a, err := neo.NewApproach(des, cd, dist, vrel)
		if err != nil {
			return nil, fmt.Errorf("approach row %d: %w", i, err)
		}
		approaches = append(approaches, a)
	}
	return approaches, nil
}

// stringAt pulls a required string cell out of a row.
func stringAt(row []any, idx int) (string, error) {
	if idx >= len(row) {
		return "", fmt.Errorf("row has %d cells, need index %d", len(row), idx)
	}
	s, ok := row[idx].(string)
	if !ok || s == "" {
		return "", fmt.Errorf("cell %d is %v, want non-empty string", idx, row[idx])
	}
	return s, nil
}
