// Package export writes query results to CSV or JSON files, matching
// the column contract of the upstream data set tools.
package export

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/papapumpkin/perihelion/internal/catalog"
	"github.com/papapumpkin/perihelion/internal/neo"
)

// ErrUnknownExtension indicates an outfile whose extension selects no
// writer.
var ErrUnknownExtension = errors.New("unrecognized outfile extension")

// csvFields is the column order for flat CSV output.
var csvFields = []string{
	"datetime_utc",
	"distance_au",
	"velocity_km_s",
	"designation",
	"name",
	"diameter_km",
	"potentially_hazardous",
}

// Write drains results into the file at path, choosing the format from
// the extension: .csv or .json.
func Write(results *catalog.Results, path string) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return WriteCSV(results, path)
	case ".json":
		return WriteJSON(results, path)
	default:
		return fmt.Errorf("%w: %q (want .csv or .json)", ErrUnknownExtension, filepath.Ext(path))
	}
}

// WriteCSV drains results into a CSV file: a header row of the seven
// flat fields, then one row per approach. An unknown diameter is
// written as NaN, matching the source data set's conventions.
func WriteCSV(results *catalog.Results, path string) error {
	return writeAtomic(path, func(f *os.File) error {
		w := csv.NewWriter(f)
		if err := w.Write(csvFields); err != nil {
			return fmt.Errorf("writing CSV header: %w", err)
		}

		for results.Next() {
			rec, err := results.Approach().Record(neo.RecordFlat)
			if err != nil {
				return fmt.Errorf("serializing approach: %w", err)
			}
			row := make([]string, len(csvFields))
			for i, field := range csvFields {
				row[i] = formatCell(rec[field])
			}
			if err := w.Write(row); err != nil {
				return fmt.Errorf("writing CSV row: %w", err)
			}
		}

		w.Flush()
		return w.Error()
	})
}

// WriteJSON drains results into a JSON file: an indented array of
// nested records. JSON has no NaN literal, so an unknown diameter is
// written as null.
func WriteJSON(results *catalog.Results, path string) error {
	records := []map[string]any{}
	for results.Next() {
		rec, err := results.Approach().Record(neo.RecordNested)
		if err != nil {
			return fmt.Errorf("serializing approach: %w", err)
		}
		if sub, ok := rec["neo"].(map[string]any); ok {
			if d, ok := sub["diameter_km"].(float64); ok && math.IsNaN(d) {
				sub["diameter_km"] = nil
			}
		}
		records = append(records, rec)
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling results: %w", err)
	}

	return writeAtomic(path, func(f *os.File) error {
		_, err := f.Write(append(data, '\n'))
		return err
	})
}

// writeAtomic writes through a temp file in the destination directory
// and renames into place on success, so a failed export never leaves a
// truncated file behind.
func writeAtomic(path string, fill func(*os.File) error) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}

	success := false
	defer func() {
		if !success {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if err := fill(tmp); err != nil {
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("renaming into place: %w", err)
	}
	success = true
	return nil
}

// formatCell renders one record value for CSV.
func formatCell(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(x)
	default:
		return fmt.Sprintf("%v", x)
	}
}
