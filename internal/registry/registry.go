// Package registry reads pattern registry dumps: a JSON array of records,
// one per pattern.
package registry

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/wesen/hexrender/pkg/pattern"
)

// Record is one registry entry. Name and Modname are descriptive only.
type Record struct {
	ID      string `json:"id"`
	Start   string `json:"start"`
	Angles  string `json:"angles"`
	Name    string `json:"name"`
	Modname string `json:"modname"`
}

// Load reads a registry dump from a JSON file.
func Load(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open registry: %w", err)
	}
	defer f.Close()

	records, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return records, nil
}

// Decode parses a registry dump.
func Decode(r io.Reader) ([]Record, error) {
	var records []Record
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("failed to parse registry JSON: %w", err)
	}
	return records, nil
}

// Pattern parses the record's start and angles. Errors name the record.
func (r Record) Pattern() (pattern.Pattern, error) {
	p, err := pattern.Parse(r.Start, r.Angles)
	if err != nil {
		return pattern.Pattern{}, fmt.Errorf("record %q: %w", r.ID, err)
	}
	return p, nil
}

var stemReplacer = strings.NewReplacer(":", "_", "/", "_")

// FileStem turns a record id into a file name without extension, so
// "hexcasting:open_paren" becomes "hexcasting_open_paren" and the result
// never contains a slash.
func FileStem(id string) string {
	return stemReplacer.Replace(id)
}
