package batch

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"path/filepath"
	"strconv"
)

// WriteReport writes one "id,width,height" CSV row per written image, in
// input order.
func WriteReport(w io.Writer, results []Result) error {
	cw := csv.NewWriter(w)
	for _, r := range results {
		if r.Err != nil {
			continue
		}
		if err := cw.Write([]string{r.ID, strconv.Itoa(r.Width), strconv.Itoa(r.Height)}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ManifestEntry describes one written image.
type ManifestEntry struct {
	Filename string `json:"filename"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
}

// Manifest maps record ids to the images written for them.
func Manifest(results []Result) map[string]ManifestEntry {
	m := make(map[string]ManifestEntry, len(results))
	for _, r := range results {
		if r.Err != nil {
			continue
		}
		m[r.ID] = ManifestEntry{
			Filename: filepath.Base(r.Path),
			Width:    r.Width,
			Height:   r.Height,
		}
	}
	return m
}

// WriteManifest writes Manifest(results) as indented JSON. Keys are sorted.
func WriteManifest(w io.Writer, results []Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(Manifest(results))
}
