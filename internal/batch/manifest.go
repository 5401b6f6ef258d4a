package batch

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// ManifestEntry represents one rendered image in the output manifest.
type ManifestEntry struct {
	Name      string `json:"name"`
	Scene     string `json:"scene"`
	Image     string `json:"image"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	Spheres   int    `json:"spheres"`
	Lights    int    `json:"lights"`
	ElapsedMS int64  `json:"elapsed_ms"`
}

// WriteManifest writes manifest.json listing every successful result.
// Image paths are relative to the manifest's directory.
func WriteManifest(path string, results []Result) error {
	dir := filepath.Dir(path)
	entries := make([]ManifestEntry, 0, len(results))
	for _, r := range results {
		if !r.Success {
			continue
		}
		img, err := filepath.Rel(dir, r.Output)
		if err != nil {
			img = r.Output
		}
		entries = append(entries, ManifestEntry{
			Name:      r.Name,
			Scene:     r.Scene,
			Image:     filepath.ToSlash(img),
			Width:     r.Width,
			Height:    r.Height,
			Spheres:   r.Spheres,
			Lights:    r.Lights,
			ElapsedMS: r.Elapsed.Milliseconds(),
		})
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
