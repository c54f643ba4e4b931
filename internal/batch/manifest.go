package batch

import (
	"encoding/json"
	"os"
)

// Manifest describes one batch run.
type Manifest struct {
	Dimensions      int             `json:"dimensions"`
	Vertices        int             `json:"vertices"`
	Edges           int             `json:"edges"`
	PerspectiveDist float64         `json:"perspective_dist"`
	Frames          []ManifestEntry `json:"frames"`
}

// ManifestEntry represents one frame in the output manifest.
type ManifestEntry struct {
	Index int     `json:"index"`
	T     float64 `json:"t"`
	Image string  `json:"image"`
	Error string  `json:"error,omitempty"`
}

// WriteManifest writes manifest.json describing cfg's scene and the
// successful frames (failed ones keep their error).
func WriteManifest(path string, cfg Config, results []Result) error {
	m := Manifest{Frames: make([]ManifestEntry, len(results))}
	if s := cfg.Scene; s != nil {
		m.Dimensions = s.Dims
		m.Vertices = len(s.Vertices())
		m.Edges = len(s.Edges())
		m.PerspectiveDist = s.PerspectiveDist
	}
	for i, r := range results {
		e := ManifestEntry{Index: r.Index, T: r.T, Error: r.Error}
		if r.Success {
			e.Image = r.Image
		}
		m.Frames[i] = e
	}

	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
