package genome

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ParseJSON parses a genome from JSON. Track ownership links are rebuilt and
// reversed feature coordinates are normalized, matching NewFeature.
func ParseJSON(data []byte) (*Genome, error) {
	var g Genome
	if err := json.Unmarshal(data, &g); err != nil {
		return nil, fmt.Errorf("parse genome: %w", err)
	}
	if g.Length <= 0 {
		for _, s := range g.Sequences {
			if s.Length > g.Length {
				g.Length = s.Length
			}
		}
	}
	if g.Length <= 0 {
		return nil, fmt.Errorf("parse genome: length must be positive")
	}
	for _, t := range g.Tracks {
		if t.ID == "" {
			return nil, fmt.Errorf("parse genome: track %q has no id", t.Name)
		}
		for _, f := range t.Features {
			if f.Start > f.End {
				f.Start, f.End = f.End, f.Start
			}
			if f.Strand == "" {
				f.Strand = StrandNone
			}
			f.TrackID = t.ID
		}
	}
	return &g, nil
}

// GenerateJSON serializes a genome to JSON, optionally indented.
func GenerateJSON(g *Genome, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(g, "", "  ")
	}
	return json.Marshal(g)
}

// Load reads a genome file. Only the JSON container format is recognized;
// annotation formats (GFF, GenBank) are converted by external tooling.
func Load(path string) (*Genome, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return ParseJSON(data)
	default:
		return nil, fmt.Errorf("unrecognized genome format: %s", filepath.Ext(path))
	}
}

// Save writes a genome as indented JSON.
func Save(g *Genome, path string) error {
	data, err := GenerateJSON(g, true)
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0644)
}
