package ingredients

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"formulyst/report/report"
)

// ErrUnknownAlias is returned when an alias points at an entry id that does not exist.
var ErrUnknownAlias = errors.New("alias references unknown hazard id")

// Entry is a hazard database record describing one ingredient.
type Entry struct {
	ID                  string                      `json:"id"`
	Name                string                      `json:"name"`
	CAS                 []string                    `json:"cas"`
	HazardLevel         string                      `json:"hazard_level"`
	Recommendation      string                      `json:"recommendation"`
	Categories          []string                    `json:"categories"`
	Reasons             []string                    `json:"reasons"`
	RegulatoryCA        string                      `json:"regulatory_CA"`
	RegulatoryEU        string                      `json:"regulatory_EU"`
	Prop65              bool                        `json:"prop65"`
	SourceRegulatory    string                      `json:"source_regulatory"`
	SourceScientific    string                      `json:"source_scientific"`
	SourceConsumer      string                      `json:"source_consumer"`
	EnvironmentalImpact *report.EnvironmentalImpact `json:"environmental_impact,omitempty"`
}

// Database indexes hazard entries by id and by normalized alias.
type Database struct {
	byID    map[string]Entry
	aliases map[string]string
	keys    []string
}

// NewDatabase builds a database from entries and an alias index mapping alias to entry id.
// Alias keys are normalized with NormalizeToken.
func NewDatabase(entries []Entry, aliasIndex map[string]string) (*Database, error) {
	db := &Database{
		byID:    make(map[string]Entry, len(entries)),
		aliases: make(map[string]string, len(aliasIndex)),
	}
	for _, e := range entries {
		if e.ID == "" {
			return nil, fmt.Errorf("hazard entry %q has no id", e.Name)
		}
		db.byID[e.ID] = e
	}
	for alias, id := range aliasIndex {
		key := NormalizeToken(alias)
		if key == "" {
			continue
		}
		if _, ok := db.byID[id]; !ok {
			return nil, fmt.Errorf("alias %q: %w: %s", alias, ErrUnknownAlias, id)
		}
		db.aliases[key] = id
	}
	db.keys = make([]string, 0, len(db.aliases))
	for k := range db.aliases {
		db.keys = append(db.keys, k)
	}
	sort.Strings(db.keys)
	return db, nil
}

// LoadDatabase reads hazards.json (an array of entries) and alias_index.json
// (an object mapping alias to entry id).
func LoadDatabase(hazardsPath, aliasIndexPath string) (*Database, error) {
	var entries []Entry
	if err := readJSON(hazardsPath, &entries); err != nil {
		return nil, err
	}
	aliases := make(map[string]string)
	if err := readJSON(aliasIndexPath, &aliases); err != nil {
		return nil, err
	}
	return NewDatabase(entries, aliases)
}

// Size returns the number of entries.
func (db *Database) Size() int {
	return len(db.byID)
}

// Lookup returns the entry an exactly matching alias points at.
func (db *Database) Lookup(alias string) (Entry, bool) {
	id, ok := db.aliases[alias]
	if !ok {
		return Entry{}, false
	}
	e, ok := db.byID[id]
	return e, ok
}

// Aliases returns the normalized alias keys in sorted order.
func (db *Database) Aliases() []string {
	out := make([]string, len(db.keys))
	copy(out, db.keys)
	return out
}

func readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", filepath.Base(path), err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}
	return nil
}
