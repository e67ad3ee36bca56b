package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/feyzullahyildiz/patika-graphql/pkg/model"
)

// Seed load errors.
var (
	ErrSeedNotFound = errors.New("seed file not found")
	ErrInvalidSeed  = errors.New("invalid seed data")
)

// Seed is the initial contents of a Store. Ids must be distinct within each
// collection so the allocators can be seeded above them; foreign keys are
// not checked (dangling references are legal).
type Seed struct {
	Users        []model.User        `json:"users" yaml:"users"`
	Events       []model.Event       `json:"events" yaml:"events"`
	Locations    []model.Location    `json:"locations" yaml:"locations"`
	Participants []model.Participant `json:"participants" yaml:"participants"`
}

// LoadSeedFile reads a Seed from a YAML or JSON file. The format is
// detected by extension (.yaml/.yml for YAML, otherwise JSON).
func LoadSeedFile(path string) (Seed, error) {
	var seed Seed

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return seed, fmt.Errorf("%w: %s", ErrSeedNotFound, path)
		}
		return seed, fmt.Errorf("failed to read seed file: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &seed); err != nil {
			return seed, fmt.Errorf("%w: %v", ErrInvalidSeed, err)
		}
	default:
		if err := json.Unmarshal(data, &seed); err != nil {
			return seed, fmt.Errorf("%w: %v", ErrInvalidSeed, err)
		}
	}

	if err := seed.Validate(); err != nil {
		return seed, err
	}
	return seed, nil
}

// Validate checks that ids are distinct within each collection.
func (s Seed) Validate() error {
	if err := distinctIDs("users", ids(s.Users)); err != nil {
		return err
	}
	if err := distinctIDs("events", ids(s.Events)); err != nil {
		return err
	}
	if err := distinctIDs("locations", ids(s.Locations)); err != nil {
		return err
	}
	return distinctIDs("participants", ids(s.Participants))
}

func ids[T Record](items []T) []int {
	out := make([]int, len(items))
	for i, item := range items {
		out[i] = item.RecordID()
	}
	return out
}

func distinctIDs(kind string, ids []int) error {
	seen := make(map[int]bool, len(ids))
	for _, id := range ids {
		if seen[id] {
			return fmt.Errorf("%w: duplicate id %d in %s", ErrInvalidSeed, id, kind)
		}
		seen[id] = true
	}
	return nil
}
