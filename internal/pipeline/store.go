package pipeline

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/koreg/sanctia/internal/model"
)

// Store persists one JSON array of documents per agency under the data
// directory. Arrays are kept ID-sorted so diffs between crawls stay
// readable.
type Store struct {
	dir string
}

// NewStore creates a store rooted at dir.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

func (s *Store) path(agency model.Agency) string {
	return filepath.Join(s.dir, string(agency)+".json")
}

// Load reads the stored documents for an agency. A missing file is an
// empty store, not an error.
func (s *Store) Load(agency model.Agency) ([]model.Document, error) {
	data, err := os.ReadFile(s.path(agency))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read store: %w", err)
	}

	var docs []model.Document
	if err := json.Unmarshal(data, &docs); err != nil {
		return nil, fmt.Errorf("parse store %s: %w", s.path(agency), err)
	}
	return docs, nil
}

// Save writes the documents for an agency, sorted by ID.
func (s *Store) Save(agency model.Agency, docs []model.Document) error {
	sort.Slice(docs, func(i, j int) bool { return docs[i].ID < docs[j].ID })

	data, err := json.MarshalIndent(docs, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal store: %w", err)
	}

	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	if err := os.WriteFile(s.path(agency), data, 0644); err != nil {
		return fmt.Errorf("write store: %w", err)
	}
	return nil
}

// LoadAll reads every agency's documents in crawl order.
func (s *Store) LoadAll() ([]model.Document, error) {
	var all []model.Document
	for _, agency := range model.Agencies() {
		docs, err := s.Load(agency)
		if err != nil {
			return nil, err
		}
		all = append(all, docs...)
	}
	return all, nil
}
