package pipeline

import (
	"testing"

	"github.com/koreg/sanctia/internal/model"
)

func TestStore_RoundTrip(t *testing.T) {
	s := NewStore(t.TempDir())

	docs := []model.Document{
		{Agency: model.AgencyFSS, ID: "2023-077", Title: "가나은행에 대한 제재"},
		{Agency: model.AgencyFSS, ID: "2023-012", Title: "다라증권에 대한 제재"},
	}
	if err := s.Save(model.AgencyFSS, docs); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := s.Load(model.AgencyFSS)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(loaded) != 2 {
		t.Fatalf("expected 2 documents, got %d", len(loaded))
	}
	// Save sorts by ID.
	if loaded[0].ID != "2023-012" || loaded[1].ID != "2023-077" {
		t.Errorf("store not ID-sorted: %s, %s", loaded[0].ID, loaded[1].ID)
	}
}

func TestStore_MissingFile(t *testing.T) {
	s := NewStore(t.TempDir())

	docs, err := s.Load(model.AgencyKRX)
	if err != nil {
		t.Fatalf("missing file should not error: %v", err)
	}
	if docs != nil {
		t.Errorf("expected nil for empty store, got %+v", docs)
	}
}

func TestStore_LoadAll(t *testing.T) {
	s := NewStore(t.TempDir())

	if err := s.Save(model.AgencyFSS, []model.Document{{Agency: model.AgencyFSS, ID: "a"}}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := s.Save(model.AgencyBOK, []model.Document{{Agency: model.AgencyBOK, ID: "b"}}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	all, err := s.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("expected 2 documents, got %d", len(all))
	}
}
