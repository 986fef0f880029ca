package extract

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "overrides.yaml")

	content := `"2021-검사-1234":
  target: 기관
  sanction: 업무정지 3개월
"fss-20180712":
  target: 임원
  sanction: 문책경고
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	table, err := LoadOverrides(path)
	if err != nil {
		t.Fatalf("LoadOverrides failed: %v", err)
	}
	if len(table) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(table))
	}

	ov, ok := table["2021-검사-1234"]
	if !ok {
		t.Fatal("expected entry for 2021-검사-1234")
	}
	if ov.Target != "기관" || ov.Sanction != "업무정지 3개월" {
		t.Errorf("got %+v", ov)
	}
}

func TestLoadOverrides_MissingFile(t *testing.T) {
	table, err := LoadOverrides(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("missing file should not error: %v", err)
	}
	if len(table) != 0 {
		t.Errorf("expected empty table, got %d entries", len(table))
	}
}

func TestLoadOverrides_EmptyPath(t *testing.T) {
	table, err := LoadOverrides("")
	if err != nil {
		t.Fatalf("empty path should not error: %v", err)
	}
	if len(table) != 0 {
		t.Errorf("expected empty table, got %d entries", len(table))
	}
}

func TestLoadOverrides_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("{not yaml: ["), 0644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	if _, err := LoadOverrides(path); err == nil {
		t.Error("expected error for malformed file")
	}
}
