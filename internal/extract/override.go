package extract

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Override is the manually verified correction for one document the
// heuristics are known to misread (typically severely degraded OCR).
type Override struct {
	Target   string `yaml:"target"`
	Sanction string `yaml:"sanction"`
}

// Overrides maps document IDs to corrections. It is curated by hand and
// supplied as external configuration; code never adds entries.
type Overrides map[string]Override

// LoadOverrides reads the override table from a YAML file of the form:
//
//	"2021-검사-1234":
//	  target: 기관
//	  sanction: 업무정지 3개월
//
// An empty path or a missing file yields an empty table; a file that exists
// but does not parse is an error, since silently dropping curated fixes
// would reintroduce the misreads they patch.
func LoadOverrides(path string) (Overrides, error) {
	if path == "" {
		return Overrides{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Overrides{}, nil
		}
		return nil, fmt.Errorf("read overrides: %w", err)
	}

	var table Overrides
	if err := yaml.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("parse overrides: %w", err)
	}
	if table == nil {
		table = Overrides{}
	}
	return table, nil
}
