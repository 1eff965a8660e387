// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package classify

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"
)

// Keywords holds the substring sets driving affiliation classification.
// Matching is case-insensitive; every entry must be lowercase.
type Keywords struct {
	// Academic entries veto a commercial classification.
	Academic []string `yaml:"academic"`

	// Commercial entries mark an affiliation as pharmaceutical/biotech.
	Commercial []string `yaml:"commercial"`
}

// DefaultKeywords returns the built-in keyword sets.
func DefaultKeywords() Keywords {
	return Keywords{
		Academic: []string{
			"university", "college", "institute", "school", "hospital",
			"medical center", "research center", "laboratory", "dept",
			"department", "faculty", "academic", "clinic", "medical school",
		},
		Commercial: []string{
			"pharmaceutical", "pharmaceuticals", "pharma", "biotech",
			"biotechnology", "biopharmaceutical", "biopharmaceuticals",
			"drug", "medicines", "therapeutics",
			"inc.", "inc", "corp.", "corp", "ltd.", "ltd", "company", "co.",
			"gmbh", "ag", "sa", "plc", "llc", "limited",
		},
	}
}

// LoadKeywords reads extra keywords from a YAML file and appends them to
// the defaults. The file may supply either list or both:
//
//	academic:
//	  - polytechnic
//	commercial:
//	  - biosciences
func LoadKeywords(path string) (Keywords, error) {
	kw := DefaultKeywords()

	data, err := os.ReadFile(path)
	if err != nil {
		return kw, fmt.Errorf("reading keywords file: %w", err)
	}

	var extra Keywords
	if err := yaml.Unmarshal(data, &extra); err != nil {
		return kw, fmt.Errorf("parsing keywords file %s: %w", path, err)
	}

	kw.Academic = append(kw.Academic, extra.Academic...)
	kw.Commercial = append(kw.Commercial, extra.Commercial...)
	return kw, nil
}
