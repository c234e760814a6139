// Package yaml loads docinventory keyword configuration from YAML files.
package yaml

import (
	"os"

	"github.com/fwojciec/docinventory"
	"gopkg.in/yaml.v3"
)

// KeywordFile models a keyword configuration file:
//
//	bad_headings:
//	  - FEATURES
//	bad_labels:
//	  - FIRMWARE LIMITATIONS
//
// A key that is absent keeps the built-in list; a key that is present,
// even as an empty list, replaces it.
type KeywordFile struct {
	BadHeadings *[]string `yaml:"bad_headings"`
	BadLabels   *[]string `yaml:"bad_labels"`
}

// ParseKeywords decodes keyword configuration from data.
func ParseKeywords(data []byte) (docinventory.Keywords, error) {
	var f KeywordFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return docinventory.Keywords{}, docinventory.Errorf(docinventory.EINVALID, "parse keywords: %v", err)
	}

	headings := docinventory.DefaultBadHeadings
	if f.BadHeadings != nil {
		headings = *f.BadHeadings
	}
	labels := docinventory.DefaultBadLabels
	if f.BadLabels != nil {
		labels = *f.BadLabels
	}
	return docinventory.NewKeywords(headings, labels), nil
}

// LoadKeywords reads keyword configuration from the file at path.
// An empty path returns the built-in keywords.
func LoadKeywords(path string) (docinventory.Keywords, error) {
	if path == "" {
		return docinventory.DefaultKeywords(), nil
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return docinventory.Keywords{}, docinventory.Errorf(docinventory.ENOTFOUND, "keyword file %q not found", path)
	} else if err != nil {
		return docinventory.Keywords{}, err
	}
	return ParseKeywords(data)
}
