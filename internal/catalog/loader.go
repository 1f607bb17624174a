package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// subjectFile is the on-disk YAML shape for one subject's catalog.
type subjectFile struct {
	Subject string        `yaml:"subject"`
	Items   []ContentItem `yaml:"items"`
}

// LoadFile reads a subject catalog from a YAML file. Item order in the
// file is the authoring order.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	var sf subjectFile
	if err := yaml.Unmarshal(data, &sf); err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", filepath.Base(path), err)
	}

	c := New(sf.Items)
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("catalog %s: %w", filepath.Base(path), err)
	}
	return c, nil
}

// LoadDir loads every *.yaml catalog under dir, keyed by the subject name
// declared in the file (falling back to the file stem). Used for offline
// and development catalogs; the platform API is the usual source.
func LoadDir(dir string) (map[string]*Catalog, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read catalog dir: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if strings.HasSuffix(e.Name(), ".yaml") || strings.HasSuffix(e.Name(), ".yml") {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	out := make(map[string]*Catalog, len(names))
	for _, name := range names {
		path := filepath.Join(dir, name)
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read catalog: %w", err)
		}
		var sf subjectFile
		if err := yaml.Unmarshal(data, &sf); err != nil {
			return nil, fmt.Errorf("parse catalog %s: %w", name, err)
		}
		subject := sf.Subject
		if subject == "" {
			subject = strings.TrimSuffix(strings.TrimSuffix(name, ".yaml"), ".yml")
		}
		c := New(sf.Items)
		if err := c.Validate(); err != nil {
			return nil, fmt.Errorf("catalog %s: %w", name, err)
		}
		out[subject] = c
	}
	return out, nil
}
