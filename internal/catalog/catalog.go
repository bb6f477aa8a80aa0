// Package catalog describes the calculators the application offers.
//
// The catalog is a declarative list of {id, name, file} records embedded in
// the binary as YAML. Each file names a markdown document, also embedded,
// that explains the calculator; the TUI renders it in the help panel.
package catalog

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/treykane/cli-calc/internal/logging"
)

//go:embed catalog.yaml docs/*.md
var embedded embed.FS

var (
	ErrInvalidCatalog    = errors.New("invalid catalog")
	ErrUnknownCalculator = errors.New("unknown calculator")
)

var catalogLog = logging.New("catalog")

// Entry is one calculator in the catalog.
type Entry struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
	File string `yaml:"file"`
}

type document struct {
	Calculators []Entry `yaml:"calculators"`
}

// Catalog is an ordered, validated list of entries plus their docs.
type Catalog struct {
	entries []Entry
	byID    map[string]int
	docs    fs.FS
}

// Load parses the embedded catalog.
func Load() (*Catalog, error) {
	data, err := embedded.ReadFile("catalog.yaml")
	if err != nil {
		return nil, fmt.Errorf("read embedded catalog: %w", err)
	}
	docs, err := fs.Sub(embedded, "docs")
	if err != nil {
		return nil, fmt.Errorf("open embedded docs: %w", err)
	}
	return Parse(data, docs)
}

// Parse decodes a YAML catalog and checks that every entry has an ID and a
// name, that IDs are unique, and that each file exists in docs.
func Parse(data []byte, docs fs.FS) (*Catalog, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
	}
	if len(doc.Calculators) == 0 {
		return nil, fmt.Errorf("%w: no calculators", ErrInvalidCatalog)
	}

	c := &Catalog{
		entries: make([]Entry, 0, len(doc.Calculators)),
		byID:    make(map[string]int, len(doc.Calculators)),
		docs:    docs,
	}
	for i, entry := range doc.Calculators {
		entry.ID = strings.TrimSpace(entry.ID)
		entry.Name = strings.TrimSpace(entry.Name)
		entry.File = strings.TrimSpace(entry.File)
		if entry.ID == "" || entry.Name == "" {
			return nil, fmt.Errorf("%w: entry %d needs an id and a name", ErrInvalidCatalog, i)
		}
		if _, dup := c.byID[entry.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate id %q", ErrInvalidCatalog, entry.ID)
		}
		if entry.File != "" {
			if _, err := fs.Stat(docs, entry.File); err != nil {
				return nil, fmt.Errorf("%w: %s: doc %q: %v", ErrInvalidCatalog, entry.ID, entry.File, err)
			}
		}
		c.byID[entry.ID] = len(c.entries)
		c.entries = append(c.entries, entry)
	}

	catalogLog.Debug("catalog loaded", "count", len(c.entries))
	return c, nil
}

// Entries returns the calculators in catalog order.
func (c *Catalog) Entries() []Entry {
	return append([]Entry(nil), c.entries...)
}

// Lookup finds an entry by ID.
func (c *Catalog) Lookup(id string) (Entry, error) {
	i, ok := c.byID[strings.TrimSpace(id)]
	if !ok {
		return Entry{}, fmt.Errorf("%w: %q", ErrUnknownCalculator, id)
	}
	return c.entries[i], nil
}

// Index returns the position of id in catalog order, or -1.
func (c *Catalog) Index(id string) int {
	i, ok := c.byID[strings.TrimSpace(id)]
	if !ok {
		return -1
	}
	return i
}

// Doc returns the markdown document for an entry. Entries without a file
// get a heading built from their name.
func (c *Catalog) Doc(entry Entry) (string, error) {
	if entry.File == "" {
		return "# " + entry.Name + "\n", nil
	}
	data, err := fs.ReadFile(c.docs, entry.File)
	if err != nil {
		return "", fmt.Errorf("read doc %q: %w", entry.File, err)
	}
	return string(data), nil
}
