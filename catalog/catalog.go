// SPDX-License-Identifier: MIT

package catalog

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/realdual/expr"
)

var (
	// ErrInvalidEntry is returned for an entry with a missing name, an
	// expression that does not compile or a bad interval.
	ErrInvalidEntry = errors.New("catalog: invalid entry")

	// ErrDuplicateName is returned when two entries share a name.
	ErrDuplicateName = errors.New("catalog: duplicate name")

	// ErrNotFound is returned by Compile for an unknown name.
	ErrNotFound = errors.New("catalog: no such function")
)

// Entry is a named function with its plotting interval.
type Entry struct {
	Name        string  `yaml:"name" json:"name"`
	Expr        string  `yaml:"expr" json:"expr"`
	From        float64 `yaml:"from" json:"from"`
	To          float64 `yaml:"to" json:"to"`
	Description string  `yaml:"description,omitempty" json:"description,omitempty"`
}

// Catalog is an immutable set of compiled entries.
type Catalog struct {
	entries map[string]Entry
	progs   map[string]*expr.Program
}

// New builds a Catalog from entries.
//
// Errors: ErrInvalidEntry (wrapping the compile error, if any) and
// ErrDuplicateName.
func New(entries ...Entry) (*Catalog, error) {
	c := &Catalog{
		entries: make(map[string]Entry, len(entries)),
		progs:   make(map[string]*expr.Program, len(entries)),
	}
	for i, e := range entries {
		if err := c.add(e); err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
	}

	return c, nil
}

func (c *Catalog) add(e Entry) error {
	if e.Name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidEntry)
	}
	if _, dup := c.entries[e.Name]; dup {
		return fmt.Errorf("%q: %w", e.Name, ErrDuplicateName)
	}
	if math.IsNaN(e.From) || math.IsNaN(e.To) || math.IsInf(e.From, 0) ||
		math.IsInf(e.To, 0) || !(e.From < e.To) {
		return fmt.Errorf("%q: %w: interval [%v, %v]", e.Name, ErrInvalidEntry, e.From, e.To)
	}
	p, err := expr.Compile(e.Expr)
	if err != nil {
		return fmt.Errorf("%q: %w: %w", e.Name, ErrInvalidEntry, err)
	}
	c.entries[e.Name] = e
	c.progs[e.Name] = p

	return nil
}

// Merge returns a new Catalog holding the entries of c and of other; an
// entry of other replaces an entry of c with the same name.
func (c *Catalog) Merge(other *Catalog) *Catalog {
	m := &Catalog{
		entries: make(map[string]Entry, len(c.entries)+len(other.entries)),
		progs:   make(map[string]*expr.Program, len(c.progs)+len(other.progs)),
	}
	for _, src := range []*Catalog{c, other} {
		for name, e := range src.entries {
			m.entries[name] = e
			m.progs[name] = src.progs[name]
		}
	}

	return m
}

// Lookup returns the entry called name.
func (c *Catalog) Lookup(name string) (Entry, bool) {
	e, ok := c.entries[name]
	return e, ok
}

// Compile returns the compiled program of the entry called name.
// Errors: ErrNotFound.
func (c *Catalog) Compile(name string) (*expr.Program, error) {
	p, ok := c.progs[name]
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrNotFound)
	}
	return p, nil
}

// Names returns the entry names in ascending order.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.entries))
	for name := range c.entries {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// Entries returns all entries ordered by name.
func (c *Catalog) Entries() []Entry {
	names := c.Names()
	out := make([]Entry, len(names))
	for i, name := range names {
		out[i] = c.entries[name]
	}

	return out
}

// Len returns the number of entries.
func (c *Catalog) Len() int { return len(c.entries) }

// Load decodes a YAML sequence of entries. Unknown keys are rejected.
func Load(r io.Reader) (*Catalog, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var entries []Entry
	if err := dec.Decode(&entries); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("catalog: decode: %w", err)
	}

	return New(entries...)
}

// LoadFile is Load on the named file.
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: %w", err)
	}
	defer f.Close()

	c, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return c, nil
}
