// Package profile holds the page's static content: site metadata and one
// markdown body per section.
package profile

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/csheth/wiki/internal/sections"
)

//go:embed profile.yaml
var defaultDocument []byte

// ErrUnknownSection reports a section key that is not one of the fixed ids.
var ErrUnknownSection = errors.New("unknown section")

// Site is the page metadata.
type Site struct {
	Name              string   `yaml:"name"`
	Title             string   `yaml:"title"`
	Description       string   `yaml:"description"`
	Author            string   `yaml:"author"`
	Canonical         string   `yaml:"canonical"`
	Keywords          []string `yaml:"keywords"`
	SearchPlaceholder string   `yaml:"search_placeholder"`
}

// Profile is a parsed content document.
type Profile struct {
	Site   Site
	bodies map[sections.ID]string
}

type document struct {
	Site     Site              `yaml:"site"`
	Sections map[string]string `yaml:"sections"`
}

// Default returns the embedded profile.
func Default() (*Profile, error) {
	p, err := Parse(defaultDocument)
	if err != nil {
		return nil, fmt.Errorf("embedded profile: %w", err)
	}
	return p, nil
}

// Load reads a profile from path. An empty path yields the embedded one.
func Load(path string) (*Profile, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading profile: %w", err)
	}
	p, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("profile %s: %w", path, err)
	}
	return p, nil
}

// Parse decodes a YAML profile. Unknown fields and unknown section keys are
// rejected so typos surface instead of silently dropping content.
func Parse(data []byte) (*Profile, error) {
	var doc document
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing YAML: %w", err)
	}

	bodies := make(map[sections.ID]string, len(doc.Sections))
	var unknown []string
	for key, body := range doc.Sections {
		id, ok := sections.Parse(key)
		if !ok {
			unknown = append(unknown, key)
			continue
		}
		bodies[id] = strings.TrimSpace(body)
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return nil, fmt.Errorf("%w: %s", ErrUnknownSection, strings.Join(unknown, ", "))
	}

	site := doc.Site
	if site.Name == "" {
		site.Name = "Personal Wiki"
	}
	if site.Title == "" {
		site.Title = site.Name
	}
	return &Profile{Site: site, bodies: bodies}, nil
}

// Body returns the markdown for id. Sections the document leaves out get a
// bare heading so the page keeps all eight anchors.
func (p *Profile) Body(id sections.ID) string {
	if p != nil {
		if body, ok := p.bodies[id]; ok && body != "" {
			return body
		}
	}
	return "# " + id.Title()
}

// Has reports whether the document supplied a body for id.
func (p *Profile) Has(id sections.ID) bool {
	if p == nil {
		return false
	}
	_, ok := p.bodies[id]
	return ok
}
