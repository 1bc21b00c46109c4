package profile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/csheth/wiki/internal/sections"
)

func TestDefaultCoversEverySection(t *testing.T) {
	p, err := Default()
	require.NoError(t, err)

	for _, id := range sections.All() {
		assert.True(t, p.Has(id), "missing body for %s", id)
		assert.Contains(t, p.Body(id), "# "+id.Title())
	}
	assert.Equal(t, "Personal Wiki - Abhaya Bikram Shahi", p.Site.Title)
	assert.Equal(t, "Personal Wiki", p.Site.Name)
	assert.Equal(t, "https://wiki.abhayabikramshahi.xyz/", p.Site.Canonical)
	assert.Contains(t, p.Site.Keywords, "portfolio")
}

func TestLoadEmptyPathUsesDefault(t *testing.T) {
	p, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "Abhaya Bikram Shahi", p.Site.Author)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.yaml")
	doc := "site:\n  title: Notes\nsections:\n  skills: |\n    # Skills\n\n    - Go\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	p, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Notes", p.Site.Title)
	assert.Equal(t, "Personal Wiki", p.Site.Name)
	assert.Equal(t, "# Skills\n\n- Go", p.Body(sections.Skills))

	assert.False(t, p.Has(sections.Biography))
	assert.Equal(t, "# Biography", p.Body(sections.Biography))
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestParseRejectsUnknownSection(t *testing.T) {
	_, err := Parse([]byte("sections:\n  contact: hi\n  blog: hello\n"))
	require.ErrorIs(t, err, ErrUnknownSection)
	assert.Contains(t, err.Error(), "blog, contact")
}

func TestParseRejectsUnknownField(t *testing.T) {
	_, err := Parse([]byte("site:\n  titel: typo\n"))
	assert.Error(t, err)
}

func TestParseEmptyDocument(t *testing.T) {
	p, err := Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, "Personal Wiki", p.Site.Title)
	assert.Equal(t, "# References", p.Body(sections.References))
}

func TestNilProfileBody(t *testing.T) {
	var p *Profile
	assert.Equal(t, "# Skills", p.Body(sections.Skills))
	assert.False(t, p.Has(sections.Skills))
}
