package content

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kyaoi/termfolio/internal/section"
)

func TestSectionsFollowOrder(t *testing.T) {
	blocks := Sections(Default(), nil)
	require.Len(t, blocks, len(section.Order))
	for i, b := range blocks {
		assert.Equal(t, section.Order[i], b.ID)
		assert.NotEmpty(t, strings.TrimSpace(b.Markdown), "section %s", b.ID)
	}
	assert.Contains(t, blocks[0].Markdown, "# Rishav Sinha")
	assert.Contains(t, blocks[0].Markdown, "`3` View My Work")
	assert.Contains(t, blocks[5].Markdown, "Worqhat (Winlysis Pvt.Ltd)")
	assert.Contains(t, blocks[7].Markdown, "mailto:rishavsinha57@gmail.com")
}

func TestSectionsHidden(t *testing.T) {
	blocks := Sections(Default(), []section.ID{section.Education, section.Certifications})
	var ids []section.ID
	for _, b := range blocks {
		ids = append(ids, b.ID)
	}
	assert.Equal(t, []section.ID{
		section.Home, section.About, section.Projects, section.Skills, section.Experience, section.Contact,
	}, ids)
}

func TestHomeHintsSkipHiddenTargets(t *testing.T) {
	home := Sections(Default(), []section.ID{section.Contact})[0].Markdown
	assert.Contains(t, home, "`3` View My Work")
	assert.NotContains(t, home, "Get In Touch")

	home = Sections(Default(), []section.ID{section.Projects, section.Contact})[0].Markdown
	assert.NotContains(t, home, "View My Work")
	assert.NotContains(t, home, "Get In Touch")
}

func TestParseFrontMatterOverlaysDefaults(t *testing.T) {
	src := `---
name: Ada Lovelace
initials: AL
projects:
  - title: Analytical Engine Notes
    description: Programs for the engine.
    tech: [Bernoulli]
---
I write about engines.
`
	p, err := Parse([]byte(src))
	require.NoError(t, err)

	assert.Equal(t, "Ada Lovelace", p.Name)
	assert.Equal(t, "AL", p.Initials)
	require.Len(t, p.Projects, 1)
	assert.Equal(t, []string{"Bernoulli"}, p.Projects[0].Tech)
	assert.Equal(t, "I write about engines.", p.About)
	assert.Equal(t, Default().Skills, p.Skills, "fields absent from the front matter keep their defaults")
}

func TestParseWithoutFrontMatter(t *testing.T) {
	p, err := Parse([]byte("Just an about paragraph."))
	require.NoError(t, err)
	assert.Equal(t, Default().Name, p.Name)
	assert.Equal(t, "Just an about paragraph.", p.About)
}

func TestParseEmptyBodyKeepsAbout(t *testing.T) {
	p, err := Parse([]byte("---\ntagline: Builder\n---\n"))
	require.NoError(t, err)
	assert.Equal(t, "Builder", p.Tagline)
	assert.Equal(t, Default().About, p.About)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "portfolio.md")
	require.NoError(t, os.WriteFile(path, []byte("---\nname: Grace\n---\n"), 0o644))

	p, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Grace", p.Name)

	_, err = Load(filepath.Join(t.TempDir(), "missing.md"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
