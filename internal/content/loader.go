package content

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/adrg/frontmatter"
)

// Load reads a portfolio file: Markdown with an optional YAML front matter.
// Front matter fields overlay Default; a non-empty body replaces the about
// text.
func Load(path string) (Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Profile{}, fmt.Errorf("reading content: %w", err)
	}
	return Parse(data)
}

// Parse decodes portfolio file contents, see Load.
func Parse(data []byte) (Profile, error) {
	profile := Default()
	body, err := frontmatter.Parse(bytes.NewReader(data), &profile)
	if err != nil {
		return Profile{}, fmt.Errorf("parsing content front matter: %w", err)
	}
	if about := strings.TrimSpace(string(body)); about != "" {
		profile.About = about
	}
	return profile, nil
}
