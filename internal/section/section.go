// Package section defines the fixed set of portfolio sections and tracks
// which one is active for a given scroll position.
package section

import "strings"

// ID identifies one of the portfolio sections.
type ID string

const (
	Home           ID = "home"
	About          ID = "about"
	Projects       ID = "projects"
	Skills         ID = "skills"
	Education      ID = "education"
	Experience     ID = "experience"
	Certifications ID = "certifications"
	Contact        ID = "contact"
)

// Order is the document order of the sections. Tracking iterates it as-is.
var Order = []ID{Home, About, Projects, Skills, Education, Experience, Certifications, Contact}

// Valid reports whether id is one of the fixed sections.
func Valid(id ID) bool {
	for _, known := range Order {
		if known == id {
			return true
		}
	}
	return false
}

// Parse resolves a section id from user input. Matching ignores case and
// surrounding space, and accepts the "work" label for experience.
func Parse(s string) (ID, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "work" {
		return Experience, true
	}
	id := ID(s)
	return id, Valid(id)
}

// Index returns the position of id in Order, or -1.
func Index(id ID) int {
	for i, known := range Order {
		if known == id {
			return i
		}
	}
	return -1
}

// Label is the navigation caption for id.
func Label(id ID) string {
	if id == Experience {
		return "Work"
	}
	s := string(id)
	if s == "" {
		return ""
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
