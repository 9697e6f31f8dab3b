package content

import (
	"fmt"
	"strings"

	"github.com/kyaoi/termfolio/internal/section"
)

// Block is the Markdown source of one section.
type Block struct {
	ID       section.ID
	Markdown string
}

// Sections renders p into one block per visible section, in section.Order.
func Sections(p Profile, hidden []section.ID) []Block {
	skip := make(map[section.ID]bool, len(hidden))
	for _, id := range hidden {
		skip[id] = true
	}

	blocks := make([]Block, 0, len(section.Order))
	for _, id := range section.Order {
		if skip[id] {
			continue
		}
		blocks = append(blocks, Block{ID: id, Markdown: sectionMarkdown(p, id, skip)})
	}
	return blocks
}

func sectionMarkdown(p Profile, id section.ID, skip map[section.ID]bool) string {
	var b strings.Builder
	switch id {
	case section.Home:
		writeHome(&b, p, skip)
	case section.About:
		writeAbout(&b, p)
	case section.Projects:
		writeProjects(&b, p)
	case section.Skills:
		writeSkills(&b, p)
	case section.Education:
		writeEducation(&b, p)
	case section.Experience:
		writeExperience(&b, p)
	case section.Certifications:
		writeCertifications(&b, p)
	case section.Contact:
		writeContact(&b, p)
	}
	return b.String()
}

// writeHome writes the hero; its key hints only name sections on screen.
func writeHome(b *strings.Builder, p Profile, skip map[section.ID]bool) {
	if p.Initials != "" {
		fmt.Fprintf(b, "**[ %s ]**\n\n", p.Initials)
	}
	fmt.Fprintf(b, "# %s\n\n", p.Name)
	if p.Tagline != "" {
		fmt.Fprintf(b, "%s\n\n", p.Tagline)
	}
	var hints []string
	if !skip[section.Projects] {
		hints = append(hints, fmt.Sprintf("`%d` View My Work", section.Index(section.Projects)+1))
	}
	if !skip[section.Contact] {
		hints = append(hints, fmt.Sprintf("`%d` Get In Touch", section.Index(section.Contact)+1))
	}
	if len(hints) > 0 {
		fmt.Fprintf(b, "%s\n", strings.Join(hints, "    "))
	}
}

func writeAbout(b *strings.Builder, p Profile) {
	b.WriteString("## About Me\n\n")
	if p.About != "" {
		fmt.Fprintf(b, "%s\n\n", p.About)
	}
	writeCodeSpans(b, p.Highlights)
}

func writeProjects(b *strings.Builder, p Profile) {
	b.WriteString("## Featured Projects\n\n")
	for _, proj := range p.Projects {
		fmt.Fprintf(b, "### %s\n\n", proj.Title)
		if proj.Description != "" {
			fmt.Fprintf(b, "%s\n\n", proj.Description)
		}
		writeCodeSpans(b, proj.Tech)
		if proj.Link != "" {
			fmt.Fprintf(b, "%s\n\n", proj.Link)
		}
	}
}

func writeSkills(b *strings.Builder, p Profile) {
	b.WriteString("## Skills & Technologies\n\n")
	for _, group := range p.Skills {
		fmt.Fprintf(b, "### %s\n\n", group.Title)
		for _, item := range group.Items {
			fmt.Fprintf(b, "- %s\n", item)
		}
		b.WriteString("\n")
	}
}

func writeEducation(b *strings.Builder, p Profile) {
	b.WriteString("## Education\n\n")
	for _, edu := range p.Education {
		fmt.Fprintf(b, "### %s\n\n", edu.Degree)
		fmt.Fprintf(b, "*%s* · %s\n\n", edu.Period, edu.Institution)
		if edu.Description != "" {
			fmt.Fprintf(b, "%s\n\n", edu.Description)
		}
		writeCodeSpans(b, edu.Topics)
	}
}

func writeExperience(b *strings.Builder, p Profile) {
	b.WriteString("## Work Experience\n\n")
	for _, job := range p.Experience {
		fmt.Fprintf(b, "### %s\n\n", job.Title)
		fmt.Fprintf(b, "**%s** · *%s* · %s\n\n", job.Company, job.Period, job.Location)
		for _, point := range job.Points {
			fmt.Fprintf(b, "- %s\n", point)
		}
		if len(job.Points) > 0 {
			b.WriteString("\n")
		}
		writeCodeSpans(b, job.Tags)
	}
}

func writeCertifications(b *strings.Builder, p Profile) {
	b.WriteString("## Certifications\n\n")
	for _, cert := range p.Certifications {
		fmt.Fprintf(b, "### %s\n\n", cert.Title)
		fmt.Fprintf(b, "**%s** · *%s*\n\n", cert.Issuer, cert.Date)
		if cert.Description != "" {
			fmt.Fprintf(b, "%s\n\n", cert.Description)
		}
		writeCodeSpans(b, cert.Tags)
	}
}

func writeContact(b *strings.Builder, p Profile) {
	b.WriteString("## Let's Work Together\n\n")
	if p.Contact.Message != "" {
		fmt.Fprintf(b, "%s\n\n", p.Contact.Message)
	}
	if p.Contact.Email != "" {
		fmt.Fprintf(b, "- Email: <mailto:%s>\n", p.Contact.Email)
	}
	if p.Contact.GitHub != "" {
		fmt.Fprintf(b, "- GitHub: <%s>\n", p.Contact.GitHub)
	}
	if p.Contact.LinkedIn != "" {
		fmt.Fprintf(b, "- LinkedIn: <%s>\n", p.Contact.LinkedIn)
	}
	if p.Footer != "" {
		fmt.Fprintf(b, "\n---\n\n%s\n", p.Footer)
	}
}

func writeCodeSpans(b *strings.Builder, items []string) {
	if len(items) == 0 {
		return
	}
	spans := make([]string, 0, len(items))
	for _, item := range items {
		spans = append(spans, "`"+item+"`")
	}
	b.WriteString(strings.Join(spans, " "))
	b.WriteString("\n\n")
}
