// Package content holds the static portfolio data and turns it into one
// Markdown block per section.
package content

// Profile is everything the portfolio displays.
type Profile struct {
	Name           string          `yaml:"name"`
	Initials       string          `yaml:"initials"`
	Title          string          `yaml:"title"`
	Tagline        string          `yaml:"tagline"`
	About          string          `yaml:"about"`
	Highlights     []string        `yaml:"highlights"`
	Projects       []Project       `yaml:"projects"`
	Skills         []SkillGroup    `yaml:"skills"`
	Education      []Education     `yaml:"education"`
	Experience     []Job           `yaml:"experience"`
	Certifications []Certification `yaml:"certifications"`
	Contact        Contact         `yaml:"contact"`
	Footer         string          `yaml:"footer"`
}

// Project is an entry of the projects section.
type Project struct {
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Tech        []string `yaml:"tech"`
	Link        string   `yaml:"link"`
}

// SkillGroup is a titled list of skills.
type SkillGroup struct {
	Title string   `yaml:"title"`
	Items []string `yaml:"items"`
}

// Education is a degree or course of study.
type Education struct {
	Degree      string   `yaml:"degree"`
	Institution string   `yaml:"institution"`
	Period      string   `yaml:"period"`
	Description string   `yaml:"description"`
	Topics      []string `yaml:"topics"`
}

// Job is a work experience entry.
type Job struct {
	Title    string   `yaml:"title"`
	Company  string   `yaml:"company"`
	Period   string   `yaml:"period"`
	Location string   `yaml:"location"`
	Points   []string `yaml:"points"`
	Tags     []string `yaml:"tags"`
}

// Certification is a completed certificate or course.
type Certification struct {
	Title       string   `yaml:"title"`
	Issuer      string   `yaml:"issuer"`
	Date        string   `yaml:"date"`
	Description string   `yaml:"description"`
	Tags        []string `yaml:"tags"`
}

// Contact lists the ways to get in touch.
type Contact struct {
	Message  string `yaml:"message"`
	Email    string `yaml:"email"`
	GitHub   string `yaml:"github"`
	LinkedIn string `yaml:"linkedin"`
}
