// Package sections names the fixed content regions of the wiki page and
// answers which of them contains a given vertical position.
package sections

// ID identifies one of the page's content sections.
type ID string

const (
	Introduction ID = "introduction"
	Biography    ID = "biography"
	Education    ID = "education"
	Skills       ID = "skills"
	Projects     ID = "projects"
	Experience   ID = "experience"
	Achievements ID = "achievements"
	References   ID = "references"
)

// order is the display order. It doubles as scan priority.
var order = []ID{
	Introduction,
	Biography,
	Education,
	Skills,
	Projects,
	Experience,
	Achievements,
	References,
}

var titles = map[ID]string{
	Introduction: "Introduction",
	Biography:    "Biography",
	Education:    "Education",
	Skills:       "Skills",
	Projects:     "Projects",
	Experience:   "Experience",
	Achievements: "Achievements",
	References:   "References",
}

// All returns the section ids in display order.
func All() []ID {
	return append([]ID(nil), order...)
}

// Count is the number of sections on the page.
func Count() int {
	return len(order)
}

// Parse maps a raw string onto a known section id.
func Parse(value string) (ID, bool) {
	id := ID(value)
	return id, id.Valid()
}

// Valid reports whether id is one of the fixed sections.
func (id ID) Valid() bool {
	_, ok := titles[id]
	return ok
}

// Title is the human label shown in the table of contents.
func (id ID) Title() string {
	if title, ok := titles[id]; ok {
		return title
	}
	return string(id)
}

// Index returns the position of id in display order, or -1.
func (id ID) Index() int {
	for i, candidate := range order {
		if candidate == id {
			return i
		}
	}
	return -1
}

// Relative returns the section delta steps away from id, clamped to the
// first and last sections. An unknown id starts from the top.
func (id ID) Relative(delta int) ID {
	idx := id.Index()
	if idx < 0 {
		idx = 0
		if delta > 0 {
			delta--
		}
	}
	idx += delta
	if idx < 0 {
		idx = 0
	}
	if idx >= len(order) {
		idx = len(order) - 1
	}
	return order[idx]
}
