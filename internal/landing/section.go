// Package landing holds the page's interactive state: which nav section is active
// and which file name was picked for each document slot.
package landing

// Section is a navigation anchor id on the page.
type Section string

const (
	SectionHome         Section = "home"
	SectionPrograms     Section = "programs"
	SectionGallery      Section = "gallery"
	SectionTestimonials Section = "testimonials"
	SectionAbout        Section = "about"
	SectionDocuments    Section = "documents"
	SectionContact      Section = "contact"
)

// Sections lists the nav entries in display order.
var Sections = []Section{
	SectionHome,
	SectionPrograms,
	SectionGallery,
	SectionTestimonials,
	SectionAbout,
	SectionDocuments,
	SectionContact,
}

// ParseSection returns the section with the given id.
func ParseSection(id string) (Section, bool) {
	for _, s := range Sections {
		if string(s) == id {
			return s, true
		}
	}
	return "", false
}

// ScrollTarget is the anchor the page should scroll to after a navigation.
type ScrollTarget struct {
	Anchor string `json:"anchor"`
	Smooth bool   `json:"smooth"`
}

// Navigator tracks the highlighted nav entry.
type Navigator struct {
	active Section
}

// NewNavigator starts with home highlighted.
func NewNavigator() *Navigator {
	return &Navigator{active: SectionHome}
}

// Active returns the highlighted section.
func (n *Navigator) Active() Section {
	return n.active
}

// Navigate highlights id and returns where to scroll. Unknown ids change nothing.
func (n *Navigator) Navigate(id string) (ScrollTarget, bool) {
	s, ok := ParseSection(id)
	if !ok {
		return ScrollTarget{}, false
	}
	n.active = s
	return ScrollTarget{Anchor: string(s), Smooth: true}, true
}
