package landing

// Toast is a transient notification shown over the page.
type Toast struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// State is everything the page view needs besides static content.
type State struct {
	Locale string
	Active Section
	Slots  Slots
	Toasts []Toast
}

// NewState returns the state of a freshly loaded page.
func NewState(locale string) State {
	return State{
		Locale: locale,
		Active: SectionHome,
		Slots:  NewSlots(),
	}
}
