// Package view renders the landing page with gomponents.
package view

import (
	"io"

	g "maragu.dev/gomponents"

	"triptogether/internal/content"
	"triptogether/internal/landing"
)

// Options tune how the page is rendered.
type Options struct {
	// Resolve maps an image reference from the content table to a URL.
	Resolve func(ref string) string
	// Static renders forms without server actions, for the exported site.
	Static bool
}

func (o Options) image(ref string) string {
	if o.Resolve == nil {
		return ref
	}
	return o.Resolve(ref)
}

// Page builds the whole landing page for one locale and state.
func Page(c content.Content, st landing.State, opts Options) g.Node {
	if st.Active == "" {
		st.Active = landing.SectionHome
	}
	if st.Slots == nil {
		st.Slots = landing.NewSlots()
	}

	return Layout(
		PageConfig{
			Title:       c.Copy.PageTitle,
			Description: c.Copy.HeroSubtitle,
			Lang:        c.Locale,
		},
		Topbar(c, st.Active, opts),
		Hero(c),
		Programs(c, opts),
		Gallery(c, opts),
		Testimonials(c),
		About(c),
		Documents(c, st.Slots, opts),
		Contact(c, opts),
		PageFooter(c),
		Toasts(st.Toasts),
	)
}

// Render writes the page to w.
func Render(w io.Writer, c content.Content, st landing.State, opts Options) error {
	return Page(c, st, opts).Render(w)
}

// LocalePath is the URL of the page in locale.
func LocalePath(locale string, static bool) string {
	if static {
		if locale == content.DefaultLocale {
			return "/"
		}
		return "/" + locale + "/"
	}
	return "/" + locale
}
