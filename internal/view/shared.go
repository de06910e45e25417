package view

import (
	"strings"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"triptogether/internal/content"
	"triptogether/internal/landing"
)

// Icon renders an iconify icon such as "lucide:star".
func Icon(name, class string) g.Node {
	classes := "iconify inline-block"
	if class != "" {
		classes += " " + class
	}
	return Span(
		Class(classes),
		g.Attr("data-icon", name),
		g.Attr("aria-hidden", "true"),
	)
}

func sectionHeading(title, subtitle string) g.Node {
	return g.Group([]g.Node{
		H2(Class("section-title"), g.Text(title)),
		P(Class("section-subtitle"), g.Text(subtitle)),
	})
}

func Topbar(c content.Content, active landing.Section, opts Options) g.Node {
	return Nav(
		Class("topbar"),
		ID("topbar"),
		Div(
			Class("container topbar-inner"),
			H1(Class("brand"), g.Text(c.Copy.Brand)),
			Div(
				Class("nav-links"),
				g.Group(g.Map(landing.Sections, func(s landing.Section) g.Node {
					return A(
						Href("#"+string(s)),
						g.Attr("data-section", string(s)),
						Class(navClass(s == active)),
						g.If(s == active, g.Attr("aria-current", "true")),
						g.Text(c.Copy.Nav[s]),
					)
				})),
			),
			Div(
				Class("locale-switch"),
				g.Group(g.Map(content.Locales(), func(loc string) g.Node {
					return A(
						Href(LocalePath(loc, opts.Static)),
						Class(navClass(loc == c.Locale)),
						g.Attr("hreflang", loc),
						g.Text(strings.ToUpper(loc)),
					)
				})),
			),
		),
	)
}

func navClass(active bool) string {
	if active {
		return "nav-link active"
	}
	return "nav-link"
}

// Toasts renders pending notifications. The script fades them out.
func Toasts(toasts []landing.Toast) g.Node {
	return Div(
		ID("toasts"),
		Class("toasts"),
		g.Attr("aria-live", "polite"),
		g.Group(g.Map(toasts, func(t landing.Toast) g.Node {
			return Div(
				Class("toast"),
				g.Attr("role", "status"),
				P(Class("toast-title"), g.Text(t.Title)),
				P(Class("toast-description"), g.Text(t.Description)),
			)
		})),
	)
}

func PageFooter(c content.Content) g.Node {
	return Footer(
		Class("footer"),
		Div(Class("container"), P(g.Text(c.Copy.Footer))),
	)
}
