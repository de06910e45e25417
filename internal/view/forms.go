package view

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"triptogether/internal/content"
	"triptogether/internal/landing"
)

// SelectedField is the hidden input that carries an earlier confirmation across a round trip.
func SelectedField(kind landing.DocumentKind) string {
	return "selected_" + string(kind)
}

// formTarget returns the action attributes, or a data-static marker for the exported site.
func formTarget(opts Options, locale, path string) g.Node {
	if opts.Static {
		return g.Attr("data-static", "true")
	}
	return g.Group([]g.Node{g.Attr("method", "post"), g.Attr("action", "/"+locale+"/"+path)})
}

func Documents(c content.Content, slots landing.Slots, opts Options) g.Node {
	return Section(
		ID(string(landing.SectionDocuments)),
		Class("section muted"),
		Div(
			Class("container narrow"),
			sectionHeading(c.Copy.DocumentsTitle, c.Copy.DocumentsSubtitle),
			Div(
				Class("card animate-fade-in"),
				Div(
					Class("card-header"),
					H3(Class("card-title"), g.Text(c.Copy.DocumentsCardTitle)),
					P(Class("card-description"), g.Text(c.Copy.DocumentsCardText)),
				),
				g.El("form",
					ID("documents-form"),
					Class("card-content stack"),
					// URL-encoded, so file inputs submit names only.
					formTarget(opts, c.Locale, "documents"),
					g.Attr("data-toast-title", c.Copy.UploadToastTitle),
					g.Attr("data-toast-template", c.Copy.UploadToastTemplate),
					g.Group(g.Map(c.Copy.DocumentSlots, func(s content.DocumentSlot) g.Node {
						return documentSlot(s, slots.Get(s.Kind))
					})),
					Button(Type("submit"), Class("btn btn-outline w-full no-js"), g.Text(c.Copy.DocumentsSubmit)),
				),
			),
		),
	)
}

func documentSlot(s content.DocumentSlot, selected *landing.SelectedFile) g.Node {
	id := string(s.Kind)
	return Div(
		Class("field"),
		g.Attr("data-slot", id),
		Label(
			g.Attr("for", id),
			Class("label"),
			Icon(s.Icon, "text-primary"),
			g.Text(s.Label),
		),
		Input(
			ID(id),
			Name(id),
			Type("file"),
			Class("input"),
			g.Attr("accept", landing.AcceptAttr()),
		),
		g.If(selected != nil, g.Group([]g.Node{
			Input(Type("hidden"), Name(SelectedField(s.Kind)), Value(fileName(selected))),
			P(
				Class("confirmation"),
				Icon("lucide:check-circle", ""),
				Span(Class("file-name"), g.Text(fileName(selected))),
			),
		})),
	)
}

func fileName(f *landing.SelectedFile) string {
	if f == nil {
		return ""
	}
	return f.Name
}

func Contact(c content.Content, opts Options) g.Node {
	cp := c.Copy
	return Section(
		ID(string(landing.SectionContact)),
		Class("section"),
		Div(
			Class("container narrow"),
			sectionHeading(cp.ContactTitle, cp.ContactSubtitle),
			Div(
				Class("card animate-fade-in"),
				g.El("form",
					ID("contact-form"),
					Class("card-content stack"),
					formTarget(opts, c.Locale, "contact"),
					g.Attr("data-toast-title", cp.ContactToastTitle),
					g.Attr("data-toast-text", cp.ContactToastText),
					field("name", cp.NameLabel, Input(ID("name"), Name("name"), Class("input"), Placeholder(cp.NamePlaceholder))),
					field("email", cp.EmailLabel, Input(ID("email"), Name("email"), Type("email"), Class("input"), Placeholder(cp.EmailPlaceholder))),
					field("phone", cp.PhoneLabel, Input(ID("phone"), Name("phone"), Type("tel"), Class("input"), Placeholder(cp.PhonePlaceholder))),
					field("message", cp.MessageLabel, g.El("textarea", ID("message"), Name("message"), Class("input"), g.Attr("rows", "5"), Placeholder(cp.MessagePlaceholder))),
					Button(
						Type("submit"),
						Class("btn btn-primary w-full"),
						g.Text(cp.SendMessage),
						Icon("lucide:send", "ml-2"),
					),
				),
				Div(
					Class("contacts"),
					contactLine("lucide:mail", cp.Contacts.Email),
					contactLine("lucide:phone", cp.Contacts.Phone),
					contactLine("lucide:map-pin", cp.Contacts.Address),
				),
			),
		),
	)
}

func field(id, label string, input g.Node) g.Node {
	return Div(
		Class("field"),
		Label(g.Attr("for", id), Class("label"), g.Text(label)),
		input,
	)
}

func contactLine(icon, text string) g.Node {
	return Div(
		Class("contact-line"),
		Icon(icon, "text-primary"),
		Span(g.Text(text)),
	)
}
