package view

import (
	"fmt"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"triptogether/internal/content"
	"triptogether/internal/landing"
	"triptogether/internal/model"
)

func Hero(c content.Content) g.Node {
	lines := make([]g.Node, 0, len(c.Copy.HeroTitle)*2)
	for i, l := range c.Copy.HeroTitle {
		if i > 0 {
			lines = append(lines, Br())
		}
		lines = append(lines, g.Text(l))
	}

	return Section(
		ID(string(landing.SectionHome)),
		Class("hero animate-fade-in"),
		Div(
			Class("container text-center"),
			H2(Class("hero-title"), g.Group(lines)),
			P(Class("hero-subtitle"), g.Text(c.Copy.HeroSubtitle)),
			A(
				Href("#"+string(landing.SectionPrograms)),
				g.Attr("data-scroll", string(landing.SectionPrograms)),
				Class("btn btn-primary btn-lg"),
				g.Text(c.Copy.HeroCTA),
				Icon("lucide:arrow-right", "ml-2"),
			),
		),
	)
}

func Programs(c content.Content, opts Options) g.Node {
	return Section(
		ID(string(landing.SectionPrograms)),
		Class("section muted"),
		Div(
			Class("container"),
			sectionHeading(c.Copy.ProgramsTitle, c.Copy.ProgramsSubtitle),
			Div(
				Class("grid grid-3"),
				g.Group(g.Map(c.Programs, func(p model.Program) g.Node {
					return programCard(p, c.Copy.LearnMore, opts)
				})),
			),
		),
	)
}

func programCard(p model.Program, learnMore string, opts Options) g.Node {
	return Div(
		Class("card program animate-scale-in"),
		Img(Src(opts.image(p.Image)), Alt(p.Title), Class("card-image"), g.Attr("loading", "lazy")),
		Div(
			Class("card-header"),
			Div(
				Class("card-title-row"),
				H3(Class("card-title"), g.Text(p.Title)),
				Span(Class("badge badge-secondary"), g.Text(p.Duration)),
			),
			P(Class("card-description"), g.Text(p.Description)),
		),
		Div(
			Class("card-content"),
			Div(
				Class("features"),
				g.Group(g.Map(p.Features, func(f string) g.Node {
					return Span(Class("badge badge-outline"), g.Text(f))
				})),
			),
			Div(
				Class("card-footer"),
				Span(Class("price"), g.Text(p.Price)),
				A(
					Href("#"+string(landing.SectionContact)),
					g.Attr("data-scroll", string(landing.SectionContact)),
					Class("btn btn-primary"),
					g.Text(learnMore),
				),
			),
		),
	)
}

func Gallery(c content.Content, opts Options) g.Node {
	return Section(
		ID(string(landing.SectionGallery)),
		Class("section"),
		Div(
			Class("container"),
			sectionHeading(c.Copy.GalleryTitle, c.Copy.GallerySubtitle),
			Div(
				Class("grid grid-3 gallery"),
				g.Group(g.Map(c.Gallery, func(img model.GalleryImage) g.Node {
					return Div(
						Class("gallery-item animate-fade-in"),
						Img(Src(opts.image(img.Image)), Alt(img.Alt), g.Attr("loading", "lazy")),
					)
				})),
			),
		),
	)
}

func Testimonials(c content.Content) g.Node {
	return Section(
		ID(string(landing.SectionTestimonials)),
		Class("section muted"),
		Div(
			Class("container"),
			sectionHeading(c.Copy.TestimonialsTitle, c.Copy.TestimonialsSubtitle),
			Div(
				Class("grid grid-3"),
				g.Group(g.Map(c.Testimonials, func(t model.Testimonial) g.Node {
					return Div(
						Class("card testimonial animate-scale-in"),
						Div(
							Class("card-header"),
							H3(Class("card-title"), g.Text(t.Name)),
							P(Class("card-description"), g.Text(t.Affiliation)),
						),
						Div(
							Class("card-content"),
							P(Class("quote"), g.Text(t.Text)),
							Stars(t.Rating),
						),
					)
				})),
			),
		),
	)
}

// Stars renders exactly rating star icons.
func Stars(rating int) g.Node {
	if rating < 0 {
		rating = 0
	}
	stars := make([]g.Node, rating)
	for i := range stars {
		stars[i] = Icon("lucide:star", "star")
	}
	return Div(
		Class("stars"),
		g.Attr("aria-label", fmt.Sprintf("%d/5", rating)),
		g.Group(stars),
	)
}

func About(c content.Content) g.Node {
	return Section(
		ID(string(landing.SectionAbout)),
		Class("section"),
		Div(
			Class("container"),
			sectionHeading(c.Copy.AboutTitle, c.Copy.AboutSubtitle),
			Div(
				Class("grid grid-3"),
				g.Group(g.Map(c.About, func(s model.AboutStat) g.Node {
					return Div(
						Class("card text-center animate-fade-in"),
						Div(
							Class("card-header"),
							Icon(s.Icon, "about-icon"),
							H3(Class("card-title"), g.Text(s.Title)),
						),
						Div(Class("card-content"), P(Class("card-description"), g.Text(s.Text))),
					)
				})),
			),
		),
	)
}
