// Package content is the locale-indexed copy and data of the landing page.
package content

import (
	"fmt"

	"golang.org/x/text/language"

	"triptogether/internal/landing"
	"triptogether/internal/model"
)

// DefaultLocale is served when nothing better matches.
const DefaultLocale = "en"

// DocumentSlot describes how a document kind is presented.
type DocumentSlot struct {
	Kind  landing.DocumentKind `json:"kind"`
	Label string               `json:"label"`
	Icon  string               `json:"icon"`
}

// ContactDetails are the agency's published coordinates.
type ContactDetails struct {
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// Copy holds every translated string on the page.
type Copy struct {
	Brand     string                     `json:"brand"`
	PageTitle string                     `json:"page_title"`
	Nav       map[landing.Section]string `json:"nav"`

	HeroTitle    []string `json:"hero_title"`
	HeroSubtitle string   `json:"hero_subtitle"`
	HeroCTA      string   `json:"hero_cta"`

	ProgramsTitle    string `json:"programs_title"`
	ProgramsSubtitle string `json:"programs_subtitle"`
	LearnMore        string `json:"learn_more"`

	GalleryTitle    string `json:"gallery_title"`
	GallerySubtitle string `json:"gallery_subtitle"`

	TestimonialsTitle    string `json:"testimonials_title"`
	TestimonialsSubtitle string `json:"testimonials_subtitle"`

	AboutTitle    string `json:"about_title"`
	AboutSubtitle string `json:"about_subtitle"`

	DocumentsTitle      string         `json:"documents_title"`
	DocumentsSubtitle   string         `json:"documents_subtitle"`
	DocumentsCardTitle  string         `json:"documents_card_title"`
	DocumentsCardText   string         `json:"documents_card_text"`
	DocumentsSubmit     string         `json:"documents_submit"`
	DocumentSlots       []DocumentSlot `json:"document_slots"`
	UploadToastTitle    string         `json:"upload_toast_title"`
	UploadToastTemplate string         `json:"upload_toast_template"`

	ContactTitle       string         `json:"contact_title"`
	ContactSubtitle    string         `json:"contact_subtitle"`
	NameLabel          string         `json:"name_label"`
	NamePlaceholder    string         `json:"name_placeholder"`
	EmailLabel         string         `json:"email_label"`
	EmailPlaceholder   string         `json:"email_placeholder"`
	PhoneLabel         string         `json:"phone_label"`
	PhonePlaceholder   string         `json:"phone_placeholder"`
	MessageLabel       string         `json:"message_label"`
	MessagePlaceholder string         `json:"message_placeholder"`
	SendMessage        string         `json:"send_message"`
	ContactToastTitle  string         `json:"contact_toast_title"`
	ContactToastText   string         `json:"contact_toast_text"`
	Contacts           ContactDetails `json:"contacts"`

	Footer string `json:"footer"`
}

// Content is one locale's full page data.
type Content struct {
	Locale       string               `json:"locale"`
	Copy         Copy                 `json:"copy"`
	Programs     []model.Program      `json:"programs"`
	Gallery      []model.GalleryImage `json:"gallery"`
	Testimonials []model.Testimonial  `json:"testimonials"`
	About        []model.AboutStat    `json:"about"`
}

// UploadToast localizes a slot confirmation.
func (c Content) UploadToast(conf landing.Confirmation) landing.Toast {
	return landing.Toast{
		Title:       c.Copy.UploadToastTitle,
		Description: fmt.Sprintf(c.Copy.UploadToastTemplate, conf.FileName),
	}
}

// ContactToast is shown after the contact form is submitted.
func (c Content) ContactToast() landing.Toast {
	return landing.Toast{Title: c.Copy.ContactToastTitle, Description: c.Copy.ContactToastText}
}

// SlotLabel returns the localized label for kind.
func (c Content) SlotLabel(kind landing.DocumentKind) string {
	for _, s := range c.Copy.DocumentSlots {
		if s.Kind == kind {
			return s.Label
		}
	}
	return string(kind)
}

var (
	table = map[string]Content{
		"en": english,
		"ru": russian,
	}
	locales = []string{"en", "ru"}
	matcher = language.NewMatcher([]language.Tag{language.English, language.Russian})
)

// Locales lists supported locales, default first.
func Locales() []string {
	out := make([]string, len(locales))
	copy(out, locales)
	return out
}

// Has reports whether locale has its own content.
func Has(locale string) bool {
	_, ok := table[locale]
	return ok
}

// For returns the content for locale, falling back to DefaultLocale.
func For(locale string) Content {
	if c, ok := table[locale]; ok {
		return c
	}
	return table[DefaultLocale]
}

// Match picks a supported locale for an Accept-Language header value.
// fallback is returned when the header is empty, unparsable or matches nothing.
func Match(acceptLanguage, fallback string) string {
	if !Has(fallback) {
		fallback = DefaultLocale
	}
	if acceptLanguage == "" {
		return fallback
	}
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return fallback
	}
	_, idx, conf := matcher.Match(tags...)
	if conf == language.No {
		return fallback
	}
	return locales[idx]
}
