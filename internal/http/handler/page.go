package handler

import (
	"mime/multipart"
	"strings"

	"github.com/gofiber/fiber/v2"

	"triptogether/internal/content"
	"triptogether/internal/landing"
	"triptogether/internal/model"
	"triptogether/internal/service"
	"triptogether/internal/view"
)

// render writes the page for st as HTML.
func render(c *fiber.Ctx, media service.MediaService, st landing.State) error {
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	c.Set(fiber.HeaderContentLanguage, st.Locale)
	opts := view.Options{Resolve: media.Resolve}
	return view.Render(c.Response().BodyWriter(), content.For(st.Locale), st, opts)
}

// localeParam returns the :lang route parameter when it names a supported locale.
func localeParam(c *fiber.Ctx) (string, bool) {
	lang := c.Params("lang")
	return lang, content.Has(lang)
}

// stateFromQuery builds a fresh state and applies ?section=.
func stateFromQuery(c *fiber.Ctx, locale string) landing.State {
	st := landing.NewState(locale)
	nav := landing.NewNavigator()
	if _, ok := nav.Navigate(c.Query("section")); ok {
		st.Active = nav.Active()
	}
	return st
}

// LandingPage renders the page in the locale negotiated from Accept-Language.
func LandingPage(media service.MediaService, fallback string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		locale := content.Match(c.Get(fiber.HeaderAcceptLanguage), fallback)
		c.Vary(fiber.HeaderAcceptLanguage)
		return render(c, media, stateFromQuery(c, locale))
	}
}

// LocalePage renders the page for /:lang. Unsupported locales fall through to 404.
func LocalePage(media service.MediaService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		locale, ok := localeParam(c)
		if !ok {
			return c.Next()
		}
		return render(c, media, stateFromQuery(c, locale))
	}
}

// SubmitDocuments is the no-JS fallback of the document slots. It records the picked
// file names, keeps earlier picks carried in the hidden selected_* fields and renders
// the page scrolled to the documents section with one toast per new pick.
// File bodies are never opened; multipart requests only contribute name and size.
func SubmitDocuments(media service.MediaService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		locale, ok := localeParam(c)
		if !ok {
			return c.Next()
		}

		cnt := content.For(locale)
		st := landing.NewState(locale)
		st.Active = landing.SectionDocuments

		var files map[string][]*multipart.FileHeader
		if strings.HasPrefix(string(c.Request().Header.ContentType()), fiber.MIMEMultipartForm) {
			form, err := c.MultipartForm()
			if err != nil {
				return writeError(c, fiber.StatusBadRequest, "INVALID_FORM", "malformed multipart form")
			}
			files = form.File
		}

		for _, kind := range landing.DocumentKinds {
			if prev := c.FormValue(view.SelectedField(kind)); prev != "" {
				st.Slots.Select(kind, &landing.SelectedFile{Name: prev})
			}

			picked := pickedFile(c, files, kind)
			if conf, ok := st.Slots.Select(kind, picked); ok {
				st.Toasts = append(st.Toasts, cnt.UploadToast(conf))
			}
		}

		return render(c, media, st)
	}
}

// pickedFile returns the file chosen for kind, or nil when the input was left empty.
func pickedFile(c *fiber.Ctx, files map[string][]*multipart.FileHeader, kind landing.DocumentKind) *landing.SelectedFile {
	if fhs := files[string(kind)]; len(fhs) > 0 && fhs[0].Filename != "" {
		return &landing.SelectedFile{Name: fhs[0].Filename, Size: fhs[0].Size}
	}
	// URL-encoded file inputs submit the bare name.
	if name := c.FormValue(string(kind)); name != "" {
		return &landing.SelectedFile{Name: name}
	}
	return nil
}

// SubmitContact is the no-JS contact form. It always confirms with the "message sent" toast.
func SubmitContact(svc service.ContactService, media service.MediaService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		locale, ok := localeParam(c)
		if !ok {
			return c.Next()
		}

		msg := model.ContactMessage{
			Name:    c.FormValue("name"),
			Email:   c.FormValue("email"),
			Phone:   c.FormValue("phone"),
			Message: c.FormValue("message"),
			Locale:  locale,
		}
		if _, err := svc.Submit(c.UserContext(), msg); err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}

		cnt := content.For(locale)
		st := landing.NewState(locale)
		st.Active = landing.SectionContact
		st.Toasts = []landing.Toast{cnt.ContactToast()}
		return render(c, media, st)
	}
}
