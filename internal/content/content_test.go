package content

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"triptogether/internal/landing"
)

func TestLocales(t *testing.T) {
	assert.Equal(t, []string{"en", "ru"}, Locales())

	l := Locales()
	l[0] = "xx"
	assert.Equal(t, "en", Locales()[0])
}

func TestFor_FallsBackToDefault(t *testing.T) {
	assert.Equal(t, "ru", For("ru").Locale)
	assert.Equal(t, "en", For("de").Locale)
	assert.Equal(t, "en", For("").Locale)
}

func TestEveryLocaleHasFixedShape(t *testing.T) {
	en := For(DefaultLocale)

	for _, loc := range Locales() {
		t.Run(loc, func(t *testing.T) {
			c := For(loc)

			require.Len(t, c.Programs, 3)
			require.Len(t, c.Gallery, 3)
			require.Len(t, c.Testimonials, 3)
			require.Len(t, c.About, 3)

			for _, s := range landing.Sections {
				assert.NotEmpty(t, c.Copy.Nav[s], "missing nav label for %s", s)
			}
			require.Len(t, c.Copy.DocumentSlots, len(landing.DocumentKinds))
			for i, k := range landing.DocumentKinds {
				assert.Equal(t, k, c.Copy.DocumentSlots[i].Kind)
			}
			for i, p := range c.Programs {
				assert.Equal(t, en.Programs[i].Image, p.Image, "program %d image order differs", i)
				assert.Len(t, p.Features, 4)
			}
			for i, g := range c.Gallery {
				assert.Equal(t, en.Gallery[i].Image, g.Image)
			}
			for _, tm := range c.Testimonials {
				assert.GreaterOrEqual(t, tm.Rating, 1)
				assert.LessOrEqual(t, tm.Rating, 5)
			}
			assert.Contains(t, c.Copy.UploadToastTemplate, "%s")
		})
	}
}

func TestProgramOrder(t *testing.T) {
	en := For("en")

	titles := make([]string, 0, len(en.Programs))
	for _, p := range en.Programs {
		titles = append(titles, p.Title)
	}
	assert.Equal(t, []string{"European Capitals", "Oxford Summer School", "Cultural Exchange in Spain"}, titles)
}

func TestUploadToast(t *testing.T) {
	tests := []struct {
		locale    string
		wantTitle string
		wantDesc  string
	}{
		{"en", "Document uploaded", "scan.pdf successfully added"},
		{"ru", "Документ загружен", "scan.pdf успешно добавлен"},
	}

	for _, tt := range tests {
		t.Run(tt.locale, func(t *testing.T) {
			toast := For(tt.locale).UploadToast(landing.Confirmation{Kind: landing.KindPassport, FileName: "scan.pdf"})
			assert.Equal(t, tt.wantTitle, toast.Title)
			assert.Equal(t, tt.wantDesc, toast.Description)
		})
	}
}

func TestSlotLabel(t *testing.T) {
	assert.Equal(t, "Passport", For("en").SlotLabel(landing.KindPassport))
	assert.Equal(t, "Виза", For("ru").SlotLabel(landing.KindVisa))
	assert.Equal(t, "diploma", For("en").SlotLabel(landing.DocumentKind("diploma")))
}

func TestMatch(t *testing.T) {
	tests := []struct {
		header   string
		fallback string
		want     string
	}{
		{"", "en", "en"},
		{"", "ru", "ru"},
		{"ru-RU,ru;q=0.9,en;q=0.8", "en", "ru"},
		{"en-GB,en;q=0.9", "ru", "en"},
		{"de-DE", "ru", "ru"},
		{"de-DE", "xx", "en"},
		{"en-US;q=0.2,ru;q=0.8", "en", "ru"},
		{"!!!", "en", "en"},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%q/%s", tt.header, tt.fallback), func(t *testing.T) {
			assert.Equal(t, tt.want, Match(tt.header, tt.fallback))
		})
	}
}
