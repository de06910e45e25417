// Package export writes the landing page as a static site.
package export

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"triptogether/internal/content"
	"triptogether/internal/landing"
	"triptogether/internal/view"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// Options controls a static export.
type Options struct {
	// OutDir receives index.html, one directory per locale and static/.
	OutDir string
	// DefaultLocale is rendered at the root index.html.
	DefaultLocale string
	// Resolve maps image references to URLs. Usually the CDN base.
	Resolve func(ref string) string
	// Assets is copied into OutDir/static.
	Assets fs.FS
}

// Site renders every locale and copies the assets. It returns the written paths relative to OutDir.
func Site(opts Options, log *slog.Logger) ([]string, error) {
	if opts.OutDir == "" {
		return nil, fmt.Errorf("export: output directory is required")
	}
	if !content.Has(opts.DefaultLocale) {
		opts.DefaultLocale = content.DefaultLocale
	}

	var written []string
	write := func(rel, locale string) error {
		if err := writePage(filepath.Join(opts.OutDir, rel), locale, opts.Resolve); err != nil {
			return err
		}
		written = append(written, rel)
		log.Info("page written", slog.String("path", rel), slog.String("locale", locale))
		return nil
	}

	if err := write("index.html", opts.DefaultLocale); err != nil {
		return nil, err
	}
	for _, locale := range content.Locales() {
		if err := write(filepath.Join(locale, "index.html"), locale); err != nil {
			return nil, err
		}
	}

	if opts.Assets != nil {
		assets, err := copyAssets(opts.Assets, filepath.Join(opts.OutDir, "static"))
		if err != nil {
			return nil, err
		}
		for _, a := range assets {
			written = append(written, filepath.Join("static", a))
		}
		log.Info("assets copied", slog.Int("count", len(assets)))
	}

	return written, nil
}

func writePage(path, locale string, resolve func(string) string) error {
	if err := os.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
		return fmt.Errorf("export: create dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, filePerm)
	if err != nil {
		return fmt.Errorf("export: create %s: %w", path, err)
	}

	opts := view.Options{Resolve: resolve, Static: true}
	if err := view.Render(f, content.For(locale), landing.NewState(locale), opts); err != nil {
		f.Close()
		return fmt.Errorf("export: render %s: %w", locale, err)
	}
	return f.Close()
}

func copyAssets(src fs.FS, dst string) ([]string, error) {
	var copied []string
	err := fs.WalkDir(src, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		target := filepath.Join(dst, filepath.FromSlash(p))
		if d.IsDir() {
			return os.MkdirAll(target, dirPerm)
		}
		b, err := fs.ReadFile(src, p)
		if err != nil {
			return err
		}
		if err := os.WriteFile(target, b, filePerm); err != nil {
			return err
		}
		copied = append(copied, filepath.FromSlash(p))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("export: copy assets: %w", err)
	}
	return copied, nil
}
