package main

import (
	"fmt"
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/cobra"

	"triptogether/internal/config"
	"triptogether/internal/export"
	"triptogether/internal/logger"
	"triptogether/internal/service"
	"triptogether/web"
)

func newRootCommand() *cobra.Command {
	cfg := config.Load()

	var (
		outDir       string
		locale       string
		imageBaseURL string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the landing page as a static site",
		Long: `Renders index.html in the default locale, <lang>/index.html for every
supported locale and copies the embedded assets into <out>/static.

Forms in the exported pages have no server action. Document picks and the
contact form only show confirmations in the browser.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logger.New(cmd.ErrOrStderr(), cfg.LogLevel, nil)
			// No storage here: references resolve against the image base URL.
			media := service.NewMediaService(nil, imageBaseURL)

			written, err := export.Site(export.Options{
				OutDir:        outDir,
				DefaultLocale: locale,
				Resolve:       media.Resolve,
				Assets:        web.Static(),
			}, log)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %d files to %s\n", len(written), outDir)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outDir, "out", "o", "dist", "output directory")
	cmd.Flags().StringVar(&locale, "locale", cfg.Site.DefaultLocale, "locale rendered at the root index.html")
	cmd.Flags().StringVar(&imageBaseURL, "image-base-url", cfg.Site.ImageBaseURL, "base URL for program and gallery images")

	return cmd
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
