package main

import (
	"fmt"

	"github.com/a-h/templ"
	"github.com/spf13/cobra"

	"github.com/brickrouge-dev/brickrouge/internal/errors"
	"github.com/brickrouge-dev/brickrouge/internal/preview"
	"github.com/brickrouge-dev/brickrouge/pkg/assets"
	"github.com/brickrouge-dev/brickrouge/pkg/element"
	"github.com/brickrouge-dev/brickrouge/pkg/widget"
)

func renderCmd(opts *globalOptions) *cobra.Command {
	var (
		list     bool
		locale   string
		document bool
	)

	cmd := &cobra.Command{
		Use:   "render [sample]",
		Short: "Render a widget sample to stdout",
		Long: `Render one of the gallery samples as HTML.

Labels are translated with the project catalogs.

Examples:
  brickrouge render --list
  brickrouge render alert
  brickrouge render form --locale fr --document`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if list {
				for _, s := range widget.Samples() {
					fmt.Fprintf(out, "%-14s %s\n", s.Name, s.Title)
				}
				return nil
			}
			if len(args) == 0 {
				return errors.New(errors.CodeUnknownWidget).
					WithDetail("no sample given").
					WithSuggestion("Run 'brickrouge render --list' to see the available samples")
			}

			sample, err := widget.Lookup(args[0])
			if err != nil {
				return err
			}

			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			catalog, err := loadCatalog(cfg, locale)
			if err != nil {
				return err
			}

			session := element.NewSession(
				element.WithDocument(element.NewDocument(assets.NewPassthroughResolver(cfg.Assets.Prefix))),
				element.WithTranslator(catalog),
				element.WithLogger(opts.logger(cmd.ErrOrStderr())),
			)
			ctx := element.WithSession(cmd.Context(), session)

			var component templ.Component = sample.Build()
			if document {
				lang := locale
				if lang == "" {
					lang = cfg.I18n.Locale
				}
				component = preview.Page{
					Title:    sample.Title,
					Lang:     lang,
					Samples:  []widget.Sample{sample},
					NotesDir: cfg.NotesPath(),
				}.Component()
			}

			if err := component.Render(ctx, out); err != nil {
				return err
			}
			if !document {
				fmt.Fprintln(out)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&list, "list", "l", false, "List the available samples")
	cmd.Flags().StringVar(&locale, "locale", "", "Translation locale (default from brickrouge.json)")
	cmd.Flags().BoolVar(&document, "document", false, "Render a complete HTML page with assets")

	return cmd
}
