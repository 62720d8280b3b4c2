package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/brickrouge-dev/brickrouge/internal/config"
	"github.com/brickrouge-dev/brickrouge/internal/errors"
	"github.com/brickrouge-dev/brickrouge/pkg/i18n"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// globalOptions are the persistent flags shared by every command.
type globalOptions struct {
	dir     string
	verbose bool
	noColor bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		errors.PrintError(err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:   "brickrouge",
		Short: "HTML widgets for Go servers",
		Long: `Brickrouge renders HTML elements and widgets: forms, alerts,
popovers, pagination and more.

The CLI previews the widget gallery, renders single widgets and
publishes the widget assets to S3.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if opts.noColor {
				errors.DisableColors()
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&opts.dir, "dir", "C", ".", "Project directory")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Log debug messages")
	rootCmd.PersistentFlags().BoolVar(&opts.noColor, "no-color", false, "Disable colored output")

	rootCmd.AddCommand(
		renderCmd(opts),
		serveCmd(opts),
		assetsCmd(opts),
		versionCmd(),
	)

	return rootCmd
}

// loadConfig loads the project configuration of the --dir directory.
func (o *globalOptions) loadConfig() (*config.Config, error) {
	cfg, err := config.LoadFrom(o.dir)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// logger returns a text logger writing to w.
func (o *globalOptions) logger(w io.Writer) *slog.Logger {
	level := slog.LevelInfo
	if o.verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// loadCatalog loads the translation catalogs of cfg. A missing catalogs
// directory yields an empty catalog.
func loadCatalog(cfg *config.Config, locale string) (*i18n.Catalog, error) {
	if locale == "" {
		locale = cfg.I18n.Locale
	}
	catalog := i18n.NewCatalog(locale)
	dir := cfg.CatalogsPath()
	if _, err := os.Stat(dir); err != nil {
		return catalog, nil
	}
	if err := catalog.LoadDir(dir); err != nil {
		return nil, err
	}
	return catalog, nil
}

// success prints a success message.
func success(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "\033[32m✓\033[0m %s\n", fmt.Sprintf(format, args...))
}

// info prints an info message.
func info(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "  %s\n", fmt.Sprintf(format, args...))
}
