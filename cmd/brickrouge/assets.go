package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/brickrouge-dev/brickrouge/internal/config"
	"github.com/brickrouge-dev/brickrouge/pkg/assets"
)

// newPutter creates the S3 client used by "assets publish".
var newPutter = func(cfg *config.Config) assets.ObjectPutter {
	return assets.NewS3Client(cfg.Publish.Region, cfg.Publish.Endpoint)
}

func assetsCmd(opts *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "assets",
		Short: "Inspect and publish widget assets",
	}
	cmd.AddCommand(assetsListCmd(opts), assetsPublishCmd(opts))
	return cmd
}

func assetsListCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the asset files and their resolved URLs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}

			manifest := assets.NewManifest()
			if _, err := os.Stat(cfg.ManifestPath()); err == nil {
				if manifest, err = assets.Load(cfg.ManifestPath()); err != nil {
					return err
				}
			}
			resolver := assets.NewResolver(manifest, cfg.Assets.Prefix)

			out := cmd.OutOrStdout()
			for _, dir := range cfg.AssetDirs() {
				if _, err := os.Stat(dir); err != nil {
					continue
				}
				files, err := assets.Files(dir)
				if err != nil {
					return err
				}
				for _, file := range files {
					source := assets.Relative(file, dir)
					fmt.Fprintf(out, "%s\t%s\n", source, resolver.Asset(source))
				}
			}
			return nil
		},
	}
}

func assetsPublishCmd(opts *globalOptions) *cobra.Command {
	var (
		dryRun        bool
		noFingerprint bool
	)

	cmd := &cobra.Command{
		Use:   "publish",
		Short: "Upload the asset files to S3",
		Long: `Upload every file of the asset directories to the configured bucket
and record the public URLs in the asset manifest.

Credentials are read from AWS_ACCESS_KEY_ID and AWS_SECRET_ACCESS_KEY.

Examples:
  brickrouge assets publish
  BRICKROUGE_S3_BUCKET=my-cdn brickrouge assets publish --dry-run`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			if err := cfg.ValidatePublish(); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fingerprint := cfg.Fingerprint() && !noFingerprint

			type batch struct {
				root  string
				files []string
			}
			var batches []batch
			count := 0
			for _, dir := range cfg.AssetDirs() {
				if _, err := os.Stat(dir); err != nil {
					continue
				}
				files, err := assets.Files(dir)
				if err != nil {
					return err
				}
				batches = append(batches, batch{root: dir, files: files})
				count += len(files)
			}

			if dryRun {
				for _, b := range batches {
					for _, file := range b.files {
						info(out, "%s -> s3://%s/%s%s", file, cfg.Publish.Bucket, cfg.Publish.Prefix, assets.Relative(file, b.root))
					}
				}
				success(out, "%d files would be published", count)
				return nil
			}

			publisher := assets.NewS3Publisher(newPutter(cfg), cfg.Publish.Bucket, cfg.Publish.Prefix, cfg.Publish.BaseURL).
				WithFingerprint(fingerprint).
				WithLogger(opts.logger(cmd.ErrOrStderr()))

			manifest := assets.NewManifest()
			for _, b := range batches {
				if err := publisher.Publish(cmd.Context(), b.root, b.files, manifest); err != nil {
					return err
				}
			}

			if err := os.MkdirAll(filepath.Dir(cfg.ManifestPath()), 0755); err != nil {
				return err
			}
			if err := manifest.Save(cfg.ManifestPath()); err != nil {
				return err
			}

			success(out, "Published %d files to %s", count, cfg.Publish.Bucket)
			info(out, "Manifest written to %s", cfg.ManifestPath())
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print what would be uploaded")
	cmd.Flags().BoolVar(&noFingerprint, "no-fingerprint", false, "Keep the original file names")

	return cmd
}
