package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mydehq/invcheck/internal/report"
)

// Version is set at build time via -ldflags.
var Version = "dev"

// launch runs the interactive interface once the startup inputs are
// collected. Injected by package main so this package does not import
// the TUI, which imports the styles defined here.
var launch func(Options) error

// SetLauncher injects the interface runner.
func SetLauncher(fn func(Options) error) {
	launch = fn
}

var (
	flagMode    int
	flagCatalog string
	flagImages  string
)

var rootCmd = &cobra.Command{
	Use:   "invcheck",
	Short: "Check an item catalog against its image directory",
	Long: `invcheck scans a FiveM ox_inventory-style item catalog and its image
directory for duplicate images (files colliding on base name) and
missing images (catalog entries with no matching image file).

Any input not given as a flag is collected interactively.`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := Options{
			CatalogPath: flagCatalog,
			ImagesPath:  flagImages,
		}

		if cmd.Flags().Changed("mode") {
			switch flagMode {
			case 1:
				opts.Mode = report.KindDuplicates
			case 2:
				opts.Mode = report.KindMissing
			default:
				logger.Warn("Invalid option, defaulting to 1", "mode", flagMode)
				opts.Mode = report.KindDuplicates
			}
		}

		// Flag-supplied paths fail fast instead of re-prompting, so the
		// tool stays usable from scripts.
		if opts.CatalogPath != "" {
			if err := ValidateCatalogPath(opts.CatalogPath); err != nil {
				return err
			}
		}
		if opts.ImagesPath != "" {
			if err := ValidateImagesPath(opts.ImagesPath); err != nil {
				return err
			}
		}

		if err := runWizard(&opts); err != nil {
			if errors.Is(err, ErrUserAborted) {
				return nil
			}
			return err
		}

		if launch == nil {
			return fmt.Errorf("no interface launcher registered")
		}
		if err := launch(opts); err != nil {
			return fmt.Errorf("failed to run interface: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.Flags().IntVarP(&flagMode, "mode", "m", 0, "check mode: 1 = duplicate images, 2 = missing images")
	rootCmd.Flags().StringVarP(&flagCatalog, "catalog", "c", "", "path to the items catalog file (items.lua)")
	rootCmd.Flags().StringVarP(&flagImages, "images", "i", "", "path to the image directory")
}

// Execute runs the root command and reports any error through the
// styled logger.
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		logger.Error(err.Error())
		return 1
	}
	return 0
}
