package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/bstardust/pptx-media-audit/internal/audit"
	"github.com/bstardust/pptx-media-audit/internal/config"
	"github.com/bstardust/pptx-media-audit/internal/fshelper"
	"github.com/bstardust/pptx-media-audit/internal/logger"
	"github.com/bstardust/pptx-media-audit/internal/report"
	"github.com/spf13/cobra"
)

func newInspectCommand(cfg *config.Config) *cobra.Command {
	var csvPath, jsonPath string

	cmd := &cobra.Command{
		Use:   "inspect [flags] <package-dir> | <file.pptx>",
		Short: "Report where every embedded media asset is used",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(cfg, args[0], csvPath, jsonPath)
		},
	}

	addSelectionFlags(cmd, cfg)
	cmd.Flags().BoolVar(&cfg.Audit.Dedupe, "dedupe", false, "Detect exact-duplicate media by content hash")
	cmd.Flags().BoolVar(&cfg.Audit.Exif, "exif", false, "Report camera metadata for embedded images")
	cmd.Flags().BoolVar(&cfg.Audit.OrphansOnly, "orphans-only", false, "Report only media referenced by no part")
	cmd.Flags().StringVar(&csvPath, "csv", "", "Write the report as CSV to this path")
	cmd.Flags().StringVar(&jsonPath, "json", "", "Write the report as JSON to this path")

	return cmd
}

func runInspect(cfg *config.Config, packagePath, csvPath, jsonPath string) error {
	logger.SetLevel(cfg.LogLevel)

	opts, err := auditOptions(cfg)
	if err != nil {
		return err
	}

	fsys, err := fshelper.OpenPackage(packagePath)
	if err != nil {
		return err
	}
	if closer, ok := fsys.(*fshelper.ZipFS); ok {
		defer closer.Close()
	}

	result, err := audit.Run(fsys, opts)
	if err != nil {
		return fmt.Errorf("audit failed: %w", err)
	}

	for _, warning := range result.Warnings {
		logger.Warn("%s", warning)
	}

	renderOpts := report.Options{Dedupe: cfg.Audit.Dedupe}
	if cfg.Audit.Exif {
		renderOpts.Images = result.Images
	}

	if csvPath != "" {
		if err := writeReportFile(csvPath, func(f *os.File) error {
			return report.WriteCSV(f, result.Records, renderOpts)
		}); err != nil {
			return err
		}
		logger.Info("Wrote CSV report to %s", csvPath)
	}

	if jsonPath != "" {
		if err := writeReportFile(jsonPath, func(f *os.File) error {
			return report.WriteJSON(f, result.Records, result.Warnings, renderOpts)
		}); err != nil {
			return err
		}
		logger.Info("Wrote JSON report to %s", jsonPath)
	}

	if csvPath == "" && jsonPath == "" {
		if err := report.WriteTable(os.Stdout, result.Records, renderOpts); err != nil {
			return err
		}
	}

	logger.Info("%d media assets reported from %s", len(result.Records), fsys.Name())
	return nil
}

func writeReportFile(path string, write func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot create report file: %w", err)
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// addSelectionFlags installs the filter/selection flags shared by inspect
// and export.
func addSelectionFlags(cmd *cobra.Command, cfg *config.Config) {
	cmd.Flags().StringVar(&cfg.Audit.Kind, "kind", cfg.Audit.Kind, "Media kind filter: all, images, video or audio")
	cmd.Flags().IntVar(&cfg.Audit.TopN, "top", 0, "Keep only the N largest assets")
	cmd.Flags().IntVar(&cfg.Audit.MinSizeKB, "min-size", 0, "Keep only assets of at least this many kilobytes")
}

// auditOptions validates the configured filter and selection mode. Top-N
// and minimum-size are mutually exclusive by contract; the pipeline never
// sees both.
func auditOptions(cfg *config.Config) (audit.Options, error) {
	filter, err := audit.ParseKindFilter(cfg.Audit.Kind)
	if err != nil {
		return audit.Options{}, err
	}

	var mode audit.Mode
	switch {
	case cfg.Audit.TopN > 0 && cfg.Audit.MinSizeKB > 0:
		return audit.Options{}, errors.New("--top and --min-size are mutually exclusive")
	case cfg.Audit.TopN < 0 || cfg.Audit.MinSizeKB < 0:
		return audit.Options{}, errors.New("--top and --min-size must be positive")
	case cfg.Audit.TopN > 0:
		mode = audit.TopN{N: cfg.Audit.TopN}
	case cfg.Audit.MinSizeKB > 0:
		mode = audit.MinSizeKB{Threshold: cfg.Audit.MinSizeKB}
	}

	return audit.Options{
		Filter:      filter,
		Mode:        mode,
		Dedupe:      cfg.Audit.Dedupe,
		Exif:        cfg.Audit.Exif,
		OrphansOnly: cfg.Audit.OrphansOnly,
	}, nil
}
