package cli

import (
	"context"
	"fmt"

	"github.com/bstardust/pptx-media-audit/internal/audit"
	"github.com/bstardust/pptx-media-audit/internal/config"
	"github.com/bstardust/pptx-media-audit/internal/exporter"
	"github.com/bstardust/pptx-media-audit/internal/fshelper"
	"github.com/bstardust/pptx-media-audit/internal/journal"
	"github.com/bstardust/pptx-media-audit/internal/logger"
	"github.com/bstardust/pptx-media-audit/internal/progress"
	"github.com/bstardust/pptx-media-audit/internal/worker"
	"github.com/bstardust/pptx-media-audit/pkg/s3client"
	"github.com/spf13/cobra"
)

func newExportCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export [flags] <package-dir> | <file.pptx>",
		Short: "Export selected media assets to S3-compatible storage",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd.Context(), cfg, args[0])
		},
	}

	// S3 connection flags
	cmd.Flags().StringVar(&cfg.S3.Endpoint, "endpoint", cfg.S3.Endpoint, "S3 endpoint URL (required)")
	cmd.Flags().StringVar(&cfg.S3.Region, "region", cfg.S3.Region, "S3 region")
	cmd.Flags().StringVar(&cfg.S3.Bucket, "bucket", cfg.S3.Bucket, "S3 bucket name (required)")
	cmd.Flags().StringVar(&cfg.S3.AccessKey, "access-key", cfg.S3.AccessKey, "S3 access key")
	cmd.Flags().StringVar(&cfg.S3.SecretKey, "secret-key", cfg.S3.SecretKey, "S3 secret key")
	cmd.Flags().BoolVar(&cfg.S3.UseSSL, "use-ssl", cfg.S3.UseSSL, "Use SSL for S3 connection")
	cmd.Flags().StringVar(&cfg.S3.Prefix, "prefix", cfg.S3.Prefix, "Prefix for S3 object keys")

	// Export options
	addSelectionFlags(cmd, cfg)
	cmd.Flags().BoolVar(&cfg.Audit.Dedupe, "dedupe", false, "Attach content hashes to exported objects")
	cmd.Flags().BoolVar(&cfg.Audit.OrphansOnly, "orphans-only", false, "Export only media referenced by no part")
	cmd.Flags().IntVar(&cfg.Export.Concurrency, "concurrency", cfg.Export.Concurrency, "Number of concurrent uploads")
	cmd.Flags().BoolVar(&cfg.Export.DryRun, "dry-run", false, "Simulate export without uploading")
	cmd.Flags().BoolVar(&cfg.Export.Resume, "resume", cfg.Export.Resume, "Resume a previous export if interrupted")
	cmd.Flags().StringVar(&cfg.Export.JournalPath, "journal", "", "Path to journal file for resumable exports")
	cmd.Flags().BoolVar(&cfg.Export.SkipExisting, "skip-existing", cfg.Export.SkipExisting, "Skip assets that already exist in the bucket")

	cmd.MarkFlagRequired("endpoint")
	cmd.MarkFlagRequired("bucket")

	return cmd
}

func runExport(ctx context.Context, cfg *config.Config, packagePath string) error {
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
	if len(result.Records) == 0 {
		logger.Info("Nothing to export from %s", fsys.Name())
		return nil
	}

	store, err := s3client.New(ctx, s3client.Config{
		Endpoint:  cfg.S3.Endpoint,
		Region:    cfg.S3.Region,
		Bucket:    cfg.S3.Bucket,
		AccessKey: cfg.S3.AccessKey,
		SecretKey: cfg.S3.SecretKey,
		UseSSL:    cfg.S3.UseSSL,
		Prefix:    cfg.S3.Prefix,
	})
	if err != nil {
		if s3client.IsAuthError(err) {
			return fmt.Errorf("S3 authentication failed: %s", s3client.FormatError(err))
		}
		return fmt.Errorf("failed to initialize S3 client: %s", s3client.FormatError(err))
	}

	jnl := journal.New(cfg.Export.JournalPath)
	if cfg.Export.Resume {
		if err := jnl.Load(); err != nil {
			logger.Warn("Could not load journal: %v", err)
		}
	}

	pool := worker.NewPool(cfg.Export.Concurrency)
	progressReporter := progress.New()

	exp := exporter.New(ctx, store, fsys, result.Records, jnl, pool, progressReporter, cfg)
	if err := exp.Run(); err != nil {
		return fmt.Errorf("export failed: %w", err)
	}

	return nil
}
