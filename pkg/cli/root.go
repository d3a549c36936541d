// pkg/cli/root.go
package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/bstardust/pptx-media-audit/internal/config"
	"github.com/bstardust/pptx-media-audit/internal/logger"
	"github.com/spf13/cobra"
)

func Execute() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle interruption signals
	signalCh := make(chan os.Signal, 1)
	signal.Notify(signalCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-signalCh
		logger.Info("Received interrupt signal, shutting down gracefully...")
		cancel()
	}()

	rootCmd := &cobra.Command{
		Use:   "pptx-media-audit",
		Short: "Audit embedded media usage in PowerPoint packages",
		Long: `Inspects a PowerPoint (.pptx) package and reports, for every embedded
media asset, which slides and other document parts use it, which picture
shapes place it, whether it is an orphan, and which assets are exact
duplicates of each other.`,
	}

	cfg := config.New()
	cfg.LoadEnv()
	rootCmd.PersistentFlags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")

	rootCmd.AddCommand(newInspectCommand(cfg))
	rootCmd.AddCommand(newExportCommand(cfg))

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		logger.Error("Error executing command: %v", err)
		os.Exit(1)
	}
}
