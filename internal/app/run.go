package app

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/AreyMadhav/PakSeek/internal/asset"
	"github.com/AreyMadhav/PakSeek/internal/ctxlog"
	"github.com/AreyMadhav/PakSeek/internal/depgraph"
	"github.com/AreyMadhav/PakSeek/internal/scanner"
	"github.com/AreyMadhav/PakSeek/internal/server"
)

// Run executes the main application logic: scan, validate, report, and
// optionally serve the result over HTTP until interrupted.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	result, err := scanner.New(a.config.Workers).Scan(ctx, a.config.ScanPath)
	if err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}

	for _, issue := range result.Graph.Validate() {
		a.logger.Warn("Dependency issue", "issue", issue)
	}

	roster := asset.Names(result.Assets)
	stats := result.Graph.Statistics(roster)
	a.logger.Info("Dependency statistics",
		"assets", len(result.Assets),
		"total_dependencies", stats.TotalDependencies,
		"max_depth", stats.MaxDepth,
		"circular_references", len(stats.CircularReferences),
		"orphaned_assets", len(stats.OrphanedAssets),
	)

	if a.config.ExportFormat != "" {
		if err := a.export(result, roster); err != nil {
			return err
		}
	}

	if a.config.Serve {
		serveCtx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		if err := server.New(result).Run(serveCtx, a.config.Port); err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}

// export writes the dependency map to outW in the configured format.
// "markdown" is a CLI-only report format; everything else goes through
// the map exporter.
func (a *App) export(result *scanner.Result, roster []string) error {
	var out string
	if a.config.ExportFormat == "markdown" {
		out = depgraph.MarkdownReport(result.Graph, roster)
	} else {
		rendered, err := result.Graph.Export(a.config.ExportFormat)
		if err != nil {
			return fmt.Errorf("export failed: %w", err)
		}
		out = rendered
	}
	_, err := fmt.Fprintln(a.outW, out)
	return err
}
