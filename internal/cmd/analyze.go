package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/Wasserpuncher/loglens/internal/analyze"
	"github.com/Wasserpuncher/loglens/internal/model"
	"github.com/Wasserpuncher/loglens/internal/output"
	"github.com/Wasserpuncher/loglens/internal/reader"
)

func runAnalyze(cmd *cobra.Command, args []string) error {
	if topN < 1 {
		return fmt.Errorf("--top must be a positive integer, got %d", topN)
	}

	var renderer output.Renderer
	switch strings.ToLower(outputFmt) {
	case "text":
		renderer = output.NewTextRenderer(os.Stdout, topN)
	case "json":
		renderer = output.NewJSONRenderer(os.Stdout, topN)
	default:
		return fmt.Errorf("unknown output format %q (want text or json)", outputFmt)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var stats *model.LogStats
	if len(args) == 0 {
		// No files given: read standard input as a single stream.
		s, err := analyze.Reader(os.Stdin)
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
		stats = s
	} else {
		paths, err := reader.ExpandPatterns(args)
		if err != nil {
			return err
		}
		s, err := analyze.Files(ctx, paths, parallel)
		if err != nil {
			return err
		}
		stats = s
	}

	return renderer.Render(stats)
}
