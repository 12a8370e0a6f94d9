// Package analyze drives log streams through the aggregation pipeline:
// one Aggregator per input, results merged in input order.
package analyze

import (
	"context"
	"fmt"
	"io"
	"os"

	"golang.org/x/sync/errgroup"

	"github.com/Wasserpuncher/loglens/internal/aggregator"
	"github.com/Wasserpuncher/loglens/internal/model"
	"github.com/Wasserpuncher/loglens/internal/reader"
)

// Reader aggregates a single stream.
func Reader(r io.Reader) (*model.LogStats, error) {
	agg := aggregator.New()
	if err := reader.Lines(r, agg.Add); err != nil {
		return nil, err
	}
	return agg.Stats(), nil
}

// File aggregates one named file. Open and read failures surface to the
// caller; nothing is silently skipped.
func File(path string) (*model.LogStats, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	stats, err := Reader(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return stats, nil
}

// Files aggregates each path independently and folds the results
// left-to-right in the order given. With parallel > 1 that many workers
// aggregate concurrently; each owns its accumulator, and the merge still
// runs in argument order, so the result is identical either way.
// The first failing file aborts the whole run.
func Files(ctx context.Context, paths []string, parallel int) (*model.LogStats, error) {
	if len(paths) == 0 {
		return model.NewLogStats(), nil
	}

	results := make([]*model.LogStats, len(paths))

	if parallel <= 1 {
		for i, path := range paths {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			stats, err := File(path)
			if err != nil {
				return nil, err
			}
			results[i] = stats
		}
	} else {
		g, ctx := errgroup.WithContext(ctx)
		g.SetLimit(parallel)
		for i, path := range paths {
			i, path := i, path
			g.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				stats, err := File(path)
				if err != nil {
					return err
				}
				results[i] = stats
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
	}

	combined := results[0]
	for _, stats := range results[1:] {
		combined = model.Merge(combined, stats)
	}
	return combined, nil
}
