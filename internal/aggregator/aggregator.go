package aggregator

import (
	"github.com/Wasserpuncher/loglens/internal/model"
	"github.com/Wasserpuncher/loglens/internal/parser"
)

// Aggregator folds raw log lines into a LogStats in a single pass.
// It performs no I/O and never fails; lines arrive with the trailing
// newline already stripped and are otherwise untouched (interior
// whitespace matters for pattern matching).
type Aggregator struct {
	stats *model.LogStats
}

// New returns an Aggregator with an empty accumulator.
func New() *Aggregator {
	return &Aggregator{stats: model.NewLogStats()}
}

// Add processes one line. Blank lines are skipped entirely; they count
// toward nothing, not even TotalLines.
func (a *Aggregator) Add(line string) {
	if line == "" {
		return
	}

	s := a.stats
	s.TotalLines++
	s.LevelCounts[parser.DetectLevel(line)]++

	if ts, ok := parser.ParseTimestamp(line); ok {
		s.ObserveTimestamp(ts)
	}
	if src, ok := parser.DetectSource(line); ok {
		s.SourceCounts[src]++
	}

	s.Messages.Add(parser.NormalizeMessage(line))
}

// Stats returns the accumulated result.
func (a *Aggregator) Stats() *model.LogStats {
	return a.stats
}
