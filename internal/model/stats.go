package model

import "time"

// Log severity levels recognized by the classifier. Lines with no
// recognizable level are counted under LevelUnknown.
const (
	LevelInfo     = "INFO"
	LevelWarn     = "WARN"
	LevelError    = "ERROR"
	LevelDebug    = "DEBUG"
	LevelCritical = "CRITICAL"
	LevelUnknown  = "UNKNOWN"
)

// LogStats is the aggregated summary of one or more log streams.
// It is a mutable accumulator during a pass and treated as a value
// once the pass is done.
type LogStats struct {
	TotalLines     int64
	LevelCounts    map[string]int64
	FirstTimestamp *time.Time // nil when no line carried a timestamp
	LastTimestamp  *time.Time
	SourceCounts   map[string]int64
	Messages       *MessageCounter // full normalized-message frequency table
}

// NewLogStats returns an empty accumulator.
func NewLogStats() *LogStats {
	return &LogStats{
		LevelCounts:  make(map[string]int64),
		SourceCounts: make(map[string]int64),
		Messages:     NewMessageCounter(),
	}
}

// ObserveTimestamp folds ts into the running first/last window.
// Equal timestamps do not rewrite state.
func (s *LogStats) ObserveTimestamp(ts time.Time) {
	if s.FirstTimestamp == nil || ts.Before(*s.FirstTimestamp) {
		t := ts
		s.FirstTimestamp = &t
	}
	if s.LastTimestamp == nil || ts.After(*s.LastTimestamp) {
		t := ts
		s.LastTimestamp = &t
	}
}

// TopMessages returns the n most frequent normalized messages, count
// descending, ties broken by first-seen order.
func (s *LogStats) TopMessages(n int) []MessageCount {
	return s.Messages.Top(n)
}

// Merge combines two independently aggregated results into one equal to
// aggregating the concatenation of their inputs. Neither operand is
// modified. The full message tables are merged, so no precision is lost
// regardless of how many merges happen before rendering.
func Merge(a, b *LogStats) *LogStats {
	out := NewLogStats()
	out.TotalLines = a.TotalLines + b.TotalLines

	for k, v := range a.LevelCounts {
		out.LevelCounts[k] += v
	}
	for k, v := range b.LevelCounts {
		out.LevelCounts[k] += v
	}

	for k, v := range a.SourceCounts {
		out.SourceCounts[k] += v
	}
	for k, v := range b.SourceCounts {
		out.SourceCounts[k] += v
	}

	for _, s := range []*LogStats{a, b} {
		if s.FirstTimestamp != nil {
			out.ObserveTimestamp(*s.FirstTimestamp)
		}
		if s.LastTimestamp != nil {
			out.ObserveTimestamp(*s.LastTimestamp)
		}
	}

	for _, mc := range a.Messages.All() {
		out.Messages.AddN(mc.Message, mc.Count)
	}
	for _, mc := range b.Messages.All() {
		out.Messages.AddN(mc.Message, mc.Count)
	}

	return out
}
