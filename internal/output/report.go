package output

import "github.com/Wasserpuncher/loglens/internal/model"

// timeLayout is the interchange form for timestamps in rendered output.
const timeLayout = "2006-01-02T15:04:05"

// Report is the serializable form of a LogStats summary. Timestamps are
// rendered as date-time strings and null when absent; top_messages is
// truncated to the caller-selected length.
type Report struct {
	TotalLines     int64                `json:"total_lines"`
	LevelCounts    map[string]int64     `json:"level_counts"`
	FirstTimestamp *string              `json:"first_timestamp"`
	LastTimestamp  *string              `json:"last_timestamp"`
	SourceCounts   map[string]int64     `json:"source_counts"`
	TopMessages    []model.MessageCount `json:"top_messages"`
}

// NewReport builds the report form of stats with the topN most frequent
// messages.
func NewReport(stats *model.LogStats, topN int) Report {
	rep := Report{
		TotalLines:   stats.TotalLines,
		LevelCounts:  stats.LevelCounts,
		SourceCounts: stats.SourceCounts,
		TopMessages:  stats.TopMessages(topN),
	}
	if stats.FirstTimestamp != nil {
		s := stats.FirstTimestamp.Format(timeLayout)
		rep.FirstTimestamp = &s
	}
	if stats.LastTimestamp != nil {
		s := stats.LastTimestamp.Format(timeLayout)
		rep.LastTimestamp = &s
	}
	return rep
}
