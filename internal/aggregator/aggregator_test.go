package aggregator

import (
	"testing"
	"time"

	"github.com/Wasserpuncher/loglens/internal/model"
)

func aggregate(lines []string) *model.LogStats {
	agg := New()
	for _, line := range lines {
		agg.Add(line)
	}
	return agg.Stats()
}

func TestAggregateBasic(t *testing.T) {
	stats := aggregate([]string{
		"INFO app=web Request OK",
		"INFO app=web Request OK",
		"ERROR app=web Request failed",
	})

	if stats.TotalLines != 3 {
		t.Errorf("expected 3 total lines, got %d", stats.TotalLines)
	}
	if stats.LevelCounts["INFO"] != 2 || stats.LevelCounts["ERROR"] != 1 {
		t.Errorf("unexpected level counts: %v", stats.LevelCounts)
	}
	if stats.SourceCounts["web"] != 3 {
		t.Errorf("expected web=3, got %v", stats.SourceCounts)
	}

	top := stats.TopMessages(5)
	if len(top) != 2 {
		t.Fatalf("expected 2 top messages, got %d", len(top))
	}
	if top[0].Message != "Request OK" || top[0].Count != 2 {
		t.Errorf("expected ('Request OK', 2) first, got (%q, %d)", top[0].Message, top[0].Count)
	}
	if top[1].Message != "Request failed" || top[1].Count != 1 {
		t.Errorf("expected ('Request failed', 1) second, got (%q, %d)", top[1].Message, top[1].Count)
	}
}

func TestAggregateEmpty(t *testing.T) {
	stats := aggregate(nil)

	if stats.TotalLines != 0 {
		t.Errorf("expected 0 total lines, got %d", stats.TotalLines)
	}
	if len(stats.LevelCounts) != 0 || len(stats.SourceCounts) != 0 {
		t.Error("expected empty count maps")
	}
	if stats.FirstTimestamp != nil || stats.LastTimestamp != nil {
		t.Error("expected absent timestamps")
	}
	if len(stats.TopMessages(5)) != 0 {
		t.Error("expected no top messages")
	}
}

func TestAggregateBlankLinesIgnored(t *testing.T) {
	withBlanks := aggregate([]string{"", "INFO one", "", "", "ERROR two", ""})
	withoutBlanks := aggregate([]string{"INFO one", "ERROR two"})

	if withBlanks.TotalLines != withoutBlanks.TotalLines {
		t.Errorf("blank lines affected total: %d vs %d", withBlanks.TotalLines, withoutBlanks.TotalLines)
	}
	for k, v := range withoutBlanks.LevelCounts {
		if withBlanks.LevelCounts[k] != v {
			t.Errorf("blank lines affected level %s: %d vs %d", k, withBlanks.LevelCounts[k], v)
		}
	}
}

func TestAggregateUnknownLevel(t *testing.T) {
	stats := aggregate([]string{"plain line with no severity"})
	if stats.LevelCounts[model.LevelUnknown] != 1 {
		t.Errorf("expected UNKNOWN=1, got %v", stats.LevelCounts)
	}
}

func TestAggregateEveryLineGetsExactlyOneLevel(t *testing.T) {
	stats := aggregate([]string{
		"INFO fine",
		"WARNING: odd",
		"no level at all",
		"2025-01-01 00:00:00 ERROR bad",
	})
	var sum int64
	for _, v := range stats.LevelCounts {
		sum += v
	}
	if sum != stats.TotalLines {
		t.Errorf("level counts sum to %d, want %d", sum, stats.TotalLines)
	}
}

func TestAggregateTimestampWindow(t *testing.T) {
	stats := aggregate([]string{
		"2025-02-26 12:00:00 INFO middle",
		"2025-02-26 09:00:00 INFO earliest",
		"2025-02-26T18:30:00 INFO latest",
		"no timestamp here",
	})

	wantFirst := time.Date(2025, 2, 26, 9, 0, 0, 0, time.UTC)
	wantLast := time.Date(2025, 2, 26, 18, 30, 0, 0, time.UTC)
	if stats.FirstTimestamp == nil || !stats.FirstTimestamp.Equal(wantFirst) {
		t.Errorf("expected first %v, got %v", wantFirst, stats.FirstTimestamp)
	}
	if stats.LastTimestamp == nil || !stats.LastTimestamp.Equal(wantLast) {
		t.Errorf("expected last %v, got %v", wantLast, stats.LastTimestamp)
	}
}

func TestAggregateTopMessageTieOrder(t *testing.T) {
	stats := aggregate([]string{
		"INFO alpha happened",
		"INFO beta happened",
		"INFO alpha happened",
		"INFO beta happened",
	})

	top := stats.TopMessages(5)
	if len(top) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(top))
	}
	if top[0].Message != "alpha happened" || top[1].Message != "beta happened" {
		t.Errorf("expected first-seen order on ties, got %q then %q", top[0].Message, top[1].Message)
	}
}

// Merging two independently aggregated halves must equal aggregating the
// concatenation.
func TestMergeMatchesConcatenatedAggregation(t *testing.T) {
	first := []string{
		"2025-02-26 12:00:00 ERROR service=auth Login failed",
		"INFO app=web Request OK",
		"plain line",
	}
	second := []string{
		"2025-02-25 08:00:00 WARNING service=auth token expiring",
		"INFO app=web Request OK",
	}

	merged := model.Merge(aggregate(first), aggregate(second))
	whole := aggregate(append(append([]string{}, first...), second...))

	if merged.TotalLines != whole.TotalLines {
		t.Errorf("total lines: merged %d, whole %d", merged.TotalLines, whole.TotalLines)
	}
	for k, v := range whole.LevelCounts {
		if merged.LevelCounts[k] != v {
			t.Errorf("level %s: merged %d, whole %d", k, merged.LevelCounts[k], v)
		}
	}
	for k, v := range whole.SourceCounts {
		if merged.SourceCounts[k] != v {
			t.Errorf("source %s: merged %d, whole %d", k, merged.SourceCounts[k], v)
		}
	}
	if !merged.FirstTimestamp.Equal(*whole.FirstTimestamp) {
		t.Errorf("first timestamp: merged %v, whole %v", merged.FirstTimestamp, whole.FirstTimestamp)
	}
	if !merged.LastTimestamp.Equal(*whole.LastTimestamp) {
		t.Errorf("last timestamp: merged %v, whole %v", merged.LastTimestamp, whole.LastTimestamp)
	}

	mergedTop := merged.TopMessages(10)
	wholeTop := whole.TopMessages(10)
	if len(mergedTop) != len(wholeTop) {
		t.Fatalf("top messages length: merged %d, whole %d", len(mergedTop), len(wholeTop))
	}
	for i := range wholeTop {
		if mergedTop[i] != wholeTop[i] {
			t.Errorf("top[%d]: merged %v, whole %v", i, mergedTop[i], wholeTop[i])
		}
	}
}
