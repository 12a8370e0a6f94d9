package parser

import (
	"regexp"
	"strings"
	"time"

	"github.com/Wasserpuncher/loglens/internal/model"
)

// levelPattern matches severity tokens as whole words, so INFORMATION
// does not count as INFO. Go's regexp picks the leftmost match and
// prefers earlier alternatives, which keeps classification deterministic.
var levelPattern = regexp.MustCompile(`\b(INFO|WARN|WARNING|ERROR|DEBUG|CRITICAL)\b`)

// timestampFormat pairs a search pattern with the layout that parses its match.
type timestampFormat struct {
	re     *regexp.Regexp
	layout string
}

// timestampFormats are tried in order; the first pattern that matches
// anywhere in the line wins. No timezone or fractional-second forms.
var timestampFormats = []timestampFormat{
	{regexp.MustCompile(`\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}`), "2006-01-02 15:04:05"},
	{regexp.MustCompile(`\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}`), "2006-01-02T15:04:05"},
}

// sourcePattern captures the value of the first service/app/src/module
// key=value fragment. Keys are case-sensitive; the value stops at the
// first character outside [A-Za-z0-9_\-.].
var sourcePattern = regexp.MustCompile(`\b(?:service|app|src|module)=([A-Za-z0-9_\-.]+)`)

var whitespaceRun = regexp.MustCompile(`\s+`)

// DetectLevel returns the severity of a raw line. Only the first
// whole-word level token matters; WARNING folds into WARN; a line with
// no token is UNKNOWN.
func DetectLevel(line string) string {
	m := levelPattern.FindStringSubmatch(line)
	if m == nil {
		return model.LevelUnknown
	}
	if m[1] == "WARNING" {
		return model.LevelWarn
	}
	return m[1]
}

// ParseTimestamp extracts the first recognizable timestamp from a raw
// line. The space-separated form takes priority over the T-separated
// form. If the matched text does not parse under its layout the result
// is absent; no error crosses this boundary.
func ParseTimestamp(line string) (time.Time, bool) {
	for _, f := range timestampFormats {
		match := f.re.FindString(line)
		if match == "" {
			continue
		}
		ts, err := time.Parse(f.layout, match)
		if err != nil {
			return time.Time{}, false
		}
		return ts, true
	}
	return time.Time{}, false
}

// DetectSource extracts the value of the first source key=value
// fragment, if any.
func DetectSource(line string) (string, bool) {
	m := sourcePattern.FindStringSubmatch(line)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// NormalizeMessage strips every timestamp, level token, and source
// fragment from a raw line, then collapses whitespace. Unlike the
// detectors above, removal is global, not first-match-only. The result
// is the grouping key for message-frequency counting; a line that is
// nothing but stripped substructure becomes "<empty>".
func NormalizeMessage(line string) string {
	msg := line
	for _, f := range timestampFormats {
		msg = f.re.ReplaceAllString(msg, "")
	}
	msg = levelPattern.ReplaceAllString(msg, "")
	msg = sourcePattern.ReplaceAllString(msg, "")
	msg = strings.TrimSpace(whitespaceRun.ReplaceAllString(msg, " "))
	if msg == "" {
		return "<empty>"
	}
	return msg
}
