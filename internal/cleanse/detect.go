package cleanse

import (
	"regexp"
	"strings"
	"time"

	"scrubcli/internal/table"
)

// Heuristic thresholds. These are behavioral contracts: reports produced by
// any two builds must agree, so the values are fixed here rather than
// configurable.
const (
	// dateSampleSize is how many non-missing values are inspected, in row
	// order, when deciding whether an unlabelled column holds dates.
	dateSampleSize = 10
	// dateMatchThreshold is the fraction of sampled values that must look
	// like dates (strictly greater-than) for a column to qualify.
	dateMatchThreshold = 0.7
	// numericParseThreshold is the fraction of originally non-missing
	// values that must parse as numbers (strictly greater-than) for a text
	// column to be coerced to numeric.
	numericParseThreshold = 0.5
)

// dateKeywords are column-name substrings that mark a column as date-like
// regardless of its contents.
var dateKeywords = []string{"date", "time", "created", "updated", "modified", "birth", "dob"}

// datePatterns match common date shapes at the start of a trimmed value:
// YYYY-M-D, M/D/YYYY, M-D-YYYY and YYYY/M/D with one- or two-digit month
// and day.
var datePatterns = []*regexp.Regexp{
	regexp.MustCompile(`^\d{4}-\d{1,2}-\d{1,2}`),
	regexp.MustCompile(`^\d{1,2}/\d{1,2}/\d{4}`),
	regexp.MustCompile(`^\d{1,2}-\d{1,2}-\d{4}`),
	regexp.MustCompile(`^\d{4}/\d{1,2}/\d{1,2}`),
}

// dateLayouts are tried in order when standardizing a date value. Numeric
// fields without a leading zero also accept two-digit input, so one layout
// covers both "2024-1-2" and "2024-01-02". Slash dates are read month-first.
var dateLayouts = []string{
	"2006-1-2 15:04:05",
	"2006-1-2T15:04:05",
	time.RFC3339,
	"2006-1-2",
	"2006/1/2",
	"1/2/2006",
	"1-2-2006",
	"Jan 2, 2006",
	"January 2, 2006",
	"2 Jan 2006",
}

// numericJunk strips the characters the original numeric cleanup removed
// before parsing. Other currency symbols and European separator styles are
// intentionally out of scope.
var numericJunk = regexp.MustCompile(`[,$%]`)

// isDateColumn reports whether the column qualifies for date
// standardization: it is not already dates, and either its name carries a
// date keyword or more than dateMatchThreshold of its first dateSampleSize
// non-missing values match a date pattern. A column with no sampled values
// never qualifies by content.
func isDateColumn(name string, cells []table.Cell) bool {
	for _, c := range cells {
		if c.Kind == table.Date {
			return false
		}
	}

	lower := strings.ToLower(name)
	for _, kw := range dateKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}

	sampled, matched := 0, 0
	for _, c := range cells {
		if c.IsMissing() {
			continue
		}
		if looksLikeDate(cellString(c)) {
			matched++
		}
		sampled++
		if sampled == dateSampleSize {
			break
		}
	}
	return sampled > 0 && float64(matched)/float64(sampled) > dateMatchThreshold
}

func looksLikeDate(s string) bool {
	s = strings.TrimSpace(s)
	for _, re := range datePatterns {
		if re.MatchString(s) {
			return true
		}
	}
	return false
}

// parseDate attempts a permissive multi-format parse of s.
func parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// parseNumber strips the junk characters and attempts a float parse.
func parseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(numericJunk.ReplaceAllString(s, ""))
	if s == "" {
		return 0, false
	}
	f, err := parseFloat(s)
	return f, err == nil
}

// cellString renders a cell for re-parsing. Only text cells reach the
// heuristics in practice, but numbers and dates degrade sensibly.
func cellString(c table.Cell) string {
	switch c.Kind {
	case table.Text:
		return c.Str
	case table.Number:
		return formatFloat(c.Num)
	case table.Date:
		return c.Time.Format("2006-01-02")
	default:
		return ""
	}
}
