package importer

import (
	"strconv"
	"strings"

	"github.com/alexanderramin/izof/internal/domain"
)

// ParseResult carries the parsed records together with the 1-based line
// numbers of data lines that did not match the record format.
type ParseResult struct {
	Records []domain.Record
	Skipped []int
}

// ParseRecords converts raw multi-line text into records in input order.
// Blank lines, comment lines and malformed lines produce no record.
// An empty result is not an error here; callers decide how to report it.
func ParseRecords(text string) []domain.Record {
	return ParseRecordsWithReport(text).Records
}

// ParseRecordsWithReport is ParseRecords plus the list of dropped lines.
func ParseRecordsWithReport(text string) ParseResult {
	var res ParseResult
	for i, line := range strings.Split(text, "\n") {
		if isSkippable(line) {
			continue
		}
		rec, ok := ParseLine(line)
		if !ok {
			res.Skipped = append(res.Skipped, i+1)
			continue
		}
		res.Records = append(res.Records, rec)
	}
	return res
}

// ParseLine parses a single data line. It never fails loudly: a line that
// does not match, or whose numbers do not fit in an int, returns false.
func ParseLine(line string) (domain.Record, bool) {
	if isSkippable(line) {
		return domain.Record{}, false
	}
	m := recordPattern.FindStringSubmatch(strings.TrimSpace(line))
	if m == nil {
		return domain.Record{}, false
	}
	required, err := strconv.Atoi(m[2])
	if err != nil {
		return domain.Record{}, false
	}
	current, err := strconv.Atoi(m[3])
	if err != nil {
		return domain.Record{}, false
	}
	return domain.Record{
		Label:    strings.TrimSpace(m[1]),
		Required: required,
		Current:  current,
	}, true
}

func isSkippable(line string) bool {
	trimmed := strings.TrimSpace(line)
	return trimmed == "" || strings.HasPrefix(trimmed, CommentPrefix)
}
