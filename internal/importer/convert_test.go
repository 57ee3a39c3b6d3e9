package importer

import (
	"strings"
	"testing"

	"github.com/alexanderramin/izof/internal/domain"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRecords_GolfScenario(t *testing.T) {
	got := ParseRecords("드라이버정확도 8 6\n퍼팅자신감 9 7")

	want := []domain.Record{
		{Label: "드라이버정확도", Required: 8, Current: 6},
		{Label: "퍼팅자신감", Required: 9, Current: 7},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ParseRecords mismatch (-want +got):\n%s", diff)
	}
}

func TestParseRecords_ExampleInput(t *testing.T) {
	got := ParseRecords(ExampleInput)

	require.Len(t, got, 5)
	assert.Equal(t, domain.Record{Label: "승부욕", Required: 8, Current: 9}, got[4])
}

func TestParseRecords_MultiWordLabel(t *testing.T) {
	got := ParseRecords("  Driver accuracy under pressure   8   6  ")

	want := []domain.Record{{Label: "Driver accuracy under pressure", Required: 8, Current: 6}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ParseRecords mismatch (-want +got):\n%s", diff)
	}
}

func TestParseRecords_LabelEndingInDigits(t *testing.T) {
	// Non-greedy label: the last two numeric tokens are the scores.
	got := ParseRecords("Round 2 7 5")

	want := []domain.Record{{Label: "Round 2", Required: 7, Current: 5}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ParseRecords mismatch (-want +got):\n%s", diff)
	}
}

func TestParseRecords_CommentsAndBlankLinesIgnored(t *testing.T) {
	text := strings.Join([]string{
		"# header",
		"",
		"   ",
		"Focus 7 6",
		"   # indented comment 1 2",
		"#Focus 7 6",
		"",
		"Calm 5 5",
		"#",
	}, "\n")

	got := ParseRecordsWithReport(text)

	assert.Equal(t, []domain.Record{
		{Label: "Focus", Required: 7, Current: 6},
		{Label: "Calm", Required: 5, Current: 5},
	}, got.Records)
	assert.Empty(t, got.Skipped)
}

func TestParseRecords_MalformedLinesDropped(t *testing.T) {
	text := strings.Join([]string{
		"Focus 7",          // missing a number
		"Focus seven 6",    // only one trailing integer
		"7 6",              // no label
		"Focus 7 6 extra",  // extra token after the numbers
		"Focus -1 6",       // sign is not part of the pattern
		"Focus 7.5 6",      // not an integer
		"Energy 6 8",       // valid
	}, "\n")

	got := ParseRecordsWithReport(text)

	assert.Equal(t, []domain.Record{{Label: "Energy", Required: 6, Current: 8}}, got.Records)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, got.Skipped)
}

func TestParseRecords_Idempotent(t *testing.T) {
	first := ParseRecords(ExampleInput)
	second := ParseRecords(ExampleInput)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("parsing is not idempotent (-first +second):\n%s", diff)
	}
}

func TestParseRecords_DuplicatesAndLargeValuesKept(t *testing.T) {
	got := ParseRecords("Focus 7 6\nFocus 12 40\nFocus 0 0")

	require.Len(t, got, 3)
	assert.Equal(t, 12, got[1].Required)
	assert.Equal(t, 40, got[1].Current)
	assert.Equal(t, 0, got[2].Current)
}

func TestParseRecords_CRLF(t *testing.T) {
	got := ParseRecords("Focus 7 6\r\nCalm 5 4\r\n")

	assert.Equal(t, []domain.Record{
		{Label: "Focus", Required: 7, Current: 6},
		{Label: "Calm", Required: 5, Current: 4},
	}, got)
}

func TestParseRecords_Empty(t *testing.T) {
	assert.Empty(t, ParseRecords(""))
	assert.Empty(t, ParseRecords("# only comments\n\n"))
}

func TestParseLine_Overflow(t *testing.T) {
	_, ok := ParseLine("Focus 99999999999999999999999 6")
	assert.False(t, ok)
}

func TestParseLine_Comment(t *testing.T) {
	_, ok := ParseLine("# Focus 7 6")
	assert.False(t, ok)
}
