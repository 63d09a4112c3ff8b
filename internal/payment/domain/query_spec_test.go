package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(t *testing.T, v string) *time.Time {
	t.Helper()
	d, err := time.Parse(DateLayout, v)
	require.NoError(t, err)
	return &d
}

func TestBuildQuerySpecDefaults(t *testing.T) {
	spec := BuildQuerySpec(FilterSet{})

	assert.Empty(t, spec.RecipientTokens)
	assert.Nil(t, spec.DateFrom)
	assert.Nil(t, spec.DateTo)
	assert.Equal(t, DefaultLimit, spec.Limit)
	assert.Equal(t, 0, spec.Offset)
	assert.Equal(t, PaymentOrder, spec.Order)
}

func TestResolvePagination(t *testing.T) {
	tests := map[string]struct {
		filter     FilterSet
		wantLimit  int
		wantOffset int
	}{
		"unset":          {FilterSet{}, 10, 0},
		"explicit":       {FilterSet{Limit: 2, Offset: 1}, 2, 1},
		"large limit":    {FilterSet{Limit: 500}, 500, 0},
		"negative reset": {FilterSet{Limit: -3, Offset: -1}, 10, 0},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			limit, offset := ResolvePagination(tc.filter)
			assert.Equal(t, tc.wantLimit, limit)
			assert.Equal(t, tc.wantOffset, offset)
		})
	}
}

func TestRecipientTokens(t *testing.T) {
	assert.Nil(t, RecipientTokens(""))
	assert.Nil(t, RecipientTokens(" , ,"))
	assert.Equal(t, []string{"John"}, RecipientTokens("John"))
	assert.Equal(t, []string{"John", "Jane Smith"}, RecipientTokens(" John ,, Jane Smith ,"))
}

func TestRecipientPatternsEscapeWildcards(t *testing.T) {
	spec := BuildQuerySpec(FilterSet{Recipient: `john,50%,a_b,back\slash`})

	assert.Equal(t, []string{
		`%john%`,
		`%50\%%`,
		`%a\_b%`,
		`%back\\slash%`,
	}, spec.RecipientPatterns())
}

func TestMatches(t *testing.T) {
	p := Payment{Recipient: "John Doe", ScheduledDate: *date(t, "2025-07-26")}

	tests := map[string]struct {
		filter FilterSet
		want   bool
	}{
		"no filter":               {FilterSet{}, true},
		"case insensitive":        {FilterSet{Recipient: "jOhN"}, true},
		"substring":               {FilterSet{Recipient: "n D"}, true},
		"any token":               {FilterSet{Recipient: "Jane,Doe"}, true},
		"no token":                {FilterSet{Recipient: "Jane,Bob"}, false},
		"wildcard is literal":     {FilterSet{Recipient: "J%n"}, false},
		"from inclusive":          {FilterSet{ScheduledDateFrom: date(t, "2025-07-26")}, true},
		"from after":              {FilterSet{ScheduledDateFrom: date(t, "2025-07-27")}, false},
		"to inclusive":            {FilterSet{ScheduledDateTo: date(t, "2025-07-26")}, true},
		"to before":               {FilterSet{ScheduledDateTo: date(t, "2025-07-25")}, false},
		"inverted range is empty": {FilterSet{ScheduledDateFrom: date(t, "2025-08-01"), ScheduledDateTo: date(t, "2025-07-01")}, false},
		"recipient and range": {FilterSet{
			Recipient:         "john",
			ScheduledDateFrom: date(t, "2025-07-01"),
			ScheduledDateTo:   date(t, "2025-07-31"),
		}, true},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, BuildQuerySpec(tc.filter).Matches(p))
		})
	}
}

func TestMatchesIgnoresTimeOfDay(t *testing.T) {
	late := time.Date(2025, 7, 26, 23, 59, 0, 0, time.UTC)
	p := Payment{Recipient: "x", ScheduledDate: late}

	assert.True(t, BuildQuerySpec(FilterSet{ScheduledDateTo: date(t, "2025-07-26")}).Matches(p))
}

func TestLessOrdersByDateDescThenID(t *testing.T) {
	a := Payment{ID: uuid.MustParse("00000000-0000-0000-0000-000000000001"), ScheduledDate: *date(t, "2025-07-26")}
	b := Payment{ID: uuid.MustParse("00000000-0000-0000-0000-000000000002"), ScheduledDate: *date(t, "2025-07-26")}
	c := Payment{ID: uuid.MustParse("00000000-0000-0000-0000-000000000000"), ScheduledDate: *date(t, "2025-07-25")}

	assert.True(t, Less(a, b))
	assert.False(t, Less(b, a))
	assert.True(t, Less(b, c))
	assert.False(t, Less(c, a))
}

func TestParseDate(t *testing.T) {
	tests := map[string]struct {
		in   string
		want time.Time
	}{
		"date":                    {"2025-07-26", time.Date(2025, 7, 26, 0, 0, 0, 0, time.UTC)},
		"offset rolls day":        {"2025-07-26T23:30:00-02:00", time.Date(2025, 7, 27, 0, 0, 0, 0, time.UTC)},
		"zulu":                    {"2025-01-01T00:00:00Z", time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)},
		"zulu with millis":        {"2025-01-01T00:00:00.000Z", time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)},
		"no offset":               {"2025-01-01T00:00:00", time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)},
		"no offset with fraction": {"2025-01-01T23:59:59.123456", time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)},
		"minutes zulu":            {"2025-01-01T00:00Z", time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)},
		"minutes with offset":     {"2025-01-01T22:00+05:00", time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)},
		"minutes no offset":       {"2025-03-09T08:15", time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC)},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := ParseDate(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	for _, bad := range []string{"invalid-date", "2025-13-01", "2025-02-30", "26/07/2025", "2025-01-01T25:00:00", ""} {
		_, err := ParseDate(bad)
		assert.Error(t, err, bad)
	}
}
