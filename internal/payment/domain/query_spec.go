package domain

import (
	"strings"
	"time"
)

// DefaultLimit is the page size applied when a request leaves limit unset or zero.
const DefaultLimit = 10

// DateLayout is the wire and comparison format of scheduled dates.
const DateLayout = "2006-01-02"

// FilterSet is the normalized set of optional constraints for one listing request.
// Dates are calendar days at UTC midnight.
type FilterSet struct {
	Recipient         string
	ScheduledDateFrom *time.Time
	ScheduledDateTo   *time.Time
	Limit             int
	Offset            int
}

// OrderTerm is one ORDER BY column.
type OrderTerm struct {
	Column string
	Desc   bool
}

// PaymentOrder is the fixed listing order. The id term makes pages over equal
// dates reproducible.
var PaymentOrder = []OrderTerm{
	{Column: "scheduled_date", Desc: true},
	{Column: "id"},
}

// QuerySpec describes a payments fetch without performing it.
type QuerySpec struct {
	RecipientTokens []string
	DateFrom        *time.Time
	DateTo          *time.Time
	Order           []OrderTerm
	Limit           int
	Offset          int
}

// BuildQuerySpec translates a filter set into predicates, ordering and pagination.
func BuildQuerySpec(filter FilterSet) QuerySpec {
	limit, offset := ResolvePagination(filter)

	spec := QuerySpec{
		RecipientTokens: RecipientTokens(filter.Recipient),
		Order:           PaymentOrder,
		Limit:           limit,
		Offset:          offset,
	}
	if filter.ScheduledDateFrom != nil {
		from := DateOnly(*filter.ScheduledDateFrom)
		spec.DateFrom = &from
	}
	if filter.ScheduledDateTo != nil {
		to := DateOnly(*filter.ScheduledDateTo)
		spec.DateTo = &to
	}
	return spec
}

// ResolvePagination returns the limit and offset a listing actually applies.
func ResolvePagination(filter FilterSet) (limit, offset int) {
	limit = filter.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}
	offset = filter.Offset
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

// RecipientTokens splits a comma-separated recipient filter, dropping blank entries.
func RecipientTokens(raw string) []string {
	if raw == "" {
		return nil
	}
	var tokens []string
	for _, part := range strings.Split(raw, ",") {
		if tok := strings.TrimSpace(part); tok != "" {
			tokens = append(tokens, tok)
		}
	}
	return tokens
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// RecipientPatterns returns one ILIKE pattern per token, matching the token as a literal substring.
func (s QuerySpec) RecipientPatterns() []string {
	patterns := make([]string, 0, len(s.RecipientTokens))
	for _, tok := range s.RecipientTokens {
		patterns = append(patterns, "%"+likeEscaper.Replace(tok)+"%")
	}
	return patterns
}

// Matches evaluates the spec's predicates against a single row.
func (s QuerySpec) Matches(p Payment) bool {
	if len(s.RecipientTokens) > 0 {
		recipient := strings.ToLower(p.Recipient)
		found := false
		for _, tok := range s.RecipientTokens {
			if strings.Contains(recipient, strings.ToLower(tok)) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	date := DateOnly(p.ScheduledDate)
	if s.DateFrom != nil && date.Before(*s.DateFrom) {
		return false
	}
	if s.DateTo != nil && date.After(*s.DateTo) {
		return false
	}
	return true
}

// Less reports whether a sorts before b in PaymentOrder.
func Less(a, b Payment) bool {
	da, db := DateOnly(a.ScheduledDate), DateOnly(b.ScheduledDate)
	if !da.Equal(db) {
		return da.After(db)
	}
	return a.ID.String() < b.ID.String()
}

// DateOnly drops the time of day, keeping the calendar date as written.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// timestampLayouts are the ISO 8601 date-time forms accepted besides a bare date.
// Values without an offset are read as UTC.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
}

// ParseDate accepts YYYY-MM-DD or an ISO 8601 timestamp and returns the UTC calendar date.
func ParseDate(v string) (time.Time, error) {
	t, err := time.Parse(DateLayout, v)
	if err == nil {
		return t, nil
	}
	for _, layout := range timestampLayouts {
		if ts, perr := time.Parse(layout, v); perr == nil {
			return DateOnly(ts.UTC()), nil
		}
	}
	return time.Time{}, err
}
