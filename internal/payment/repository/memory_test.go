package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/tair/payments-api/internal/payment/domain"
)

func day(v string) time.Time {
	d, err := time.Parse(domain.DateLayout, v)
	if err != nil {
		panic(err)
	}
	return d
}

func dayPtr(v string) *time.Time {
	d := day(v)
	return &d
}

func fixture(id int, recipient, scheduled string) domain.Payment {
	return domain.Payment{
		ID:            uuid.MustParse(fmt.Sprintf("00000000-0000-0000-0000-%012d", id)),
		Amount:        decimal.RequireFromString("100.50"),
		Currency:      "USD",
		ScheduledDate: day(scheduled),
		Recipient:     recipient,
		Status:        domain.StatusPending,
	}
}

func seedRows() []domain.Payment {
	return []domain.Payment{
		fixture(1, "John Doe", "2025-09-15"),
		fixture(2, "John Doe", "2025-07-26"),
		fixture(3, "Jane Smith", "2025-07-25"),
		fixture(4, "Bob Wilson", "2024-12-01"),
	}
}

func recipients(ps []domain.Payment) []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = p.Recipient
	}
	return out
}

func TestMemoryFetchPageOrdersByDateDesc(t *testing.T) {
	repo := NewMemoryPaymentRepository(seedRows()...)

	items, total, err := repo.FetchPage(context.Background(), domain.FilterSet{})
	require.NoError(t, err)

	assert.Equal(t, int64(4), total)
	require.Len(t, items, 4)
	for i := 1; i < len(items); i++ {
		assert.False(t, items[i].ScheduledDate.After(items[i-1].ScheduledDate))
	}
	assert.Equal(t, "2025-09-15", items[0].ScheduledDate.Format(domain.DateLayout))
}

func TestMemoryFetchPageFilters(t *testing.T) {
	repo := NewMemoryPaymentRepository(seedRows()...)

	tests := map[string]struct {
		filter domain.FilterSet
		want   []string
		total  int64
	}{
		"single recipient": {
			filter: domain.FilterSet{Recipient: "John"},
			want:   []string{"John Doe", "John Doe"},
			total:  2,
		},
		"multiple recipients": {
			filter: domain.FilterSet{Recipient: "John,Jane"},
			want:   []string{"John Doe", "John Doe", "Jane Smith"},
			total:  3,
		},
		"date range": {
			filter: domain.FilterSet{ScheduledDateFrom: dayPtr("2025-07-01"), ScheduledDateTo: dayPtr("2025-07-31")},
			want:   []string{"John Doe", "Jane Smith"},
			total:  2,
		},
		"combined": {
			filter: domain.FilterSet{Recipient: "John", ScheduledDateFrom: dayPtr("2025-07-01"), ScheduledDateTo: dayPtr("2025-07-31")},
			want:   []string{"John Doe"},
			total:  1,
		},
		"no match": {
			filter: domain.FilterSet{Recipient: "Nobody"},
			want:   []string{},
			total:  0,
		},
		"inverted range": {
			filter: domain.FilterSet{ScheduledDateFrom: dayPtr("2025-12-31"), ScheduledDateTo: dayPtr("2025-01-01")},
			want:   []string{},
			total:  0,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			items, total, err := repo.FetchPage(context.Background(), tc.filter)
			require.NoError(t, err)
			assert.Equal(t, tc.total, total)
			assert.Equal(t, tc.want, recipients(items))
		})
	}
}

func TestMemoryFetchPagePagination(t *testing.T) {
	repo := NewMemoryPaymentRepository(seedRows()...)
	ctx := context.Background()

	items, total, err := repo.FetchPage(ctx, domain.FilterSet{Limit: 2, Offset: 1})
	require.NoError(t, err)
	assert.Equal(t, int64(4), total)
	assert.Len(t, items, 2)

	items, total, err = repo.FetchPage(ctx, domain.FilterSet{Limit: 10, Offset: 100})
	require.NoError(t, err)
	assert.Equal(t, int64(4), total)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestMemoryPagesPartitionTheMatchSet(t *testing.T) {
	rows := make([]domain.Payment, 0, 23)
	for i := 0; i < 23; i++ {
		// several rows share a date so the id tie-break is exercised
		rows = append(rows, fixture(i+1, fmt.Sprintf("Recipient %02d", i), fmt.Sprintf("2025-03-%02d", 1+i/4)))
	}
	repo := NewMemoryPaymentRepository(rows...)
	ctx := context.Background()

	all, total, err := repo.FetchPage(ctx, domain.FilterSet{Limit: 1000})
	require.NoError(t, err)
	require.Equal(t, int64(23), total)

	var paged []domain.Payment
	for offset := 0; offset < int(total); offset += 5 {
		page, pageTotal, err := repo.FetchPage(ctx, domain.FilterSet{Limit: 5, Offset: offset})
		require.NoError(t, err)
		assert.Equal(t, total, pageTotal)
		paged = append(paged, page...)
	}

	assert.Equal(t, all, paged)
}

func TestMemoryExcludesSoftDeleted(t *testing.T) {
	rows := seedRows()
	rows[3].DeletedAt = gorm.DeletedAt{Time: time.Now(), Valid: true}
	repo := NewMemoryPaymentRepository(rows...)
	ctx := context.Background()

	items, total, err := repo.FetchPage(ctx, domain.FilterSet{})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.NotContains(t, recipients(items), "Bob Wilson")

	got, err := repo.FetchDistinctRecipients(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Bob Wilson", "Jane Smith", "John Doe"}, got)
}

func TestMemoryFetchDistinctRecipientsEmpty(t *testing.T) {
	got, err := NewMemoryPaymentRepository().FetchDistinctRecipients(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestMemoryCreateAssignsDefaults(t *testing.T) {
	repo := NewMemoryPaymentRepository()
	ctx := context.Background()

	p := &domain.Payment{
		Amount:        decimal.RequireFromString("9.99"),
		Currency:      "EUR",
		ScheduledDate: day("2025-10-01"),
		Recipient:     "Alice",
	}
	require.NoError(t, repo.Create(ctx, p))

	assert.NotEqual(t, uuid.Nil, p.ID)
	assert.Equal(t, domain.StatusPending, p.Status)
	assert.False(t, p.CreatedAt.IsZero())

	items, total, err := repo.FetchPage(ctx, domain.FilterSet{Recipient: "alice"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, p.ID, items[0].ID)
}

func TestMemoryHonoursCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := NewMemoryPaymentRepository(seedRows()...).FetchPage(ctx, domain.FilterSet{})
	assert.ErrorIs(t, err, context.Canceled)
}
