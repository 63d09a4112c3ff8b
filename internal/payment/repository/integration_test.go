//go:build integration

package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/tair/payments-api/internal/payment/domain"
	"github.com/tair/payments-api/pkg/database"
)

func startPostgres(ctx context.Context, t *testing.T) database.Config {
	t.Helper()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:16",
		Env:          map[string]string{"POSTGRES_PASSWORD": "postgres", "POSTGRES_USER": "postgres", "POSTGRES_DB": "payments"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForLog("database system is ready to accept connections").WithOccurrence(2).WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, container.Terminate(context.Background()))
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)

	mappedPort, err := container.MappedPort(ctx, "5432/tcp")
	require.NoError(t, err)

	return database.Config{
		Host:     host,
		Port:     mappedPort.Port(),
		User:     "postgres",
		Password: "postgres",
		DBName:   "payments",
		SSLMode:  "disable",
	}
}

func TestGormRepositoryAgainstPostgres(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
	defer cancel()

	cfg := startPostgres(ctx, t)
	require.NoError(t, database.RunMigrations(cfg))

	db, err := database.NewGormConnection(cfg)
	require.NoError(t, err)

	repo := NewGormPaymentRepository(db)
	for _, row := range seedRows() {
		row := row
		require.NoError(t, repo.Create(ctx, &row))
	}
	extra := fixture(5, "100%_Literal", "2025-01-01")
	require.NoError(t, repo.Create(ctx, &extra))

	items, total, err := repo.FetchPage(ctx, domain.FilterSet{Recipient: "john,JANE"})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Equal(t, []string{"John Doe", "John Doe", "Jane Smith"}, recipients(items))

	items, total, err = repo.FetchPage(ctx, domain.FilterSet{
		ScheduledDateFrom: dayPtr("2025-07-25"),
		ScheduledDateTo:   dayPtr("2025-07-26"),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Equal(t, "2025-07-26", items[0].ScheduledDate.Format(domain.DateLayout))

	// wildcards in the filter are matched literally
	_, total, err = repo.FetchPage(ctx, domain.FilterSet{Recipient: "0%_L"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	_, total, err = repo.FetchPage(ctx, domain.FilterSet{Recipient: "J_hn"})
	require.NoError(t, err)
	assert.Equal(t, int64(0), total)

	require.NoError(t, db.WithContext(ctx).Delete(&domain.Payment{}, "recipient = ?", "Bob Wilson").Error)

	_, total, err = repo.FetchPage(ctx, domain.FilterSet{})
	require.NoError(t, err)
	assert.Equal(t, int64(4), total)

	got, err := repo.FetchDistinctRecipients(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"100%_Literal", "Bob Wilson", "Jane Smith", "John Doe"}, got)
}
