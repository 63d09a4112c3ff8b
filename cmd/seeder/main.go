package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"

	"github.com/tair/payments-api/internal/config"
	"github.com/tair/payments-api/internal/payment/domain"
	"github.com/tair/payments-api/kafka"
	"github.com/tair/payments-api/pkg/database"
	"github.com/tair/payments-api/pkg/logger"
)

type seedPayment struct {
	amount    string
	currency  string
	scheduled string
	recipient string
	status    string
}

// fixtures are always loaded first
var fixtures = []seedPayment{
	{"2500.00", "USD", "2025-09-15", "John Doe", domain.StatusPending},
	{"5000.00", "USD", "2025-07-26", "John Doe", domain.StatusPending},
	{"7500.00", "USD", "2025-07-25", "Jane Smith", domain.StatusPending},
	{"1000.00", "USD", "2024-12-01", "Bob Wilson", domain.StatusPending},
}

var (
	recipients = []string{"Acme Corp", "Globex", "Initech", "Umbrella Ltd", "Stark Industries", "Wayne Enterprises", "Alice Brown", "Carlos Díaz"}
	currencies = []string{"USD", "EUR", "GBP"}
	statuses   = []string{domain.StatusPending, domain.StatusPending, domain.StatusCompleted, domain.StatusFailed}
)

func main() {
	extra := flag.Int("rows", 500, "generated payments added after the fixtures")
	publish := flag.Bool("publish", false, "send payments to Kafka as payment.scheduled events instead of copying them")
	force := flag.Bool("force", false, "seed even if the payments table is not empty")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		logger.Init("payments-seeder", true)
		logger.Logger.Fatal().Err(err).Msg("Invalid configuration")
	}
	logger.Init("payments-seeder", cfg.IsDevelopment())
	logger.SetLevel(cfg.LogLevel)

	rows := append(append([]seedPayment{}, fixtures...), generate(*extra, rand.New(rand.NewSource(42)))...)
	ctx := context.Background()

	if *publish {
		if err := publishRows(ctx, cfg.Kafka.Brokers, rows); err != nil {
			logger.Logger.Fatal().Err(err).Msg("Publishing failed")
		}
		return
	}

	if err := database.RunMigrations(cfg.Database); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to run migrations")
	}

	conn, err := pgx.Connect(ctx, cfg.Database.URL())
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Unable to connect to database")
	}
	defer conn.Close(ctx)

	var count int64
	if err := conn.QueryRow(ctx, "SELECT COUNT(*) FROM payments").Scan(&count); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to count payments")
	}
	if count > 0 && !*force {
		logger.Logger.Info().Int64("existing", count).Msg("Payments already seeded, skipping")
		return
	}

	copied, err := copyRows(ctx, conn, rows)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Bulk insert failed")
	}
	logger.Logger.Info().Int64("rows", copied).Msg("Payments seeded")
}

func generate(n int, rng *rand.Rand) []seedPayment {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	out := make([]seedPayment, 0, n)
	for i := 0; i < n; i++ {
		cents := rng.Int63n(10_000_000) + 100
		out = append(out, seedPayment{
			amount:    decimal.New(cents, -2).StringFixed(2),
			currency:  currencies[rng.Intn(len(currencies))],
			scheduled: start.AddDate(0, 0, rng.Intn(730)).Format(domain.DateLayout),
			recipient: recipients[rng.Intn(len(recipients))],
			status:    statuses[rng.Intn(len(statuses))],
		})
	}
	return out
}

func copyRows(ctx context.Context, conn *pgx.Conn, rows []seedPayment) (int64, error) {
	values := make([][]any, 0, len(rows))
	for _, p := range rows {
		var amount pgtype.Numeric
		if err := amount.Scan(p.amount); err != nil {
			return 0, fmt.Errorf("amount %q: %w", p.amount, err)
		}
		scheduled, err := domain.ParseDate(p.scheduled)
		if err != nil {
			return 0, err
		}
		values = append(values, []any{amount, p.currency, scheduled, p.recipient, p.status})
	}

	return conn.CopyFrom(
		ctx,
		pgx.Identifier{"payments"},
		[]string{"amount", "currency", "scheduled_date", "recipient", "status"},
		pgx.CopyFromRows(values),
	)
}

func publishRows(ctx context.Context, brokers []string, rows []seedPayment) error {
	if len(brokers) == 0 {
		return fmt.Errorf("KAFKA_BROKERS is required with -publish")
	}
	publisher, err := kafka.NewPublisher(brokers)
	if err != nil {
		return err
	}
	defer publisher.Close()

	for _, p := range rows {
		err := publisher.PublishPaymentScheduled(ctx, kafka.PaymentScheduledEvent{
			Recipient:     p.recipient,
			Amount:        p.amount,
			Currency:      p.currency,
			ScheduledDate: p.scheduled,
			Status:        p.status,
		})
		if err != nil {
			return err
		}
	}
	logger.Logger.Info().Int("events", len(rows)).Msg("Payments published")
	return nil
}
