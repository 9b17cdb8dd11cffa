// Package main seeds the database with a handful of sample camps so a fresh
// install has something to show. It is safe to run repeatedly: seeding is
// skipped when any camps already exist.
package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib" // registers "pgx" driver for database/sql
	"github.com/pressly/goose/v3"

	"github.com/bhandara-web/backend/internal/cache"
	"github.com/bhandara-web/backend/internal/config"
	"github.com/bhandara-web/backend/internal/domain"
	"github.com/bhandara-web/backend/internal/repo"
	"github.com/bhandara-web/backend/internal/service"
	"github.com/bhandara-web/backend/migrations"
)

// sampleCamps are well-known free-food spots around Delhi. Dates and times
// are filled in relative to "now" at seed time.
var sampleCamps = []domain.Camp{
	{
		Title:         "Gurudwara Bangla Sahib Langar",
		Description:   "Daily free langar serving dal, roti, rice and kheer. Open for everyone.",
		Address:       "Ashoka Road, Connaught Place, New Delhi",
		Latitude:      28.6264,
		Longitude:     77.2090,
		OrganizerName: "Gurudwara Bangla Sahib",
		Source:        domain.SourceVerified,
		IsRecurring:   true,
	},
	{
		Title:          "Shiv Bhandara - Karol Bagh",
		Description:    "Free bhandara with poori, sabzi, halwa and chai.",
		Address:        "Hanuman Mandir, Karol Bagh, New Delhi",
		Latitude:       28.6519,
		Longitude:      77.1903,
		OrganizerName:  "Ram Sewa Samiti",
		OrganizerPhone: "+91-9876543210",
		Source:         domain.SourceUser,
	},
	{
		Title:         "Akshaya Patra Food Distribution",
		Description:   "Free nutritious meals distributed to all. Part of mid-day meal programme.",
		Address:       "Sector 29, Noida, Uttar Pradesh",
		Latitude:      28.5790,
		Longitude:     77.3490,
		OrganizerName: "Akshaya Patra Foundation",
		Source:        domain.SourceCron,
		IsRecurring:   true,
	},
	{
		Title:         "Sai Baba Bhandara",
		Description:   "Weekly free food distribution every Thursday. Rice, dal, sabzi and sweet.",
		Address:       "Sai Baba Mandir, Lodhi Road, New Delhi",
		Latitude:      28.5917,
		Longitude:     77.2272,
		OrganizerName: "Sai Sewa Trust",
		Source:        domain.SourceVerified,
	},
	{
		Title:         "ISKCON Free Prasadam",
		Description:   "Free vegetarian prasadam daily. Delicious sattvic food.",
		Address:       "ISKCON Temple, East of Kailash, New Delhi",
		Latitude:      28.5506,
		Longitude:     77.2519,
		OrganizerName: "ISKCON Delhi",
		Source:        domain.SourceCron,
		IsRecurring:   true,
	},
	{
		Title:         "Jama Masjid Area Community Kitchen",
		Description:   "Free meals for the community. Open to everyone.",
		Address:       "Jama Masjid, Old Delhi",
		Latitude:      28.6507,
		Longitude:     77.2334,
		OrganizerName: "Community Volunteers",
		Source:        domain.SourceUser,
	},
}

func main() {
	if err := run(); err != nil {
		slog.Error("seed failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if err := runMigrations(cfg.DatabaseURL); err != nil {
		return fmt.Errorf("migrations: %w", err)
	}

	ctx := context.Background()

	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer pool.Close()

	campRepo := repo.NewCampRepo(pool)
	campService := service.NewCampService(campRepo, cache.Noop{})

	existing, err := campRepo.ListActive(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		slog.Info("database already has camps, skipping seed", "count", len(existing))
		return nil
	}

	now := time.Now().UTC()
	for i, camp := range sampleCamps {
		// Spread one-off camps over the next few days; recurring camps
		// get today's date from the service. Time windows rotate through
		// the day so seeded data exercises every lifecycle state.
		if !camp.IsRecurring {
			camp.Date = now.AddDate(0, 0, i%5).Format("2006-01-02")
		}
		camp.StartTime = fmt.Sprintf("%02d:00", 8+(i%4)*3)
		camp.EndTime = fmt.Sprintf("%02d:00", 11+(i%4)*3)

		if _, err := campService.Create(ctx, camp); err != nil {
			return fmt.Errorf("seed %q: %w", camp.Title, err)
		}
	}

	slog.Info("seeded sample camps", "count", len(sampleCamps))
	return nil
}

// runMigrations applies all pending goose migrations from the embedded FS.
func runMigrations(databaseURL string) error {
	db, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return err
	}
	defer db.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		return err
	}

	_, err = provider.Up(context.Background())
	return err
}
