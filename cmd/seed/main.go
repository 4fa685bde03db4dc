// Command seed writes a small demo history into the data file so a fresh
// install has a populated leaderboard to look at.
package main

import (
	"context"
	"os"
	"time"

	"github.com/highOnBits/time-guess/internal/adapters/repository"
	"github.com/highOnBits/time-guess/internal/config"
	"github.com/highOnBits/time-guess/internal/domain/game"
	"github.com/highOnBits/time-guess/internal/domain/timeofday"
	"github.com/highOnBits/time-guess/pkg/logger"
)

const dateLayout = "2006-01-02"

// demoDay seeds one revealed round. Guesses map onto the configured roster
// by position.
type demoDay struct {
	daysAgo int
	guesses [game.RosterSize]string
	actual  string
}

// Two finished rounds: the first roster member nails day one, the second
// roster member takes day two.
var demoDays = []demoDay{
	{daysAgo: 3, guesses: [game.RosterSize]string{"16:10", "16:20", "16:30"}, actual: "16:10"},
	{daysAgo: 1, guesses: [game.RosterSize]string{"15:00", "14:30", "13:00"}, actual: "14:23"},
}

func main() {
	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		os.Exit(1)
	}
	log := logger.Get()

	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		log.Error(ctx, "failed to load config", logger.Error(err))
		os.Exit(1)
	}

	roster, err := game.NewRoster(cfg.Participants...)
	if err != nil {
		log.Error(ctx, "invalid participants", logger.Error(err))
		os.Exit(1)
	}

	store := repository.NewFileStore(cfg.DataFile)
	doc, err := store.Load(ctx)
	if err != nil {
		log.Error(ctx, "failed to load data file", logger.Error(err))
		os.Exit(1)
	}

	now := time.Now()
	for _, day := range demoDays {
		date := now.AddDate(0, 0, -day.daysAgo).Format(dateLayout)

		// Re-seeding replaces the demo day rather than colliding with it.
		game.Reset(doc, date)

		for i, name := range roster {
			guess, err := timeofday.Parse(day.guesses[i])
			if err != nil {
				log.Error(ctx, "bad demo guess", logger.String("guess", day.guesses[i]), logger.Error(err))
				os.Exit(1)
			}
			if err := game.SubmitGuess(doc, roster, date, name, guess); err != nil {
				log.Error(ctx, "failed to seed guess", logger.String("date", date), logger.Error(err))
				os.Exit(1)
			}
		}

		actual, err := timeofday.Parse(day.actual)
		if err != nil {
			log.Error(ctx, "bad demo actual time", logger.String("actual", day.actual), logger.Error(err))
			os.Exit(1)
		}
		if err := game.Reveal(doc, roster, date, actual); err != nil {
			log.Error(ctx, "failed to seed reveal", logger.String("date", date), logger.Error(err))
			os.Exit(1)
		}

		log.Info(ctx, "seeded day",
			logger.String("date", date),
			logger.String("actual", day.actual),
		)
	}

	if err := store.Save(ctx, doc); err != nil {
		log.Error(ctx, "failed to save data file", logger.Error(err))
		os.Exit(1)
	}

	log.Info(ctx, "demo data written",
		logger.String("file", cfg.DataFile),
		logger.Int("days", len(demoDays)),
	)
}
