package main

import (
	"errors"
	"fmt"

	"shelldon/internal/repository"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Import fixture history into the database",
	Long: `Copies the fixture's temperature and water quality history into SQLite so the
site can run with history.source=sqlite. Re-running is safe: readings with an
existing timestamp are skipped.`,
	RunE: runSeed,
}

func init() {
	rootCmd.AddCommand(seedCmd)
}

func runSeed(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	a, err := bootstrap(ctx)
	if err != nil {
		return err
	}
	defer a.close()

	if a.snap.Fallback {
		return fmt.Errorf("fixture %q could not be loaded; refusing to seed defaults", a.snap.Source)
	}

	repos := repository.NewRepository(a.db)
	var temps, water, skipped int
	for _, p := range a.snap.Temperature.History {
		_, err := repos.Temperature.Append(ctx, p)
		switch {
		case errors.Is(err, repository.ErrDuplicateReading):
			skipped++
		case err != nil:
			return fmt.Errorf("seeding temperature: %w", err)
		default:
			temps++
		}
	}
	for _, p := range a.snap.WaterQuality.History {
		_, err := repos.Water.Append(ctx, p)
		switch {
		case errors.Is(err, repository.ErrDuplicateReading):
			skipped++
		case err != nil:
			return fmt.Errorf("seeding water quality: %w", err)
		default:
			water++
		}
	}

	a.log.Infow("seed_complete", "source", a.snap.Source,
		"temperature_points", temps,
		"water_points", water,
		"skipped_duplicates", skipped)
	fmt.Printf("Seeded %s temperature and %s water readings into %s (%s already present)\n",
		humanize.Comma(int64(temps)),
		humanize.Comma(int64(water)),
		a.cfg.DB.Path,
		humanize.Comma(int64(skipped)))
	return nil
}
