package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"time"

	"shelldon/internal/config"
	"shelldon/internal/fixture"
	"shelldon/internal/logger"
	"shelldon/internal/models"
	"shelldon/internal/repository/db"

	"github.com/spf13/cobra"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "shelldon",
	Short: "Live stream status site for Shelldon the crayfish",
	Long: `Serves the Shelldon live site: stream embed, habitat dashboard, temperature
and water quality history with charts, donation roadmap and care log.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./configs/config.yml)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// app holds what every subcommand needs after startup.
type app struct {
	cfg  *config.Config
	log  *logger.Logger
	db   *sql.DB
	snap models.Snapshot
}

// bootstrap loads config, the logger, the database and the fixture.
// The fixture is read exactly once per process.
func bootstrap(ctx context.Context) (*app, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	log := logger.Get(cfg.Log.Level, cfg.Log.Format)

	conn, err := db.InitDB(cfg.DB.Path)
	if err != nil {
		return nil, fmt.Errorf("opening database %s: %w", cfg.DB.Path, err)
	}

	snap := fixture.Load(ctx, cfg.Fixture, log, time.Now())
	return &app{cfg: cfg, log: log, db: conn, snap: snap}, nil
}

func (a *app) close() {
	if err := a.db.Close(); err != nil {
		a.log.Errorw("db_close_failed", "err", err)
	}
}
