package migrate

import (
	"fmt"

	"github.com/spf13/cobra"

	"chamados/internal/infrastructure/config"
	"chamados/internal/infrastructure/database"
	"chamados/internal/infrastructure/migration"
	"chamados/internal/infrastructure/persistence/seeds"
	"chamados/internal/shared/logger"
)

var (
	env  string
	seed bool
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
		Long:  `Bring the database schema up to date, optionally seeding demo accounts.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().BoolVar(&seed, "seed", false, "Seed demo user, technician and admin accounts after migrating")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	log := logger.NewLogger()

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	log.Infow("running migrations", "environment", env)

	if err := database.Get().AutoMigrate(migration.AutoMigrateModels()...); err != nil {
		log.Errorw("migration failed", "error", err)
		return fmt.Errorf("migration failed: %w", err)
	}

	log.Infow("migrations completed successfully")

	if seed {
		log.Infow("seeding demo accounts")
		if err := seeds.SeedUsers(database.Get(), cfg.Auth.Password.BcryptCost); err != nil {
			log.Errorw("seeding failed", "error", err)
			return fmt.Errorf("seeding failed: %w", err)
		}
		log.Infow("demo accounts seeded")
	}

	return nil
}
