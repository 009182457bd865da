package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	configs "github.com/GVarya/MA-homework-service/config"
	"github.com/GVarya/MA-homework-service/pkg/db"
	"github.com/GVarya/MA-homework-service/pkg/logging"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "homework-service",
		Short:        "Homework lifecycle service",
		SilenceUsage: true,
	}
	root.PersistentFlags().String("config", "", "Path to the YAML config file (overrides CONFIG_PATH)")

	serve := serveCmd()
	root.AddCommand(serve, migrateCmd())

	// serve is the default when no subcommand is given
	root.RunE = serve.RunE

	return root
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API, the health server and the payment consumer",
		RunE:  runServe,
	}
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "migrate [up|down]",
		Short:     "Apply or roll back database migrations",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{string(db.Up), string(db.Down)},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := bootstrap(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			direction := db.Direction(args[0])
			if err := db.Migrate(cmd.Context(), dbConfig(cfg), direction); err != nil {
				log.Error(cmd.Context(), "migration failed", zap.String("direction", args[0]), zap.Error(err))
				return err
			}
			log.Info(cmd.Context(), "migrations applied", zap.String("direction", args[0]))
			return nil
		},
	}
}

// bootstrap loads the configuration and builds the process logger.
func bootstrap(cmd *cobra.Command) (*configs.Config, *logging.Logger, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, err
	}

	zapLogger, err := logging.NewZap(cfg.Log.Level)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create logger: %w", err)
	}
	return cfg, logging.New(zapLogger), nil
}

func loadConfig(cmd *cobra.Command) (*configs.Config, error) {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}
	if path != "" {
		if err := os.Setenv("CONFIG_PATH", path); err != nil {
			return nil, err
		}
	}

	cfg, err := configs.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

func dbConfig(cfg *configs.Config) db.Config {
	return db.Config{
		Host:           cfg.DB.Host,
		Port:           cfg.DB.Port,
		User:           cfg.DB.User,
		Password:       cfg.DB.Password,
		DBName:         cfg.DB.DBName,
		SSLMode:        cfg.DB.SSLMode,
		MaxConns:       cfg.DB.MaxConns,
		MinConns:       cfg.DB.MinConns,
		MigrationsPath: cfg.DB.MigrationsPath,
	}
}
