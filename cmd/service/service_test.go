package main

import (
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	configs "github.com/GVarya/MA-homework-service/config"
	"github.com/GVarya/MA-homework-service/internal/service"
)

func TestRootCommand(t *testing.T) {
	root := rootCmd()

	names := make([]string, 0, len(root.Commands()))
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	assert.ElementsMatch(t, []string{"serve", "migrate"}, names)
	assert.NotNil(t, root.RunE, "serve should run without a subcommand")
	assert.NotNil(t, root.PersistentFlags().Lookup("config"))
}

func TestMigrateRejectsUnknownDirection(t *testing.T) {
	for _, args := range [][]string{{"migrate", "sideways"}, {"migrate"}, {"migrate", "up", "down"}} {
		root := rootCmd()
		root.SetArgs(args)
		root.SetOut(io.Discard)
		root.SetErr(io.Discard)

		assert.Error(t, root.Execute(), "args %v", args)
	}
}

func TestLoadConfigFromFlag(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
db: {host: pg, user: svc, dbname: homework}
kafka: {brokers: ["kafka:9092"], events_topic: "homework-events"}
`), 0o600))

	cmd := serveCmd()
	cmd.Flags().String("config", "", "")
	require.NoError(t, cmd.Flags().Set("config", path))

	cfg, err := loadConfig(cmd)
	require.NoError(t, err)
	assert.Equal(t, "pg", cfg.DB.Host)
	assert.Equal(t, "homework-events", cfg.Kafka.EventsTopic)
}

func TestDBConfig(t *testing.T) {
	cfg := &configs.Config{DB: configs.DBConfig{
		Host: "pg", Port: 6543, User: "svc", Password: "secret", DBName: "homework",
		SSLMode: "require", MaxConns: 8, MinConns: 2, MigrationsPath: "/migrations",
	}}

	got := dbConfig(cfg)
	assert.Equal(t, "pg", got.Host)
	assert.Equal(t, 6543, got.Port)
	assert.Equal(t, "secret", got.Password)
	assert.Equal(t, 8, got.MaxConns)
	assert.Equal(t, "/migrations", got.MigrationsPath)
	assert.Contains(t, got.DSN(), "sslmode=require")
}

func TestIntakeConfig(t *testing.T) {
	cfg := &configs.Config{
		Kafka: configs.KafkaConfig{WorkerPoolSize: 7},
		Redis: configs.RedisConfig{DedupeTTL: time.Hour},
	}

	got := intakeConfig(cfg)
	assert.Equal(t, 7, got.WorkerPoolSize)
	assert.Equal(t, time.Hour, got.DedupeTTL)
}

func TestNewPublisher(t *testing.T) {
	t.Run("NoEventsTopic", func(t *testing.T) {
		pub, closeFn, err := newPublisher(configs.KafkaConfig{Brokers: []string{"kafka:9092"}})
		require.NoError(t, err)
		assert.Equal(t, service.NopPublisher(), pub)
		assert.NoError(t, closeFn())
	})

	t.Run("EventsTopic", func(t *testing.T) {
		pub, closeFn, err := newPublisher(configs.KafkaConfig{
			Brokers:     []string{"kafka:9092"},
			EventsTopic: "homework-events",
		})
		require.NoError(t, err)
		assert.NotEqual(t, service.NopPublisher(), pub)
		assert.NoError(t, closeFn())
	})

	t.Run("NoBrokers", func(t *testing.T) {
		_, _, err := newPublisher(configs.KafkaConfig{EventsTopic: "homework-events"})
		assert.Error(t, err)
	})
}
