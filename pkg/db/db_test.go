package db_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GVarya/MA-homework-service/pkg/db"
)

func unreachable() db.Config {
	return db.Config{
		Host:     "127.0.0.1",
		Port:     1,
		User:     "user",
		Password: "pass",
		DBName:   "db",
		SSLMode:  "disable",
	}
}

func TestPostgres(t *testing.T) {
	t.Run("dsn", func(t *testing.T) {
		cfg := db.Config{
			Host:     "localhost",
			Port:     5432,
			User:     "testuser",
			Password: "testpass",
			DBName:   "testdb",
			SSLMode:  "disable",
		}

		assert.Equal(t,
			"host=localhost port=5432 user=testuser password=testpass dbname=testdb sslmode=disable",
			cfg.DSN())
	})

	t.Run("pool connection error", func(t *testing.T) {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()

		_, err := db.NewPool(ctx, unreachable())
		require.Error(t, err)
	})

	t.Run("migration connection error", func(t *testing.T) {
		err := db.Migrate(context.Background(), unreachable(), db.Up)
		require.Error(t, err)
	})

	t.Run("unknown direction", func(t *testing.T) {
		err := db.Migrate(context.Background(), unreachable(), db.Direction("sideways"))
		require.ErrorContains(t, err, "unknown migration direction")
	})
}
