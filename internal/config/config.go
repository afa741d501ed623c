package config

import (
	"os"

	zlog "github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// InitDB opens the Postgres connection described by the environment. DB_DSN
// wins when set; otherwise the DSN is assembled from the usual discrete
// variables with local-development defaults.
func InitDB() *gorm.DB {
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		dsn = "host=" + envOr("DB_HOST", "localhost") +
			" port=" + envOr("DB_PORT", "5432") +
			" user=" + envOr("DB_USER", "postgres") +
			" password=" + envOr("DB_PASSWORD", "postgres") +
			" dbname=" + envOr("DB_NAME", "invoices") +
			" sslmode=" + envOr("DB_SSLMODE", "disable")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		zlog.Fatal().Err(err).Msg("failed to connect to database")
	}
	return db
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
