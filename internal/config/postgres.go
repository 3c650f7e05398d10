package config

// PostgresConfig enables the postgres-backed problem repository when
// DATABASE_URL is set; otherwise the seeded in-memory pool is used.
type PostgresConfig struct {
	Enabled bool
	URL     string
}

func NewPostgresConfig() *PostgresConfig {
	url := getEnv("DATABASE_URL", "")
	return &PostgresConfig{
		Enabled: url != "",
		URL:     url,
	}
}
