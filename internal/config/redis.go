package config

import "strconv"

// RedisConfig enables the redis-backed submission gate when REDIS_ADDR is
// set; otherwise the in-process gate is used.
type RedisConfig struct {
	Enabled  bool
	Addr     string
	Password string
	DB       int
}

func NewRedisConfig() *RedisConfig {
	addr := getEnv("REDIS_ADDR", "")
	db, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		db = 0
	}
	return &RedisConfig{
		Enabled:  addr != "",
		Addr:     addr,
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       db,
	}
}
