package config

import "strconv"

type ServerConfig struct {
	Port int
}

func NewServerConfig() *ServerConfig {
	port, err := strconv.Atoi(getEnv("SERVER_PORT", "4000"))
	if err != nil {
		port = 4000
	}
	return &ServerConfig{Port: port}
}
