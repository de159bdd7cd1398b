package config

import (
	"os"
)

type Config struct {
	Addr      string
	DBUrl     string
	JWTSecret string
}

func LoadConfig() *Config {
	addr := os.Getenv("SERVER_ADDR")
	if addr == "" {
		addr = ":8080"
	}
	return &Config{
		Addr:      addr,
		DBUrl:     os.Getenv("DATABASE_URL"),
		JWTSecret: os.Getenv("JWT_SECRET"),
	}
}
