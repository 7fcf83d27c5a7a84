package config

import "os"

// Server captures HTTP server level configuration.
type Server struct {
	Addr     string
	LogLevel string
}

// FromEnv builds a Server config from environment variables so main stays lean.
func FromEnv() Server {
	addr := os.Getenv("IDCHECK_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	level := os.Getenv("IDCHECK_LOG_LEVEL")
	if level == "" {
		level = "info"
	}

	return Server{
		Addr:     addr,
		LogLevel: level,
	}
}
