package common

import (
	"flag"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Params struct {
	httpPort int
	logLevel string
	dataDir  string
}

func NewEmptyParams() *Params {
	return &Params{}
}

func ParseParams() *Params {
	// Defaults can come from a .env file. Missing file is fine.
	_ = godotenv.Load()

	httpPort := flag.Int("httpPort", envInt("QUIBBLE_PORT", 8713), "HTTP port for the panel relay server")
	logLevel := flag.String("logLevel", envString("QUIBBLE_LOG_LEVEL", "INFO"), "Log level: ERROR, WARN, INFO, DEBUG, TRACE")
	dataDir := flag.String("dataDir", envString("QUIBBLE_DATA_DIR", ""), "Directory for the database. Defaults to the user's home directory.")

	flag.Parse()

	return &Params{
		httpPort: *httpPort,
		logLevel: *logLevel,
		dataDir:  *dataDir,
	}
}

func (s *Params) HttpPort() int {
	return s.httpPort
}

func (s *Params) LogLevel() string {
	return s.logLevel
}

func (s *Params) DataDir() string {
	return s.dataDir
}

func envString(key string, fallback string) string {
	if value, found := os.LookupEnv(key); found {
		return value
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if value, found := os.LookupEnv(key); found {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return fallback
}
