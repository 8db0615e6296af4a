package config

import (
	"os"

	"github.com/inconshreveable/log15"
	"github.com/joho/godotenv"
)

// LoadEnv reads a .env file into the process environment. Hosted
// environments inject variables directly, so the file is skipped there.
func LoadEnv(log log15.Logger, files ...string) {
	if os.Getenv("RAILWAY_ENVIRONMENT") != "" {
		return
	}
	if err := godotenv.Load(files...); err != nil {
		log.Warn(".env file not loaded", "err", err)
	}
}
