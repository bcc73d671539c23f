package main

import (
	"io"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/pennyflow/backend/internal/models"
	"github.com/pennyflow/backend/internal/router"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// Values already set in the environment win over .env
	_ = godotenv.Load()

	// gin uses debug as the default mode, we use release for
	// security reasons
	ginMode, ok := os.LookupEnv("GIN_MODE")
	if !ok {
		gin.SetMode("release")
	} else {
		gin.SetMode(ginMode)
	}

	// Log format can be explicitly set.
	// If it is not set, it defaults to human readable for development
	// and JSON for release
	logFormat, ok := os.LookupEnv("LOG_FORMAT")
	output := io.Writer(os.Stdout)
	if (!ok && gin.IsDebugging()) || (ok && logFormat == "human") {
		output = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if gin.IsDebugging() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(output).With().Timestamp().Logger()

	dsn, ok := os.LookupEnv("DB_PATH")
	if !ok {
		// Create data directory for the default database location
		dataDir := filepath.Join(".", "data")
		if err := os.MkdirAll(dataDir, os.ModePerm); err != nil {
			log.Fatal().Msg(err.Error())
		}

		dsn = filepath.Join(dataDir, "pennyflow.db")
	}

	// Connect to the database and migrate the schema
	if err := models.Connect(dsn); err != nil {
		log.Fatal().Msg(err.Error())
	}

	// Seed the default category set on first startup
	if err := models.SeedCategories(models.DB); err != nil {
		log.Fatal().Msg(err.Error())
	}

	r, err := router.Router()
	if err != nil {
		log.Fatal().Msg(err.Error())
	}
	defer router.Teardown()

	router.AttachRoutes(&r.RouterGroup)

	if err := r.Run(); err != nil {
		log.Fatal().Msg(err.Error())
	}
}
