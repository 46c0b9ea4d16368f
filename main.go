package main

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/S-okubomy/account-book/internal/assistant"
	v1 "github.com/S-okubomy/account-book/internal/controllers/v1"
	"github.com/S-okubomy/account-book/internal/router"
	"github.com/S-okubomy/account-book/internal/storage"
	"github.com/S-okubomy/account-book/internal/store"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// Local configuration, ignored when the file does not exist
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

	// Create data directory
	dataDir := filepath.Join(".", "data")
	err := os.MkdirAll(dataDir, os.ModePerm)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	dsn, ok := os.LookupEnv("DB_DSN")
	if !ok {
		dsn = filepath.Join(dataDir, "account-book.db")
	}

	// Connect to the database
	db, err := storage.Connect(dsn)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	// Load the record collections
	records := store.Open(db)

	// Set up the Gemini client, disabled when no API key is set
	ai, err := assistant.New(context.Background())
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	v1.Configure(records, ai)

	r, teardown, err := router.Config(db)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}
	defer teardown()

	if err := r.Run(); err != nil {
		log.Fatal().Msg(err.Error())
	}
}
