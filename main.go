package main

import (
	"io"
	"os"

	"github.com/envelope-zero/allocator/internal/config"
	"github.com/envelope-zero/allocator/internal/models"
	"github.com/envelope-zero/allocator/internal/router"
	"github.com/envelope-zero/allocator/internal/seed"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	gin.SetMode(cfg.GinMode)

	output := io.Writer(os.Stdout)
	if cfg.HumanLogs() {
		output = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if gin.IsDebugging() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(output).With().Timestamp().Logger()

	// Create data directory
	err = os.MkdirAll(cfg.DataDir, os.ModePerm)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	err = models.Connect(cfg.DSN())
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	if cfg.SeedDemo {
		err = seed.Demo()
		if err != nil {
			log.Fatal().Msg(err.Error())
		}
	}

	r, teardown, err := router.Config(cfg)
	defer teardown()
	if err != nil {
		log.Fatal().Msg(err.Error())
	}
	router.AttachRoutes(r.Group("/"))

	if err := r.Run(cfg.Address()); err != nil {
		log.Fatal().Msg(err.Error())
	}
}
