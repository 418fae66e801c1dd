package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/sprintsim/backend/internal/ai"
	"github.com/sprintsim/backend/internal/config"
	httpapi "github.com/sprintsim/backend/internal/http"
	"github.com/sprintsim/backend/internal/skills"
	"github.com/sprintsim/backend/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	zerolog.TimeFieldFormat = time.RFC3339
	level, _ := zerolog.ParseLevel(cfg.LogLevel)
	logger := log.Level(level).With().Str("service", "sprintsim-backend").Logger()

	multipliers, err := skills.LoadMultipliersFile(cfg.SkillMultipliersCSV)
	if err != nil {
		logger.Fatal().Err(err).Str("path", cfg.SkillMultipliersCSV).Msg("failed to load skill multipliers")
	}

	var generator ai.Generator
	if cfg.StoryAIURL == "" {
		generator = ai.RuleBasedGenerator{}
		logger.Info().Msg("no story AI configured, using rule-based generator")
	} else {
		generator = ai.OpenAIGenerator{
			BaseURL: cfg.StoryAIURL,
			Model:   cfg.StoryAIModel,
			APIKey:  cfg.StoryAIKey,
		}
	}

	st := store.New()
	router := httpapi.Router(cfg, st, generator, multipliers, logger)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		logger.Info().Str("port", cfg.Port).Msg("server started")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctxShutdown)
	logger.Info().Msg("server stopped")
}
