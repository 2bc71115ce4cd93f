package main

import (
	"net/http"
	"os"
	"strings"
	"time"

	charmlog "github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/maint-agent/backend/internal/answer"
	"github.com/maint-agent/backend/internal/api"
	"github.com/maint-agent/backend/internal/config"
	"github.com/maint-agent/backend/internal/docstore"
	"github.com/maint-agent/backend/internal/query"
)

// Version info (set during build)
var (
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	// Optional .env with the completion-service credential
	_ = godotenv.Load()

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config.yaml"
	}

	logger := charmlog.NewWithOptions(os.Stderr, charmlog.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
	})

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error("failed to load configuration", "path", configPath, "err", err)
		os.Exit(1)
	}
	if level, err := charmlog.ParseLevel(cfg.Log.Level); err == nil {
		logger.SetLevel(level)
	}

	store := docstore.New()

	aiClient := answer.NewClient(answer.Config{
		BaseURL:     cfg.AI.BaseURL,
		APIKey:      cfg.APIKey(),
		Model:       cfg.AI.Model,
		MaxTokens:   cfg.AI.MaxTokens,
		Temperature: cfg.AI.Temperature,
		Timeout:     time.Duration(cfg.AI.TimeoutSeconds) * time.Second,
		Referer:     cfg.AI.Referer,
		Title:       cfg.AI.Title,
	}, logger)

	querySvc := query.NewService(store, aiClient, cfg.Search.MaxContextDocs, cfg.Search.MaxDisplayDocs, logger)

	h := api.NewHandler(store, querySvc, aiClient, Version)

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = api.ErrorHandler

	if cfg.Log.EnableRequestLogging {
		e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
			Skipper: func(c echo.Context) bool {
				return c.Request().URL.Path == "/api/health"
			},
		}))
	}

	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 1024 * 4,
	}))

	e.Use(middleware.BodyLimit(cfg.Server.BodyLimit))

	if cfg.Server.EnableCORS {
		origins := strings.Split(cfg.Server.AllowOrigins, ",")
		for i := range origins {
			origins[i] = strings.TrimSpace(origins[i])
		}
		if len(origins) == 0 || (len(origins) == 1 && origins[0] == "") {
			origins = []string{"*"}
		}
		e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
			AllowOrigins: origins,
			AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
			AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
		}))
	}

	api.RegisterRoutes(e, h)

	s := &http.Server{
		Addr:         cfg.GetServerAddr(),
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	logger.Info("starting maintenance query agent",
		"version", Version,
		"build_time", BuildTime,
		"listen", cfg.GetServerAddr(),
		"ai_configured", aiClient.Configured(),
		"model", cfg.AI.Model,
	)
	if !aiClient.Configured() {
		logger.Warn("no completion-service credential found; queries will use degraded-mode answers",
			"env", cfg.AI.APIKeyEnv)
	}

	e.Logger.Fatal(e.StartServer(s))
}
