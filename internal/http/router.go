package httpapi

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/sprintsim/backend/internal/ai"
	"github.com/sprintsim/backend/internal/config"
	"github.com/sprintsim/backend/internal/http/handlers"
	"github.com/sprintsim/backend/internal/http/middleware"
	"github.com/sprintsim/backend/internal/skills"
	"github.com/sprintsim/backend/internal/store"

	_ "github.com/sprintsim/backend/docs"
)

func Router(cfg config.Config, st *store.Store, generator ai.Generator, multipliers skills.MultiplierTable, logger zerolog.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))

	corsCfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Admin-Key", "X-Request-Id"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if cfg.CORSAllowed == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = []string{cfg.CORSAllowed}
	}
	r.Use(cors.New(corsCfg))

	h := &handlers.Handler{
		Store:       st,
		Generator:   generator,
		Multipliers: multipliers,
		Validator:   validator.New(),
		Logger:      logger,
		AdminKey:    cfg.AdminKey,
	}

	r.GET("/healthz", h.Healthz)

	api := r.Group("/api")
	{
		api.GET("/team", h.TeamList)
		api.GET("/team/capacity", h.TeamCapacity)
		api.GET("/skills/levels", h.SkillLevel)
		api.GET("/epics/current", h.EpicCurrent)
		api.GET("/sprints", h.SprintsList)
		api.GET("/simulations/:id", h.SimulationGet)
		api.GET("/simulations/:id/days/:n", h.SimulationDay)
		api.GET("/simulations/:id/metrics", h.SimulationMetrics)
	}

	admin := api.Group("")
	admin.Use(middleware.AdminKey(cfg.AdminKey))
	{
		admin.POST("/team/members", h.MemberCreate)
		admin.PUT("/team/members/:id", h.MemberUpdate)
		admin.DELETE("/team/members/:id", h.MemberDelete)
		admin.POST("/epics", h.EpicCreate)
		admin.POST("/sprints/plan", h.SprintsPlan)
		admin.POST("/simulations", h.SimulationCreate)
		admin.PUT("/simulations/:id/disruptions", h.SimulationDisruptions)
		admin.POST("/simulations/:id/advance", h.SimulationAdvance)
	}

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}
