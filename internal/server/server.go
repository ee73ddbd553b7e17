// Package server builds the gin engine exposing the optimizer over HTTP,
// shared by cmd/optimizer's "serve" subcommand and cmd/server's standalone
// binary so the route wiring lives in exactly one place.
package server

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"timetable-optimizer/internal/dto"
	"timetable-optimizer/internal/handler"
	"timetable-optimizer/internal/middleware"
	"timetable-optimizer/pkg/config"
)

// New builds the router: request-id tagging, panic recovery, then the two
// service endpoints plus a health probe.
func New(cfg *config.Config, logger *zap.Logger) *gin.Engine {
	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Logger(), middleware.RequestID(), middleware.Recover(logger))

	h := handler.NewOptimizerHandler(logger, cfg)
	router.POST("/test-connection", h.TestConnection)
	router.POST("/optimize-timetable", h.OptimizeTimetable)
	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, dto.TestConnectionResponse{Status: "ok", Message: "serving"})
	})
	return router
}

// Run builds the router and blocks serving it on addr, falling back to
// cfg.Port when addr is empty.
func Run(cfg *config.Config, logger *zap.Logger, addr string) error {
	router := New(cfg, logger)

	listenAddr := addr
	if listenAddr == "" {
		listenAddr = fmt.Sprintf(":%d", cfg.Port)
	}

	logger.Info("listening", zap.String("addr", listenAddr))
	return router.Run(listenAddr)
}
