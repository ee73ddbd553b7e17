// Package handler exposes the optimizer core over HTTP: a connection probe
// and the optimize-timetable command.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"timetable-optimizer/internal/dto"
	"timetable-optimizer/internal/ingest"
	"timetable-optimizer/internal/optimizer"
	"timetable-optimizer/pkg/apperrors"
	"timetable-optimizer/pkg/config"
)

// OptimizerHandler wires the HTTP surface to internal/optimizer.
type OptimizerHandler struct {
	logger *zap.Logger
	cfg    *config.Config
}

// NewOptimizerHandler builds a handler configured from cfg.
func NewOptimizerHandler(logger *zap.Logger, cfg *config.Config) *OptimizerHandler {
	return &OptimizerHandler{logger: logger, cfg: cfg}
}

// TestConnection answers the connection probe.
func (h *OptimizerHandler) TestConnection(c *gin.Context) {
	c.JSON(http.StatusOK, dto.TestConnectionResponse{
		Status:  "success",
		Message: "Connection established",
	})
}

// OptimizeTimetable hydrates the payload, runs the optimizer, and returns
// its result or a DataError.
func (h *OptimizerHandler) OptimizeTimetable(c *gin.Context) {
	var req dto.OptimizeTimetableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Status: "error", Message: err.Error()})
		return
	}

	data, err := ingest.Hydrate(req.TimetableDataWire)
	if err != nil {
		h.respondDataError(c, err)
		return
	}

	opts := []optimizer.Option{}
	if req.Seed != nil {
		opts = append(opts, optimizer.WithSeed(*req.Seed))
	}

	evolveParams := optimizer.EvolveParams{
		Runs:            req.EvolveRuns,
		StagnationLimit: req.EvolveStagnationLimit,
	}
	if h.cfg != nil {
		if evolveParams.Runs == 0 {
			evolveParams.Runs = h.cfg.Optimizer.EvolveRuns
		}
		if evolveParams.StagnationLimit == 0 {
			evolveParams.StagnationLimit = h.cfg.Optimizer.EvolveStagnationLimit
		}
	}
	opts = append(opts, optimizer.WithEvolveParams(evolveParams))

	annealParams := optimizer.AnnealParams{Iterations: req.AnnealIterations}
	if h.cfg != nil && annealParams.Iterations == 0 {
		annealParams.Iterations = h.cfg.Optimizer.AnnealIterations
	}
	opts = append(opts, optimizer.WithAnnealParams(annealParams))

	result, _, err := optimizer.Optimize(data, opts...)
	if err != nil {
		h.respondDataError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OptimizeTimetableResponse{
		Status:  "success",
		Message: "Timetable optimized successfully",
		Data:    result,
	})
}

func (h *OptimizerHandler) respondDataError(c *gin.Context, err error) {
	var dataErr *apperrors.DataError
	if errors.As(err, &dataErr) {
		c.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{Status: "error", Message: dataErr.Error()})
		return
	}
	h.logger.Error("optimize_timetable failed", zap.Error(err))
	c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Status: "error", Message: err.Error()})
}
