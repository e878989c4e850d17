// Package robot exposes the cleaning robot over HTTP.
package robot

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/beka-birhanu/cleaner-api/path"
	"github.com/beka-birhanu/cleaner-api/service"
	"github.com/beka-birhanu/cleaner-api/service/i"
	"github.com/gin-gonic/gin"
)

const timestampLayout = time.RFC3339Nano

// RobotServer handles HTTP requests for path executions.
type RobotServer struct {
	cleaner     i.Cleaner
	maxCommands int
}

// NewRobotServer creates a RobotServer. A non-positive maxCommands disables the
// per-request command limit.
func NewRobotServer(c i.Cleaner, maxCommands int) (*RobotServer, error) {
	if err := registerValidations(); err != nil {
		return nil, err
	}
	return &RobotServer{
		cleaner:     c,
		maxCommands: maxCommands,
	}, nil
}

// RegisterPublic registers public routes.
func (c *RobotServer) RegisterPublic(route *gin.RouterGroup) {}

// RegisterProtected registers privileged routes.
func (c *RobotServer) RegisterProtected(route *gin.RouterGroup) {
	executions := route.Group("/enter-path")
	{
		executions.POST("", c.enterPath)
		executions.GET("/recent", c.recent)
		executions.GET("/:id", c.report)
	}
}

// enterPath runs the submitted commands and responds with the stored report.
func (c *RobotServer) enterPath(ctx *gin.Context) {
	var request PathRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if c.maxCommands > 0 && len(request.Commands) > c.maxCommands {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("at most %d commands are allowed", c.maxCommands)})
		return
	}

	report, err := c.cleaner.Execute(ctx.Request.Context(), *request.Start, request.Moves())
	if err != nil {
		ctx.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusCreated, toResponse(report))
}

// report responds with a stored report.
func (c *RobotServer) report(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "execution id must be an integer"})
		return
	}

	report, err := c.cleaner.Report(ctx.Request.Context(), id)
	if err != nil {
		ctx.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, toResponse(report))
}

// recent responds with the latest reports, newest first.
func (c *RobotServer) recent(ctx *gin.Context) {
	limit := 0
	if raw := ctx.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
			return
		}
		limit = parsed
	}

	reports, err := c.cleaner.Recent(ctx.Request.Context(), limit)
	if err != nil {
		ctx.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	response := RecentResponse{Reports: make([]ReportResponse, 0, len(reports))}
	for _, r := range reports {
		response.Reports = append(response.Reports, toResponse(r))
	}
	ctx.JSON(http.StatusOK, response)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrReportNotFound):
		return http.StatusNotFound
	case errors.Is(err, path.ErrNegativeSteps),
		errors.Is(err, path.ErrStepsOutOfRange),
		errors.Is(err, path.ErrCoordinateOutOfRange),
		errors.Is(err, path.ErrUnknownDirection),
		errors.Is(err, path.ErrInconsistentSegment):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
