package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apierrors "github.com/communityworks/volunteer-platform/internal/errors"
	"github.com/communityworks/volunteer-platform/internal/scheduler"
)

// SystemHandler exposes the health check and the manual sweep trigger.
type SystemHandler struct {
	scheduler *scheduler.Scheduler
}

// NewSystemHandler creates a new SystemHandler.
func NewSystemHandler(sched *scheduler.Scheduler) *SystemHandler {
	return &SystemHandler{
		scheduler: sched,
	}
}

// Health reports service liveness.
func (h *SystemHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Volunteer platform API is running",
	})
}

// RunSweeps executes both background sweeps immediately instead of
// waiting for their schedules.
func (h *SystemHandler) RunSweeps(c *gin.Context) {
	if err := h.scheduler.RunOnce(c.Request.Context()); err != nil {
		apierrors.InternalError(c, "Sweep run failed: "+err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Sweeps completed successfully",
	})
}
