package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	apierrors "github.com/communityworks/volunteer-platform/internal/errors"
)

// parseIDParam reads a numeric path parameter, responding with 400 when it
// is missing or malformed.
func parseIDParam(c *gin.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid "+name)
		return 0, false
	}
	return id, true
}
