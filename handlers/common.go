package handlers

import (
	"MediDesk/middlewares"
	"MediDesk/models"
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
)

// principalFrom extracts the authenticated principal placed in the request
// context by the token middleware.
func principalFrom(c *gin.Context) (models.Principal, error) {
	return middlewares.ExtractPrincipalFromContext(c.Request.Context())
}

// uintParam parses a numeric path parameter.
func uintParam(c *gin.Context, name string) (uint, error) {
	idStr := c.Param(name)
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid %s", name)
	}
	return uint(id), nil
}
