package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// idParam parses the :id path segment. A non-numeric id behaves like an
// unknown one: the resource does not exist.
func idParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}
