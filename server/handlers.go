package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pfactor/PFactor-core/factor"
)

var defaults = map[string]any{
	"method":     string(factor.PMinus1Method),
	"bound":      factor.DefaultBound,
	"attempts":   factor.DefaultAttempts,
	"parallel":   1,
	"timeout_ms": defaultTimeoutMs,
}

func optionsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"methods":        factor.Methods(),
		"defaultOptions": defaults,
	})
}
