package controllers

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/steadfastapp/steadfast/config"
	"github.com/steadfastapp/steadfast/engine"
	"github.com/steadfastapp/steadfast/middleware"
)

// getUserID extracts the authenticated user ID stored by the auth middleware.
func getUserID(ctx *gin.Context) (uint, bool) {
	v, ok := ctx.Get(middleware.ContextUserIDKey)
	if !ok {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}

// pageParams parses ?page and ?page_size with sane bounds.
func pageParams(ctx *gin.Context) (page, pageSize int) {
	page, pageSize = 1, 20
	if v := strings.TrimSpace(ctx.Query("page")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			page = n
		}
	}
	if v := strings.TrimSpace(ctx.Query("page_size")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 100 {
			pageSize = n
		}
	}
	return page, pageSize
}

// scoreWeights builds the engine weights from configuration.
func scoreWeights(cfg config.AppConfig) engine.Weights {
	return engine.Weights{
		Consistency:     cfg.ScoreWeightConsistency,
		Resilience:      cfg.ScoreWeightResilience,
		Engagement:      cfg.ScoreWeightEngagement,
		Desensitization: cfg.ScoreWeightDesensitization,
	}
}
