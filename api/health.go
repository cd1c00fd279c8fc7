package api

import (
	"context"
	"net/http"
	"time"

	"restaurant/service"

	"github.com/gin-gonic/gin"
)

// HealthHandler 健康检查
type HealthHandler struct {
	svc *service.CatalogService
}

// NewHealthHandler 创建健康检查处理器
func NewHealthHandler(svc *service.CatalogService) *HealthHandler {
	return &HealthHandler{svc: svc}
}

// Check 检查数据库连通性
// @Summary 健康检查
// @Tags 系统
// @Produce json
// @Success 200 {object} map[string]string "ok"
// @Failure 503 {object} map[string]string "数据库不可用"
// @Router /health [get]
func (h *HealthHandler) Check(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := h.svc.Ping(ctx); err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "unavailable",
			"detail": SafeErrorMessage(err, "database unavailable"),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
