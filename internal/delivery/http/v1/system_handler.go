package v1

import (
	"net/http"
	"time"

	"resume-builder-backend/internal/delivery/http/response"
	"resume-builder-backend/internal/usecase"

	"github.com/gin-gonic/gin"
)

type SystemHandler struct {
	systemUC usecase.SystemUsecase
}

func NewSystemHandler(r *gin.RouterGroup, systemUC usecase.SystemUsecase) {
	handler := &SystemHandler{systemUC: systemUC}

	r.GET("/health", handler.Health)
	r.GET("/schema", handler.Schema)
}

// Health godoc
// @Summary      Liveness check
// @Tags         system
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /health [get]
func (h *SystemHandler) Health(c *gin.Context) {
	if err := h.systemUC.Health(c.Request.Context()); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Resume Builder API is running", gin.H{
		"database":  "connected",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

// Schema godoc
// @Summary      Inspect the storage schema
// @Description  Lists tables and columns of the public schema, useful for debugging
// @Tags         system
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /schema [get]
func (h *SystemHandler) Schema(c *gin.Context) {
	info, err := h.systemUC.GetSchema(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Schema info", info)
}
