package v1

import (
	"net/http"
	"strconv"

	"resume-builder-backend/internal/delivery/http/response"
	"resume-builder-backend/internal/domain"
	"resume-builder-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type MasterDataHandler struct {
	masterUC domain.MasterDataUsecase
}

// NewMasterDataHandler registers one uniform CRUD group per lookup resource
// (sectors, countries, states, cities, courses, job-types, job-skills-master,
// companies). The handlers are shared; the resource name is bound per group.
func NewMasterDataHandler(r *gin.RouterGroup, masterUC domain.MasterDataUsecase, resources []string) {
	handler := &MasterDataHandler{masterUC: masterUC}

	for _, resource := range resources {
		group := r.Group("/" + resource)
		group.GET("", handler.list(resource))
		group.POST("", handler.create(resource))
		group.PUT("/:id", handler.update(resource))
		group.DELETE("/:id", handler.delete(resource))
	}
}

func (h *MasterDataHandler) list(resource string) gin.HandlerFunc {
	return func(c *gin.Context) {
		records, err := h.masterUC.List(c.Request.Context(), resource)
		if err != nil {
			c.Error(err)
			return
		}
		response.Success(c, http.StatusOK, "Record list", gin.H{
			"records": records,
			"count":   len(records),
		})
	}
}

func (h *MasterDataHandler) create(resource string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input domain.MasterRecordInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.Error(apperror.BadRequest("Invalid JSON payload: " + err.Error()))
			return
		}

		rec, err := h.masterUC.Create(c.Request.Context(), resource, &input)
		if err != nil {
			c.Error(err)
			return
		}
		response.Success(c, http.StatusCreated, "Record created", rec)
	}
}

func (h *MasterDataHandler) update(resource string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			c.Error(apperror.BadRequest("Invalid ID format"))
			return
		}

		var input domain.MasterRecordInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.Error(apperror.BadRequest("Invalid JSON payload: " + err.Error()))
			return
		}

		rec, err := h.masterUC.Update(c.Request.Context(), resource, id, &input)
		if err != nil {
			c.Error(err)
			return
		}
		response.Success(c, http.StatusOK, "Record updated", rec)
	}
}

func (h *MasterDataHandler) delete(resource string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			c.Error(apperror.BadRequest("Invalid ID format"))
			return
		}

		if err := h.masterUC.Delete(c.Request.Context(), resource, id); err != nil {
			c.Error(err)
			return
		}
		response.Success(c, http.StatusOK, "Record deleted successfully", nil)
	}
}
