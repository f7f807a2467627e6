package v1

import (
	"net/http"

	"resume-builder-backend/internal/delivery/http/response"
	"resume-builder-backend/internal/domain"
	"resume-builder-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type AnalyticsHandler struct {
	analyticsUC domain.AnalyticsUsecase
}

func NewAnalyticsHandler(r *gin.RouterGroup, analyticsUC domain.AnalyticsUsecase) {
	handler := &AnalyticsHandler{analyticsUC: analyticsUC}

	r.POST("/visitor/increment", handler.TrackVisitor)
	r.POST("/download/increment", handler.TrackDownload)
	r.GET("/analytics", handler.Totals)
}

type TrackDownloadRequest struct {
	ResumeID int64 `json:"resume_id"`
}

// TrackVisitor godoc
// @Summary      Increment the visit counter
// @Description  Bumps the visitor counter of the most recently updated resume
// @Tags         analytics
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /visitor/increment [post]
func (h *AnalyticsHandler) TrackVisitor(c *gin.Context) {
	res, err := h.analyticsUC.TrackVisitor(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Visitor tracked", gin.H{
		"resume_id":     res.ResumeID,
		"visitor_count": res.Count,
	})
}

// TrackDownload godoc
// @Summary      Increment the download counter
// @Description  Bumps the download counter of the given resume, or of the most recently updated one when resume_id is omitted
// @Tags         analytics
// @Accept       json
// @Produce      json
// @Param        target  body      TrackDownloadRequest  false  "Target resume"
// @Success      200     {object}  response.Response
// @Failure      404     {object}  response.Response
// @Router       /download/increment [post]
func (h *AnalyticsHandler) TrackDownload(c *gin.Context) {
	// Body is optional: an empty or absent payload targets the latest resume
	var req TrackDownloadRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.Error(apperror.BadRequest("Invalid JSON payload: " + err.Error()))
			return
		}
	}

	res, err := h.analyticsUC.TrackDownload(c.Request.Context(), req.ResumeID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Download tracked", gin.H{
		"resume_id":      res.ResumeID,
		"download_count": res.Count,
	})
}

// Totals godoc
// @Summary      Aggregate analytics
// @Description  Total visitor and download counts across all resumes
// @Tags         analytics
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /analytics [get]
func (h *AnalyticsHandler) Totals(c *gin.Context) {
	totals, err := h.analyticsUC.GetTotals(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Analytics totals", totals)
}
