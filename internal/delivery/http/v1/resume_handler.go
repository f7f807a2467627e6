package v1

import (
	"net/http"
	"strconv"

	"resume-builder-backend/internal/delivery/http/response"
	"resume-builder-backend/internal/domain"
	"resume-builder-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ResumeHandler struct {
	resumeUC domain.ResumeUsecase
}

func NewResumeHandler(r *gin.RouterGroup, resumeUC domain.ResumeUsecase) {
	handler := &ResumeHandler{resumeUC: resumeUC}

	r.GET("/resumes", handler.List)
	r.GET("/resume/:id", handler.Get)
	r.POST("/resume", handler.Create)
}

// Create godoc
// @Summary      Submit a resume
// @Description  Validate and persist a full resume aggregate
// @Tags         resumes
// @Accept       json
// @Produce      json
// @Param        resume  body      domain.ResumeSubmission  true  "Resume JSON"
// @Success      201     {object}  response.Response
// @Failure      400     {object}  response.Response
// @Router       /resume [post]
func (h *ResumeHandler) Create(c *gin.Context) {
	var sub domain.ResumeSubmission
	if err := c.ShouldBindJSON(&sub); err != nil {
		c.Error(apperror.BadRequest("Invalid JSON payload: " + err.Error()))
		return
	}

	id, err := h.resumeUC.SubmitResume(c.Request.Context(), &sub)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Resume created successfully", gin.H{
		"resume_id": id,
	})
}

// Get godoc
// @Summary      Get a resume
// @Description  Fetch one resume aggregate by id
// @Tags         resumes
// @Produce      json
// @Param        id   path      int  true  "Resume ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /resume/{id} [get]
func (h *ResumeHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid ID format"))
		return
	}

	resume, err := h.resumeUC.GetResume(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Resume details", resume)
}

// List godoc
// @Summary      List resumes
// @Description  Dashboard list of all resumes as full aggregates
// @Tags         resumes
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /resumes [get]
func (h *ResumeHandler) List(c *gin.Context) {
	resumes, err := h.resumeUC.ListResumes(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Resume list", gin.H{
		"resumes": resumes,
		"count":   len(resumes),
	})
}
