package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/oubasys/portfolio/internal/models"
	"github.com/oubasys/portfolio/internal/services"
	"github.com/oubasys/portfolio/internal/utils"
)

// ExperienceHandler serves the unified experience/education resource. The
// public site splits the two views client-side on the type tag.
type ExperienceHandler struct {
	svc services.ExperienceService
}

func NewExperienceHandler(svc services.ExperienceService) *ExperienceHandler {
	return &ExperienceHandler{svc: svc}
}

func (h *ExperienceHandler) List(c *gin.Context) {
	rows, err := h.svc.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

type experienceRequest struct {
	Role        string   `json:"role"`
	Company     string   `json:"company"`
	Location    string   `json:"location"`
	Period      string   `json:"period"`
	Type        string   `json:"type"`
	Description string   `json:"description"`
	Missions    []string `json:"missions"`
}

func (r experienceRequest) toModel() *models.Experience {
	return &models.Experience{
		Role:        r.Role,
		Company:     r.Company,
		Location:    r.Location,
		Period:      r.Period,
		Type:        r.Type,
		Description: r.Description,
		Missions:    r.Missions,
	}
}

func (h *ExperienceHandler) Create(c *gin.Context) {
	var req experienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "ExperienceHandler.Create", "invalid request body", err))
		return
	}

	e := req.toModel()
	if err := h.svc.Create(c.Request.Context(), e); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, e)
}

func (h *ExperienceHandler) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req experienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "ExperienceHandler.Update", "invalid request body", err))
		return
	}

	e := req.toModel()
	e.ID = id
	if err := h.svc.Update(c.Request.Context(), e); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, e)
}

func (h *ExperienceHandler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "experience deleted"})
}
