package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/oubasys/portfolio/internal/models"
	"github.com/oubasys/portfolio/internal/services"
	"github.com/oubasys/portfolio/internal/utils"
)

type ProjectHandler struct {
	svc services.ProjectService
}

func NewProjectHandler(svc services.ProjectService) *ProjectHandler {
	return &ProjectHandler{svc: svc}
}

func (h *ProjectHandler) List(c *gin.Context) {
	rows, err := h.svc.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

type projectRequest struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	ImageURL     string   `json:"image_url"`
	ProjectURL   string   `json:"project_url"`
	Technologies []string `json:"technologies"`
	Order        int      `json:"order"`
}

func (r projectRequest) toModel() *models.Project {
	return &models.Project{
		Title:        r.Title,
		Description:  r.Description,
		ImageURL:     r.ImageURL,
		ProjectURL:   r.ProjectURL,
		Technologies: r.Technologies,
		Order:        r.Order,
	}
}

func (h *ProjectHandler) Create(c *gin.Context) {
	var req projectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "ProjectHandler.Create", "invalid request body", err))
		return
	}

	p := req.toModel()
	if err := h.svc.Create(c.Request.Context(), p); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

func (h *ProjectHandler) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req projectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "ProjectHandler.Update", "invalid request body", err))
		return
	}

	p := req.toModel()
	p.ID = id
	if err := h.svc.Update(c.Request.Context(), p); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *ProjectHandler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "project deleted"})
}
