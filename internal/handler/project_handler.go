package handler

import (
	"net/http"

	"github.com/devfolio/internal/service"
	"github.com/gin-gonic/gin"
)

// ListProjects 返回可见项目。
func (a *API) ListProjects(c *gin.Context) {
	items, err := a.projects.ListVisible(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "Failed to fetch projects")
		return
	}
	respondCached(c, service.NewProjectViews(items))
}

// ListFeaturedProjects 返回精选项目，不受可见性影响。
func (a *API) ListFeaturedProjects(c *gin.Context) {
	items, err := a.projects.ListFeatured(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "Failed to fetch featured projects")
		return
	}
	respondCached(c, service.NewProjectViews(items))
}

// AdminListProjects 返回全部项目。
func (a *API) AdminListProjects(c *gin.Context) {
	items, err := a.projects.ListAll(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "Failed to fetch projects")
		return
	}
	c.JSON(http.StatusOK, items)
}

func (a *API) CreateProject(c *gin.Context) {
	var input service.ProjectInput
	if !bindJSON(c, &input) {
		return
	}

	project, err := a.projects.Create(c.Request.Context(), input)
	if err != nil {
		respondServiceError(c, err, "Failed to create project")
		return
	}
	c.JSON(http.StatusCreated, project)
}

func (a *API) UpdateProject(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var input service.ProjectUpdateInput
	if !bindJSON(c, &input) {
		return
	}

	project, err := a.projects.Update(c.Request.Context(), id, input)
	if err != nil {
		respondServiceError(c, err, "Failed to update project")
		return
	}
	c.JSON(http.StatusOK, project)
}

func (a *API) DeleteProject(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := a.projects.Delete(c.Request.Context(), id); err != nil {
		respondServiceError(c, err, "Failed to delete project")
		return
	}
	c.Status(http.StatusNoContent)
}
