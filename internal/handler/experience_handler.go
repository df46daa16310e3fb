package handler

import (
	"net/http"

	"github.com/devfolio/internal/service"
	"github.com/gin-gonic/gin"
)

// ListExperiences 返回可见的工作经历，按 order 升序。
func (a *API) ListExperiences(c *gin.Context) {
	items, err := a.experiences.ListVisible(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "Failed to fetch experiences")
		return
	}
	respondCached(c, service.NewExperienceViews(items))
}

// AdminListExperiences 返回全部工作经历。
func (a *API) AdminListExperiences(c *gin.Context) {
	items, err := a.experiences.ListAll(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "Failed to fetch experiences")
		return
	}
	c.JSON(http.StatusOK, items)
}

func (a *API) CreateExperience(c *gin.Context) {
	var input service.ExperienceInput
	if !bindJSON(c, &input) {
		return
	}

	experience, err := a.experiences.Create(c.Request.Context(), input)
	if err != nil {
		respondServiceError(c, err, "Failed to create experience")
		return
	}
	c.JSON(http.StatusCreated, experience)
}

func (a *API) UpdateExperience(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var input service.ExperienceUpdateInput
	if !bindJSON(c, &input) {
		return
	}

	experience, err := a.experiences.Update(c.Request.Context(), id, input)
	if err != nil {
		respondServiceError(c, err, "Failed to update experience")
		return
	}
	c.JSON(http.StatusOK, experience)
}

func (a *API) DeleteExperience(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := a.experiences.Delete(c.Request.Context(), id); err != nil {
		respondServiceError(c, err, "Failed to delete experience")
		return
	}
	c.Status(http.StatusNoContent)
}
