package handler

import (
	"net/http"

	"github.com/devfolio/internal/service"
	"github.com/gin-gonic/gin"
)

// ListSkills 返回可见技能，支持 ?category= 过滤。
func (a *API) ListSkills(c *gin.Context) {
	a.listVisibleSkills(c, c.Query("category"))
}

// ListSkillsByCategory 与 ListSkills 相同，分类来自路径。
func (a *API) ListSkillsByCategory(c *gin.Context) {
	a.listVisibleSkills(c, c.Param("category"))
}

func (a *API) listVisibleSkills(c *gin.Context, category string) {
	items, err := a.skills.ListVisible(c.Request.Context(), category)
	if err != nil {
		respondServiceError(c, err, "Failed to fetch skills")
		return
	}
	respondCached(c, items)
}

// AdminListSkills 返回全部技能，包括隐藏的。
func (a *API) AdminListSkills(c *gin.Context) {
	items, err := a.skills.ListAll(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "Failed to fetch skills")
		return
	}
	c.JSON(http.StatusOK, items)
}

// CreateSkill 新建技能。
func (a *API) CreateSkill(c *gin.Context) {
	var input service.SkillInput
	if !bindJSON(c, &input) {
		return
	}

	skill, err := a.skills.Create(c.Request.Context(), input)
	if err != nil {
		respondServiceError(c, err, "Failed to create skill")
		return
	}
	c.JSON(http.StatusCreated, skill)
}

// UpdateSkill 部分更新技能。
func (a *API) UpdateSkill(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var input service.SkillUpdateInput
	if !bindJSON(c, &input) {
		return
	}

	skill, err := a.skills.Update(c.Request.Context(), id, input)
	if err != nil {
		respondServiceError(c, err, "Failed to update skill")
		return
	}
	c.JSON(http.StatusOK, skill)
}

// DeleteSkill 删除技能。
func (a *API) DeleteSkill(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := a.skills.Delete(c.Request.Context(), id); err != nil {
		respondServiceError(c, err, "Failed to delete skill")
		return
	}
	c.Status(http.StatusNoContent)
}
