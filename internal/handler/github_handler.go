package handler

import (
	"github.com/gin-gonic/gin"
)

// ListGitHubRepos 返回镜像的 GitHub 仓库列表，失败时由服务层退回内置列表。
func (a *API) ListGitHubRepos(c *gin.Context) {
	respondCached(c, a.repos.List(c.Request.Context()))
}
