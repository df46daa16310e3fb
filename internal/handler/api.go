package handler

import (
	"github.com/devfolio/internal/service"
)

// Services 汇总 handler 依赖的服务，由 main 或测试组装。
type Services struct {
	Content     *service.ContentService
	Skills      *service.SkillService
	Experiences *service.ExperienceService
	Projects    *service.ProjectService
	Messages    *service.MessageService
	Auth        *service.AuthService
	Repos       *service.RepoService
	Uploads     *service.UploadService
}

// API bundles shared dependencies for HTTP handlers.
type API struct {
	content     *service.ContentService
	skills      *service.SkillService
	experiences *service.ExperienceService
	projects    *service.ProjectService
	messages    *service.MessageService
	auth        *service.AuthService
	repos       *service.RepoService
	uploads     *service.UploadService
}

// NewAPI constructs a handler set with shared services.
func NewAPI(s Services) *API {
	return &API{
		content:     s.Content,
		skills:      s.Skills,
		experiences: s.Experiences,
		projects:    s.Projects,
		messages:    s.Messages,
		auth:        s.Auth,
		repos:       s.Repos,
		uploads:     s.Uploads,
	}
}

// Uploads exposes the upload service so the router can serve stored files.
func (a *API) Uploads() *service.UploadService {
	return a.uploads
}
