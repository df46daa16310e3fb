package router

import (
	"net/http"

	"github.com/devfolio/internal/handler"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

// Options 路由层需要的配置。
type Options struct {
	SessionSecret string
	// SecureCookie 为 true 时会话 cookie 只通过 HTTPS 发送。
	SecureCookie bool
}

// SetupRouter 配置 Gin 引擎和路由
func SetupRouter(api *handler.API, opts Options) *gin.Engine {
	r := gin.Default()
	r.MaxMultipartMemory = 8 << 20

	// 配置会话中间件
	store := cookie.NewStore([]byte(opts.SessionSecret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   86400,
		HttpOnly: true,
		Secure:   opts.SecureCookie,
		SameSite: http.SameSiteLaxMode,
	})
	r.Use(sessions.Sessions("devfolio_session", store))
	r.Use(handler.RequestLogger())

	// 上传文件
	uploads := api.Uploads()
	r.Static(uploads.URLPath(), uploads.Dir())

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	public := r.Group("/api")
	{
		public.GET("/content", api.ListContent)
		public.GET("/content/:section", api.GetContent)
		public.GET("/skills", api.ListSkills)
		public.GET("/skills/:category", api.ListSkillsByCategory)
		public.GET("/experiences", api.ListExperiences)
		public.GET("/projects", api.ListProjects)
		public.GET("/projects/featured", api.ListFeaturedProjects)
		public.GET("/featured-projects", api.ListFeaturedProjects)
		public.GET("/github/repos", api.ListGitHubRepos)
		public.POST("/contact", api.SubmitContact)
	}

	// 后台管理路由
	admin := r.Group("/api/admin")
	{
		admin.POST("/login", api.Login)
		admin.POST("/logout", api.Logout)
		admin.GET("/session", api.Session)

		// 需要认证的后台路由
		auth := admin.Group("")
		auth.Use(api.AuthRequired())
		{
			auth.PUT("/content/:section", api.UpdateContent)

			auth.GET("/skills", api.AdminListSkills)
			auth.POST("/skills", api.CreateSkill)
			auth.PUT("/skills/:id", api.UpdateSkill)
			auth.DELETE("/skills/:id", api.DeleteSkill)

			auth.GET("/experiences", api.AdminListExperiences)
			auth.POST("/experiences", api.CreateExperience)
			auth.PUT("/experiences/:id", api.UpdateExperience)
			auth.DELETE("/experiences/:id", api.DeleteExperience)

			auth.GET("/projects", api.AdminListProjects)
			auth.POST("/projects", api.CreateProject)
			auth.PUT("/projects/:id", api.UpdateProject)
			auth.DELETE("/projects/:id", api.DeleteProject)

			auth.GET("/contact-messages", api.ListContactMessages)
			auth.PATCH("/contact-messages/:id/read", api.MarkContactMessageRead)
			auth.DELETE("/contact-messages/:id", api.DeleteContactMessage)

			auth.POST("/upload", api.UploadFile)
		}
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"message": "not found"})
	})

	return r
}
