package handler

import (
	"github.com/depu2006/CareerGenomeai/internal/middleware"

	"github.com/gin-gonic/gin"
)

type RouteOptions struct {
	AdminEnabled   bool
	AdminKey       string
	RateLimitRPS   float64
	RateLimitBurst int
}

// Register mounts every API route on r.
func (h *Handler) Register(r gin.IRouter, opts RouteOptions) {
	limited := []gin.HandlerFunc{}
	if opts.RateLimitRPS > 0 {
		limited = append(limited, middleware.RateLimitByIP(opts.RateLimitRPS, max(opts.RateLimitBurst, 1)))
	}
	with := func(hf gin.HandlerFunc) []gin.HandlerFunc {
		return append(append([]gin.HandlerFunc{}, limited...), hf)
	}

	authGroup := r.Group("/api/auth")
	{
		authGroup.POST("/signup", h.Signup)
		authGroup.POST("/login", h.Login)
	}

	user := r.Group("/api/user").Use(middleware.AuthMiddleware(h.Tokens))
	{
		user.GET("/profile", h.GetProfile)
		user.POST("/profile", h.UpdateProfile)
	}

	r.POST("/ask", h.Ask)
	r.POST("/career-readiness", h.CareerReadiness)
	r.POST("/analyze-failure", h.AnalyzeFailure)

	api := r.Group("/api")
	{
		api.GET("/roles", h.Roles)
		api.POST("/role", h.RoleInfo)
		api.POST("/topic", h.Topic)

		api.POST("/skill-gap/generate", with(h.GenerateSkillGap)...)
		api.GET("/skill-gap/roadmap", h.GetRoadmap)
		api.DELETE("/skill-gap/roadmap", h.DeleteRoadmap)

		api.POST("/chat", with(h.Chat)...)
		api.POST("/projects/generate", with(h.GenerateProjects)...)
		api.GET("/shocks", h.CareerShocks)

		api.POST("/interview/start", h.StartInterview)
		api.POST("/interview/answer", h.AnswerInterview)
		api.POST("/interview/answer/audio", h.AnswerInterviewAudio)
	}

	r.POST("/start", h.SmartStart)
	r.GET("/next", h.SmartNext)
	r.POST("/evaluate", with(h.SmartEvaluate)...)

	r.GET("/ws/interview", h.HandleInterviewConnection)

	// 관리자 조회는 명시적으로 켠 경우에만 노출
	if opts.AdminEnabled {
		admin := r.Group("/api").Use(middleware.AdminKeyMiddleware(opts.AdminKey))
		{
			admin.GET("/collections", h.Collections)
			admin.GET("/collection/:name", h.CollectionData)
		}
	}
}
