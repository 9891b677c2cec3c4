package route

import (
	"github.com/gin-gonic/gin"
	"github.com/renovalte/renovalte/internal/controller"
	"github.com/renovalte/renovalte/internal/middleware"
)

func V1_Projects(r *gin.RouterGroup, pc *controller.ProjectController, middleware *middleware.Middleware) {
	v1 := r.Group("/v1/projects")
	v1.Use(middleware.AuthMiddleware)
	{
		v1.POST("", pc.Create)
		v1.GET("", pc.List)
		v1.GET("/:projectId", pc.GetById)
		v1.PUT("/:projectId", pc.Update)
		v1.DELETE("/:projectId", pc.Delete)
		v1.GET("/:projectId/offers", pc.Offers)
	}
}
