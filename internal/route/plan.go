package route

import (
	"github.com/gin-gonic/gin"
	"github.com/renovalte/renovalte/internal/controller"
	"github.com/renovalte/renovalte/internal/middleware"
)

func V1_Renovation(r *gin.RouterGroup, pc *controller.PlanController, middleware *middleware.Middleware) {
	v1 := r.Group("/v1/renovation")
	v1.Use(middleware.AuthMiddleware)
	{
		v1.POST("/generate-plan", pc.GeneratePlan)
	}
}
