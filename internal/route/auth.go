package route

import (
	"github.com/gin-gonic/gin"
	"github.com/renovalte/renovalte/internal/controller"
	"github.com/renovalte/renovalte/internal/middleware"
)

func V1_Auth(r *gin.RouterGroup, ac *controller.AuthController, middleware *middleware.Middleware) {
	v1 := r.Group("/v1/auth")
	{
		v1.POST("/register", ac.Register)
		v1.POST("/login", ac.Login)
		v1.POST("/jwt/refresh", ac.RefreshAccessToken)
		v1.GET("/me", middleware.AuthMiddleware, ac.Me)
	}
}
