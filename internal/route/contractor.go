package route

import (
	"github.com/gin-gonic/gin"
	"github.com/renovalte/renovalte/internal/controller"
	"github.com/renovalte/renovalte/internal/middleware"
)

func V1_Contractors(r *gin.RouterGroup, cc *controller.ContractorController, ic *controller.InvitationController, middleware *middleware.Middleware) {
	v1 := r.Group("/v1")
	v1.Use(middleware.AuthMiddleware)
	{
		v1.GET("/contractors", cc.List)
		v1.POST("/contractors/generate-upload-links", cc.GenerateUploadLinks)
		v1.POST("/invite-contractors", ic.InviteContractors)
	}
}
