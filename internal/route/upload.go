package route

import (
	"github.com/gin-gonic/gin"
	"github.com/renovalte/renovalte/internal/controller"
)

// Upload registers the public, token-gated offer upload pages. No auth
// middleware here, the single-use token is the credential.
func Upload(r *gin.Engine, uc *controller.UploadController) {
	offers := r.Group("/offers/upload")
	{
		offers.GET("/:token/", uc.ShowForm)
		offers.POST("/:token/", uc.Submit)
	}
}
