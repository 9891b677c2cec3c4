package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/renovalte/renovalte/internal/util"
)

type IndexController struct {
	*baseController
}

func (ic IndexController) Index(ctx *gin.Context) {
	util.ResponseSuccess(ctx, gin.H{
		"app": "RenovAlte API",
	})
}

func (ic IndexController) Healthcheck(ctx *gin.Context) {
	ctx.String(http.StatusOK, "OK")
}
