package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/renovalte/renovalte/internal/plan"
	"github.com/renovalte/renovalte/internal/util"
)

type PlanController struct {
	*baseController
}

// GeneratePlan asks the configured generative provider for a renovation plan.
// The provider call is bounded by the request context plus the configured
// timeout inside the client.
func (pc PlanController) GeneratePlan(ctx *gin.Context) {
	if _, err := pc.getAuthUser(ctx); err != nil {
		util.ResponseFailed(ctx, http.StatusUnauthorized, "Unauthorized", util.GenerateErrorMessages(err), nil)
		return
	}

	var body plan.Request
	if err := ctx.ShouldBind(&body); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}

	if pc.app.PlanGenerator == nil {
		util.ResponseFailed(ctx, http.StatusServiceUnavailable, "Plan generation is not configured", nil, nil)
		return
	}

	response, err := pc.app.PlanGenerator.GeneratePlan(ctx, body)
	if err != nil {
		pc.app.Logger.Errorf("Plan generation failed: %v", err)
		util.ResponseFailed(ctx, http.StatusBadGateway, "Failed to generate plan", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, response)
}
