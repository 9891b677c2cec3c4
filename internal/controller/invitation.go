package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/renovalte/renovalte/internal/util"
)

type InvitationController struct {
	*baseController
}

// InviteContractors runs the invitation batch for a project: per selected
// contractor it ensures an offer with a live upload token and emails the link.
// A delivery failure aborts the batch but already-created offers stay, so a
// retry resends the same links.
func (ic InvitationController) InviteContractors(ctx *gin.Context) {
	authUser, err := ic.getAuthUser(ctx)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusUnauthorized, "Unauthorized", util.GenerateErrorMessages(err), nil)
		return
	}

	type Request struct {
		ProjectID     uint   `json:"projectId" form:"projectId" binding:"required"`
		ContractorIDs []uint `json:"contractorIds" form:"contractorIds" binding:"required,min=1"`
		Subject       string `json:"subject" form:"subject" binding:"omitempty,max=200"`
		Body          string `json:"body" form:"body"`
	}
	var body Request

	if err := ctx.ShouldBind(&body); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}

	results, err := ic.app.Invitation.InviteContractors(ctx, authUser.ID, body.ProjectID, body.ContractorIDs, body.Subject, body.Body)
	if err != nil {
		ic.respondDomainError(ctx, err)
		return
	}

	util.ResponseCreated(ctx, "Invitations sent", gin.H{
		"created": results,
		"total":   len(results),
	})
}
