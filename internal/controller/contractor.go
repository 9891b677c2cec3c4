package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/renovalte/renovalte/internal/constant"
	"github.com/renovalte/renovalte/internal/util"
)

type ContractorController struct {
	*baseController
}

// List filters the contractor directory. All query params are optional; a
// blank query returns the first page of the whole directory.
func (cc ContractorController) List(ctx *gin.Context) {
	type Request struct {
		ProjectType string `form:"project_type"`
		City        string `form:"city"`
		State       string `form:"state"`
		Page        uint   `form:"page"`
		PageSize    uint   `form:"pageSize"`
	}
	var query Request

	if err := ctx.ShouldBindQuery(&query); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}

	if pt := constant.NormalizeProjectType(query.ProjectType); pt != "" && !pt.IsValid() {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(
			errors.New("unknown project type"), "project_type"), nil)
		return
	}

	if query.Page == 0 {
		query.Page = 1
	}
	if query.PageSize == 0 {
		query.PageSize = constant.DefaultPageSize
	}
	if query.PageSize > constant.MaxPageSize {
		query.PageSize = constant.MaxPageSize
	}

	contractors, err := cc.app.Repository.Contractor.FindMatching(ctx, nil, query.ProjectType, query.City, query.State)
	if err != nil {
		cc.app.Logger.Errorf("Failed to list contractors: %v", err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to list contractors", util.GenerateErrorMessages(err), nil)
		return
	}

	total := len(contractors)
	start := int((query.Page - 1) * query.PageSize)
	if start > total {
		start = total
	}
	end := start + int(query.PageSize)
	if end > total {
		end = total
	}

	util.ResponseSuccess(ctx, gin.H{
		"contractors": contractors[start:end],
		"total":       total,
		"page":        query.Page,
		"pageSize":    query.PageSize,
		"totalPage":   util.CalculateTotalPage(int64(total), query.PageSize),
	})
}

// GenerateUploadLinks ensures offers and tokens for the selected contractors and
// returns the upload links without sending any mail.
func (cc ContractorController) GenerateUploadLinks(ctx *gin.Context) {
	authUser, err := cc.getAuthUser(ctx)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusUnauthorized, "Unauthorized", util.GenerateErrorMessages(err), nil)
		return
	}

	type Request struct {
		ProjectID     uint   `json:"projectId" form:"projectId" binding:"required"`
		ContractorIDs []uint `json:"contractorIds" form:"contractorIds" binding:"required,min=1"`
	}
	var body Request

	if err := ctx.ShouldBind(&body); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}

	results, err := cc.app.Invitation.GenerateUploadLinks(ctx, authUser.ID, body.ProjectID, body.ContractorIDs)
	if err != nil {
		cc.respondDomainError(ctx, err)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"links": results,
	})
}
