package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/renovalte/renovalte/internal/constant"
	"github.com/renovalte/renovalte/internal/model"
	"github.com/renovalte/renovalte/internal/util"
)

type ProjectController struct {
	*baseController
}

type projectRequest struct {
	Name                  string  `json:"name" form:"name" binding:"required,strNotEmpty,max=200"`
	ProjectType           string  `json:"projectType" form:"projectType"`
	Address               string  `json:"address" form:"address" binding:"max=200"`
	City                  string  `json:"city" form:"city" binding:"max=100"`
	PostalCode            string  `json:"postalCode" form:"postalCode" binding:"max=20"`
	State                 string  `json:"state" form:"state" binding:"max=100"`
	Budget                float64 `json:"budget" form:"budget" binding:"omitempty,gte=0"`
	AdditionalInformation string  `json:"additionalInformation" form:"additionalInformation"`
}

func (req projectRequest) projectType() constant.ProjectType {
	pt := constant.NormalizeProjectType(req.ProjectType)
	if !pt.IsValid() {
		return constant.ProjectTypeGeneral
	}

	return pt
}

func paramUint(ctx *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}

	return uint(id), true
}

func (pc ProjectController) Create(ctx *gin.Context) {
	authUser, err := pc.getAuthUser(ctx)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusUnauthorized, "Unauthorized", util.GenerateErrorMessages(err), nil)
		return
	}

	var body projectRequest
	if err := ctx.ShouldBind(&body); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}

	project := &model.Project{
		Name:                  body.Name,
		ProjectType:           body.projectType(),
		Address:               body.Address,
		City:                  body.City,
		PostalCode:            body.PostalCode,
		State:                 body.State,
		Budget:                body.Budget,
		AdditionalInformation: body.AdditionalInformation,
		UserID:                authUser.ID,
	}

	if _, err := pc.app.Repository.Project.Create(ctx, nil, project); err != nil {
		pc.app.Logger.Errorf("Failed to create project: %v", err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to create project", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseCreated(ctx, "Project created", gin.H{
		"project": project,
	})
}

func (pc ProjectController) List(ctx *gin.Context) {
	authUser, err := pc.getAuthUser(ctx)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusUnauthorized, "Unauthorized", util.GenerateErrorMessages(err), nil)
		return
	}

	projects, err := pc.app.Repository.Project.ListForUser(ctx, nil, authUser.ID)
	if err != nil {
		pc.app.Logger.Errorf("Failed to list projects: %v", err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to list projects", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"projects": projects,
		"total":    len(projects),
	})
}

func (pc ProjectController) GetById(ctx *gin.Context) {
	authUser, err := pc.getAuthUser(ctx)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusUnauthorized, "Unauthorized", util.GenerateErrorMessages(err), nil)
		return
	}

	projectId, ok := paramUint(ctx, "projectId")
	if !ok {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid project id", nil, nil)
		return
	}

	project, err := pc.app.Repository.Project.GetByIdForUser(ctx, nil, projectId, authUser.ID)
	if err != nil {
		pc.respondDomainError(ctx, err)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"project": project,
	})
}

func (pc ProjectController) Update(ctx *gin.Context) {
	authUser, err := pc.getAuthUser(ctx)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusUnauthorized, "Unauthorized", util.GenerateErrorMessages(err), nil)
		return
	}

	projectId, ok := paramUint(ctx, "projectId")
	if !ok {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid project id", nil, nil)
		return
	}

	var body projectRequest
	if err := ctx.ShouldBind(&body); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}

	project, err := pc.app.Repository.Project.GetByIdForUser(ctx, nil, projectId, authUser.ID)
	if err != nil {
		pc.respondDomainError(ctx, err)
		return
	}

	project.Name = body.Name
	project.ProjectType = body.projectType()
	project.Address = body.Address
	project.City = body.City
	project.PostalCode = body.PostalCode
	project.State = body.State
	project.Budget = body.Budget
	project.AdditionalInformation = body.AdditionalInformation

	if err := pc.app.Repository.Project.Update(ctx, nil, project); err != nil {
		pc.app.Logger.Errorf("Failed to update project %d: %v", projectId, err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to update project", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"project": project,
	})
}

func (pc ProjectController) Delete(ctx *gin.Context) {
	authUser, err := pc.getAuthUser(ctx)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusUnauthorized, "Unauthorized", util.GenerateErrorMessages(err), nil)
		return
	}

	projectId, ok := paramUint(ctx, "projectId")
	if !ok {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid project id", nil, nil)
		return
	}

	if err := pc.app.Repository.Project.Delete(ctx, nil, projectId, authUser.ID); err != nil {
		pc.respondDomainError(ctx, err)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"deleted": projectId,
	})
}

// Offers lists the offers attached to one of the caller's projects, including
// submitted letters.
func (pc ProjectController) Offers(ctx *gin.Context) {
	authUser, err := pc.getAuthUser(ctx)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusUnauthorized, "Unauthorized", util.GenerateErrorMessages(err), nil)
		return
	}

	projectId, ok := paramUint(ctx, "projectId")
	if !ok {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid project id", nil, nil)
		return
	}

	if _, err := pc.app.Repository.Project.GetByIdForUser(ctx, nil, projectId, authUser.ID); err != nil {
		pc.respondDomainError(ctx, err)
		return
	}

	offers, err := pc.app.Repository.Offer.ListForProject(ctx, nil, projectId, authUser.ID)
	if err != nil {
		pc.app.Logger.Errorf("Failed to list offers for project %d: %v", projectId, err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to list offers", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"offers": offers,
		"total":  len(offers),
	})
}
