package controller

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	appcontext "github.com/renovalte/renovalte/internal/app_context"
	"github.com/renovalte/renovalte/internal/apperror"
	"github.com/renovalte/renovalte/internal/auth"
	"github.com/renovalte/renovalte/internal/util"
)

type baseController struct {
	app *appcontext.Application
}

type Controller struct {
	Index      *IndexController
	Auth       *AuthController
	Contractor *ContractorController
	Project    *ProjectController
	Invitation *InvitationController
	Upload     *UploadController
	Plan       *PlanController
}

func newBaseController(app *appcontext.Application) *baseController {
	return &baseController{app: app}
}

func NewController(app *appcontext.Application) *Controller {
	bc := newBaseController(app)

	return &Controller{
		Index:      &IndexController{baseController: bc},
		Auth:       &AuthController{baseController: bc},
		Contractor: &ContractorController{baseController: bc},
		Project:    &ProjectController{baseController: bc},
		Invitation: &InvitationController{baseController: bc},
		Upload:     &UploadController{baseController: bc},
		Plan:       &PlanController{baseController: bc},
	}
}

func (b *baseController) getAuthUser(ctx *gin.Context) (*auth.JWTPayload, error) {
	user, exists := ctx.Get("user")
	if !exists {
		return nil, errors.New("user not found in context")
	}

	jsonUser, err := json.Marshal(user)
	if err != nil {
		return nil, err
	}

	var authUser *auth.JWTPayload
	err = json.Unmarshal(jsonUser, &authUser)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal user: %w", err)
	}

	return authUser, nil
}

// respondDomainError maps the error taxonomy onto HTTP statuses. Token errors
// are not handled here; the upload controller renders those as a generic page.
func (b *baseController) respondDomainError(ctx *gin.Context, err error) {
	var ve *apperror.ValidationError
	if errors.As(err, &ve) {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err, ve.Field), nil)
		return
	}

	var nf *apperror.NotFoundError
	if errors.As(err, &nf) {
		util.ResponseFailed(ctx, http.StatusNotFound, "Not found", util.GenerateErrorMessages(err, nf.Entity), nil)
		return
	}

	var de *apperror.DeliveryError
	if errors.As(err, &de) {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to send invitation", util.GenerateErrorMessages(err), gin.H{
			"failedRecipient": de.Recipient,
		})
		return
	}

	b.app.Logger.Errorf("Unhandled error: %v", err)
	util.ResponseFailed(ctx, http.StatusInternalServerError, "", util.GenerateErrorMessages(err), nil)
}
