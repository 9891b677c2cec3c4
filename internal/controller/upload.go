package controller

import (
	"embed"
	"errors"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/renovalte/renovalte/internal/apperror"
)

//go:embed templates/*.html
var uploadTemplates embed.FS

// LoadHTMLTemplates parses the public upload pages for gin's HTML renderer.
func LoadHTMLTemplates() *template.Template {
	return template.Must(template.ParseFS(uploadTemplates, "templates/*.html"))
}

// UploadController serves the public, token-gated offer upload pages. These
// routes are unauthenticated; the single-use token is the whole credential,
// and every failure renders the same generic invalid page.
type UploadController struct {
	*baseController
}

const maxLetterSize = 20 << 20 // 20 MiB

// ShowForm renders the upload form if the token still resolves to a pending
// offer.
func (uc UploadController) ShowForm(ctx *gin.Context) {
	token := ctx.Param("token")

	offer, err := uc.app.Submission.ResolveToken(ctx, token)
	if err != nil {
		uc.renderInvalid(ctx, err)
		return
	}

	ctx.HTML(http.StatusOK, "upload_offer.html", gin.H{
		"ContractorName": offer.Contractor.Name,
		"ProjectName":    offer.Project.Name,
		"Token":          token,
	})
}

// Submit consumes the token: it stores the uploaded letter and transitions the
// offer to submitted. The token is dead afterwards.
func (uc UploadController) Submit(ctx *gin.Context) {
	token := ctx.Param("token")

	fileHeader, err := ctx.FormFile("uploaded_file")
	if err != nil {
		offer, resolveErr := uc.app.Submission.ResolveToken(ctx, token)
		if resolveErr != nil {
			uc.renderInvalid(ctx, resolveErr)
			return
		}

		ctx.HTML(http.StatusBadRequest, "upload_offer.html", gin.H{
			"ContractorName": offer.Contractor.Name,
			"ProjectName":    offer.Project.Name,
			"Token":          token,
			"Error":          "Please choose a file to upload.",
		})
		return
	}

	if fileHeader.Size > maxLetterSize {
		ctx.HTML(http.StatusBadRequest, "upload_offer.html", gin.H{
			"Token": token,
			"Error": "The file is too large. The maximum size is 20 MB.",
		})
		return
	}

	notes := ctx.PostForm("notes")

	offer, err := uc.app.Submission.SubmitOffer(ctx, token, fileHeader, notes)
	if err != nil {
		uc.renderInvalid(ctx, err)
		return
	}

	ctx.HTML(http.StatusOK, "upload_success.html", gin.H{
		"ContractorName": offer.Contractor.Name,
		"ProjectName":    offer.Project.Name,
	})
}

// renderInvalid shows the same page for unknown, consumed and malformed tokens
// so the response does not reveal whether a token ever existed. Unexpected
// errors get logged but render identically.
func (uc UploadController) renderInvalid(ctx *gin.Context, err error) {
	if !errors.Is(err, apperror.ErrInvalidToken) {
		uc.app.Logger.Errorf("Upload page error: %v", err)
	}

	ctx.HTML(http.StatusNotFound, "upload_invalid.html", nil)
}
