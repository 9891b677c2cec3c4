package mailer

import (
	"context"
	"embed"
)

const (
	FROM_NAME = "RenovAlte"
	MAX_RETRY = 3

	TemplateOfferInvitation = "offer_invitation.tmpl"
)

//go:embed "templates"
var FS embed.FS

type Client interface {
	Send(ctx context.Context, templateFile, toUsername, toEmail string, data any) (int, error)
}

// OfferInvitationData feeds templates/offer_invitation.tmpl.
type OfferInvitationData struct {
	ContractorName string
	ProjectName    string
	Subject        string
	Body           string
	UploadURL      string
}
