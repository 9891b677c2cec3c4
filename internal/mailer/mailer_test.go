package mailer

import (
	"bytes"
	"html/template"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func renderBlock(t *testing.T, block string, data OfferInvitationData) string {
	t.Helper()

	tmpl, err := template.ParseFS(FS, "templates/"+TemplateOfferInvitation)
	require.NoError(t, err)

	out := new(bytes.Buffer)
	require.NoError(t, tmpl.ExecuteTemplate(out, block, data))

	return out.String()
}

func TestOfferInvitationTemplate(t *testing.T) {
	data := OfferInvitationData{
		ContractorName: "Bath Pros",
		ProjectName:    "Bathroom remodel",
		Subject:        "Please send us your offer",
		Body:           "We were impressed by your reviews.",
		UploadURL:      "http://renovalte.test/offers/upload/abc123/",
	}

	subject := renderBlock(t, "subject", data)
	assert.Equal(t, "Please send us your offer", subject)

	body := renderBlock(t, "body", data)
	assert.Contains(t, body, "Bath Pros")
	assert.Contains(t, body, "Bathroom remodel")
	assert.Contains(t, body, "We were impressed by your reviews.")
	assert.Contains(t, body, data.UploadURL)
}

func TestOfferInvitationTemplateDefaults(t *testing.T) {
	data := OfferInvitationData{
		ContractorName: "Bath Pros",
		ProjectName:    "Bathroom remodel",
		UploadURL:      "http://renovalte.test/offers/upload/abc123/",
	}

	subject := renderBlock(t, "subject", data)
	assert.Equal(t, "Invitation to submit an offer", subject)
}
