package service

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/renovalte/renovalte/internal/apperror"
	"github.com/renovalte/renovalte/internal/constant"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeFileHeader(t *testing.T, filename, content string) *multipart.FileHeader {
	t.Helper()

	body := new(bytes.Buffer)
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("uploaded_file", filename)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(32<<20))

	return req.MultipartForm.File["uploaded_file"][0]
}

func TestSubmitOffer(t *testing.T) {
	repo := newTestRepo(t)
	store := &fakeLetterStore{}
	svc := NewOfferSubmissionService(repo, store, nil)

	owner := seedUser(t, repo, "owner@example.com")
	project := seedProject(t, repo, owner.ID, "Bathroom remodel")
	contractor := seedContractor(t, repo, "bathpros")

	ctx := context.Background()
	offer, err := repo.Offer.EnsureOffer(ctx, nil, contractor.ID, project.ID, owner.ID)
	require.NoError(t, err)
	token, err := repo.Offer.IssueToken(ctx, nil, offer)
	require.NoError(t, err)

	resolved, err := svc.ResolveToken(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, offer.ID, resolved.ID)

	submitted, err := svc.SubmitOffer(ctx, token, makeFileHeader(t, "offer.pdf", "quote"), "We can start in May")
	require.NoError(t, err)
	assert.Equal(t, constant.OfferStatusSubmitted, submitted.Status)
	assert.Equal(t, "We can start in May", submitted.Notes)
	require.Len(t, store.saved, 1)
	assert.Equal(t, "offer.pdf", store.saved[0].FileName)
	assert.Empty(t, store.removed)

	// The token is dead after one use.
	_, err = svc.ResolveToken(ctx, token)
	assert.ErrorIs(t, err, apperror.ErrInvalidToken)

	_, err = svc.SubmitOffer(ctx, token, makeFileHeader(t, "offer2.pdf", "quote"), "")
	assert.ErrorIs(t, err, apperror.ErrInvalidToken)
}

func TestSubmitOfferInvalidToken(t *testing.T) {
	repo := newTestRepo(t)
	store := &fakeLetterStore{}
	svc := NewOfferSubmissionService(repo, store, nil)

	_, err := svc.SubmitOffer(context.Background(), "nope", makeFileHeader(t, "offer.pdf", "quote"), "")
	assert.ErrorIs(t, err, apperror.ErrInvalidToken)
	assert.Empty(t, store.saved)
}

func TestSubmitOfferCleansUpWhenRaceLost(t *testing.T) {
	repo := newTestRepo(t)
	store := &fakeLetterStore{}
	svc := NewOfferSubmissionService(repo, store, nil)

	owner := seedUser(t, repo, "owner@example.com")
	project := seedProject(t, repo, owner.ID, "Bathroom remodel")
	contractor := seedContractor(t, repo, "bathpros")

	ctx := context.Background()
	offer, err := repo.Offer.EnsureOffer(ctx, nil, contractor.ID, project.ID, owner.ID)
	require.NoError(t, err)
	token, err := repo.Offer.IssueToken(ctx, nil, offer)
	require.NoError(t, err)

	// A concurrent submission consumes the token while this handler's upload
	// is still in flight.
	store.onSave = func() {
		require.NoError(t, repo.DB.Model(offer).Update("token", nil).Error)
	}

	_, err = svc.SubmitOffer(ctx, token, makeFileHeader(t, "offer.pdf", "quote"), "")
	assert.ErrorIs(t, err, apperror.ErrInvalidToken)

	// The stored letter did not leak.
	require.Len(t, store.saved, 1)
	require.Len(t, store.removed, 1)
	assert.Equal(t, store.saved[0], store.removed[0])
}
