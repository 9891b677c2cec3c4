package controller

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	appcontext "github.com/renovalte/renovalte/internal/app_context"
	"github.com/renovalte/renovalte/internal/config"
	"github.com/renovalte/renovalte/internal/constant"
	"github.com/renovalte/renovalte/internal/database"
	"github.com/renovalte/renovalte/internal/model"
	"github.com/renovalte/renovalte/internal/repository"
	"github.com/renovalte/renovalte/internal/service"
	"github.com/renovalte/renovalte/internal/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type memoryLetterStore struct {
	saved []*model.File
}

func (s *memoryLetterStore) SaveOfferLetter(_ context.Context, offerId uint, fileHeader *multipart.FileHeader) (*model.File, error) {
	file := &model.File{
		FileName:       fileHeader.Filename,
		UniqueFileName: fmt.Sprintf("offers/%d/%s", offerId, fileHeader.Filename),
		BucketName:     "test",
		Size:           fileHeader.Size,
	}
	s.saved = append(s.saved, file)

	return file, nil
}

func (s *memoryLetterStore) RemoveOfferLetter(_ context.Context, _ *model.File) error {
	return nil
}

func newUploadTestServer(t *testing.T) (*gin.Engine, *repository.Repository, *memoryLetterStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, database.Migrate(db))

	logger := util.NewTestLogger()
	repo := repository.NewRepository(db, logger, nil)
	store := &memoryLetterStore{}
	cfg := &config.Config{App: config.AppConfig{SITE_URL: "http://renovalte.test"}}

	app := &appcontext.Application{
		Config:     cfg,
		Logger:     logger,
		Repository: repo,
		Submission: service.NewOfferSubmissionService(repo, store, logger),
	}

	r := gin.New()
	r.SetHTMLTemplate(LoadHTMLTemplates())

	ctrl := NewController(app)
	offers := r.Group("/offers/upload")
	offers.GET("/:token/", ctrl.Upload.ShowForm)
	offers.POST("/:token/", ctrl.Upload.Submit)

	return r, repo, store
}

func issueUploadToken(t *testing.T, repo *repository.Repository) string {
	t.Helper()
	ctx := context.Background()

	user := &model.User{Email: "owner@example.com", FirstName: "Test", LastName: "User", PasswordHash: "x"}
	require.NoError(t, repo.DB.Create(user).Error)
	project := &model.Project{Name: "Bathroom remodel", ProjectType: constant.ProjectTypeBathroom, UserID: user.ID}
	require.NoError(t, repo.DB.Create(project).Error)
	contractor := &model.Contractor{Name: "Bath Pros", Email: "bathpros@example.com"}
	require.NoError(t, repo.DB.Create(contractor).Error)

	offer, err := repo.Offer.EnsureOffer(ctx, nil, contractor.ID, project.ID, user.ID)
	require.NoError(t, err)
	token, err := repo.Offer.IssueToken(ctx, nil, offer)
	require.NoError(t, err)

	return token
}

func multipartBody(t *testing.T, filename, content, notes string) (*bytes.Buffer, string) {
	t.Helper()

	body := new(bytes.Buffer)
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("uploaded_file", filename)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	if notes != "" {
		require.NoError(t, writer.WriteField("notes", notes))
	}
	require.NoError(t, writer.Close())

	return body, writer.FormDataContentType()
}

func TestUploadFormShowsProject(t *testing.T) {
	r, repo, _ := newUploadTestServer(t)
	token := issueUploadToken(t, repo)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/offers/upload/"+token+"/", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Bath Pros")
	assert.Contains(t, w.Body.String(), "Bathroom remodel")
	assert.Contains(t, w.Body.String(), token)
}

func TestUploadFormInvalidToken(t *testing.T) {
	r, _, _ := newUploadTestServer(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/offers/upload/does-not-exist/", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "not valid")
}

func TestUploadSubmitConsumesToken(t *testing.T) {
	r, repo, store := newUploadTestServer(t)
	token := issueUploadToken(t, repo)

	body, contentType := multipartBody(t, "offer.pdf", "our quote", "We can start in May")
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/offers/upload/"+token+"/", body)
	req.Header.Set("Content-Type", contentType)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "has been received")
	require.Len(t, store.saved, 1)

	// The link is single use; both pages now show the generic invalid page.
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/offers/upload/"+token+"/", nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)

	body, contentType = multipartBody(t, "offer2.pdf", "second try", "")
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/offers/upload/"+token+"/", body)
	req.Header.Set("Content-Type", contentType)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
	require.Len(t, store.saved, 1)
}

func TestUploadSubmitRequiresFile(t *testing.T) {
	r, repo, _ := newUploadTestServer(t)
	token := issueUploadToken(t, repo)

	body := new(bytes.Buffer)
	writer := multipart.NewWriter(body)
	require.NoError(t, writer.WriteField("notes", "forgot the attachment"))
	require.NoError(t, writer.Close())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/offers/upload/"+token+"/", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "choose a file")

	// The token survives a failed submission attempt.
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/offers/upload/"+token+"/", nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}
