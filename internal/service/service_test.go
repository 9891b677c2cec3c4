package service

import (
	"context"
	"fmt"
	"mime/multipart"
	"sync"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/renovalte/renovalte/internal/config"
	"github.com/renovalte/renovalte/internal/constant"
	"github.com/renovalte/renovalte/internal/database"
	"github.com/renovalte/renovalte/internal/model"
	"github.com/renovalte/renovalte/internal/repository"
	"github.com/renovalte/renovalte/internal/util"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestRepo(t *testing.T) *repository.Repository {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))

	return repository.NewRepository(db, util.NewTestLogger(), nil)
}

func testConfig() *config.Config {
	return &config.Config{
		App:  config.AppConfig{SITE_URL: "http://renovalte.test"},
		Mail: config.MailConfig{SendTimeout: time.Second},
	}
}

func seedUser(t *testing.T, repo *repository.Repository, email string) *model.User {
	t.Helper()

	user := &model.User{Email: email, FirstName: "Test", LastName: "User", PasswordHash: "x"}
	require.NoError(t, repo.DB.Create(user).Error)

	return user
}

func seedProject(t *testing.T, repo *repository.Repository, userId uint, name string) *model.Project {
	t.Helper()

	project := &model.Project{Name: name, ProjectType: constant.ProjectTypeBathroom, UserID: userId}
	require.NoError(t, repo.DB.Create(project).Error)

	return project
}

func seedContractor(t *testing.T, repo *repository.Repository, name string) *model.Contractor {
	t.Helper()

	contractor := &model.Contractor{
		Name:  name,
		Email: name + "@example.com",
		ProjectTypes: []model.ContractorProjectType{
			{ProjectType: constant.ProjectTypeBathroom},
		},
	}
	require.NoError(t, repo.DB.Create(contractor).Error)

	return contractor
}

type sentMail struct {
	Template string
	ToEmail  string
	Data     any
}

// fakeMailer records sends and can be told to fail for specific recipients.
type fakeMailer struct {
	mu     sync.Mutex
	sent   []sentMail
	failTo map[string]bool
}

func newFakeMailer() *fakeMailer {
	return &fakeMailer{failTo: make(map[string]bool)}
}

func (m *fakeMailer) Send(_ context.Context, templateFile, _, toEmail string, data any) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.failTo[toEmail] {
		return -1, fmt.Errorf("smtp says no")
	}

	m.sent = append(m.sent, sentMail{Template: templateFile, ToEmail: toEmail, Data: data})
	return 202, nil
}

// fakeLetterStore keeps letters in memory. onSave, when set, runs during the
// store call, in the window between token lookup and token consumption.
type fakeLetterStore struct {
	saved   []*model.File
	removed []*model.File
	onSave  func()
}

func (s *fakeLetterStore) SaveOfferLetter(_ context.Context, offerId uint, fileHeader *multipart.FileHeader) (*model.File, error) {
	if s.onSave != nil {
		s.onSave()
	}

	file := &model.File{
		FileName:       fileHeader.Filename,
		UniqueFileName: fmt.Sprintf("offers/%d/%s", offerId, fileHeader.Filename),
		BucketName:     "test",
		Size:           fileHeader.Size,
	}
	s.saved = append(s.saved, file)

	return file, nil
}

func (s *fakeLetterStore) RemoveOfferLetter(_ context.Context, file *model.File) error {
	s.removed = append(s.removed, file)
	return nil
}
