package repository

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/renovalte/renovalte/internal/constant"
	"github.com/renovalte/renovalte/internal/database"
	"github.com/renovalte/renovalte/internal/model"
	"github.com/renovalte/renovalte/internal/util"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// newTestRepository opens an isolated in-memory database per test. The pool is
// capped at one connection because each in-memory connection is its own
// database.
func newTestRepository(t *testing.T) *Repository {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))

	return NewRepository(db, util.NewTestLogger(), nil)
}

func seedUser(t *testing.T, repo *Repository, email string) *model.User {
	t.Helper()

	user := &model.User{Email: email, FirstName: "Test", LastName: "User", PasswordHash: "x"}
	require.NoError(t, repo.DB.Create(user).Error)

	return user
}

func seedProject(t *testing.T, repo *Repository, userId uint, name string) *model.Project {
	t.Helper()

	project := &model.Project{Name: name, ProjectType: constant.ProjectTypeBathroom, UserID: userId}
	require.NoError(t, repo.DB.Create(project).Error)

	return project
}

func seedContractor(t *testing.T, repo *Repository, name, city, state string, rating *float64, types ...constant.ProjectType) *model.Contractor {
	t.Helper()

	contractor := &model.Contractor{
		Name:   name,
		City:   city,
		State:  state,
		Email:  name + "@example.com",
		Rating: rating,
	}
	for _, pt := range types {
		contractor.ProjectTypes = append(contractor.ProjectTypes, model.ContractorProjectType{ProjectType: pt})
	}
	require.NoError(t, repo.DB.Create(contractor).Error)

	return contractor
}

func ratingOf(r float64) *float64 {
	return &r
}
